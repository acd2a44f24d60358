package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ValidationError represents a configuration validation error with context.
type ValidationError struct {
	FilePath string
	Line     int
	Column   int
	Message  string
}

func (e *ValidationError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d:%d: %s", e.FilePath, e.Line, e.Column, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.FilePath, e.Message)
}

// ValidateYAMLSyntax checks if the YAML file has valid syntax.
// Returns nil if valid, or a ValidationError with line information.
// A missing or empty file is valid - the defaults cover it.
func ValidateYAMLSyntax(filePath string) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return &ValidationError{FilePath: filePath, Message: err.Error()}
	}

	if len(strings.TrimSpace(string(data))) == 0 {
		return nil
	}

	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		var typeError *yaml.TypeError
		if errors.As(err, &typeError) {
			return &ValidationError{
				FilePath: filePath,
				Message:  strings.Join(typeError.Errors, "; "),
			}
		}

		line := extractLine(err.Error())
		return &ValidationError{
			FilePath: filePath,
			Line:     line,
			Message:  cleanYAMLError(err.Error()),
		}
	}

	return nil
}

var linePattern = regexp.MustCompile(`line (\d+)`)

// extractLine pulls the line number out of a yaml.v3 error message.
func extractLine(msg string) int {
	m := linePattern.FindStringSubmatch(msg)
	if m == nil {
		return 0
	}
	line, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return line
}

// cleanYAMLError strips the redundant "yaml:" prefix from error messages.
func cleanYAMLError(msg string) string {
	return strings.TrimSpace(strings.TrimPrefix(msg, "yaml:"))
}
