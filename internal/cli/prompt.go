package cli

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func promptYesNo(cmd *cobra.Command, question string) bool {
	fmt.Fprintf(cmd.OutOrStdout(), "%s [y/N]: ", question)

	reader := bufio.NewReader(cmd.InOrStdin())
	answer, _ := reader.ReadString('\n')
	answer = strings.TrimSpace(strings.ToLower(answer))

	return answer == "y" || answer == "yes"
}

// promptLine reads a single trimmed line of input.
func promptLine(cmd *cobra.Command, question string) string {
	fmt.Fprintf(cmd.OutOrStdout(), "%s: ", question)

	reader := bufio.NewReader(cmd.InOrStdin())
	answer, _ := reader.ReadString('\n')
	return strings.TrimSpace(answer)
}

// promptMultiline reads lines until two consecutive empty lines or EOF.
// Used to collect the markdown news block interactively.
func promptMultiline(cmd *cobra.Command, question string) string {
	fmt.Fprintf(cmd.OutOrStdout(), "%s (finish with two empty lines):\n", question)

	reader := bufio.NewReader(cmd.InOrStdin())
	var lines []string
	blankRun := 0
	for {
		line, err := reader.ReadString('\n')
		line = strings.TrimRight(line, "\r\n")
		if line == "" {
			blankRun++
			if blankRun >= 2 || (err != nil && line == "") {
				break
			}
		} else {
			blankRun = 0
		}
		lines = append(lines, line)
		if err != nil {
			break
		}
	}

	return strings.TrimRight(strings.Join(lines, "\n"), "\n")
}
