package news

import (
	"errors"
	"fmt"
)

// EmptyFieldError is returned when a required input field is empty after
// trimming surrounding whitespace.
type EmptyFieldError struct {
	Field string
}

func (e *EmptyFieldError) Error() string {
	return fmt.Sprintf("%s cannot be empty", e.Field)
}

// FormatError is returned when the raw news text is not valid restricted
// markdown: no recognized category heading, or headings with no surviving
// bullet items.
type FormatError struct {
	Message string
}

func (e *FormatError) Error() string {
	return e.Message
}

// LengthExceededError is returned when the rendered addon news block exceeds
// the addon.xml news field limit. Length carries the actual rendered length.
type LengthExceededError struct {
	Length int
}

func (e *LengthExceededError) Error() string {
	return fmt.Sprintf("addon news limited to %d characters rendered (current news is %d): "+
		"either shorten the news or provide a shorter summary via --addon-news",
		MaxAddonNewsLength, e.Length)
}

// IsFormatError reports whether err is a FormatError.
func IsFormatError(err error) bool {
	var fe *FormatError
	return errors.As(err, &fe)
}

// IsLengthExceeded reports whether err is a LengthExceededError.
func IsLengthExceeded(err error) bool {
	var le *LengthExceededError
	return errors.As(err, &le)
}
