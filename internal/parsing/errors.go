package parsing

import (
	"errors"
	"fmt"
)

// InsufficientTextError indicates the normalized input is too short to run
// extraction against. It is the only error the parsing core surfaces; every
// other miss degrades to an empty field value.
type InsufficientTextError struct {
	Length int
	Min    int
}

func (e *InsufficientTextError) Error() string {
	return fmt.Sprintf("insufficient text for analysis: %d chars (minimum %d)", e.Length, e.Min)
}

// IsInsufficientText reports whether err is an InsufficientTextError.
func IsInsufficientText(err error) bool {
	var ie *InsufficientTextError
	return errors.As(err, &ie)
}
