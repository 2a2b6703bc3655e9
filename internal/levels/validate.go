package levels

import (
	"fmt"
	"strings"
)

// Validation error codes.
const (
	CodeEmpty      = "EMPTY"
	CodeRagged     = "RAGGED"
	CodeNoStart    = "NO_START"
	CodeNoPassable = "NO_PASSABLE"
)

// ValidationError contains details about validation failure.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Validate checks the preconditions the simulation relies on but does not
// check itself: a non-empty rectangular map with a start tile and at least one
// passable tile. layout must already be normalized.
func Validate(layout string) error {
	if strings.TrimSpace(layout) == "" {
		return ValidationError{Code: CodeEmpty, Message: "level has no rows"}
	}

	rows := strings.Split(layout, "\n")
	width := len([]rune(rows[0]))
	start := false
	passable := false

	for y, row := range rows {
		runes := []rune(row)
		if len(runes) != width {
			return ValidationError{
				Code:    CodeRagged,
				Message: fmt.Sprintf("row %d has width %d, expected %d", y, len(runes), width),
			}
		}
		for _, ch := range runes {
			if ch == 'S' {
				start = true
			}
			if ch != '#' {
				passable = true
			}
		}
	}

	if !passable {
		return ValidationError{Code: CodeNoPassable, Message: "level has no passable tile"}
	}
	if !start {
		return ValidationError{Code: CodeNoStart, Message: "level has no 'S' start tile"}
	}
	return nil
}
