package app

import (
	"errors"
	"fmt"
)

// ErrValidation is wrapped by every error caused by bad user input.
var ErrValidation = errors.New("invalid input")

var (
	// ErrEmptyInput is returned when the submitted text is blank.
	ErrEmptyInput = fmt.Errorf("%w: empty input", ErrValidation)
	// ErrDuplicateItem is returned when adding text that already exists,
	// ignoring case.
	ErrDuplicateItem = fmt.Errorf("%w: duplicate item", ErrValidation)
	// ErrUnknownItem is returned when selecting an item that is not in the
	// list.
	ErrUnknownItem = errors.New("app: item not found")
)

// IsValidation reports whether err was caused by bad user input.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}
