package landing

import (
	"errors"
	"strings"
)

// ErrInvalidEmail indicates the draft is empty or lacks an '@'.
var ErrInvalidEmail = errors.New("invalid email")

const (
	InvalidEmailTitle   = "Invalid Email"
	InvalidEmailMessage = "Please enter a valid email address"
)

// ValidateEmail applies the form's format check: the address must be
// non-empty and contain an '@'. Nothing more is checked.
func ValidateEmail(draft string) error {
	if draft == "" || !strings.Contains(draft, "@") {
		return ErrInvalidEmail
	}
	return nil
}
