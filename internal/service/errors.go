package service

import "errors"

// User-facing messages shown by the profile screen.
const (
	MsgFillEmailPassword  = "Please fill in email and password"
	MsgEnterName          = "Please enter your name"
	MsgPasswordsMismatch  = "Passwords do not match"
	MsgInvalidCredentials = "Invalid email or password"
)

// ValidationError is a form problem the user has to fix. The message is
// shown verbatim.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func validation(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}

var (
	// ErrInvalidCredentials is returned by Login when no persisted user matches.
	ErrInvalidCredentials = validation(MsgInvalidCredentials)

	// ErrEmptyCart is returned by Checkout when there is nothing to deliver.
	ErrEmptyCart = errors.New("cart is empty")
)

// IsValidation reports whether err is a user-facing validation error.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}
