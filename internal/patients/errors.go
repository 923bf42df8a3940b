package patients

import "errors"

var (
	// ErrNameRequired is returned when the full name is empty after trimming
	ErrNameRequired = errors.New("full name required")

	// ErrMobileRequired is returned when the mobile number has no digits
	ErrMobileRequired = errors.New("mobile number required")
)

// IsValidationError reports whether err is a form validation failure
// that should surface as a 400 rather than a server fault.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrNameRequired) || errors.Is(err, ErrMobileRequired)
}
