package services

import "errors"

// Service-level error taxonomy. Controllers translate these into HTTP
// status codes; nothing below the controller layer knows about HTTP.
var (
	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password so a caller cannot tell which factor failed.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrNotFound signals an unknown identifier.
	ErrNotFound = errors.New("record not found")

	// ErrForbidden signals an authenticated caller acting on a record
	// they do not own.
	ErrForbidden = errors.New("not the owner")
)

// ValidationError carries a field->message map describing every rule the
// input violated. The write it guarded is aborted before persistence.
type ValidationError struct {
	Errors map[string]string
}

func (e *ValidationError) Error() string {
	return "invalid input"
}

// AsValidationError unwraps err into a *ValidationError if it is one.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
