package httperr

import "errors"

// BusinessError is a domain rule violation identified by a stable code.
// It is comparable, so domain packages can declare sentinel values with
// ErrBusiness and match them with errors.Is.
type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}
