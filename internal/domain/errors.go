package domain

import "errors"

var (
	ErrRecordNotFound        = errors.New("record not found")
	ErrUserAlreadyExists     = errors.New("user already exists")
	ErrCustomerAlreadyExists = errors.New("payment customer already exists for user")
)

// PaymentProviderError carries the provider's own human-readable message so
// that handlers can surface it to the caller without importing the provider SDK.
type PaymentProviderError struct {
	Message string
	Err     error
}

func (e *PaymentProviderError) Error() string {
	return e.Message
}

func (e *PaymentProviderError) Unwrap() error {
	return e.Err
}
