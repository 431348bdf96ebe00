// Package errs provides the error taxonomy for the commerce state layer.
// Errors carry a string code for classification plus an optional wrapped
// cause; codes are string-based for debuggability and natural JSON
// serialization.
package errs

import (
	"errors"
	"fmt"
)

// Code classifies an error condition.
type Code string

const (
	// CodeDecode indicates a stored record was malformed or missing
	// required fields. Callers treat the record as absent.
	CodeDecode Code = "DECODE_ERROR"

	// CodeDuplicateEmail indicates a sign-up attempt with an email that is
	// already registered.
	CodeDuplicateEmail Code = "DUPLICATE_EMAIL"

	// CodeNotFound indicates no record exists for the given key.
	CodeNotFound Code = "NOT_FOUND"

	// CodeInvalidCredentials indicates a password mismatch on sign-in.
	CodeInvalidCredentials Code = "INVALID_CREDENTIALS"

	// CodeValidation indicates a malformed input, such as a card payment
	// method missing one of its required fields.
	CodeValidation Code = "VALIDATION_ERROR"

	// CodeEmptyCart indicates a checkout attempt with nothing in the cart.
	CodeEmptyCart Code = "EMPTY_CART"

	// CodeStoreIO indicates the underlying key-value store failed.
	CodeStoreIO Code = "STORE_IO_ERROR"

	// CodeCartClearFailed indicates a checkout appended its order but the
	// subsequent cart clear failed. Recovery retries only the clear.
	CodeCartClearFailed Code = "CART_CLEAR_FAILED"
)

// Error is the concrete error type returned by every operation in the state
// layer. Operations never panic and never return an untyped error.
type Error struct {
	Code    Code
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// New builds an Error with the given code and message.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Newf builds an Error with a formatted message.
func Newf(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap builds an Error around an underlying cause.
func Wrap(code Code, message string, err error) *Error {
	return &Error{Code: code, Message: message, Err: err}
}

// HasCode reports whether err or anything it wraps carries the given code.
func HasCode(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		if e.Code == code {
			return true
		}
		return HasCode(e.Err, code)
	}
	return false
}

// CodeOf returns the code of the outermost Error in err's chain, or the
// empty Code when err is not an Error.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}
