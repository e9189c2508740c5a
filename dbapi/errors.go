package dbapi

import (
	"errors"
	"fmt"
)

// ErrNotSupported may be returned (or wrapped) by drivers for operations they
// do not implement.
var ErrNotSupported = errors.New("dbapi: operation not supported")

// SQLError is the failure type drivers report.
type SQLError struct {
	Message    string
	SQLState   string
	VendorCode int
	Cause      error
}

// NewSQLError returns a SQLError carrying only a message.
func NewSQLError(message string) *SQLError {
	return &SQLError{Message: message}
}

func (e *SQLError) Error() string {
	if e.SQLState != "" {
		return fmt.Sprintf("%s (SQLState %s, code %d)", e.Message, e.SQLState, e.VendorCode)
	}
	return e.Message
}

func (e *SQLError) Unwrap() error {
	return e.Cause
}
