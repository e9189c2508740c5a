package proxy

import (
	"errors"
	"fmt"

	"github.com/jonbodner/multierr"
	"github.com/shogo82148/go-sql-shim/dbapi"
)

// DefaultNotSupportedMessage is the message a Hive driver reports for
// operations it does not implement.
const DefaultNotSupportedMessage = "Method not supported"

// ErrConnectionClosed is returned when a statement is requested from a closed
// connection.
var ErrConnectionClosed = errors.New("proxy: can't create statement, connection is closed")

// InvalidColumnError reports a column index outside the result columns.
type InvalidColumnError struct {
	Column int
}

func (e *InvalidColumnError) Error() string {
	return fmt.Sprintf("proxy: invalid column value: %d", e.Column)
}

// WiringError reports that a substitute could not reach the driver internals
// it relies on. It unwraps to the underlying failure.
type WiringError struct {
	Op  string
	Err error
}

func (e *WiringError) Error() string {
	return fmt.Sprintf("proxy: %s: %v", e.Op, e.Err)
}

func (e *WiringError) Unwrap() error {
	return e.Err
}

// errNoClient is wrapped in a WiringError when the metadata delegate does not
// implement dbapi.ClientProvider.
var errNoClient = errors.New("metadata does not expose a client handle")

// Classifier decides whether a delegate failure is the driver's
// "not supported" defect.
type Classifier interface {
	NotSupported(err error) bool
}

// ClassifierFunc adapts a function to Classifier.
type ClassifierFunc func(err error) bool

func (f ClassifierFunc) NotSupported(err error) bool {
	return f(err)
}

// Signatures matches *dbapi.SQLError messages exactly against a set of known
// texts. Errors wrapping dbapi.ErrNotSupported always match.
type Signatures []string

func (s Signatures) NotSupported(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, dbapi.ErrNotSupported) {
		return true
	}
	var se *dbapi.SQLError
	if !errors.As(err, &se) {
		return false
	}
	for _, msg := range s {
		if se.Message == msg {
			return true
		}
	}
	return false
}

// appendErr combines err with a cleanup error, either of which may be nil.
func appendErr(err, cleanup error) error {
	switch {
	case cleanup == nil:
		return err
	case err == nil:
		return cleanup
	}
	return multierr.Append(err, cleanup)
}
