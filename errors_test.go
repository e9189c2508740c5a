package proxy

import (
	"errors"
	"fmt"
	"testing"

	"github.com/shogo82148/go-sql-shim/dbapi"
)

func TestSignaturesNotSupported(t *testing.T) {
	sigs := Signatures{DefaultNotSupportedMessage, "Method not implemented"}
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"exact", dbapi.NewSQLError("Method not supported"), true},
		{"second signature", dbapi.NewSQLError("Method not implemented"), true},
		{"with state", &dbapi.SQLError{Message: "Method not supported", SQLState: "HY000"}, true},
		{"wrapped", fmt.Errorf("createStatement: %w", dbapi.NewSQLError("Method not supported")), true},
		{"sentinel", fmt.Errorf("isSigned: %w", dbapi.ErrNotSupported), true},
		{"other message", dbapi.NewSQLError("Method not supported yet"), false},
		{"case differs", dbapi.NewSQLError("method not supported"), false},
		{"not a SQLError", errors.New("Method not supported"), false},
	}
	for _, tt := range tests {
		if got := sigs.NotSupported(tt.err); got != tt.want {
			t.Errorf("%q. NotSupported(%v) = %v, want %v", tt.name, tt.err, got, tt.want)
		}
	}
}

func TestClassifierFunc(t *testing.T) {
	target := errors.New("boom")
	c := ClassifierFunc(func(err error) bool { return errors.Is(err, target) })
	if !c.NotSupported(fmt.Errorf("wrapped: %w", target)) {
		t.Error("NotSupported() = false, want true")
	}
	if c.NotSupported(dbapi.NewSQLError(DefaultNotSupportedMessage)) {
		t.Error("NotSupported() = true, want false")
	}
}

func TestWiringErrorUnwraps(t *testing.T) {
	cause := dbapi.NewSQLError("no client")
	err := error(&WiringError{Op: "show tables", Err: cause})
	if !errors.Is(err, cause) {
		t.Errorf("errors.Is(%v, cause) = false", err)
	}
	if got, want := err.Error(), "proxy: show tables: no client"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestInvalidColumnError(t *testing.T) {
	err := &InvalidColumnError{Column: 7}
	if got, want := err.Error(), "proxy: invalid column value: 7"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
