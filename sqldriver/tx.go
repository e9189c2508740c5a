package sqldriver

import (
	"database/sql/driver"

	"github.com/shogo82148/go-sql-shim/dbapi"
)

// Tx restores auto-commit once it ends.
type Tx struct {
	Conn dbapi.Conn
}

var _ driver.Tx = (*Tx)(nil)

func (tx *Tx) Commit() error {
	if err := tx.Conn.Commit(); err != nil {
		return err
	}

	return tx.Conn.SetAutoCommit(true)
}

func (tx *Tx) Rollback() error {
	if err := tx.Conn.Rollback(); err != nil {
		return err
	}

	return tx.Conn.SetAutoCommit(true)
}
