package sqldriver

import (
	"database/sql/driver"
	"errors"
	"fmt"

	"github.com/shogo82148/go-sql-shim/dbapi"
)

var errNoLastInsertID = errors.New("sqldriver: LastInsertId is not supported")

type Stmt struct {
	Stmt        dbapi.PreparedStatement
	QueryString string
}

var _ driver.Stmt = (*Stmt)(nil)

func (stmt *Stmt) Close() error {
	return stmt.Stmt.Close()
}

// NumInput reports -1: the client API does not expose the parameter count.
func (stmt *Stmt) NumInput() int {
	return -1
}

func (stmt *Stmt) bind(args []driver.Value) error {
	if err := stmt.Stmt.ClearParameters(); err != nil {
		return err
	}
	for i, arg := range args {
		if err := stmt.Stmt.SetObject(i+1, arg); err != nil {
			return fmt.Errorf("bind parameter %d: %w", i+1, err)
		}
	}
	return nil
}

func (stmt *Stmt) Exec(args []driver.Value) (driver.Result, error) {
	if err := stmt.bind(args); err != nil {
		return nil, err
	}
	n, err := stmt.Stmt.Update()
	if err != nil {
		return nil, err
	}
	return result(n), nil
}

func (stmt *Stmt) Query(args []driver.Value) (driver.Rows, error) {
	if err := stmt.bind(args); err != nil {
		return nil, err
	}
	rs, err := stmt.Stmt.Query()
	if err != nil {
		return nil, err
	}
	return newRows(rs, nil)
}

type result int64

func (r result) LastInsertId() (int64, error) {
	return 0, errNoLastInsertID
}

func (r result) RowsAffected() (int64, error) {
	return int64(r), nil
}
