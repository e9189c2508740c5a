package sqldriver

import (
	"database/sql/driver"
	"errors"
	"io"

	"github.com/shogo82148/go-sql-shim/dbapi"
)

var errNoResult = errors.New("sqldriver: query returned no result set")

// Rows reads a dbapi.ResultSet. If it was built for a one-off statement, the
// statement is closed with the rows.
type Rows struct {
	rs      dbapi.ResultSet
	md      dbapi.ResultSetMetaData
	stmt    dbapi.Statement
	columns []string
}

var (
	_ driver.Rows                           = (*Rows)(nil)
	_ driver.RowsColumnTypeDatabaseTypeName = (*Rows)(nil)
)

func newRows(rs dbapi.ResultSet, stmt dbapi.Statement) (*Rows, error) {
	if rs == nil {
		return nil, errNoResult
	}
	md, err := rs.MetaData()
	if err != nil {
		return nil, appendErr(err, rs.Close())
	}
	n, err := md.ColumnCount()
	if err != nil {
		return nil, appendErr(err, rs.Close())
	}
	columns := make([]string, n)
	for i := range columns {
		if columns[i], err = md.ColumnLabel(i + 1); err != nil {
			return nil, appendErr(err, rs.Close())
		}
	}
	return &Rows{rs: rs, md: md, stmt: stmt, columns: columns}, nil
}

func (r *Rows) Columns() []string {
	return r.columns
}

func (r *Rows) Close() error {
	err := r.rs.Close()
	if r.stmt != nil {
		err = appendErr(err, r.stmt.Close())
	}
	return err
}

func (r *Rows) Next(dest []driver.Value) error {
	ok, err := r.rs.Next()
	if err != nil {
		return err
	}
	if !ok {
		return io.EOF
	}
	for i := range dest {
		v, err := r.rs.GetObjectAt(i + 1)
		if err != nil {
			return err
		}
		if dest[i], err = driver.DefaultParameterConverter.ConvertValue(v); err != nil {
			return err
		}
	}
	return nil
}

func (r *Rows) ColumnTypeDatabaseTypeName(index int) string {
	name, err := r.md.ColumnTypeName(index + 1)
	if err != nil {
		return ""
	}
	return name
}
