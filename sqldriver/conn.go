package sqldriver

import (
	"database/sql/driver"

	"github.com/shogo82148/go-sql-shim/dbapi"
)

const tableNameColumn = "TABLE_NAME"

type Conn struct {
	Conn dbapi.Conn
}

var (
	_ driver.Conn    = (*Conn)(nil)
	_ driver.Queryer = (*Conn)(nil)
)

func (conn *Conn) Prepare(query string) (driver.Stmt, error) {
	stmt, err := conn.Conn.PrepareStatement(query)
	if err != nil {
		return nil, err
	}
	return &Stmt{
		Stmt:        stmt,
		QueryString: query,
	}, nil
}

func (conn *Conn) Close() error {
	return conn.Conn.Close()
}

// Begin turns auto-commit off until the transaction ends.
func (conn *Conn) Begin() (driver.Tx, error) {
	if err := conn.Conn.SetAutoCommit(false); err != nil {
		return nil, err
	}
	return &Tx{Conn: conn.Conn}, nil
}

// Query runs argument-less queries on a plain statement. Queries with
// arguments go through Prepare.
func (conn *Conn) Query(query string, args []driver.Value) (driver.Rows, error) {
	if len(args) > 0 {
		return nil, driver.ErrSkip
	}
	stmt, err := conn.Conn.CreateStatement()
	if err != nil {
		return nil, err
	}
	rs, err := stmt.ExecuteQuery(query)
	if err != nil {
		return nil, appendErr(err, stmt.Close())
	}
	rows, err := newRows(rs, stmt)
	if err != nil {
		return nil, appendErr(err, stmt.Close())
	}
	return rows, nil
}

// MetaData returns the metadata of the underlying connection.
func (conn *Conn) MetaData() (dbapi.DatabaseMetaData, error) {
	return conn.Conn.MetaData()
}

// Tables lists the names of all plain tables.
func (conn *Conn) Tables() ([]string, error) {
	md, err := conn.Conn.MetaData()
	if err != nil {
		return nil, err
	}
	rs, err := md.Tables("", "", "", []string{"TABLE"})
	if err != nil {
		return nil, err
	}
	if rs == nil {
		return nil, nil
	}

	var names []string
	for {
		ok, err := rs.Next()
		if err != nil {
			return nil, appendErr(err, rs.Close())
		}
		if !ok {
			break
		}
		name, err := rs.GetString(tableNameColumn)
		if err != nil {
			return nil, appendErr(err, rs.Close())
		}
		names = append(names, name)
	}
	return names, rs.Close()
}
