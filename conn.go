package proxy

import "github.com/shogo82148/go-sql-shim/dbapi"

// Conn wraps a dbapi.Conn.
type Conn struct {
	Conn dbapi.Conn
	// ID identifies the connection in Correction events.
	ID  string
	env *env
}

var _ dbapi.Conn = (*Conn)(nil)

func newConn(conn dbapi.Conn, e *env) *Conn {
	return &Conn{
		Conn: conn,
		ID:   e.connID,
		env:  e,
	}
}

func (c *Conn) CreateStatement() (dbapi.Statement, error) {
	stmt, err := c.Conn.CreateStatement()
	stmt, err = correct(c.env, KindConn, "CreateStatement", stmt, err, c.defaultStatement)
	if err != nil {
		return nil, err
	}
	return wrapStatement(stmt, c.env), nil
}

// CreateStatementWith falls back to a default statement when the driver does
// not support result set options. The fallback always produces forward-only,
// read-only result sets whatever was requested.
func (c *Conn) CreateStatementWith(resultSetType, concurrency int) (dbapi.Statement, error) {
	stmt, err := c.Conn.CreateStatementWith(resultSetType, concurrency)
	stmt, err = correct(c.env, KindConn, "CreateStatementWith", stmt, err, c.defaultStatement)
	if err != nil {
		return nil, err
	}
	return wrapStatement(stmt, c.env), nil
}

func (c *Conn) defaultStatement() (dbapi.Statement, error) {
	closed, err := c.Conn.IsClosed()
	if err != nil {
		return nil, err
	}
	if closed {
		return nil, ErrConnectionClosed
	}
	return c.Conn.CreateStatement()
}

func (c *Conn) PrepareStatement(query string) (dbapi.PreparedStatement, error) {
	stmt, err := c.Conn.PrepareStatement(query)
	if err != nil {
		return nil, err
	}
	return wrapPreparedStatement(stmt, query, c.env), nil
}

func (c *Conn) MetaData() (dbapi.DatabaseMetaData, error) {
	md, err := c.Conn.MetaData()
	if err != nil {
		return nil, err
	}
	return wrapMetaData(md, c.env), nil
}

// SetReadOnly ignores drivers that do not support read-only mode.
func (c *Conn) SetReadOnly(readOnly bool) error {
	err := c.Conn.SetReadOnly(readOnly)
	_, err = correct(c.env, KindConn, "SetReadOnly", struct{}{}, err, func() (struct{}, error) {
		return struct{}{}, nil
	})
	return err
}

func (c *Conn) IsReadOnly() (bool, error) {
	return c.Conn.IsReadOnly()
}

func (c *Conn) SetAutoCommit(autoCommit bool) error {
	return c.Conn.SetAutoCommit(autoCommit)
}

func (c *Conn) AutoCommit() (bool, error) {
	return c.Conn.AutoCommit()
}

func (c *Conn) Commit() error {
	if err := c.Conn.Commit(); err != nil {
		return err
	}
	return c.env.hooks.CommitFunc(c)
}

func (c *Conn) Rollback() error {
	if err := c.Conn.Rollback(); err != nil {
		return err
	}
	return c.env.hooks.RollbackFunc(c)
}

func (c *Conn) Catalog() (string, error) {
	return c.Conn.Catalog()
}

func (c *Conn) SetCatalog(catalog string) error {
	return c.Conn.SetCatalog(catalog)
}

func (c *Conn) IsClosed() (bool, error) {
	return c.Conn.IsClosed()
}

func (c *Conn) Close() error {
	return c.Conn.Close()
}
