// Package fakedb provides in-memory dbapi delegates whose failures can be
// scripted per operation, for exercising wrappers against a defective driver.
package fakedb

import (
	"fmt"

	"github.com/shogo82148/go-sql-shim/dbapi"
)

// NotSupported returns the failure a Hive driver reports for unimplemented
// operations.
func NotSupported() error {
	return dbapi.NewSQLError("Method not supported")
}

// Failures scripts errors by operation name.
type Failures map[string]error

func (f Failures) fail(op string) error {
	if f == nil {
		return nil
	}
	return f[op]
}

// Driver hands out Conn on every Connect.
type Driver struct {
	Conn       *Conn
	ConnectErr error
	Accepts    bool
}

var _ dbapi.Driver = (*Driver)(nil)

func (d *Driver) Connect(url string, props dbapi.Properties) (dbapi.Conn, error) {
	if d.ConnectErr != nil {
		return nil, d.ConnectErr
	}
	if d.Conn == nil {
		return nil, nil
	}
	d.Conn.URL = url
	return d.Conn, nil
}

func (d *Driver) AcceptsURL(url string) (bool, error) { return d.Accepts, nil }
func (d *Driver) MajorVersion() int                   { return 0 }
func (d *Driver) MinorVersion() int                   { return 13 }
func (d *Driver) Compliant() bool                     { return false }

// Conn is a connection. Statements it creates run queries against Results.
type Conn struct {
	Fail     Failures
	Meta     dbapi.DatabaseMetaData
	Results  map[string]*Rows
	URL      string
	Closed   bool
	ReadOnly bool
	// Created holds every statement handed out, in order.
	Created    []*Statement
	autoCommit bool
	catalog    string
	Commits    int
	Rollbacks  int
}

var _ dbapi.Conn = (*Conn)(nil)

func (c *Conn) newStatement() *Statement {
	s := &Statement{Results: c.Results}
	c.Created = append(c.Created, s)
	return s
}

func (c *Conn) CreateStatement() (dbapi.Statement, error) {
	if err := c.Fail.fail("CreateStatement"); err != nil {
		return nil, err
	}
	return c.newStatement(), nil
}

func (c *Conn) CreateStatementWith(resultSetType, concurrency int) (dbapi.Statement, error) {
	if err := c.Fail.fail("CreateStatementWith"); err != nil {
		return nil, err
	}
	return c.newStatement(), nil
}

func (c *Conn) PrepareStatement(query string) (dbapi.PreparedStatement, error) {
	if err := c.Fail.fail("PrepareStatement"); err != nil {
		return nil, err
	}
	s := c.newStatement()
	return &PreparedStatement{Statement: s, SQL: query, Params: map[int]interface{}{}}, nil
}

func (c *Conn) MetaData() (dbapi.DatabaseMetaData, error) {
	if err := c.Fail.fail("MetaData"); err != nil {
		return nil, err
	}
	return c.Meta, nil
}

func (c *Conn) SetReadOnly(readOnly bool) error {
	if err := c.Fail.fail("SetReadOnly"); err != nil {
		return err
	}
	c.ReadOnly = readOnly
	return nil
}

func (c *Conn) IsReadOnly() (bool, error) { return c.ReadOnly, c.Fail.fail("IsReadOnly") }

func (c *Conn) SetAutoCommit(autoCommit bool) error {
	if err := c.Fail.fail("SetAutoCommit"); err != nil {
		return err
	}
	c.autoCommit = autoCommit
	return nil
}

func (c *Conn) AutoCommit() (bool, error) { return c.autoCommit, c.Fail.fail("AutoCommit") }

func (c *Conn) Commit() error {
	if err := c.Fail.fail("Commit"); err != nil {
		return err
	}
	c.Commits++
	return nil
}

func (c *Conn) Rollback() error {
	if err := c.Fail.fail("Rollback"); err != nil {
		return err
	}
	c.Rollbacks++
	return nil
}

func (c *Conn) Catalog() (string, error) { return c.catalog, c.Fail.fail("Catalog") }

func (c *Conn) SetCatalog(catalog string) error {
	c.catalog = catalog
	return c.Fail.fail("SetCatalog")
}

func (c *Conn) IsClosed() (bool, error) { return c.Closed, c.Fail.fail("IsClosed") }

func (c *Conn) Close() error {
	c.Closed = true
	return c.Fail.fail("Close")
}

// Statement runs queries by looking them up in Results.
type Statement struct {
	Fail     Failures
	Results  map[string]*Rows
	Executed []string
	current  *Rows
	maxRows  int
	fetch    int
	timeout  int
	Closed   bool
}

var _ dbapi.Statement = (*Statement)(nil)

func (s *Statement) run(sql string) (*Rows, error) {
	s.Executed = append(s.Executed, sql)
	rows, ok := s.Results[sql]
	if !ok {
		return nil, dbapi.NewSQLError(fmt.Sprintf("Error while compiling statement: %s", sql))
	}
	s.current = rows
	return rows, nil
}

func (s *Statement) ExecuteQuery(sql string) (dbapi.ResultSet, error) {
	if err := s.Fail.fail("ExecuteQuery"); err != nil {
		return nil, err
	}
	rows, err := s.run(sql)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *Statement) ExecuteUpdate(sql string) (int64, error) {
	if err := s.Fail.fail("ExecuteUpdate"); err != nil {
		return 0, err
	}
	s.Executed = append(s.Executed, sql)
	return 0, nil
}

func (s *Statement) Execute(sql string) (bool, error) {
	if err := s.Fail.fail("Execute"); err != nil {
		return false, err
	}
	if _, err := s.run(sql); err != nil {
		return false, err
	}
	return true, nil
}

func (s *Statement) ResultSet() (dbapi.ResultSet, error) {
	if err := s.Fail.fail("ResultSet"); err != nil {
		return nil, err
	}
	if s.current == nil {
		return nil, nil
	}
	return s.current, nil
}

func (s *Statement) UpdateCount() (int64, error) { return -1, s.Fail.fail("UpdateCount") }
func (s *Statement) SetMaxRows(n int) error      { s.maxRows = n; return s.Fail.fail("SetMaxRows") }
func (s *Statement) MaxRows() (int, error)       { return s.maxRows, s.Fail.fail("MaxRows") }
func (s *Statement) SetFetchSize(n int) error    { s.fetch = n; return s.Fail.fail("SetFetchSize") }
func (s *Statement) FetchSize() (int, error)     { return s.fetch, s.Fail.fail("FetchSize") }
func (s *Statement) SetQueryTimeout(sec int) error {
	s.timeout = sec
	return s.Fail.fail("SetQueryTimeout")
}
func (s *Statement) QueryTimeout() (int, error) { return s.timeout, s.Fail.fail("QueryTimeout") }
func (s *Statement) Cancel() error              { return s.Fail.fail("Cancel") }
func (s *Statement) IsClosed() (bool, error)    { return s.Closed, nil }

func (s *Statement) Close() error {
	s.Closed = true
	return s.Fail.fail("Close")
}

// PreparedStatement runs SQL through the embedded Statement.
type PreparedStatement struct {
	*Statement
	SQL    string
	Params map[int]interface{}
	// Meta is returned by MetaData unless a "MetaData" failure is scripted.
	Meta dbapi.ResultSetMetaData
}

var _ dbapi.PreparedStatement = (*PreparedStatement)(nil)

func (p *PreparedStatement) set(op string, index int, v interface{}) error {
	if err := p.Fail.fail(op); err != nil {
		return err
	}
	p.Params[index] = v
	return nil
}

func (p *PreparedStatement) SetNull(index int, sqlType dbapi.SQLType) error {
	return p.set("SetNull", index, nil)
}

func (p *PreparedStatement) SetString(index int, v string) error {
	return p.set("SetString", index, v)
}

func (p *PreparedStatement) SetInt64(index int, v int64) error {
	return p.set("SetInt64", index, v)
}

func (p *PreparedStatement) SetFloat64(index int, v float64) error {
	return p.set("SetFloat64", index, v)
}

func (p *PreparedStatement) SetBool(index int, v bool) error {
	return p.set("SetBool", index, v)
}

func (p *PreparedStatement) SetObject(index int, v interface{}) error {
	return p.set("SetObject", index, v)
}

func (p *PreparedStatement) ClearParameters() error {
	p.Params = map[int]interface{}{}
	return p.Fail.fail("ClearParameters")
}

func (p *PreparedStatement) Query() (dbapi.ResultSet, error) {
	return p.ExecuteQuery(p.SQL)
}

func (p *PreparedStatement) Update() (int64, error) {
	return p.ExecuteUpdate(p.SQL)
}

func (p *PreparedStatement) Run() (bool, error) {
	return p.Execute(p.SQL)
}

func (p *PreparedStatement) MetaData() (dbapi.ResultSetMetaData, error) {
	if err := p.Fail.fail("MetaData"); err != nil {
		return nil, err
	}
	return p.Meta, nil
}
