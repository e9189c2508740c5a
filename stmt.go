package proxy

import "github.com/shogo82148/go-sql-shim/dbapi"

// Stmt wraps any statement-like delegate. Result sets it returns are wrapped.
type Stmt[S dbapi.Statement] struct {
	Stmt S
	env  *env
}

var _ dbapi.Statement = (*Stmt[dbapi.Statement])(nil)

func wrapStatement(stmt dbapi.Statement, e *env) dbapi.Statement {
	if stmt == nil {
		return nil
	}
	switch s := stmt.(type) {
	case *Stmt[dbapi.Statement], *PreparedStmt:
		return s
	case dbapi.PreparedStatement:
		return wrapPreparedStatement(s, "", e)
	}
	return &Stmt[dbapi.Statement]{Stmt: stmt, env: e}
}

func (stmt *Stmt[S]) ExecuteQuery(sql string) (dbapi.ResultSet, error) {
	rs, err := stmt.Stmt.ExecuteQuery(sql)
	if err != nil {
		return nil, err
	}
	return stmt.queried(sql, rs)
}

func (stmt *Stmt[S]) ExecuteUpdate(sql string) (int64, error) {
	n, err := stmt.Stmt.ExecuteUpdate(sql)
	if err != nil {
		return 0, err
	}
	return stmt.executed(sql, n)
}

// queried runs the query hook. A result set the hook rejects is closed.
func (stmt *Stmt[S]) queried(query string, rs dbapi.ResultSet) (dbapi.ResultSet, error) {
	if err := stmt.env.hooks.QueryFunc(stmt.env.connID, query, rs); err != nil {
		if rs != nil {
			rs.Close()
		}
		return nil, err
	}
	return wrapResultSet(rs, stmt.env), nil
}

func (stmt *Stmt[S]) executed(query string, n int64) (int64, error) {
	if err := stmt.env.hooks.ExecFunc(stmt.env.connID, query, n); err != nil {
		return 0, err
	}
	return n, nil
}

func (stmt *Stmt[S]) Execute(sql string) (bool, error) {
	return stmt.Stmt.Execute(sql)
}

func (stmt *Stmt[S]) ResultSet() (dbapi.ResultSet, error) {
	rs, err := stmt.Stmt.ResultSet()
	if err != nil {
		return nil, err
	}
	return wrapResultSet(rs, stmt.env), nil
}

func (stmt *Stmt[S]) UpdateCount() (int64, error) {
	return stmt.Stmt.UpdateCount()
}

func (stmt *Stmt[S]) SetMaxRows(n int) error {
	return stmt.Stmt.SetMaxRows(n)
}

func (stmt *Stmt[S]) MaxRows() (int, error) {
	return stmt.Stmt.MaxRows()
}

func (stmt *Stmt[S]) SetFetchSize(n int) error {
	return stmt.Stmt.SetFetchSize(n)
}

func (stmt *Stmt[S]) FetchSize() (int, error) {
	return stmt.Stmt.FetchSize()
}

func (stmt *Stmt[S]) SetQueryTimeout(seconds int) error {
	return stmt.Stmt.SetQueryTimeout(seconds)
}

func (stmt *Stmt[S]) QueryTimeout() (int, error) {
	return stmt.Stmt.QueryTimeout()
}

func (stmt *Stmt[S]) Cancel() error {
	return stmt.Stmt.Cancel()
}

func (stmt *Stmt[S]) IsClosed() (bool, error) {
	return stmt.Stmt.IsClosed()
}

func (stmt *Stmt[S]) Close() error {
	return stmt.Stmt.Close()
}

// attachedMetaData describes the result set the statement currently holds.
// It returns nil when nothing has been executed yet, and swallows errors the
// same way: a statement without usable results has no metadata.
func (stmt *Stmt[S]) attachedMetaData() (dbapi.ResultSetMetaData, error) {
	rs, err := stmt.Stmt.ResultSet()
	if err != nil || rs == nil {
		return nil, nil
	}
	md, err := rs.MetaData()
	if err != nil {
		return nil, nil
	}
	return md, nil
}

// PreparedStmt wraps a dbapi.PreparedStatement.
type PreparedStmt struct {
	*Stmt[dbapi.PreparedStatement]
	// QueryString is the prepared query, empty when the statement was not
	// obtained through Conn.PrepareStatement.
	QueryString string
}

var _ dbapi.PreparedStatement = (*PreparedStmt)(nil)

func wrapPreparedStatement(stmt dbapi.PreparedStatement, query string, e *env) dbapi.PreparedStatement {
	if stmt == nil {
		return nil
	}
	if p, ok := stmt.(*PreparedStmt); ok {
		return p
	}
	return &PreparedStmt{
		Stmt:        &Stmt[dbapi.PreparedStatement]{Stmt: stmt, env: e},
		QueryString: query,
	}
}

// MetaData falls back to the metadata of the attached result set when the
// driver cannot describe a statement before it runs. Before execution that
// is nil.
func (stmt *PreparedStmt) MetaData() (dbapi.ResultSetMetaData, error) {
	md, err := stmt.Stmt.Stmt.MetaData()
	md, err = correct(stmt.env, KindStatement, "MetaData", md, err, stmt.attachedMetaData)
	if err != nil {
		return nil, err
	}
	return wrapResultSetMetaData(md, stmt.env), nil
}

func (stmt *PreparedStmt) Query() (dbapi.ResultSet, error) {
	rs, err := stmt.Stmt.Stmt.Query()
	if err != nil {
		return nil, err
	}
	return stmt.queried(stmt.QueryString, rs)
}

func (stmt *PreparedStmt) Update() (int64, error) {
	n, err := stmt.Stmt.Stmt.Update()
	if err != nil {
		return 0, err
	}
	return stmt.executed(stmt.QueryString, n)
}

func (stmt *PreparedStmt) Run() (bool, error) {
	return stmt.Stmt.Stmt.Run()
}

func (stmt *PreparedStmt) SetNull(index int, sqlType dbapi.SQLType) error {
	return stmt.Stmt.Stmt.SetNull(index, sqlType)
}

func (stmt *PreparedStmt) SetString(index int, v string) error {
	return stmt.Stmt.Stmt.SetString(index, v)
}

func (stmt *PreparedStmt) SetInt64(index int, v int64) error {
	return stmt.Stmt.Stmt.SetInt64(index, v)
}

func (stmt *PreparedStmt) SetFloat64(index int, v float64) error {
	return stmt.Stmt.Stmt.SetFloat64(index, v)
}

func (stmt *PreparedStmt) SetBool(index int, v bool) error {
	return stmt.Stmt.Stmt.SetBool(index, v)
}

func (stmt *PreparedStmt) SetObject(index int, v interface{}) error {
	return stmt.Stmt.Stmt.SetObject(index, v)
}

func (stmt *PreparedStmt) ClearParameters() error {
	return stmt.Stmt.Stmt.ClearParameters()
}
