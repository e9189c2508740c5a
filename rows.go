package proxy

import "github.com/shogo82148/go-sql-shim/dbapi"

// tableNameColumn is the column metadata listings name tables by. The
// "show tables" result behind DatabaseMetaData.Tables has a single unnamed
// column instead.
const tableNameColumn = "TABLE_NAME"

// ResultSet wraps a dbapi.ResultSet.
type ResultSet struct {
	ResultSet dbapi.ResultSet
	env       *env
	// stmt is closed with the result set when the proxy created it.
	stmt dbapi.Statement
}

var _ dbapi.ResultSet = (*ResultSet)(nil)

func wrapResultSet(rs dbapi.ResultSet, e *env) dbapi.ResultSet {
	if rs == nil {
		return nil
	}
	if p, ok := rs.(*ResultSet); ok {
		return p
	}
	return &ResultSet{ResultSet: rs, env: e}
}

// GetString reads column by name. An empty TABLE_NAME is read from the first
// column instead. If that fails too, the error of the named lookup wins.
func (rs *ResultSet) GetString(column string) (string, error) {
	v, err := rs.ResultSet.GetString(column)
	if (err == nil && v != "") || column != tableNameColumn {
		return v, err
	}

	fallback, ferr := rs.ResultSet.GetStringAt(1)
	switch {
	case ferr != nil:
		if err != nil {
			return "", err
		}
		return "", ferr
	case fallback == "":
		return "", err
	}
	rs.env.corrected(KindResultSet, "GetString", err, nil)
	return fallback, nil
}

func (rs *ResultSet) MetaData() (dbapi.ResultSetMetaData, error) {
	md, err := rs.ResultSet.MetaData()
	if err != nil {
		return nil, err
	}
	return wrapResultSetMetaData(md, rs.env), nil
}

func (rs *ResultSet) Next() (bool, error) {
	return rs.ResultSet.Next()
}

func (rs *ResultSet) Close() error {
	err := rs.ResultSet.Close()
	if rs.stmt != nil {
		err = appendErr(err, rs.stmt.Close())
	}
	return err
}

func (rs *ResultSet) IsClosed() (bool, error) {
	return rs.ResultSet.IsClosed()
}

func (rs *ResultSet) FindColumn(name string) (int, error) {
	return rs.ResultSet.FindColumn(name)
}

func (rs *ResultSet) GetStringAt(index int) (string, error) {
	return rs.ResultSet.GetStringAt(index)
}

func (rs *ResultSet) GetInt64(column string) (int64, error) {
	return rs.ResultSet.GetInt64(column)
}

func (rs *ResultSet) GetInt64At(index int) (int64, error) {
	return rs.ResultSet.GetInt64At(index)
}

func (rs *ResultSet) GetFloat64(column string) (float64, error) {
	return rs.ResultSet.GetFloat64(column)
}

func (rs *ResultSet) GetFloat64At(index int) (float64, error) {
	return rs.ResultSet.GetFloat64At(index)
}

func (rs *ResultSet) GetBool(column string) (bool, error) {
	return rs.ResultSet.GetBool(column)
}

func (rs *ResultSet) GetBoolAt(index int) (bool, error) {
	return rs.ResultSet.GetBoolAt(index)
}

func (rs *ResultSet) GetObject(column string) (interface{}, error) {
	return rs.ResultSet.GetObject(column)
}

func (rs *ResultSet) GetObjectAt(index int) (interface{}, error) {
	return rs.ResultSet.GetObjectAt(index)
}

func (rs *ResultSet) WasNull() (bool, error) {
	return rs.ResultSet.WasNull()
}
