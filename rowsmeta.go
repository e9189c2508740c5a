package proxy

import "github.com/shogo82148/go-sql-shim/dbapi"

// ResultSetMetaData wraps a dbapi.ResultSetMetaData.
type ResultSetMetaData struct {
	ResultSetMetaData dbapi.ResultSetMetaData
	env               *env
}

var _ dbapi.ResultSetMetaData = (*ResultSetMetaData)(nil)

func wrapResultSetMetaData(md dbapi.ResultSetMetaData, e *env) dbapi.ResultSetMetaData {
	if md == nil {
		return nil
	}
	if p, ok := md.(*ResultSetMetaData); ok {
		return p
	}
	return &ResultSetMetaData{ResultSetMetaData: md, env: e}
}

// IsSigned derives signedness from the column type when the driver cannot
// answer: numeric types are signed, everything else is not.
func (m *ResultSetMetaData) IsSigned(column int) (bool, error) {
	signed, err := m.ResultSetMetaData.IsSigned(column)
	return correct(m.env, KindResultSetMetaData, "IsSigned", signed, err, func() (bool, error) {
		return m.isSigned(column)
	})
}

func (m *ResultSetMetaData) isSigned(column int) (bool, error) {
	n, err := m.ResultSetMetaData.ColumnCount()
	if err != nil {
		return false, err
	}
	if column < 1 || column > n {
		return false, &InvalidColumnError{Column: column}
	}

	t, err := m.ResultSetMetaData.ColumnType(column)
	if err != nil {
		return false, err
	}
	switch t {
	case dbapi.Double, dbapi.Decimal, dbapi.Float,
		dbapi.Integer, dbapi.Real, dbapi.SmallInt, dbapi.TinyInt,
		dbapi.BigInt:
		return true, nil
	}
	return false, nil
}

func (m *ResultSetMetaData) ColumnCount() (int, error) {
	return m.ResultSetMetaData.ColumnCount()
}

func (m *ResultSetMetaData) ColumnName(column int) (string, error) {
	return m.ResultSetMetaData.ColumnName(column)
}

func (m *ResultSetMetaData) ColumnLabel(column int) (string, error) {
	return m.ResultSetMetaData.ColumnLabel(column)
}

func (m *ResultSetMetaData) ColumnType(column int) (dbapi.SQLType, error) {
	return m.ResultSetMetaData.ColumnType(column)
}

func (m *ResultSetMetaData) ColumnTypeName(column int) (string, error) {
	return m.ResultSetMetaData.ColumnTypeName(column)
}

func (m *ResultSetMetaData) Precision(column int) (int, error) {
	return m.ResultSetMetaData.Precision(column)
}

func (m *ResultSetMetaData) Scale(column int) (int, error) {
	return m.ResultSetMetaData.Scale(column)
}

func (m *ResultSetMetaData) IsNullable(column int) (int, error) {
	return m.ResultSetMetaData.IsNullable(column)
}

func (m *ResultSetMetaData) IsAutoIncrement(column int) (bool, error) {
	return m.ResultSetMetaData.IsAutoIncrement(column)
}

func (m *ResultSetMetaData) IsCaseSensitive(column int) (bool, error) {
	return m.ResultSetMetaData.IsCaseSensitive(column)
}

func (m *ResultSetMetaData) TableName(column int) (string, error) {
	return m.ResultSetMetaData.TableName(column)
}

func (m *ResultSetMetaData) SchemaName(column int) (string, error) {
	return m.ResultSetMetaData.SchemaName(column)
}

func (m *ResultSetMetaData) CatalogName(column int) (string, error) {
	return m.ResultSetMetaData.CatalogName(column)
}
