package fakedb

import (
	"fmt"

	"github.com/shogo82148/go-sql-shim/dbapi"
)

// Column describes one result column.
type Column struct {
	Name     string
	Type     dbapi.SQLType
	TypeName string
}

// Rows is a result set over Data. Nil cells are SQL NULL.
type Rows struct {
	Columns []Column
	Data    [][]interface{}
	// Fail scripts errors for both the result set and its metadata.
	Fail    Failures
	pos     int
	wasNull bool
	Closed  bool
}

var _ dbapi.ResultSet = (*Rows)(nil)

func (r *Rows) Next() (bool, error) {
	if err := r.Fail.fail("Next"); err != nil {
		return false, err
	}
	if r.pos >= len(r.Data) {
		return false, nil
	}
	r.pos++
	return true, nil
}

func (r *Rows) Close() error {
	r.Closed = true
	return r.Fail.fail("Close")
}

func (r *Rows) IsClosed() (bool, error) { return r.Closed, nil }

func (r *Rows) FindColumn(name string) (int, error) {
	for i, c := range r.Columns {
		if c.Name == name {
			return i + 1, nil
		}
	}
	return 0, dbapi.NewSQLError(fmt.Sprintf("Could not find %s in %v", name, r.names()))
}

func (r *Rows) names() []string {
	names := make([]string, len(r.Columns))
	for i, c := range r.Columns {
		names[i] = c.Name
	}
	return names
}

func (r *Rows) cell(index int) (interface{}, error) {
	if r.pos == 0 || r.pos > len(r.Data) {
		return nil, dbapi.NewSQLError("No row found.")
	}
	row := r.Data[r.pos-1]
	if index < 1 || index > len(row) {
		return nil, dbapi.NewSQLError(fmt.Sprintf("Invalid columnIndex: %d", index))
	}
	v := row[index-1]
	r.wasNull = v == nil
	return v, nil
}

func (r *Rows) named(column string) (interface{}, error) {
	i, err := r.FindColumn(column)
	if err != nil {
		return nil, err
	}
	return r.cell(i)
}

func (r *Rows) GetString(column string) (string, error) {
	if err := r.Fail.fail("GetString"); err != nil {
		return "", err
	}
	v, err := r.named(column)
	return toString(v), err
}

func (r *Rows) GetStringAt(index int) (string, error) {
	if err := r.Fail.fail("GetStringAt"); err != nil {
		return "", err
	}
	v, err := r.cell(index)
	return toString(v), err
}

func toString(v interface{}) string {
	if v == nil {
		return ""
	}
	return fmt.Sprint(v)
}

func (r *Rows) GetInt64(column string) (int64, error) {
	v, err := r.named(column)
	n, _ := v.(int64)
	return n, err
}

func (r *Rows) GetInt64At(index int) (int64, error) {
	v, err := r.cell(index)
	n, _ := v.(int64)
	return n, err
}

func (r *Rows) GetFloat64(column string) (float64, error) {
	v, err := r.named(column)
	f, _ := v.(float64)
	return f, err
}

func (r *Rows) GetFloat64At(index int) (float64, error) {
	v, err := r.cell(index)
	f, _ := v.(float64)
	return f, err
}

func (r *Rows) GetBool(column string) (bool, error) {
	v, err := r.named(column)
	b, _ := v.(bool)
	return b, err
}

func (r *Rows) GetBoolAt(index int) (bool, error) {
	v, err := r.cell(index)
	b, _ := v.(bool)
	return b, err
}

func (r *Rows) GetObject(column string) (interface{}, error) {
	return r.named(column)
}

func (r *Rows) GetObjectAt(index int) (interface{}, error) {
	return r.cell(index)
}

func (r *Rows) WasNull() (bool, error) { return r.wasNull, nil }

func (r *Rows) MetaData() (dbapi.ResultSetMetaData, error) {
	if err := r.Fail.fail("MetaData"); err != nil {
		return nil, err
	}
	return &RowsMeta{Columns: r.Columns, Fail: r.Fail}, nil
}

// RowsMeta describes Columns.
type RowsMeta struct {
	Columns []Column
	Fail    Failures
}

var _ dbapi.ResultSetMetaData = (*RowsMeta)(nil)

func (m *RowsMeta) column(i int) (Column, error) {
	if i < 1 || i > len(m.Columns) {
		return Column{}, dbapi.NewSQLError(fmt.Sprintf("Invalid column value: %d", i))
	}
	return m.Columns[i-1], nil
}

func (m *RowsMeta) ColumnCount() (int, error) {
	return len(m.Columns), m.Fail.fail("ColumnCount")
}

func (m *RowsMeta) ColumnName(i int) (string, error) {
	c, err := m.column(i)
	return c.Name, err
}

func (m *RowsMeta) ColumnLabel(i int) (string, error) {
	return m.ColumnName(i)
}

func (m *RowsMeta) ColumnType(i int) (dbapi.SQLType, error) {
	if err := m.Fail.fail("ColumnType"); err != nil {
		return 0, err
	}
	c, err := m.column(i)
	return c.Type, err
}

func (m *RowsMeta) ColumnTypeName(i int) (string, error) {
	c, err := m.column(i)
	if c.TypeName == "" {
		return c.Type.String(), err
	}
	return c.TypeName, err
}

func (m *RowsMeta) Precision(i int) (int, error) {
	_, err := m.column(i)
	return 0, err
}

func (m *RowsMeta) Scale(i int) (int, error) {
	_, err := m.column(i)
	return 0, err
}

func (m *RowsMeta) IsNullable(i int) (int, error) {
	_, err := m.column(i)
	return dbapi.ColumnNullableUnknown, err
}

func (m *RowsMeta) IsSigned(i int) (bool, error) {
	if err := m.Fail.fail("IsSigned"); err != nil {
		return false, err
	}
	c, err := m.column(i)
	return c.Type == dbapi.Integer || c.Type == dbapi.BigInt, err
}

func (m *RowsMeta) IsAutoIncrement(i int) (bool, error) {
	_, err := m.column(i)
	return false, err
}

func (m *RowsMeta) IsCaseSensitive(i int) (bool, error) {
	c, err := m.column(i)
	return c.Type == dbapi.VarChar, err
}

func (m *RowsMeta) TableName(i int) (string, error) {
	_, err := m.column(i)
	return "", err
}

func (m *RowsMeta) SchemaName(i int) (string, error) {
	_, err := m.column(i)
	return "", err
}

func (m *RowsMeta) CatalogName(i int) (string, error) {
	_, err := m.column(i)
	return "", err
}
