package fakedb

import "github.com/shogo82148/go-sql-shim/dbapi"

// TablesCall records the arguments of one MetaData.Tables call.
type TablesCall struct {
	Catalog, SchemaPattern, TableNamePattern string
	Types                                    []string
}

// MetaData answers every listing with Listing.
type MetaData struct {
	Fail    Failures
	Listing *Rows
	Quote   string
	Calls   []TablesCall
}

var _ dbapi.DatabaseMetaData = (*MetaData)(nil)

func (m *MetaData) listing(op string) (dbapi.ResultSet, error) {
	if err := m.Fail.fail(op); err != nil {
		return nil, err
	}
	if m.Listing == nil {
		return nil, nil
	}
	return m.Listing, nil
}

func (m *MetaData) Tables(catalog, schemaPattern, tableNamePattern string, types []string) (dbapi.ResultSet, error) {
	m.Calls = append(m.Calls, TablesCall{catalog, schemaPattern, tableNamePattern, types})
	return m.listing("Tables")
}

func (m *MetaData) Schemas() (dbapi.ResultSet, error)    { return m.listing("Schemas") }
func (m *MetaData) Catalogs() (dbapi.ResultSet, error)   { return m.listing("Catalogs") }
func (m *MetaData) TableTypes() (dbapi.ResultSet, error) { return m.listing("TableTypes") }
func (m *MetaData) TypeInfo() (dbapi.ResultSet, error)   { return m.listing("TypeInfo") }

func (m *MetaData) Columns(catalog, schemaPattern, tableNamePattern, columnNamePattern string) (dbapi.ResultSet, error) {
	return m.listing("Columns")
}

func (m *MetaData) PrimaryKeys(catalog, schema, table string) (dbapi.ResultSet, error) {
	return m.listing("PrimaryKeys")
}

func (m *MetaData) IdentifierQuoteString() (string, error) {
	return m.Quote, m.Fail.fail("IdentifierQuoteString")
}

func (m *MetaData) DatabaseProductName() (string, error)    { return "Apache Hive", nil }
func (m *MetaData) DatabaseProductVersion() (string, error) { return "0.13.0", nil }
func (m *MetaData) DriverName() (string, error)             { return "Hive JDBC", nil }
func (m *MetaData) DriverVersion() (string, error)          { return "0.13.0", nil }
func (m *MetaData) URL() (string, error)                    { return "", m.Fail.fail("URL") }
func (m *MetaData) UserName() (string, error)               { return "", m.Fail.fail("UserName") }
func (m *MetaData) SupportsTransactions() (bool, error)     { return false, nil }

// HiveMetaData additionally exposes the client the connection runs on.
type HiveMetaData struct {
	*MetaData
	Handle    *Client
	ClientErr error
}

var _ dbapi.ClientProvider = (*HiveMetaData)(nil)

func (m *HiveMetaData) Client() (dbapi.Client, error) {
	if m.ClientErr != nil {
		return nil, m.ClientErr
	}
	if m.Handle == nil {
		return nil, nil
	}
	return m.Handle, nil
}

// Client builds statements over Results.
type Client struct {
	Results      map[string]*Rows
	StatementErr error
	// Fail is shared by every statement the client creates.
	Fail    Failures
	Created []*Statement
}

var _ dbapi.Client = (*Client)(nil)

func (c *Client) NewStatement() (dbapi.Statement, error) {
	if c.StatementErr != nil {
		return nil, c.StatementErr
	}
	s := &Statement{Fail: c.Fail, Results: c.Results}
	c.Created = append(c.Created, s)
	return s, nil
}
