package proxy

import "github.com/shogo82148/go-sql-shim/dbapi"

const (
	tableType       = "TABLE"
	showTablesQuery = "show tables"
	identifierQuote = ""
)

// DatabaseMetaData wraps a dbapi.DatabaseMetaData. Result sets it returns are
// wrapped.
type DatabaseMetaData struct {
	DatabaseMetaData dbapi.DatabaseMetaData
	env              *env
}

var _ dbapi.DatabaseMetaData = (*DatabaseMetaData)(nil)

func wrapMetaData(md dbapi.DatabaseMetaData, e *env) dbapi.DatabaseMetaData {
	if md == nil {
		return nil
	}
	if p, ok := md.(*DatabaseMetaData); ok {
		return p
	}
	return &DatabaseMetaData{DatabaseMetaData: md, env: e}
}

func (m *DatabaseMetaData) resultSet(rs dbapi.ResultSet, err error) (dbapi.ResultSet, error) {
	if err != nil {
		return nil, err
	}
	return wrapResultSet(rs, m.env), nil
}

// Tables lists tables with "show tables" whenever plain tables are requested,
// since the driver's own listing comes back empty. Schema and name patterns
// are not applied on that path. Requests for other table types only go to
// the driver.
func (m *DatabaseMetaData) Tables(catalog, schemaPattern, tableNamePattern string, types []string) (dbapi.ResultSet, error) {
	if !wantsTables(types) {
		return m.resultSet(m.DatabaseMetaData.Tables(catalog, schemaPattern, tableNamePattern, types))
	}
	rs, err := m.showTables()
	m.env.corrected(KindMetaData, "Tables", nil, err)
	return m.resultSet(rs, err)
}

func wantsTables(types []string) bool {
	if types == nil {
		return true
	}
	for _, t := range types {
		if t == tableType {
			return true
		}
	}
	return false
}

func (m *DatabaseMetaData) showTables() (dbapi.ResultSet, error) {
	cp, ok := m.DatabaseMetaData.(dbapi.ClientProvider)
	if !ok {
		return nil, &WiringError{Op: "show tables", Err: errNoClient}
	}
	client, err := cp.Client()
	if err != nil {
		return nil, &WiringError{Op: "show tables: client", Err: err}
	}
	if client == nil {
		return nil, &WiringError{Op: "show tables", Err: errNoClient}
	}
	stmt, err := client.NewStatement()
	if err != nil {
		return nil, &WiringError{Op: "show tables: statement", Err: err}
	}
	rs, err := stmt.ExecuteQuery(showTablesQuery)
	if err != nil {
		return nil, appendErr(err, stmt.Close())
	}
	if rs == nil {
		return nil, stmt.Close()
	}
	// The statement is ours; closing the listing closes it.
	return &ResultSet{ResultSet: rs, env: m.env, stmt: stmt}, nil
}

func (m *DatabaseMetaData) Schemas() (dbapi.ResultSet, error) {
	return m.resultSet(m.DatabaseMetaData.Schemas())
}

func (m *DatabaseMetaData) Catalogs() (dbapi.ResultSet, error) {
	return m.resultSet(m.DatabaseMetaData.Catalogs())
}

func (m *DatabaseMetaData) TableTypes() (dbapi.ResultSet, error) {
	return m.resultSet(m.DatabaseMetaData.TableTypes())
}

func (m *DatabaseMetaData) Columns(catalog, schemaPattern, tableNamePattern, columnNamePattern string) (dbapi.ResultSet, error) {
	return m.resultSet(m.DatabaseMetaData.Columns(catalog, schemaPattern, tableNamePattern, columnNamePattern))
}

func (m *DatabaseMetaData) PrimaryKeys(catalog, schema, table string) (dbapi.ResultSet, error) {
	return m.resultSet(m.DatabaseMetaData.PrimaryKeys(catalog, schema, table))
}

func (m *DatabaseMetaData) TypeInfo() (dbapi.ResultSet, error) {
	return m.resultSet(m.DatabaseMetaData.TypeInfo())
}

// IdentifierQuoteString reports no quoting when WithIdentifierQuoteFix is set.
func (m *DatabaseMetaData) IdentifierQuoteString() (string, error) {
	if m.env.quoteFix {
		m.env.corrected(KindMetaData, "IdentifierQuoteString", nil, nil)
		return identifierQuote, nil
	}
	return m.DatabaseMetaData.IdentifierQuoteString()
}

func (m *DatabaseMetaData) DatabaseProductName() (string, error) {
	return m.DatabaseMetaData.DatabaseProductName()
}

func (m *DatabaseMetaData) DatabaseProductVersion() (string, error) {
	return m.DatabaseMetaData.DatabaseProductVersion()
}

func (m *DatabaseMetaData) DriverName() (string, error) {
	return m.DatabaseMetaData.DriverName()
}

func (m *DatabaseMetaData) DriverVersion() (string, error) {
	return m.DatabaseMetaData.DriverVersion()
}

func (m *DatabaseMetaData) URL() (string, error) {
	return m.DatabaseMetaData.URL()
}

func (m *DatabaseMetaData) UserName() (string, error) {
	return m.DatabaseMetaData.UserName()
}

func (m *DatabaseMetaData) SupportsTransactions() (bool, error) {
	return m.DatabaseMetaData.SupportsTransactions()
}
