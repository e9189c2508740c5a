// Package dbapi declares the client API a database driver exposes: a driver
// producing connections, statements, connection metadata, result sets and
// result set metadata.
//
// The interfaces mirror the classic call-level database client contract so
// that drivers written against it (Hive, for one) can be wrapped without
// changing their shape. Column and parameter indexes are 1-based.
package dbapi

// Properties are the connection properties passed to Driver.Connect.
type Properties map[string]string

// Result set types accepted by Conn.CreateStatementWith.
const (
	TypeForwardOnly       = 1003
	TypeScrollInsensitive = 1004
	TypeScrollSensitive   = 1005
)

// Result set concurrency modes accepted by Conn.CreateStatementWith.
const (
	ConcurReadOnly  = 1007
	ConcurUpdatable = 1008
)

// Column nullability reported by ResultSetMetaData.IsNullable.
const (
	ColumnNoNulls         = 0
	ColumnNullable        = 1
	ColumnNullableUnknown = 2
)

// Driver opens connections.
type Driver interface {
	// Connect opens a connection to url. It returns nil, nil when the driver
	// does not handle url.
	Connect(url string, props Properties) (Conn, error)
	AcceptsURL(url string) (bool, error)
	MajorVersion() int
	MinorVersion() int
	Compliant() bool
}

// Conn is a session with a database.
type Conn interface {
	CreateStatement() (Statement, error)
	// CreateStatementWith creates a statement producing result sets of the
	// given type and concurrency.
	CreateStatementWith(resultSetType, concurrency int) (Statement, error)
	PrepareStatement(query string) (PreparedStatement, error)
	MetaData() (DatabaseMetaData, error)

	SetReadOnly(readOnly bool) error
	IsReadOnly() (bool, error)
	SetAutoCommit(autoCommit bool) error
	AutoCommit() (bool, error)
	Commit() error
	Rollback() error
	Catalog() (string, error)
	SetCatalog(catalog string) error

	IsClosed() (bool, error)
	Close() error
}

// Statement executes SQL text.
type Statement interface {
	ExecuteQuery(sql string) (ResultSet, error)
	ExecuteUpdate(sql string) (int64, error)
	// Execute runs sql and reports whether the first result is a result set.
	Execute(sql string) (bool, error)
	// ResultSet returns the current result, or nil when there is none.
	ResultSet() (ResultSet, error)
	UpdateCount() (int64, error)

	SetMaxRows(n int) error
	MaxRows() (int, error)
	SetFetchSize(n int) error
	FetchSize() (int, error)
	SetQueryTimeout(seconds int) error
	QueryTimeout() (int, error)

	Cancel() error
	IsClosed() (bool, error)
	Close() error
}

// PreparedStatement is a precompiled statement with positional parameters.
type PreparedStatement interface {
	Statement

	SetNull(index int, sqlType SQLType) error
	SetString(index int, v string) error
	SetInt64(index int, v int64) error
	SetFloat64(index int, v float64) error
	SetBool(index int, v bool) error
	SetObject(index int, v interface{}) error
	ClearParameters() error

	Query() (ResultSet, error)
	Update() (int64, error)
	Run() (bool, error)
	// MetaData describes the columns Query will return.
	MetaData() (ResultSetMetaData, error)
}

// DatabaseMetaData describes the database behind a connection.
type DatabaseMetaData interface {
	// Tables lists tables. A nil types slice means every table type.
	Tables(catalog, schemaPattern, tableNamePattern string, types []string) (ResultSet, error)
	Schemas() (ResultSet, error)
	Catalogs() (ResultSet, error)
	TableTypes() (ResultSet, error)
	Columns(catalog, schemaPattern, tableNamePattern, columnNamePattern string) (ResultSet, error)
	PrimaryKeys(catalog, schema, table string) (ResultSet, error)
	TypeInfo() (ResultSet, error)

	IdentifierQuoteString() (string, error)
	DatabaseProductName() (string, error)
	DatabaseProductVersion() (string, error)
	DriverName() (string, error)
	DriverVersion() (string, error)
	URL() (string, error)
	UserName() (string, error)
	SupportsTransactions() (bool, error)
}

// ResultSet is a forward cursor over rows.
//
// A SQL NULL is read as the zero value; WasNull reports it afterwards.
type ResultSet interface {
	Next() (bool, error)
	Close() error
	IsClosed() (bool, error)

	FindColumn(name string) (int, error)
	GetString(column string) (string, error)
	GetStringAt(index int) (string, error)
	GetInt64(column string) (int64, error)
	GetInt64At(index int) (int64, error)
	GetFloat64(column string) (float64, error)
	GetFloat64At(index int) (float64, error)
	GetBool(column string) (bool, error)
	GetBoolAt(index int) (bool, error)
	GetObject(column string) (interface{}, error)
	GetObjectAt(index int) (interface{}, error)
	WasNull() (bool, error)

	MetaData() (ResultSetMetaData, error)
}

// ResultSetMetaData describes the columns of a result set.
type ResultSetMetaData interface {
	ColumnCount() (int, error)
	ColumnName(column int) (string, error)
	ColumnLabel(column int) (string, error)
	ColumnType(column int) (SQLType, error)
	ColumnTypeName(column int) (string, error)
	Precision(column int) (int, error)
	Scale(column int) (int, error)
	IsNullable(column int) (int, error)
	IsSigned(column int) (bool, error)
	IsAutoIncrement(column int) (bool, error)
	IsCaseSensitive(column int) (bool, error)
	TableName(column int) (string, error)
	SchemaName(column int) (string, error)
	CatalogName(column int) (string, error)
}

// ClientProvider is implemented by metadata objects that can hand out the
// low-level client the connection was built on.
type ClientProvider interface {
	Client() (Client, error)
}

// Client is a driver-internal handle able to build statements without going
// through the connection.
type Client interface {
	NewStatement() (Statement, error)
}
