package dbapi

import "strconv"

// SQLType is a standard SQL type code. The numbering follows the codes used by
// call-level database clients, so driver-reported values map unchanged.
type SQLType int

const (
	Bit         SQLType = -7
	TinyInt     SQLType = -6
	SmallInt    SQLType = 5
	Integer     SQLType = 4
	BigInt      SQLType = -5
	Float       SQLType = 6
	Real        SQLType = 7
	Double      SQLType = 8
	Numeric     SQLType = 2
	Decimal     SQLType = 3
	Char        SQLType = 1
	VarChar     SQLType = 12
	LongVarChar SQLType = -1
	Date        SQLType = 91
	Time        SQLType = 92
	Timestamp   SQLType = 93
	Binary      SQLType = -2
	VarBinary   SQLType = -3
	Null        SQLType = 0
	Other       SQLType = 1111
	Struct      SQLType = 2002
	Array       SQLType = 2003
	Boolean     SQLType = 16
)

var typeNames = map[SQLType]string{
	Bit:         "BIT",
	TinyInt:     "TINYINT",
	SmallInt:    "SMALLINT",
	Integer:     "INTEGER",
	BigInt:      "BIGINT",
	Float:       "FLOAT",
	Real:        "REAL",
	Double:      "DOUBLE",
	Numeric:     "NUMERIC",
	Decimal:     "DECIMAL",
	Char:        "CHAR",
	VarChar:     "VARCHAR",
	LongVarChar: "LONGVARCHAR",
	Date:        "DATE",
	Time:        "TIME",
	Timestamp:   "TIMESTAMP",
	Binary:      "BINARY",
	VarBinary:   "VARBINARY",
	Null:        "NULL",
	Other:       "OTHER",
	Struct:      "STRUCT",
	Array:       "ARRAY",
	Boolean:     "BOOLEAN",
}

func (t SQLType) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "SQLType(" + strconv.Itoa(int(t)) + ")"
}
