package proxy

import (
	"testing"

	"github.com/shogo82148/go-sql-shim/dbapi"
	"github.com/shogo82148/go-sql-shim/internal/fakedb"
)

func newResultSet(t *testing.T, rows *fakedb.Rows) *ResultSet {
	t.Helper()
	e := options{classifier: Signatures{DefaultNotSupportedMessage}}.env()
	rs := wrapResultSet(rows, e).(*ResultSet)
	if ok, err := rs.Next(); !ok || err != nil {
		t.Fatalf("Next() = %v, %v", ok, err)
	}
	return rs
}

func TestResultSetGetStringTableName(t *testing.T) {
	namedErr := dbapi.NewSQLError("Could not find TABLE_NAME in [tab_name]")
	posErr := dbapi.NewSQLError("Invalid columnIndex: 1")
	showTables := []fakedb.Column{{Name: "tab_name"}}
	listing := []fakedb.Column{{Name: "tab_name"}, {Name: "TABLE_NAME"}}
	lowerListing := []fakedb.Column{{Name: "tab_name"}, {Name: "table_name"}}

	tests := []struct {
		name    string
		columns []fakedb.Column
		row     []interface{}
		fail    fakedb.Failures
		column  string
		want    string
		wantErr error
	}{
		{"named value", listing, []interface{}{"ignored", "orders"}, nil, "TABLE_NAME", "orders", nil},
		{"empty named value", listing, []interface{}{"orders", nil}, nil, "TABLE_NAME", "orders", nil},
		{"blank named value", listing, []interface{}{"orders", ""}, nil, "TABLE_NAME", "orders", nil},
		{"unnamed column", showTables, []interface{}{"orders"}, fakedb.Failures{"GetString": namedErr}, "TABLE_NAME", "orders", nil},
		{"both empty after failure", showTables, []interface{}{nil}, fakedb.Failures{"GetString": namedErr}, "TABLE_NAME", "", namedErr},
		{"both failing", showTables, []interface{}{"orders"}, fakedb.Failures{"GetString": namedErr, "GetStringAt": posErr}, "TABLE_NAME", "", namedErr},
		{"fallback failing", listing, []interface{}{"orders", nil}, fakedb.Failures{"GetStringAt": posErr}, "TABLE_NAME", "", posErr},
		{"both empty", listing, []interface{}{nil, nil}, nil, "TABLE_NAME", "", nil},
		{"other column empty", listing, []interface{}{"orders", nil}, fakedb.Failures{"GetStringAt": posErr}, "tab_name", "orders", nil},
		{"other column failing", showTables, []interface{}{"orders"}, fakedb.Failures{"GetString": namedErr}, "tab_name", "", namedErr},
		{"lower case name", lowerListing, []interface{}{"orders", nil}, nil, "table_name", "", nil},
	}
	for _, tt := range tests {
		rs := newResultSet(t, &fakedb.Rows{Columns: tt.columns, Data: [][]interface{}{tt.row}, Fail: tt.fail})
		got, err := rs.GetString(tt.column)
		if err != tt.wantErr {
			t.Errorf("%q. GetString(%q) error = %v, want %v", tt.name, tt.column, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("%q. GetString(%q) = %q, want %q", tt.name, tt.column, got, tt.want)
		}
	}
}

func TestResultSetForwards(t *testing.T) {
	rows := ordersRows()
	rs := newResultSet(t, rows)

	if n, err := rs.GetInt64("id"); n != 1 || err != nil {
		t.Errorf("GetInt64(id) = %d, %v, want 1, nil", n, err)
	}
	if p, err := rs.GetFloat64At(2); p != 9.5 || err != nil {
		t.Errorf("GetFloat64At(2) = %v, %v, want 9.5, nil", p, err)
	}
	if v, err := rs.GetObject("created"); v != nil || err != nil {
		t.Errorf("GetObject(created) = %v, %v, want nil, nil", v, err)
	}
	if null, _ := rs.WasNull(); !null {
		t.Error("WasNull() = false after reading NULL")
	}
	if i, err := rs.FindColumn("name"); i != 3 || err != nil {
		t.Errorf("FindColumn(name) = %d, %v, want 3, nil", i, err)
	}

	md, err := rs.MetaData()
	if err != nil {
		t.Fatalf("MetaData() error = %v", err)
	}
	if _, ok := md.(*ResultSetMetaData); !ok {
		t.Errorf("MetaData() = %T, want *ResultSetMetaData", md)
	}

	if ok, err := rs.Next(); ok || err != nil {
		t.Errorf("Next() past the end = %v, %v, want false, nil", ok, err)
	}
	if err := rs.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if !rows.Closed {
		t.Error("delegate not closed")
	}
}

func TestResultSetMetaDataFailurePassesThrough(t *testing.T) {
	defect := fakedb.NotSupported()
	rs := newResultSet(t, &fakedb.Rows{
		Columns: []fakedb.Column{{Name: "tab_name"}},
		Data:    [][]interface{}{{"orders"}},
		Fail:    fakedb.Failures{"MetaData": defect},
	})
	if _, err := rs.MetaData(); err != defect {
		t.Errorf("MetaData() error = %v, want %v", err, defect)
	}
}
