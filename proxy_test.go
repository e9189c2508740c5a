package proxy

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shogo82148/go-sql-shim/dbapi"
	"github.com/shogo82148/go-sql-shim/internal/fakedb"
)

const testURL = "jdbc:hive2://localhost:10000/default"

type fixture struct {
	drv         *fakedb.Driver
	conn        *fakedb.Conn
	meta        *fakedb.HiveMetaData
	client      *fakedb.Client
	proxy       *Driver
	corrections []Correction
}

func showTablesRows() *fakedb.Rows {
	return &fakedb.Rows{
		Columns: []fakedb.Column{{Name: "tab_name", Type: dbapi.VarChar}},
		Data:    [][]interface{}{{"orders"}, {"users"}},
	}
}

func ordersRows() *fakedb.Rows {
	return &fakedb.Rows{
		Columns: []fakedb.Column{
			{Name: "id", Type: dbapi.Integer},
			{Name: "price", Type: dbapi.Double},
			{Name: "name", Type: dbapi.VarChar},
			{Name: "created", Type: dbapi.Timestamp},
		},
		Data: [][]interface{}{
			{int64(1), 9.5, "pen", nil},
		},
	}
}

func newFixture(t *testing.T, opts ...Option) *fixture {
	t.Helper()
	f := &fixture{}
	f.client = &fakedb.Client{Results: map[string]*fakedb.Rows{"show tables": showTablesRows()}}
	f.meta = &fakedb.HiveMetaData{
		MetaData: &fakedb.MetaData{Quote: "'", Listing: &fakedb.Rows{}},
		Handle:   f.client,
	}
	f.conn = &fakedb.Conn{
		Meta:    f.meta,
		Results: map[string]*fakedb.Rows{"select * from orders": ordersRows()},
	}
	f.drv = &fakedb.Driver{Conn: f.conn, Accepts: true}

	hooks := &Hooks{
		Correction: func(c Correction) {
			f.corrections = append(f.corrections, c)
		},
	}
	base := []Option{WithSignatures(DefaultNotSupportedMessage), WithHooks(hooks)}
	f.proxy = Wrap(f.drv, append(base, opts...)...)
	return f
}

func (f *fixture) connect(t *testing.T) *Conn {
	t.Helper()
	c, err := f.proxy.Connect(testURL, nil)
	if err != nil {
		t.Fatalf("Connect() error = %v", err)
	}
	pc, ok := c.(*Conn)
	if !ok {
		t.Fatalf("Connect() = %T, want *Conn", c)
	}
	return pc
}

func TestWrapIsIdempotent(t *testing.T) {
	f := newFixture(t)
	if got := Wrap(f.proxy); got != f.proxy {
		t.Errorf("Wrap(proxy) = %p, want %p", got, f.proxy)
	}
	if got := Wrap(f.drv); got == f.proxy {
		t.Error("Wrap(driver) returned an existing proxy")
	}
}

func TestWrapTypedNilDelegate(t *testing.T) {
	e := options{}.env()
	var rows *fakedb.Rows
	if got := wrapResultSet(rows, e); got == nil {
		t.Error("typed nil result set was not wrapped")
	}
	if got := wrapResultSet(nil, e); got != nil {
		t.Errorf("wrapResultSet(nil) = %v, want nil", got)
	}
}

func TestDriverConnect(t *testing.T) {
	f := newFixture(t)
	c := f.connect(t)
	if c.Conn != f.conn {
		t.Errorf("Conn delegate = %v, want the driver's connection", c.Conn)
	}
	if c.ID == "" {
		t.Error("Conn.ID is empty")
	}
	if f.conn.URL != testURL {
		t.Errorf("delegate url = %q, want %q", f.conn.URL, testURL)
	}

	other := f.connect(t)
	if other.ID == c.ID {
		t.Errorf("two connections share id %q", c.ID)
	}
}

func TestDriverConnectNotAccepted(t *testing.T) {
	p := Wrap(&fakedb.Driver{}, WithSignatures(DefaultNotSupportedMessage))
	c, err := p.Connect("jdbc:mysql://localhost/db", nil)
	if c != nil || err != nil {
		t.Errorf("Connect() = %v, %v, want nil, nil", c, err)
	}
}

func TestDriverConnectErrorPassesThrough(t *testing.T) {
	want := dbapi.NewSQLError("Could not open client transport")
	p := Wrap(&fakedb.Driver{ConnectErr: want})
	_, err := p.Connect(testURL, nil)
	if err != want {
		t.Errorf("Connect() error = %v, want %v", err, want)
	}

	// factory failures are never treated as defects
	defect := fakedb.NotSupported()
	p = Wrap(&fakedb.Driver{ConnectErr: defect}, WithSignatures(DefaultNotSupportedMessage))
	if _, err := p.Connect(testURL, nil); err != defect {
		t.Errorf("Connect() error = %v, want %v", err, defect)
	}
}

func TestDriverConnectHook(t *testing.T) {
	want := errors.New("rejected")
	conn := &fakedb.Conn{}
	var seen *Conn
	p := NewProxy(&fakedb.Driver{Conn: conn}, &Hooks{
		Connect: func(c *Conn) error {
			seen = c
			return want
		},
	})
	_, err := p.Connect(testURL, nil)
	if err != want {
		t.Errorf("Connect() error = %v, want %v", err, want)
	}
	if seen == nil || seen.Conn != conn {
		t.Errorf("hook saw %v, want the wrapped connection", seen)
	}
	if !conn.Closed {
		t.Error("connection was not closed after the hook failed")
	}
}

func TestDriverForwards(t *testing.T) {
	f := newFixture(t)
	ok, err := f.proxy.AcceptsURL(testURL)
	if !ok || err != nil {
		t.Errorf("AcceptsURL() = %v, %v, want true, nil", ok, err)
	}
	if got := f.proxy.MinorVersion(); got != f.drv.MinorVersion() {
		t.Errorf("MinorVersion() = %d, want %d", got, f.drv.MinorVersion())
	}
	if got := f.proxy.MajorVersion(); got != f.drv.MajorVersion() {
		t.Errorf("MajorVersion() = %d, want %d", got, f.drv.MajorVersion())
	}
	if f.proxy.Compliant() {
		t.Error("Compliant() = true, want false")
	}
}

func TestDefaultSignatures(t *testing.T) {
	got := DefaultSignatures()
	if len(got) == 0 {
		t.Fatal("DefaultSignatures() is empty")
	}
	got[0] = "changed"
	if DefaultSignatures()[0] == "changed" {
		t.Error("DefaultSignatures() exposes shared state")
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindDriver, "driver"},
		{KindConn, "connection"},
		{KindStatement, "statement"},
		{KindMetaData, "metadata"},
		{KindResultSet, "resultset"},
		{KindResultSetMetaData, "resultset-metadata"},
		{Kind(42), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", int(tt.kind), got, tt.want)
		}
	}
}

type hookEvent struct {
	Name   string
	ConnID string
	Query  string
	Count  int64
}

func recordingHooks(events *[]hookEvent) *Hooks {
	return &Hooks{
		Query: func(connID, query string, rs dbapi.ResultSet) error {
			*events = append(*events, hookEvent{Name: "query", ConnID: connID, Query: query})
			return nil
		},
		Exec: func(connID, query string, count int64) error {
			*events = append(*events, hookEvent{Name: "exec", ConnID: connID, Query: query, Count: count})
			return nil
		},
		Commit: func(conn *Conn) error {
			*events = append(*events, hookEvent{Name: "commit", ConnID: conn.ID})
			return nil
		},
		Rollback: func(conn *Conn) error {
			*events = append(*events, hookEvent{Name: "rollback", ConnID: conn.ID})
			return nil
		},
	}
}

func TestStatementHooks(t *testing.T) {
	var events []hookEvent
	f := newFixture(t, WithHooks(recordingHooks(&events)))
	c := f.connect(t)

	stmt, err := c.CreateStatement()
	if err != nil {
		t.Fatalf("CreateStatement() error = %v", err)
	}
	if _, err := stmt.ExecuteQuery("select * from orders"); err != nil {
		t.Fatalf("ExecuteQuery() error = %v", err)
	}
	if _, err := stmt.ExecuteUpdate("insert into orders values (2, 1.0, 'ink', null)"); err != nil {
		t.Fatalf("ExecuteUpdate() error = %v", err)
	}
	ps, err := c.PrepareStatement("select * from orders")
	if err != nil {
		t.Fatalf("PrepareStatement() error = %v", err)
	}
	if _, err := ps.Query(); err != nil {
		t.Fatalf("Query() error = %v", err)
	}
	if _, err := ps.Update(); err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if err := c.Commit(); err != nil {
		t.Fatalf("Commit() error = %v", err)
	}
	if err := c.Rollback(); err != nil {
		t.Fatalf("Rollback() error = %v", err)
	}

	want := []hookEvent{
		{Name: "query", ConnID: c.ID, Query: "select * from orders"},
		{Name: "exec", ConnID: c.ID, Query: "insert into orders values (2, 1.0, 'ink', null)"},
		{Name: "query", ConnID: c.ID, Query: "select * from orders"},
		{Name: "exec", ConnID: c.ID, Query: "select * from orders"},
		{Name: "commit", ConnID: c.ID},
		{Name: "rollback", ConnID: c.ID},
	}
	if diff := cmp.Diff(want, events); diff != "" {
		t.Errorf("hook events mismatch (-want +got):\n%s", diff)
	}
}

func TestStatementHookErrors(t *testing.T) {
	rejected := errors.New("rejected")
	f := newFixture(t, WithHooks(&Hooks{
		Query: func(connID, query string, rs dbapi.ResultSet) error { return rejected },
		Exec:  func(connID, query string, count int64) error { return rejected },
	}))
	stmt, err := f.connect(t).CreateStatement()
	if err != nil {
		t.Fatalf("CreateStatement() error = %v", err)
	}

	rs, err := stmt.ExecuteQuery("select * from orders")
	if rs != nil || err != rejected {
		t.Errorf("ExecuteQuery() = %v, %v, want nil, %v", rs, err, rejected)
	}
	if !f.conn.Results["select * from orders"].Closed {
		t.Error("rejected result set left open")
	}
	if _, err := stmt.ExecuteUpdate("truncate table orders"); err != rejected {
		t.Errorf("ExecuteUpdate() error = %v, want %v", err, rejected)
	}

	if _, err := stmt.ExecuteQuery("select * from missing"); err == rejected {
		t.Error("query hook ran for a failed query")
	}
}
