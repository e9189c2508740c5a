// Package proxy wraps a dbapi.Driver whose implementation of the client API is
// incomplete (the Hive driver being the motivating case) and substitutes
// working behavior for a fixed set of known defects.
//
// Every object reachable from a wrapped driver (connections, statements,
// metadata, result sets and result set metadata) is wrapped in turn, so the
// corrections apply transitively. Operations that are not corrected are
// forwarded to the real object unchanged.
//
// Delegates are recognized by comparison with nil only. A driver that returns
// a typed nil pointer inside a non-nil interface gets that value wrapped, and
// calls on the wrapper reach the nil pointer. Drivers must return an untyped
// nil for absent objects.
package proxy

import (
	"sync"

	"github.com/google/uuid"
	"github.com/shogo82148/go-sql-shim/dbapi"
)

// Kind identifies the capability an interceptor wraps.
type Kind int

const (
	KindDriver Kind = iota
	KindConn
	KindStatement
	KindMetaData
	KindResultSet
	KindResultSetMetaData
)

func (k Kind) String() string {
	switch k {
	case KindDriver:
		return "driver"
	case KindConn:
		return "connection"
	case KindStatement:
		return "statement"
	case KindMetaData:
		return "metadata"
	case KindResultSet:
		return "resultset"
	case KindResultSetMetaData:
		return "resultset-metadata"
	default:
		return "unknown"
	}
}

// Correction describes one substitute run in place of a driver defect.
type Correction struct {
	Kind Kind
	Op   string
	// ConnID is the id of the connection the object was obtained from.
	ConnID string
	// Err is the defect the substitute replaced. It is nil for corrections
	// that bypass the driver without calling it first.
	Err error
	// Failure is the error the substitute itself returned, if any.
	Failure error
}

// HooksInterface receives events from every object of a proxied driver.
// Query and exec hooks run after the driver call succeeded; an error they
// return is returned to the caller instead of the result.
type HooksInterface interface {
	ConnectFunc(conn *Conn) error
	QueryFunc(connID, query string, rs dbapi.ResultSet) error
	ExecFunc(connID, query string, count int64) error
	CommitFunc(conn *Conn) error
	RollbackFunc(conn *Conn) error
	CorrectionFunc(c Correction)
}

type Hooks struct {
	Connect    func(conn *Conn) error
	Query      func(connID, query string, rs dbapi.ResultSet) error
	Exec       func(connID, query string, count int64) error
	Commit     func(conn *Conn) error
	Rollback   func(conn *Conn) error
	Correction func(c Correction)
}

func (h *Hooks) ConnectFunc(conn *Conn) error {
	if h.Connect == nil {
		return nil
	}
	return h.Connect(conn)
}

func (h *Hooks) QueryFunc(connID, query string, rs dbapi.ResultSet) error {
	if h.Query == nil {
		return nil
	}
	return h.Query(connID, query, rs)
}

func (h *Hooks) ExecFunc(connID, query string, count int64) error {
	if h.Exec == nil {
		return nil
	}
	return h.Exec(connID, query, count)
}

func (h *Hooks) CommitFunc(conn *Conn) error {
	if h.Commit == nil {
		return nil
	}
	return h.Commit(conn)
}

func (h *Hooks) RollbackFunc(conn *Conn) error {
	if h.Rollback == nil {
		return nil
	}
	return h.Rollback(conn)
}

func (h *Hooks) CorrectionFunc(c Correction) {
	if h.Correction == nil {
		return
	}
	h.Correction(c)
}

var (
	initOnce          sync.Once
	defaultSignatures Signatures
)

func initialize() {
	defaultSignatures = loadDefaultSignatures()
}

// DefaultSignatures returns the not-supported messages used when no
// classifier is configured. It is read once from the environment
// (SQLSHIM_NOT_SUPPORTED_MESSAGES, ';'-separated) and falls back to
// DefaultNotSupportedMessage.
func DefaultSignatures() Signatures {
	initOnce.Do(initialize)
	return append(Signatures(nil), defaultSignatures...)
}

// Driver wraps a dbapi.Driver.
type Driver struct {
	Driver dbapi.Driver
	env    *env
}

var _ dbapi.Driver = (*Driver)(nil)

// Wrap returns a proxy for d. Wrapping a proxy returns it unchanged, but
// Wrap keeps no registry of drivers: wrapping the same underlying driver twice
// yields two independent proxies. Callers wanting a single proxy per driver
// should wrap once and share the result.
func Wrap(d dbapi.Driver, opts ...Option) *Driver {
	if p, ok := d.(*Driver); ok {
		return p
	}
	initOnce.Do(initialize)

	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	return &Driver{
		Driver: d,
		env:    o.env(),
	}
}

// NewProxy returns a proxy for d reporting to hooks.
func NewProxy(d dbapi.Driver, hooks HooksInterface) *Driver {
	return Wrap(d, WithHooks(hooks))
}

// Connect opens a connection with the real driver and wraps it. The connect
// hook runs on the wrapped connection; if it fails the connection is closed.
func (p *Driver) Connect(url string, props dbapi.Properties) (dbapi.Conn, error) {
	conn, err := p.Driver.Connect(url, props)
	if err != nil {
		return nil, err
	}
	if conn == nil {
		return nil, nil
	}

	proxyConn := newConn(conn, p.env.forConn(uuid.NewString()))
	if err := p.env.hooks.ConnectFunc(proxyConn); err != nil {
		conn.Close()
		return nil, err
	}

	return proxyConn, nil
}

func (p *Driver) AcceptsURL(url string) (bool, error) {
	return p.Driver.AcceptsURL(url)
}

func (p *Driver) MajorVersion() int {
	return p.Driver.MajorVersion()
}

func (p *Driver) MinorVersion() int {
	return p.Driver.MinorVersion()
}

func (p *Driver) Compliant() bool {
	return p.Driver.Compliant()
}
