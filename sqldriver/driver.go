// Package sqldriver exposes a dbapi.Driver, typically one wrapped by package
// proxy, as a database/sql driver.
//
//	sql.Register("hive", sqldriver.New(proxy.Wrap(hiveDriver)))
//	db, err := sql.Open("hive", "jdbc:hive2://localhost:10000/default")
package sqldriver

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"

	"github.com/jonbodner/multierr"
	"github.com/shogo82148/go-sql-shim/dbapi"
)

var errNotAccepted = errors.New("sqldriver: url not accepted by driver")

type Driver struct {
	Driver dbapi.Driver
	// Props are passed to every Connect.
	Props dbapi.Properties
}

var (
	_ driver.Driver        = (*Driver)(nil)
	_ driver.DriverContext = (*Driver)(nil)
)

func New(d dbapi.Driver) *Driver {
	return &Driver{Driver: d}
}

// Open connects to name, which is the url in the wrapped driver's format.
func (d *Driver) Open(name string) (driver.Conn, error) {
	conn, err := d.Driver.Connect(name, d.Props)
	if err != nil {
		return nil, err
	}
	if conn == nil {
		return nil, fmt.Errorf("%w: %s", errNotAccepted, name)
	}
	return &Conn{Conn: conn}, nil
}

// OpenConnector returns a connector for name, for use with sql.OpenDB.
func (d *Driver) OpenConnector(name string) (driver.Connector, error) {
	return &connector{driver: d, name: name}, nil
}

type connector struct {
	driver *Driver
	name   string
}

func (c *connector) Connect(ctx context.Context) (driver.Conn, error) {
	return c.driver.Open(c.name)
}

func (c *connector) Driver() driver.Driver {
	return c.driver
}

// Tables lists table names through the metadata of one pooled connection.
func Tables(ctx context.Context, db *sql.DB) ([]string, error) {
	c, err := db.Conn(ctx)
	if err != nil {
		return nil, err
	}
	defer c.Close()

	var names []string
	err = c.Raw(func(driverConn interface{}) error {
		conn, ok := driverConn.(*Conn)
		if !ok {
			return fmt.Errorf("sqldriver: unexpected connection type %T", driverConn)
		}
		names, err = conn.Tables()
		return err
	})
	return names, err
}

// appendErr combines err with a cleanup error, either of which may be nil.
func appendErr(err, cleanup error) error {
	switch {
	case cleanup == nil:
		return err
	case err == nil:
		return cleanup
	}
	return multierr.Append(err, cleanup)
}
