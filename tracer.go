package proxy

import (
	"github.com/shogo82148/go-sql-shim/dbapi"
	"github.com/sirupsen/logrus"
)

// NewTraceHooks returns hooks that log connections, queries, transactions and
// corrections.
func NewTraceHooks(logger *logrus.Logger) *Hooks {
	return &Hooks{
		Connect: func(conn *Conn) error {
			logger.WithField("conn", conn.ID).Debug("Connect")
			return nil
		},
		Query: func(connID, query string, rs dbapi.ResultSet) error {
			logger.WithFields(logrus.Fields{
				"conn":  connID,
				"query": query,
			}).Debug("Query")
			return nil
		},
		Exec: func(connID, query string, count int64) error {
			logger.WithFields(logrus.Fields{
				"conn":  connID,
				"query": query,
				"count": count,
			}).Debug("Exec")
			return nil
		},
		Commit: func(conn *Conn) error {
			logger.WithField("conn", conn.ID).Debug("Commit")
			return nil
		},
		Rollback: func(conn *Conn) error {
			logger.WithField("conn", conn.ID).Debug("Rollback")
			return nil
		},
		Correction: func(c Correction) {
			entry := logger.WithFields(logrus.Fields{
				"conn": c.ConnID,
				"kind": c.Kind.String(),
				"op":   c.Op,
			})
			if c.Err != nil {
				entry = entry.WithError(c.Err)
			}
			if c.Failure != nil {
				entry.WithField("failure", c.Failure).Warn("Correction failed")
				return
			}
			entry.Info("Correction")
		},
	}
}

// NewTraceProxy generates a proxy that logs queries and corrections.
func NewTraceProxy(d dbapi.Driver, logger *logrus.Logger) *Driver {
	return Wrap(d, WithHooks(NewTraceHooks(logger)))
}
