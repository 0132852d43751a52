// Package sqlitedriver registers the SQLite database/sql driver that backs
// SQLite dataset sources. With CGO it is go-sqlcipher, so encrypted database
// files can be read with a "_pragma_key" DSN parameter; without CGO it falls
// back to the pure-Go modernc.org/sqlite driver, which reads plain files only.
//
// Import this package for its side effects, or call Open:
//
//	import _ "github.com/teradata-labs/chartsense/internal/sqlitedriver"
package sqlitedriver
