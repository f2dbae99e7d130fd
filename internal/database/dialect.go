package database

import (
	"database/sql"
	"regexp"
	"strconv"
	"strings"
)

// Dialect defines the interface for database-specific behavior
type Dialect interface {
	// DriverName returns the driver name for sql.Open
	DriverName() string

	// DSN returns the data source name for the connection
	DSN(config DialectConfig) string

	// RewriteQuery converts placeholder syntax if needed (e.g. ? to $1 for postgres)
	RewriteQuery(query string) string

	// SupportsLastInsertId returns true if the driver supports LastInsertId()
	SupportsLastInsertId() bool

	// UpsertQuery builds an "insert or update on conflict" statement with ?
	// placeholders for every insert column. conflictCols must form a unique
	// key; updateCols are refreshed from the incoming row on conflict.
	UpsertQuery(table string, insertCols, conflictCols, updateCols []string) string

	// InsertIgnoreQuery builds an "insert if absent" statement with ?
	// placeholders for every insert column.
	InsertIgnoreQuery(table string, insertCols, conflictCols []string) string

	// ConfigureConnection applies any database-specific connection settings
	ConfigureConnection(db *sql.DB) error

	// CreateMigrationsTableQuery returns the SQL to create the migrations tracking table
	CreateMigrationsTableQuery() string
}

// DialectConfig holds configuration for database connection
type DialectConfig struct {
	// For SQLite
	Path string

	// For PostgreSQL/MySQL
	URL string
}

// placeholderRegexp matches ? placeholders
var placeholderRegexp = regexp.MustCompile(`\?`)

// rewritePlaceholdersToNumbered converts ? placeholders to $1, $2, etc.
func rewritePlaceholdersToNumbered(query string) string {
	counter := 0
	return placeholderRegexp.ReplaceAllStringFunc(query, func(string) string {
		counter++
		return "$" + strconv.Itoa(counter)
	})
}

// insertPrefix builds "INSERT INTO table (a, b) VALUES (?, ?)"
func insertPrefix(table string, insertCols []string) string {
	placeholders := make([]string, len(insertCols))
	for i := range insertCols {
		placeholders[i] = "?"
	}
	return "INSERT INTO " + table + " (" + strings.Join(insertCols, ", ") +
		") VALUES (" + strings.Join(placeholders, ", ") + ")"
}

// onConflictUpdate builds the SQLite/PostgreSQL flavor of the upsert clause
func onConflictUpdate(conflictCols, updateCols []string) string {
	sets := make([]string, len(updateCols))
	for i, col := range updateCols {
		sets[i] = col + " = excluded." + col
	}
	return " ON CONFLICT(" + strings.Join(conflictCols, ", ") + ") DO UPDATE SET " +
		strings.Join(sets, ", ")
}
