package database

import (
	"testing"
)

func TestDialectSQLite(t *testing.T) {
	dialect := NewSQLiteDialect()

	t.Run("DriverName", func(t *testing.T) {
		result := dialect.DriverName()
		expected := "sqlite3"
		if result != expected {
			t.Errorf("DriverName() = %v, want %v", result, expected)
		}
	})

	t.Run("SupportsLastInsertId", func(t *testing.T) {
		if !dialect.SupportsLastInsertId() {
			t.Error("SupportsLastInsertId() should return true for SQLite")
		}
	})

	t.Run("RewriteQuery", func(t *testing.T) {
		query := "SELECT * FROM users WHERE id = ? AND email = ?"
		result := dialect.RewriteQuery(query)
		if result != query {
			t.Errorf("RewriteQuery() = %v, want unchanged query", result)
		}
	})

	t.Run("UpsertQuery", func(t *testing.T) {
		result := dialect.UpsertQuery("daily_activity",
			[]string{"user_id", "date", "minutes"},
			[]string{"user_id", "date"},
			[]string{"minutes"})
		expected := "INSERT INTO daily_activity (user_id, date, minutes) VALUES (?, ?, ?)" +
			" ON CONFLICT(user_id, date) DO UPDATE SET minutes = excluded.minutes"
		if result != expected {
			t.Errorf("UpsertQuery() = %v, want %v", result, expected)
		}
	})

	t.Run("InsertIgnoreQuery", func(t *testing.T) {
		result := dialect.InsertIgnoreQuery("user_achievements",
			[]string{"user_id", "achievement_id"},
			[]string{"user_id", "achievement_id"})
		expected := "INSERT INTO user_achievements (user_id, achievement_id) VALUES (?, ?)" +
			" ON CONFLICT(user_id, achievement_id) DO NOTHING"
		if result != expected {
			t.Errorf("InsertIgnoreQuery() = %v, want %v", result, expected)
		}
	})
}

func TestDialectPostgreSQL(t *testing.T) {
	dialect := NewPostgresDialect()

	t.Run("DriverName", func(t *testing.T) {
		result := dialect.DriverName()
		expected := "postgres"
		if result != expected {
			t.Errorf("DriverName() = %v, want %v", result, expected)
		}
	})

	t.Run("SupportsLastInsertId", func(t *testing.T) {
		if dialect.SupportsLastInsertId() {
			t.Error("SupportsLastInsertId() should return false for PostgreSQL")
		}
	})

	t.Run("RewriteQuery", func(t *testing.T) {
		query := "SELECT * FROM users WHERE id = ? AND email = ?"
		result := dialect.RewriteQuery(query)
		expected := "SELECT * FROM users WHERE id = $1 AND email = $2"
		if result != expected {
			t.Errorf("RewriteQuery() = %v, want %v", result, expected)
		}
	})

	t.Run("RewriteQueryNoPlaceholders", func(t *testing.T) {
		query := "SELECT COUNT(*) FROM users"
		result := dialect.RewriteQuery(query)
		if result != query {
			t.Errorf("RewriteQuery() = %v, want unchanged query", result)
		}
	})

	t.Run("InsertIgnoreQuery", func(t *testing.T) {
		result := dialect.InsertIgnoreQuery("user_achievements",
			[]string{"user_id", "achievement_id"},
			[]string{"user_id", "achievement_id"})
		expected := "INSERT INTO user_achievements (user_id, achievement_id) VALUES (?, ?)" +
			" ON CONFLICT(user_id, achievement_id) DO NOTHING"
		if result != expected {
			t.Errorf("InsertIgnoreQuery() = %v, want %v", result, expected)
		}
	})
}

func TestDialectMySQL(t *testing.T) {
	dialect := NewMySQLDialect()

	t.Run("DriverName", func(t *testing.T) {
		result := dialect.DriverName()
		expected := "mysql"
		if result != expected {
			t.Errorf("DriverName() = %v, want %v", result, expected)
		}
	})

	t.Run("SupportsLastInsertId", func(t *testing.T) {
		if !dialect.SupportsLastInsertId() {
			t.Error("SupportsLastInsertId() should return true for MySQL")
		}
	})

	t.Run("DSNAddsParseTime", func(t *testing.T) {
		result := dialect.DSN(DialectConfig{URL: "user:pass@tcp(localhost:3306)/spellquest"})
		expected := "user:pass@tcp(localhost:3306)/spellquest?parseTime=true"
		if result != expected {
			t.Errorf("DSN() = %v, want %v", result, expected)
		}
	})

	t.Run("DSNKeepsExistingParseTime", func(t *testing.T) {
		url := "user:pass@tcp(localhost:3306)/spellquest?parseTime=true&charset=utf8mb4"
		result := dialect.DSN(DialectConfig{URL: url})
		if result != url {
			t.Errorf("DSN() = %v, want %v", result, url)
		}
	})

	t.Run("UpsertQuery", func(t *testing.T) {
		result := dialect.UpsertQuery("daily_activity",
			[]string{"user_id", "date", "minutes"},
			[]string{"user_id", "date"},
			[]string{"minutes"})
		expected := "INSERT INTO daily_activity (user_id, date, minutes) VALUES (?, ?, ?)" +
			" ON DUPLICATE KEY UPDATE minutes = VALUES(minutes)"
		if result != expected {
			t.Errorf("UpsertQuery() = %v, want %v", result, expected)
		}
	})

	t.Run("InsertIgnoreQuery", func(t *testing.T) {
		result := dialect.InsertIgnoreQuery("user_achievements",
			[]string{"user_id", "achievement_id"},
			[]string{"user_id", "achievement_id"})
		expected := "INSERT IGNORE INTO user_achievements (user_id, achievement_id) VALUES (?, ?)"
		if result != expected {
			t.Errorf("InsertIgnoreQuery() = %v, want %v", result, expected)
		}
	})
}

func TestRewritePlaceholdersToNumbered(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		expected string
	}{
		{
			name:     "single placeholder",
			query:    "DELETE FROM sessions WHERE id = ?",
			expected: "DELETE FROM sessions WHERE id = $1",
		},
		{
			name:     "multiple placeholders",
			query:    "INSERT INTO users (email, name) VALUES (?, ?)",
			expected: "INSERT INTO users (email, name) VALUES ($1, $2)",
		},
		{
			name:     "no placeholders",
			query:    "SELECT COUNT(*) FROM users",
			expected: "SELECT COUNT(*) FROM users",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := rewritePlaceholdersToNumbered(tt.query)
			if result != tt.expected {
				t.Errorf("rewritePlaceholdersToNumbered() = %v, want %v", result, tt.expected)
			}
		})
	}
}
