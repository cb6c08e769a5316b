package db

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
)

// Open connects to Postgres and verifies the connection.
func Open(dsn string) (*sql.DB, error) {
	sqldb, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := sqldb.Ping(); err != nil {
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	sqldb.SetMaxOpenConns(20)
	sqldb.SetMaxIdleConns(10)
	return sqldb, nil
}

// CreateTables creates the schema if it does not exist yet.
func CreateTables(sqldb *sql.DB) error {
	createUsersTable := `
	CREATE TABLE IF NOT EXISTS users (
		id BIGSERIAL PRIMARY KEY,
		username TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		is_professional BOOLEAN NOT NULL DEFAULT FALSE
	);`
	if _, err := sqldb.Exec(createUsersTable); err != nil {
		return fmt.Errorf("create users table: %w", err)
	}

	createEventsTable := `
	CREATE TABLE IF NOT EXISTS events (
		id BIGSERIAL PRIMARY KEY,
		user_id BIGINT NOT NULL REFERENCES users(id),
		title TEXT NOT NULL,
		date TEXT NOT NULL,
		time TEXT,
		location TEXT NOT NULL,
		description TEXT NOT NULL,
		category TEXT NOT NULL,
		participant_count INT NOT NULL DEFAULT 0 CHECK (participant_count >= 0)
	);`
	if _, err := sqldb.Exec(createEventsTable); err != nil {
		return fmt.Errorf("create events table: %w", err)
	}

	// Composite key keeps a user from attending the same event twice.
	createUserEventsTable := `
	CREATE TABLE IF NOT EXISTS user_events (
		user_id BIGINT NOT NULL REFERENCES users(id),
		event_id BIGINT NOT NULL REFERENCES events(id),
		PRIMARY KEY (user_id, event_id)
	);`
	if _, err := sqldb.Exec(createUserEventsTable); err != nil {
		return fmt.Errorf("create user_events table: %w", err)
	}
	return nil
}
