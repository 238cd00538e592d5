// Package testutil provides shared helpers for the package-level test
// suites.  Tests run against a real SQL database: an in-memory sqlite
// instance with the application schema, so repository queries and
// constraint behavior are exercised for real instead of being mocked.
// The queries issued by the repositories are dialect-neutral; only the
// DDL below is sqlite-flavored.
package testutil

import (
	"database/sql"
	"testing"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE venues (
    id                  INTEGER PRIMARY KEY AUTOINCREMENT,
    name                TEXT NOT NULL UNIQUE,
    city                TEXT NOT NULL,
    state               TEXT NOT NULL,
    address             TEXT NOT NULL,
    phone               TEXT NOT NULL,
    genres              TEXT NOT NULL,
    image_link          TEXT NOT NULL DEFAULT '',
    facebook_link       TEXT NOT NULL DEFAULT '',
    website             TEXT NOT NULL DEFAULT '',
    seeking_talent      BOOLEAN NOT NULL DEFAULT 1,
    seeking_description TEXT NOT NULL DEFAULT ''
);

CREATE TABLE artists (
    id                  INTEGER PRIMARY KEY AUTOINCREMENT,
    name                TEXT NOT NULL UNIQUE,
    city                TEXT NOT NULL,
    state               TEXT NOT NULL,
    phone               TEXT NOT NULL DEFAULT '',
    genres              TEXT NOT NULL,
    image_link          TEXT NOT NULL DEFAULT '',
    facebook_link       TEXT NOT NULL DEFAULT '',
    website             TEXT NOT NULL DEFAULT '',
    seeking_venue       BOOLEAN NOT NULL DEFAULT 1,
    seeking_description TEXT NOT NULL DEFAULT ''
);

CREATE TABLE shows (
    id         INTEGER PRIMARY KEY AUTOINCREMENT,
    artist_id  INTEGER NOT NULL REFERENCES artists (id) ON DELETE RESTRICT,
    venue_id   INTEGER NOT NULL REFERENCES venues (id) ON DELETE RESTRICT,
    start_time TEXT NOT NULL
);

CREATE INDEX ix_shows_booking ON shows (artist_id, venue_id, start_time);
`

// OpenTestDB opens a fresh in-memory database with the application
// schema.  The single-connection pool keeps every query on the same
// in-memory instance, and the pragma enables foreign key enforcement
// so delete conflicts behave like production.
func OpenTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", "file::memory:?_pragma=foreign_keys(1)")
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(schema); err != nil {
		t.Fatalf("create schema: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}
