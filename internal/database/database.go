package database

import (
	"database/sql"

	_ "modernc.org/sqlite" // SQLite driver
)

// New creates a new database connection pool.
func New(dataSourceName string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dataSourceName)
	if err != nil {
		return nil, err
	}
	// SQLite allows a single writer; serializing through one connection
	// avoids SQLITE_BUSY and keeps ":memory:" databases coherent.
	db.SetMaxOpenConns(1)
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate runs the SQL statements to set up the database schema.
func Migrate(db *sql.DB) error {
	const sqlStmt = `
	CREATE TABLE IF NOT EXISTS users (
		id TEXT NOT NULL PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		role TEXT NOT NULL,
		language_pref TEXT,
		location TEXT,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS crop_guides (
		id TEXT NOT NULL PRIMARY KEY,
		name TEXT NOT NULL,
		season TEXT NOT NULL,
		soil TEXT NOT NULL,
		water TEXT NOT NULL,
		image_url TEXT,
		diseases_json TEXT,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS market_data (
		id TEXT NOT NULL PRIMARY KEY,
		crop_name TEXT NOT NULL,
		region TEXT NOT NULL,
		price REAL NOT NULL,
		trend TEXT NOT NULL DEFAULT 'Stable',
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS government_schemes (
		id TEXT NOT NULL PRIMARY KEY,
		title TEXT NOT NULL,
		description TEXT NOT NULL,
		category TEXT NOT NULL DEFAULT 'Other',
		eligibility TEXT NOT NULL,
		benefits TEXT NOT NULL,
		application_process TEXT NOT NULL,
		deadline DATETIME,
		contact_info TEXT,
		region TEXT NOT NULL DEFAULT 'Global',
		image_url TEXT,
		is_active INTEGER NOT NULL DEFAULT 1,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS research_updates (
		id TEXT NOT NULL PRIMARY KEY,
		title TEXT NOT NULL,
		summary TEXT NOT NULL,
		content TEXT NOT NULL,
		author TEXT NOT NULL,
		category TEXT NOT NULL DEFAULT 'Other',
		tags_json TEXT,
		image_url TEXT,
		published_date DATETIME DEFAULT CURRENT_TIMESTAMP,
		is_published INTEGER NOT NULL DEFAULT 1,
		read_time INTEGER NOT NULL DEFAULT 5,
		views INTEGER NOT NULL DEFAULT 0,
		likes INTEGER NOT NULL DEFAULT 0
	);

	CREATE TABLE IF NOT EXISTS policies (
		id TEXT NOT NULL PRIMARY KEY,
		title TEXT NOT NULL,
		summary TEXT NOT NULL,
		content TEXT NOT NULL,
		category TEXT NOT NULL DEFAULT 'Other',
		region TEXT NOT NULL DEFAULT 'Global',
		effective_date DATETIME,
		expiry_date DATETIME,
		implementing_authority TEXT,
		contact_info TEXT,
		image_url TEXT,
		is_active INTEGER NOT NULL DEFAULT 1,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS forum_posts (
		id TEXT NOT NULL PRIMARY KEY,
		user_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		title TEXT NOT NULL,
		content TEXT NOT NULL,
		tags_json TEXT,
		upvotes INTEGER NOT NULL DEFAULT 0,
		expert_replies INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	`
	_, err := db.Exec(sqlStmt)
	return err
}
