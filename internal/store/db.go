package store

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// Database is the SQLite adapter of the record store.
type Database struct {
	DB     *sql.DB
	dbFile string
}

// Open opens (or creates) the database file and brings the schema up to
// date.
func Open(ctx context.Context, path string) (*Database, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	d := &Database{DB: db, dbFile: path}
	if err := d.createTables(ctx); err != nil {
		db.Close()
		return nil, err
	}
	d.migrate(ctx)
	return d, nil
}

func (d *Database) Close() error {
	return d.DB.Close()
}

func (d *Database) createTables(ctx context.Context) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS students (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			email TEXT NOT NULL,
			phone TEXT,
			major TEXT,
			year INTEGER DEFAULT 0,
			gpa REAL,
			enrollment_date DATETIME,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);`,
		`CREATE TABLE IF NOT EXISTS courses (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			code TEXT NOT NULL,
			instructor TEXT,
			color TEXT DEFAULT '#6366f1',
			credits INTEGER DEFAULT 3,
			semester TEXT,
			schedule TEXT,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);`,
		`CREATE TABLE IF NOT EXISTS assignments (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			title TEXT NOT NULL,
			description TEXT,
			course_id INTEGER NOT NULL,
			due_date DATETIME NOT NULL,
			priority TEXT DEFAULT 'medium',
			status TEXT DEFAULT 'pending',
			weight INTEGER DEFAULT 10,
			grade REAL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			completed_at DATETIME,
			FOREIGN KEY(course_id) REFERENCES courses(id)
		);`,
		`CREATE TABLE IF NOT EXISTS study_sessions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			start_time DATETIME NOT NULL,
			end_time DATETIME NOT NULL,
			duration_seconds INTEGER NOT NULL
		);`,
	}

	for _, query := range queries {
		if _, err := d.DB.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("create table: %w", err)
		}
	}
	return nil
}

// migrate applies additive column migrations for databases created by
// earlier builds. Failures mean the column already exists and are
// ignored on purpose.
func (d *Database) migrate(ctx context.Context) {
	_, _ = d.DB.ExecContext(ctx, "ALTER TABLE assignments ADD COLUMN description TEXT")
	_, _ = d.DB.ExecContext(ctx, "ALTER TABLE assignments ADD COLUMN completed_at DATETIME")
	_, _ = d.DB.ExecContext(ctx, "ALTER TABLE courses ADD COLUMN semester TEXT")
	_, _ = d.DB.ExecContext(ctx, "ALTER TABLE courses ADD COLUMN schedule TEXT")
	_, _ = d.DB.ExecContext(ctx, "ALTER TABLE students ADD COLUMN enrollment_date DATETIME")
}

// knownIDs collects every identifier in a table for NotFoundError
// diagnostics. Best effort: an empty list is still a useful message.
func (d *Database) knownIDs(ctx context.Context, table string) []int64 {
	rows, err := d.DB.QueryContext(ctx, "SELECT id FROM "+table+" ORDER BY id ASC")
	if err != nil {
		return nil
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return ids
		}
		ids = append(ids, id)
	}
	return ids
}
