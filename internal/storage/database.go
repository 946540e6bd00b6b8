package storage

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/mattn/go-sqlite3"
)

// Open connects to the applicant database. sqlite3 is the default deployment
// driver; mysql is supported for installs that already run one.
func Open(driver, dsn string) (*sql.DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("database dsn must be provided")
	}

	var (
		db  *sql.DB
		err error
	)

	switch strings.ToLower(driver) {
	case "sqlite", "sqlite3":
		db, err = sql.Open("sqlite3", dsn)
		if err != nil {
			return nil, fmt.Errorf("open sqlite database: %w", err)
		}
	case "mysql":
		db, err = sql.Open("mysql", dsn)
		if err != nil {
			return nil, fmt.Errorf("open mysql database: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported driver: %s", driver)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return db, nil
}

// Migrate ensures the applicants table is present. Safe to call on every
// process start.
func Migrate(db *sql.DB, driver string) error {
	var stmt string
	switch strings.ToLower(driver) {
	case "sqlite", "sqlite3":
		stmt = `CREATE TABLE IF NOT EXISTS applicants (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			created_at DATETIME NOT NULL,
			first_name TEXT NOT NULL,
			last_name TEXT NOT NULL,
			address TEXT NOT NULL DEFAULT '',
			city TEXT NOT NULL DEFAULT '',
			state TEXT NOT NULL DEFAULT '',
			zip TEXT NOT NULL DEFAULT '',
			cellphone TEXT NOT NULL,
			email TEXT NOT NULL,
			licensed_agent INTEGER NOT NULL DEFAULT 0,
			years_experience TEXT NOT NULL DEFAULT '',
			resume_path TEXT,
			resume_original_name TEXT,
			disclaimer_checked INTEGER NOT NULL DEFAULT 0
		)`
	case "mysql":
		stmt = `CREATE TABLE IF NOT EXISTS applicants (
			id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
			created_at DATETIME NOT NULL,
			first_name VARCHAR(255) NOT NULL,
			last_name VARCHAR(255) NOT NULL,
			address VARCHAR(255) NOT NULL DEFAULT '',
			city VARCHAR(255) NOT NULL DEFAULT '',
			state VARCHAR(255) NOT NULL DEFAULT '',
			zip VARCHAR(32) NOT NULL DEFAULT '',
			cellphone VARCHAR(64) NOT NULL,
			email VARCHAR(255) NOT NULL,
			licensed_agent TINYINT(1) NOT NULL DEFAULT 0,
			years_experience VARCHAR(255) NOT NULL DEFAULT '',
			resume_path TEXT,
			resume_original_name TEXT,
			disclaimer_checked TINYINT(1) NOT NULL DEFAULT 0,
			PRIMARY KEY (id)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`
	default:
		return fmt.Errorf("unsupported driver for migration: %s", driver)
	}

	if _, err := db.Exec(stmt); err != nil {
		return fmt.Errorf("migrate (%s): %w", driver, err)
	}
	return nil
}
