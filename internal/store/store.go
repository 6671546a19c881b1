package store

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/mattn/go-sqlite3"
)

//go:embed migrations
var migrationsFS embed.FS

// Mode controls how a book file is opened.
type Mode int

const (
	// OpenNormal opens the book read-write and applies pending migrations.
	OpenNormal Mode = iota
	// OpenReadOnly opens the book without ever writing to it.
	OpenReadOnly
)

// Book is an open session on a book file. It must be closed on every exit
// path to release the underlying file.
type Book struct {
	db   *sql.DB
	path string
	mode Mode
}

// Open opens (or, in OpenNormal mode, creates) the book file at path.
func Open(path string, mode Mode) (*Book, error) {
	dsn := fmt.Sprintf("file:%s?_foreign_keys=on", path)
	if mode == OpenReadOnly {
		dsn += "&mode=ro"
	}

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("can not open book file %s: %w", path, err)
	}
	if err = db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("can not connect with book file %s: %w", path, err)
	}

	if mode == OpenNormal {
		if err := runMigrations(db); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to migrate book file %s: %w", path, err)
		}
	}

	return &Book{db: db, path: path, mode: mode}, nil
}

// Path returns the file path the book was opened from.
func (b *Book) Path() string {
	return b.path
}

// Save flushes pending pages to the main database file. Under the default
// rollback journal every commit is already durable; the checkpoint keeps the
// book copyable as a single file if a WAL journal is ever configured.
func (b *Book) Save() error {
	if b.mode == OpenReadOnly {
		return nil
	}
	if _, err := b.db.Exec("PRAGMA wal_checkpoint(TRUNCATE);"); err != nil {
		return fmt.Errorf("failed to checkpoint book file: %w", err)
	}
	return nil
}

func (b *Book) Close() error {
	return b.db.Close()
}

func (b *Book) writable() error {
	if b.mode == OpenReadOnly {
		return ErrReadOnly
	}
	return nil
}

func runMigrations(db *sql.DB) error {
	driver, err := sqlite3.WithInstance(db, &sqlite3.Config{})
	if err != nil {
		return fmt.Errorf("failed to set up migrate driver : %w", err)
	}

	sourceDriver, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("failed to create iofs source driver : %w", err)
	}

	m, err := migrate.NewWithInstance(
		"iofs",
		sourceDriver,
		"sqlite3",
		driver,
	)
	if err != nil {
		return fmt.Errorf("failed to set up migrate instance : %w", err)
	}

	err = m.Up()
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migration(up) : %w", err)
	}

	return nil
}
