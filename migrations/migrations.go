// Package migrations embeds the SQL schema and applies it with golang-migrate.
package migrations

import (
	"embed"
	"errors"
	"fmt"
	"log/slog"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed *.sql
var FS embed.FS

// Logger adapts slog to migrate.Logger.
type Logger struct {
	logger  *slog.Logger
	verbose bool
}

func NewLogger(logger *slog.Logger, verbose bool) *Logger {
	return &Logger{logger: logger, verbose: verbose}
}

func (l *Logger) Printf(format string, v ...any) {
	l.logger.Info(fmt.Sprintf(format, v...))
}

func (l *Logger) Verbose() bool {
	return l.verbose
}

// New creates a migrate instance reading the embedded files for the postgres:// databaseURL.
func New(databaseURL string, logger *slog.Logger) (*migrate.Migrate, error) {
	src, err := iofs.New(FS, ".")
	if err != nil {
		return nil, fmt.Errorf("failed to open embedded migrations: %w", err)
	}
	m, err := migrate.NewWithSourceInstance("iofs", src, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create migrate instance: %w", err)
	}
	if logger != nil {
		m.Log = NewLogger(logger, false)
	}
	return m, nil
}

// Up applies all pending migrations. No pending migrations is not an error.
func Up(databaseURL string, logger *slog.Logger) error {
	m, err := New(databaseURL, logger)
	if err != nil {
		return err
	}
	defer closeMigrate(m, logger)

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	return nil
}

// Down rolls back every applied migration.
func Down(databaseURL string, logger *slog.Logger) error {
	m, err := New(databaseURL, logger)
	if err != nil {
		return err
	}
	defer closeMigrate(m, logger)

	if err := m.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to roll back migrations: %w", err)
	}
	return nil
}

func closeMigrate(m *migrate.Migrate, logger *slog.Logger) {
	srcErr, dbErr := m.Close()
	if logger == nil {
		return
	}
	if srcErr != nil {
		logger.Warn("failed to close migration source", "error", srcErr)
	}
	if dbErr != nil {
		logger.Warn("failed to close migration database", "error", dbErr)
	}
}
