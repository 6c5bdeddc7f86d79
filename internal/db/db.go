package db

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/giglog/giglog/internal/models"
)

var DB *gorm.DB

// ErrNotFound marks lookups for records that do not exist (or belong to a
// different user, which callers must not be able to distinguish).
var ErrNotFound = errors.New("not found")

// Initialize sets up the database connection and runs migrations. The
// database file lives under ~/.giglog unless GIGLOG_DB overrides it.
func Initialize() error {
	dbPath, err := getDatabasePath()
	if err != nil {
		return fmt.Errorf("failed to get database path: %w", err)
	}

	// Ensure the directory exists
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return fmt.Errorf("failed to create giglog directory: %w", err)
	}

	return open(dbPath)
}

// InitializeInMemory opens a throwaway in-memory database. Used by tests.
func InitializeInMemory() error {
	return open(":memory:")
}

func open(dbPath string) error {
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent), // Quiet by default
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	DB = db

	if err := runMigrations(); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}

// getDatabasePath returns the path to the SQLite database file
func getDatabasePath() (string, error) {
	if override := os.Getenv("GIGLOG_DB"); override != "" {
		return override, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".giglog", "giglog.db"), nil
}

// runMigrations creates/updates the database schema
func runMigrations() error {
	return DB.AutoMigrate(
		&models.User{},
		&models.AuthToken{},
		&models.Company{},
		&models.Job{},
		&models.Payment{},
		&models.WorkSession{},
		&models.UserColorPalette{},
		&models.UserAppearancePreference{},
	)
}

// Close closes the database connection
func Close() error {
	if DB != nil {
		sqlDB, err := DB.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}
	return nil
}
