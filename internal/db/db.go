package db

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"github.com/balkashynov/quant/internal/models"
)

// Store is the key-value backend the tracker persists into
type Store interface {
	// Get returns the value for key and whether it exists
	Get(key string) (string, bool, error)
	// Set writes value under key, replacing any previous value
	Set(key, value string) error
}

// SQLiteStore keeps key-value entries in a single SQLite table
type SQLiteStore struct {
	db *gorm.DB
}

// Open sets up the database connection at dbPath and runs migrations
func Open(dbPath string) (*SQLiteStore, error) {
	// Ensure the directory exists
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent), // Quiet by default
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(&models.Entry{}); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Get returns the stored value for key
func (s *SQLiteStore) Get(key string) (string, bool, error) {
	var entry models.Entry

	err := s.db.Where(&models.Entry{Key: key}).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil // Missing key is not an error
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read %q: %w", key, err)
	}

	return entry.Value, true, nil
}

// Set upserts value under key
func (s *SQLiteStore) Set(key, value string) error {
	entry := models.Entry{Key: key, Value: value}

	err := s.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&entry).Error
	if err != nil {
		return fmt.Errorf("failed to write %q: %w", key, err)
	}
	return nil
}

// Close closes the database connection
func (s *SQLiteStore) Close() error {
	if s.db == nil {
		return nil
	}
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
