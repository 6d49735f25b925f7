package localstore

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// entry is one cached key/value row.
type entry struct {
	Key   string `gorm:"primaryKey"`
	Value string
}

func (entry) TableName() string { return "cache" }

// SQLite is the production Store, a single-table cache in the user's
// taday directory.
type SQLite struct {
	db *gorm.DB
}

// Open opens (creating if needed) the cache database at dir/taday.db.
// An empty dir defaults to ~/.taday.
func Open(dir string) (*SQLite, error) {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home directory: %w", err)
		}
		dir = filepath.Join(home, ".taday")
	}

	// Ensure the directory exists
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create taday directory: %w", err)
	}

	db, err := gorm.Open(sqlite.Open(filepath.Join(dir, "taday.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent), // Quiet by default
	})
	if err != nil {
		return nil, fmt.Errorf("open cache database: %w", err)
	}

	if err := db.AutoMigrate(&entry{}); err != nil {
		return nil, fmt.Errorf("migrate cache schema: %w", err)
	}

	return &SQLite{db: db}, nil
}

func (s *SQLite) Get(key string) (string, bool, error) {
	var e entry
	err := s.db.First(&e, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return e.Value, true, nil
}

func (s *SQLite) Set(key, value string) error {
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&entry{Key: key, Value: value}).Error
}

func (s *SQLite) Delete(key string) error {
	return s.db.Delete(&entry{}, "key = ?", key).Error
}

// Close closes the underlying database connection.
func (s *SQLite) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
