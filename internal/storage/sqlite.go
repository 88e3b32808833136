package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/yourname/dreamwell/internal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"
)

type kvBlob struct {
	Key       string `gorm:"primaryKey"`
	Value     []byte `gorm:"not null"`
	UpdatedAt time.Time
}

func (kvBlob) TableName() string { return "kv_blobs" }

// SQLiteStorage keeps key/blob rows in a local SQLite database file.
type SQLiteStorage struct {
	db     *gorm.DB
	logger internal.Logger
}

func NewSQLiteStorage(path string, logger internal.Logger) (*SQLiteStorage, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		logger.Errorf("failed to open sqlite database %s: %v", path, err)
		return nil, err
	}
	if err := db.AutoMigrate(&kvBlob{}); err != nil {
		logger.Errorf("failed to migrate kv_blobs: %v", err)
		return nil, err
	}
	return &SQLiteStorage{db: db, logger: logger}, nil
}

func (s *SQLiteStorage) Get(ctx context.Context, key string) ([]byte, error) {
	var row kvBlob
	if err := s.db.WithContext(ctx).First(&row, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		s.logger.Errorf("failed to read %s: %v", key, err)
		return nil, err
	}
	return row.Value, nil
}

func (s *SQLiteStorage) Put(ctx context.Context, key string, value []byte) error {
	row := kvBlob{Key: key, Value: value, UpdatedAt: time.Now().UTC()}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		s.logger.Errorf("failed to write %s: %v", key, err)
		return err
	}
	return nil
}

func (s *SQLiteStorage) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

var _ KeyValue = (*SQLiteStorage)(nil)
