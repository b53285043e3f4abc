package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// ErrCorrupted reports that a collection's stored bytes no longer parse
// as a JSON array. Callers can tell this apart from "no data yet", which
// reads back as an empty collection.
var ErrCorrupted = errors.New("store: corrupted collection data")

// row holds one whole collection: a JSON-encoded array under its key.
type row struct {
	Key   string `gorm:"primaryKey"`
	Value []byte
}

func (row) TableName() string { return "collections" }

// Store is a string-keyed collection store backed by a single SQLite
// file. The unit of access is the whole collection: read it all, write
// it all back. Mutations go through a per-key mutex so read-modify-write
// cycles inside one process cannot drop each other's changes.
type Store struct {
	conn *gorm.DB

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// Open opens (or creates) the database file and migrates the collections
// table.
func Open(path string) (*Store, error) {
	conn, err := gorm.Open(sqlite.Open(path+"?_journal_mode=WAL&_busy_timeout=5000"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	// SQLite works best with a single writer; cap the pool accordingly.
	sqlDB, err := conn.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(0)

	if err := conn.AutoMigrate(&row{}); err != nil {
		return nil, fmt.Errorf("migrate collections table: %w", err)
	}

	return &Store{conn: conn, locks: make(map[string]*sync.Mutex)}, nil
}

func (s *Store) Close() error {
	sqlDB, err := s.conn.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// keyLock returns the mutex guarding mutations of one collection key.
func (s *Store) keyLock(key string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[key]
	if !ok {
		l = &sync.Mutex{}
		s.locks[key] = l
	}
	return l
}

func (s *Store) readRaw(key string) ([]byte, error) {
	var r row
	err := s.conn.Where("key = ?", key).First(&r).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read collection %q: %w", key, err)
	}
	return r.Value, nil
}

func (s *Store) writeRaw(key string, value []byte) error {
	err := s.conn.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&row{Key: key, Value: value}).Error
	if err != nil {
		return fmt.Errorf("write collection %q: %w", key, err)
	}
	return nil
}

// ReadCollection returns every record stored under key, or an empty
// slice when the key has never been written.
func ReadCollection[T any](s *Store, key string) ([]T, error) {
	b, err := s.readRaw(key)
	if err != nil {
		return nil, err
	}
	if len(b) == 0 {
		return []T{}, nil
	}
	var items []T
	if err := json.Unmarshal(b, &items); err != nil {
		return nil, fmt.Errorf("%w: key %q: %v", ErrCorrupted, key, err)
	}
	return items, nil
}

// WriteCollection replaces the whole collection stored under key.
func WriteCollection[T any](s *Store, key string, items []T) error {
	if items == nil {
		items = []T{}
	}
	b, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode collection %q: %w", key, err)
	}
	return s.writeRaw(key, b)
}
