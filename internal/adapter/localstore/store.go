// Package localstore is the fallback backend used when no MySQL server
// is configured: a SQLite file holding one blob per logical collection,
// mirroring the browser-local storage of earlier clients.
package localstore

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"github.com/DEvILSG007/ScholarSyncPlanner/internal/core/domain"
)

// currentVersion tags newly written collections so future schema
// changes can migrate old blobs at the read boundary.
const currentVersion = 1

// collectionRecord maps one logical collection name to its serialized
// array.
type collectionRecord struct {
	Name      string `gorm:"primaryKey;size:191"`
	Version   int
	Data      []byte
	UpdatedAt time.Time
}

type Store struct {
	db *gorm.DB
	mu sync.Mutex
}

// Open opens (creating if needed) the SQLite file and runs migrations.
func Open(path string) (*Store, error) {
	if path == "" {
		path = "scholarsync.db"
	}

	if err := ensureDirForSQLite(path); err != nil {
		return nil, err
	}

	dbLogger := logger.New(
		log.New(os.Stdout, "", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{Logger: dbLogger})
	if err != nil {
		return nil, fmt.Errorf("open local store: %w", err)
	}

	if err := db.AutoMigrate(&collectionRecord{}); err != nil {
		return nil, fmt.Errorf("migrate local store: %w", err)
	}

	return &Store{db: db}, nil
}

// ensureDirForSQLite creates the parent dir for the SQLite file if needed.
func ensureDirForSQLite(path string) error {
	if strings.Contains(path, ":memory:") || strings.Contains(path, "mode=memory") {
		return nil
	}
	clean := strings.TrimPrefix(path, "file:")
	clean = strings.Split(clean, "?")[0]
	dir := filepath.Dir(clean)
	if dir == "." || dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create local store dir %q: %w", dir, err)
	}
	return nil
}

func collectionName(kind string, scope domain.Scope) string {
	return kind + "/" + string(scope)
}

// load unmarshals the named collection into out. A missing collection
// leaves out untouched.
func (s *Store) load(ctx context.Context, name string, out any) error {
	var record collectionRecord
	err := s.db.WithContext(ctx).First(&record, "name = ?", name).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil
		}
		return err
	}
	if len(record.Data) == 0 {
		return nil
	}
	return json.Unmarshal(record.Data, out)
}

// save replaces the named collection with the serialized items.
func (s *Store) save(ctx context.Context, name string, items any) error {
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}

	record := collectionRecord{
		Name:      name,
		Version:   currentVersion,
		Data:      data,
		UpdatedAt: time.Now(),
	}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&record).Error
}
