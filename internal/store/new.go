package store

import (
	"errors"
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"listenote/internal/model"
	pkgLog "listenote/pkg/log"
)

// ErrNotFound is returned when a referenced row does not exist.
var ErrNotFound = errors.New("record not found")

// Store is the embedded relational store backing all entities. It also owns
// the change-notification hub that drives observable memo snapshots.
type Store struct {
	db  *gorm.DB
	l   pkgLog.Logger
	hub *memoHub
}

// New opens (or creates) the sqlite database at path and migrates the schema.
func New(path string, l pkgLog.Logger) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite at %q: %w", path, err)
	}

	// sqlite does not enforce foreign keys unless asked; cascade deletes
	// from audio_sources -> notebooks -> memos depend on this.
	if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}

	if err := db.AutoMigrate(&model.AudioSource{}, &model.Notebook{}, &model.Memo{}); err != nil {
		return nil, fmt.Errorf("migrate schema: %w", err)
	}

	return &Store{
		db:  db,
		l:   l,
		hub: newMemoHub(),
	}, nil
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
