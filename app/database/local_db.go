package database

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"PanaderiaApp/app/models"
	"PanaderiaApp/app/store"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// SnapshotKey is the fixed storage identifier the full application state is
// saved under. Kept from the original storage format so existing data files
// stay readable.
const SnapshotKey = "panaderia-app-state-v1"

// StateSnapshot is the single-row table holding the JSON-serialized store.
type StateSnapshot struct {
	Key       string    `gorm:"primaryKey"`
	Data      string    `gorm:"type:text"`
	UpdatedAt time.Time
}

// TableName specifies the table name for StateSnapshot.
func (StateSnapshot) TableName() string {
	return "state_snapshots"
}

// LocalDB manages the local SQLite database holding state snapshots.
type LocalDB struct {
	db     *gorm.DB
	dbPath string
}

// Open opens (creating if needed) the local SQLite database at dbPath.
func Open(dbPath string) (*LocalDB, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	// CGO-free driver
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to local database: %w", err)
	}

	if err := db.AutoMigrate(&StateSnapshot{}); err != nil {
		return nil, fmt.Errorf("failed to run local migrations: %w", err)
	}

	return &LocalDB{db: db, dbPath: dbPath}, nil
}

// SaveSnapshot serializes the snapshot and writes it under SnapshotKey,
// replacing the previous one (last write wins).
func (l *LocalDB) SaveSnapshot(snap store.Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return &models.PersistenceError{Op: "encode", Err: err}
	}

	row := StateSnapshot{Key: SnapshotKey, Data: string(data), UpdatedAt: time.Now().UTC()}
	err = l.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		return &models.PersistenceError{Op: "write", Err: err}
	}
	return nil
}

// LoadSnapshot returns the last persisted snapshot. When no snapshot exists,
// or the stored payload cannot be decoded, it falls back to the seeded
// default. The fallback is per collection, so one malformed collection does
// not discard the rest. Load never fails the caller with a decoding problem.
func (l *LocalDB) LoadSnapshot() (store.Snapshot, error) {
	var row StateSnapshot
	err := l.db.First(&row, "key = ?", SnapshotKey).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return store.SeedSnapshot(), nil
		}
		return store.SeedSnapshot(), &models.PersistenceError{Op: "read", Err: err}
	}
	return decodeSnapshot([]byte(row.Data)), nil
}

// decodeSnapshot decodes each top-level collection independently, falling
// back to the seed default for any that is missing or malformed.
func decodeSnapshot(data []byte) store.Snapshot {
	seed := store.SeedSnapshot()

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return seed
	}

	snap := store.Snapshot{}
	if !decodeCollection(raw["productos"], &snap.Products) {
		snap.Products = seed.Products
	}
	if !decodeCollection(raw["ingredientes"], &snap.Ingredients) {
		snap.Ingredients = seed.Ingredients
	}
	if !decodeCollection(raw["recetas"], &snap.Recipes) {
		snap.Recipes = seed.Recipes
	}
	if !decodeCollection(raw["ventas"], &snap.Sales) {
		snap.Sales = seed.Sales
	}
	if !decodeCollection(raw["pedidos"], &snap.Orders) {
		snap.Orders = seed.Orders
	}
	return snap
}

func decodeCollection(raw json.RawMessage, dest interface{}) bool {
	if len(raw) == 0 {
		return false
	}
	return json.Unmarshal(raw, dest) == nil
}

// GetDB returns the underlying database connection.
func (l *LocalDB) GetDB() *gorm.DB {
	return l.db
}

// Path returns the on-disk location of the database file.
func (l *LocalDB) Path() string {
	return l.dbPath
}

// Close closes the local database connection.
func (l *LocalDB) Close() error {
	if l.db == nil {
		return nil
	}
	sqlDB, err := l.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
