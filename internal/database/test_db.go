package database

import (
	"fmt"
	"sync/atomic"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

var testDBSeq atomic.Int64

// OpenTest opens a fresh in-memory SQLite database with the full schema
// migrated. Each call gets its own database so tests stay independent.
func OpenTest() (*gorm.DB, error) {
	dsn := fmt.Sprintf("file:prodtrack_test_%d?mode=memory&cache=shared", testDBSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	// Keep the shared-cache memory db alive for the life of the pool.
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(1)
	}
	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}
