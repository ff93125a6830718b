// Package memory keeps every collection in process memory. It backs the
// server when no database is configured and serves as a fake in tests.
package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/dtroode/scribehub/internal/model"
)

// DB is shared by the repositories of this package so that profile reads
// can see the owning account, the way a join would.
type DB struct {
	mu       sync.RWMutex
	accounts map[uuid.UUID]model.Account
	profiles map[uuid.UUID]model.Profile
	posts    map[uuid.UUID]model.Post
}

func NewDB() *DB {
	return &DB{
		accounts: make(map[uuid.UUID]model.Account),
		profiles: make(map[uuid.UUID]model.Profile),
		posts:    make(map[uuid.UUID]model.Post),
	}
}

// Ping always succeeds.
func (db *DB) Ping(context.Context) error {
	return nil
}
