// Package migrations holds the MongoDB index migrations. Each migration
// registers itself from an init() func; Run applies them in registration
// order. Index creation is idempotent, so re-running is safe.
package migrations

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/zhaygo/backend/pkg/logger"
)

// Migration is one named schema change.
type Migration struct {
	Name string
	Run  func(ctx context.Context, db *mongo.Database) error
}

var registered []Migration

// Register adds a migration. Called from init() funcs in this package.
func Register(m Migration) {
	registered = append(registered, m)
}

// Run applies every registered migration.
func Run(ctx context.Context, db *mongo.Database) error {
	for _, m := range registered {
		if err := m.Run(ctx, db); err != nil {
			return fmt.Errorf("migration %s: %w", m.Name, err)
		}
		logger.Info("migration applied", "name", m.Name)
	}
	return nil
}
