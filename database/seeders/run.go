// Package seeders fills the database with development fixtures.
package seeders

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/zhaygo/backend/app/models"
	"github.com/zhaygo/backend/app/repositories"
	"github.com/zhaygo/backend/config"
	"github.com/zhaygo/backend/pkg/auth"
	"github.com/zhaygo/backend/pkg/logger"
)

// Run creates the demo account used by local frontend work.
// Idempotent: an existing demo user is left untouched.
func Run(ctx context.Context, db *mongo.Database) error {
	email := config.Get("SEED_DEMO_EMAIL", "demo@zhaygo.example")
	password := config.Get("SEED_DEMO_PASSWORD", "zhaygo-demo")

	users := repositories.NewUserRepository(db)

	existing, err := users.FindByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	if existing != nil {
		logger.Info("seed: demo user already present", "email", email)
		return nil
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("seed: hash password: %w", err)
	}

	err = users.Create(ctx, &models.User{
		Name:          "Demo Diner",
		Email:         email,
		ContactNumber: "000-000-0000",
		Password:      hash,
	})
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}

	logger.Info("seed: demo user created", "email", email)
	return nil
}
