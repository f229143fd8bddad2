package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/os10prep/os10-backend/internal/config"
	"github.com/os10prep/os10-backend/internal/database"
	"github.com/os10prep/os10-backend/internal/logger"
	"github.com/os10prep/os10-backend/internal/model"
	"github.com/os10prep/os10-backend/internal/repository"
)

// Seeds the default instructor account plus a few approved demo users for
// local development.
func main() {
	cfg := config.Load()
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	accountRepo := repository.NewAccountRepository(pool)

	fmt.Println("=== Seeding Accounts ===")

	accounts := []*model.UserAccount{
		{Username: "admin", Password: "2026", Status: model.StatusApproved, IsAdmin: true},
		{Username: "guardia1", Password: "os10", Status: model.StatusApproved},
		{Username: "guardia2", Password: "os10", Status: model.StatusApproved},
		{Username: "postulante", Password: "os10", Status: model.StatusPending},
	}

	for _, account := range accounts {
		account.CreatedAt = time.Now().UTC()
		if err := accountRepo.Create(ctx, account); err != nil {
			if errors.Is(err, repository.ErrDuplicateUsername) {
				fmt.Printf("Skipped %s (already exists)\n", account.Username)
				continue
			}
			log.Fatal().Err(err).Str("username", account.Username).Msg("Failed to seed account")
		}
		fmt.Printf("Created %s (%s)\n", account.Username, account.Status)
	}

	fmt.Println("Done")
}
