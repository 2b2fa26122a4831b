package main

import (
	"database/sql"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/rs/zerolog"

	"github.com/wichananm65/pet-shop-checkout/internal/address"
	"github.com/wichananm65/pet-shop-checkout/internal/config"
	"github.com/wichananm65/pet-shop-checkout/internal/logger"
	"github.com/wichananm65/pet-shop-checkout/internal/server"
	"github.com/wichananm65/pet-shop-checkout/internal/user"
)

func main() {
	cfg := config.Load()
	log := logger.New(os.Stdout, cfg.Env, cfg.LogLevel)

	deps := server.Deps{
		Tokens: user.TokenConfig{Secret: []byte(cfg.JWTSecret), TTL: cfg.JWTTTL},
		Log:    log,
	}

	if cfg.DatabaseURL == "" {
		log.Warn().Msg("DATABASE_URL is not set, using in-memory storage")
		deps.Users = user.NewInMemoryRepository()
		deps.Addresses = address.NewInMemoryRepository(nil)
	} else {
		db := mustOpenDB(log, cfg.DatabaseURL)
		defer db.Close()

		users := user.NewPostgresRepository(db)
		addresses := address.NewPostgresRepository(db)
		if err := users.EnsureSchema(); err != nil {
			log.Fatal().Err(err).Msg("ensure users table")
		}
		if err := addresses.EnsureSchema(); err != nil {
			log.Fatal().Err(err).Msg("ensure address table")
		}
		deps.Users = users
		deps.Addresses = addresses
	}

	app := server.New(deps)

	log.Info().Str("addr", cfg.Addr).Str("env", cfg.Env).Msg("starting api")
	if err := app.Listen(cfg.Addr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func mustOpenDB(log zerolog.Logger, dbURL string) *sql.DB {
	db, err := sql.Open("pgx", dbURL)
	if err != nil {
		log.Fatal().Err(err).Msg("open database")
	}
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("ping database")
	}
	return db
}
