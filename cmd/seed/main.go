package main

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"gestionusuarios/internal/cache"
	"gestionusuarios/internal/config"
	"gestionusuarios/internal/db"
	"gestionusuarios/internal/logging"
	"gestionusuarios/internal/seed"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	logging.Setup(cfg.Env, cfg.LogLevel)
	log.Info().Msg("starting seed")

	gormDB, err := db.Open(cfg.DBDriver, cfg.DatabaseDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	if err := db.Migrate(gormDB, cfg.DBDriver); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	// the seed creates cargos, so the server's cached catalogue must be invalidated
	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	defer cacheClient.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	source := cfg.SeedSource
	if source == "" {
		source = "bundled demo dataset"
	}
	log.Info().Str("source", source).Msg("loading dataset")
	ds, err := seed.Load(ctx, cfg.SeedSource)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load dataset")
	}

	res, err := seed.NewSeeder(gormDB, cacheClient).Apply(ctx, ds)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to seed")
	}

	log.Info().
		Int("cargos_creados", res.CargosCreados).
		Int("usuarios_creados", res.UsuariosCreados).
		Int("usuarios_actualizados", res.UsuariosActualizados).
		Int("asistencias_creadas", res.AsistenciasCreadas).
		Int("omitidos", res.Omitidos).
		Msg("seed completed")
}
