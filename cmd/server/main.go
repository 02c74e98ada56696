package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"gestionusuarios/internal/cache"
	"gestionusuarios/internal/config"
	"gestionusuarios/internal/db"
	"gestionusuarios/internal/logging"
	"gestionusuarios/internal/router"
)

// @title Gestión de Usuarios API
// @version 1.0
// @description Usuarios, cargos, asistencias and the canned salary and attendance queries.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	logging.Setup(cfg.Env, cfg.LogLevel)

	gormDB, err := db.Open(cfg.DBDriver, cfg.DatabaseDSN)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.DBDriver).Msg("database init")
	}

	if cfg.ResetDB {
		log.Warn().Msg("RESET_DB=true detected, dropping and recreating the schema")
		if err := db.Reset(gormDB, cfg.DBDriver); err != nil {
			log.Fatal().Err(err).Msg("reset schema")
		}
	} else if err := db.Migrate(gormDB, cfg.DBDriver); err != nil {
		log.Fatal().Err(err).Msg("migrate schema")
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	defer cacheClient.Close()
	pingCtx, pingCancel := context.WithTimeout(context.Background(), 3*time.Second)
	if err := cacheClient.Ping(pingCtx); err != nil {
		log.Warn().Err(err).Str("addr", cfg.RedisAddr).Msg("redis unavailable, running without cache; refresh tokens will not validate")
	}
	pingCancel()

	e, err := router.New(cfg, gormDB, cacheClient)
	if err != nil {
		log.Fatal().Err(err).Msg("router init")
	}

	srv := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      e,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Str("driver", cfg.DBDriver).Msg("server listening")
		log.Info().Msgf("Swagger documentation available at: %s", swaggerURL(cfg))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("forced shutdown")
	}
	log.Info().Msg("server exited")
}

func swaggerURL(cfg *config.Config) string {
	host := cfg.SwaggerHost
	if host == "" {
		host = "localhost:" + cfg.ServerPort
	}
	if !strings.HasPrefix(host, "http://") && !strings.HasPrefix(host, "https://") {
		host = "http://" + host
	}
	return host + "/swagger/index.html"
}
