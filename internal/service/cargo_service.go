package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"gestionusuarios/internal/cache"
	apperrors "gestionusuarios/internal/errors"
	"gestionusuarios/internal/model"
	"gestionusuarios/internal/repository"
)

// The cargo listing is cached under a key derived from a generation counter.
// Writes bump the counter after commit, so a listing read before the write
// can only land under a generation nobody reads anymore.
const cargosVersionKey = "cargos:version"

func cargosCacheKey(version int64) string {
	return fmt.Sprintf("cargos:v%d", version)
}

// CargoCache is the part of the redis cache the cargo catalogue uses.
type CargoCache interface {
	Version(ctx context.Context, key string) int64
	Bump(ctx context.Context, key string) error
	GetJSON(ctx context.Context, key string, dst interface{}) bool
	SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error
}

// CargoService manages the cargo catalogue. Listings are cached in Redis and
// invalidated on every write.
type CargoService interface {
	ListarCargos(ctx context.Context) ([]model.Cargo, error)
	CrearCargo(ctx context.Context, cargo *model.Cargo) (*model.Cargo, error)
}

type cargoService struct {
	repo  repository.CargoRepository
	cache CargoCache
	ttl   time.Duration
}

// NewCargoService creates a new cargo service. A nil cache disables caching.
func NewCargoService(repo repository.CargoRepository, c CargoCache, ttl time.Duration) CargoService {
	if c == nil {
		c = (*cache.Client)(nil)
	}
	return &cargoService{repo: repo, cache: c, ttl: ttl}
}

func (s *cargoService) ListarCargos(ctx context.Context) ([]model.Cargo, error) {
	key := cargosCacheKey(s.cache.Version(ctx, cargosVersionKey))

	var cached []model.Cargo
	if s.cache.GetJSON(ctx, key, &cached) {
		return cached, nil
	}

	cargos, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list cargos: %w", err)
	}
	_ = s.cache.SetJSON(ctx, key, cargos, s.ttl)
	return cargos, nil
}

// CrearCargo fills in the default shift when hours are missing.
func (s *cargoService) CrearCargo(ctx context.Context, cargo *model.Cargo) (*model.Cargo, error) {
	cargo.Cargo = strings.TrimSpace(cargo.Cargo)
	if cargo.Sueldo.IsNegative() {
		return nil, apperrors.ErrMontoInvalido
	}

	var err error
	if cargo.HoraEntrada, err = horaOrDefault(cargo.HoraEntrada, horaEntradaDefault); err != nil {
		return nil, err
	}
	if cargo.HoraSalida, err = horaOrDefault(cargo.HoraSalida, horaSalidaDefault); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, cargo); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrCargoDuplicado
		}
		return nil, fmt.Errorf("create cargo: %w", err)
	}
	_ = s.cache.Bump(ctx, cargosVersionKey)
	return cargo, nil
}

func horaOrDefault(raw, def string) (string, error) {
	if strings.TrimSpace(raw) == "" {
		return def, nil
	}
	return normalizeHora(raw)
}
