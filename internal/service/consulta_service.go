package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	apperrors "gestionusuarios/internal/errors"
	"gestionusuarios/internal/model"
	"gestionusuarios/internal/repository"
)

// ConsultaService runs the canned usuario queries.
type ConsultaService interface {
	UsuariosSueldoMayor(ctx context.Context, monto decimal.Decimal) ([]model.Usuario, error)
	UsuariosSueldoEntre(ctx context.Context, min, max decimal.Decimal) ([]model.Usuario, error)
	UsuariosLlegaronTarde(ctx context.Context) ([]model.Usuario, error)
	UsuariosSalieronTemprano(ctx context.Context) ([]model.Usuario, error)
}

type consultaService struct {
	repo repository.ConsultaRepository
}

// NewConsultaService creates a new consulta service.
func NewConsultaService(repo repository.ConsultaRepository) ConsultaService {
	return &consultaService{repo: repo}
}

func (s *consultaService) UsuariosSueldoMayor(ctx context.Context, monto decimal.Decimal) ([]model.Usuario, error) {
	usuarios, err := s.repo.SueldoMayor(ctx, monto)
	if err != nil {
		return nil, fmt.Errorf("sueldo mayor a %s: %w", monto, err)
	}
	return usuarios, nil
}

func (s *consultaService) UsuariosSueldoEntre(ctx context.Context, min, max decimal.Decimal) ([]model.Usuario, error) {
	if min.GreaterThan(max) {
		return nil, apperrors.ErrRangoInvalido
	}
	usuarios, err := s.repo.SueldoEntre(ctx, min, max)
	if err != nil {
		return nil, fmt.Errorf("sueldo entre %s y %s: %w", min, max, err)
	}
	return usuarios, nil
}

func (s *consultaService) UsuariosLlegaronTarde(ctx context.Context) ([]model.Usuario, error) {
	usuarios, err := s.repo.LlegaronTarde(ctx)
	if err != nil {
		return nil, fmt.Errorf("llegaron tarde: %w", err)
	}
	return usuarios, nil
}

func (s *consultaService) UsuariosSalieronTemprano(ctx context.Context) ([]model.Usuario, error) {
	usuarios, err := s.repo.SalieronTemprano(ctx)
	if err != nil {
		return nil, fmt.Errorf("salieron temprano: %w", err)
	}
	return usuarios, nil
}
