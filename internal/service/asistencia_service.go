package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	apperrors "gestionusuarios/internal/errors"
	"gestionusuarios/internal/model"
	"gestionusuarios/internal/repository"
)

// AsistenciaService records attendance, the data behind the
// "llegaron tarde" and "salieron temprano" views.
type AsistenciaService interface {
	RegistrarAsistencia(ctx context.Context, form model.AsistenciaFormData) (*model.Asistencia, error)
}

type asistenciaService struct {
	asistencias repository.AsistenciaRepository
	usuarios    repository.UsuarioRepository
	now         func() time.Time
}

// NewAsistenciaService creates a new attendance service.
func NewAsistenciaService(asistencias repository.AsistenciaRepository, usuarios repository.UsuarioRepository) AsistenciaService {
	return &asistenciaService{asistencias: asistencias, usuarios: usuarios, now: time.Now}
}

func (s *asistenciaService) RegistrarAsistencia(ctx context.Context, form model.AsistenciaFormData) (*model.Asistencia, error) {
	fecha, err := parseFecha(form.Fecha, s.now())
	if err != nil {
		return nil, err
	}
	entrada, err := normalizeHora(form.HoraEntrada)
	if err != nil {
		return nil, err
	}
	var salida *string
	if strings.TrimSpace(form.HoraSalida) != "" {
		h, err := normalizeHora(form.HoraSalida)
		if err != nil {
			return nil, err
		}
		if h < entrada {
			return nil, apperrors.ErrHoraInvalida
		}
		salida = &h
	}

	if _, err := s.usuarios.FindByID(ctx, form.IDUsuario); err != nil {
		return nil, translateUsuarioErr(err)
	}

	asistencia := &model.Asistencia{
		IDUsuario:   form.IDUsuario,
		Fecha:       fecha,
		HoraEntrada: entrada,
		HoraSalida:  salida,
	}
	if err := s.asistencias.Create(ctx, asistencia); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrAsistenciaDuplicada
		}
		return nil, fmt.Errorf("create asistencia: %w", err)
	}
	return asistencia, nil
}
