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

// UsuarioService exposes the usuario CRUD. The projection it returns is always
// read back from the view, never assembled in memory.
type UsuarioService interface {
	ListarUsuarios(ctx context.Context) ([]model.Usuario, error)
	ObtenerUsuario(ctx context.Context, id uint) (*model.Usuario, error)
	AgregarUsuario(ctx context.Context, form model.UsuarioFormData) (*model.Usuario, error)
	ModificarUsuario(ctx context.Context, id uint, form model.UsuarioFormData) (*model.Usuario, error)
	EliminarUsuario(ctx context.Context, id uint) error
}

type usuarioService struct {
	usuarios repository.UsuarioRepository
	cargos   repository.CargoRepository
	now      func() time.Time
}

// NewUsuarioService builds a UsuarioService over the usuario and cargo repositories.
func NewUsuarioService(usuarios repository.UsuarioRepository, cargos repository.CargoRepository) UsuarioService {
	return &usuarioService{usuarios: usuarios, cargos: cargos, now: time.Now}
}

func (s *usuarioService) ListarUsuarios(ctx context.Context) ([]model.Usuario, error) {
	usuarios, err := s.usuarios.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list usuarios: %w", err)
	}
	return usuarios, nil
}

func (s *usuarioService) ObtenerUsuario(ctx context.Context, id uint) (*model.Usuario, error) {
	usuario, err := s.usuarios.FindByID(ctx, id)
	if err != nil {
		return nil, translateUsuarioErr(err)
	}
	return usuario, nil
}

// AgregarUsuario inserts the usuario and its cargo assignment in one transaction.
func (s *usuarioService) AgregarUsuario(ctx context.Context, form model.UsuarioFormData) (*model.Usuario, error) {
	idCargo, err := parseIDCargo(form.IDCargo)
	if err != nil {
		return nil, err
	}
	fechaInicio, err := parseFecha(form.FechaInicio, s.now())
	if err != nil {
		return nil, err
	}
	if err := s.checkCargo(ctx, idCargo); err != nil {
		return nil, err
	}

	registro := &model.RegistroUsuario{
		Nombre: strings.TrimSpace(form.Nombre),
		Email:  strings.TrimSpace(form.Email),
	}
	err = s.usuarios.WithTransaction(ctx, func(ctx context.Context, repo repository.UsuarioRepository) error {
		if err := repo.Create(ctx, registro); err != nil {
			return err
		}
		return repo.AsignarCargo(ctx, &model.CargoUsuario{
			IDUsuario:   registro.ID,
			IDCargo:     idCargo,
			FechaInicio: fechaInicio,
		})
	})
	if err != nil {
		return nil, translateUsuarioErr(err)
	}
	return s.ObtenerUsuario(ctx, registro.ID)
}

// ModificarUsuario updates the non-empty fields. A non-empty IDCargo moves the
// usuario to that cargo; FechaInicio only matters when no assignment existed.
func (s *usuarioService) ModificarUsuario(ctx context.Context, id uint, form model.UsuarioFormData) (*model.Usuario, error) {
	if _, err := s.usuarios.FindByID(ctx, id); err != nil {
		return nil, translateUsuarioErr(err)
	}

	var asignacion *model.CargoUsuario
	if strings.TrimSpace(form.IDCargo) != "" {
		idCargo, err := parseIDCargo(form.IDCargo)
		if err != nil {
			return nil, err
		}
		fechaInicio, err := parseFecha(form.FechaInicio, s.now())
		if err != nil {
			return nil, err
		}
		if err := s.checkCargo(ctx, idCargo); err != nil {
			return nil, err
		}
		asignacion = &model.CargoUsuario{IDUsuario: id, IDCargo: idCargo, FechaInicio: fechaInicio}
	}

	err := s.usuarios.WithTransaction(ctx, func(ctx context.Context, repo repository.UsuarioRepository) error {
		if err := repo.Update(ctx, id, strings.TrimSpace(form.Nombre), strings.TrimSpace(form.Email)); err != nil {
			return err
		}
		if asignacion == nil {
			return nil
		}
		return repo.AsignarCargo(ctx, asignacion)
	})
	if err != nil {
		return nil, translateUsuarioErr(err)
	}
	return s.ObtenerUsuario(ctx, id)
}

func (s *usuarioService) EliminarUsuario(ctx context.Context, id uint) error {
	if err := s.usuarios.Delete(ctx, id); err != nil {
		return translateUsuarioErr(err)
	}
	return nil
}

func (s *usuarioService) checkCargo(ctx context.Context, id uint) error {
	if _, err := s.cargos.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrCargoNotFound
		}
		return fmt.Errorf("find cargo: %w", err)
	}
	return nil
}

func translateUsuarioErr(err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apperrors.ErrUsuarioNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return apperrors.ErrEmailDuplicado
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		// the cargo disappeared between the check and the insert
		return apperrors.ErrCargoNotFound
	}
	return err
}
