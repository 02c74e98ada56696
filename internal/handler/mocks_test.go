package handler

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"gestionusuarios/internal/model"
)

type MockUsuarioService struct {
	mock.Mock
}

func (m *MockUsuarioService) ListarUsuarios(ctx context.Context) ([]model.Usuario, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Usuario), args.Error(1)
}

func (m *MockUsuarioService) ObtenerUsuario(ctx context.Context, id uint) (*model.Usuario, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Usuario), args.Error(1)
}

func (m *MockUsuarioService) AgregarUsuario(ctx context.Context, form model.UsuarioFormData) (*model.Usuario, error) {
	args := m.Called(ctx, form)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Usuario), args.Error(1)
}

func (m *MockUsuarioService) ModificarUsuario(ctx context.Context, id uint, form model.UsuarioFormData) (*model.Usuario, error) {
	args := m.Called(ctx, id, form)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Usuario), args.Error(1)
}

func (m *MockUsuarioService) EliminarUsuario(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockConsultaService struct {
	mock.Mock
}

func (m *MockConsultaService) UsuariosSueldoMayor(ctx context.Context, monto decimal.Decimal) ([]model.Usuario, error) {
	args := m.Called(ctx, monto.String())
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Usuario), args.Error(1)
}

func (m *MockConsultaService) UsuariosSueldoEntre(ctx context.Context, min, max decimal.Decimal) ([]model.Usuario, error) {
	args := m.Called(ctx, min.String(), max.String())
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Usuario), args.Error(1)
}

func (m *MockConsultaService) UsuariosLlegaronTarde(ctx context.Context) ([]model.Usuario, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Usuario), args.Error(1)
}

func (m *MockConsultaService) UsuariosSalieronTemprano(ctx context.Context) ([]model.Usuario, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Usuario), args.Error(1)
}

type MockCargoService struct {
	mock.Mock
}

func (m *MockCargoService) ListarCargos(ctx context.Context) ([]model.Cargo, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Cargo), args.Error(1)
}

func (m *MockCargoService) CrearCargo(ctx context.Context, cargo *model.Cargo) (*model.Cargo, error) {
	args := m.Called(ctx, cargo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Cargo), args.Error(1)
}

type MockAsistenciaService struct {
	mock.Mock
}

func (m *MockAsistenciaService) RegistrarAsistencia(ctx context.Context, form model.AsistenciaFormData) (*model.Asistencia, error) {
	args := m.Called(ctx, form)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Asistencia), args.Error(1)
}

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (string, string, error) {
	args := m.Called(ctx, email, password)
	return args.String(0), args.String(1), args.Error(2)
}

func (m *MockAuthService) RefreshToken(ctx context.Context, refreshToken string) (string, error) {
	args := m.Called(ctx, refreshToken)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) Logout(ctx context.Context, refreshToken string) error {
	args := m.Called(ctx, refreshToken)
	return args.Error(0)
}
