package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"gestionusuarios/internal/model"
	"gestionusuarios/internal/repository"
)

// MockUsuarioRepository is a mock implementation of UsuarioRepository.
type MockUsuarioRepository struct {
	mock.Mock
}

func (m *MockUsuarioRepository) List(ctx context.Context) ([]model.Usuario, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Usuario), args.Error(1)
}

func (m *MockUsuarioRepository) FindByID(ctx context.Context, id uint) (*model.Usuario, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Usuario), args.Error(1)
}

func (m *MockUsuarioRepository) FindByEmail(ctx context.Context, email string) (*model.RegistroUsuario, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.RegistroUsuario), args.Error(1)
}

func (m *MockUsuarioRepository) Create(ctx context.Context, usuario *model.RegistroUsuario) error {
	args := m.Called(ctx, usuario)
	return args.Error(0)
}

func (m *MockUsuarioRepository) Update(ctx context.Context, id uint, nombre, email string) error {
	args := m.Called(ctx, id, nombre, email)
	return args.Error(0)
}

func (m *MockUsuarioRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUsuarioRepository) AsignarCargo(ctx context.Context, asignacion *model.CargoUsuario) error {
	args := m.Called(ctx, asignacion)
	return args.Error(0)
}

// WithTransaction runs fn against the mock itself unless an error is configured.
func (m *MockUsuarioRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context, repo repository.UsuarioRepository) error) error {
	args := m.Called(ctx, fn)
	if err := args.Error(0); err != nil {
		return err
	}
	return fn(ctx, m)
}

// MockCargoRepository is a mock implementation of CargoRepository.
type MockCargoRepository struct {
	mock.Mock
}

func (m *MockCargoRepository) List(ctx context.Context) ([]model.Cargo, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Cargo), args.Error(1)
}

func (m *MockCargoRepository) FindByID(ctx context.Context, id uint) (*model.Cargo, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Cargo), args.Error(1)
}

func (m *MockCargoRepository) FindByNombre(ctx context.Context, nombre string) (*model.Cargo, error) {
	args := m.Called(ctx, nombre)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Cargo), args.Error(1)
}

func (m *MockCargoRepository) Create(ctx context.Context, cargo *model.Cargo) error {
	args := m.Called(ctx, cargo)
	return args.Error(0)
}

// MockAsistenciaRepository is a mock implementation of AsistenciaRepository.
type MockAsistenciaRepository struct {
	mock.Mock
}

func (m *MockAsistenciaRepository) Create(ctx context.Context, asistencia *model.Asistencia) error {
	args := m.Called(ctx, asistencia)
	return args.Error(0)
}

// MockConsultaRepository is a mock implementation of ConsultaRepository.
type MockConsultaRepository struct {
	mock.Mock
}

func (m *MockConsultaRepository) SueldoMayor(ctx context.Context, monto decimal.Decimal) ([]model.Usuario, error) {
	args := m.Called(ctx, monto)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Usuario), args.Error(1)
}

func (m *MockConsultaRepository) SueldoEntre(ctx context.Context, min, max decimal.Decimal) ([]model.Usuario, error) {
	args := m.Called(ctx, min, max)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Usuario), args.Error(1)
}

func (m *MockConsultaRepository) LlegaronTarde(ctx context.Context) ([]model.Usuario, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Usuario), args.Error(1)
}

func (m *MockConsultaRepository) SalieronTemprano(ctx context.Context) ([]model.Usuario, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Usuario), args.Error(1)
}

// MockTokenStore is a mock implementation of TokenStoreInterface.
type MockTokenStore struct {
	mock.Mock
}

func (m *MockTokenStore) StoreRefreshToken(ctx context.Context, tokenID, email string, ttl time.Duration) error {
	args := m.Called(ctx, tokenID, email, ttl)
	return args.Error(0)
}

func (m *MockTokenStore) GetRefreshToken(ctx context.Context, tokenID string) (string, error) {
	args := m.Called(ctx, tokenID)
	return args.String(0), args.Error(1)
}

func (m *MockTokenStore) DeleteRefreshToken(ctx context.Context, tokenID string) error {
	args := m.Called(ctx, tokenID)
	return args.Error(0)
}
