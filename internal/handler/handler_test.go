package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gestionusuarios/internal/db"
	apperrors "gestionusuarios/internal/errors"
	"gestionusuarios/internal/model"
)

type testServer struct {
	e           *echo.Echo
	usuarios    *MockUsuarioService
	consultas   *MockConsultaService
	cargos      *MockCargoService
	asistencias *MockAsistenciaService
	auth        *MockAuthService
}

func newTestServer() *testServer {
	s := &testServer{
		e:           echo.New(),
		usuarios:    new(MockUsuarioService),
		consultas:   new(MockConsultaService),
		cargos:      new(MockCargoService),
		asistencias: new(MockAsistenciaService),
		auth:        new(MockAuthService),
	}
	s.e.Validator = NewValidator()

	uh := NewUsuarioHandler(s.usuarios)
	s.e.GET("/usuarios", uh.ListUsuarios)
	s.e.GET("/usuarios/:id", uh.GetUsuario)
	s.e.POST("/usuarios", uh.CreateUsuario)
	s.e.PUT("/usuarios/:id", uh.UpdateUsuario)
	s.e.DELETE("/usuarios/:id", uh.DeleteUsuario)

	ch := NewConsultaHandler(s.consultas)
	s.e.GET("/consultas/sueldo-mayor", ch.SueldoMayor)
	s.e.GET("/consultas/sueldo-entre", ch.SueldoEntre)
	s.e.GET("/consultas/llegaron-tarde", ch.LlegaronTarde)
	s.e.GET("/consultas/salieron-temprano", ch.SalieronTemprano)

	cg := NewCargoHandler(s.cargos)
	s.e.GET("/cargos", cg.ListCargos)
	s.e.POST("/cargos", cg.CreateCargo)

	s.e.POST("/asistencias", NewAsistenciaHandler(s.asistencias).CreateAsistencia)

	ah := NewAuthHandler(s.auth)
	s.e.POST("/auth/login", ah.Login)
	s.e.POST("/auth/refresh", ah.Refresh)
	s.e.POST("/auth/logout", ah.Logout)
	return s
}

func (s *testServer) do(method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) apperrors.ErrorResponse {
	t.Helper()
	var body apperrors.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func strPtr(s string) *string { return &s }

func TestUsuarioHandler_List(t *testing.T) {
	s := newTestServer()
	s.usuarios.On("ListarUsuarios", mock.Anything).Return([]model.Usuario{
		{ID: 1, Nombre: "Ana", Email: "ana@example.com", Cargo: strPtr("Cajero"), Sueldo: decimal.NewNullDecimal(decimal.NewFromInt(4500))},
		{ID: 2, Nombre: "Luis", Email: "luis@example.com"},
	}, nil)

	rec := s.do(http.MethodGet, "/usuarios", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body, 2)
	assert.Equal(t, "Cajero", body[0]["cargo"])
	assert.Equal(t, "4500", body[0]["sueldo"])
	assert.Nil(t, body[1]["sueldo"])
	assert.NotContains(t, body[1], "cargo")
}

func TestUsuarioHandler_Get(t *testing.T) {
	s := newTestServer()
	s.usuarios.On("ObtenerUsuario", mock.Anything, uint(5)).Return(nil, apperrors.ErrUsuarioNotFound)

	rec := s.do(http.MethodGet, "/usuarios/5", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "USUARIO_NOT_FOUND", decodeError(t, rec).Code)

	rec = s.do(http.MethodGet, "/usuarios/abc", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_ID", decodeError(t, rec).Code)
}

func TestUsuarioHandler_Create(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		setupMock    func(*MockUsuarioService)
		expectedCode int
		errorCode    string
	}{
		{
			name: "created",
			body: `{"nombre":"Ana","email":"ana@example.com","id_cargo":"2","fecha_inicio":"2024-03-01"}`,
			setupMock: func(m *MockUsuarioService) {
				m.On("AgregarUsuario", mock.Anything, model.UsuarioFormData{
					Nombre: "Ana", Email: "ana@example.com", IDCargo: "2", FechaInicio: "2024-03-01",
				}).Return(&model.Usuario{ID: 1, Nombre: "Ana"}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:         "missing nombre",
			body:         `{"email":"ana@example.com","id_cargo":"2","fecha_inicio":"2024-03-01"}`,
			setupMock:    func(m *MockUsuarioService) {},
			expectedCode: http.StatusBadRequest,
			errorCode:    "VALIDATION_ERROR",
		},
		{
			name:         "bad email",
			body:         `{"nombre":"Ana","email":"ana","id_cargo":"2","fecha_inicio":"2024-03-01"}`,
			setupMock:    func(m *MockUsuarioService) {},
			expectedCode: http.StatusBadRequest,
			errorCode:    "VALIDATION_ERROR",
		},
		{
			name:         "bad date",
			body:         `{"nombre":"Ana","email":"ana@example.com","id_cargo":"2","fecha_inicio":"ayer"}`,
			setupMock:    func(m *MockUsuarioService) {},
			expectedCode: http.StatusBadRequest,
			errorCode:    "VALIDATION_ERROR",
		},
		{
			name:         "malformed json",
			body:         `{"nombre":`,
			setupMock:    func(m *MockUsuarioService) {},
			expectedCode: http.StatusBadRequest,
			errorCode:    "INVALID_BODY",
		},
		{
			name: "duplicate email",
			body: `{"nombre":"Ana","email":"ana@example.com","id_cargo":"2","fecha_inicio":"2024-03-01"}`,
			setupMock: func(m *MockUsuarioService) {
				m.On("AgregarUsuario", mock.Anything, mock.Anything).Return(nil, apperrors.ErrEmailDuplicado)
			},
			expectedCode: http.StatusConflict,
			errorCode:    "EMAIL_ALREADY_EXISTS",
		},
		{
			name: "unexpected failure is hidden",
			body: `{"nombre":"Ana","email":"ana@example.com","id_cargo":"2","fecha_inicio":"2024-03-01"}`,
			setupMock: func(m *MockUsuarioService) {
				m.On("AgregarUsuario", mock.Anything, mock.Anything).Return(nil, errors.New("pq: connection refused"))
			},
			expectedCode: http.StatusInternalServerError,
			errorCode:    "INTERNAL_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer()
			tt.setupMock(s.usuarios)

			rec := s.do(http.MethodPost, "/usuarios", tt.body)
			assert.Equal(t, tt.expectedCode, rec.Code)
			if tt.errorCode != "" {
				body := decodeError(t, rec)
				assert.Equal(t, tt.errorCode, body.Code)
				assert.NotContains(t, body.Error, "pq:")
			}
			s.usuarios.AssertExpectations(t)
		})
	}
}

func TestUsuarioHandler_Update(t *testing.T) {
	s := newTestServer()
	s.usuarios.On("ModificarUsuario", mock.Anything, uint(3), model.UsuarioFormData{IDCargo: "4"}).
		Return(&model.Usuario{ID: 3}, nil)

	rec := s.do(http.MethodPut, "/usuarios/3", `{"id_cargo":"4"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = s.do(http.MethodPut, "/usuarios/3", `{"email":"nope"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	s.usuarios.AssertNumberOfCalls(t, "ModificarUsuario", 1)
}

func TestUsuarioHandler_Delete(t *testing.T) {
	s := newTestServer()
	s.usuarios.On("EliminarUsuario", mock.Anything, uint(3)).Return(nil)
	s.usuarios.On("EliminarUsuario", mock.Anything, uint(4)).Return(apperrors.ErrUsuarioNotFound)

	assert.Equal(t, http.StatusNoContent, s.do(http.MethodDelete, "/usuarios/3", "").Code)
	assert.Equal(t, http.StatusNotFound, s.do(http.MethodDelete, "/usuarios/4", "").Code)
}

func TestConsultaHandler(t *testing.T) {
	s := newTestServer()
	s.consultas.On("UsuariosSueldoMayor", mock.Anything, "4000").Return([]model.Usuario{{ID: 1}}, nil)
	s.consultas.On("UsuariosSueldoEntre", mock.Anything, "3000", "6000").Return([]model.Usuario{}, nil)
	s.consultas.On("UsuariosSueldoEntre", mock.Anything, "6000", "3000").Return(nil, apperrors.ErrRangoInvalido)
	s.consultas.On("UsuariosLlegaronTarde", mock.Anything).Return([]model.Usuario{{ID: 2}}, nil)
	s.consultas.On("UsuariosSalieronTemprano", mock.Anything).Return([]model.Usuario{}, nil)

	rec := s.do(http.MethodGet, "/consultas/sueldo-mayor?monto=4000", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = s.do(http.MethodGet, "/consultas/sueldo-mayor?monto=mucho", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_AMOUNT", decodeError(t, rec).Code)

	rec = s.do(http.MethodGet, "/consultas/sueldo-entre?min=3000&max=6000", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	rec = s.do(http.MethodGet, "/consultas/sueldo-entre?min=6000&max=3000", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_RANGE", decodeError(t, rec).Code)

	rec = s.do(http.MethodGet, "/consultas/sueldo-entre?min=3000", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	assert.Equal(t, http.StatusOK, s.do(http.MethodGet, "/consultas/llegaron-tarde", "").Code)
	assert.Equal(t, http.StatusOK, s.do(http.MethodGet, "/consultas/salieron-temprano", "").Code)
	s.consultas.AssertExpectations(t)
}

func TestCargoHandler(t *testing.T) {
	s := newTestServer()
	s.cargos.On("ListarCargos", mock.Anything).Return([]model.Cargo{{ID: 1, Cargo: "Cajero", Sueldo: decimal.NewFromInt(3500)}}, nil)
	s.cargos.On("CrearCargo", mock.Anything, mock.MatchedBy(func(c *model.Cargo) bool {
		return c.Cargo == "Gerente" && c.Sueldo.Equal(decimal.NewFromInt(7000))
	})).Return(&model.Cargo{ID: 2, Cargo: "Gerente"}, nil)

	assert.Equal(t, http.StatusOK, s.do(http.MethodGet, "/cargos", "").Code)
	assert.Equal(t, http.StatusCreated, s.do(http.MethodPost, "/cargos", `{"cargo":"Gerente","sueldo":7000}`).Code)
	assert.Equal(t, http.StatusBadRequest, s.do(http.MethodPost, "/cargos", `{"sueldo":7000}`).Code)
	s.cargos.AssertExpectations(t)
}

func TestAsistenciaHandler(t *testing.T) {
	s := newTestServer()
	s.asistencias.On("RegistrarAsistencia", mock.Anything, model.AsistenciaFormData{
		IDUsuario: 1, Fecha: "2024-03-04", HoraEntrada: "08:10",
	}).Return(&model.Asistencia{ID: 1, IDUsuario: 1, HoraEntrada: "08:10:00"}, nil)

	rec := s.do(http.MethodPost, "/asistencias", `{"id_usuario":1,"fecha":"2024-03-04","hora_entrada":"08:10"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = s.do(http.MethodPost, "/asistencias", `{"fecha":"2024-03-04","hora_entrada":"08:10"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	s.asistencias.AssertExpectations(t)
}

func TestAuthHandler(t *testing.T) {
	s := newTestServer()
	s.auth.On("Login", mock.Anything, "admin@usuarios.local", "admin").Return("access", "refresh", nil)
	s.auth.On("Login", mock.Anything, "admin@usuarios.local", "bad").Return("", "", apperrors.ErrInvalidCredentials)
	s.auth.On("RefreshToken", mock.Anything, "refresh").Return("access2", nil)
	s.auth.On("Logout", mock.Anything, "refresh").Return(nil)

	rec := s.do(http.MethodPost, "/auth/login", `{"email":"admin@usuarios.local","password":"admin"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var resp AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "access", resp.AccessToken)
	assert.Equal(t, "refresh", resp.RefreshToken)

	rec = s.do(http.MethodPost, "/auth/login", `{"email":"admin@usuarios.local","password":"bad"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "INVALID_CREDENTIALS", decodeError(t, rec).Code)

	rec = s.do(http.MethodPost, "/auth/refresh", `{"refresh_token":"refresh"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "access2")

	assert.Equal(t, http.StatusOK, s.do(http.MethodPost, "/auth/logout", `{"refresh_token":"refresh"}`).Code)
	assert.Equal(t, http.StatusBadRequest, s.do(http.MethodPost, "/auth/logout", `{}`).Code)
}

func TestHealth(t *testing.T) {
	gdb, err := db.Open(db.DriverSQLite, "file::memory:")
	require.NoError(t, err)

	e := echo.New()
	e.GET("/healthz", Health(gdb, nil))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "connected", body["db"])
	assert.Equal(t, "error", body["redis"])
	assert.Equal(t, true, body["ok"])
}
