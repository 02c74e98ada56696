package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gestionusuarios/internal/config"
	"gestionusuarios/internal/db"
)

func testConfig() *config.Config {
	return &config.Config{
		Env:           "test",
		DBDriver:      db.DriverSQLite,
		JWTSecret:     "test-secret",
		JWTAccessTTL:  time.Hour,
		JWTRefreshTTL: 24 * time.Hour,
		AdminEmail:    "admin@usuarios.local",
		AdminPassword: "admin",
		CargoCacheTTL: time.Minute,
	}
}

func newTestEcho(t *testing.T) *echo.Echo {
	t.Helper()
	gdb, err := db.Open(db.DriverSQLite, "file::memory:?_foreign_keys=on")
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gdb, db.DriverSQLite))

	e, err := New(testConfig(), gdb, nil)
	require.NoError(t, err)
	return e
}

func call(t *testing.T, e *echo.Echo, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func login(t *testing.T, e *echo.Echo) (access, refresh string) {
	t.Helper()
	rec := call(t, e, http.MethodPost, "/api/auth/login", map[string]string{
		"email": "admin@usuarios.local", "password": "admin",
	}, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var resp struct {
		AccessToken  string `json:"access_token"`
		RefreshToken string `json:"refresh_token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.AccessToken, resp.RefreshToken
}

func TestRouter_WritesRequireToken(t *testing.T) {
	e := newTestEcho(t)
	_, refresh := login(t, e)

	rec := call(t, e, http.MethodPost, "/api/cargos", map[string]interface{}{"cargo": "Cajero", "sueldo": 3500}, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "UNAUTHORIZED")

	rec = call(t, e, http.MethodPost, "/api/cargos", map[string]interface{}{"cargo": "Cajero", "sueldo": 3500}, "garbage")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = call(t, e, http.MethodPost, "/api/cargos", map[string]interface{}{"cargo": "Cajero", "sueldo": 3500}, refresh)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	assert.Equal(t, http.StatusOK, call(t, e, http.MethodGet, "/api/usuarios", nil, "").Code)
	assert.Equal(t, http.StatusOK, call(t, e, http.MethodGet, "/api/cargos", nil, "").Code)
}

func TestRouter_BadLogin(t *testing.T) {
	e := newTestEcho(t)
	rec := call(t, e, http.MethodPost, "/api/auth/login", map[string]string{
		"email": "admin@usuarios.local", "password": "wrong",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_CREDENTIALS")
}

func TestRouter_UsuarioLifecycle(t *testing.T) {
	e := newTestEcho(t)
	token, _ := login(t, e)

	for _, cargo := range []map[string]interface{}{
		{"cargo": "Cajero", "sueldo": 3500},
		{"cargo": "Gerente", "sueldo": 7000, "hora_entrada": "09:00"},
	} {
		rec := call(t, e, http.MethodPost, "/api/cargos", cargo, token)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	}

	rec := call(t, e, http.MethodPost, "/api/usuarios", map[string]string{
		"nombre": "Ana", "email": "ana@example.com", "id_cargo": "1", "fecha_inicio": "2024-03-01",
	}, token)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var ana struct {
		ID     uint   `json:"id"`
		Cargo  string `json:"cargo"`
		Sueldo string `json:"sueldo"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ana))
	assert.Equal(t, "Cajero", ana.Cargo)
	assert.Equal(t, "3500", ana.Sueldo)

	rec = call(t, e, http.MethodPost, "/api/usuarios", map[string]string{
		"nombre": "Otra Ana", "email": "ana@example.com", "id_cargo": "1", "fecha_inicio": "2024-03-01",
	}, token)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = call(t, e, http.MethodPost, "/api/usuarios", map[string]string{
		"nombre": "Beto", "email": "beto@example.com", "id_cargo": "99", "fecha_inicio": "2024-03-01",
	}, token)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "CARGO_NOT_FOUND")

	rec = call(t, e, http.MethodPost, "/api/usuarios", map[string]string{
		"nombre": "Beto", "email": "beto@example.com", "id_cargo": "uno", "fecha_inicio": "2024-03-01",
	}, token)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_CARGO")

	// promotion shows up through the view
	rec = call(t, e, http.MethodPut, "/api/usuarios/1", map[string]string{"id_cargo": "2"}, token)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), "Gerente")

	rec = call(t, e, http.MethodGet, "/api/consultas/sueldo-mayor?monto=4000", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ana@example.com")

	rec = call(t, e, http.MethodGet, "/api/consultas/sueldo-entre?min=3000&max=6000", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	// Gerente starts at 09:00
	rec = call(t, e, http.MethodPost, "/api/asistencias", map[string]interface{}{
		"id_usuario": 1, "fecha": "2024-03-04", "hora_entrada": "09:05", "hora_salida": "18:00",
	}, token)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = call(t, e, http.MethodPost, "/api/asistencias", map[string]interface{}{
		"id_usuario": 1, "fecha": "2024-03-04", "hora_entrada": "09:00",
	}, token)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = call(t, e, http.MethodGet, "/api/consultas/llegaron-tarde", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ana@example.com")

	rec = call(t, e, http.MethodGet, "/api/consultas/salieron-temprano", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	assert.Equal(t, http.StatusNoContent, call(t, e, http.MethodDelete, "/api/usuarios/1", nil, token).Code)
	assert.Equal(t, http.StatusNotFound, call(t, e, http.MethodDelete, "/api/usuarios/1", nil, token).Code)
	assert.Equal(t, http.StatusNotFound, call(t, e, http.MethodGet, "/api/usuarios/1", nil, "").Code)
}

func TestRouter_RequestIDHeader(t *testing.T) {
	e := newTestEcho(t)
	rec := call(t, e, http.MethodGet, "/healthz", nil, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, rec.Header().Get(echo.HeaderXRequestID), 36)
}

func TestRouter_SwaggerDoc(t *testing.T) {
	e := newTestEcho(t)
	rec := call(t, e, http.MethodGet, "/swagger/doc.json", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"/usuarios"`)
}
