//go:build integration

package router

// End-to-end run against real Postgres + Redis via testcontainers.
// Run with: go test -tags integration ./internal/router/... -v

import (
	"context"
	"net/http"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcPostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	tcRedis "github.com/testcontainers/testcontainers-go/modules/redis"

	"gestionusuarios/internal/cache"
	"gestionusuarios/internal/db"
)

func TestE2E_PostgresRedis(t *testing.T) {
	ctx := context.Background()

	pgC, err := tcPostgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:15-alpine"),
		tcPostgres.WithDatabase("usuarios_test"),
		tcPostgres.WithUsername("usuarios"),
		tcPostgres.WithPassword("usuarios"),
		tcPostgres.BasicWaitStrategies(),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pgC.Terminate(ctx) })

	pgURL, err := pgC.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	rdC, err := tcRedis.RunContainer(ctx,
		testcontainers.WithImage("redis:7-alpine"),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = rdC.Terminate(ctx) })

	rdURL, err := rdC.ConnectionString(ctx)
	require.NoError(t, err)
	rdOpts, err := redis.ParseURL(rdURL)
	require.NoError(t, err)

	gdb, err := db.Open(db.DriverPostgres, pgURL)
	require.NoError(t, err)
	require.NoError(t, db.Reset(gdb, db.DriverPostgres))

	cacheClient := cache.New(rdOpts.Addr, rdOpts.Password, rdOpts.DB)
	t.Cleanup(func() { _ = cacheClient.Close() })
	require.NoError(t, cacheClient.Ping(ctx))

	cfg := testConfig()
	cfg.DBDriver = db.DriverPostgres
	e, err := New(cfg, gdb, cacheClient)
	require.NoError(t, err)

	rec := call(t, e, http.MethodGet, "/healthz", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"redis":"connected"`)

	access, refresh := login(t, e)

	// refresh works only while redis holds the token
	rec = call(t, e, http.MethodPost, "/api/auth/refresh", map[string]string{"refresh_token": refresh}, "")
	require.Equal(t, http.StatusOK, rec.Code)
	rec = call(t, e, http.MethodPost, "/api/auth/logout", map[string]string{"refresh_token": refresh}, "")
	require.Equal(t, http.StatusOK, rec.Code)
	rec = call(t, e, http.MethodPost, "/api/auth/refresh", map[string]string{"refresh_token": refresh}, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// warm the cargo cache, then make sure a write invalidates it
	rec = call(t, e, http.MethodGet, "/api/cargos", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	rec = call(t, e, http.MethodPost, "/api/cargos", map[string]interface{}{"cargo": "Cajero", "sueldo": 4500}, access)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = call(t, e, http.MethodGet, "/api/cargos", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Cajero")

	rec = call(t, e, http.MethodPost, "/api/usuarios", map[string]string{
		"nombre": "Ana", "email": "ana@example.com", "id_cargo": "1", "fecha_inicio": "2024-03-01",
	}, access)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = call(t, e, http.MethodGet, "/api/consultas/sueldo-entre?min=3000&max=6000", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ana@example.com")
}
