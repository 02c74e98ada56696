package repository

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"gestionusuarios/internal/db"
	"gestionusuarios/internal/model"
)

// newTestDB returns a private in-memory SQLite database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	gdb, err := db.Open(db.DriverSQLite, "file::memory:?_foreign_keys=on")
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gdb, db.DriverSQLite))
	t.Cleanup(func() {
		if sqlDB, err := gdb.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return gdb
}

func crearCargo(t *testing.T, gdb *gorm.DB, nombre string, sueldo int64) *model.Cargo {
	t.Helper()
	cargo := &model.Cargo{
		Cargo:       nombre,
		Sueldo:      decimal.NewFromInt(sueldo),
		HoraEntrada: "08:00:00",
		HoraSalida:  "17:00:00",
	}
	require.NoError(t, NewCargoRepository(gdb).Create(context.Background(), cargo))
	return cargo
}

func crearUsuario(t *testing.T, gdb *gorm.DB, nombre, email string, cargo *model.Cargo) *model.RegistroUsuario {
	t.Helper()
	ctx := context.Background()
	repo := NewUsuarioRepository(gdb)
	usuario := &model.RegistroUsuario{Nombre: nombre, Email: email}
	require.NoError(t, repo.Create(ctx, usuario))
	if cargo != nil {
		require.NoError(t, repo.AsignarCargo(ctx, &model.CargoUsuario{
			IDUsuario:   usuario.ID,
			IDCargo:     cargo.ID,
			FechaInicio: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		}))
	}
	return usuario
}
