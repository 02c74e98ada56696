// Package seed loads a demo dataset of cargos, usuarios and asistencias.
package seed

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"gestionusuarios/internal/cache"
	apperrors "gestionusuarios/internal/errors"
	"gestionusuarios/internal/model"
	"gestionusuarios/internal/repository"
	"gestionusuarios/internal/service"
)

//go:embed demo.json
var demoDataset []byte

// Dataset is the seed file format. Usuarios reference cargos by name and
// asistencias reference usuarios by email.
type Dataset struct {
	Cargos      []CargoData      `json:"cargos"`
	Usuarios    []UsuarioData    `json:"usuarios"`
	Asistencias []AsistenciaData `json:"asistencias"`
}

type CargoData struct {
	Cargo       string `json:"cargo"`
	Sueldo      string `json:"sueldo"`
	HoraEntrada string `json:"hora_entrada"`
	HoraSalida  string `json:"hora_salida"`
}

type UsuarioData struct {
	Nombre      string `json:"nombre"`
	Email       string `json:"email"`
	Cargo       string `json:"cargo"`
	FechaInicio string `json:"fecha_inicio"`
}

type AsistenciaData struct {
	Email       string `json:"email"`
	Fecha       string `json:"fecha"`
	HoraEntrada string `json:"hora_entrada"`
	HoraSalida  string `json:"hora_salida"`
}

// Result counts what Apply changed.
type Result struct {
	CargosCreados        int
	UsuariosCreados      int
	UsuariosActualizados int
	AsistenciasCreadas   int
	Omitidos             int
}

// Load reads a dataset from a file path or an http(s) URL. An empty source
// returns the bundled demo dataset.
func Load(ctx context.Context, source string) (*Dataset, error) {
	var (
		raw []byte
		err error
	)
	switch {
	case source == "":
		raw = demoDataset
	case strings.HasPrefix(source, "http://"), strings.HasPrefix(source, "https://"):
		raw, err = fetch(ctx, source)
	default:
		raw, err = os.ReadFile(source)
	}
	if err != nil {
		return nil, err
	}

	var ds Dataset
	if err := json.Unmarshal(raw, &ds); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}
	return &ds, nil
}

func fetch(ctx context.Context, url string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch dataset: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("dataset source returned status code: %d", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return body, nil
}

// Seeder writes a dataset through the same services the API uses, so the
// seed obeys every rule a request would.
type Seeder struct {
	cargoRepo   repository.CargoRepository
	usuarioRepo repository.UsuarioRepository
	cargos      service.CargoService
	usuarios    service.UsuarioService
	asistencias service.AsistenciaService
}

// NewSeeder builds a Seeder over an open database. cacheClient may be nil.
func NewSeeder(gdb *gorm.DB, cacheClient *cache.Client) *Seeder {
	cargoRepo := repository.NewCargoRepository(gdb)
	usuarioRepo := repository.NewUsuarioRepository(gdb)
	return &Seeder{
		cargoRepo:   cargoRepo,
		usuarioRepo: usuarioRepo,
		cargos:      service.NewCargoService(cargoRepo, cacheClient, time.Minute),
		usuarios:    service.NewUsuarioService(usuarioRepo, cargoRepo),
		asistencias: service.NewAsistenciaService(repository.NewAsistenciaRepository(gdb), usuarioRepo),
	}
}

// Apply is idempotent: existing cargos are kept, existing usuarios (by email)
// are updated and already recorded asistencias are skipped.
func (s *Seeder) Apply(ctx context.Context, ds *Dataset) (Result, error) {
	var res Result

	cargoIDs := make(map[string]uint, len(ds.Cargos))
	for _, item := range ds.Cargos {
		id, created, err := s.cargo(ctx, item)
		if err != nil {
			return res, fmt.Errorf("cargo %q: %w", item.Cargo, err)
		}
		cargoIDs[item.Cargo] = id
		if created {
			res.CargosCreados++
		}
	}

	usuarioIDs := make(map[string]uint, len(ds.Usuarios))
	for _, item := range ds.Usuarios {
		idCargo, ok := cargoIDs[item.Cargo]
		if !ok {
			log.Warn().Str("email", item.Email).Str("cargo", item.Cargo).Msg("skipping usuario with unknown cargo")
			res.Omitidos++
			continue
		}
		form := model.UsuarioFormData{
			Nombre:      item.Nombre,
			Email:       item.Email,
			IDCargo:     strconv.FormatUint(uint64(idCargo), 10),
			FechaInicio: item.FechaInicio,
		}

		existing, err := s.usuarioRepo.FindByEmail(ctx, item.Email)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return res, fmt.Errorf("error checking usuario %s: %w", item.Email, err)
		}
		var usuario *model.Usuario
		if existing != nil {
			usuario, err = s.usuarios.ModificarUsuario(ctx, existing.ID, form)
		} else {
			usuario, err = s.usuarios.AgregarUsuario(ctx, form)
		}
		if err != nil {
			return res, fmt.Errorf("usuario %s: %w", item.Email, err)
		}
		if existing != nil {
			res.UsuariosActualizados++
		} else {
			res.UsuariosCreados++
		}
		usuarioIDs[item.Email] = usuario.ID
	}

	for _, item := range ds.Asistencias {
		idUsuario, ok := usuarioIDs[item.Email]
		if !ok {
			log.Warn().Str("email", item.Email).Msg("skipping asistencia for unknown usuario")
			res.Omitidos++
			continue
		}
		_, err := s.asistencias.RegistrarAsistencia(ctx, model.AsistenciaFormData{
			IDUsuario:   idUsuario,
			Fecha:       item.Fecha,
			HoraEntrada: item.HoraEntrada,
			HoraSalida:  item.HoraSalida,
		})
		switch {
		case errors.Is(err, apperrors.ErrAsistenciaDuplicada):
			res.Omitidos++
		case err != nil:
			return res, fmt.Errorf("asistencia %s %s: %w", item.Email, item.Fecha, err)
		default:
			res.AsistenciasCreadas++
		}
	}
	return res, nil
}

func (s *Seeder) cargo(ctx context.Context, item CargoData) (uint, bool, error) {
	existing, err := s.cargoRepo.FindByNombre(ctx, item.Cargo)
	if err == nil {
		return existing.ID, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, false, err
	}

	sueldo, err := decimal.NewFromString(item.Sueldo)
	if err != nil {
		return 0, false, apperrors.ErrMontoInvalido
	}
	created, err := s.cargos.CrearCargo(ctx, &model.Cargo{
		Cargo:       item.Cargo,
		Sueldo:      sueldo,
		HoraEntrada: item.HoraEntrada,
		HoraSalida:  item.HoraSalida,
	})
	if err != nil {
		return 0, false, err
	}
	return created.ID, true, nil
}
