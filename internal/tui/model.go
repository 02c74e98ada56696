// Package tui is the interactive usuarios page: a form, the canned consultas
// and the usuarios table, driven against the API through API.
package tui

import (
	"context"
	"strconv"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"

	"gestionusuarios/internal/model"
)

// API is the subset of the HTTP client the page needs. *client.Client satisfies it.
type API interface {
	Cargar(ctx context.Context) ([]model.Usuario, []model.Cargo, error)
	ListarUsuarios(ctx context.Context) ([]model.Usuario, error)
	AgregarUsuario(ctx context.Context, form model.UsuarioFormData) (*model.Usuario, error)
	ModificarUsuario(ctx context.Context, id uint, form model.UsuarioFormData) (*model.Usuario, error)
	EliminarUsuario(ctx context.Context, id uint) error
	UsuariosSueldoMayor(ctx context.Context, monto decimal.Decimal) ([]model.Usuario, error)
	UsuariosSueldoEntre(ctx context.Context, min, max decimal.Decimal) ([]model.Usuario, error)
	UsuariosLlegaronTarde(ctx context.Context) ([]model.Usuario, error)
	UsuariosSalieronTemprano(ctx context.Context) ([]model.Usuario, error)
}

// Options tunes the page. Zero values fall back to the defaults below.
type Options struct {
	MontoConsulta int64
	RangoMin      int64
	RangoMax      int64
	// ToastTTL is how long a toast stays visible; 0 keeps it until the next one.
	ToastTTL time.Duration
	Now      func() time.Time
}

const (
	defaultMonto    = 4000
	defaultRangoMin = 3000
	defaultRangoMax = 6000
)

const (
	msgAgregado        = "Usuario agregado"
	msgActualizado     = "Usuario actualizado"
	msgErrorSolicitud  = "Ha ocurrido un error al procesar la solicitud"
	msgEliminado       = "Usuario eliminado correctamente"
	msgErrorEliminar   = "Ha ocurrido un error al eliminar el usuario"
	msgErrorConsulta   = "Ha ocurrido un error al ejecutar la consulta"
	msgErrorCarga      = "No se pudieron cargar los usuarios"
	msgConfirmEliminar = "¿Estás seguro de que quieres eliminar este usuario?"
)

type section int

const (
	sectionForm section = iota
	sectionConsultas
	sectionTable
	sectionCount
)

// Form fields, in display order.
const (
	campoNombre = iota
	campoEmail
	campoCargo
	campoFecha
	campoCount
)

// Consultas row, in display order. The first entry is the monto input.
const (
	consultaMonto = iota
	consultaSueldoMayor
	consultaSueldoEntre
	consultaTarde
	consultaTemprano
	consultaTodos
	consultaCount
)

type toastKind int

const (
	toastSuccess toastKind = iota
	toastError
)

type toast struct {
	text string
	kind toastKind
	seq  int
}

// ---------------------------------------------------------------------------
// Bubble Tea messages
// ---------------------------------------------------------------------------

type cargaMsg struct {
	usuarios []model.Usuario
	cargos   []model.Cargo
	err      error
}

type usuariosMsg struct {
	usuarios []model.Usuario
	err      error
}

type guardadoMsg struct {
	editando bool
	err      error
}

type eliminadoMsg struct {
	id  uint
	err error
}

type consultaMsg struct {
	sel      int
	monto    int64
	recarga  bool
	usuarios []model.Usuario
	err      error
}

type toastExpiradoMsg struct {
	seq int
}

// Model is the page state.
type Model struct {
	ctx context.Context
	api API

	usuarios []model.Usuario
	cargos   []model.Cargo
	loading  bool

	// resultados replaces usuarios in the table while consultaActiva is set,
	// even when a consulta matched nothing.
	resultados     []model.Usuario
	consultaActiva bool
	// ultimaConsulta and ultimoMonto rebuild resultados after a save.
	ultimaConsulta int
	ultimoMonto    int64

	editando  *model.Usuario
	form      formState
	guardando bool

	montoTexto  string
	consultaSel int
	rangoMin    int64
	rangoMax    int64

	focus       section
	fila        int
	confirmando *model.Usuario
	buscando    bool
	busqueda    string

	toast    *toast
	toastSeq int
	toastTTL time.Duration

	now    func() time.Time
	width  int
	height int
}

// New builds the page. Init starts the first load.
func New(ctx context.Context, api API, opts Options) Model {
	if opts.MontoConsulta <= 0 {
		opts.MontoConsulta = defaultMonto
	}
	if opts.RangoMin <= 0 && opts.RangoMax <= 0 {
		opts.RangoMin, opts.RangoMax = defaultRangoMin, defaultRangoMax
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	m := Model{
		ctx:        ctx,
		api:        api,
		loading:    true,
		montoTexto: strconv.FormatInt(opts.MontoConsulta, 10),
		rangoMin:   opts.RangoMin,
		rangoMax:   opts.RangoMax,
		toastTTL:   opts.ToastTTL,
		now:        opts.Now,
	}
	m.form = m.formVacio()
	return m
}

// Run blocks until the user quits or ctx is cancelled.
func Run(ctx context.Context, api API, opts Options) error {
	p := tea.NewProgram(New(ctx, api, opts), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return m.cargarCmd()
}

// montoConsulta is the parsed monto input; an empty input counts as 0.
func (m Model) montoConsulta() int64 {
	n, err := strconv.ParseInt(m.montoTexto, 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// filas is the record set currently displayed, after the local search filter.
func (m Model) filas() []model.Usuario {
	base := m.usuarios
	if m.consultaActiva {
		base = m.resultados
	}
	return filtrar(base, m.busqueda)
}
