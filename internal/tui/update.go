package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"

	"gestionusuarios/internal/model"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case cargaMsg:
		return m.handleCarga(msg)
	case usuariosMsg:
		return m.handleUsuarios(msg)
	case guardadoMsg:
		return m.handleGuardado(msg)
	case eliminadoMsg:
		return m.handleEliminado(msg)
	case consultaMsg:
		return m.handleConsulta(msg)
	case toastExpiradoMsg:
		if m.toast != nil && m.toast.seq == msg.seq {
			m.toast = nil
		}
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

// ---------------------------------------------------------------------------
// Results
// ---------------------------------------------------------------------------

func (m Model) handleCarga(msg cargaMsg) (tea.Model, tea.Cmd) {
	m.loading = false
	if msg.err != nil {
		return m.mostrarToast(msgErrorCarga, toastError)
	}
	m.usuarios = msg.usuarios
	m.cargos = msg.cargos
	m.clampFila()
	return m, nil
}

func (m Model) handleUsuarios(msg usuariosMsg) (tea.Model, tea.Cmd) {
	m.loading = false
	if msg.err == nil {
		m.usuarios = msg.usuarios
	}
	m.clampFila()
	return m, nil
}

func (m Model) handleGuardado(msg guardadoMsg) (tea.Model, tea.Cmd) {
	m.guardando = false
	if msg.err != nil {
		return m.mostrarToast(msgErrorSolicitud, toastError)
	}
	text := msgAgregado
	if msg.editando {
		text = msgActualizado
	}
	m.editando = nil
	m.form = m.formVacio()
	m.loading = true
	m, toastCmd := m.mostrarToast(text, toastSuccess)
	if m.consultaActiva {
		return m, tea.Batch(m.refrescarCmd(), m.consultaCmd(m.ultimaConsulta, m.ultimoMonto, true), toastCmd)
	}
	return m, tea.Batch(m.refrescarCmd(), toastCmd)
}

func (m Model) handleEliminado(msg eliminadoMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		return m.mostrarToast(msgErrorEliminar, toastError)
	}
	if m.editando != nil && m.editando.ID == msg.id {
		m.editando = nil
		m.form = m.formVacio()
	}
	if m.consultaActiva {
		kept := m.resultados[:0:0]
		for _, u := range m.resultados {
			if u.ID != msg.id {
				kept = append(kept, u)
			}
		}
		m.resultados = kept
	}
	m.loading = true
	m, toastCmd := m.mostrarToast(msgEliminado, toastSuccess)
	return m, tea.Batch(m.refrescarCmd(), toastCmd)
}

func (m Model) handleConsulta(msg consultaMsg) (tea.Model, tea.Cmd) {
	if msg.recarga && !m.consultaActiva {
		return m, nil
	}
	if msg.err != nil {
		return m.mostrarToast(msgErrorConsulta, toastError)
	}
	m.resultados = msg.usuarios
	if m.resultados == nil {
		m.resultados = []model.Usuario{}
	}
	m.consultaActiva = true
	m.ultimaConsulta, m.ultimoMonto = msg.sel, msg.monto
	if msg.recarga {
		m.clampFila()
	} else {
		m.fila = 0
	}
	return m, nil
}

func (m Model) mostrarToast(text string, kind toastKind) (Model, tea.Cmd) {
	m.toastSeq++
	m.toast = &toast{text: text, kind: kind, seq: m.toastSeq}
	if m.toastTTL <= 0 {
		return m, nil
	}
	seq := m.toastSeq
	return m, tea.Tick(m.toastTTL, func(time.Time) tea.Msg {
		return toastExpiradoMsg{seq: seq}
	})
}

// ---------------------------------------------------------------------------
// Keys
// ---------------------------------------------------------------------------

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}
	if m.confirmando != nil {
		return m.updateConfirm(msg)
	}
	if m.buscando {
		return m.updateBusqueda(msg)
	}
	if m.loading {
		return m, nil
	}
	switch msg.Type {
	case tea.KeyTab:
		m.focus = (m.focus + 1) % sectionCount
		return m, nil
	case tea.KeyShiftTab:
		m.focus = (m.focus + sectionCount - 1) % sectionCount
		return m, nil
	}
	switch m.focus {
	case sectionForm:
		return m.updateForm(msg)
	case sectionConsultas:
		return m.updateConsultas(msg)
	default:
		return m.updateTabla(msg)
	}
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyUp:
		m.form.campo = (m.form.campo + campoCount - 1) % campoCount
	case tea.KeyDown:
		m.form.campo = (m.form.campo + 1) % campoCount
	case tea.KeyLeft:
		if m.form.campo == campoCargo {
			m.form.moverCargo(-1, len(m.cargos))
		}
	case tea.KeyRight:
		if m.form.campo == campoCargo {
			m.form.moverCargo(1, len(m.cargos))
		}
	case tea.KeyEnter:
		return m.enviar()
	case tea.KeyEsc:
		if m.editando != nil {
			m.editando = nil
			m.form = m.formVacio()
		}
	case tea.KeyBackspace:
		m.form.borrar()
	case tea.KeySpace:
		m.form.escribir(" ")
	case tea.KeyRunes:
		m.form.escribir(string(msg.Runes))
	}
	return m, nil
}

// enviar issues exactly one create or update call, depending on editando.
// Further submits are ignored until the reply arrives.
func (m Model) enviar() (tea.Model, tea.Cmd) {
	if m.guardando {
		return m, nil
	}
	data, err := m.form.datos(m.cargos)
	if err != nil {
		m.form.err = err.Error()
		return m, nil
	}
	m.form.err = ""
	m.guardando = true
	return m, m.guardarCmd(data)
}

func (m Model) updateConsultas(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyLeft, tea.KeyUp:
		m.consultaSel = (m.consultaSel + consultaCount - 1) % consultaCount
	case tea.KeyRight, tea.KeyDown:
		m.consultaSel = (m.consultaSel + 1) % consultaCount
	case tea.KeyBackspace:
		if m.consultaSel == consultaMonto && m.montoTexto != "" {
			m.montoTexto = m.montoTexto[:len(m.montoTexto)-1]
		}
	case tea.KeyRunes:
		if m.consultaSel == consultaMonto {
			for _, r := range msg.Runes {
				if r >= '0' && r <= '9' && len(m.montoTexto) < 12 {
					m.montoTexto += string(r)
				}
			}
			return m, nil
		}
		if msg.String() == "q" {
			return m, tea.Quit
		}
	case tea.KeyEnter:
		return m.ejecutarConsulta(m.consultaSel)
	}
	return m, nil
}

func (m Model) ejecutarConsulta(sel int) (tea.Model, tea.Cmd) {
	switch sel {
	case consultaMonto:
		// Enter on the monto input runs the consulta it parameterizes.
		return m, m.consultaCmd(consultaSueldoMayor, m.montoConsulta(), false)
	case consultaTodos:
		m.resultados = nil
		m.consultaActiva = false
		m.fila = 0
		return m, nil
	}
	return m, m.consultaCmd(sel, m.montoConsulta(), false)
}

func (m Model) updateTabla(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	filas := m.filas()
	switch msg.String() {
	case "up", "k":
		if m.fila > 0 {
			m.fila--
		}
	case "down", "j":
		if m.fila < len(filas)-1 {
			m.fila++
		}
	case "e", "enter":
		if m.fila < len(filas) {
			u := filas[m.fila]
			m.editando = &u
			m.form = m.formDesde(u)
			m.focus = sectionForm
		}
	case "d", "delete":
		if m.fila < len(filas) {
			u := filas[m.fila]
			m.confirmando = &u
		}
	case "/":
		m.buscando = true
	case "r":
		m.loading = true
		return m, m.cargarCmd()
	case "q":
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "s", "y", "enter":
		id := m.confirmando.ID
		m.confirmando = nil
		return m, m.eliminarCmd(id)
	case "n", "esc":
		m.confirmando = nil
	}
	return m, nil
}

func (m Model) updateBusqueda(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.buscando = false
		m.busqueda = ""
	case tea.KeyEnter:
		m.buscando = false
	case tea.KeyBackspace:
		if r := []rune(m.busqueda); len(r) > 0 {
			m.busqueda = string(r[:len(r)-1])
		}
	case tea.KeySpace:
		m.busqueda += " "
	case tea.KeyRunes:
		m.busqueda += string(msg.Runes)
	}
	m.fila = 0
	return m, nil
}

func (m *Model) clampFila() {
	n := len(m.filas())
	if m.fila >= n {
		m.fila = n - 1
	}
	if m.fila < 0 {
		m.fila = 0
	}
}

// ---------------------------------------------------------------------------
// Commands
// ---------------------------------------------------------------------------

func (m Model) cargarCmd() tea.Cmd {
	ctx, api := m.ctx, m.api
	return func() tea.Msg {
		usuarios, cargos, err := api.Cargar(ctx)
		return cargaMsg{usuarios: usuarios, cargos: cargos, err: err}
	}
}

func (m Model) refrescarCmd() tea.Cmd {
	ctx, api := m.ctx, m.api
	return func() tea.Msg {
		usuarios, err := api.ListarUsuarios(ctx)
		return usuariosMsg{usuarios: usuarios, err: err}
	}
}

func (m Model) guardarCmd(data model.UsuarioFormData) tea.Cmd {
	ctx, api := m.ctx, m.api
	if m.editando != nil {
		id := m.editando.ID
		return func() tea.Msg {
			_, err := api.ModificarUsuario(ctx, id, data)
			return guardadoMsg{editando: true, err: err}
		}
	}
	return func() tea.Msg {
		_, err := api.AgregarUsuario(ctx, data)
		return guardadoMsg{err: err}
	}
}

func (m Model) eliminarCmd(id uint) tea.Cmd {
	ctx, api := m.ctx, m.api
	return func() tea.Msg {
		return eliminadoMsg{id: id, err: api.EliminarUsuario(ctx, id)}
	}
}

// consultaCmd runs consulta sel. recarga marks a re-run after a save, which
// keeps the selected row and is dropped if the user left the consulta.
func (m Model) consultaCmd(sel int, montoConsulta int64, recarga bool) tea.Cmd {
	ctx, api := m.ctx, m.api
	monto := decimal.NewFromInt(montoConsulta)
	min, max := decimal.NewFromInt(m.rangoMin), decimal.NewFromInt(m.rangoMax)
	return func() tea.Msg {
		var (
			rows []model.Usuario
			err  error
		)
		switch sel {
		case consultaSueldoMayor:
			rows, err = api.UsuariosSueldoMayor(ctx, monto)
		case consultaSueldoEntre:
			rows, err = api.UsuariosSueldoEntre(ctx, min, max)
		case consultaTarde:
			rows, err = api.UsuariosLlegaronTarde(ctx)
		case consultaTemprano:
			rows, err = api.UsuariosSalieronTemprano(ctx)
		}
		return consultaMsg{sel: sel, monto: montoConsulta, recarga: recarga, usuarios: rows, err: err}
	}
}
