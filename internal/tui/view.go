package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"gestionusuarios/internal/model"
)

const accionesCelda = "e editar · d eliminar"

func (m Model) View() string {
	if m.loading {
		return m.place(subtitleStyle.Render("Cargando..."))
	}
	if m.confirmando != nil {
		return m.place(m.confirmView())
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Sistema de Gestión de Usuarios"))
	b.WriteString("\n")
	if m.toast != nil {
		style := toastSuccessStyle
		if m.toast.kind == toastError {
			style = toastErrorStyle
		}
		b.WriteString(style.Render(m.toast.text))
	}
	b.WriteString("\n")
	b.WriteString(m.seccion(sectionForm, m.formView()))
	b.WriteString("\n")
	b.WriteString(m.seccion(sectionConsultas, m.consultasView()))
	b.WriteString("\n")
	b.WriteString(m.seccion(sectionTable, m.tablaView()))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.ayuda()))
	return b.String()
}

func (m Model) place(content string) string {
	if m.width == 0 || m.height == 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func (m Model) seccion(s section, body string) string {
	style := sectionStyle
	if m.focus == s {
		style = sectionFocusStyle
	}
	if m.width > 4 {
		style = style.Width(m.width - 2)
	}
	return style.Render(body)
}

func (m Model) formView() string {
	titulo, desc := "Agregar Nuevo Usuario", "Completa el formulario para agregar un nuevo usuario"
	boton := "Agregar Usuario"
	if m.editando != nil {
		titulo, desc = "Editar Usuario", "Modifica los datos del usuario seleccionado"
		boton = "Actualizar Usuario"
	}
	if m.guardando {
		boton = "Guardando..."
	}

	cargo := "Seleccionar cargo"
	if m.form.cargo >= 0 && m.form.cargo < len(m.cargos) {
		cargo = "‹ " + etiquetaCargo(m.cargos[m.form.cargo]) + " ›"
	}

	lines := []string{
		headingStyle.Render(titulo),
		subtitleStyle.Render(desc),
		"",
		m.campo(campoNombre, "Nombre", m.form.nombre),
		m.campo(campoEmail, "Email", m.form.email),
		m.campo(campoCargo, "Cargo", cargo),
		m.campo(campoFecha, "Fecha de inicio", m.form.fecha),
		"",
	}
	botones := buttonStyle.Render(boton)
	if m.focus == sectionForm {
		botones = buttonFocusStyle.Render(boton)
	}
	if m.editando != nil {
		botones += buttonStyle.Render("Cancelar (esc)")
	}
	lines = append(lines, botones)
	if m.form.err != "" {
		lines = append(lines, errorStyle.Render(m.form.err))
	}
	return strings.Join(lines, "\n")
}

func (m Model) campo(idx int, label, value string) string {
	style := inputStyle
	if m.focus == sectionForm && m.form.campo == idx {
		style = inputFocusStyle
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(label), style.Render(value+" "))
}

func (m Model) consultasView() string {
	etiquetas := m.etiquetasConsulta()
	monto := inputStyle.Render(m.montoTexto + " ")
	if m.focus == sectionConsultas && m.consultaSel == consultaMonto {
		monto = inputFocusStyle.Render(m.montoTexto + " ")
	}
	botones := make([]string, 0, consultaCount-1)
	for i := consultaSueldoMayor; i < consultaCount; i++ {
		style := buttonStyle
		if m.focus == sectionConsultas && m.consultaSel == i {
			style = buttonFocusStyle
		}
		botones = append(botones, style.Render(etiquetas[i]))
	}
	return strings.Join([]string{
		headingStyle.Render("Consultas Especiales"),
		subtitleStyle.Render("Realiza consultas específicas sobre los usuarios"),
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Width(26).Render("Monto de consulta (Bs.):"), monto),
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, botones...),
	}, "\n")
}

func (m Model) etiquetasConsulta() [consultaCount]string {
	return [consultaCount]string{
		consultaMonto:       "Monto",
		consultaSueldoMayor: fmt.Sprintf("Sueldo mayor a Bs. %d", m.montoConsulta()),
		consultaSueldoEntre: fmt.Sprintf("Sueldo entre Bs. %d-%d", m.rangoMin, m.rangoMax),
		consultaTarde:       "Llegaron tarde",
		consultaTemprano:    "Salieron temprano",
		consultaTodos:       fmt.Sprintf("Mostrar todos (%d)", len(m.usuarios)),
	}
}

func (m Model) tablaView() string {
	filas := m.filas()
	titulo := "Todos los Usuarios"
	if m.consultaActiva {
		titulo = "Resultados de la Consulta"
	}
	header := headingStyle.Render(titulo) + " " + countStyle.Render(fmt.Sprintf("(%d registros)", len(filas)))
	if m.buscando || m.busqueda != "" {
		header += "  " + searchStyle.Render("/"+m.busqueda)
	}
	return header + "\n" + renderTabla(filas, m.fila, m.focus == sectionTable)
}

// renderTabla draws the usuarios table; sel is highlighted when focused.
func renderTabla(rows []model.Usuario, sel int, focused bool) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(tableBorderStyle).
		Headers("ID", "Nombre", "Email", "Cargo", "Sueldo (Bs.)", "Acciones").
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return tableHeaderStyle
			case focused && row == sel:
				return tableSelStyle
			default:
				return tableCellStyle
			}
		})
	for _, u := range rows {
		t.Row(strconv.FormatUint(uint64(u.ID), 10), u.Nombre, u.Email, CargoTexto(u), SueldoTexto(u), accionesCelda)
	}
	return t.String()
}

func (m Model) confirmView() string {
	u := m.confirmando
	return modalStyle.Render(strings.Join([]string{
		headingStyle.Render(msgConfirmEliminar),
		"",
		fmt.Sprintf("%s <%s>", u.Nombre, u.Email),
		"",
		helpStyle.Render("s confirmar · n cancelar"),
	}, "\n"))
}

func (m Model) ayuda() string {
	switch {
	case m.buscando:
		return "escribe para buscar · enter aplicar · esc limpiar"
	case m.focus == sectionForm:
		return "tab sección · ↑/↓ campo · ←/→ cargo · enter guardar · esc cancelar edición"
	case m.focus == sectionConsultas:
		return "tab sección · ←/→ consulta · 0-9 monto · enter ejecutar · q salir"
	default:
		return "tab sección · ↑/↓ fila · e editar · d eliminar · / buscar · r recargar · q salir"
	}
}

// CargoTexto is the cargo cell, empty for usuarios without a cargo.
func CargoTexto(u model.Usuario) string {
	if u.Cargo == nil {
		return ""
	}
	return *u.Cargo
}

// SueldoTexto is the sueldo cell, empty for usuarios without a cargo.
func SueldoTexto(u model.Usuario) string {
	if !u.Sueldo.Valid {
		return ""
	}
	return u.Sueldo.Decimal.String()
}
