package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"gestionusuarios/internal/model"
	"gestionusuarios/internal/tui"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true)
	countStyle   = lipgloss.NewStyle().Faint(true)
	headerStyle  = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle    = lipgloss.NewStyle().Padding(0, 1)
)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
}

func printUsuarios(w io.Writer, titulo string, usuarios []model.Usuario) {
	if titulo != "" {
		fmt.Fprintln(w, headingStyle.Render(titulo)+" "+countStyle.Render(fmt.Sprintf("(%d registros)", len(usuarios))))
	}
	t := newTable("ID", "Nombre", "Email", "Cargo", "Sueldo (Bs.)")
	for _, u := range usuarios {
		t.Row(strconv.FormatUint(uint64(u.ID), 10), u.Nombre, u.Email, tui.CargoTexto(u), tui.SueldoTexto(u))
	}
	fmt.Fprintln(w, t.Render())
}

func printCargos(w io.Writer, cargos []model.Cargo) {
	t := newTable("ID", "Cargo", "Sueldo (Bs.)", "Entrada", "Salida")
	for _, c := range cargos {
		t.Row(strconv.FormatUint(uint64(c.ID), 10), c.Cargo, c.Sueldo.String(), c.HoraEntrada, c.HoraSalida)
	}
	fmt.Fprintln(w, t.Render())
}
