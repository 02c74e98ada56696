// Package report renders usuario listings as printable PDF documents.
package report

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/go-pdf/fpdf"

	"gestionusuarios/internal/model"
)

// maxNombre truncates long cells so rows stay on one line.
const maxNombre = 34

// WriteUsuariosPDF writes an A4 landscape table of usuarios to w.
func WriteUsuariosPDF(w io.Writer, titulo string, usuarios []model.Usuario, generado time.Time) error {
	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(12, 12, 12)
	pdf.SetAutoPageBreak(true, 12)
	pdf.SetTitle(titulo, true)
	// core fonts are cp1252; accents in nombres need translating
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 24

	widths := []float64{
		contentW * 0.08, // ID
		contentW * 0.30, // Nombre
		contentW * 0.32, // Email
		contentW * 0.18, // Cargo
		contentW * 0.12, // Sueldo
	}
	headers := []string{"ID", "Nombre", "Email", "Cargo", "Sueldo (Bs.)"}
	aligns := []string{"C", "L", "L", "L", "R"}

	header := func() {
		pdf.SetFont("Helvetica", "B", 9)
		pdf.SetFillColor(230, 230, 240)
		for i, h := range headers {
			pdf.CellFormat(widths[i], 7, h, "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)
	}
	pdf.SetHeaderFunc(func() {
		if pdf.PageNo() > 1 {
			header()
		}
	})
	pdf.SetFooterFunc(func() {
		pdf.SetY(-10)
		pdf.SetFont("Helvetica", "I", 7)
		pdf.CellFormat(0, 5, tr(fmt.Sprintf("Página %d", pdf.PageNo())), "", 0, "C", false, 0, "")
	})

	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(contentW, 8, tr("Sistema de Gestión de Usuarios"), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(contentW, 6, tr(fmt.Sprintf("%s (%d registros)", titulo, len(usuarios))), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 8)
	pdf.CellFormat(contentW, 5, "Generado: "+generado.Format("02/01/2006 15:04"), "", 1, "L", false, 0, "")
	pdf.Ln(3)

	header()
	pdf.SetFont("Helvetica", "", 9)
	for _, u := range usuarios {
		cargo, sueldo := "", ""
		if u.Cargo != nil {
			cargo = *u.Cargo
		}
		if u.Sueldo.Valid {
			sueldo = u.Sueldo.Decimal.StringFixed(2)
		}
		cells := []string{
			strconv.FormatUint(uint64(u.ID), 10),
			truncate(u.Nombre),
			truncate(u.Email),
			truncate(cargo),
			sueldo,
		}
		for i, c := range cells {
			pdf.CellFormat(widths[i], 6, tr(c), "1", 0, aligns[i], false, 0, "")
		}
		pdf.Ln(-1)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("pdf: write: %w", err)
	}
	return nil
}

func truncate(s string) string {
	r := []rune(s)
	if len(r) <= maxNombre {
		return s
	}
	return string(r[:maxNombre-1]) + "…"
}
