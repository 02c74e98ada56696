package tui

import (
	"strings"
	"unicode"

	"github.com/agnivade/levenshtein"

	"gestionusuarios/internal/model"
)

// maxTypos caps the edit distance tolerated for a single search word.
const maxTypos = 2

func filtrar(rows []model.Usuario, query string) []model.Usuario {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return rows
	}
	out := make([]model.Usuario, 0, len(rows))
	for _, u := range rows {
		if coincide(u, q) {
			out = append(out, u)
		}
	}
	return out
}

// coincide matches q against nombre and email by substring first, then by
// edit distance against each word, allowing one typo per four characters.
func coincide(u model.Usuario, q string) bool {
	nombre := strings.ToLower(u.Nombre)
	email := strings.ToLower(u.Email)
	if strings.Contains(nombre, q) || strings.Contains(email, q) {
		return true
	}
	tolerancia := len([]rune(q)) / 4
	if tolerancia > maxTypos {
		tolerancia = maxTypos
	}
	if tolerancia == 0 {
		return false
	}
	for _, palabra := range palabras(nombre, email) {
		if levenshtein.ComputeDistance(palabra, q) <= tolerancia {
			return true
		}
	}
	return false
}

func palabras(fields ...string) []string {
	var out []string
	for _, f := range fields {
		out = append(out, strings.FieldsFunc(f, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r)
		})...)
	}
	return out
}
