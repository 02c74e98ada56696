package service

import (
	"strconv"
	"strings"
	"time"

	apperrors "gestionusuarios/internal/errors"
)

const (
	fechaLayout = "2006-01-02"
	horaLayout  = "15:04:05"

	horaEntradaDefault = "08:00:00"
	horaSalidaDefault  = "17:00:00"
)

// parseIDCargo turns the form's textual id_cargo into a cargo id.
func parseIDCargo(raw string) (uint, error) {
	id, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 32)
	if err != nil || id == 0 {
		return 0, apperrors.ErrCargoInvalido
	}
	return uint(id), nil
}

// parseFecha parses YYYY-MM-DD; an empty value means today.
func parseFecha(raw string, now time.Time) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		y, m, d := now.Date()
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
	}
	fecha, err := time.Parse(fechaLayout, raw)
	if err != nil {
		return time.Time{}, apperrors.ErrFechaInvalida
	}
	return fecha, nil
}

// normalizeHora accepts HH:MM or HH:MM:SS and returns zero-padded HH:MM:SS,
// the only form the attendance views compare correctly.
func normalizeHora(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	for _, layout := range []string{horaLayout, "15:04"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format(horaLayout), nil
		}
	}
	return "", apperrors.ErrHoraInvalida
}
