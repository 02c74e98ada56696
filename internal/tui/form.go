package tui

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"gestionusuarios/internal/model"
)

const fechaLayout = "2006-01-02"

var validate = validator.New()

type formState struct {
	nombre string
	email  string
	// cargo indexes Model.cargos; -1 means no cargo selected.
	cargo int
	fecha string
	campo int
	err   string
}

func (m Model) formVacio() formState {
	return formState{
		cargo: -1,
		fecha: m.now().Format(fechaLayout),
	}
}

// formDesde loads a usuario into the form for editing. The view carries no
// start date, so fecha_inicio falls back to today.
func (m Model) formDesde(u model.Usuario) formState {
	f := m.formVacio()
	f.nombre = u.Nombre
	f.email = u.Email
	if u.IDCargo != nil {
		for i, c := range m.cargos {
			if c.ID == *u.IDCargo {
				f.cargo = i
				break
			}
		}
	}
	return f
}

// datos validates the required fields and builds the request payload.
func (f formState) datos(cargos []model.Cargo) (model.UsuarioFormData, error) {
	nombre := strings.TrimSpace(f.nombre)
	if nombre == "" {
		return model.UsuarioFormData{}, errors.New("El nombre es obligatorio")
	}
	email := strings.TrimSpace(f.email)
	if err := validate.Var(email, "required,email"); err != nil {
		return model.UsuarioFormData{}, errors.New("Email inválido")
	}
	if _, err := time.Parse(fechaLayout, f.fecha); err != nil {
		return model.UsuarioFormData{}, errors.New("Fecha de inicio inválida")
	}
	data := model.UsuarioFormData{
		Nombre:      nombre,
		Email:       email,
		FechaInicio: f.fecha,
	}
	if f.cargo >= 0 && f.cargo < len(cargos) {
		data.IDCargo = strconv.FormatUint(uint64(cargos[f.cargo].ID), 10)
	}
	return data, nil
}

func (f *formState) valor() *string {
	switch f.campo {
	case campoNombre:
		return &f.nombre
	case campoEmail:
		return &f.email
	case campoFecha:
		return &f.fecha
	}
	return nil
}

func (f *formState) escribir(s string) {
	v := f.valor()
	if v == nil {
		return
	}
	if f.campo == campoFecha {
		s = strings.Map(func(r rune) rune {
			if (r >= '0' && r <= '9') || r == '-' {
				return r
			}
			return -1
		}, s)
	}
	*v += s
}

func (f *formState) borrar() {
	v := f.valor()
	if v == nil || *v == "" {
		return
	}
	r := []rune(*v)
	*v = string(r[:len(r)-1])
}

func (f *formState) moverCargo(delta, total int) {
	if total == 0 {
		return
	}
	next := f.cargo + delta
	if next < 0 {
		next = total - 1
	}
	if next >= total {
		next = 0
	}
	f.cargo = next
}

func etiquetaCargo(c model.Cargo) string {
	return c.Cargo + " - Bs. " + c.Sueldo.String()
}
