package model

import "github.com/shopspring/decimal"

// Usuario is the denormalized read projection served by vista_usuarios_cargos
// (and the attendance views, which share its columns). Cargo, Sueldo and IDCargo
// are empty for usuarios without an assigned cargo.
type Usuario struct {
	ID      uint                `json:"id" gorm:"column:id"`
	Nombre  string              `json:"nombre" gorm:"column:nombre"`
	Email   string              `json:"email" gorm:"column:email"`
	Cargo   *string             `json:"cargo,omitempty" gorm:"column:cargo"`
	Sueldo  decimal.NullDecimal `json:"sueldo" gorm:"column:sueldo"`
	IDCargo *uint               `json:"id_cargo,omitempty" gorm:"column:id_cargo"`
}

// TableName points reads at the joined view, never at the usuarios table.
func (Usuario) TableName() string { return "vista_usuarios_cargos" }

// RegistroUsuario maps the usuarios table for writes.
type RegistroUsuario struct {
	ID     uint   `json:"id" gorm:"primaryKey"`
	Nombre string `json:"nombre" gorm:"size:255;not null"`
	Email  string `json:"email" gorm:"uniqueIndex;size:255;not null"`
}

func (RegistroUsuario) TableName() string { return "usuarios" }

// UsuarioFormData is the create/update input. IDCargo travels as text and is
// parsed to an integer before persistence; FechaInicio uses YYYY-MM-DD.
type UsuarioFormData struct {
	Nombre      string `json:"nombre"`
	Email       string `json:"email"`
	IDCargo     string `json:"id_cargo"`
	FechaInicio string `json:"fecha_inicio"`
}
