package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Cargo is a role with a fixed salary and the shift the attendance views compare against.
type Cargo struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	Cargo       string          `json:"cargo" gorm:"column:cargo;size:100;not null"`
	Sueldo      decimal.Decimal `json:"sueldo" gorm:"type:decimal(12,2);not null"`
	HoraEntrada string          `json:"hora_entrada" gorm:"column:hora_entrada;size:8"`
	HoraSalida  string          `json:"hora_salida" gorm:"column:hora_salida;size:8"`
}

func (Cargo) TableName() string { return "cargos" }

// CargoUsuario assigns one cargo to one usuario.
type CargoUsuario struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	IDUsuario   uint      `json:"id_usuario" gorm:"column:id_usuario;uniqueIndex;not null"`
	IDCargo     uint      `json:"id_cargo" gorm:"column:id_cargo;not null"`
	FechaInicio time.Time `json:"fecha_inicio" gorm:"column:fecha_inicio;type:date;not null"`
}

func (CargoUsuario) TableName() string { return "cargos_usuarios" }
