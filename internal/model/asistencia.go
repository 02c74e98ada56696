package model

import "time"

// Asistencia records when a usuario arrived and left on a given day.
// Hours are stored as zero-padded HH:MM:SS so the views can compare them as text.
type Asistencia struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	IDUsuario   uint      `json:"id_usuario" gorm:"column:id_usuario;not null"`
	Fecha       time.Time `json:"fecha" gorm:"column:fecha;type:date;not null"`
	HoraEntrada string    `json:"hora_entrada" gorm:"column:hora_entrada;size:8;not null"`
	HoraSalida  *string   `json:"hora_salida,omitempty" gorm:"column:hora_salida;size:8"`
}

func (Asistencia) TableName() string { return "asistencias" }

// AsistenciaFormData is the attendance input. Fecha uses YYYY-MM-DD and the
// hours accept HH:MM or HH:MM:SS; HoraSalida may be empty.
type AsistenciaFormData struct {
	IDUsuario   uint   `json:"id_usuario"`
	Fecha       string `json:"fecha"`
	HoraEntrada string `json:"hora_entrada"`
	HoraSalida  string `json:"hora_salida"`
}
