package repository

import (
	"context"

	"gorm.io/gorm"

	"gestionusuarios/internal/model"
)

// AsistenciaRepository defines attendance persistence operations.
type AsistenciaRepository interface {
	Create(ctx context.Context, asistencia *model.Asistencia) error
}

type asistenciaRepository struct {
	db *gorm.DB
}

// NewAsistenciaRepository creates a new attendance repository.
func NewAsistenciaRepository(db *gorm.DB) AsistenciaRepository {
	return &asistenciaRepository{db: db}
}

func (r *asistenciaRepository) Create(ctx context.Context, asistencia *model.Asistencia) error {
	return r.db.WithContext(ctx).Create(asistencia).Error
}
