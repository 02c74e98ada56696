package repository

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"gestionusuarios/internal/model"
)

const (
	vistaUsuariosCargos   = "vista_usuarios_cargos"
	vistaUsuariosTarde    = "vista_usuarios_tarde"
	vistaUsuariosTemprano = "vista_usuarios_temprano"
)

// ConsultaRepository runs the canned queries. All filtering happens in the
// database views; this layer only picks the view and binds parameters.
type ConsultaRepository interface {
	SueldoMayor(ctx context.Context, monto decimal.Decimal) ([]model.Usuario, error)
	SueldoEntre(ctx context.Context, min, max decimal.Decimal) ([]model.Usuario, error)
	LlegaronTarde(ctx context.Context) ([]model.Usuario, error)
	SalieronTemprano(ctx context.Context) ([]model.Usuario, error)
}

type consultaRepository struct {
	db *gorm.DB
}

// NewConsultaRepository creates a repository over the reporting views.
func NewConsultaRepository(db *gorm.DB) ConsultaRepository {
	return &consultaRepository{db: db}
}

// Amounts are bound as float64: every supported driver compares that against a
// numeric column, while decimal.Decimal binds as text.
func (r *consultaRepository) SueldoMayor(ctx context.Context, monto decimal.Decimal) ([]model.Usuario, error) {
	return r.find(r.db.WithContext(ctx).Table(vistaUsuariosCargos).
		Where("sueldo > ?", monto.InexactFloat64()))
}

func (r *consultaRepository) SueldoEntre(ctx context.Context, min, max decimal.Decimal) ([]model.Usuario, error) {
	return r.find(r.db.WithContext(ctx).Table(vistaUsuariosCargos).
		Where("sueldo >= ? AND sueldo <= ?", min.InexactFloat64(), max.InexactFloat64()))
}

func (r *consultaRepository) LlegaronTarde(ctx context.Context) ([]model.Usuario, error) {
	return r.find(r.db.WithContext(ctx).Table(vistaUsuariosTarde))
}

func (r *consultaRepository) SalieronTemprano(ctx context.Context) ([]model.Usuario, error) {
	return r.find(r.db.WithContext(ctx).Table(vistaUsuariosTemprano))
}

func (r *consultaRepository) find(q *gorm.DB) ([]model.Usuario, error) {
	usuarios := []model.Usuario{}
	if err := q.Order("id").Find(&usuarios).Error; err != nil {
		return nil, err
	}
	return usuarios, nil
}
