package repository

import (
	"context"

	"gorm.io/gorm"

	"gestionusuarios/internal/model"
)

// CargoRepository defines cargo persistence operations.
type CargoRepository interface {
	List(ctx context.Context) ([]model.Cargo, error)
	FindByID(ctx context.Context, id uint) (*model.Cargo, error)
	FindByNombre(ctx context.Context, nombre string) (*model.Cargo, error)
	Create(ctx context.Context, cargo *model.Cargo) error
}

type cargoRepository struct {
	db *gorm.DB
}

// NewCargoRepository creates a new cargo repository.
func NewCargoRepository(db *gorm.DB) CargoRepository {
	return &cargoRepository{db: db}
}

func (r *cargoRepository) List(ctx context.Context) ([]model.Cargo, error) {
	cargos := []model.Cargo{}
	if err := r.db.WithContext(ctx).Order("id").Find(&cargos).Error; err != nil {
		return nil, err
	}
	return cargos, nil
}

func (r *cargoRepository) FindByID(ctx context.Context, id uint) (*model.Cargo, error) {
	var cargo model.Cargo
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&cargo).Error; err != nil {
		return nil, err
	}
	return &cargo, nil
}

func (r *cargoRepository) FindByNombre(ctx context.Context, nombre string) (*model.Cargo, error) {
	var cargo model.Cargo
	if err := r.db.WithContext(ctx).Where("cargo = ?", nombre).First(&cargo).Error; err != nil {
		return nil, err
	}
	return &cargo, nil
}

func (r *cargoRepository) Create(ctx context.Context, cargo *model.Cargo) error {
	return r.db.WithContext(ctx).Create(cargo).Error
}
