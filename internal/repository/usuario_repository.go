package repository

import (
	"context"

	"gorm.io/gorm"

	"gestionusuarios/internal/model"
)

// UsuarioRepository defines usuario persistence operations. Reads go through
// vista_usuarios_cargos; writes hit the usuarios and cargos_usuarios tables.
type UsuarioRepository interface {
	List(ctx context.Context) ([]model.Usuario, error)
	FindByID(ctx context.Context, id uint) (*model.Usuario, error)
	FindByEmail(ctx context.Context, email string) (*model.RegistroUsuario, error)
	Create(ctx context.Context, usuario *model.RegistroUsuario) error
	Update(ctx context.Context, id uint, nombre, email string) error
	Delete(ctx context.Context, id uint) error
	AsignarCargo(ctx context.Context, asignacion *model.CargoUsuario) error
	// WithTransaction runs fn against a repository bound to a single transaction.
	WithTransaction(ctx context.Context, fn func(ctx context.Context, repo UsuarioRepository) error) error
}

type usuarioRepository struct {
	db *gorm.DB
}

// NewUsuarioRepository builds a GORM-backed repository.
func NewUsuarioRepository(db *gorm.DB) UsuarioRepository {
	return &usuarioRepository{db: db}
}

func (r *usuarioRepository) List(ctx context.Context) ([]model.Usuario, error) {
	usuarios := []model.Usuario{}
	if err := r.db.WithContext(ctx).Order("id").Find(&usuarios).Error; err != nil {
		return nil, err
	}
	return usuarios, nil
}

func (r *usuarioRepository) FindByID(ctx context.Context, id uint) (*model.Usuario, error) {
	var usuario model.Usuario
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&usuario).Error; err != nil {
		return nil, err
	}
	return &usuario, nil
}

func (r *usuarioRepository) FindByEmail(ctx context.Context, email string) (*model.RegistroUsuario, error) {
	var usuario model.RegistroUsuario
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&usuario).Error; err != nil {
		return nil, err
	}
	return &usuario, nil
}

func (r *usuarioRepository) Create(ctx context.Context, usuario *model.RegistroUsuario) error {
	return r.db.WithContext(ctx).Create(usuario).Error
}

// Update writes only the non-empty fields.
func (r *usuarioRepository) Update(ctx context.Context, id uint, nombre, email string) error {
	fields := map[string]interface{}{}
	if nombre != "" {
		fields["nombre"] = nombre
	}
	if email != "" {
		fields["email"] = email
	}
	if len(fields) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(&model.RegistroUsuario{}).Where("id = ?", id).Updates(fields).Error
}

// Delete removes the usuario with its assignment and attendance rows. It returns
// gorm.ErrRecordNotFound when no usuario has that id.
func (r *usuarioRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id_usuario = ?", id).Delete(&model.Asistencia{}).Error; err != nil {
			return err
		}
		if err := tx.Where("id_usuario = ?", id).Delete(&model.CargoUsuario{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", id).Delete(&model.RegistroUsuario{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// AsignarCargo changes the usuario's cargo, creating the assignment when the
// usuario has none yet. FechaInicio is only written on creation.
func (r *usuarioRepository) AsignarCargo(ctx context.Context, asignacion *model.CargoUsuario) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.CargoUsuario{}).
		Where("id_usuario = ?", asignacion.IDUsuario).
		Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return r.db.WithContext(ctx).Create(asignacion).Error
	}
	return r.db.WithContext(ctx).Model(&model.CargoUsuario{}).
		Where("id_usuario = ?", asignacion.IDUsuario).
		Update("id_cargo", asignacion.IDCargo).Error
}

func (r *usuarioRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context, repo UsuarioRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ctx, &usuarioRepository{db: tx})
	})
}
