package role

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/DhavalSuthar-24/clubhub/internal/models"
)

type RoleRepository interface {
	Create(ctx context.Context, r *models.Role) error
	GetByID(ctx context.Context, id uint) (*models.Role, error)
	GetByName(ctx context.Context, name string) (*models.Role, error)
	List(ctx context.Context) ([]models.Role, error)
	// Save updates the role row and replaces its permission set.
	Save(ctx context.Context, r *models.Role) error
	Delete(ctx context.Context, id uint) error
	FindPermissions(ctx context.Context, ids []uint) ([]models.Permission, error)
	CountUsers(ctx context.Context, id uint) (int64, error)
}

type roleRepository struct {
	db *gorm.DB
}

func NewRoleRepository(db *gorm.DB) RoleRepository {
	return &roleRepository{db: db}
}

func (r *roleRepository) Create(ctx context.Context, role *models.Role) error {
	return r.db.WithContext(ctx).Create(role).Error
}

func (r *roleRepository) first(q *gorm.DB) (*models.Role, error) {
	var role models.Role
	if err := q.Preload("Permissions").First(&role).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &role, nil
}

func (r *roleRepository) GetByID(ctx context.Context, id uint) (*models.Role, error) {
	return r.first(r.db.WithContext(ctx).Where("id = ?", id))
}

func (r *roleRepository) GetByName(ctx context.Context, name string) (*models.Role, error) {
	return r.first(r.db.WithContext(ctx).Where("name = ?", name))
}

func (r *roleRepository) List(ctx context.Context) ([]models.Role, error) {
	var roles []models.Role
	err := r.db.WithContext(ctx).Preload("Permissions").Order("id").Find(&roles).Error
	return roles, err
}

func (r *roleRepository) Save(ctx context.Context, role *models.Role) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(role).Update("name", role.Name).Error; err != nil {
			return err
		}
		return tx.Model(role).Association("Permissions").Replace(role.Permissions)
	})
}

func (r *roleRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		role := models.Role{Base: models.Base{ID: id}}
		if err := tx.Model(&role).Association("Permissions").Clear(); err != nil {
			return err
		}
		return tx.Delete(&models.Role{}, id).Error
	})
}

func (r *roleRepository) FindPermissions(ctx context.Context, ids []uint) ([]models.Permission, error) {
	var perms []models.Permission
	if len(ids) == 0 {
		return perms, nil
	}
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&perms).Error
	return perms, err
}

func (r *roleRepository) CountUsers(ctx context.Context, id uint) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.User{}).Where("role_id = ?", id).Count(&n).Error
	return n, err
}
