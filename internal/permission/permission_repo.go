package permission

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/DhavalSuthar-24/clubhub/internal/models"
)

type PermissionRepository interface {
	Create(ctx context.Context, p *models.Permission) error
	GetByID(ctx context.Context, id uint) (*models.Permission, error)
	GetByName(ctx context.Context, name string) (*models.Permission, error)
	List(ctx context.Context) ([]models.Permission, error)
	Update(ctx context.Context, p *models.Permission) error
	Delete(ctx context.Context, id uint) error
	CountRoles(ctx context.Context, id uint) (int64, error)
}

type permissionRepository struct {
	db *gorm.DB
}

func NewPermissionRepository(db *gorm.DB) PermissionRepository {
	return &permissionRepository{db: db}
}

func (r *permissionRepository) Create(ctx context.Context, p *models.Permission) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *permissionRepository) GetByID(ctx context.Context, id uint) (*models.Permission, error) {
	var p models.Permission
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *permissionRepository) GetByName(ctx context.Context, name string) (*models.Permission, error) {
	var p models.Permission
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *permissionRepository) List(ctx context.Context) ([]models.Permission, error) {
	var perms []models.Permission
	err := r.db.WithContext(ctx).Order("id").Find(&perms).Error
	return perms, err
}

func (r *permissionRepository) Update(ctx context.Context, p *models.Permission) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *permissionRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Permission{}, id).Error
}

func (r *permissionRepository) CountRoles(ctx context.Context, id uint) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Table("role_permissions").Where("permission_id = ?", id).Count(&n).Error
	return n, err
}
