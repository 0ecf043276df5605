package auth

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/DhavalSuthar-24/clubhub/internal/models"
)

type AuthRepository interface {
	CreateUser(ctx context.Context, u *models.User) error
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	GetUserByID(ctx context.Context, id uint) (*models.User, error)
	UpdateUser(ctx context.Context, u *models.User) error
	GetRoleByID(ctx context.Context, id uint) (*models.Role, error)
	GetRoleByName(ctx context.Context, name string) (*models.Role, error)
}

type authRepository struct {
	db *gorm.DB
}

func NewAuthRepository(db *gorm.DB) AuthRepository {
	return &authRepository{db: db}
}

// first returns nil, nil when nothing matches.
func first[T any](q *gorm.DB) (*T, error) {
	var row T
	if err := q.First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

func (r *authRepository) CreateUser(ctx context.Context, u *models.User) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(u).Error
}

func (r *authRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return first[models.User](r.db.WithContext(ctx).Preload("Role.Permissions").Where("email = ?", email))
}

func (r *authRepository) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	return first[models.User](r.db.WithContext(ctx).Where("username = ?", username))
}

func (r *authRepository) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	return first[models.User](r.db.WithContext(ctx).Preload("Role.Permissions").Where("id = ?", id))
}

func (r *authRepository) UpdateUser(ctx context.Context, u *models.User) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(u).Error
}

func (r *authRepository) GetRoleByID(ctx context.Context, id uint) (*models.Role, error) {
	return first[models.Role](r.db.WithContext(ctx).Preload("Permissions").Where("id = ?", id))
}

func (r *authRepository) GetRoleByName(ctx context.Context, name string) (*models.Role, error) {
	return first[models.Role](r.db.WithContext(ctx).Preload("Permissions").Where("name = ?", name))
}
