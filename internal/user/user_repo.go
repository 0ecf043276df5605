package user

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/DhavalSuthar-24/clubhub/internal/models"
)

type UserRepository interface {
	Create(ctx context.Context, u *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	List(ctx context.Context, page, limit int, roleID *uint) ([]models.User, int64, error)
	Update(ctx context.Context, u *models.User) error
	Delete(ctx context.Context, id uint) error
	// Relation returns the name of the first relationship that still
	// references the user, or "".
	Relation(ctx context.Context, id uint) (string, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, u *models.User) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(u).Error
}

func (r *userRepository) one(q *gorm.DB) (*models.User, error) {
	var u models.User
	if err := q.Preload("Role.Permissions").First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return r.one(r.db.WithContext(ctx).Where("id = ?", id))
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.one(r.db.WithContext(ctx).Where("email = ?", email))
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return r.one(r.db.WithContext(ctx).Where("username = ?", username))
}

func (r *userRepository) List(ctx context.Context, page, limit int, roleID *uint) ([]models.User, int64, error) {
	var users []models.User
	var total int64

	query := r.db.WithContext(ctx).Model(&models.User{})
	if roleID != nil {
		query = query.Where("role_id = ?", *roleID)
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	offset := (page - 1) * limit
	if err := query.Preload("Role").Order("id").Offset(offset).Limit(limit).Find(&users).Error; err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

func (r *userRepository) Update(ctx context.Context, u *models.User) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(u).Error
}

func (r *userRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.User{}, id).Error
}

var userRelations = []struct {
	name  string
	model interface{}
	where string
}{
	{"responsible of a club", &models.Club{}, "responsible_id = ?"},
	{"organizer of an event", &models.Event{}, "organizer_id = ?"},
	{"referee of a match", &models.Match{}, "main_referee_id = ? OR assistant_referee_id = ?"},
	{"registered, approved or rejected a transfer", &models.Transfer{}, "registered_by_id = ? OR approved_by_id = ? OR rejected_by_id = ?"},
	{"registered, approved or rejected an enrollment", &models.Enrollment{}, "registered_by_id = ? OR approved_by_id = ? OR rejected_by_id = ?"},
	{"registered a match result", &models.Result{}, "registered_by_id = ?"},
}

func (r *userRepository) Relation(ctx context.Context, id uint) (string, error) {
	for _, rel := range userRelations {
		args := make([]interface{}, 0, 3)
		for i := 0; i < strings.Count(rel.where, "?"); i++ {
			args = append(args, id)
		}
		var n int64
		if err := r.db.WithContext(ctx).Model(rel.model).Where(rel.where, args...).Count(&n).Error; err != nil {
			return "", err
		}
		if n > 0 {
			return rel.name, nil
		}
	}
	return "", nil
}
