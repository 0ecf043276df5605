package enrollment

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/DhavalSuthar-24/clubhub/internal/models"
)

type EnrollmentRepository interface {
	Create(ctx context.Context, e *models.Enrollment) error
	GetByID(ctx context.Context, id uint) (*models.Enrollment, error)
	Exists(ctx context.Context, eventID, clubID uint) (bool, error)
	Update(ctx context.Context, e *models.Enrollment) error
}

type enrollmentRepository struct {
	db *gorm.DB
}

func NewEnrollmentRepository(db *gorm.DB) EnrollmentRepository {
	return &enrollmentRepository{db: db}
}

func (r *enrollmentRepository) Create(ctx context.Context, e *models.Enrollment) error {
	return r.db.WithContext(ctx).Omit("Event", "Club").Create(e).Error
}

func (r *enrollmentRepository) GetByID(ctx context.Context, id uint) (*models.Enrollment, error) {
	var e models.Enrollment
	if err := r.db.WithContext(ctx).Preload("Event").Preload("Club").First(&e, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &e, nil
}

func (r *enrollmentRepository) Exists(ctx context.Context, eventID, clubID uint) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.Enrollment{}).
		Where("event_id = ? AND club_id = ?", eventID, clubID).
		Count(&n).Error
	return n > 0, err
}

func (r *enrollmentRepository) Update(ctx context.Context, e *models.Enrollment) error {
	return r.db.WithContext(ctx).Omit("Event", "Club").Save(e).Error
}
