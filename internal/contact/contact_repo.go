package contact

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/DhavalSuthar-24/clubhub/internal/models"
)

type ContactRepository interface {
	Create(ctx context.Context, c *models.Contact) error
	GetByID(ctx context.Context, id uint) (*models.Contact, error)
	Update(ctx context.Context, c *models.Contact) error
	Delete(ctx context.Context, id uint) error
	// ForAthlete lists the athlete's contacts, emergency contact first.
	ForAthlete(ctx context.Context, athleteID uint) ([]models.Contact, error)
	// Emergency returns the athlete's emergency contact, or nil.
	Emergency(ctx context.Context, athleteID uint) (*models.Contact, error)
}

type contactRepository struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) ContactRepository {
	return &contactRepository{db: db}
}

func (r *contactRepository) Create(ctx context.Context, c *models.Contact) error {
	return r.db.WithContext(ctx).Omit("Athlete").Create(c).Error
}

func (r *contactRepository) one(q *gorm.DB) (*models.Contact, error) {
	var c models.Contact
	if err := q.First(&c).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *contactRepository) GetByID(ctx context.Context, id uint) (*models.Contact, error) {
	return r.one(r.db.WithContext(ctx).Where("id = ?", id))
}

func (r *contactRepository) Update(ctx context.Context, c *models.Contact) error {
	return r.db.WithContext(ctx).Omit("Athlete").Save(c).Error
}

func (r *contactRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Contact{}, id).Error
}

func (r *contactRepository) ForAthlete(ctx context.Context, athleteID uint) ([]models.Contact, error) {
	var contacts []models.Contact
	err := r.db.WithContext(ctx).
		Where("athlete_id = ?", athleteID).
		Order("is_emergency DESC, id").
		Find(&contacts).Error
	return contacts, err
}

func (r *contactRepository) Emergency(ctx context.Context, athleteID uint) (*models.Contact, error) {
	return r.one(r.db.WithContext(ctx).Where("athlete_id = ? AND is_emergency = ?", athleteID, true))
}
