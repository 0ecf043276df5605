package athlete

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/DhavalSuthar-24/clubhub/internal/models"
)

type AthleteRepository interface {
	Create(ctx context.Context, a *models.Athlete) error
	GetByID(ctx context.Context, id uint) (*models.Athlete, error)
	GetByDocument(ctx context.Context, document string) (*models.Athlete, error)
	List(ctx context.Context, f Filter, page, limit int) ([]models.Athlete, int64, error)
	Update(ctx context.Context, a *models.Athlete) error
	SetStatus(ctx context.Context, id uint, status models.RecordStatus) error
	ActiveMemberships(ctx context.Context, athleteID uint) ([]models.ClubAthlete, error)
	Transfers(ctx context.Context, athleteID uint) ([]models.Transfer, error)
}

type athleteRepository struct {
	db *gorm.DB
}

func NewAthleteRepository(db *gorm.DB) AthleteRepository {
	return &athleteRepository{db: db}
}

func (r *athleteRepository) Create(ctx context.Context, a *models.Athlete) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *athleteRepository) one(q *gorm.DB) (*models.Athlete, error) {
	var a models.Athlete
	if err := q.First(&a).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

func (r *athleteRepository) GetByID(ctx context.Context, id uint) (*models.Athlete, error) {
	return r.one(r.db.WithContext(ctx).Where("id = ?", id))
}

func (r *athleteRepository) GetByDocument(ctx context.Context, document string) (*models.Athlete, error) {
	return r.one(r.db.WithContext(ctx).Where("document_number = ?", document))
}

func (r *athleteRepository) List(ctx context.Context, f Filter, page, limit int) ([]models.Athlete, int64, error) {
	var athletes []models.Athlete
	var total int64

	status := f.Status
	if status == "" {
		status = string(models.StatusActive)
	}
	query := r.db.WithContext(ctx).Model(&models.Athlete{}).Where("athletes.status = ?", status)
	if f.Gender != "" {
		query = query.Where("athletes.gender = ?", f.Gender)
	}
	if f.ClubID != nil {
		members := r.db.Model(&models.ClubAthlete{}).
			Select("athlete_id").
			Where("club_id = ? AND status = ?", *f.ClubID, models.StatusActive)
		query = query.Where("athletes.id IN (?)", members)
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	offset := (page - 1) * limit
	if err := query.Order("athletes.last_name, athletes.first_name").Offset(offset).Limit(limit).Find(&athletes).Error; err != nil {
		return nil, 0, err
	}
	return athletes, total, nil
}

func (r *athleteRepository) Update(ctx context.Context, a *models.Athlete) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *athleteRepository) SetStatus(ctx context.Context, id uint, status models.RecordStatus) error {
	return r.db.WithContext(ctx).Model(&models.Athlete{}).Where("id = ?", id).Update("status", status).Error
}

func (r *athleteRepository) ActiveMemberships(ctx context.Context, athleteID uint) ([]models.ClubAthlete, error) {
	var memberships []models.ClubAthlete
	err := r.db.WithContext(ctx).
		Preload("Club").
		Where("athlete_id = ? AND status = ?", athleteID, models.StatusActive).
		Order("joined_at").
		Find(&memberships).Error
	return memberships, err
}

func (r *athleteRepository) Transfers(ctx context.Context, athleteID uint) ([]models.Transfer, error) {
	var transfers []models.Transfer
	err := r.db.WithContext(ctx).
		Preload("FromClub").
		Preload("ToClub").
		Where("athlete_id = ?", athleteID).
		Order("transfer_date DESC, id DESC").
		Find(&transfers).Error
	return transfers, err
}
