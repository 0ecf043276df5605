package club

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/DhavalSuthar-24/clubhub/internal/models"
)

type ClubRepository interface {
	Create(ctx context.Context, c *models.Club) error
	GetByID(ctx context.Context, id uint) (*models.Club, error)
	// ActiveByName returns the active club called name, or nil.
	ActiveByName(ctx context.Context, name string) (*models.Club, error)
	List(ctx context.Context, f Filter, page, limit int) ([]models.Club, int64, error)
	Update(ctx context.Context, c *models.Club) error
	SetStatus(ctx context.Context, id uint, status models.RecordStatus) error

	CreateMembership(ctx context.Context, ca *models.ClubAthlete) error
	ActiveMembers(ctx context.Context, clubID uint) ([]models.ClubAthlete, error)
	Transfers(ctx context.Context, clubID uint) ([]models.Transfer, error)
	Matches(ctx context.Context, clubID uint) ([]models.Match, error)
}

type clubRepository struct {
	db *gorm.DB
}

func NewClubRepository(db *gorm.DB) ClubRepository {
	return &clubRepository{db: db}
}

func (r *clubRepository) Create(ctx context.Context, c *models.Club) error {
	return r.db.WithContext(ctx).Omit("Responsible").Create(c).Error
}

func (r *clubRepository) GetByID(ctx context.Context, id uint) (*models.Club, error) {
	var c models.Club
	if err := r.db.WithContext(ctx).First(&c, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *clubRepository) ActiveByName(ctx context.Context, name string) (*models.Club, error) {
	var c models.Club
	err := r.db.WithContext(ctx).Where("name = ? AND status = ?", name, models.StatusActive).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *clubRepository) List(ctx context.Context, f Filter, page, limit int) ([]models.Club, int64, error) {
	var clubs []models.Club
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Club{})
	if !f.IncludeInactive {
		query = query.Where("status = ?", models.StatusActive)
	}
	if f.ResponsibleID != nil {
		query = query.Where("responsible_id = ?", *f.ResponsibleID)
	}
	if name := strings.TrimSpace(f.Name); name != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(name)+"%")
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	offset := (page - 1) * limit
	if err := query.Order("name").Offset(offset).Limit(limit).Find(&clubs).Error; err != nil {
		return nil, 0, err
	}
	return clubs, total, nil
}

func (r *clubRepository) Update(ctx context.Context, c *models.Club) error {
	return r.db.WithContext(ctx).Omit("Responsible").Save(c).Error
}

func (r *clubRepository) SetStatus(ctx context.Context, id uint, status models.RecordStatus) error {
	return r.db.WithContext(ctx).Model(&models.Club{}).Where("id = ?", id).Update("status", status).Error
}

func (r *clubRepository) CreateMembership(ctx context.Context, ca *models.ClubAthlete) error {
	return r.db.WithContext(ctx).Omit("Club", "Athlete").Create(ca).Error
}

func (r *clubRepository) ActiveMembers(ctx context.Context, clubID uint) ([]models.ClubAthlete, error) {
	var members []models.ClubAthlete
	err := r.db.WithContext(ctx).
		Preload("Athlete").
		Where("club_id = ? AND status = ?", clubID, models.StatusActive).
		Order("joined_at").
		Find(&members).Error
	return members, err
}

func (r *clubRepository) Transfers(ctx context.Context, clubID uint) ([]models.Transfer, error) {
	var transfers []models.Transfer
	err := r.db.WithContext(ctx).
		Preload("Athlete").
		Where("from_club_id = ? OR to_club_id = ?", clubID, clubID).
		Order("transfer_date DESC, id DESC").
		Find(&transfers).Error
	return transfers, err
}

func (r *clubRepository) Matches(ctx context.Context, clubID uint) ([]models.Match, error) {
	var matches []models.Match
	err := r.db.WithContext(ctx).
		Preload("Result").
		Where("home_club_id = ? OR away_club_id = ?", clubID, clubID).
		Order("scheduled_at").
		Find(&matches).Error
	return matches, err
}
