package match

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/DhavalSuthar-24/clubhub/internal/models"
)

// Window is the slot a match occupies at its location on either side of
// its scheduled time.
const Window = 2 * time.Hour

type MatchRepository interface {
	Create(ctx context.Context, m *models.Match) error
	GetByID(ctx context.Context, id uint) (*models.Match, error)
	List(ctx context.Context, f Filter, page, limit int) ([]models.Match, int64, error)
	Update(ctx context.Context, m *models.Match) error
	// Clashing counts non-cancelled matches at location scheduled within
	// Window of at, ignoring excludeID.
	Clashing(ctx context.Context, location string, at time.Time, excludeID uint) (int64, error)
}

type matchRepository struct {
	db *gorm.DB
}

func NewMatchRepository(db *gorm.DB) MatchRepository {
	return &matchRepository{db: db}
}

func (r *matchRepository) Create(ctx context.Context, m *models.Match) error {
	return r.db.WithContext(ctx).Omit("Event", "HomeClub", "AwayClub", "Result").Create(m).Error
}

func (r *matchRepository) GetByID(ctx context.Context, id uint) (*models.Match, error) {
	var m models.Match
	err := r.db.WithContext(ctx).
		Preload("HomeClub").
		Preload("AwayClub").
		Preload("Result").
		First(&m, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (r *matchRepository) List(ctx context.Context, f Filter, page, limit int) ([]models.Match, int64, error) {
	var matches []models.Match
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Match{})
	if f.From != nil {
		query = query.Where("scheduled_at >= ?", *f.From)
	}
	if f.To != nil {
		query = query.Where("scheduled_at <= ?", *f.To)
	}
	if f.Status != "" {
		query = query.Where("status = ?", f.Status)
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	offset := (page - 1) * limit
	err := query.Preload("HomeClub").Preload("AwayClub").
		Order("scheduled_at, id").
		Offset(offset).Limit(limit).
		Find(&matches).Error
	if err != nil {
		return nil, 0, err
	}
	return matches, total, nil
}

func (r *matchRepository) Update(ctx context.Context, m *models.Match) error {
	return r.db.WithContext(ctx).Omit("Event", "HomeClub", "AwayClub", "Result").Save(m).Error
}

func (r *matchRepository) Clashing(ctx context.Context, location string, at time.Time, excludeID uint) (int64, error) {
	var n int64
	query := r.db.WithContext(ctx).Model(&models.Match{}).
		Where("location = ? AND status <> ?", location, models.MatchCancelled).
		Where("scheduled_at BETWEEN ? AND ?", at.Add(-Window), at.Add(Window))
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	err := query.Count(&n).Error
	return n, err
}
