package result

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/DhavalSuthar-24/clubhub/internal/models"
)

type ResultRepository interface {
	Create(ctx context.Context, r *models.Result) error
	GetByID(ctx context.Context, id uint) (*models.Result, error)
	ExistsForMatch(ctx context.Context, matchID uint) (bool, error)
	List(ctx context.Context, f Filter, page, limit int) ([]models.Result, int64, error)
	Update(ctx context.Context, r *models.Result) error
	Delete(ctx context.Context, id uint) error
}

type resultRepository struct {
	db *gorm.DB
}

func NewResultRepository(db *gorm.DB) ResultRepository {
	return &resultRepository{db: db}
}

func (r *resultRepository) Create(ctx context.Context, res *models.Result) error {
	return r.db.WithContext(ctx).Create(res).Error
}

func (r *resultRepository) GetByID(ctx context.Context, id uint) (*models.Result, error) {
	var res models.Result
	if err := r.db.WithContext(ctx).First(&res, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &res, nil
}

func (r *resultRepository) ExistsForMatch(ctx context.Context, matchID uint) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.Result{}).Where("match_id = ?", matchID).Count(&n).Error
	return n > 0, err
}

func (r *resultRepository) List(ctx context.Context, f Filter, page, limit int) ([]models.Result, int64, error) {
	var results []models.Result
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Result{})
	if f.MatchID != nil {
		query = query.Where("match_id = ?", *f.MatchID)
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	offset := (page - 1) * limit
	if err := query.Order("id DESC").Offset(offset).Limit(limit).Find(&results).Error; err != nil {
		return nil, 0, err
	}
	return results, total, nil
}

func (r *resultRepository) Update(ctx context.Context, res *models.Result) error {
	return r.db.WithContext(ctx).Save(res).Error
}

func (r *resultRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Result{}, id).Error
}
