package statistic

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/DhavalSuthar-24/clubhub/internal/models"
)

type StatisticRepository interface {
	Create(ctx context.Context, s *models.MatchStatistic) error
	GetByID(ctx context.Context, id uint) (*models.MatchStatistic, error)
	Exists(ctx context.Context, matchID, athleteID uint) (bool, error)
	Update(ctx context.Context, s *models.MatchStatistic) error
	Delete(ctx context.Context, id uint) error
	ForMatch(ctx context.Context, matchID uint) ([]models.MatchStatistic, error)
	ForAthlete(ctx context.Context, athleteID uint) ([]models.MatchStatistic, error)
	Summarize(ctx context.Context, athleteID uint) (*Summary, error)
}

type statisticRepository struct {
	db *gorm.DB
}

func NewStatisticRepository(db *gorm.DB) StatisticRepository {
	return &statisticRepository{db: db}
}

func (r *statisticRepository) Create(ctx context.Context, s *models.MatchStatistic) error {
	return r.db.WithContext(ctx).Omit("Athlete").Create(s).Error
}

func (r *statisticRepository) GetByID(ctx context.Context, id uint) (*models.MatchStatistic, error) {
	var s models.MatchStatistic
	if err := r.db.WithContext(ctx).First(&s, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *statisticRepository) Exists(ctx context.Context, matchID, athleteID uint) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.MatchStatistic{}).
		Where("match_id = ? AND athlete_id = ?", matchID, athleteID).
		Count(&n).Error
	return n > 0, err
}

func (r *statisticRepository) Update(ctx context.Context, s *models.MatchStatistic) error {
	return r.db.WithContext(ctx).Omit("Athlete").Save(s).Error
}

func (r *statisticRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.MatchStatistic{}, id).Error
}

func (r *statisticRepository) ForMatch(ctx context.Context, matchID uint) ([]models.MatchStatistic, error) {
	var stats []models.MatchStatistic
	err := r.db.WithContext(ctx).Preload("Athlete").Where("match_id = ?", matchID).Order("id").Find(&stats).Error
	return stats, err
}

func (r *statisticRepository) ForAthlete(ctx context.Context, athleteID uint) ([]models.MatchStatistic, error) {
	var stats []models.MatchStatistic
	err := r.db.WithContext(ctx).Where("athlete_id = ?", athleteID).Order("match_id").Find(&stats).Error
	return stats, err
}

func (r *statisticRepository) Summarize(ctx context.Context, athleteID uint) (*Summary, error) {
	sum := Summary{AthleteID: athleteID}
	err := r.db.WithContext(ctx).Model(&models.MatchStatistic{}).
		Select(`COALESCE(SUM(serves), 0) AS serves,
			COALESCE(SUM(attacks), 0) AS attacks,
			COALESCE(SUM(blocks), 0) AS blocks,
			COALESCE(SUM(defenses), 0) AS defenses,
			COALESCE(SUM(points), 0) AS points,
			COALESCE(SUM(errors), 0) AS errors,
			COUNT(*) AS matches_played`).
		Where("athlete_id = ?", athleteID).
		Scan(&sum).Error
	if err != nil {
		return nil, err
	}
	sum.AthleteID = athleteID
	return &sum, nil
}
