package transfer

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/DhavalSuthar-24/clubhub/internal/models"
	"github.com/DhavalSuthar-24/clubhub/internal/refcheck"
)

type TransferRepository interface {
	Create(ctx context.Context, t *models.Transfer) error
	GetByID(ctx context.Context, id uint) (*models.Transfer, error)
	// Lock reads the transfer for update inside a transaction.
	Lock(ctx context.Context, id uint) (*models.Transfer, error)
	List(ctx context.Context, status string, page, limit int) ([]models.Transfer, int64, error)
	Update(ctx context.Context, t *models.Transfer) error
	HasPending(ctx context.Context, athleteID uint) (bool, error)

	DeactivateMembership(ctx context.Context, clubID, athleteID uint) (int64, error)
	CreateMembership(ctx context.Context, ca *models.ClubAthlete) error

	// Refs resolves references through the same connection or transaction.
	Refs() *refcheck.Checker

	// Transaction runs fn against a repository bound to one transaction.
	Transaction(ctx context.Context, fn func(repo TransferRepository) error) error
}

type transferRepository struct {
	db *gorm.DB
}

func NewTransferRepository(db *gorm.DB) TransferRepository {
	return &transferRepository{db: db}
}

var omitRelations = []string{"Athlete", "FromClub", "ToClub"}

func (r *transferRepository) Create(ctx context.Context, t *models.Transfer) error {
	return r.db.WithContext(ctx).Omit(omitRelations...).Create(t).Error
}

func (r *transferRepository) find(q *gorm.DB, id uint) (*models.Transfer, error) {
	var t models.Transfer
	if err := q.First(&t, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

func (r *transferRepository) GetByID(ctx context.Context, id uint) (*models.Transfer, error) {
	return r.find(r.db.WithContext(ctx).Preload("Athlete").Preload("FromClub").Preload("ToClub"), id)
}

func (r *transferRepository) Lock(ctx context.Context, id uint) (*models.Transfer, error) {
	return r.find(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (r *transferRepository) List(ctx context.Context, status string, page, limit int) ([]models.Transfer, int64, error) {
	var transfers []models.Transfer
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Transfer{})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	offset := (page - 1) * limit
	err := query.Preload("Athlete").
		Order("transfer_date DESC, id DESC").
		Offset(offset).Limit(limit).
		Find(&transfers).Error
	if err != nil {
		return nil, 0, err
	}
	return transfers, total, nil
}

func (r *transferRepository) Update(ctx context.Context, t *models.Transfer) error {
	return r.db.WithContext(ctx).Omit(omitRelations...).Save(t).Error
}

func (r *transferRepository) HasPending(ctx context.Context, athleteID uint) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.Transfer{}).
		Where("athlete_id = ? AND status = ?", athleteID, models.ApprovalPending).
		Count(&n).Error
	return n > 0, err
}

func (r *transferRepository) DeactivateMembership(ctx context.Context, clubID, athleteID uint) (int64, error) {
	res := r.db.WithContext(ctx).Model(&models.ClubAthlete{}).
		Where("club_id = ? AND athlete_id = ? AND status = ?", clubID, athleteID, models.StatusActive).
		Update("status", models.StatusInactive)
	return res.RowsAffected, res.Error
}

func (r *transferRepository) CreateMembership(ctx context.Context, ca *models.ClubAthlete) error {
	return r.db.WithContext(ctx).Omit("Club", "Athlete").Create(ca).Error
}

func (r *transferRepository) Refs() *refcheck.Checker {
	return refcheck.New(r.db)
}

func (r *transferRepository) Transaction(ctx context.Context, fn func(repo TransferRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&transferRepository{db: tx})
	})
}
