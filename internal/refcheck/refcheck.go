// Package refcheck resolves referenced ids before a mutation and reports
// missing rows as NotFound naming the entity and id.
package refcheck

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/DhavalSuthar-24/clubhub/internal/apperr"
	"github.com/DhavalSuthar-24/clubhub/internal/models"
)

type Checker struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Checker {
	return &Checker{db: db}
}

// WithDB returns a checker bound to tx, for checks inside a transaction.
func (c *Checker) WithDB(tx *gorm.DB) *Checker {
	return &Checker{db: tx}
}

func find[T any](ctx context.Context, db *gorm.DB, id uint, label string) (*T, error) {
	var row T
	err := db.WithContext(ctx).First(&row, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound(label, id)
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (c *Checker) User(ctx context.Context, id uint) (*models.User, error) {
	return c.UserAs(ctx, id, "user")
}

// UserAs names the user by the role it plays, e.g. "referee".
func (c *Checker) UserAs(ctx context.Context, id uint, label string) (*models.User, error) {
	return find[models.User](ctx, c.db, id, label)
}

func (c *Checker) Role(ctx context.Context, id uint) (*models.Role, error) {
	return find[models.Role](ctx, c.db, id, "role")
}

func (c *Checker) Club(ctx context.Context, id uint) (*models.Club, error) {
	return c.ClubAs(ctx, id, "club")
}

func (c *Checker) ClubAs(ctx context.Context, id uint, label string) (*models.Club, error) {
	return find[models.Club](ctx, c.db, id, label)
}

// ActiveClub is Club for references that need a live club: an inactive
// club is a Conflict.
func (c *Checker) ActiveClub(ctx context.Context, id uint) (*models.Club, error) {
	return c.ActiveClubAs(ctx, id, "club")
}

func (c *Checker) ActiveClubAs(ctx context.Context, id uint, label string) (*models.Club, error) {
	club, err := c.ClubAs(ctx, id, label)
	if err != nil {
		return nil, err
	}
	if club.Status != models.StatusActive {
		return nil, apperr.Conflict("%s %d is inactive", label, id)
	}
	return club, nil
}

func (c *Checker) Athlete(ctx context.Context, id uint) (*models.Athlete, error) {
	return find[models.Athlete](ctx, c.db, id, "athlete")
}

func (c *Checker) Event(ctx context.Context, id uint) (*models.Event, error) {
	return find[models.Event](ctx, c.db, id, "event")
}

func (c *Checker) Match(ctx context.Context, id uint) (*models.Match, error) {
	return find[models.Match](ctx, c.db, id, "match")
}

// ActiveMembership returns the active membership of the pair, or nil.
func (c *Checker) ActiveMembership(ctx context.Context, clubID, athleteID uint) (*models.ClubAthlete, error) {
	var ca models.ClubAthlete
	err := c.db.WithContext(ctx).
		Where("club_id = ? AND athlete_id = ? AND status = ?", clubID, athleteID, models.StatusActive).
		First(&ca).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ca, nil
}

// ApprovedEnrollment reports whether the club holds an approved enrollment in the event.
func (c *Checker) ApprovedEnrollment(ctx context.Context, eventID, clubID uint) (bool, error) {
	var count int64
	err := c.db.WithContext(ctx).Model(&models.Enrollment{}).
		Where("event_id = ? AND club_id = ? AND status = ?", eventID, clubID, models.ApprovalApproved).
		Count(&count).Error
	return count > 0, err
}
