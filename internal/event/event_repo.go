package event

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/DhavalSuthar-24/clubhub/internal/models"
)

type EventRepository interface {
	Create(ctx context.Context, e *models.Event) error
	GetByID(ctx context.Context, id uint) (*models.Event, error)
	List(ctx context.Context, f Filter, page, limit int) ([]models.Event, int64, error)
	InProgress(ctx context.Context) ([]models.Event, error)
	Upcoming(ctx context.Context, from time.Time, n int) ([]models.Event, error)
	Update(ctx context.Context, e *models.Event) error
	// Overlapping counts non-cancelled events at location whose dates
	// intersect [start, end], ignoring excludeID.
	Overlapping(ctx context.Context, location string, start, end time.Time, excludeID uint) (int64, error)

	Enrollments(ctx context.Context, eventID uint, status string) ([]models.Enrollment, error)
	Matches(ctx context.Context, eventID uint) ([]models.Match, error)
	Results(ctx context.Context, eventID uint) ([]models.Result, error)
}

type eventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) Create(ctx context.Context, e *models.Event) error {
	return r.db.WithContext(ctx).Omit("Organizer").Create(e).Error
}

func (r *eventRepository) GetByID(ctx context.Context, id uint) (*models.Event, error) {
	var e models.Event
	if err := r.db.WithContext(ctx).First(&e, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &e, nil
}

func (r *eventRepository) List(ctx context.Context, f Filter, page, limit int) ([]models.Event, int64, error) {
	var events []models.Event
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Event{})
	if f.Type != "" {
		query = query.Where("type = ?", f.Type)
	}
	if f.Status != "" {
		query = query.Where("status = ?", f.Status)
	} else if !f.IncludeCancelled {
		query = query.Where("status <> ?", models.EventCancelled)
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	offset := (page - 1) * limit
	if err := query.Order("start_date DESC, id").Offset(offset).Limit(limit).Find(&events).Error; err != nil {
		return nil, 0, err
	}
	return events, total, nil
}

func (r *eventRepository) InProgress(ctx context.Context) ([]models.Event, error) {
	var events []models.Event
	err := r.db.WithContext(ctx).Where("status = ?", models.EventInProgress).Order("start_date").Find(&events).Error
	return events, err
}

func (r *eventRepository) Upcoming(ctx context.Context, from time.Time, n int) ([]models.Event, error) {
	var events []models.Event
	err := r.db.WithContext(ctx).
		Where("status = ? AND start_date >= ?", models.EventPlanned, from).
		Order("start_date").
		Limit(n).
		Find(&events).Error
	return events, err
}

func (r *eventRepository) Update(ctx context.Context, e *models.Event) error {
	return r.db.WithContext(ctx).Omit("Organizer").Save(e).Error
}

func (r *eventRepository) Overlapping(ctx context.Context, location string, start, end time.Time, excludeID uint) (int64, error) {
	var n int64
	query := r.db.WithContext(ctx).Model(&models.Event{}).
		Where("location = ? AND status <> ?", location, models.EventCancelled).
		Where("start_date <= ? AND end_date >= ?", end, start)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	err := query.Count(&n).Error
	return n, err
}

func (r *eventRepository) Enrollments(ctx context.Context, eventID uint, status string) ([]models.Enrollment, error) {
	var enrollments []models.Enrollment
	query := r.db.WithContext(ctx).Preload("Club").Where("event_id = ?", eventID)
	if status != "" {
		query = query.Where("status = ?", status)
	}
	err := query.Order("enrolled_at, id").Find(&enrollments).Error
	return enrollments, err
}

func (r *eventRepository) Matches(ctx context.Context, eventID uint) ([]models.Match, error) {
	var matches []models.Match
	err := r.db.WithContext(ctx).
		Preload("HomeClub").
		Preload("AwayClub").
		Preload("Result").
		Where("event_id = ?", eventID).
		Order("scheduled_at").
		Find(&matches).Error
	return matches, err
}

func (r *eventRepository) Results(ctx context.Context, eventID uint) ([]models.Result, error) {
	var results []models.Result
	err := r.db.WithContext(ctx).
		Joins("JOIN matches ON matches.id = results.match_id").
		Where("matches.event_id = ?", eventID).
		Order("matches.scheduled_at").
		Find(&results).Error
	return results, err
}
