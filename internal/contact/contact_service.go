package contact

import (
	"context"

	"github.com/DhavalSuthar-24/clubhub/internal/apperr"
	"github.com/DhavalSuthar-24/clubhub/internal/models"
	"github.com/DhavalSuthar-24/clubhub/internal/refcheck"
)

type Service struct {
	repo ContactRepository
	refs *refcheck.Checker
}

func NewService(repo ContactRepository, refs *refcheck.Checker) *Service {
	return &Service{repo: repo, refs: refs}
}

func (s *Service) Create(ctx context.Context, req CreateContactRequest) (*models.Contact, error) {
	if _, err := s.refs.Athlete(ctx, req.AthleteID); err != nil {
		return nil, err
	}
	if req.IsEmergency {
		if err := s.ensureNoOtherEmergency(ctx, req.AthleteID, 0); err != nil {
			return nil, err
		}
	}
	c := &models.Contact{
		AthleteID:    req.AthleteID,
		FirstNames:   req.FirstNames,
		LastNames:    req.LastNames,
		Relationship: req.Relationship,
		Phone:        req.Phone,
		Email:        req.Email,
		Address:      req.Address,
		IsEmergency:  req.IsEmergency,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, apperr.FromDB(err, "athlete %d already has an emergency contact", req.AthleteID)
	}
	return c, nil
}

func (s *Service) ensureNoOtherEmergency(ctx context.Context, athleteID, selfID uint) error {
	current, err := s.repo.Emergency(ctx, athleteID)
	if err != nil {
		return err
	}
	if current != nil && current.ID != selfID {
		return apperr.Conflict("athlete %d already has an emergency contact", athleteID)
	}
	return nil
}

func (s *Service) Get(ctx context.Context, id uint) (*models.Contact, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, apperr.NotFound("contact", id)
	}
	return c, nil
}

func (s *Service) Update(ctx context.Context, id uint, req UpdateContactRequest) (*models.Contact, error) {
	c, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.IsEmergency != nil && *req.IsEmergency && !c.IsEmergency {
		if err := s.ensureNoOtherEmergency(ctx, c.AthleteID, c.ID); err != nil {
			return nil, err
		}
	}
	if req.FirstNames != nil {
		c.FirstNames = *req.FirstNames
	}
	if req.LastNames != nil {
		c.LastNames = *req.LastNames
	}
	if req.Relationship != nil {
		c.Relationship = *req.Relationship
	}
	if req.Phone != nil {
		c.Phone = *req.Phone
	}
	if req.Email != nil {
		c.Email = *req.Email
	}
	if req.Address != nil {
		c.Address = *req.Address
	}
	if req.IsEmergency != nil {
		c.IsEmergency = *req.IsEmergency
	}
	if err := s.repo.Update(ctx, c); err != nil {
		return nil, apperr.FromDB(err, "athlete %d already has an emergency contact", c.AthleteID)
	}
	return c, nil
}

func (s *Service) Delete(ctx context.Context, id uint) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *Service) ForAthlete(ctx context.Context, athleteID uint) ([]models.Contact, error) {
	if _, err := s.refs.Athlete(ctx, athleteID); err != nil {
		return nil, err
	}
	return s.repo.ForAthlete(ctx, athleteID)
}

func (s *Service) EmergencyFor(ctx context.Context, athleteID uint) (*models.Contact, error) {
	if _, err := s.refs.Athlete(ctx, athleteID); err != nil {
		return nil, err
	}
	c, err := s.repo.Emergency(ctx, athleteID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, apperr.NotFoundf("athlete %d has no emergency contact", athleteID)
	}
	return c, nil
}
