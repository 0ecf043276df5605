package athlete

import (
	"context"
	"strings"

	"github.com/DhavalSuthar-24/clubhub/internal/apperr"
	"github.com/DhavalSuthar-24/clubhub/internal/common"
	"github.com/DhavalSuthar-24/clubhub/internal/models"
	"github.com/DhavalSuthar-24/clubhub/pkg/logging"
	"github.com/DhavalSuthar-24/clubhub/pkg/storage"
)

type Service struct {
	repo  AthleteRepository
	store storage.ObjectStore
}

func NewService(repo AthleteRepository, store storage.ObjectStore) *Service {
	return &Service{repo: repo, store: store}
}

// Create stores the athlete and its files. When any upload fails nothing
// is persisted.
func (s *Service) Create(ctx context.Context, req CreateAthleteRequest, files map[string]*storage.File) (*models.Athlete, error) {
	birth, err := common.ParseDate("birth_date", req.BirthDate)
	if err != nil {
		return nil, err
	}
	document := strings.TrimSpace(req.DocumentNumber)
	if err := s.ensureDocumentFree(ctx, 0, document); err != nil {
		return nil, err
	}

	a := &models.Athlete{
		FirstName:      strings.TrimSpace(req.FirstName),
		MiddleName:     req.MiddleName,
		LastName:       strings.TrimSpace(req.LastName),
		SecondLastName: req.SecondLastName,
		BirthDate:      birth,
		Gender:         req.Gender,
		DocumentNumber: document,
		DocumentType:   req.DocumentType,
		BloodType:      req.BloodType,
		Phone:          req.Phone,
		Email:          strings.ToLower(req.Email),
		Address:        req.Address,
		Status:         models.StatusActive,
		Position:       req.Position,
		JerseyNumber:   req.JerseyNumber,
	}
	added, _, err := uploadAll(ctx, s.store, a, files)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, a); err != nil {
		storage.DeleteAsync(ctx, s.store, added...)
		return nil, apperr.FromDB(err, "athlete with document %s already exists", document)
	}
	logging.FromContext(ctx).Info("athlete created", "athlete_id", a.ID, "files", len(added))
	return a, nil
}

func (s *Service) ensureDocumentFree(ctx context.Context, selfID uint, document string) error {
	other, err := s.repo.GetByDocument(ctx, document)
	if err != nil {
		return err
	}
	if other != nil && other.ID != selfID {
		return apperr.Conflict("athlete with document %s already exists", document)
	}
	return nil
}

func (s *Service) Get(ctx context.Context, id uint) (*models.Athlete, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, apperr.NotFound("athlete", id)
	}
	return a, nil
}

func (s *Service) List(ctx context.Context, f Filter, page, limit int) ([]models.Athlete, int64, error) {
	if f.Status != "" && !models.RecordStatus(f.Status).Valid() {
		return nil, 0, apperr.Validation("status", "status must be one of: active inactive")
	}
	return s.repo.List(ctx, f, page, limit)
}

func (s *Service) Update(ctx context.Context, id uint, req UpdateAthleteRequest, files map[string]*storage.File) (*models.Athlete, error) {
	a, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.DocumentNumber != nil {
		document := strings.TrimSpace(*req.DocumentNumber)
		if err := s.ensureDocumentFree(ctx, id, document); err != nil {
			return nil, err
		}
		a.DocumentNumber = document
	}
	if req.BirthDate != nil {
		if a.BirthDate, err = common.ParseDate("birth_date", *req.BirthDate); err != nil {
			return nil, err
		}
	}
	applyUpdate(a, req)

	added, replaced, err := uploadAll(ctx, s.store, a, files)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, a); err != nil {
		storage.DeleteAsync(ctx, s.store, added...)
		return nil, apperr.FromDB(err, "athlete with document %s already exists", a.DocumentNumber)
	}
	storage.DeleteAsync(ctx, s.store, replaced...)
	return a, nil
}

func applyUpdate(a *models.Athlete, req UpdateAthleteRequest) {
	set := func(dst *string, v *string) {
		if v != nil {
			*dst = strings.TrimSpace(*v)
		}
	}
	set(&a.FirstName, req.FirstName)
	set(&a.MiddleName, req.MiddleName)
	set(&a.LastName, req.LastName)
	set(&a.SecondLastName, req.SecondLastName)
	set(&a.Gender, req.Gender)
	set(&a.DocumentType, req.DocumentType)
	set(&a.BloodType, req.BloodType)
	set(&a.Phone, req.Phone)
	set(&a.Address, req.Address)
	set(&a.Position, req.Position)
	if req.Email != nil {
		a.Email = strings.ToLower(*req.Email)
	}
	if req.Status != nil {
		a.Status = models.RecordStatus(*req.Status)
	}
	if req.JerseyNumber != nil {
		a.JerseyNumber = req.JerseyNumber
	}
}

// Delete deactivates the athlete.
func (s *Service) Delete(ctx context.Context, id uint) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.repo.SetStatus(ctx, id, models.StatusInactive); err != nil {
		return err
	}
	logging.FromContext(ctx).Info("athlete deactivated", "athlete_id", id)
	return nil
}

func (s *Service) Clubs(ctx context.Context, id uint) ([]models.ClubAthlete, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}
	return s.repo.ActiveMemberships(ctx, id)
}

func (s *Service) Transfers(ctx context.Context, id uint) ([]models.Transfer, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}
	return s.repo.Transfers(ctx, id)
}
