package club

import (
	"context"
	"strings"

	"github.com/DhavalSuthar-24/clubhub/internal/apperr"
	"github.com/DhavalSuthar-24/clubhub/internal/common"
	"github.com/DhavalSuthar-24/clubhub/internal/models"
	"github.com/DhavalSuthar-24/clubhub/internal/refcheck"
	"github.com/DhavalSuthar-24/clubhub/pkg/clock"
	"github.com/DhavalSuthar-24/clubhub/pkg/logging"
	"github.com/DhavalSuthar-24/clubhub/pkg/storage"
)

const logoFolder = "clubs"

type Service struct {
	repo  ClubRepository
	refs  *refcheck.Checker
	clock clock.Clock
	store storage.ObjectStore
}

func NewService(repo ClubRepository, refs *refcheck.Checker, clk clock.Clock, store storage.ObjectStore) *Service {
	return &Service{repo: repo, refs: refs, clock: clk, store: store}
}

func (s *Service) Create(ctx context.Context, req CreateClubRequest, logo *storage.File) (*models.Club, error) {
	founded, err := common.ParseDate("founded_at", req.FoundedAt)
	if err != nil {
		return nil, err
	}
	name := strings.TrimSpace(req.Name)
	if err := s.ensureNameFree(ctx, 0, name); err != nil {
		return nil, err
	}
	if _, err := s.refs.UserAs(ctx, req.ResponsibleID, "responsible user"); err != nil {
		return nil, err
	}

	club := &models.Club{
		Name:          name,
		FoundedAt:     founded,
		Branch:        req.Branch,
		Category:      req.Category,
		Address:       req.Address,
		Phone:         req.Phone,
		Email:         strings.ToLower(req.Email),
		Status:        models.StatusActive,
		ResponsibleID: req.ResponsibleID,
	}
	if logo != nil {
		if club.Logo, err = storage.Put(ctx, s.store, logo, logoFolder); err != nil {
			return nil, err
		}
	}
	if err := s.repo.Create(ctx, club); err != nil {
		storage.DeleteAsync(ctx, s.store, club.Logo)
		return nil, apperr.FromDB(err, "an active club named %s already exists", name)
	}
	logging.FromContext(ctx).Info("club created", "club_id", club.ID, "name", club.Name)
	return club, nil
}

// ensureNameFree rejects a name held by an active club other than selfID.
func (s *Service) ensureNameFree(ctx context.Context, selfID uint, name string) error {
	other, err := s.repo.ActiveByName(ctx, name)
	if err != nil {
		return err
	}
	if other != nil && other.ID != selfID {
		return apperr.Conflict("an active club named %s already exists", name)
	}
	return nil
}

func (s *Service) Get(ctx context.Context, id uint) (*models.Club, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, apperr.NotFound("club", id)
	}
	return c, nil
}

func (s *Service) List(ctx context.Context, f Filter, page, limit int) ([]models.Club, int64, error) {
	return s.repo.List(ctx, f, page, limit)
}

func (s *Service) Update(ctx context.Context, id uint, req UpdateClubRequest, logo *storage.File) (*models.Club, error) {
	club, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if club.Status == models.StatusActive {
			if err := s.ensureNameFree(ctx, id, name); err != nil {
				return nil, err
			}
		}
		club.Name = name
	}
	if req.FoundedAt != nil {
		if club.FoundedAt, err = common.ParseDate("founded_at", *req.FoundedAt); err != nil {
			return nil, err
		}
	}
	if req.ResponsibleID != nil {
		if _, err := s.refs.UserAs(ctx, *req.ResponsibleID, "responsible user"); err != nil {
			return nil, err
		}
		club.ResponsibleID = *req.ResponsibleID
	}
	if req.Branch != nil {
		club.Branch = *req.Branch
	}
	if req.Category != nil {
		club.Category = *req.Category
	}
	if req.Address != nil {
		club.Address = *req.Address
	}
	if req.Phone != nil {
		club.Phone = *req.Phone
	}
	if req.Email != nil {
		club.Email = strings.ToLower(*req.Email)
	}

	oldLogo := club.Logo
	if logo != nil {
		if club.Logo, err = storage.Put(ctx, s.store, logo, logoFolder); err != nil {
			return nil, err
		}
	}
	if err := s.repo.Update(ctx, club); err != nil {
		if club.Logo != oldLogo {
			storage.DeleteAsync(ctx, s.store, club.Logo)
		}
		return nil, apperr.FromDB(err, "an active club named %s already exists", club.Name)
	}
	if club.Logo != oldLogo {
		storage.DeleteAsync(ctx, s.store, oldLogo)
	}
	return club, nil
}

// Delete deactivates the club. Its rows stay for history.
func (s *Service) Delete(ctx context.Context, id uint) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.repo.SetStatus(ctx, id, models.StatusInactive); err != nil {
		return err
	}
	logging.FromContext(ctx).Info("club deactivated", "club_id", id)
	return nil
}

func (s *Service) AssignAthlete(ctx context.Context, clubID uint, req AssignAthleteRequest) (*models.ClubAthlete, error) {
	if _, err := s.refs.ActiveClub(ctx, clubID); err != nil {
		return nil, err
	}
	if _, err := s.refs.Athlete(ctx, req.AthleteID); err != nil {
		return nil, err
	}
	existing, err := s.refs.ActiveMembership(ctx, clubID, req.AthleteID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.Conflict("athlete %d is already an active member of club %d", req.AthleteID, clubID)
	}

	joined := s.clock.Now()
	if req.JoinedAt != nil {
		if joined, err = common.ParseDate("joined_at", *req.JoinedAt); err != nil {
			return nil, err
		}
	}
	ca := &models.ClubAthlete{ClubID: clubID, AthleteID: req.AthleteID, JoinedAt: joined, Status: models.StatusActive}
	if err := s.repo.CreateMembership(ctx, ca); err != nil {
		return nil, apperr.FromDB(err, "athlete %d is already an active member of club %d", req.AthleteID, clubID)
	}
	logging.FromContext(ctx).Info("athlete assigned to club", "club_id", clubID, "athlete_id", req.AthleteID)
	return ca, nil
}

func (s *Service) Athletes(ctx context.Context, clubID uint) ([]models.ClubAthlete, error) {
	if _, err := s.Get(ctx, clubID); err != nil {
		return nil, err
	}
	return s.repo.ActiveMembers(ctx, clubID)
}

func (s *Service) Transfers(ctx context.Context, clubID uint) ([]models.Transfer, error) {
	if _, err := s.Get(ctx, clubID); err != nil {
		return nil, err
	}
	return s.repo.Transfers(ctx, clubID)
}

func (s *Service) Matches(ctx context.Context, clubID uint) ([]models.Match, error) {
	if _, err := s.Get(ctx, clubID); err != nil {
		return nil, err
	}
	return s.repo.Matches(ctx, clubID)
}
