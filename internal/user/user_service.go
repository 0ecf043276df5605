package user

import (
	"context"
	"fmt"
	"strings"

	"github.com/DhavalSuthar-24/clubhub/internal/apperr"
	"github.com/DhavalSuthar-24/clubhub/internal/common"
	"github.com/DhavalSuthar-24/clubhub/internal/models"
	"github.com/DhavalSuthar-24/clubhub/internal/refcheck"
	"github.com/DhavalSuthar-24/clubhub/pkg/logging"
	hash "github.com/DhavalSuthar-24/clubhub/utils"
)

type Service struct {
	repo UserRepository
	refs *refcheck.Checker
}

func NewService(repo UserRepository, refs *refcheck.Checker) *Service {
	return &Service{repo: repo, refs: refs}
}

func (s *Service) Create(ctx context.Context, req CreateUserRequest) (*models.User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	username := strings.TrimSpace(req.Username)
	if err := s.ensureFree(ctx, 0, email, username); err != nil {
		return nil, err
	}
	if _, err := s.refs.Role(ctx, req.RoleID); err != nil {
		return nil, err
	}
	hashed, err := hash.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	u := &models.User{Username: username, Email: email, Password: hashed, RoleID: req.RoleID}
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, apperr.FromDB(err, "user with email %s or username %s already exists", email, username)
	}
	return s.Get(ctx, u.ID)
}

// ensureFree rejects an email or username held by a user other than selfID.
func (s *Service) ensureFree(ctx context.Context, selfID uint, email, username string) error {
	if email != "" {
		other, err := s.repo.GetByEmail(ctx, email)
		if err != nil {
			return err
		}
		if other != nil && other.ID != selfID {
			return apperr.Conflict("user with email %s already exists", email)
		}
	}
	if username != "" {
		other, err := s.repo.GetByUsername(ctx, username)
		if err != nil {
			return err
		}
		if other != nil && other.ID != selfID {
			return apperr.Conflict("user with username %s already exists", username)
		}
	}
	return nil
}

func (s *Service) Get(ctx context.Context, id uint) (*models.User, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, apperr.NotFound("user", id)
	}
	return u, nil
}

func (s *Service) List(ctx context.Context, page, limit int) ([]models.User, int64, error) {
	return s.repo.List(ctx, page, limit, nil)
}

func (s *Service) ListByRole(ctx context.Context, roleID uint, page, limit int) ([]models.User, int64, error) {
	if _, err := s.refs.Role(ctx, roleID); err != nil {
		return nil, 0, err
	}
	return s.repo.List(ctx, page, limit, &roleID)
}

func (s *Service) Update(ctx context.Context, id uint, req UpdateUserRequest) (*models.User, error) {
	u, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	var email, username string
	if req.Email != nil {
		email = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	if req.Username != nil {
		username = strings.TrimSpace(*req.Username)
	}
	if err := s.ensureFree(ctx, id, email, username); err != nil {
		return nil, err
	}
	if req.RoleID != nil {
		if _, err := s.refs.Role(ctx, *req.RoleID); err != nil {
			return nil, err
		}
		u.RoleID = *req.RoleID
	}
	if email != "" {
		u.Email = email
	}
	if username != "" {
		u.Username = username
	}
	if err := s.repo.Update(ctx, u); err != nil {
		return nil, apperr.FromDB(err, "email or username already in use")
	}
	return s.Get(ctx, id)
}

// ChangePassword lets users change their own password; administrators may
// change anyone's. The current password is always required.
func (s *Service) ChangePassword(ctx context.Context, caller *common.Principal, id uint, req ChangePasswordRequest) error {
	if caller.UserID != id && caller.Role != models.RoleAdmin {
		return apperr.Forbidden("only the account owner or an administrator may change this password")
	}
	u, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if !hash.CheckPassword(u.Password, req.CurrentPassword) {
		return apperr.Unauthorized("current password is incorrect")
	}
	hashed, err := hash.HashPassword(req.NewPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	u.Password = hashed
	return s.repo.Update(ctx, u)
}

// Delete removes a user that no longer takes part in any relationship.
func (s *Service) Delete(ctx context.Context, id uint) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	rel, err := s.repo.Relation(ctx, id)
	if err != nil {
		return err
	}
	if rel != "" {
		return apperr.Conflict("user %d cannot be deleted: %s", id, rel)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	logging.FromContext(ctx).Info("user deleted", "user_id", id)
	return nil
}
