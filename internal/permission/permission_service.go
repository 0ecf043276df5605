package permission

import (
	"context"
	"strings"

	"github.com/DhavalSuthar-24/clubhub/internal/apperr"
	"github.com/DhavalSuthar-24/clubhub/internal/models"
)

type Service struct {
	repo PermissionRepository
}

func NewService(repo PermissionRepository) *Service {
	return &Service{repo: repo}
}

func normalize(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}

func (s *Service) ensureFree(ctx context.Context, selfID uint, name string) error {
	other, err := s.repo.GetByName(ctx, name)
	if err != nil {
		return err
	}
	if other != nil && other.ID != selfID {
		return apperr.Conflict("permission %s already exists", name)
	}
	return nil
}

func (s *Service) Create(ctx context.Context, req PermissionRequest) (*models.Permission, error) {
	name := normalize(req.Name)
	if err := s.ensureFree(ctx, 0, name); err != nil {
		return nil, err
	}
	p := &models.Permission{Name: name}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, apperr.FromDB(err, "permission %s already exists", name)
	}
	return p, nil
}

func (s *Service) Get(ctx context.Context, id uint) (*models.Permission, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperr.NotFound("permission", id)
	}
	return p, nil
}

func (s *Service) List(ctx context.Context) ([]models.Permission, error) {
	return s.repo.List(ctx)
}

func (s *Service) Update(ctx context.Context, id uint, req PermissionRequest) (*models.Permission, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	name := normalize(req.Name)
	if err := s.ensureFree(ctx, id, name); err != nil {
		return nil, err
	}
	p.Name = name
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, apperr.FromDB(err, "permission %s already exists", name)
	}
	return p, nil
}

func (s *Service) Delete(ctx context.Context, id uint) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	n, err := s.repo.CountRoles(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return apperr.Conflict("permission %d is still granted to %d role(s)", id, n)
	}
	return s.repo.Delete(ctx, id)
}
