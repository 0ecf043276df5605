package role

import (
	"context"
	"strings"

	"github.com/DhavalSuthar-24/clubhub/internal/apperr"
	"github.com/DhavalSuthar-24/clubhub/internal/models"
)

type Service struct {
	repo RoleRepository
}

func NewService(repo RoleRepository) *Service {
	return &Service{repo: repo}
}

// permissions resolves every id or reports the first missing one.
func (s *Service) permissions(ctx context.Context, ids []uint) ([]models.Permission, error) {
	found, err := s.repo.FindPermissions(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[uint]models.Permission, len(found))
	for _, p := range found {
		byID[p.ID] = p
	}
	out := make([]models.Permission, 0, len(ids))
	seen := make(map[uint]bool, len(ids))
	for _, id := range ids {
		p, ok := byID[id]
		if !ok {
			return nil, apperr.NotFound("permission", id)
		}
		if !seen[id] {
			seen[id] = true
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *Service) ensureFree(ctx context.Context, selfID uint, name string) error {
	other, err := s.repo.GetByName(ctx, name)
	if err != nil {
		return err
	}
	if other != nil && other.ID != selfID {
		return apperr.Conflict("role %s already exists", name)
	}
	return nil
}

func (s *Service) Create(ctx context.Context, req RoleRequest) (*models.Role, error) {
	name := strings.ToUpper(strings.TrimSpace(req.Name))
	if err := s.ensureFree(ctx, 0, name); err != nil {
		return nil, err
	}
	perms, err := s.permissions(ctx, req.PermissionIDs)
	if err != nil {
		return nil, err
	}
	r := &models.Role{Name: name, Permissions: perms}
	if err := s.repo.Create(ctx, r); err != nil {
		return nil, apperr.FromDB(err, "role %s already exists", name)
	}
	return s.Get(ctx, r.ID)
}

func (s *Service) Get(ctx context.Context, id uint) (*models.Role, error) {
	r, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, apperr.NotFound("role", id)
	}
	return r, nil
}

func (s *Service) List(ctx context.Context) ([]models.Role, error) {
	return s.repo.List(ctx)
}

func (s *Service) Update(ctx context.Context, id uint, req UpdateRoleRequest) (*models.Role, error) {
	r, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		name := strings.ToUpper(strings.TrimSpace(*req.Name))
		if err := s.ensureFree(ctx, id, name); err != nil {
			return nil, err
		}
		r.Name = name
	}
	if req.PermissionIDs != nil {
		perms, err := s.permissions(ctx, *req.PermissionIDs)
		if err != nil {
			return nil, err
		}
		r.Permissions = perms
	}
	if err := s.repo.Save(ctx, r); err != nil {
		return nil, apperr.FromDB(err, "role %s already exists", r.Name)
	}
	return s.Get(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id uint) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	n, err := s.repo.CountUsers(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return apperr.Conflict("role %d is still held by %d user(s)", id, n)
	}
	return s.repo.Delete(ctx, id)
}
