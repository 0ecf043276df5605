package auth

import (
	"context"
	"crypto/subtle"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/DhavalSuthar-24/clubhub/internal/apperr"
	"github.com/DhavalSuthar-24/clubhub/internal/models"
	"github.com/DhavalSuthar-24/clubhub/pkg/clock"
	"github.com/DhavalSuthar-24/clubhub/pkg/logging"
	"github.com/DhavalSuthar-24/clubhub/pkg/token"
	"github.com/DhavalSuthar-24/clubhub/pkg/utils"
	hash "github.com/DhavalSuthar-24/clubhub/utils"
)

const (
	resetTokenBytes = 20
	resetTokenTTL   = time.Hour
)

type Options struct {
	JWTSecret   string
	TokenExpiry time.Duration
	FrontendURL string
}

type Service struct {
	repo     AuthRepository
	clock    clock.Clock
	notifier Notifier
	opts     Options
}

func NewService(repo AuthRepository, clk clock.Clock, notifier Notifier, opts Options) *Service {
	if opts.TokenExpiry <= 0 {
		opts.TokenExpiry = time.Hour
	}
	return &Service{repo: repo, clock: clk, notifier: notifier, opts: opts}
}

// Register creates an account. Without a role id the USER role is assigned.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*models.User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	username := strings.TrimSpace(req.Username)

	existing, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.Conflict("user with email %s already exists", email)
	}
	existing, err = s.repo.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.Conflict("user with username %s already exists", username)
	}

	var role *models.Role
	if req.RoleID != nil {
		role, err = s.repo.GetRoleByID(ctx, *req.RoleID)
		if err != nil {
			return nil, err
		}
		if role == nil {
			return nil, apperr.NotFound("role", *req.RoleID)
		}
	} else {
		role, err = s.repo.GetRoleByName(ctx, models.RoleUser)
		if err != nil {
			return nil, err
		}
		if role == nil {
			return nil, apperr.NotFoundf("default role %s is not seeded", models.RoleUser)
		}
	}

	hashed, err := hash.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	u := &models.User{Username: username, Email: email, Password: hashed, RoleID: role.ID}
	if err := s.repo.CreateUser(ctx, u); err != nil {
		return nil, apperr.FromDB(err, "user with email %s or username %s already exists", email, username)
	}
	u.Role = *role
	logging.FromContext(ctx).Info("user registered", "user_id", u.ID, "role", role.Name)
	return u, nil
}

// Authenticate checks the credentials and mints a session token.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*AuthResponse, error) {
	u, err := s.repo.GetUserByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, err
	}
	if u == nil || !hash.CheckPassword(u.Password, password) {
		return nil, apperr.Unauthorized("invalid credentials")
	}

	signed, err := token.GenerateJWT(token.Claims{
		UserID:      u.ID,
		Email:       u.Email,
		Username:    u.Username,
		Role:        token.RoleClaim{ID: u.Role.ID, Name: u.Role.Name},
		Permissions: u.Role.PermissionNames(),
	}, s.opts.JWTSecret, s.opts.TokenExpiry, s.clock.Now())
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}
	return &AuthResponse{AccessToken: signed, User: FilterUserRecord(u)}, nil
}

// RequestPasswordReset stores a fresh reset token and sends the link.
func (s *Service) RequestPasswordReset(ctx context.Context, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	u, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		return err
	}
	if u == nil {
		return apperr.NotFoundf("user with email %s not found", email)
	}

	tok, err := utils.GenerateRandomToken(resetTokenBytes)
	if err != nil {
		return err
	}
	expires := s.clock.Now().Add(resetTokenTTL)
	u.ResetToken = &tok
	u.ResetExpires = &expires
	if err := s.repo.UpdateUser(ctx, u); err != nil {
		return err
	}

	q := url.Values{}
	q.Set("token", tok)
	q.Set("email", email)
	link := s.opts.FrontendURL + "/reset-password?" + q.Encode()
	if err := s.notifier.SendPasswordReset(ctx, email, link, expires); err != nil {
		return fmt.Errorf("send reset link: %w", err)
	}
	return nil
}

// ResetPassword never fails on bad input; the outcome is in the result.
// The error is reserved for store failures.
func (s *Service) ResetPassword(ctx context.Context, req ResetPasswordRequest) (ResetResult, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || req.Token == "" || req.NewPassword == "" {
		return ResetResult{Message: "email, token and new_password are required"}, nil
	}
	u, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		return ResetResult{}, err
	}
	if u == nil {
		return ResetResult{Message: "user not found"}, nil
	}
	if u.ResetToken == nil || subtle.ConstantTimeCompare([]byte(*u.ResetToken), []byte(req.Token)) != 1 {
		return ResetResult{Message: "invalid token"}, nil
	}
	if u.ResetExpires != nil && s.clock.Now().After(*u.ResetExpires) {
		return ResetResult{Message: "token expired"}, nil
	}

	hashed, err := hash.HashPassword(req.NewPassword)
	if err != nil {
		return ResetResult{}, fmt.Errorf("hash password: %w", err)
	}
	u.Password = hashed
	u.ResetToken = nil
	u.ResetExpires = nil
	if err := s.repo.UpdateUser(ctx, u); err != nil {
		return ResetResult{}, err
	}
	return ResetResult{Success: true, Message: "password updated"}, nil
}

// Me returns the caller's account with role and permissions.
func (s *Service) Me(ctx context.Context, userID uint) (*models.User, error) {
	u, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, apperr.NotFound("user", userID)
	}
	return u, nil
}
