package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/baharkarakas/groupledger/internal/auth"
	"github.com/baharkarakas/groupledger/internal/metrics"
	"github.com/baharkarakas/groupledger/internal/models"
	repo "github.com/baharkarakas/groupledger/internal/repository"
	"github.com/baharkarakas/groupledger/internal/worker"
)

const MinPasswordLength = 6

type AuthService struct {
	groups repo.Groups
	users  repo.Users
	tm     *auth.TokenManager
	audit  auditor
}

func NewAuthService(repos repo.Repositories, tm *auth.TokenManager, wp *worker.Pool) *AuthService {
	return &AuthService{groups: repos.Groups, users: repos.Users, tm: tm, audit: auditor{logs: repos.AuditLogs, wp: wp}}
}

type RegisterInput struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	CompanyName string `json:"company_name"`
}

type ResetPasswordInput struct {
	Email         string `json:"email"`
	AdminEmail    string `json:"admin_email"`
	AdminPassword string `json:"admin_password"`
	NewPassword   string `json:"new_password"`
}

// AuthResult is what a client needs to start a session.
type AuthResult struct {
	User   models.User    `json:"user"`
	Group  models.Group   `json:"group"`
	Tokens auth.TokenPair `json:"tokens"`
}

func checkPassword(p string) error {
	if len(p) < MinPasswordLength {
		return invalid(fmt.Sprintf("password must be at least %d characters", MinPasswordLength))
	}
	if len(p) > auth.MaxPasswordBytes {
		return invalid(fmt.Sprintf("password must be at most %d bytes", auth.MaxPasswordBytes))
	}
	return nil
}

// Register creates a new group with the caller as its admin.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (AuthResult, error) {
	company := strings.TrimSpace(in.CompanyName)
	if company == "" {
		return AuthResult{}, invalid("company name is required")
	}
	if err := checkPassword(in.Password); err != nil {
		return AuthResult{}, err
	}
	admin := models.User{Name: in.Name, Email: in.Email, Role: models.RoleAdmin, GroupID: "pending"}
	if err := admin.Validate(); err != nil {
		return AuthResult{}, invalid(err.Error())
	}
	if _, err := s.users.GetByEmail(ctx, admin.Email); err == nil {
		return AuthResult{}, ErrEmailTaken
	} else if !errors.Is(err, repo.ErrNotFound) {
		return AuthResult{}, translate(err, "lookup user")
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return AuthResult{}, err
	}
	admin.PasswordHash = hash

	group, admin, err := s.groups.CreateWithAdmin(ctx, models.Group{Name: company}, admin)
	if err != nil {
		return AuthResult{}, translate(err, "register")
	}
	s.audit.record(Actor{UserID: admin.ID, GroupID: group.ID, Role: admin.Role}, "group", group.ID, "registered", nil)
	return s.session(admin, group)
}

func (s *AuthService) session(u models.User, g models.Group) (AuthResult, error) {
	tokens, err := s.tm.GeneratePair(u.ID, u.GroupID, string(u.Role))
	if err != nil {
		return AuthResult{}, fmt.Errorf("token generation: %w", err)
	}
	return AuthResult{User: u, Group: g, Tokens: tokens}, nil
}

// authenticate never reveals whether the email or the password was wrong.
func (s *AuthService) authenticate(ctx context.Context, email, password string) (models.User, error) {
	u, err := s.users.GetByEmail(ctx, models.NormalizeEmail(email))
	if errors.Is(err, repo.ErrNotFound) {
		metrics.AuthFailures.WithLabelValues("unknown_email").Inc()
		return models.User{}, ErrInvalidCredentials
	}
	if err != nil {
		return models.User{}, translate(err, "lookup user")
	}
	if !auth.PasswordMatches(u.PasswordHash, password) {
		metrics.AuthFailures.WithLabelValues("bad_password").Inc()
		return models.User{}, ErrInvalidCredentials
	}
	return u, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (AuthResult, error) {
	if strings.TrimSpace(email) == "" || password == "" {
		return AuthResult{}, invalid("email and password are required")
	}
	u, err := s.authenticate(ctx, email, password)
	if err != nil {
		return AuthResult{}, err
	}
	g, err := s.groups.GetByID(ctx, u.GroupID)
	if err != nil {
		return AuthResult{}, fmt.Errorf("load group %s: %w", u.GroupID, err)
	}
	return s.session(u, g)
}

// Refresh re-reads the user so role changes and removals take effect.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (auth.TokenPair, error) {
	claims, err := s.tm.ParseRefresh(refreshToken)
	if err != nil {
		metrics.AuthFailures.WithLabelValues("bad_refresh").Inc()
		return auth.TokenPair{}, ErrInvalidCredentials
	}
	u, err := s.users.GetByID(ctx, claims.UserID)
	if errors.Is(err, repo.ErrNotFound) {
		return auth.TokenPair{}, ErrInvalidCredentials
	}
	if err != nil {
		return auth.TokenPair{}, translate(err, "lookup user")
	}
	return s.tm.GeneratePair(u.ID, u.GroupID, string(u.Role))
}

// ResetPassword lets a group admin set a new password for a member of the same group.
func (s *AuthService) ResetPassword(ctx context.Context, in ResetPasswordInput) error {
	if err := checkPassword(in.NewPassword); err != nil {
		return err
	}
	admin, err := s.authenticate(ctx, in.AdminEmail, in.AdminPassword)
	if err != nil {
		return err
	}
	if !admin.IsAdmin() {
		return fmt.Errorf("only admins can reset passwords: %w", ErrForbidden)
	}
	target, err := s.users.GetByEmail(ctx, models.NormalizeEmail(in.Email))
	if err != nil {
		return translate(err, "user")
	}
	if target.GroupID != admin.GroupID {
		return fmt.Errorf("user belongs to another group: %w", ErrForbidden)
	}

	hash, err := auth.HashPassword(in.NewPassword)
	if err != nil {
		return err
	}
	target.PasswordHash = hash
	if _, err := s.users.Update(ctx, target); err != nil {
		return translate(err, "update user")
	}
	s.audit.record(Actor{UserID: admin.ID, GroupID: admin.GroupID, Role: admin.Role}, "user", target.ID, "password_reset", nil)
	return nil
}
