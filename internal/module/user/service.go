package user

import (
	"context"
	"net/mail"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/ptduy/tourbase/internal/domain"
)

const minPasswordLength = 8

// userService implements domain.UserService.
type userService struct {
	repo domain.UserRepository
}

// NewUserService creates a new UserService with the given repository.
func NewUserService(repo domain.UserRepository) domain.UserService {
	return &userService{repo: repo}
}

// CreateAdmin validates input, hashes the password, and persists a new
// admin account. Admin accounts carry no username.
func (s *userService) CreateAdmin(ctx context.Context, email, password, roleID string) (*domain.User, error) {
	email = strings.TrimSpace(email)
	roleID = strings.TrimSpace(roleID)

	if email == "" {
		return nil, domain.NewAppError(domain.CodeValidation, "email is required", nil)
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, domain.NewAppError(domain.CodeValidation, "email must be a valid email address", nil)
	}
	if len(password) < minPasswordLength {
		return nil, domain.NewAppError(domain.CodeValidation, "password must be at least 8 characters", nil)
	}
	if roleID == "" {
		return nil, domain.NewAppError(domain.CodeValidation, "role is required", nil)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, domain.NewAppError(domain.CodeInternal, "failed to hash password", err)
	}

	admin := &domain.User{
		Email:    email,
		Password: string(hash),
		RoleID:   roleID,
	}
	if err := s.repo.Create(ctx, admin); err != nil {
		return nil, err
	}
	return admin, nil
}

// GetUser retrieves an active user by ID. Soft-deleted users count as absent.
func (s *userService) GetUser(ctx context.Context, id string) (*domain.User, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !u.Status {
		return nil, domain.ErrNotFound
	}
	return u, nil
}

// ListUsers returns a paginated list of active users.
func (s *userService) ListUsers(ctx context.Context, spec domain.SpecParams) (*domain.Pagination[domain.User], error) {
	return s.repo.List(ctx, spec)
}

// ListDeletedUsers returns a paginated list of soft-deleted users.
func (s *userService) ListDeletedUsers(ctx context.Context, spec domain.SpecParams) (*domain.Pagination[domain.User], error) {
	return s.repo.ListDeleted(ctx, spec)
}

// DeleteUser soft-deletes a user. A user that is absent or already
// deleted reports not found.
func (s *userService) DeleteUser(ctx context.Context, id string) error {
	modified, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !modified {
		return domain.ErrNotFound
	}
	return nil
}

// RestoreUser re-activates a soft-deleted user.
func (s *userService) RestoreUser(ctx context.Context, id string) error {
	modified, err := s.repo.Restore(ctx, id)
	if err != nil {
		return err
	}
	if !modified {
		return domain.ErrNotFound
	}
	return nil
}
