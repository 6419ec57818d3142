package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"shopkart/internal/model"
	"shopkart/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

// bcryptCost is deliberately above the library default.
const bcryptCost = 12

// userService implements UserService.
type userService struct {
	userRepo repository.UserRepository
	logger   zerolog.Logger
}

// NewUserService creates a new user service.
func NewUserService(userRepo repository.UserRepository, logger zerolog.Logger) UserService {
	return &userService{
		userRepo: userRepo,
		logger:   logger.With().Str("service", "user").Logger(),
	}
}

// Register creates a new account with the user role and an active status.
func (s *userService) Register(ctx context.Context, req *model.RegisterRequest) (*model.User, error) {
	if req == nil || req.Name == "" || req.Email == "" || req.Password == "" {
		return nil, model.ErrMissingField
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	existing, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return nil, model.ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := &model.User{
		ID:           uuid.New(),
		Name:         req.Name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         model.RoleUser,
		Status:       model.UserStatusActive,
		LastLogin:    now,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info().Str("user_id", user.ID.String()).Msg("user registered")

	return user, nil
}

// Authenticate verifies credentials. Unknown email and wrong password
// both surface the same error so callers cannot probe for accounts.
func (s *userService) Authenticate(ctx context.Context, email, password string) (*model.User, error) {
	if email == "" || password == "" {
		return nil, model.ErrMissingField
	}

	user, err := s.userRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil {
		return nil, model.ErrInvalidCreds
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		s.logger.Warn().Str("user_id", user.ID.String()).Msg("failed login attempt")
		return nil, model.ErrInvalidCreds
	}

	now := time.Now()
	if err := s.userRepo.UpdateLastLogin(ctx, user.ID, now); err != nil {
		s.logger.Warn().Err(err).Str("user_id", user.ID.String()).Msg("failed to record last login")
	} else {
		user.LastLogin = now
	}

	return user, nil
}

// AuthenticateAdmin verifies credentials and requires the admin role.
// A valid non-admin login is reported as invalid credentials, not as a
// permissions error.
func (s *userService) AuthenticateAdmin(ctx context.Context, email, password string) (*model.User, error) {
	user, err := s.Authenticate(ctx, email, password)
	if err != nil {
		return nil, err
	}
	if user.Role != model.RoleAdmin {
		s.logger.Warn().Str("user_id", user.ID.String()).Msg("non-admin attempted admin login")
		return nil, model.ErrInvalidCreds
	}
	return user, nil
}

// UpdateProfile updates name and/or password for the account with the
// given email. Empty fields are left unchanged.
func (s *userService) UpdateProfile(ctx context.Context, req *model.UpdateProfileRequest) (*model.User, error) {
	if req == nil || req.Email == "" {
		return nil, model.ErrMissingField
	}

	user, err := s.userRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil {
		return nil, model.ErrUserNotFound
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.PasswordHash = string(hash)
	}
	user.UpdatedAt = time.Now()

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", user.ID.String()).Msg("profile updated")

	return user, nil
}

// GetByID retrieves a single user by ID.
func (s *userService) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, model.ErrUserNotFound
	}
	return user, nil
}

// ListUsers retrieves all users with pagination.
func (s *userService) ListUsers(ctx context.Context, limit, offset int) ([]model.User, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return s.userRepo.GetAll(ctx, limit, offset)
}

// UpdateUser applies an admin edit of a user's role and status.
func (s *userService) UpdateUser(ctx context.Context, id uuid.UUID, role model.Role, status model.UserStatus) (*model.User, error) {
	if role != "" && !role.Valid() {
		return nil, model.ErrInvalidStatus
	}
	if status != "" && !status.Valid() {
		return nil, model.ErrInvalidStatus
	}

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, model.ErrUserNotFound
	}

	if role != "" {
		user.Role = role
	}
	if status != "" {
		user.Status = status
	}
	user.UpdatedAt = time.Now()

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("user_id", user.ID.String()).
		Str("role", string(user.Role)).
		Str("status", string(user.Status)).
		Msg("user updated")

	return user, nil
}

// DeleteUser hard-deletes a user account.
func (s *userService) DeleteUser(ctx context.Context, id uuid.UUID) error {
	if err := s.userRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("user_id", id.String()).Msg("user deleted")
	return nil
}
