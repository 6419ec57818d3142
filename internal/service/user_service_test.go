package service

import (
	"context"
	"testing"
	"time"

	"shopkart/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newUserServiceForTest() (*MockUserRepository, UserService) {
	mockUserRepo := new(MockUserRepository)
	svc := NewUserService(mockUserRepo, zerolog.Nop())
	return mockUserRepo, svc
}

// low cost keeps tests fast; the service itself uses a higher one
func hashForTest(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestUserService_Register_Success(t *testing.T) {
	ctx := context.Background()

	mockUserRepo, svc := newUserServiceForTest()
	mockUserRepo.On("GetByEmail", ctx, "asha@example.com").Return(nil, nil)
	mockUserRepo.On("Create", ctx, mock.MatchedBy(func(u *model.User) bool {
		return u.Email == "asha@example.com" &&
			u.Role == model.RoleUser &&
			u.Status == model.UserStatusActive &&
			u.PasswordHash != "" &&
			u.PasswordHash != "secret123"
	})).Return(nil)

	user, err := svc.Register(ctx, &model.RegisterRequest{
		Name:     "Asha",
		Email:    "Asha@Example.com",
		Password: "secret123",
	})

	require.NoError(t, err)
	assert.Equal(t, "asha@example.com", user.Email)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret123")))
	mockUserRepo.AssertExpectations(t)
}

func TestUserService_Register_EmailTaken(t *testing.T) {
	ctx := context.Background()
	existing := &model.User{ID: uuid.New(), Email: "asha@example.com"}

	mockUserRepo, svc := newUserServiceForTest()
	mockUserRepo.On("GetByEmail", ctx, "asha@example.com").Return(existing, nil)

	user, err := svc.Register(ctx, &model.RegisterRequest{
		Name:     "Asha",
		Email:    "asha@example.com",
		Password: "secret123",
	})

	require.Error(t, err)
	assert.Equal(t, model.ErrEmailTaken, err)
	assert.Nil(t, user)
	mockUserRepo.AssertNotCalled(t, "Create")
}

func TestUserService_Register_MissingFields(t *testing.T) {
	ctx := context.Background()

	_, svc := newUserServiceForTest()

	user, err := svc.Register(ctx, &model.RegisterRequest{Name: "Asha"})

	require.Error(t, err)
	assert.Equal(t, model.ErrMissingField, err)
	assert.Nil(t, user)
}

func TestUserService_Authenticate_Success(t *testing.T) {
	ctx := context.Background()
	stored := &model.User{
		ID:           uuid.New(),
		Email:        "ravi@example.com",
		PasswordHash: hashForTest(t, "hunter22"),
		Role:         model.RoleUser,
	}

	mockUserRepo, svc := newUserServiceForTest()
	mockUserRepo.On("GetByEmail", ctx, "ravi@example.com").Return(stored, nil)
	mockUserRepo.On("UpdateLastLogin", ctx, stored.ID, mock.AnythingOfType("time.Time")).Return(nil)

	user, err := svc.Authenticate(ctx, "Ravi@Example.com", "hunter22")

	require.NoError(t, err)
	assert.Equal(t, stored.ID, user.ID)
	assert.WithinDuration(t, time.Now(), user.LastLogin, time.Minute)
	mockUserRepo.AssertExpectations(t)
}

func TestUserService_Authenticate_WrongPassword(t *testing.T) {
	ctx := context.Background()
	stored := &model.User{
		ID:           uuid.New(),
		Email:        "ravi@example.com",
		PasswordHash: hashForTest(t, "hunter22"),
	}

	mockUserRepo, svc := newUserServiceForTest()
	mockUserRepo.On("GetByEmail", ctx, "ravi@example.com").Return(stored, nil)

	user, err := svc.Authenticate(ctx, "ravi@example.com", "wrong")

	require.Error(t, err)
	assert.Equal(t, model.ErrInvalidCreds, err)
	assert.Nil(t, user)
	mockUserRepo.AssertNotCalled(t, "UpdateLastLogin")
}

func TestUserService_Authenticate_UnknownEmailSameError(t *testing.T) {
	ctx := context.Background()

	mockUserRepo, svc := newUserServiceForTest()
	mockUserRepo.On("GetByEmail", ctx, "nobody@example.com").Return(nil, nil)

	user, err := svc.Authenticate(ctx, "nobody@example.com", "whatever")

	// Indistinguishable from a wrong password
	require.Error(t, err)
	assert.Equal(t, model.ErrInvalidCreds, err)
	assert.Nil(t, user)
}

func TestUserService_AuthenticateAdmin_RejectsNonAdmin(t *testing.T) {
	ctx := context.Background()
	stored := &model.User{
		ID:           uuid.New(),
		Email:        "ravi@example.com",
		PasswordHash: hashForTest(t, "hunter22"),
		Role:         model.RoleUser,
	}

	mockUserRepo, svc := newUserServiceForTest()
	mockUserRepo.On("GetByEmail", ctx, "ravi@example.com").Return(stored, nil)
	mockUserRepo.On("UpdateLastLogin", ctx, stored.ID, mock.AnythingOfType("time.Time")).Return(nil)

	user, err := svc.AuthenticateAdmin(ctx, "ravi@example.com", "hunter22")

	require.Error(t, err)
	assert.Equal(t, model.ErrInvalidCreds, err)
	assert.Nil(t, user)
}

func TestUserService_AuthenticateAdmin_Success(t *testing.T) {
	ctx := context.Background()
	stored := &model.User{
		ID:           uuid.New(),
		Email:        "admin@example.com",
		PasswordHash: hashForTest(t, "adminpass"),
		Role:         model.RoleAdmin,
	}

	mockUserRepo, svc := newUserServiceForTest()
	mockUserRepo.On("GetByEmail", ctx, "admin@example.com").Return(stored, nil)
	mockUserRepo.On("UpdateLastLogin", ctx, stored.ID, mock.AnythingOfType("time.Time")).Return(nil)

	user, err := svc.AuthenticateAdmin(ctx, "admin@example.com", "adminpass")

	require.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, user.Role)
}

func TestUserService_UpdateProfile_ChangesNameAndPassword(t *testing.T) {
	ctx := context.Background()
	oldHash := hashForTest(t, "oldpass")
	stored := &model.User{
		ID:           uuid.New(),
		Name:         "Old Name",
		Email:        "asha@example.com",
		PasswordHash: oldHash,
	}

	mockUserRepo, svc := newUserServiceForTest()
	mockUserRepo.On("GetByEmail", ctx, "asha@example.com").Return(stored, nil)
	mockUserRepo.On("Update", ctx, mock.MatchedBy(func(u *model.User) bool {
		return u.Name == "New Name" && u.PasswordHash != oldHash
	})).Return(nil)

	user, err := svc.UpdateProfile(ctx, &model.UpdateProfileRequest{
		Email:    "asha@example.com",
		Name:     "New Name",
		Password: "newpass1",
	})

	require.NoError(t, err)
	assert.Equal(t, "New Name", user.Name)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("newpass1")))
}

func TestUserService_UpdateProfile_UnknownUser(t *testing.T) {
	ctx := context.Background()

	mockUserRepo, svc := newUserServiceForTest()
	mockUserRepo.On("GetByEmail", ctx, "ghost@example.com").Return(nil, nil)

	user, err := svc.UpdateProfile(ctx, &model.UpdateProfileRequest{Email: "ghost@example.com", Name: "Ghost"})

	require.Error(t, err)
	assert.Equal(t, model.ErrUserNotFound, err)
	assert.Nil(t, user)
}

func TestUserService_UpdateUser_RoleAndStatus(t *testing.T) {
	ctx := context.Background()
	stored := &model.User{ID: uuid.New(), Role: model.RoleUser, Status: model.UserStatusActive}

	mockUserRepo, svc := newUserServiceForTest()
	mockUserRepo.On("GetByID", ctx, stored.ID).Return(stored, nil)
	mockUserRepo.On("Update", ctx, mock.AnythingOfType("*model.User")).Return(nil)

	user, err := svc.UpdateUser(ctx, stored.ID, model.RoleModerator, model.UserStatusSuspended)

	require.NoError(t, err)
	assert.Equal(t, model.RoleModerator, user.Role)
	assert.Equal(t, model.UserStatusSuspended, user.Status)
}

func TestUserService_UpdateUser_InvalidRole(t *testing.T) {
	ctx := context.Background()

	mockUserRepo, svc := newUserServiceForTest()

	user, err := svc.UpdateUser(ctx, uuid.New(), "overlord", "")

	require.Error(t, err)
	assert.Equal(t, model.ErrInvalidStatus, err)
	assert.Nil(t, user)
	mockUserRepo.AssertNotCalled(t, "Update")
}
