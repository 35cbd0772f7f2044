package services

import (
	"context"
	"errors"
	"testing"

	"storefront-service/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// --- Mocks for Dependencies ---

type MockAdminUserRepository struct{ mock.Mock }

func (m *MockAdminUserRepository) FindByEmail(ctx context.Context, email string) (*models.AdminUser, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AdminUser), args.Error(1)
}

func (m *MockAdminUserRepository) Create(ctx context.Context, user *models.AdminUser) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockAdminUserRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockTokenService struct{ mock.Mock }

func (m *MockTokenService) GenerateTokenPair(userID, email, role string) (*TokenPair, error) {
	args := m.Called(userID, email, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*TokenPair), args.Error(1)
}

// --- Tests ---

func TestLogin(t *testing.T) {
	mockRepo := new(MockAdminUserRepository)
	mockTokenService := new(MockTokenService)
	authService := NewAuthService(mockRepo, mockTokenService)
	ctx := context.Background()

	password := "strongpassword123"
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	testAdmin := &models.AdminUser{
		ID:       uuid.New(),
		Email:    "admin@example.com",
		Password: string(hashedPassword),
		Role:     "admin",
	}

	t.Run("Success", func(t *testing.T) {
		mockRepo.On("FindByEmail", ctx, testAdmin.Email).Return(testAdmin, nil).Once()
		mockTokenService.On("GenerateTokenPair", testAdmin.ID.String(), testAdmin.Email, testAdmin.Role).Return(&TokenPair{"access", "refresh"}, nil).Once()

		tokenPair, err := authService.Login(ctx, testAdmin.Email, password)

		assert.NoError(t, err)
		assert.NotNil(t, tokenPair)
		assert.Equal(t, "access", tokenPair.AccessToken)
		mockRepo.AssertExpectations(t)
		mockTokenService.AssertExpectations(t)
	})

	t.Run("User Not Found", func(t *testing.T) {
		mockRepo.On("FindByEmail", ctx, "notfound@example.com").Return(nil, gorm.ErrRecordNotFound).Once()

		_, err := authService.Login(ctx, "notfound@example.com", password)

		assert.ErrorIs(t, err, ErrInvalidCredentials)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Incorrect Password", func(t *testing.T) {
		mockRepo.On("FindByEmail", ctx, testAdmin.Email).Return(testAdmin, nil).Once()

		_, err := authService.Login(ctx, testAdmin.Email, "wrongpassword")

		assert.ErrorIs(t, err, ErrInvalidCredentials)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Unknown Email And Wrong Password Are Indistinguishable", func(t *testing.T) {
		mockRepo.On("FindByEmail", ctx, "notfound@example.com").Return(nil, gorm.ErrRecordNotFound).Once()
		mockRepo.On("FindByEmail", ctx, testAdmin.Email).Return(testAdmin, nil).Once()

		_, errUnknown := authService.Login(ctx, "notfound@example.com", password)
		_, errWrongPass := authService.Login(ctx, testAdmin.Email, "wrongpassword")

		assert.Equal(t, errUnknown, errWrongPass)
		mockRepo.AssertExpectations(t)
	})
}

func TestSeedInitialAdmin(t *testing.T) {
	ctx := context.Background()

	t.Run("Seeds When Table Empty", func(t *testing.T) {
		mockRepo := new(MockAdminUserRepository)
		authService := NewAuthService(mockRepo, new(MockTokenService))

		mockRepo.On("Count", ctx).Return(int64(0), nil).Once()
		mockRepo.On("Create", ctx, mock.MatchedBy(func(u *models.AdminUser) bool {
			if u.Email != "admin@example.com" || u.Role != "admin" {
				return false
			}
			// Stored password must be a hash, never the plaintext.
			return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("seedpassword")) == nil
		})).Return(nil).Once()

		err := authService.SeedInitialAdmin(ctx, "admin@example.com", "seedpassword")

		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Noop When Admin Exists", func(t *testing.T) {
		mockRepo := new(MockAdminUserRepository)
		authService := NewAuthService(mockRepo, new(MockTokenService))

		mockRepo.On("Count", ctx).Return(int64(1), nil).Once()

		err := authService.SeedInitialAdmin(ctx, "admin@example.com", "seedpassword")

		assert.NoError(t, err)
		mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Noop Without Configured Credentials", func(t *testing.T) {
		mockRepo := new(MockAdminUserRepository)
		authService := NewAuthService(mockRepo, new(MockTokenService))

		assert.NoError(t, authService.SeedInitialAdmin(ctx, "", ""))
		assert.NoError(t, authService.SeedInitialAdmin(ctx, "admin@example.com", ""))
		mockRepo.AssertNotCalled(t, "Count", mock.Anything)
	})

	t.Run("Tolerates Concurrent Seed", func(t *testing.T) {
		mockRepo := new(MockAdminUserRepository)
		authService := NewAuthService(mockRepo, new(MockTokenService))

		mockRepo.On("Count", ctx).Return(int64(0), nil).Once()
		mockRepo.On("Create", ctx, mock.Anything).Return(gorm.ErrDuplicatedKey).Once()

		err := authService.SeedInitialAdmin(ctx, "admin@example.com", "seedpassword")

		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Propagates Count Failure", func(t *testing.T) {
		mockRepo := new(MockAdminUserRepository)
		authService := NewAuthService(mockRepo, new(MockTokenService))

		mockRepo.On("Count", ctx).Return(int64(0), errors.New("db down")).Once()

		err := authService.SeedInitialAdmin(ctx, "admin@example.com", "seedpassword")

		assert.Error(t, err)
		mockRepo.AssertExpectations(t)
	})
}
