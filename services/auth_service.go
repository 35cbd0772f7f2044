package services

import (
	"context"
	"errors"

	"storefront-service/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// ErrInvalidCredentials is returned for both unknown emails and wrong
// passwords; callers cannot tell the two apart.
var ErrInvalidCredentials = errors.New("invalid email or password")

type IAdminUserRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.AdminUser, error)
	Create(ctx context.Context, user *models.AdminUser) error
	Count(ctx context.Context) (int64, error)
}

type ITokenService interface {
	GenerateTokenPair(userID, email, role string) (*TokenPair, error)
}

// AuthService verifies admin credentials against stored bcrypt hashes and
// issues token pairs. Credentials live in the database, never in code.
type AuthService struct {
	userRepo     IAdminUserRepository
	tokenService ITokenService
}

func NewAuthService(userRepo IAdminUserRepository, tokenService ITokenService) *AuthService {
	return &AuthService{userRepo: userRepo, tokenService: tokenService}
}

// Login checks the credential pair and returns a token pair on success.
func (s *AuthService) Login(ctx context.Context, email, password string) (*TokenPair, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	zap.L().Info("Admin login", zap.String("email", email))
	return s.tokenService.GenerateTokenPair(user.ID.String(), user.Email, user.Role)
}

// SeedInitialAdmin creates the first admin account from configuration when
// the table is empty. It is a no-op once any admin exists or when the seed
// credentials are not configured.
func (s *AuthService) SeedInitialAdmin(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		return nil
	}

	count, err := s.userRepo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := &models.AdminUser{
		ID:       uuid.New(),
		Email:    email,
		Password: string(hash),
		Role:     "admin",
	}
	if err := s.userRepo.Create(ctx, admin); err != nil {
		// A concurrent replica may have seeded first.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil
		}
		return err
	}

	zap.L().Info("Seeded initial admin account", zap.String("email", email))
	return nil
}
