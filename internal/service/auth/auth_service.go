package auth

import (
	"context"
	"errors"

	"github.com/avioline/skybook/internal/domain"
	"github.com/avioline/skybook/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

type AuthUseCase interface {
	Register(ctx context.Context, input RegisterInput) (*domain.PublicUser, error)
	Login(ctx context.Context, input LoginInput) (*domain.PublicUser, error)
}

type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthService struct {
	users                repository.UserRepository
	startingBalanceCents int64
}

func NewAuthService(users repository.UserRepository, startingBalanceCents int64) *AuthService {
	return &AuthService{users: users, startingBalanceCents: startingBalanceCents}
}

// Register stores a new user with a bcrypt-hashed credential and opens
// its wallet with the configured starting balance.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*domain.PublicUser, error) {
	if input.Name == "" || input.Email == "" || input.Password == "" {
		return nil, domain.NewValidationError("all fields required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: string(hash),
	}
	if err := s.users.CreateWithWallet(ctx, user, s.startingBalanceCents); err != nil {
		return nil, err
	}

	pub := user.Public()
	return &pub, nil
}

// Login returns the user's public fields only. The stored hash never
// leaves this package.
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*domain.PublicUser, error) {
	if input.Email == "" || input.Password == "" {
		return nil, domain.NewValidationError("all fields required")
	}

	user, err := s.users.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return nil, domain.ErrInvalidCredential
		}
		return nil, err
	}

	pub := user.Public()
	return &pub, nil
}

var _ AuthUseCase = (*AuthService)(nil)
