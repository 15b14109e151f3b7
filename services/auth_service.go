package services

import (
	"fmt"

	"blog-restful/auth"
	"blog-restful/models"
	"blog-restful/repositories"

	"golang.org/x/crypto/bcrypt"
)

// AuthService validates credentials and issues session tokens.
type AuthService interface {
	Authenticate(email, password string) (*models.User, error)
	Login(email, password string) (string, error)
	Refresh(userID uint, email string) (string, error)
}

type authService struct {
	users repositories.UserRepository
}

var _ AuthService = (*authService)(nil)

// NewAuthService creates a new AuthService instance
func NewAuthService(users repositories.UserRepository) AuthService {
	return &authService{users: users}
}

// Authenticate compares the supplied password against the stored hash.
// Unknown email and wrong password are indistinguishable to the caller.
func (s *authService) Authenticate(email, password string) (*models.User, error) {
	user, err := s.users.FindByEmail(email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// Login authenticates and issues a signed token embedding the identity.
func (s *authService) Login(email, password string) (string, error) {
	user, err := s.Authenticate(email, password)
	if err != nil {
		return "", err
	}

	token, err := auth.GenerateToken(user.ID, user.Email)
	if err != nil {
		return "", fmt.Errorf("could not generate token: %w", err)
	}
	return token, nil
}

// Refresh issues a new token from an already-validated identity, same
// expiry policy as Login. No database round-trip needed.
func (s *authService) Refresh(userID uint, email string) (string, error) {
	token, err := auth.GenerateToken(userID, email)
	if err != nil {
		return "", fmt.Errorf("could not generate token: %w", err)
	}
	return token, nil
}
