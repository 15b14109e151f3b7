package services

import (
	"errors"
	"fmt"

	"blog-restful/models"
	"blog-restful/repositories"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// The UserService interface defines the methods that user services need to implement
type UserService interface {
	Register(input *RegisterInput) (*models.User, error)
	GetByID(id uint) (*models.User, error)
	Update(id uint, actorID uint, input *UpdateUserInput) (*models.User, error)
	Delete(id uint, actorID uint) error
	List(page int, limit int) ([]models.User, int64, error)
}

// --- Structs for Input ---

type RegisterInput struct {
	Email    string `json:"email" description:"Unique email used for login"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// UpdateUserInput is the allow-listed partial update payload. Pointers
// distinguish "not provided" from "set to empty". Relation fields are
// deliberately not updatable.
type UpdateUserInput struct {
	Email    *string `json:"email"`
	Name     *string `json:"name"`
	Password *string `json:"password"`
}

// userService is the implementation of the UserService interface
type userService struct {
	repo repositories.UserRepository
}

var _ UserService = (*userService)(nil)

// NewUserService creates a new UserService instance
func NewUserService(repo repositories.UserRepository) UserService {
	return &userService{repo: repo}
}

// Register creates a new user with a salted bcrypt hash of the password.
func (s *userService) Register(input *RegisterInput) (*models.User, error) {
	if input.Email == "" || input.Password == "" || input.Name == "" {
		return nil, fmt.Errorf("email, password and name are required: %w", ErrValidation)
	}

	_, err := s.repo.FindByEmail(input.Email)
	if err == nil {
		return nil, fmt.Errorf("email %q is already registered: %w", input.Email, ErrConflict)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("checking existing user: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("could not hash password: %w", err)
	}

	user := models.User{
		Email:    input.Email,
		Password: string(hashedPassword),
		Name:     input.Name,
	}

	if err := s.repo.Create(&user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &user, nil
}

// GetByID retrieves a single user.
func (s *userService) GetByID(id uint) (*models.User, error) {
	user, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("retrieving user %d: %w", id, err)
	}
	return user, nil
}

// Update applies the allow-listed fields to the user's own profile.
func (s *userService) Update(id uint, actorID uint, input *UpdateUserInput) (*models.User, error) {
	if id != actorID {
		return nil, fmt.Errorf("you can only update your own profile: %w", ErrForbidden)
	}

	user, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	needsSave := false

	if input.Email != nil && *input.Email != user.Email {
		// The new email must not belong to another account
		existing, err := s.repo.FindByEmail(*input.Email)
		if err == nil && existing.ID != user.ID {
			return nil, fmt.Errorf("email %q is already registered: %w", *input.Email, ErrConflict)
		} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("checking email uniqueness: %w", err)
		}
		user.Email = *input.Email
		needsSave = true
	}

	if input.Name != nil && *input.Name != user.Name {
		user.Name = *input.Name
		needsSave = true
	}

	if input.Password != nil {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("could not hash new password: %w", err)
		}
		user.Password = string(hashedPassword)
		needsSave = true
	}

	if needsSave {
		if err := s.repo.Update(user); err != nil {
			return nil, fmt.Errorf("failed to save user updates: %w", err)
		}
	}

	return user, nil
}

// Delete removes the user; owned articles and comments cascade in the store.
func (s *userService) Delete(id uint, actorID uint) error {
	if id != actorID {
		return fmt.Errorf("you can only delete your own account: %w", ErrForbidden)
	}

	user, err := s.GetByID(id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(user); err != nil {
		return fmt.Errorf("failed to delete user %d: %w", id, err)
	}
	return nil
}

// List returns one page of users. Password hashes never leave the
// controller layer thanks to the response mapping there.
func (s *userService) List(page int, limit int) ([]models.User, int64, error) {
	users, total, err := s.repo.FindAll(page, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("retrieving users: %w", err)
	}
	return users, total, nil
}
