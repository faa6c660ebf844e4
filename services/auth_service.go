package services

import (
	"errors"

	"tastebook/models"
	"tastebook/repositories"
	"tastebook/validation"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// The AuthService interface defines the account and credential operations
type AuthService interface {
	Signup(input *CredentialsInput) (*models.User, error)
	Login(input *CredentialsInput) (*models.User, error)
	GetUser(userID uint) (*models.User, error)
}

// CredentialsInput is the request body shared by signup and login
type CredentialsInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// The authService structure is the implementation of the AuthService interface
type authService struct {
	repo repositories.UserRepository
}

var _ AuthService = (*authService)(nil)

// NewAuthService creates a new AuthService instance
func NewAuthService(repo repositories.UserRepository) AuthService {
	return &authService{repo: repo}
}

// validateSignupInput runs the full field validators, including the
// password-complexity rules that only apply when an account is created.
func validateSignupInput(input *CredentialsInput) map[string]string {
	errs := make(map[string]string)
	if msg := validation.Email(input.Email); msg != "" {
		errs["email"] = msg
	}
	if msg := validation.Password(input.Password); msg != "" {
		errs["password"] = msg
	}
	return errs
}

// validateLoginInput checks only the shape of the credentials. A password
// that merely fails the complexity rules is still a credential to verify,
// not malformed input.
func validateLoginInput(input *CredentialsInput) map[string]string {
	errs := make(map[string]string)
	if msg := validation.Email(input.Email); msg != "" {
		errs["email"] = msg
	}
	if msg := validation.LoginPassword(input.Password); msg != "" {
		errs["password"] = msg
	}
	return errs
}

// Signup creates a new User with a hashed password. The plaintext is never
// stored; any validation failure aborts before persistence.
func (s *authService) Signup(input *CredentialsInput) (*models.User, error) {
	errs := validateSignupInput(input)

	// Email uniqueness is also enforced by the store's unique index; the
	// lookup here turns the common case into a field error instead of a
	// write failure.
	if _, ok := errs["email"]; !ok {
		_, err := s.repo.FindByEmail(input.Email)
		if err == nil {
			errs["email"] = "Email address is already registered."
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	if len(errs) > 0 {
		return nil, &ValidationError{Errors: errs}
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Email:    input.Email,
		Password: string(hashedPassword),
	}
	if err := s.repo.Create(&user); err != nil {
		return nil, err
	}

	return &user, nil
}

// Login verifies the credentials against the stored digest. Unknown email
// and wrong password are indistinguishable to the caller.
func (s *authService) Login(input *CredentialsInput) (*models.User, error) {
	if errs := validateLoginInput(input); len(errs) > 0 {
		return nil, &ValidationError{Errors: errs}
	}

	user, err := s.repo.FindByEmail(input.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// GetUser returns the identity behind an authenticated session
func (s *authService) GetUser(userID uint) (*models.User, error) {
	user, err := s.repo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return user, nil
}
