package services

import (
	"fmt"
	"testing"

	"tastebook/database"
	"tastebook/models"
	"tastebook/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB initializes an in-memory SQLite database for testing. Each
// top-level test gets its own database, named after the test.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "failed to connect to test database")
	require.NoError(t, database.Migrate(db), "failed to migrate test database")
	return db
}

func TestSignup(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(repositories.NewUserRepository(db))

	t.Run("creates user with hashed password", func(t *testing.T) {
		user, err := svc.Signup(&CredentialsInput{Email: "a@b.com", Password: "Abcdef1!"})
		require.NoError(t, err)
		assert.NotZero(t, user.ID)
		assert.Equal(t, "a@b.com", user.Email)
		assert.NotEqual(t, "Abcdef1!", user.Password)
		assert.NotEmpty(t, user.Password)
	})

	t.Run("duplicate email fails validation", func(t *testing.T) {
		_, err := svc.Signup(&CredentialsInput{Email: "a@b.com", Password: "Abcdef1!"})
		ve, ok := AsValidationError(err)
		require.True(t, ok, "expected a validation error, got %v", err)
		assert.Contains(t, ve.Errors, "email")
	})

	t.Run("malformed email fails validation", func(t *testing.T) {
		_, err := svc.Signup(&CredentialsInput{Email: "not-an-email", Password: "Abcdef1!"})
		ve, ok := AsValidationError(err)
		require.True(t, ok)
		assert.Equal(t, "Provided email is not valid.", ve.Errors["email"])
	})

	t.Run("weak password fails validation before persistence", func(t *testing.T) {
		_, err := svc.Signup(&CredentialsInput{Email: "weak@b.com", Password: "abcdef1!"})
		ve, ok := AsValidationError(err)
		require.True(t, ok)
		assert.Contains(t, ve.Errors, "password")

		var count int64
		db.Model(&models.User{}).Where("email = ?", "weak@b.com").Count(&count)
		assert.Zero(t, count, "nothing may be persisted on validation failure")
	})
}

func TestLogin(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(repositories.NewUserRepository(db))

	_, err := svc.Signup(&CredentialsInput{Email: "a@b.com", Password: "Abcdef1!"})
	require.NoError(t, err)

	t.Run("correct credentials", func(t *testing.T) {
		user, err := svc.Login(&CredentialsInput{Email: "a@b.com", Password: "Abcdef1!"})
		require.NoError(t, err)
		assert.Equal(t, "a@b.com", user.Email)
	})

	t.Run("wrong password and unknown email are indistinguishable", func(t *testing.T) {
		_, errWrongPassword := svc.Login(&CredentialsInput{Email: "a@b.com", Password: "Wrongpw1!"})
		_, errUnknownEmail := svc.Login(&CredentialsInput{Email: "nobody@b.com", Password: "Abcdef1!"})
		assert.ErrorIs(t, errWrongPassword, ErrInvalidCredentials)
		assert.ErrorIs(t, errUnknownEmail, ErrInvalidCredentials)
		assert.Equal(t, errWrongPassword, errUnknownEmail)
	})

	t.Run("low-complexity wrong password is a credential failure", func(t *testing.T) {
		// Complexity rules apply at signup only. A wrong password that
		// would not pass them must still be treated as a credential to
		// verify, not rejected as malformed input.
		_, err := svc.Login(&CredentialsInput{Email: "a@b.com", Password: "abcdefgh"})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("too-short password fails validation before lookup", func(t *testing.T) {
		_, err := svc.Login(&CredentialsInput{Email: "a@b.com", Password: "abc"})
		ve, ok := AsValidationError(err)
		require.True(t, ok)
		assert.Equal(t, "Password must be at least 6 characters long.", ve.Errors["password"])
	})

	t.Run("malformed input fails validation before lookup", func(t *testing.T) {
		_, err := svc.Login(&CredentialsInput{Email: "nope", Password: ""})
		ve, ok := AsValidationError(err)
		require.True(t, ok)
		assert.Contains(t, ve.Errors, "email")
		assert.Contains(t, ve.Errors, "password")
	})
}
