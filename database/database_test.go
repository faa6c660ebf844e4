package database

import (
	"fmt"
	"testing"

	"tastebook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestSeedInitialData(t *testing.T) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))

	SeedInitialData(db)

	var restaurants, users, reviews int64
	db.Model(&models.Restaurant{}).Count(&restaurants)
	db.Model(&models.User{}).Count(&users)
	db.Model(&models.Review{}).Count(&reviews)
	assert.EqualValues(t, 10, restaurants)
	assert.EqualValues(t, 2, users)
	assert.EqualValues(t, 2, reviews)

	// Passwords are stored as digests, never plaintext.
	var user models.User
	require.NoError(t, db.Where("email = ?", "gichachi@gmail.com").First(&user).Error)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("Gichachi@123")))

	// The visits join relation is populated.
	var visited []models.Restaurant
	require.NoError(t, db.Model(&user).Association("Restaurants").Find(&visited))
	assert.Len(t, visited, 1)

	// Seeding again is a no-op.
	SeedInitialData(db)
	db.Model(&models.Restaurant{}).Count(&restaurants)
	assert.EqualValues(t, 10, restaurants)
}
