package services

import (
	"testing"
	"time"

	"tastebook/models"
	"tastebook/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedRestaurant(t *testing.T, db *gorm.DB, name string) *models.Restaurant {
	t.Helper()
	restaurant := models.Restaurant{Name: name, Location: "Nairobi"}
	require.NoError(t, db.Create(&restaurant).Error)
	return &restaurant
}

func seedUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()
	user := models.User{Email: email, Password: "digest"}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func seedReview(t *testing.T, db *gorm.DB, userID, restaurantID uint, rating float64) *models.Review {
	t.Helper()
	review := models.Review{
		Content:      "This content is long enough.",
		Rating:       rating,
		Timestamp:    time.Now().UTC(),
		UserID:       userID,
		RestaurantID: restaurantID,
	}
	require.NoError(t, db.Create(&review).Error)
	return &review
}

func TestListRestaurants(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRestaurantService(repositories.NewRestaurantRepository(db))

	t.Run("empty store yields empty list", func(t *testing.T) {
		restaurants, err := svc.ListRestaurants()
		require.NoError(t, err)
		assert.Empty(t, restaurants)
	})

	t.Run("returns all restaurants", func(t *testing.T) {
		seedRestaurant(t, db, "The Copper Ivy")
		seedRestaurant(t, db, "Boho Eatery")

		restaurants, err := svc.ListRestaurants()
		require.NoError(t, err)
		assert.Len(t, restaurants, 2)
	})
}

func TestGetRestaurant(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRestaurantService(repositories.NewRestaurantRepository(db))

	restaurant := seedRestaurant(t, db, "The Copper Ivy")
	user := seedUser(t, db, "a@b.com")

	t.Run("no reviews averages zero", func(t *testing.T) {
		found, avg, err := svc.GetRestaurant(restaurant.ID)
		require.NoError(t, err)
		assert.Equal(t, restaurant.Name, found.Name)
		assert.Equal(t, 0.0, avg)
	})

	t.Run("average of 5 and 3 is 4", func(t *testing.T) {
		seedReview(t, db, user.ID, restaurant.ID, 5)
		seedReview(t, db, user.ID, restaurant.ID, 3)

		_, avg, err := svc.GetRestaurant(restaurant.ID)
		require.NoError(t, err)
		assert.Equal(t, 4.0, avg)
	})

	t.Run("unknown id is not found", func(t *testing.T) {
		_, _, err := svc.GetRestaurant(9999)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
