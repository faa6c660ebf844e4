package services

import (
	"testing"

	"tastebook/models"
	"tastebook/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateReview(t *testing.T) {
	db := setupTestDB(t)
	svc := NewReviewService(repositories.NewReviewRepository(db))

	user := seedUser(t, db, "a@b.com")
	restaurant := seedRestaurant(t, db, "The Copper Ivy")

	t.Run("persists review for the acting user", func(t *testing.T) {
		review, err := svc.CreateReview(restaurant.ID, user.ID, &ReviewInput{Content: "Great food!!", Rating: 4.5})
		require.NoError(t, err)
		assert.NotZero(t, review.ID)
		assert.False(t, review.Timestamp.IsZero())
		assert.Equal(t, user.ID, review.UserID)
		assert.Equal(t, restaurant.ID, review.RestaurantID)
	})

	t.Run("short content fails validation", func(t *testing.T) {
		_, err := svc.CreateReview(restaurant.ID, user.ID, &ReviewInput{Content: "too short", Rating: 3})
		ve, ok := AsValidationError(err)
		require.True(t, ok)
		assert.Equal(t, "Content must have at least 10 characters.", ve.Errors["content"])
	})

	t.Run("out-of-range rating fails validation", func(t *testing.T) {
		for _, rating := range []float64{-1, 5.5} {
			_, err := svc.CreateReview(restaurant.ID, user.ID, &ReviewInput{Content: "Great food!!", Rating: rating})
			ve, ok := AsValidationError(err)
			require.True(t, ok, "rating %v", rating)
			assert.Contains(t, ve.Errors, "rating")
		}
	})

	t.Run("restaurant existence is not checked", func(t *testing.T) {
		review, err := svc.CreateReview(9999, user.ID, &ReviewInput{Content: "Great food!!", Rating: 4})
		require.NoError(t, err)
		assert.Equal(t, uint(9999), review.RestaurantID)
	})
}

func TestListReviews(t *testing.T) {
	db := setupTestDB(t)
	svc := NewReviewService(repositories.NewReviewRepository(db))

	user := seedUser(t, db, "a@b.com")
	restaurant := seedRestaurant(t, db, "The Copper Ivy")
	seedReview(t, db, user.ID, restaurant.ID, 5)

	t.Run("joins the author email", func(t *testing.T) {
		rows, err := svc.ListReviews(restaurant.ID)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "a@b.com", rows[0].UserEmail)
		assert.Equal(t, restaurant.ID, rows[0].RestaurantID)
	})

	t.Run("unknown restaurant yields an empty list, not an error", func(t *testing.T) {
		rows, err := svc.ListReviews(9999)
		require.NoError(t, err)
		assert.Empty(t, rows)
	})
}

func TestUpdateReview(t *testing.T) {
	db := setupTestDB(t)
	svc := NewReviewService(repositories.NewReviewRepository(db))

	author := seedUser(t, db, "author@b.com")
	other := seedUser(t, db, "other@b.com")
	restaurant := seedRestaurant(t, db, "The Copper Ivy")
	review := seedReview(t, db, author.ID, restaurant.ID, 2)

	t.Run("non-author is forbidden", func(t *testing.T) {
		_, err := svc.UpdateReview(restaurant.ID, review.ID, other.ID, &ReviewInput{Content: "A better review text", Rating: 4})
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("unknown review is not found before the ownership check", func(t *testing.T) {
		_, err := svc.UpdateReview(restaurant.ID, 9999, other.ID, &ReviewInput{Content: "A better review text", Rating: 4})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("validation failure after ownership leaves the review untouched", func(t *testing.T) {
		_, err := svc.UpdateReview(restaurant.ID, review.ID, author.ID, &ReviewInput{Content: "nope", Rating: 4})
		_, ok := AsValidationError(err)
		require.True(t, ok)

		var stored models.Review
		require.NoError(t, db.First(&stored, review.ID).Error)
		assert.Equal(t, review.Content, stored.Content)
		assert.Equal(t, 2.0, stored.Rating)
	})

	t.Run("author updates content and rating", func(t *testing.T) {
		updated, err := svc.UpdateReview(restaurant.ID, review.ID, author.ID, &ReviewInput{Content: "Revised: actually lovely", Rating: 4})
		require.NoError(t, err)
		assert.Equal(t, "Revised: actually lovely", updated.Content)
		assert.Equal(t, 4.0, updated.Rating)

		var stored models.Review
		require.NoError(t, db.First(&stored, review.ID).Error)
		assert.Equal(t, "Revised: actually lovely", stored.Content)
	})
}

func TestDeleteReview(t *testing.T) {
	db := setupTestDB(t)
	svc := NewReviewService(repositories.NewReviewRepository(db))

	author := seedUser(t, db, "author@b.com")
	other := seedUser(t, db, "other@b.com")
	restaurant := seedRestaurant(t, db, "The Copper Ivy")
	review := seedReview(t, db, author.ID, restaurant.ID, 2)

	t.Run("non-author is forbidden", func(t *testing.T) {
		assert.ErrorIs(t, svc.DeleteReview(restaurant.ID, review.ID, other.ID), ErrForbidden)
	})

	t.Run("author deletes, then lookups are not found", func(t *testing.T) {
		require.NoError(t, svc.DeleteReview(restaurant.ID, review.ID, author.ID))

		_, err := svc.GetReview(restaurant.ID, review.ID)
		assert.ErrorIs(t, err, ErrNotFound)
		assert.ErrorIs(t, svc.DeleteReview(restaurant.ID, review.ID, author.ID), ErrNotFound)
	})
}

func TestGetReview(t *testing.T) {
	db := setupTestDB(t)
	svc := NewReviewService(repositories.NewReviewRepository(db))

	user := seedUser(t, db, "a@b.com")
	restaurant := seedRestaurant(t, db, "The Copper Ivy")
	otherRestaurant := seedRestaurant(t, db, "Boho Eatery")
	review := seedReview(t, db, user.ID, restaurant.ID, 5)

	t.Run("returns the joined row", func(t *testing.T) {
		row, err := svc.GetReview(restaurant.ID, review.ID)
		require.NoError(t, err)
		assert.Equal(t, "a@b.com", row.UserEmail)
		assert.False(t, row.Timestamp.IsZero())
	})

	t.Run("both ids must match", func(t *testing.T) {
		_, err := svc.GetReview(otherRestaurant.ID, review.ID)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
