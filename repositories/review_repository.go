package repositories

import (
	"time"

	"tastebook/models"

	"gorm.io/gorm"
)

// ReviewWithEmail is a Review row joined with the authoring user's email.
type ReviewWithEmail struct {
	ID           uint      `json:"id"`
	Content      string    `json:"content"`
	Rating       float64   `json:"rating"`
	Timestamp    time.Time `json:"timestamp"`
	UpdatedAt    time.Time `json:"updated_at"`
	UserID       uint      `json:"user_id"`
	RestaurantID uint      `json:"restaurant_id"`
	UserEmail    string    `json:"user_email"`
}

// ReviewRepository interface defines Review-related database operations
type ReviewRepository interface {
	Create(review *models.Review) error
	FindByRestaurantAndID(restaurantID, reviewID uint) (*models.Review, error)
	FindWithEmail(restaurantID, reviewID uint) (*ReviewWithEmail, error)
	ListByRestaurant(restaurantID uint) ([]ReviewWithEmail, error)
	Update(review *models.Review) error
	Delete(review *models.Review) error
}

// reviewRepository implements the ReviewRepository interface
type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository creates a new ReviewRepository instance
func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

// Create creates a new Review
func (r *reviewRepository) Create(review *models.Review) error {
	result := r.db.Create(review)
	return result.Error
}

// FindByRestaurantAndID finds the Review matching both ids
func (r *reviewRepository) FindByRestaurantAndID(restaurantID, reviewID uint) (*models.Review, error) {
	var review models.Review
	result := r.db.Where("restaurant_id = ? AND id = ?", restaurantID, reviewID).First(&review)
	if result.Error != nil {
		return nil, result.Error
	}
	return &review, nil
}

// FindWithEmail finds the Review matching both ids joined with the author's email
func (r *reviewRepository) FindWithEmail(restaurantID, reviewID uint) (*ReviewWithEmail, error) {
	var row ReviewWithEmail
	result := r.db.Model(&models.Review{}).
		Select("review.*, user.email AS user_email").
		Joins("JOIN user ON user.id = review.user_id").
		Where("review.restaurant_id = ? AND review.id = ?", restaurantID, reviewID).
		First(&row)
	if result.Error != nil {
		return nil, result.Error
	}
	return &row, nil
}

// ListByRestaurant returns all Reviews for a restaurant joined with each
// author's email. An unknown restaurant id simply yields an empty slice.
func (r *reviewRepository) ListByRestaurant(restaurantID uint) ([]ReviewWithEmail, error) {
	var rows []ReviewWithEmail
	result := r.db.Model(&models.Review{}).
		Select("review.*, user.email AS user_email").
		Joins("JOIN user ON user.id = review.user_id").
		Where("review.restaurant_id = ?", restaurantID).
		Find(&rows)
	if result.Error != nil {
		return nil, result.Error
	}
	return rows, nil
}

// Update saves the Review, refreshing its updated-at column
func (r *reviewRepository) Update(review *models.Review) error {
	result := r.db.Save(review)
	return result.Error
}

// Delete deletes the Review
func (r *reviewRepository) Delete(review *models.Review) error {
	result := r.db.Delete(review)
	return result.Error
}
