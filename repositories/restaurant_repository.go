package repositories

import (
	"tastebook/models"

	"gorm.io/gorm"
)

// RestaurantRepository interface defines Restaurant-related database operations
type RestaurantRepository interface {
	FindAll() ([]models.Restaurant, error)
	FindByID(id uint) (*models.Restaurant, error)
	AverageRating(restaurantID uint) (float64, error)
}

// restaurantRepository implements the RestaurantRepository interface
type restaurantRepository struct {
	db *gorm.DB
}

// NewRestaurantRepository creates a new RestaurantRepository instance
func NewRestaurantRepository(db *gorm.DB) RestaurantRepository {
	return &restaurantRepository{db: db}
}

// FindAll returns every Restaurant
func (r *restaurantRepository) FindAll() ([]models.Restaurant, error) {
	var restaurants []models.Restaurant
	result := r.db.Find(&restaurants)
	if result.Error != nil {
		return nil, result.Error
	}
	return restaurants, nil
}

// FindByID finds Restaurant by ID
func (r *restaurantRepository) FindByID(id uint) (*models.Restaurant, error) {
	var restaurant models.Restaurant
	result := r.db.First(&restaurant, id)
	if result.Error != nil {
		return nil, result.Error
	}
	return &restaurant, nil
}

// AverageRating computes the arithmetic mean of all review ratings for a
// restaurant. A restaurant without reviews averages 0.
func (r *restaurantRepository) AverageRating(restaurantID uint) (float64, error) {
	var avg float64
	result := r.db.Model(&models.Review{}).
		Where("restaurant_id = ?", restaurantID).
		Select("COALESCE(AVG(rating), 0)").
		Scan(&avg)
	if result.Error != nil {
		return 0, result.Error
	}
	return avg, nil
}
