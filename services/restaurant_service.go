package services

import (
	"errors"

	"tastebook/models"
	"tastebook/repositories"

	"gorm.io/gorm"
)

// The RestaurantService interface defines read access to restaurant listings.
// Restaurants are created only by out-of-band seeding; there is no write path.
type RestaurantService interface {
	ListRestaurants() ([]models.Restaurant, error)
	GetRestaurant(restaurantID uint) (*models.Restaurant, float64, error)
}

type restaurantService struct {
	repo repositories.RestaurantRepository
}

var _ RestaurantService = (*restaurantService)(nil)

// NewRestaurantService creates a new RestaurantService instance
func NewRestaurantService(repo repositories.RestaurantRepository) RestaurantService {
	return &restaurantService{repo: repo}
}

// ListRestaurants returns all restaurants; an empty slice when there are none
func (s *restaurantService) ListRestaurants() ([]models.Restaurant, error) {
	return s.repo.FindAll()
}

// GetRestaurant returns the restaurant and its average review rating,
// computed on read and never stored.
func (s *restaurantService) GetRestaurant(restaurantID uint) (*models.Restaurant, float64, error) {
	restaurant, err := s.repo.FindByID(restaurantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, ErrNotFound
		}
		return nil, 0, err
	}

	avg, err := s.repo.AverageRating(restaurantID)
	if err != nil {
		return nil, 0, err
	}

	return restaurant, avg, nil
}
