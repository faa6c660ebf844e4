package services

import (
	"errors"
	"time"

	"tastebook/models"
	"tastebook/repositories"
	"tastebook/validation"

	"gorm.io/gorm"
)

// The ReviewService interface defines the review CRUD operations
type ReviewService interface {
	ListReviews(restaurantID uint) ([]repositories.ReviewWithEmail, error)
	CreateReview(restaurantID, userID uint, input *ReviewInput) (*models.Review, error)
	GetReview(restaurantID, reviewID uint) (*repositories.ReviewWithEmail, error)
	UpdateReview(restaurantID, reviewID, userID uint, input *ReviewInput) (*models.Review, error)
	DeleteReview(restaurantID, reviewID, userID uint) error
}

// ReviewInput is the request body for creating or updating a review
type ReviewInput struct {
	Content string  `json:"content"`
	Rating  float64 `json:"rating"`
}

type reviewService struct {
	repo repositories.ReviewRepository
}

var _ ReviewService = (*reviewService)(nil)

// NewReviewService creates a new ReviewService instance
func NewReviewService(repo repositories.ReviewRepository) ReviewService {
	return &reviewService{repo: repo}
}

func validateReview(input *ReviewInput) map[string]string {
	errs := make(map[string]string)
	if msg := validation.ReviewContent(input.Content); msg != "" {
		errs["content"] = msg
	}
	if msg := validation.ReviewRating(input.Rating); msg != "" {
		errs["rating"] = msg
	}
	return errs
}

// ListReviews returns all reviews for a restaurant joined with each author's
// email. The restaurant id is deliberately not checked for existence: an
// unknown id yields an empty list.
func (s *reviewService) ListReviews(restaurantID uint) ([]repositories.ReviewWithEmail, error) {
	return s.repo.ListByRestaurant(restaurantID)
}

// CreateReview persists a review owned by the acting identity against the
// given restaurant. The restaurant id is not verified, mirroring ListReviews.
func (s *reviewService) CreateReview(restaurantID, userID uint, input *ReviewInput) (*models.Review, error) {
	if errs := validateReview(input); len(errs) > 0 {
		return nil, &ValidationError{Errors: errs}
	}

	review := models.Review{
		Content:      input.Content,
		Rating:       input.Rating,
		Timestamp:    time.Now().UTC(),
		UserID:       userID,
		RestaurantID: restaurantID,
	}
	if err := s.repo.Create(&review); err != nil {
		return nil, err
	}

	return &review, nil
}

// GetReview returns the review matching both ids joined with the author's email
func (s *reviewService) GetReview(restaurantID, reviewID uint) (*repositories.ReviewWithEmail, error) {
	row, err := s.repo.FindWithEmail(restaurantID, reviewID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return row, nil
}

// UpdateReview applies new content and rating to a review. Existence is
// checked before ownership, ownership before validation; any failure leaves
// the stored review untouched.
func (s *reviewService) UpdateReview(restaurantID, reviewID, userID uint, input *ReviewInput) (*models.Review, error) {
	review, err := s.repo.FindByRestaurantAndID(restaurantID, reviewID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if review.UserID != userID {
		return nil, ErrForbidden
	}

	if errs := validateReview(input); len(errs) > 0 {
		return nil, &ValidationError{Errors: errs}
	}

	review.Content = input.Content
	review.Rating = input.Rating
	if err := s.repo.Update(review); err != nil {
		return nil, err
	}

	return review, nil
}

// DeleteReview removes a review after the same existence and ownership
// checks as UpdateReview.
func (s *reviewService) DeleteReview(restaurantID, reviewID, userID uint) error {
	review, err := s.repo.FindByRestaurantAndID(restaurantID, reviewID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if review.UserID != userID {
		return ErrForbidden
	}

	return s.repo.Delete(review)
}
