package controllers

import (
	"net/http"
	"time"

	"tastebook/auth"
	"tastebook/models"
	"tastebook/repositories"
	"tastebook/services"

	restfulspec "github.com/emicklei/go-restful-openapi/v2"
	restful "github.com/emicklei/go-restful/v3"
)

// ReviewController handles the review CRUD endpoints nested under a restaurant
type ReviewController struct {
	reviewService services.ReviewService
}

// NewReviewController creates a ReviewController instance
func NewReviewController(reviewService services.ReviewService) *ReviewController {
	return &ReviewController{reviewService: reviewService}
}

// CreatedReviewResponse is the body returned when a review is created
type CreatedReviewResponse struct {
	ID           uint      `json:"id"`
	Content      string    `json:"content"`
	Rating       float64   `json:"rating"`
	Timestamp    time.Time `json:"timestamp"`
	UserID       uint      `json:"user_id"`
	RestaurantID uint      `json:"restaurant_id"`
}

// UpdatedReviewResponse is the body returned when a review is updated
type UpdatedReviewResponse struct {
	ID           uint      `json:"id"`
	Content      string    `json:"content"`
	Rating       float64   `json:"rating"`
	UserID       uint      `json:"user_id"`
	RestaurantID uint      `json:"restaurant_id"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ReviewListItem is one element of the review listing, joined with the
// authoring user's email
type ReviewListItem struct {
	ID           uint    `json:"id"`
	Content      string  `json:"content"`
	Rating       float64 `json:"rating"`
	UserID       uint    `json:"user_id"`
	RestaurantID uint    `json:"restaurant_id"`
	UserEmail    string  `json:"user_email"`
}

// SingleReviewResponse is the full review projection with both timestamps
type SingleReviewResponse struct {
	ID           uint      `json:"id"`
	Content      string    `json:"content"`
	Rating       float64   `json:"rating"`
	UserID       uint      `json:"user_id"`
	RestaurantID uint      `json:"restaurant_id"`
	UserEmail    string    `json:"user_email"`
	Timestamp    time.Time `json:"timestamp"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func mapRowToListItem(row repositories.ReviewWithEmail) ReviewListItem {
	return ReviewListItem{
		ID:           row.ID,
		Content:      row.Content,
		Rating:       row.Rating,
		UserID:       row.UserID,
		RestaurantID: row.RestaurantID,
		UserEmail:    row.UserEmail,
	}
}

// RegisterRoutes sets up the review routes on the /restaurants WebService.
func (ctl *ReviewController) RegisterRoutes(ws *restful.WebService) {
	ws.Route(ws.GET("/{restaurant-id}/reviews").To(ctl.listReviewsHandler).
		Doc("List all reviews for a restaurant with author emails").
		Param(ws.PathParameter("restaurant-id", "Identifier of the restaurant").DataType("integer")).
		Metadata(restfulspec.KeyOpenAPITags, []string{"reviews"}).
		Writes([]ReviewListItem{}).
		Returns(http.StatusOK, "Reviews listed", []ReviewListItem{}))

	ws.Route(ws.POST("/{restaurant-id}/reviews").Filter(auth.SessionFilter()).To(ctl.createReviewHandler).
		Doc("Create a review owned by the current session").
		Param(ws.PathParameter("restaurant-id", "Identifier of the restaurant").DataType("integer")).
		Metadata(restfulspec.KeyOpenAPITags, []string{"reviews"}).
		Reads(services.ReviewInput{}).
		Returns(http.StatusCreated, "Review created", CreatedReviewResponse{}).
		Returns(http.StatusBadRequest, "Invalid input", ValidationErrorResponse{}).
		Returns(http.StatusUnauthorized, "Unauthorized", MessageResponse{}))

	ws.Route(ws.GET("/{restaurant-id}/reviews/{review-id}").To(ctl.getReviewHandler).
		Doc("Get a single review with author email and timestamps").
		Param(ws.PathParameter("restaurant-id", "Identifier of the restaurant").DataType("integer")).
		Param(ws.PathParameter("review-id", "Identifier of the review").DataType("integer")).
		Metadata(restfulspec.KeyOpenAPITags, []string{"reviews"}).
		Writes(SingleReviewResponse{}).
		Returns(http.StatusOK, "Review found", SingleReviewResponse{}).
		Returns(http.StatusNotFound, "Review not found", MessageResponse{}))

	ws.Route(ws.PUT("/{restaurant-id}/reviews/{review-id}").Filter(auth.SessionFilter()).To(ctl.updateReviewHandler).
		Doc("Update a review; only its author may do so").
		Param(ws.PathParameter("restaurant-id", "Identifier of the restaurant").DataType("integer")).
		Param(ws.PathParameter("review-id", "Identifier of the review").DataType("integer")).
		Metadata(restfulspec.KeyOpenAPITags, []string{"reviews"}).
		Reads(services.ReviewInput{}).
		Returns(http.StatusOK, "Review updated", UpdatedReviewResponse{}).
		Returns(http.StatusBadRequest, "Invalid input", ValidationErrorResponse{}).
		Returns(http.StatusUnauthorized, "Unauthorized", MessageResponse{}).
		Returns(http.StatusForbidden, "Not the author", MessageResponse{}).
		Returns(http.StatusNotFound, "Review not found", MessageResponse{}))

	ws.Route(ws.DELETE("/{restaurant-id}/reviews/{review-id}").Filter(auth.SessionFilter()).To(ctl.deleteReviewHandler).
		Doc("Delete a review; only its author may do so").
		Param(ws.PathParameter("restaurant-id", "Identifier of the restaurant").DataType("integer")).
		Param(ws.PathParameter("review-id", "Identifier of the review").DataType("integer")).
		Metadata(restfulspec.KeyOpenAPITags, []string{"reviews"}).
		Returns(http.StatusOK, "Review deleted", MessageResponse{}).
		Returns(http.StatusUnauthorized, "Unauthorized", MessageResponse{}).
		Returns(http.StatusForbidden, "Not the author", MessageResponse{}).
		Returns(http.StatusNotFound, "Review not found", MessageResponse{}))
}

func (ctl *ReviewController) listReviewsHandler(request *restful.Request, response *restful.Response) {
	restaurantID, ok := parseIDParameter(request, response, "restaurant-id")
	if !ok {
		return
	}

	rows, err := ctl.reviewService.ListReviews(restaurantID)
	if err != nil {
		_ = response.WriteHeaderAndJson(http.StatusInternalServerError, MessageResponse{Message: "Failed to list reviews"}, restful.MIME_JSON)
		return
	}

	items := make([]ReviewListItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, mapRowToListItem(row))
	}

	_ = response.WriteHeaderAndJson(http.StatusOK, items, restful.MIME_JSON)
}

func (ctl *ReviewController) createReviewHandler(request *restful.Request, response *restful.Response) {
	restaurantID, ok := parseIDParameter(request, response, "restaurant-id")
	if !ok {
		return
	}
	userID, ok := auth.SessionUserID(request)
	if !ok {
		_ = response.WriteHeaderAndJson(http.StatusUnauthorized, MessageResponse{Message: "Authentication required"}, restful.MIME_JSON)
		return
	}

	input := new(services.ReviewInput)
	if err := request.ReadEntity(input); err != nil {
		_ = response.WriteHeaderAndJson(http.StatusBadRequest, MessageResponse{Message: "Invalid request body: " + err.Error()}, restful.MIME_JSON)
		return
	}

	review, err := ctl.reviewService.CreateReview(restaurantID, userID, input)
	if err != nil {
		writeServiceError(response, err, "Review not found!", "")
		return
	}

	_ = response.WriteHeaderAndJson(http.StatusCreated, mapReviewToCreated(review), restful.MIME_JSON)
}

func (ctl *ReviewController) getReviewHandler(request *restful.Request, response *restful.Response) {
	restaurantID, ok := parseIDParameter(request, response, "restaurant-id")
	if !ok {
		return
	}
	reviewID, ok := parseIDParameter(request, response, "review-id")
	if !ok {
		return
	}

	row, err := ctl.reviewService.GetReview(restaurantID, reviewID)
	if err != nil {
		writeServiceError(response, err, "Review not found!", "")
		return
	}

	_ = response.WriteHeaderAndJson(http.StatusOK, SingleReviewResponse{
		ID:           row.ID,
		Content:      row.Content,
		Rating:       row.Rating,
		UserID:       row.UserID,
		RestaurantID: row.RestaurantID,
		UserEmail:    row.UserEmail,
		Timestamp:    row.Timestamp,
		UpdatedAt:    row.UpdatedAt,
	}, restful.MIME_JSON)
}

func (ctl *ReviewController) updateReviewHandler(request *restful.Request, response *restful.Response) {
	restaurantID, ok := parseIDParameter(request, response, "restaurant-id")
	if !ok {
		return
	}
	reviewID, ok := parseIDParameter(request, response, "review-id")
	if !ok {
		return
	}
	userID, ok := auth.SessionUserID(request)
	if !ok {
		_ = response.WriteHeaderAndJson(http.StatusUnauthorized, MessageResponse{Message: "Authentication required"}, restful.MIME_JSON)
		return
	}

	input := new(services.ReviewInput)
	if err := request.ReadEntity(input); err != nil {
		_ = response.WriteHeaderAndJson(http.StatusBadRequest, MessageResponse{Message: "Invalid request body: " + err.Error()}, restful.MIME_JSON)
		return
	}

	review, err := ctl.reviewService.UpdateReview(restaurantID, reviewID, userID, input)
	if err != nil {
		writeServiceError(response, err, "Review not found!", "Unauthorized! You can only update your own reviews.")
		return
	}

	_ = response.WriteHeaderAndJson(http.StatusOK, UpdatedReviewResponse{
		ID:           review.ID,
		Content:      review.Content,
		Rating:       review.Rating,
		UserID:       review.UserID,
		RestaurantID: review.RestaurantID,
		UpdatedAt:    review.UpdatedAt,
	}, restful.MIME_JSON)
}

func (ctl *ReviewController) deleteReviewHandler(request *restful.Request, response *restful.Response) {
	restaurantID, ok := parseIDParameter(request, response, "restaurant-id")
	if !ok {
		return
	}
	reviewID, ok := parseIDParameter(request, response, "review-id")
	if !ok {
		return
	}
	userID, ok := auth.SessionUserID(request)
	if !ok {
		_ = response.WriteHeaderAndJson(http.StatusUnauthorized, MessageResponse{Message: "Authentication required"}, restful.MIME_JSON)
		return
	}

	if err := ctl.reviewService.DeleteReview(restaurantID, reviewID, userID); err != nil {
		writeServiceError(response, err, "Review not found!", "Unauthorized! You can only delete your own reviews.")
		return
	}

	_ = response.WriteHeaderAndJson(http.StatusOK, MessageResponse{Message: "Review deleted!"}, restful.MIME_JSON)
}

func mapReviewToCreated(review *models.Review) CreatedReviewResponse {
	return CreatedReviewResponse{
		ID:           review.ID,
		Content:      review.Content,
		Rating:       review.Rating,
		Timestamp:    review.Timestamp,
		UserID:       review.UserID,
		RestaurantID: review.RestaurantID,
	}
}
