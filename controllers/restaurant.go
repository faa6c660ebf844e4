package controllers

import (
	"net/http"
	"strconv"

	"tastebook/models"
	"tastebook/services"

	restfulspec "github.com/emicklei/go-restful-openapi/v2"
	restful "github.com/emicklei/go-restful/v3"
)

// RestaurantController handles the read-only restaurant listing endpoints
type RestaurantController struct {
	restaurantService services.RestaurantService
}

// NewRestaurantController creates a RestaurantController instance
func NewRestaurantController(restaurantService services.RestaurantService) *RestaurantController {
	return &RestaurantController{restaurantService: restaurantService}
}

// RestaurantSummary is the reduced projection used by the listing
type RestaurantSummary struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
	Image    string `json:"image"`
}

// RestaurantDetail is the full projection plus the computed average rating
type RestaurantDetail struct {
	ID            uint    `json:"id"`
	Name          string  `json:"name"`
	Location      string  `json:"location"`
	Description   string  `json:"description"`
	Image         string  `json:"image"`
	AverageRating float64 `json:"average_rating"`
}

func mapRestaurantToSummary(restaurant models.Restaurant) RestaurantSummary {
	return RestaurantSummary{
		ID:       restaurant.ID,
		Name:     restaurant.Name,
		Location: restaurant.Location,
		Image:    restaurant.Image,
	}
}

// RegisterRoutes sets up the restaurant routes for a go-restful WebService.
// The review routes are registered on the same WebService by ReviewController
// since both live under the /restaurants root path.
func (ctl *RestaurantController) RegisterRoutes(ws *restful.WebService) {
	ws.Path("/restaurants").Consumes(restful.MIME_JSON).Produces(restful.MIME_JSON)

	ws.Route(ws.GET("").To(ctl.listRestaurantsHandler).
		Doc("List all restaurants").
		Metadata(restfulspec.KeyOpenAPITags, []string{"restaurants"}).
		Writes([]RestaurantSummary{}).
		Returns(http.StatusOK, "Restaurants listed", []RestaurantSummary{}))

	ws.Route(ws.GET("/{restaurant-id}").To(ctl.getRestaurantHandler).
		Doc("Get a restaurant with its average review rating").
		Param(ws.PathParameter("restaurant-id", "Identifier of the restaurant").DataType("integer")).
		Metadata(restfulspec.KeyOpenAPITags, []string{"restaurants"}).
		Writes(RestaurantDetail{}).
		Returns(http.StatusOK, "Restaurant found", RestaurantDetail{}).
		Returns(http.StatusNotFound, "Restaurant not found", MessageResponse{}))
}

func (ctl *RestaurantController) listRestaurantsHandler(request *restful.Request, response *restful.Response) {
	restaurants, err := ctl.restaurantService.ListRestaurants()
	if err != nil {
		_ = response.WriteHeaderAndJson(http.StatusInternalServerError, MessageResponse{Message: "Failed to list restaurants"}, restful.MIME_JSON)
		return
	}

	summaries := make([]RestaurantSummary, 0, len(restaurants))
	for _, restaurant := range restaurants {
		summaries = append(summaries, mapRestaurantToSummary(restaurant))
	}

	_ = response.WriteHeaderAndJson(http.StatusOK, summaries, restful.MIME_JSON)
}

func (ctl *RestaurantController) getRestaurantHandler(request *restful.Request, response *restful.Response) {
	restaurantID, ok := parseIDParameter(request, response, "restaurant-id")
	if !ok {
		return
	}

	restaurant, avg, err := ctl.restaurantService.GetRestaurant(restaurantID)
	if err != nil {
		writeServiceError(response, err, "Restaurant not found!", "")
		return
	}

	detail := RestaurantDetail{
		ID:            restaurant.ID,
		Name:          restaurant.Name,
		Location:      restaurant.Location,
		Description:   restaurant.Description,
		Image:         restaurant.Image,
		AverageRating: avg,
	}
	_ = response.WriteHeaderAndJson(http.StatusOK, detail, restful.MIME_JSON)
}

// parseIDParameter reads a numeric path parameter, writing a 404 when it is
// not a positive integer (an unparseable id cannot name any record).
func parseIDParameter(request *restful.Request, response *restful.Response, name string) (uint, bool) {
	raw := request.PathParameter(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		_ = response.WriteHeaderAndJson(http.StatusNotFound, MessageResponse{Message: "Resource not found"}, restful.MIME_JSON)
		return 0, false
	}
	return uint(id), true
}
