package controllers

import (
	"errors"
	"net/http"

	"tastebook/services"

	restful "github.com/emicklei/go-restful/v3"
)

// writeServiceError translates a service-layer error into the HTTP response
// the taxonomy prescribes: validation 400, forbidden 403, not-found 404,
// anything else 500. Messages are resource-specific, so callers supply them.
func writeServiceError(response *restful.Response, err error, notFoundMsg, forbiddenMsg string) {
	if ve, ok := services.AsValidationError(err); ok {
		_ = response.WriteHeaderAndJson(http.StatusBadRequest, ValidationErrorResponse{Message: "Invalid input!", Errors: ve.Errors}, restful.MIME_JSON)
		return
	}
	if errors.Is(err, services.ErrForbidden) {
		_ = response.WriteHeaderAndJson(http.StatusForbidden, MessageResponse{Message: forbiddenMsg}, restful.MIME_JSON)
		return
	}
	if errors.Is(err, services.ErrNotFound) {
		_ = response.WriteHeaderAndJson(http.StatusNotFound, MessageResponse{Message: notFoundMsg}, restful.MIME_JSON)
		return
	}
	_ = response.WriteHeaderAndJson(http.StatusInternalServerError, MessageResponse{Message: "Internal Server Error"}, restful.MIME_JSON)
}
