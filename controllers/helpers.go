package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"blog-restful/services"

	restful "github.com/emicklei/go-restful/v3"
)

// DeletedResponse is the body returned by the delete endpoints.
type DeletedResponse struct {
	Deleted bool `json:"deleted"`
}

// ErrorResponse documents the error body shape for OpenAPI.
type ErrorResponse struct {
	Message string `json:"message"`
}

// getRequestingUserID extracts the user ID set by auth.AuthFilter.
func getRequestingUserID(request *restful.Request) (uint, bool) {
	userIDAttr := request.Attribute("user_id")
	if userIDAttr == nil {
		return 0, false
	}
	userID, ok := userIDAttr.(uint)
	return userID, ok
}

// getRequestingEmail extracts the email set by auth.AuthFilter.
func getRequestingEmail(request *restful.Request) (string, bool) {
	emailAttr := request.Attribute("email")
	if emailAttr == nil {
		return "", false
	}
	email, ok := emailAttr.(string)
	return email, ok
}

// parseIDParam parses a numeric path parameter.
func parseIDParam(request *restful.Request, name string) (uint, error) {
	id, err := strconv.ParseUint(request.PathParameter(name), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

func writeUnidentified(response *restful.Response) {
	_ = response.WriteHeaderAndJson(http.StatusUnauthorized, ErrorResponse{Message: "Unauthorized: Cannot identify requesting user"}, restful.MIME_JSON)
}

func writeBadID(response *restful.Response) {
	_ = response.WriteHeaderAndJson(http.StatusBadRequest, ErrorResponse{Message: "Invalid id format"}, restful.MIME_JSON)
}

// handleServiceError translates the service error taxonomy to HTTP responses.
func handleServiceError(response *restful.Response, err error) {
	statusCode := http.StatusInternalServerError
	message := "An internal error occurred"

	switch {
	case errors.Is(err, services.ErrValidation):
		statusCode = http.StatusBadRequest
		message = err.Error()
	case errors.Is(err, services.ErrNotFound):
		statusCode = http.StatusNotFound
		message = err.Error()
	case errors.Is(err, services.ErrConflict):
		statusCode = http.StatusConflict
		message = err.Error()
	case errors.Is(err, services.ErrInvalidCredentials):
		statusCode = http.StatusUnauthorized
		message = err.Error()
	case errors.Is(err, services.ErrForbidden):
		statusCode = http.StatusForbidden
		message = err.Error()
	}

	_ = response.WriteHeaderAndJson(statusCode, ErrorResponse{Message: message}, restful.MIME_JSON)
}
