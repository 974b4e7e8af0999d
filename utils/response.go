package utils

import (
	"errors"
	"net/http"
)

type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type OkResponse[T any] struct {
	Payload T `json:"payload"`
}

func CreateOkResponse[T any](obj T) (int, OkResponse[T]) {
	return http.StatusOK, OkResponse[T]{Payload: obj}
}

// CreateErrorResponse maps a service error onto the HTTP status and error
// code the API contract promises: 401 without a session, 403 for non-owners,
// 404 for unknown uuids, 400 for malformed input and 409 for duplicate
// memberships. The message is always the error's own text so callers can
// surface it verbatim.
func CreateErrorResponse(err error) (int, ErrorResponse) {
	switch {
	case errors.Is(err, ErrorUuidNotFound):
		return http.StatusNotFound, ErrorResponse{Code: -1, Message: err.Error()}
	case errors.Is(err, ErrorInvalidCredentials):
		return http.StatusBadRequest, ErrorResponse{Code: 1001, Message: err.Error()}
	case errors.Is(err, ErrorUsernameTaken):
		return http.StatusBadRequest, ErrorResponse{Code: 1002, Message: err.Error()}
	case errors.Is(err, ErrorValidationError),
		errors.Is(err, ErrorInvalidUrl),
		errors.Is(err, ErrorInvalidLiteratureType):
		return http.StatusBadRequest, ErrorResponse{Code: 2001, Message: err.Error()}
	case errors.Is(err, ErrorLibraryNameEmpty):
		return http.StatusBadRequest, ErrorResponse{Code: 3001, Message: err.Error()}
	case errors.Is(err, ErrorDuplicateMembership):
		return http.StatusConflict, ErrorResponse{Code: 3409, Message: err.Error()}
	// Permission / Access errors
	case errors.Is(err, ErrorUnauthorized),
		errors.Is(err, ErrorTokenInvalid),
		errors.Is(err, ErrorOpenIDAuthDisabled):
		return http.StatusUnauthorized, ErrorResponse{Code: 401, Message: err.Error()}
	case errors.Is(err, ErrorForbidden),
		errors.Is(err, ErrorNotLiteratureOwner),
		errors.Is(err, ErrorNotLibraryOwner):
		return http.StatusForbidden, ErrorResponse{Code: 403, Message: err.Error()}
	}

	return http.StatusInternalServerError, ErrorResponse{Code: 500, Message: err.Error()}
}

func CreateValidationError(err error) (int, ErrorResponse) {
	return http.StatusBadRequest, ErrorResponse{Code: 2001, Message: err.Error()}
}
