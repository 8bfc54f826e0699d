package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"control-plane-backend/internal/auth"
	apperrors "control-plane-backend/internal/errors"
	"control-plane-backend/internal/logger"
	"control-plane-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const internalErrorMessage = "An internal error occurred"

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error   string      `json:"error" example:"not_found"`
	Message string      `json:"message" example:"organisation not found"`
	Details interface{} `json:"details,omitempty" swaggertype:"object"`
}

// classifyError maps a service error to its HTTP status and body. Persistence
// and unknown failures get an opaque message.
func classifyError(err error) (int, ErrorResponse) {
	var fieldErrs validator.ValidationErrors
	var validationErr *apperrors.ValidationError
	var notFoundErr *apperrors.NotFoundError
	var existsErr *apperrors.AlreadyExistsError
	var authnErr *apperrors.AuthenticationError
	var invariantErr *apperrors.InvariantViolationError

	switch {
	case errors.As(err, &fieldErrs):
		details := make(map[string]string, len(fieldErrs))
		for _, fe := range fieldErrs {
			details[fe.Field()] = fe.Tag()
		}
		return http.StatusBadRequest, ErrorResponse{Error: "validation_error", Message: "request validation failed", Details: details}
	case errors.As(err, &validationErr):
		resp := ErrorResponse{Error: "validation_error", Message: validationErr.Error()}
		if validationErr.Field != "" {
			resp.Details = map[string]string{validationErr.Field: validationErr.Message}
		}
		return http.StatusBadRequest, resp
	case errors.Is(err, apperrors.ErrInvalidPaginationParams):
		return http.StatusBadRequest, ErrorResponse{Error: "validation_error", Message: err.Error()}
	case errors.As(err, &notFoundErr):
		return http.StatusNotFound, ErrorResponse{Error: "not_found", Message: notFoundErr.Error()}
	case errors.As(err, &existsErr):
		return http.StatusConflict, ErrorResponse{Error: "conflict", Message: existsErr.Error()}
	case errors.As(err, &authnErr):
		return http.StatusUnauthorized, ErrorResponse{Error: "unauthorized", Message: authnErr.Error()}
	case apperrors.IsAuthorization(err):
		return http.StatusForbidden, ErrorResponse{Error: "forbidden", Message: err.Error()}
	case errors.As(err, &invariantErr):
		return http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "invariant_violation",
			Message: invariantErr.Message,
			Details: map[string]string{"rule": invariantErr.Rule},
		}
	case apperrors.IsTimeout(err):
		return http.StatusServiceUnavailable, ErrorResponse{Error: "timeout", Message: "The request timed out"}
	default:
		return http.StatusInternalServerError, ErrorResponse{Error: "internal_error", Message: internalErrorMessage}
	}
}

// respondError writes the error response and logs server-side failures with the full cause
func respondError(c *gin.Context, err error) {
	status, body := classifyError(err)

	entry := logger.WithContext(c.Request.Context()).WithError(err).WithField("status", status)
	if status >= http.StatusInternalServerError {
		entry.Error("request failed")
	} else {
		entry.Debug("request rejected")
	}

	c.JSON(status, body)
}

func respondBadBody(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation_error", Message: "Invalid request body", Details: err.Error()})
}

// parseUUIDParam parses a path parameter, writing a 400 on failure
func parseUUIDParam(c *gin.Context, name, label string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation_error", Message: "Invalid " + label + ": invalid UUID format"})
		return uuid.Nil, false
	}
	return id, true
}

// principal returns the principal resolved by the auth middleware
func principal(c *gin.Context) (uuid.UUID, bool) {
	principalID, ok := auth.GetPrincipalID(c)
	if !ok {
		respondError(c, apperrors.ErrMissingPrincipal)
		return uuid.Nil, false
	}
	return principalID, true
}

// paginationParams reads page and per_page. Absent values take the defaults;
// non-numeric values are rejected.
func paginationParams(c *gin.Context) (int, int, error) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		return 0, 0, apperrors.ErrInvalidPaginationParams
	}
	perPage, err := strconv.Atoi(c.DefaultQuery("per_page", strconv.Itoa(service.DefaultPerPage)))
	if err != nil {
		return 0, 0, apperrors.ErrInvalidPaginationParams
	}
	return page, perPage, nil
}
