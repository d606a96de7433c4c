// Package handlers provides HTTP handler implementations for the public API.
//
// This file defines the response utilities shared by all endpoints: the
// structured error envelope, the mapping from service errors to statuses, and
// helpers for common success responses.
//
// Conventions:
//   - All error responses return an ErrorResponse with a stable `code`.
//   - `fail()` centralizes error logging and formatting; 5xx responses are
//     logged with the request-scoped logger.
//   - `failErr()` translates service errors: validation → 400,
//     not found → 404, anything else → 500 with a generic message.
//
// Example error response:
//
//	HTTP/1.1 404 Not Found
//	{
//	  "request_id": "123e4567-e89b-12d3-a456-426614174000",
//	  "code": "not_found",
//	  "message": "recipe not found"
//	}
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-recipe-backend/internal/http/middleware"
	"github.com/tbourn/go-recipe-backend/internal/services"
)

// ErrorResponse is the standard error envelope returned by all endpoints.
type ErrorResponse struct {
	// Correlates server logs and client errors
	RequestID string `json:"request_id,omitempty" example:"123e4567-e89b-12d3-a456-426614174000"`
	// Stable, machine-readable code (see errors.go constants)
	Code string `json:"code" example:"not_found"`
	// Human-readable message (safe to show to users)
	Message string `json:"message" example:"recipe not found"`
	// Offending request field, set for validation_failed only
	Field string `json:"field,omitempty" example:"ingredients[0].unit"`
}

// respond writes the error envelope and aborts. cause, when non-nil, is
// attached to the 5xx log line and never sent to the client.
func respond(c *gin.Context, status int, code, msg, field string, cause error) {
	resp := ErrorResponse{
		RequestID: c.Writer.Header().Get("X-Request-ID"),
		Code:      code,
		Message:   msg,
		Field:     field,
	}

	if status >= http.StatusInternalServerError {
		ev := middleware.LoggerFrom(c).Error().
			Int("status", status).
			Str("code", code).
			Str("message", msg)
		if cause != nil {
			ev = ev.Err(cause)
		}
		ev.Msg("api error")
	}

	c.AbortWithStatusJSON(status, resp)
}

// fail aborts the request with a structured error.
func fail(c *gin.Context, status int, code, msg string) {
	respond(c, status, code, msg, "", nil)
}

// Fail is the exported variant of fail(), used by the router for 404/405
// and by middleware-adjacent code.
func Fail(c *gin.Context, status int, code, msg string) { fail(c, status, code, msg) }

// failErr maps an error returned by a service to the matching response.
func failErr(c *gin.Context, err error) {
	var ve *services.ValidationError
	switch {
	case errors.As(err, &ve):
		respond(c, http.StatusBadRequest, ErrCodeValidation, ve.Err.Error(), ve.Field, nil)
	case errors.Is(err, services.ErrRecipeNotFound), errors.Is(err, services.ErrIngredientNotFound):
		fail(c, http.StatusNotFound, ErrCodeNotFound, err.Error())
	default:
		respond(c, http.StatusInternalServerError, ErrCodeInternal, "internal server error", "", err)
	}
}

// ok writes a success JSON response.
func ok(c *gin.Context, status int, body any) {
	c.JSON(status, body)
}

// noContent writes an HTTP 204 No Content response.
func noContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
