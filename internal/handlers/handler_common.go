package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mindcare-app/mindcare_backend/internal/apperrors"
	"github.com/mindcare-app/mindcare_backend/internal/core/domain"
	"github.com/mindcare-app/mindcare_backend/internal/middleware"
)

// ErrorResponse is the generic error body for all handlers.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is a simple acknowledgement body.
type MessageResponse struct {
	Message string `json:"message"`
}

// handleServiceError maps service-layer sentinel errors onto HTTP responses.
// notFoundMsg is the body for ErrNotFound so callers can keep the resource
// name in the message; everything unexpected becomes a logged 500.
func handleServiceError(c *gin.Context, err error, notFoundMsg string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: notFoundMsg})
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrDuplicate), errors.Is(err, apperrors.ErrConflict):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrForbidden):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "Forbidden"})
	case errors.Is(err, apperrors.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
	default:
		logger.Error("Unhandled service error", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
	}
}

// requireCaller fetches the authenticated caller or aborts with 401. The auth
// middleware always sets it on protected routes, so a miss means a wiring bug.
func requireCaller(c *gin.Context) (domain.Caller, bool) {
	caller, found := middleware.GetCallerFromContext(c)
	if !found {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Caller missing from context on protected route")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return domain.Caller{}, false
	}
	return caller, true
}
