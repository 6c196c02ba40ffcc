package handlers

import (
	"errors"
	"net/http"

	"github.com/geocoder89/campushub/internal/repo"
	"github.com/gin-gonic/gin"
)

type APIError struct {
	Code      string      `json:"code"`
	Message   string      `json:"message"`
	RequestID string      `json:"requestId,omitempty"`
	Details   interface{} `json:"details,omitempty"`
}

func requestIDFrom(ctx *gin.Context) string {
	v, ok := ctx.Get("request_id")

	if ok {
		s, ok := v.(string)
		if ok && s != "" {
			return s
		}
	}

	// fallback header
	return ctx.GetHeader("X-Request-Id")
}

func RespondError(ctx *gin.Context, status int, code, message string, details interface{}) {
	ctx.JSON(status, gin.H{
		"error": APIError{
			Code:      code,
			Message:   message,
			RequestID: requestIDFrom(ctx),
			Details:   details,
		},
	})
}

func RespondBadRequest(ctx *gin.Context, message string, details interface{}) {
	RespondError(ctx, http.StatusBadRequest, "invalid_request", message, details)
}

func RespondNotFound(ctx *gin.Context, message string) {
	RespondError(ctx, http.StatusNotFound, "not_found", message, nil)
}

func RespondInternal(ctx *gin.Context, message string) {
	RespondError(ctx, http.StatusInternalServerError, "internal_error", message, nil)
}

func RespondUnAuthorized(ctx *gin.Context, code, message string) {
	RespondError(ctx, http.StatusUnauthorized, code, message, nil)
}

// RespondRepoError is the single place store errors become HTTP responses.
// notFoundMessage keeps 404 bodies resource-specific.
func RespondRepoError(ctx *gin.Context, err error, notFoundMessage string) {
	switch {
	case errors.Is(err, repo.ErrInvalidID):
		RespondError(ctx, http.StatusBadRequest, "malformed_id", "Invalid id", nil)
	case errors.Is(err, repo.ErrNotFound):
		RespondNotFound(ctx, notFoundMessage)
	case errors.Is(err, repo.ErrEmailTaken):
		RespondError(ctx, http.StatusBadRequest, "email_taken", "Email is already in use.", nil)
	default:
		RespondError(ctx, http.StatusInternalServerError, "internal_error", "Unexpected error", err.Error())
	}
}
