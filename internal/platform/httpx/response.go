package httpx

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "mindmate/internal/platform/errors"
)

type APIError struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

// StatusFor maps the application sentinels onto HTTP status codes.
func StatusFor(err error) (int, string) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound, "not_found"
	case errors.Is(err, apperrors.ErrInvalidInput):
		return http.StatusBadRequest, "invalid_input"
	case errors.Is(err, apperrors.ErrEmailTaken):
		return http.StatusConflict, "email_taken"
	case errors.Is(err, apperrors.ErrActiveMeditationExists):
		return http.StatusConflict, "active_meditation_exists"
	case errors.Is(err, apperrors.ErrNoActiveMeditation):
		return http.StatusNotFound, "no_active_meditation"
	default:
		return http.StatusInternalServerError, "internal"
	}
}

func RespondError(c *gin.Context, err error) {
	status, code := StatusFor(err)
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	c.JSON(status, ErrorEnvelope{Error: APIError{Message: msg, Code: code}})
}

func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

func RespondCreated(c *gin.Context, payload any) {
	c.JSON(http.StatusCreated, payload)
}

// BindJSON decodes the request body and reports a malformed one as invalid input.
func BindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		RespondError(c, errors.Join(apperrors.ErrInvalidInput, err))
		return false
	}
	return true
}

// QueryLimit reads ?limit=; absent means zero so the usecase applies its default.
func QueryLimit(c *gin.Context) (int, bool) {
	raw := c.Query("limit")
	if raw == "" {
		return 0, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		RespondError(c, errors.Join(apperrors.ErrInvalidInput, errors.New("limit must be a non-negative integer")))
		return 0, false
	}
	return n, true
}
