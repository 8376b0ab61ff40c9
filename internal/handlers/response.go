package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/notebook-gallery-backend/internal/services"
)

type APIError struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
	Field   string `json:"field,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

func RespondError(c *gin.Context, status int, code string, err error) {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	c.JSON(status, ErrorEnvelope{
		Error: APIError{
			Message: msg,
			Code:    code,
		},
	})
}

func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

// RespondServiceError maps the service error taxonomy onto HTTP statuses:
// validation → 400, authorization → 401, storage → 500, anything else → 500.
func RespondServiceError(c *gin.Context, err error) {
	var validationErr *services.ValidationError
	if errors.As(err, &validationErr) {
		c.JSON(http.StatusBadRequest, ErrorEnvelope{
			Error: APIError{
				Message: validationErr.Message,
				Code:    "validation_error",
				Field:   validationErr.Field,
			},
		})
		return
	}

	var authErr *services.AuthorizationError
	if errors.As(err, &authErr) {
		RespondError(c, http.StatusUnauthorized, "unauthorized", err)
		return
	}

	var storageErr *services.StorageError
	if errors.As(err, &storageErr) {
		RespondError(c, http.StatusInternalServerError, "storage_error", err)
		return
	}

	RespondError(c, http.StatusInternalServerError, "internal_error", err)
}
