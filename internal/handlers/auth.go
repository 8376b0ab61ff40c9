package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/notebook-gallery-backend/internal/requestdata"
)

type AuthHandler struct{}

func NewAuthHandler() *AuthHandler {
	return &AuthHandler{}
}

// GET /api/auth/me
// Anonymous callers get a null body, matching the public gallery contract.
func (h *AuthHandler) Me(c *gin.Context) {
	caller := requestdata.GetCaller(c.Request.Context())
	if caller == nil {
		RespondOK(c, nil)
		return
	}
	RespondOK(c, gin.H{
		"id":   caller.UserID,
		"name": caller.Name,
	})
}
