package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/aman-a-k/HOSTEL-MANAGEMENT---SKILL-LAB/internal/middleware"
	"github.com/aman-a-k/HOSTEL-MANAGEMENT---SKILL-LAB/internal/models"
)

func claimsFromContext(c *gin.Context) *models.JWTClaims {
	value, exists := c.Get(middleware.ContextUserKey)
	if !exists {
		return nil
	}
	claims, ok := value.(*models.JWTClaims)
	if !ok {
		return nil
	}
	return claims
}
