package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appErrors "github.com/aman-a-k/HOSTEL-MANAGEMENT---SKILL-LAB/pkg/errors"
)

// JSON sends a success payload as-is. Handlers own the body shape; the
// frontend consumes exact keys like {"complaints": [...]} and {"token": ...}.
func JSON(c *gin.Context, status int, payload interface{}) {
	c.Header("Cache-Control", "no-store")
	c.Header("Pragma", "no-cache")
	c.JSON(status, payload)
}

// Created responds with HTTP 201 Created.
func Created(c *gin.Context, payload interface{}) {
	JSON(c, http.StatusCreated, payload)
}

// Error converts the error to its HTTP status and writes {"error": message}.
// Wrapped causes stay server-side; only the message crosses the wire.
func Error(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	c.Header("Cache-Control", "no-store")
	c.Header("Pragma", "no-cache")
	c.JSON(appErr.Status, gin.H{"error": appErr.Message})
}
