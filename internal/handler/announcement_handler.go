package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aman-a-k/HOSTEL-MANAGEMENT---SKILL-LAB/internal/dto"
	"github.com/aman-a-k/HOSTEL-MANAGEMENT---SKILL-LAB/internal/models"
	appErrors "github.com/aman-a-k/HOSTEL-MANAGEMENT---SKILL-LAB/pkg/errors"
	"github.com/aman-a-k/HOSTEL-MANAGEMENT---SKILL-LAB/pkg/response"
)

// AnnouncementService defines the broadcast operations the handler depends on.
type AnnouncementService interface {
	Create(ctx context.Context, claims *models.JWTClaims, req dto.CreateAnnouncementRequest) (*models.Announcement, error)
	List(ctx context.Context) ([]models.Announcement, error)
	Delete(ctx context.Context, id string) error
}

// AnnouncementHandler wires HTTP endpoints to the announcement service.
type AnnouncementHandler struct {
	service AnnouncementService
}

// NewAnnouncementHandler creates a new handler.
func NewAnnouncementHandler(svc AnnouncementService) *AnnouncementHandler {
	return &AnnouncementHandler{service: svc}
}

// Create godoc
// @Summary Publish an announcement
// @Description Broadcast a message to hostel residents
// @Tags Announcements
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body dto.CreateAnnouncementRequest true "Announcement payload"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /announcement [post]
func (h *AnnouncementHandler) Create(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	var req dto.CreateAnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid announcement payload"))
		return
	}

	announcement, err := h.service.Create(c.Request.Context(), claims, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, gin.H{
		"message":      "announcement published",
		"announcement": announcement,
	})
}

// List godoc
// @Summary List announcements
// @Description Return unexpired announcements, newest first, capped at 20
// @Tags Announcements
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]string
// @Router /announcements [get]
func (h *AnnouncementHandler) List(c *gin.Context) {
	announcements, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, gin.H{"announcements": announcements})
}

// Delete godoc
// @Summary Delete an announcement
// @Description Remove an announcement by identifier
// @Tags Announcements
// @Produce json
// @Security BearerAuth
// @Param id path string true "Announcement ID"
// @Success 200 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /announcement/{id} [delete]
func (h *AnnouncementHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, gin.H{"message": "announcement deleted"})
}
