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

// LeaveService defines the leave operations the handler depends on.
type LeaveService interface {
	Create(ctx context.Context, claims *models.JWTClaims, req dto.CreateLeaveRequest) (*models.Leave, error)
	List(ctx context.Context, claims *models.JWTClaims) ([]models.Leave, error)
	Update(ctx context.Context, id string, req dto.UpdateLeaveRequest) (*models.Leave, error)
}

// LeaveHandler wires HTTP endpoints to the leave service.
type LeaveHandler struct {
	service LeaveService
}

// NewLeaveHandler creates a new handler.
func NewLeaveHandler(svc LeaveService) *LeaveHandler {
	return &LeaveHandler{service: svc}
}

// Create godoc
// @Summary Request leave
// @Description File a new absence request owned by the caller
// @Tags Leaves
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body dto.CreateLeaveRequest true "Leave payload"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /leave [post]
func (h *LeaveHandler) Create(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	var req dto.CreateLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid leave payload"))
		return
	}

	leave, err := h.service.Create(c.Request.Context(), claims, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, gin.H{
		"message": "leave request submitted",
		"leave":   leave,
	})
}

// List godoc
// @Summary List leave requests
// @Description Admins see all leave requests, students only their own
// @Tags Leaves
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]string
// @Router /leaves [get]
func (h *LeaveHandler) List(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	leaves, err := h.service.List(c.Request.Context(), claims)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, gin.H{"leaves": leaves})
}

// Update godoc
// @Summary Review a leave request
// @Description Admin review: approve or reject with remarks
// @Tags Leaves
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Leave ID"
// @Param payload body dto.UpdateLeaveRequest true "Review payload"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /leave/{id} [put]
func (h *LeaveHandler) Update(c *gin.Context) {
	var req dto.UpdateLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid review payload"))
		return
	}

	leave, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, gin.H{
		"message": "leave request updated",
		"leave":   leave,
	})
}
