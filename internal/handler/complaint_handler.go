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

// ComplaintService defines the complaint operations the handler depends on.
type ComplaintService interface {
	Create(ctx context.Context, claims *models.JWTClaims, req dto.CreateComplaintRequest) (*models.Complaint, error)
	List(ctx context.Context, claims *models.JWTClaims) ([]models.Complaint, error)
	Filter(ctx context.Context, claims *models.JWTClaims, query dto.ComplaintFilterQuery) ([]models.Complaint, error)
	Update(ctx context.Context, id string, req dto.UpdateComplaintRequest) (*models.Complaint, error)
}

// ComplaintHandler wires HTTP endpoints to the complaint service.
type ComplaintHandler struct {
	service ComplaintService
}

// NewComplaintHandler creates a new handler.
func NewComplaintHandler(svc ComplaintService) *ComplaintHandler {
	return &ComplaintHandler{service: svc}
}

// Create godoc
// @Summary File a complaint
// @Description File a new maintenance complaint owned by the caller
// @Tags Complaints
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body dto.CreateComplaintRequest true "Complaint payload"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /complaint [post]
func (h *ComplaintHandler) Create(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	var req dto.CreateComplaintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid complaint payload"))
		return
	}

	complaint, err := h.service.Create(c.Request.Context(), claims, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, gin.H{
		"message":   "complaint filed successfully",
		"complaint": complaint,
	})
}

// List godoc
// @Summary List complaints
// @Description Admins see all complaints, students only their own
// @Tags Complaints
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]string
// @Router /complaints [get]
func (h *ComplaintHandler) List(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	complaints, err := h.service.List(c.Request.Context(), claims)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, gin.H{"complaints": complaints})
}

// Filter godoc
// @Summary Filter complaints
// @Description Filter complaints by status, category and priority
// @Tags Complaints
// @Produce json
// @Security BearerAuth
// @Param status query string false "Status"
// @Param category query string false "Category"
// @Param priority query string false "Priority"
// @Success 200 {array} models.Complaint
// @Failure 401 {object} map[string]string
// @Router /complaints/filter [get]
func (h *ComplaintHandler) Filter(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	var query dto.ComplaintFilterQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid filter query"))
		return
	}

	complaints, err := h.service.Filter(c.Request.Context(), claims, query)
	if err != nil {
		response.Error(c, err)
		return
	}

	// The filter endpoint returns a bare array, unlike the list endpoint.
	response.JSON(c, http.StatusOK, complaints)
}

// Update godoc
// @Summary Update a complaint
// @Description Admin triage: status, priority, assignment and notes
// @Tags Complaints
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Complaint ID"
// @Param payload body dto.UpdateComplaintRequest true "Update payload"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /complaint/{id} [put]
func (h *ComplaintHandler) Update(c *gin.Context) {
	var req dto.UpdateComplaintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid update payload"))
		return
	}

	complaint, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, gin.H{
		"message":   "complaint updated successfully",
		"complaint": complaint,
	})
}
