package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aman-a-k/HOSTEL-MANAGEMENT---SKILL-LAB/internal/dto"
	"github.com/aman-a-k/HOSTEL-MANAGEMENT---SKILL-LAB/internal/middleware"
	"github.com/aman-a-k/HOSTEL-MANAGEMENT---SKILL-LAB/internal/models"
	appErrors "github.com/aman-a-k/HOSTEL-MANAGEMENT---SKILL-LAB/pkg/errors"
)

type announcementServiceMock struct {
	createResp *models.Announcement
	createErr  error
	listResp   []models.Announcement
	listErr    error
	deleteErr  error

	lastClaims *models.JWTClaims
	deletedID  string
}

func (m *announcementServiceMock) Create(ctx context.Context, claims *models.JWTClaims, req dto.CreateAnnouncementRequest) (*models.Announcement, error) {
	m.lastClaims = claims
	return m.createResp, m.createErr
}

func (m *announcementServiceMock) List(ctx context.Context) ([]models.Announcement, error) {
	return m.listResp, m.listErr
}

func (m *announcementServiceMock) Delete(ctx context.Context, id string) error {
	m.deletedID = id
	return m.deleteErr
}

func testAdminClaims() *models.JWTClaims {
	return &models.JWTClaims{UserID: "admin-1", Role: models.RoleAdmin, Name: "Admin User"}
}

func TestAnnouncementHandlerCreate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &announcementServiceMock{createResp: &models.Announcement{ID: "ann-1", Title: "Mess timings"}}
	handler := NewAnnouncementHandler(mockSvc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/announcement",
		bytes.NewBufferString(`{"title":"Mess timings","message":"Dinner until 9:30pm"}`))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Set(middleware.ContextUserKey, testAdminClaims())

	handler.Create(c)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "admin-1", mockSvc.lastClaims.UserID)
}

func TestAnnouncementHandlerListShape(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &announcementServiceMock{listResp: []models.Announcement{{ID: "ann-1"}}}
	handler := NewAnnouncementHandler(mockSvc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/announcements", nil)
	c.Set(middleware.ContextUserKey, testStudentClaims())

	handler.List(c)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Announcements []models.Announcement `json:"announcements"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Announcements, 1)
}

func TestAnnouncementHandlerDelete(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &announcementServiceMock{}
	handler := NewAnnouncementHandler(mockSvc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodDelete, "/announcement/ann-1", nil)
	c.Params = gin.Params{{Key: "id", Value: "ann-1"}}

	handler.Delete(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ann-1", mockSvc.deletedID)
	assert.JSONEq(t, `{"message":"announcement deleted"}`, w.Body.String())
}

func TestAnnouncementHandlerDeleteMissing(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &announcementServiceMock{deleteErr: appErrors.Clone(appErrors.ErrNotFound, "announcement not found")}
	handler := NewAnnouncementHandler(mockSvc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodDelete, "/announcement/ann-99", nil)
	c.Params = gin.Params{{Key: "id", Value: "ann-99"}}

	handler.Delete(c)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"announcement not found"}`, w.Body.String())
}
