package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/aman-a-k/HOSTEL-MANAGEMENT---SKILL-LAB/internal/dto"
	"github.com/aman-a-k/HOSTEL-MANAGEMENT---SKILL-LAB/internal/models"
	appErrors "github.com/aman-a-k/HOSTEL-MANAGEMENT---SKILL-LAB/pkg/errors"
)

type mockLeaveRepo struct {
	leave     *models.Leave
	leaves    []models.Leave
	getErr    error
	listErr   error
	createErr error
	updateErr error

	created       *models.Leave
	updated       *models.Leave
	lastStudentID string
}

func (m *mockLeaveRepo) Create(ctx context.Context, leave *models.Leave) error {
	if m.createErr != nil {
		return m.createErr
	}
	leave.ID = "leave-1"
	m.created = leave
	return nil
}

func (m *mockLeaveRepo) GetByID(ctx context.Context, id string) (*models.Leave, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.leave, nil
}

func (m *mockLeaveRepo) List(ctx context.Context, studentID string) ([]models.Leave, error) {
	m.lastStudentID = studentID
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.leaves, nil
}

func (m *mockLeaveRepo) Update(ctx context.Context, leave *models.Leave) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	m.updated = leave
	return nil
}

func newLeaveService(repo *mockLeaveRepo) *LeaveService {
	cache := NewCacheService(nil, nil, 0, zap.NewNop(), false)
	return NewLeaveService(repo, cache, validator.New(), zap.NewNop())
}

func TestLeaveServiceCreatePlainDates(t *testing.T) {
	repo := &mockLeaveRepo{}
	svc := newLeaveService(repo)

	leave, err := svc.Create(context.Background(), studentClaims(), dto.CreateLeaveRequest{
		StartDate: "2026-09-01",
		EndDate:   "2026-09-05",
		Reason:    "family function",
	})
	require.NoError(t, err)
	assert.Equal(t, "student-1", leave.StudentID)
	assert.Equal(t, models.LeaveStatusPending, leave.Status)
	assert.Equal(t, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), leave.StartDate)
}

func TestLeaveServiceCreateRFC3339Dates(t *testing.T) {
	repo := &mockLeaveRepo{}
	svc := newLeaveService(repo)

	leave, err := svc.Create(context.Background(), studentClaims(), dto.CreateLeaveRequest{
		StartDate: "2026-09-01T00:00:00Z",
		EndDate:   "2026-09-05T00:00:00Z",
		Reason:    "family function",
	})
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC), leave.EndDate)
}

func TestLeaveServiceCreateBadDate(t *testing.T) {
	repo := &mockLeaveRepo{}
	svc := newLeaveService(repo)

	_, err := svc.Create(context.Background(), studentClaims(), dto.CreateLeaveRequest{
		StartDate: "next monday",
		EndDate:   "2026-09-05",
		Reason:    "family function",
	})
	require.Error(t, err)
	assert.Equal(t, "invalid start date", appErrors.FromError(err).Message)
}

func TestLeaveServiceListScopesStudents(t *testing.T) {
	repo := &mockLeaveRepo{}
	svc := newLeaveService(repo)

	_, err := svc.List(context.Background(), studentClaims())
	require.NoError(t, err)
	assert.Equal(t, "student-1", repo.lastStudentID)

	_, err = svc.List(context.Background(), adminClaims())
	require.NoError(t, err)
	assert.Empty(t, repo.lastStudentID)
}

func TestLeaveServiceUpdateApprove(t *testing.T) {
	repo := &mockLeaveRepo{leave: &models.Leave{ID: "leave-1", Status: models.LeaveStatusPending}}
	svc := newLeaveService(repo)

	status := "approved"
	remarks := "have a safe trip"
	leave, err := svc.Update(context.Background(), "leave-1", dto.UpdateLeaveRequest{
		Status:       &status,
		AdminRemarks: &remarks,
	})
	require.NoError(t, err)
	assert.Equal(t, models.LeaveStatusApproved, leave.Status)
	assert.Equal(t, "have a safe trip", leave.AdminRemarks)
}

func TestLeaveServiceUpdateInvalidStatus(t *testing.T) {
	repo := &mockLeaveRepo{leave: &models.Leave{ID: "leave-1", Status: models.LeaveStatusPending}}
	svc := newLeaveService(repo)

	status := "maybe"
	_, err := svc.Update(context.Background(), "leave-1", dto.UpdateLeaveRequest{Status: &status})
	require.Error(t, err)
	assert.Equal(t, "invalid status", appErrors.FromError(err).Message)
}

func TestLeaveServiceUpdateNotFound(t *testing.T) {
	repo := &mockLeaveRepo{getErr: sql.ErrNoRows}
	svc := newLeaveService(repo)

	status := "approved"
	_, err := svc.Update(context.Background(), "leave-99", dto.UpdateLeaveRequest{Status: &status})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}
