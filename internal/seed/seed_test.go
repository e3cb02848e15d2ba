package seed

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/aman-a-k/HOSTEL-MANAGEMENT---SKILL-LAB/internal/models"
)

type seedRepoMock struct {
	existing  map[string]*models.User
	findErr   error
	createErr error
	created   []*models.User
}

func (m *seedRepoMock) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	user, ok := m.existing[email]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return user, nil
}

func (m *seedRepoMock) Create(ctx context.Context, user *models.User) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.created = append(m.created, user)
	return nil
}

func TestSeederCreatesMissingAccounts(t *testing.T) {
	repo := &seedRepoMock{existing: map[string]*models.User{}}
	New(repo, zap.NewNop()).Run(context.Background())

	require.Len(t, repo.created, 2)

	admin := repo.created[0]
	assert.Equal(t, "admin@hostel.com", admin.Email)
	assert.Equal(t, models.RoleAdmin, admin.Role)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte("admin123")))

	student := repo.created[1]
	assert.Equal(t, "student@hostel.com", student.Email)
	assert.Equal(t, models.RoleStudent, student.Role)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(student.PasswordHash), []byte("student123")))
}

func TestSeederIsIdempotent(t *testing.T) {
	repo := &seedRepoMock{existing: map[string]*models.User{
		"admin@hostel.com":   {ID: "admin-1", Email: "admin@hostel.com"},
		"student@hostel.com": {ID: "student-1", Email: "student@hostel.com"},
	}}
	New(repo, zap.NewNop()).Run(context.Background())

	assert.Empty(t, repo.created)
}

func TestSeederSurvivesFailures(t *testing.T) {
	repo := &seedRepoMock{existing: map[string]*models.User{}, createErr: errors.New("db down")}
	// Must not panic or abort; failures are logged only.
	New(repo, zap.NewNop()).Run(context.Background())
	assert.Empty(t, repo.created)
}
