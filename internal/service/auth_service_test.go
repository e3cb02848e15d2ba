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
	"golang.org/x/crypto/bcrypt"

	"github.com/aman-a-k/HOSTEL-MANAGEMENT---SKILL-LAB/internal/dto"
	"github.com/aman-a-k/HOSTEL-MANAGEMENT---SKILL-LAB/internal/models"
	appErrors "github.com/aman-a-k/HOSTEL-MANAGEMENT---SKILL-LAB/pkg/errors"
)

type mockUserRepo struct {
	userByEmail    *models.User
	userByID       *models.User
	findByEmailErr error
	findByIDErr    error
	createErr      error
	created        *models.User
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	if m.findByEmailErr != nil {
		return nil, m.findByEmailErr
	}
	return m.userByEmail, nil
}

func (m *mockUserRepo) FindByID(ctx context.Context, id string) (*models.User, error) {
	if m.findByIDErr != nil {
		return nil, m.findByIDErr
	}
	return m.userByID, nil
}

func (m *mockUserRepo) Create(ctx context.Context, user *models.User) error {
	if m.createErr != nil {
		return m.createErr
	}
	user.ID = "user-1"
	m.created = user
	return nil
}

func newAuthService(repo *mockUserRepo) *AuthService {
	return NewAuthService(repo, nil, validator.New(), zap.NewNop(), AuthConfig{
		Secret: "test-secret",
		Expiry: time.Hour,
	})
}

func TestAuthServiceRegisterSuccess(t *testing.T) {
	repo := &mockUserRepo{findByEmailErr: sql.ErrNoRows}
	svc := newAuthService(repo)

	user, err := svc.Register(context.Background(), dto.RegisterRequest{
		Name:     "Jane Roe",
		Email:    "jane@hostel.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, "user-1", user.ID)
	assert.Equal(t, models.RoleStudent, user.Role)
	assert.NotEqual(t, "secret123", user.PasswordHash)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret123")))
}

func TestAuthServiceRegisterDuplicateEmail(t *testing.T) {
	repo := &mockUserRepo{userByEmail: &models.User{ID: "existing", Email: "jane@hostel.com"}}
	svc := newAuthService(repo)

	_, err := svc.Register(context.Background(), dto.RegisterRequest{
		Name:     "Jane Roe",
		Email:    "jane@hostel.com",
		Password: "secret123",
	})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrDuplicateEmail.Code, appErr.Code)
	assert.Equal(t, "user with this email already exists", appErr.Message)
}

func TestAuthServiceRegisterInvalidRole(t *testing.T) {
	repo := &mockUserRepo{findByEmailErr: sql.ErrNoRows}
	svc := newAuthService(repo)

	_, err := svc.Register(context.Background(), dto.RegisterRequest{
		Name:     "Jane Roe",
		Email:    "jane@hostel.com",
		Password: "secret123",
		Role:     "warden",
	})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
	assert.Equal(t, "invalid role", appErr.Message)
}

func TestAuthServiceRegisterMissingFields(t *testing.T) {
	repo := &mockUserRepo{}
	svc := newAuthService(repo)

	_, err := svc.Register(context.Background(), dto.RegisterRequest{Email: "jane@hostel.com"})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
}

func TestAuthServiceLoginSuccess(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("student123"), bcrypt.DefaultCost)
	repo := &mockUserRepo{userByEmail: &models.User{
		ID:           "user-1",
		Name:         "John Doe",
		Email:        "student@hostel.com",
		PasswordHash: string(hash),
		Role:         models.RoleStudent,
	}}
	svc := newAuthService(repo)

	token, user, err := svc.Login(context.Background(), dto.LoginRequest{
		Email:    "student@hostel.com",
		Password: "student123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "user-1", user.ID)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "student@hostel.com", claims.Email)
	assert.Equal(t, models.RoleStudent, claims.Role)
	assert.Equal(t, "John Doe", claims.Name)
}

func TestAuthServiceLoginUnknownEmail(t *testing.T) {
	repo := &mockUserRepo{findByEmailErr: sql.ErrNoRows}
	svc := newAuthService(repo)

	_, _, err := svc.Login(context.Background(), dto.LoginRequest{
		Email:    "nobody@hostel.com",
		Password: "whatever",
	})
	require.Error(t, err)
	assert.Equal(t, "invalid email or password", appErrors.FromError(err).Message)
}

func TestAuthServiceLoginWrongPassword(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("student123"), bcrypt.DefaultCost)
	repo := &mockUserRepo{userByEmail: &models.User{
		ID:           "user-1",
		Email:        "student@hostel.com",
		PasswordHash: string(hash),
		Role:         models.RoleStudent,
	}}
	svc := newAuthService(repo)

	_, _, err := svc.Login(context.Background(), dto.LoginRequest{
		Email:    "student@hostel.com",
		Password: "wrong",
	})
	require.Error(t, err)
	// Identical message for unknown email and wrong password.
	assert.Equal(t, "invalid email or password", appErrors.FromError(err).Message)
}

func TestAuthServiceValidateTokenRejectsTampered(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("pw"), bcrypt.DefaultCost)
	repo := &mockUserRepo{userByEmail: &models.User{ID: "user-1", Email: "a@b.com", PasswordHash: string(hash)}}
	svc := newAuthService(repo)

	token, _, err := svc.Login(context.Background(), dto.LoginRequest{Email: "a@b.com", Password: "pw"})
	require.NoError(t, err)

	other := NewAuthService(repo, nil, validator.New(), zap.NewNop(), AuthConfig{Secret: "different", Expiry: time.Hour})
	_, err = other.ValidateToken(token)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrInvalidToken.Code, appErrors.FromError(err).Code)
}

func TestAuthServiceProfileNotFound(t *testing.T) {
	repo := &mockUserRepo{findByIDErr: sql.ErrNoRows}
	svc := newAuthService(repo)

	_, err := svc.Profile(context.Background(), "ghost")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}
