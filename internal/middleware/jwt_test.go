package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aman-a-k/HOSTEL-MANAGEMENT---SKILL-LAB/internal/models"
	"github.com/aman-a-k/HOSTEL-MANAGEMENT---SKILL-LAB/internal/service"
)

const testSecret = "test-secret"

func testAuthService() *service.AuthService {
	return service.NewAuthService(nil, nil, nil, nil, service.AuthConfig{Secret: testSecret, Expiry: time.Hour})
}

func signTestToken(t *testing.T, secret string, role models.UserRole) string {
	t.Helper()
	claims := &models.JWTClaims{
		UserID: "user-1",
		Email:  "user@hostel.com",
		Role:   role,
		Name:   "Test User",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func runJWT(t *testing.T, authorization string) (*httptest.ResponseRecorder, *gin.Context) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Request = httptest.NewRequest(http.MethodGet, "/profile", nil)
	if authorization != "" {
		c.Request.Header.Set("Authorization", authorization)
	}
	JWT(testAuthService())(c)
	return recorder, c
}

func TestJWTMissingHeader(t *testing.T) {
	recorder, c := runJWT(t, "")
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.True(t, c.IsAborted())
	assert.JSONEq(t, `{"error":"authentication required"}`, recorder.Body.String())
}

func TestJWTMalformedHeader(t *testing.T) {
	recorder, _ := runJWT(t, "Token abc123")
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.JSONEq(t, `{"error":"authentication required"}`, recorder.Body.String())
}

func TestJWTInvalidToken(t *testing.T) {
	token := signTestToken(t, "wrong-secret", models.RoleStudent)
	recorder, _ := runJWT(t, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.JSONEq(t, `{"error":"invalid token"}`, recorder.Body.String())
}

func TestJWTValidTokenAttachesClaims(t *testing.T) {
	token := signTestToken(t, testSecret, models.RoleStudent)
	recorder, c := runJWT(t, "Bearer "+token)
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.False(t, c.IsAborted())

	claimsValue, exists := c.Get(ContextUserKey)
	require.True(t, exists)
	claims := claimsValue.(*models.JWTClaims)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, models.RoleStudent, claims.Role)
}
