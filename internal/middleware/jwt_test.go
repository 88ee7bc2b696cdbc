package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/pokecreche/pokecreche-api/internal/models"
	"github.com/pokecreche/pokecreche-api/internal/service"
)

const testSecret = "test_secret"

func newProtectedRouter(t *testing.T) (*gin.Engine, **models.JWTClaims) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	authService := service.NewAuthService(nil, nil, validator.New(), zap.NewNop(), service.AuthConfig{
		TokenSecret: testSecret,
		TokenExpiry: time.Hour,
	})

	var seen *models.JWTClaims
	r := gin.New()
	r.GET("/protected", JWT(authService), func(c *gin.Context) {
		if value, ok := c.Get(ContextUserKey); ok {
			seen = value.(*models.JWTClaims)
		}
		c.Status(http.StatusOK)
	})
	return r, &seen
}

func signToken(t *testing.T, secret string, expiry time.Duration) string {
	t.Helper()
	now := time.Now()
	claims := &models.JWTClaims{
		UserID: "teacher-1",
		Kind:   models.SubjectTeacher,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func TestJWTMissingHeader(t *testing.T) {
	r, seen := newProtectedRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Token ausente")
	assert.Nil(t, *seen)
}

func TestJWTNonBearerScheme(t *testing.T) {
	r, seen := newProtectedRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Basic abc123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Nil(t, *seen)
}

func TestJWTForgedToken(t *testing.T) {
	r, seen := newProtectedRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "other_secret", time.Hour))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Token inválido")
	assert.Nil(t, *seen)
}

func TestJWTExpiredToken(t *testing.T) {
	r, seen := newProtectedRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, -time.Minute))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Token inválido")
	assert.Nil(t, *seen)
}

func TestJWTValidTokenPopulatesClaims(t *testing.T) {
	r, seen := newProtectedRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, time.Hour))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, *seen)
	assert.Equal(t, "teacher-1", (*seen).UserID)
	assert.Equal(t, models.SubjectTeacher, (*seen).Kind)
}
