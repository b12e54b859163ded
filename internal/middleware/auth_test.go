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

	"mercus/internal/service"
)

const testSecret = "test-secret"

func signToken(t *testing.T, nivel string, ttl time.Duration) string {
	t.Helper()
	claims := service.Claims{
		UserID:      7,
		Nome:        "Ana",
		NivelAcesso: nivel,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return token
}

func protectedRouter(roles ...string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	grp := r.Group("/", JWTAuth(testSecret))
	if len(roles) > 0 {
		grp.Use(RequireRole(roles...))
	}
	grp.GET("/ping", func(c *gin.Context) {
		claims := GetClaims(c)
		c.JSON(http.StatusOK, gin.H{"user_id": claims.UserID})
	})
	return r
}

func doGet(r *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestJWTAuthMissingToken(t *testing.T) {
	w := doGet(protectedRouter(), "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)
}

func TestJWTAuthValidToken(t *testing.T) {
	w := doGet(protectedRouter(), signToken(t, "vendedor", time.Hour))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":7`)
}

func TestJWTAuthExpiredToken(t *testing.T) {
	w := doGet(protectedRouter(), signToken(t, "vendedor", -time.Minute))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireRoleBlocksSeller(t *testing.T) {
	r := protectedRouter("admin")

	w := doGet(r, signToken(t, "vendedor", time.Hour))
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doGet(r, signToken(t, "admin", time.Hour))
	assert.Equal(t, http.StatusOK, w.Code)
}
