package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("p@ss")
	require.NoError(t, err)

	assert.True(t, CheckPasswordHash("p@ss", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
}

func TestPasswordHashesAreSalted(t *testing.T) {
	first, err := HashPassword("p@ss")
	require.NoError(t, err)
	second, err := HashPassword("p@ss")
	require.NoError(t, err)

	assert.NotEqual(t, first, second, "distinct salts must yield distinct hashes")
	assert.True(t, CheckPasswordHash("p@ss", first))
	assert.True(t, CheckPasswordHash("p@ss", second))
}

func gateRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/any", RequireRole(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"role": c.GetString("role")})
	})
	r.GET("/dispatch", RequireRole("admin", "dispatcher"), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func get(r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequireRoleRejectsMissingToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := gateRouter()

	w := get(r, "/any", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireRoleRejectsGarbageToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := gateRouter()

	w := get(r, "/any", "not-a-jwt")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireRoleRejectsUnknownRoleClaim(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	token, err := GenerateToken("id-1", "tester", "superuser")
	require.NoError(t, err)

	w := get(gateRouter(), "/any", token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireRoleAllowList(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := gateRouter()

	fieldToken, err := GenerateToken("id-2", "crew", "field")
	require.NoError(t, err)
	adminToken, err := GenerateToken("id-3", "boss", "admin")
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, get(r, "/any", fieldToken).Code)
	assert.Equal(t, http.StatusForbidden, get(r, "/dispatch", fieldToken).Code)
	// admin passes wherever dispatcher is allowed
	assert.Equal(t, http.StatusOK, get(r, "/dispatch", adminToken).Code)
}

func TestRequireRoleRejectsWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "first-secret")
	token, err := GenerateToken("id-4", "tester", "admin")
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "second-secret")
	w := get(gateRouter(), "/dispatch", token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRoleFromRequest(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	gin.SetMode(gin.TestMode)

	token, err := GenerateToken("id-5", "boss", "admin")
	require.NoError(t, err)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodPost, "/", nil)
	c.Request.Header.Set("Authorization", "Bearer "+token)
	assert.Equal(t, "admin", RoleFromRequest(c))

	c2, _ := gin.CreateTestContext(httptest.NewRecorder())
	c2.Request = httptest.NewRequest(http.MethodPost, "/", nil)
	assert.Equal(t, "", RoleFromRequest(c2))
}
