package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func limitedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RateLimitMiddleware())
	r.GET("/api/catalog", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.POST("/api/checkout", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func doRequest(r *gin.Engine, method, path, deviceID string) int {
	req := httptest.NewRequest(method, path, nil)
	if deviceID != "" {
		req.Header.Set("X-Device-ID", deviceID)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w.Code
}

func TestRateLimitMiddleware(t *testing.T) {
	t.Run("General tier allows burst then throttles", func(t *testing.T) {
		r := limitedRouter()
		for i := 0; i < burstGeneral; i++ {
			require.Equal(t, http.StatusOK, doRequest(r, "GET", "/api/catalog", "general-client"))
		}
		assert.Equal(t, http.StatusTooManyRequests, doRequest(r, "GET", "/api/catalog", "general-client"))
	})

	t.Run("Checkout tier is stricter", func(t *testing.T) {
		r := limitedRouter()
		for i := 0; i < burstStrict; i++ {
			require.Equal(t, http.StatusOK, doRequest(r, "POST", "/api/checkout", "strict-client"))
		}
		assert.Equal(t, http.StatusTooManyRequests, doRequest(r, "POST", "/api/checkout", "strict-client"))
	})

	t.Run("Tiers have separate quotas per client", func(t *testing.T) {
		r := limitedRouter()
		for i := 0; i < burstStrict+1; i++ {
			doRequest(r, "POST", "/api/checkout", "mixed-client")
		}
		// The strict bucket is exhausted; the general one is untouched.
		assert.Equal(t, http.StatusOK, doRequest(r, "GET", "/api/catalog", "mixed-client"))
	})

	t.Run("Distinct clients do not share buckets", func(t *testing.T) {
		r := limitedRouter()
		for i := 0; i < burstGeneral+1; i++ {
			doRequest(r, "GET", "/api/catalog", "noisy-client")
		}
		assert.Equal(t, http.StatusOK, doRequest(r, "GET", "/api/catalog", "quiet-client"))
	})

	t.Run("Internal tier via secret header", func(t *testing.T) {
		t.Setenv("INTERNAL_SECRET_KEY", "shh")
		r := limitedRouter()

		req := httptest.NewRequest("GET", "/api/catalog", nil)
		req.Header.Set("X-Service-Auth", "shh")
		req.Header.Set("X-Device-ID", "internal-client")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestResolveRateTier(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newCtx := func(method, path string) *gin.Context {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(method, path, nil)
		return c
	}

	t.Run("Checkout is strict", func(t *testing.T) {
		limit, burst, tier := resolveRateTier(newCtx("POST", "/api/checkout"))
		assert.Equal(t, limitStrict, limit)
		assert.Equal(t, burstStrict, burst)
		assert.Equal(t, "strict", tier)
	})

	t.Run("Frontend-heavy header", func(t *testing.T) {
		c := newCtx("GET", "/api/catalog")
		c.Request.Header.Set("X-Client-Type", "frontend-heavy")
		limit, burst, tier := resolveRateTier(c)
		assert.Equal(t, limitFrontend, limit)
		assert.Equal(t, burstFrontend, burst)
		assert.Equal(t, "frontend", tier)
	})

	t.Run("Default is general", func(t *testing.T) {
		limit, burst, tier := resolveRateTier(newCtx("GET", "/api/search"))
		assert.Equal(t, limitGeneral, limit)
		assert.Equal(t, burstGeneral, burst)
		assert.Equal(t, "general", tier)
	})
}
