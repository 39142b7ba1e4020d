package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newTestEngine(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(handlers...)
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
	return r
}

func doGet(r http.Handler, remoteAddr string, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = remoteAddr
	for k, v := range header {
		req.Header[k] = v
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRateLimiterBlocksBurstPerIP(t *testing.T) {
	limiter := NewRateLimiter(1, 2)
	r := newTestEngine(limiter.RateLimit())

	assert.Equal(t, http.StatusOK, doGet(r, "10.0.0.1:1234", nil).Code)
	assert.Equal(t, http.StatusOK, doGet(r, "10.0.0.1:1234", nil).Code)
	assert.Equal(t, http.StatusTooManyRequests, doGet(r, "10.0.0.1:1234", nil).Code)

	// Another client has its own bucket
	assert.Equal(t, http.StatusOK, doGet(r, "10.0.0.2:1234", nil).Code)
}

func TestRateLimiterForgetsIdleVisitors(t *testing.T) {
	limiter := NewRateLimiter(1, 1)
	now := time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return now }

	limiter.limiterFor("10.0.0.1")
	assert.Len(t, limiter.visitors, 1)

	now = now.Add(11 * time.Minute)
	limiter.limiterFor("10.0.0.2")
	assert.Len(t, limiter.visitors, 1)
	assert.Contains(t, limiter.visitors, "10.0.0.2")
}

func TestLoggerMiddlewareSetsRequestID(t *testing.T) {
	r := newTestEngine(LoggerMiddleware())

	w := doGet(r, "10.0.0.1:1234", nil)
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))

	w = doGet(r, "10.0.0.1:1234", http.Header{RequestIDHeader: []string{"abc-123"}})
	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
}

func TestRequestTimeoutSetsDeadline(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestTimeout(time.Second))
	var hasDeadline bool
	r.GET("/ping", func(c *gin.Context) {
		_, hasDeadline = c.Request.Context().Deadline()
		c.Status(http.StatusNoContent)
	})

	doGet(r, "10.0.0.1:1234", nil)
	assert.True(t, hasDeadline)
}

func TestCORSPreflight(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(CORSMiddlewares(), SecurityHeaders())
	r.OPTIONS("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/ping", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
