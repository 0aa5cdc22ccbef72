package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"indt_seguros/internal/infrastructure/logging"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "ok"})
}

func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("generates when absent", func(t *testing.T) {
		r := gin.New()
		r.Use(RequestID())
		var seen string
		r.GET("/test", func(c *gin.Context) {
			seen = GetRequestID(c)
			c.Status(http.StatusOK)
		})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))

		assert.NotEmpty(t, seen)
		assert.Equal(t, seen, w.Header().Get(HeaderRequestID))
	})

	t.Run("reuses incoming header", func(t *testing.T) {
		r := gin.New()
		r.Use(RequestID())
		r.GET("/test", okHandler)

		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set(HeaderRequestID, "abc-123")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, "abc-123", w.Header().Get(HeaderRequestID))
	})
}

func TestRequestLogger_WritesRequestLine(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var buf bytes.Buffer
	logging.InitWithWriter(&buf, "debug", "json")
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.InfoLevel) })

	r := gin.New()
	r.Use(RequestID(), RequestLogger())
	r.GET("/test", okHandler)

	req := httptest.NewRequest(http.MethodGet, "/test?x=1", nil)
	req.Header.Set(HeaderRequestID, "req-1")
	r.ServeHTTP(httptest.NewRecorder(), req)

	var line map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &line))
	assert.Equal(t, "request completed", line["message"])
	assert.Equal(t, "req-1", line["request_id"])
	assert.Equal(t, float64(http.StatusOK), line["status"])
	assert.Equal(t, "/test", line["path"])
	assert.Equal(t, "x=1", line["query"])
}

func TestRecovery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID(), Recovery())
	r.GET("/panic", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "INTERNAL_ERROR", body["code"])
}

func TestRateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RateLimit(NewRateLimiter(0.001, 2)))
	r.GET("/test", okHandler)

	call := func(ip string) int {
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.RemoteAddr = ip + ":12345"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, call("192.168.1.1"))
	assert.Equal(t, http.StatusOK, call("192.168.1.1"))
	assert.Equal(t, http.StatusTooManyRequests, call("192.168.1.1"))
	assert.Equal(t, http.StatusOK, call("10.0.0.1"), "separate budget per ip")
}

func TestRateLimiter_EvictsIdleEntries(t *testing.T) {
	rl := NewRateLimiter(1, 1)
	rl.maxAge = -time.Nanosecond
	rl.Allow("a")
	rl.Allow("b")

	rl.mu.Lock()
	defer rl.mu.Unlock()
	_, ok := rl.store["a"]
	assert.False(t, ok)
	assert.Contains(t, rl.store, "b")
}
