package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEngine(mw ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(mw...)
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString("subject"))
	})
	return r
}

func get(r *gin.Engine, header, value string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	if header != "" {
		req.Header.Set(header, value)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func sign(t *testing.T, method jwt.SigningMethod, key interface{}, claims jwt.MapClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return s
}

func TestLoggerSetsRequestID(t *testing.T) {
	r := newEngine(Logger())

	w := get(r, "", "")
	id := w.Header().Get(RequestIDHeader)
	_, err := uuid.Parse(id)
	assert.NoError(t, err)

	w = get(r, RequestIDHeader, "abc-123")
	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
}

func TestAuthDisabledWithoutSecret(t *testing.T) {
	r := newEngine(Auth(""))
	assert.Equal(t, http.StatusOK, get(r, "", "").Code)
}

func TestAuth(t *testing.T) {
	secret := []byte("s3cret")
	r := newEngine(Auth(string(secret)))

	valid := sign(t, jwt.SigningMethodHS256, secret, jwt.MapClaims{
		"sub": "alice",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	w := get(r, "Authorization", "Bearer "+valid)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "alice", w.Body.String())

	tests := []struct {
		name  string
		value string
	}{
		{"missing", ""},
		{"not bearer", "Basic " + valid},
		{"wrong key", "Bearer " + sign(t, jwt.SigningMethodHS256, []byte("other"), jwt.MapClaims{"sub": "alice"})},
		{"wrong method", "Bearer " + sign(t, jwt.SigningMethodHS512, secret, jwt.MapClaims{"sub": "alice"})},
		{"expired", "Bearer " + sign(t, jwt.SigningMethodHS256, secret, jwt.MapClaims{"exp": time.Now().Add(-time.Hour).Unix()})},
		{"garbage", "Bearer not.a.token"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := get(r, "Authorization", tt.value)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func TestRateLimiterAllow(t *testing.T) {
	rl := NewRateLimiter(2, time.Minute)
	clock := time.Unix(1000, 0)
	rl.now = func() time.Time { return clock }

	assert.True(t, rl.Allow("1.1.1.1"))
	assert.True(t, rl.Allow("1.1.1.1"))
	assert.False(t, rl.Allow("1.1.1.1"))
	assert.True(t, rl.Allow("2.2.2.2"), "limits are per client")

	clock = clock.Add(time.Minute)
	assert.True(t, rl.Allow("1.1.1.1"), "window has slid past the first hits")
}

func TestRateLimiterSweepsIdleClients(t *testing.T) {
	rl := NewRateLimiter(5, time.Minute)
	clock := time.Unix(1000, 0)
	rl.now = func() time.Time { return clock }

	for _, ip := range []string{"a", "b", "c"} {
		rl.Allow(ip)
	}
	assert.Equal(t, 3, rl.clients())

	clock = clock.Add(2 * time.Minute)
	rl.Allow("d")
	assert.Equal(t, 1, rl.clients(), "idle clients are forgotten without a background goroutine")
}

func TestRateLimitMiddleware(t *testing.T) {
	r := newEngine(RateLimit(1, time.Minute))

	assert.Equal(t, http.StatusOK, get(r, "", "").Code)
	w := get(r, "", "")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "60", w.Header().Get("Retry-After"))

	assert.Equal(t, http.StatusOK, get(newEngine(RateLimit(0, time.Minute)), "", "").Code, "zero limit disables")
}
