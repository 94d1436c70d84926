package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GuntasBains77/Smart-Parking-Project/internal/config"
)

func enabledRateLimitConfig() config.RateLimitConfig {
	return config.RateLimitConfig{
		Enabled:        true,
		Capacity:       60,
		RefillTokens:   1,
		RefillInterval: time.Second,
		TTL:            10 * time.Minute,
		KeyStrategy:    "ip_route",
		Prefix:         "rl",
	}
}

// Without a Redis client the limiter must not block anything.
func TestNewTokenBucket_NilClientPassThrough(t *testing.T) {
	mw := NewTokenBucket(enabledRateLimitConfig(), nil)
	h := mw(func(c echo.Context) error {
		return c.String(http.StatusCreated, "created")
	})

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/reserve-slot", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, h(e.NewContext(req, rec)))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Empty(t, rec.Header().Get("X-RateLimit-Limit"))
}

func TestNewTokenBucket_DisabledPassThrough(t *testing.T) {
	cfg := enabledRateLimitConfig()
	cfg.Enabled = false
	mw := NewTokenBucket(cfg, nil)
	h := mw(func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/process-payment", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, h(e.NewContext(req, rec)))

	assert.Equal(t, "ok", rec.Body.String())
}

func TestBuildRateKey(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/reserve-slot", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	c := e.NewContext(req, httptest.NewRecorder())
	c.SetPath("/reserve-slot")

	cfg := enabledRateLimitConfig()
	assert.Equal(t, "rl:ip:10.0.0.1:route:POST /reserve-slot", buildRateKey(cfg, c))

	cfg.KeyStrategy = "ip"
	assert.Equal(t, "rl:ip:10.0.0.1", buildRateKey(cfg, c))

	cfg.KeyStrategy = "route"
	assert.Equal(t, "rl:route:POST /reserve-slot", buildRateKey(cfg, c))
}
