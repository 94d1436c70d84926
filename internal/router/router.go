package router // package router defines how HTTP routes are registered for the API

import (
	"net/http"

	"github.com/labstack/echo/v4" // the Echo web framework handles routing
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"

	"github.com/GuntasBains77/Smart-Parking-Project/internal/config"
	"github.com/GuntasBains77/Smart-Parking-Project/internal/handler"
	"github.com/GuntasBains77/Smart-Parking-Project/internal/middleware"
)

// RegisterRoutes registers every endpoint the service exposes.  CORS is
// restricted to the single configured client origin, mirroring the
// browser frontend this API was built for.  The Redis client may be nil,
// in which case the cache and rate-limit middleware become pass-throughs.
func RegisterRoutes(e *echo.Echo, clientOrigin string, rdb *redis.Client,
	r *handler.ReservationHandler, p *handler.PaymentHandler, f *handler.FeedbackHandler) {

	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: []string{clientOrigin},
		AllowMethods: []string{http.MethodGet, http.MethodPost},
	}))

	// Health check for load balancers and monitoring.
	e.GET("/healthz", handler.Health)

	// The three mutating endpoints share a token-bucket rate limiter.
	// Each one also purges the cache entry of the list it appends to,
	// so a read right after a write always sees the new row.
	limiter := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)
	cacheCfg := config.LoadCacheConfig()
	// Submit a slot reservation.
	e.POST("/reserve-slot", r.ReserveSlot, limiter,
		middleware.NewWritePurge(cacheCfg, rdb, "/reservations"))
	// Record a payment and trigger the confirmation email.
	e.POST("/process-payment", p.ProcessPayment, limiter,
		middleware.NewWritePurge(cacheCfg, rdb, "/payments"))
	// Submit free-text feedback.
	e.POST("/submit-feedback", f.SubmitFeedback, limiter,
		middleware.NewWritePurge(cacheCfg, rdb, "/feedbacks"))

	// The list endpoints serve full collection scans and are the only
	// routes worth caching.
	cache := middleware.NewRedisCache(cacheCfg, rdb)
	e.GET("/reservations", r.GetReservations, cache)
	e.GET("/feedbacks", f.GetFeedbacks, cache)
	e.GET("/payments", p.GetPayments, cache)
}
