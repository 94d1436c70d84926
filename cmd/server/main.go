package main // Entry point package

import (
	"context"
	"log"

	"github.com/joho/godotenv"    // .env loading for local development
	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/GuntasBains77/Smart-Parking-Project/internal/config"
	"github.com/GuntasBains77/Smart-Parking-Project/internal/database"
	"github.com/GuntasBains77/Smart-Parking-Project/internal/handler"
	"github.com/GuntasBains77/Smart-Parking-Project/internal/mailer"
	"github.com/GuntasBains77/Smart-Parking-Project/internal/queue"
	"github.com/GuntasBains77/Smart-Parking-Project/internal/repository"
	"github.com/GuntasBains77/Smart-Parking-Project/internal/router"
	queue_publisher "github.com/GuntasBains77/Smart-Parking-Project/internal/service"
)

func main() {
	_ = godotenv.Load() // .env is optional; real deployments set the environment directly

	cfg := config.Load() // Load environment config

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	if err := database.EnsureSchema(context.Background(), db); err != nil {
		log.Fatalf("database: %v", err)
	}

	// Redis is optional: a nil client disables caching and rate limiting.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable; response cache and rate limiting disabled")
	}

	// Everything the handlers need is constructed here and injected;
	// there is no package-level shared state.
	reservations := handler.NewReservationHandler(repository.NewReservationRepo(db))
	payments := handler.NewPaymentHandler(repository.NewPaymentRepo(db), queue_publisher.NewAMQPPublisher())
	feedbacks := handler.NewFeedbackHandler(repository.NewFeedbackRepo(db))

	// The notification consumer sends confirmation emails for published
	// payment events.  It reconnects on its own and never stops the server.
	go func() {
		if err := queue.StartPaymentConsumer(mailer.NewSMTPSender(cfg)); err != nil {
			log.Printf("payment-consumer: %v", err)
		}
	}()

	e := echo.New()
	router.RegisterRoutes(e, cfg.ClientOrigin, rdb, reservations, payments, feedbacks)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
