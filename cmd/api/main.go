package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"

	"github.com/seeeye/area710-booking/internal/events"
	"github.com/seeeye/area710-booking/internal/guard"
	"github.com/seeeye/area710-booking/internal/http/handlers"
	mw "github.com/seeeye/area710-booking/internal/http/middleware"
	"github.com/seeeye/area710-booking/internal/mail"
	"github.com/seeeye/area710-booking/internal/session"
	"github.com/seeeye/area710-booking/internal/validate"
	"github.com/seeeye/area710-booking/pkg/config"
	"github.com/seeeye/area710-booking/pkg/logger"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	// Session store: Redis when configured, in-memory otherwise.
	var store session.Store
	if cfg.Redis.Enabled {
		redisStore, err := session.NewRedisStore(cfg.Redis.URL, cfg.Session.TTL)
		if err != nil {
			logger.Error("Failed to connect to Redis", "error", err)
			os.Exit(1)
		}
		defer redisStore.Close()
		store = redisStore
	} else {
		store = session.NewMemoryStore(cfg.Session.TTL)
	}

	// Event publisher: NATS when configured, no-op otherwise.
	var publisher events.Publisher = events.NoopPublisher{}
	if cfg.NATS.Enabled {
		natsPub, err := events.NewNATSPublisher(cfg.NATS.URL)
		if err != nil {
			logger.Error("Failed to connect to NATS", "error", err)
			os.Exit(1)
		}
		defer natsPub.Close()
		publisher = natsPub
	}

	sender := newSender(cfg)
	notifier := mail.NewNotifier(sender, cfg.Email)

	pipeline := validate.New()
	limiter := guard.NewRateLimiter(store, cfg.RateLimit.Window, cfg.RateLimit.Limit)
	csrfGuard := guard.NewCSRFGuard(store)

	h := handlers.New(pipeline, limiter, csrfGuard, notifier, publisher)

	r := chi.NewRouter()
	r.Use(mw.RequestID)
	r.Use(mw.ServiceName("booking"))
	r.Use(mw.Logging)
	r.Use(mw.Recover)
	r.Use(mw.OriginCheck(cfg.CORS.AllowedOrigins))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-CSRF-Token"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(mw.Session(cfg.Session))

	r.Mount("/api", h.Routes())

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		logger.Info("Shutting down booking service...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			logger.Error("Booking service shutdown error", "error", err)
		}
	}()

	logger.Info("Starting booking service", "port", cfg.Server.Port)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("Booking service error", "error", err)
		os.Exit(1)
	}
}

func newSender(cfg *config.Config) mail.Sender {
	if cfg.Email.DevMode {
		logger.Info("Email dev mode enabled, mails are logged only")
		return mail.NewDevSender()
	}
	if cfg.Email.MailerSendKey != "" {
		sender, err := mail.NewMailerSendSender(cfg.Email.MailerSendKey)
		if err == nil {
			return sender
		}
		logger.Warn("MailerSend unavailable, falling back to SMTP", "error", err)
	}
	return mail.NewSMTPSender(cfg.Email.SMTPHost, cfg.Email.SMTPPort, cfg.Email.SMTPUser, cfg.Email.SMTPPass, cfg.Email.SMTPUseTLS)
}
