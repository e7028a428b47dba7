package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"

	"github.com/datachef-lab/idsnap-portal/config"
	"github.com/datachef-lab/idsnap-portal/db"
	"github.com/datachef-lab/idsnap-portal/internal/auth/domain"
	"github.com/datachef-lab/idsnap-portal/internal/auth/handler"
	"github.com/datachef-lab/idsnap-portal/internal/auth/repository/memory"
	repo "github.com/datachef-lab/idsnap-portal/internal/auth/repository/postgres"
	"github.com/datachef-lab/idsnap-portal/internal/auth/repository/redisotp"
	"github.com/datachef-lab/idsnap-portal/internal/auth/service"
	"github.com/datachef-lab/idsnap-portal/internal/notify"
)

// otpRetention bounds how long stale codes linger in a store before
// housekeeping removes them. Well past the verification window so that
// an expired code is still reported as expired, not invalid.
const otpRetention = 15 * time.Minute

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	dbPool, err := db.NewPostgresPool(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	directory := repo.NewRepository(dbPool)

	otpStore, cleanup, err := buildOTPStore(cfg, dbPool)
	if err != nil {
		logger.Error("failed to build otp store", "error", err)
		os.Exit(1)
	}
	defer cleanup()

	notifier := buildNotifier(cfg, logger)

	tokenService := service.NewTokenService(cfg.AccessTokenSecret, cfg.RefreshTokenSecret,
		cfg.AccessExpiryMin, cfg.RefreshExpiryMin)
	otpService := service.NewOTPService(directory, otpStore, notifier,
		time.Duration(cfg.OTPWindowSec)*time.Second, logger)
	authService := service.NewAuthService(directory, tokenService, logger)

	cookies := handler.NewSessionCookieManager(tokenService.GetRefreshTokenExpiry(), cfg.SecureCookies)
	authHandler := handler.NewAuthHandler(authService, otpService, cookies, logger)

	app := fiber.New()
	handler.RegisterRoutes(app, authHandler)

	logger.Info("starting server", "port", cfg.Port, "otp_store", cfg.OTPStore)
	if err := app.Listen(":" + cfg.Port); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func buildOTPStore(cfg *config.Config, dbPool repo.PgxIface) (domain.OTPStore, func(), error) {
	switch cfg.OTPStore {
	case "redis":
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return nil, nil, err
		}
		client := redis.NewClient(opts)
		return redisotp.NewOTPStore(client, otpRetention), func() { _ = client.Close() }, nil
	case "memory":
		store := memory.NewOTPStore(otpRetention)
		store.Start(otpRetention)
		return store, store.Stop, nil
	default:
		return repo.NewOTPRepository(dbPool), func() {}, nil
	}
}

func buildNotifier(cfg *config.Config, logger *slog.Logger) *notify.Dispatcher {
	var email, whatsapp notify.CodeSender

	if cfg.PostmarkServerToken != "" {
		sender, err := notify.NewEmailSender(notify.EmailConfig{
			ServerToken:  cfg.PostmarkServerToken,
			AccountToken: cfg.PostmarkAccountToken,
			FromEmail:    cfg.EmailFromAddress,
			FromName:     cfg.EmailFromName,
		})
		if err != nil {
			logger.Warn("email channel disabled", "error", err)
		} else {
			email = sender
		}
	}

	if cfg.InteraktAPIKey != "" {
		sender, err := notify.NewWhatsAppSender(notify.WhatsAppConfig{
			APIKey:  cfg.InteraktAPIKey,
			BaseURL: cfg.InteraktBaseURL,
		})
		if err != nil {
			logger.Warn("whatsapp channel disabled", "error", err)
		} else {
			whatsapp = sender
		}
	}

	return notify.NewDispatcher(email, whatsapp)
}
