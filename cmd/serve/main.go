// Package classification Club Manager Service.
//
// Event ledger and attendance check-in service for club management
//
//	Version: 0.1.0
//	Contact: <info@clubops.io> https://github.com/clubops/club-manager
//
//	Consumes:
//	  - application/json
//
//	Produces:
//	  - application/json
//
// swagger:meta
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/clubops/club-manager/internal/handler"
	"github.com/clubops/club-manager/internal/log"
	"github.com/clubops/club-manager/internal/server"
	"github.com/clubops/club-manager/pkg/checkin"
	"github.com/clubops/club-manager/pkg/config"
	"github.com/clubops/club-manager/pkg/event"
	"github.com/clubops/club-manager/pkg/ledger"
	"github.com/clubops/club-manager/pkg/notification"
	"github.com/clubops/club-manager/pkg/rollup"
	"github.com/clubops/club-manager/pkg/storage"
	"github.com/go-mail/mail"
)

func main() {
	logger := slog.New(log.New(slog.NewJSONHandler(os.Stdout, nil)))
	slog.SetDefault(logger)

	if err := run(logger); err != nil {
		logger.Error("Exiting", "error", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	ctx := context.Background()

	cfg := config.New()

	if err := handler.RegisterValidation(); err != nil {
		return err
	}

	db, err := storage.NewDatabase(logger, cfg.Postgresql)
	if err != nil {
		return err
	}

	redisClient, err := storage.NewRedis(cfg.Redis.Host, cfg.Redis.Port)
	if err != nil {
		return err
	}

	s3Client, err := storage.NewObjectStorage(cfg.S3)
	if err != nil {
		return err
	}
	if err := storage.EnsureBucket(ctx, s3Client, cfg.S3.Bucket); err != nil {
		return err
	}

	reimbursements, err := ledger.NewReimbursementPublisher(cfg.RabbitMq.GetUrl())
	if err != nil {
		return err
	}
	defer func() {
		if err := reimbursements.Close(); err != nil {
			logger.Error("Failed to close reimbursement publisher", "error", err)
		}
	}()

	dialer := mail.NewDialer(cfg.Smtp.Host, cfg.Smtp.Port, cfg.Smtp.Username, cfg.Smtp.Password)

	broker := notification.NewBroker()

	tokenRepository := checkin.NewTokenRepository(redisClient)
	attendeeRepository := checkin.NewRepository(db)
	checkinService := checkin.NewService(logger, attendeeRepository, tokenRepository, broker, cfg.CheckInBaseURL)

	eventRepository := event.NewRepository(db)
	eventService := event.NewService(eventRepository, checkinService)

	ledgerRepository := ledger.NewRepository(db)
	ledgerService := ledger.NewService(logger, ledgerRepository, dialer, reimbursements, broker)
	imageService := ledger.NewImageService(s3Client, cfg.S3.Bucket, ledgerRepository)

	rollupService := rollup.NewService(rollup.NewRepository(db))

	if cfg.RosterSeedFile != "" {
		if err := checkin.SeedRosters(ctx, logger, cfg.RosterSeedFile, attendeeRepository); err != nil {
			return err
		}
	}

	eventHandler := event.NewHandler(eventService)
	ledgerHandler := ledger.NewHandler(ledgerService, imageService)
	rollupHandler := rollup.NewHandler(rollupService)
	checkinHandler := checkin.NewHandler(checkinService)
	notificationHandler := notification.NewHandler(broker)

	r := server.GetEngine(logger, cfg.BasePath, eventHandler, ledgerHandler, rollupHandler, checkinHandler, notificationHandler)
	return r.Run(fmt.Sprintf(":%d", cfg.Port))
}
