// Package eraser wires the user-data erasure activity: live-store
// repositories, the cold-storage archiver, and the cascade service that runs
// one backup-then-delete invocation.
package eraser

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/giuseppedipinto/io-functions-admin/internal/eraser/archive"
	"github.com/giuseppedipinto/io-functions-admin/internal/eraser/cascade"
	"github.com/giuseppedipinto/io-functions-admin/internal/eraser/config"
	"github.com/giuseppedipinto/io-functions-admin/internal/eraser/failure"
	"github.com/giuseppedipinto/io-functions-admin/internal/eraser/store"
	"github.com/giuseppedipinto/io-functions-admin/internal/logging"
)

type App struct {
	config  *config.Config
	logger  logging.Logger
	store   store.Manager
	service *cascade.Service
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	slogger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(slogger)

	m, err := store.NewPostgresManager(ctx, cfg.DatabaseDSN, cfg.PageSize)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	s3c, err := archive.NewS3Client(ctx, cfg.S3AccessKey, cfg.S3SecretKey, cfg.S3Region, cfg.S3BaseEndpoint)
	if err != nil {
		return nil, fmt.Errorf("s3 init error: %w", err)
	}

	svc := cascade.NewService(
		m.Profiles(),
		m.Messages(),
		m.MessageStatuses(),
		archive.NewWriter(s3c),
		cfg.S3Bucket,
		logger,
	)

	return &App{config: cfg, logger: logger, store: m, service: svc}, nil
}

// Run decodes one raw activity input and performs the erasure. A decode
// failure is logged here, at the boundary; every later failure is logged by
// the service before it returns.
func (app *App) Run(ctx context.Context, rawInput string) error {
	logger := app.logger.With("invocation_id", uuid.New().String())

	in, f := cascade.DecodeInput([]byte(rawInput))
	if f != nil {
		failure.Log(ctx, logger, f)
		return f
	}

	logger.Info(ctx, "starting user data erasure", "request_id", in.UserDataDeleteRequestID)

	if _, f := app.service.Run(ctx, in); f != nil {
		return f
	}
	return nil
}

func (app *App) Close() error {
	return app.store.Close()
}
