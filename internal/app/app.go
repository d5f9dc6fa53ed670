package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/kurochkinivan/doc_converter/internal/config"
	v1 "github.com/kurochkinivan/doc_converter/internal/controller/http/v1"
	"github.com/kurochkinivan/doc_converter/internal/converter"
	"github.com/kurochkinivan/doc_converter/internal/converter/libreoffice"
	"github.com/kurochkinivan/doc_converter/internal/converter/native"
	"github.com/kurochkinivan/doc_converter/internal/domain"
	"github.com/kurochkinivan/doc_converter/internal/naming"
	"github.com/kurochkinivan/doc_converter/internal/pipeline"
	"github.com/kurochkinivan/doc_converter/internal/repository/postgresql"
	"github.com/kurochkinivan/doc_converter/internal/storage/filesystem"
	"github.com/kurochkinivan/doc_converter/internal/storage/minio"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 30 * time.Second

type App struct {
	log *slog.Logger
	cfg *config.Config
}

func New(log *slog.Logger, cfg *config.Config) *App {
	return &App{
		log: log,
		cfg: cfg,
	}
}

func (a *App) Run(ctx context.Context) error {
	a.log.InfoContext(ctx, "starting app",
		slog.String("storage", a.cfg.Storage.Backend),
		slog.String("engine", a.cfg.Engine.Kind),
		slog.String("default_format", a.cfg.App.DefaultFormat),
		slog.Bool("retain_inputs", a.cfg.App.RetainInputs),
	)

	store, err := a.newStore(ctx)
	if err != nil {
		return fmt.Errorf("failed to create artifact store: %w", err)
	}

	a.log.InfoContext(ctx, "establishing postgresql connection",
		slog.String("postgresql_host", a.cfg.PostgreSQL.Host),
		slog.String("postgresql_port", a.cfg.PostgreSQL.Port),
		slog.String("postgresql_dbname", a.cfg.PostgreSQL.DBName),
	)

	pool, err := postgresql.NewConnection(ctx, a.log, a.cfg.PostgreSQL)
	if err != nil {
		return fmt.Errorf("failed to create db connection: %w", err)
	}
	defer pool.Close()

	conversionsRepository := postgresql.NewConversionsRepository(pool)

	return a.startPipeline(ctx, store, conversionsRepository)
}

func (a *App) newStore(ctx context.Context) (pipeline.ArtifactStore, error) {
	switch a.cfg.Storage.Backend {
	case config.StorageBackendMinIO:
		return minio.New(ctx, a.log, a.cfg.Storage.MinIO)
	case config.StorageBackendFilesystem:
		return filesystem.New(a.cfg.Storage.InboundDir, a.cfg.Storage.OutboundDir)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", a.cfg.Storage.Backend)
	}
}

func (a *App) newEngine() (converter.Engine, error) {
	switch a.cfg.Engine.Kind {
	case config.EngineLibreOffice:
		return libreoffice.New(a.cfg.Engine.SofficePath, a.cfg.Engine.WorkDir), nil
	case config.EngineNative:
		return native.New(), nil
	default:
		return nil, fmt.Errorf("unknown engine %q", a.cfg.Engine.Kind)
	}
}

func (a *App) startPipeline(
	ctx context.Context,
	store pipeline.ArtifactStore,
	conversionsRepo *postgresql.ConversionsRepository,
) error {
	engine, err := a.newEngine()
	if err != nil {
		return err
	}

	records := make(chan *domain.ConversionRecord, a.cfg.App.RecordsBuffer)
	stats := &pipeline.Stats{}

	orchestrator := pipeline.NewOrchestrator(
		a.log,
		store,
		converter.NewAdapter(a.log, engine, a.cfg.Engine.Workers, a.cfg.Engine.Timeout),
		naming.NewAllocator(),
		records,
		stats,
		domain.Format(a.cfg.App.DefaultFormat),
		a.cfg.App.RetainInputs,
	)
	recorder := pipeline.NewRecorder(a.log, records, conversionsRepo, stats)
	janitor := pipeline.NewJanitor(
		a.log,
		store,
		a.cfg.App.JanitorInterval,
		a.cfg.App.InputRetention,
		a.cfg.App.OutputRetention,
	)
	server := v1.NewServer(a.cfg.HTTP, a.log, v1.Dependencies{
		Converter:   orchestrator,
		Artifacts:   store,
		Conversions: conversionsRepo,
		Stats:       stats,
	})

	erg, ctx := errgroup.WithContext(ctx)

	// The recorder outlives the server so records of in-flight uploads are saved.
	recorderCtx, stopRecorder := context.WithCancel(context.WithoutCancel(ctx))
	defer stopRecorder()

	erg.Go(func() error {
		a.log.InfoContext(ctx, "recorder started")
		return recorder.Run(recorderCtx)
	})

	if janitor.Enabled() {
		erg.Go(func() error {
			a.log.InfoContext(ctx, "janitor started",
				slog.Duration("interval", a.cfg.App.JanitorInterval),
				slog.Duration("input_retention", a.cfg.App.InputRetention),
				slog.Duration("output_retention", a.cfg.App.OutputRetention),
			)
			return janitor.Run(ctx)
		})
	}

	erg.Go(func() error {
		a.log.InfoContext(ctx, "starting http server",
			slog.String("addr", net.JoinHostPort(a.cfg.HTTP.Host, a.cfg.HTTP.Port)),
		)

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server error: %w", err)
		}

		return nil
	})

	erg.Go(func() error {
		<-ctx.Done()
		defer stopRecorder()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		return server.Shutdown(shutdownCtx)
	})

	a.log.InfoContext(ctx, "all components started")

	if err := erg.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		a.log.ErrorContext(ctx, "service stopped with error", slog.String("err", err.Error()))

		return err
	}

	a.log.InfoContext(ctx, "service stopped gracefully",
		slog.Int64("metadata_dropped", stats.Snapshot().MetadataDropped),
		slog.Int64("metadata_failed", stats.Snapshot().MetadataFailed),
	)

	return nil
}
