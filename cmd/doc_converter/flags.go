package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/kurochkinivan/doc_converter/internal/app"
	"github.com/kurochkinivan/doc_converter/internal/config"
	"github.com/kurochkinivan/doc_converter/internal/domain"
	altsrc "github.com/urfave/cli-altsrc/v3"
	"github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"
)

var version = "dev"

func cmd() *cli.Command {
	return &cli.Command{
		Name:    "doc_converter",
		Usage:   "Word document conversion service",
		Version: version,
		Flags:   flags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			log, ok := ctx.Value(loggerKey{}).(*slog.Logger)
			if !ok {
				return errors.New("failed to get logger from context")
			}

			cfg := config.Load(cmd)

			return app.New(log, cfg).Run(ctx)
		},
	}
}

func flags() []cli.Flag {
	var configPath string

	source := func(key string) cli.ValueSourceChain {
		return cli.NewValueSourceChain(yaml.YAML(key, altsrc.NewStringPtrSourcer(&configPath)))
	}

	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Validator:   validateConfig,
			Usage:       "Load configuration from `FILE`",
			Destination: &configPath,
		},
		&cli.StringFlag{
			Name:      "default-format",
			Aliases:   []string{"f"},
			Usage:     "Set target format used when the upload does not request one",
			Value:     string(domain.FormatPDF),
			Sources:   source("app.default_format"),
			Validator: validateFormat,
		},
		&cli.BoolFlag{
			Name:    "retain-inputs",
			Usage:   "Keep uploaded documents after a successful conversion",
			Value:   true,
			Sources: source("app.retain_inputs"),
		},
		&cli.DurationFlag{
			Name:    "input-retention",
			Usage:   "Delete uploaded documents older than this, 0 keeps them forever",
			Sources: source("app.input_retention"),
		},
		&cli.DurationFlag{
			Name:    "output-retention",
			Usage:   "Delete converted documents older than this, 0 keeps them forever",
			Sources: source("app.output_retention"),
		},
		&cli.DurationFlag{
			Name:      "janitor-interval",
			Usage:     "Set how often expired documents are swept",
			Value:     10 * time.Minute,
			Sources:   source("app.janitor_interval"),
			Validator: validatePositiveDuration,
		},
		&cli.IntFlag{
			Name:      "records-buffer",
			Usage:     "Set how many conversion records may wait for the database",
			Value:     100,
			Sources:   source("app.records_buffer"),
			Validator: validatePositive[int],
		},
		&cli.StringFlag{
			Name:      "storage",
			Usage:     "Set artifact storage backend: filesystem or minio",
			Value:     config.StorageBackendFilesystem,
			Sources:   source("storage.backend"),
			Validator: validateStorage,
		},
		&cli.StringFlag{
			Name:    "inbound-dir",
			Aliases: []string{"i"},
			Usage:   "Set directory for uploaded documents",
			Value:   "uploads",
			Sources: source("storage.inbound_dir"),
		},
		&cli.StringFlag{
			Name:    "outbound-dir",
			Aliases: []string{"o"},
			Usage:   "Set directory for converted documents",
			Value:   "converted",
			Sources: source("storage.outbound_dir"),
		},
		&cli.StringFlag{
			Name:    "minio-endpoint",
			Usage:   "Set MinIO endpoint",
			Value:   "localhost:9000",
			Sources: source("storage.minio.endpoint"),
		},
		&cli.StringFlag{
			Name:    "minio-access-key",
			Usage:   "Set MinIO access key",
			Sources: source("storage.minio.access_key"),
		},
		&cli.StringFlag{
			Name:    "minio-secret-key",
			Usage:   "Set MinIO secret key",
			Sources: source("storage.minio.secret_key"),
		},
		&cli.StringFlag{
			Name:    "minio-bucket",
			Usage:   "Set MinIO bucket",
			Value:   "doc-converter",
			Sources: source("storage.minio.bucket"),
		},
		&cli.StringFlag{
			Name:    "minio-region",
			Usage:   "Set MinIO region",
			Sources: source("storage.minio.region"),
		},
		&cli.BoolFlag{
			Name:    "minio-use-ssl",
			Usage:   "Connect to MinIO over TLS",
			Sources: source("storage.minio.use_ssl"),
		},
		&cli.StringFlag{
			Name:      "engine",
			Aliases:   []string{"e"},
			Usage:     "Set conversion engine: libreoffice or native",
			Value:     config.EngineLibreOffice,
			Sources:   source("engine.kind"),
			Validator: validateEngine,
		},
		&cli.StringFlag{
			Name:    "soffice-path",
			Usage:   "Set LibreOffice binary",
			Value:   "soffice",
			Sources: source("engine.soffice_path"),
		},
		&cli.StringFlag{
			Name:    "engine-work-dir",
			Usage:   "Set directory for engine scratch files, empty uses the system temp dir",
			Sources: source("engine.work_dir"),
		},
		&cli.IntFlag{
			Name:      "engine-workers",
			Usage:     "Set how many conversions may run at once",
			Value:     1,
			Sources:   source("engine.workers"),
			Validator: validatePositive[int],
		},
		&cli.DurationFlag{
			Name:      "engine-timeout",
			Usage:     "Set the time limit of a single conversion",
			Value:     2 * time.Minute,
			Sources:   source("engine.timeout"),
			Validator: validatePositiveDuration,
		},
		&cli.StringFlag{
			Name:     "pg-host",
			Usage:    "Set PostgreSQL host",
			Value:    "localhost",
			Sources:  source("postgresql.host"),
			Required: true,
		},
		&cli.StringFlag{
			Name:     "pg-port",
			Usage:    "Set PostgreSQL port",
			Value:    "5432",
			Sources:  source("postgresql.port"),
			Required: true,
		},
		&cli.StringFlag{
			Name:     "pg-username",
			Usage:    "Set PostgreSQL username",
			Sources:  source("postgresql.username"),
			Required: true,
		},
		&cli.StringFlag{
			Name:     "pg-password",
			Usage:    "Set PostgreSQL password",
			Sources:  source("postgresql.password"),
			Required: true,
		},
		&cli.StringFlag{
			Name:     "pg-dbname",
			Usage:    "Set PostgreSQL database name",
			Value:    "doc_converter",
			Sources:  source("postgresql.dbname"),
			Required: true,
		},
		&cli.StringFlag{
			Name:    "pg-sslmode",
			Usage:   "Set PostgreSQL sslmode",
			Value:   "disable",
			Sources: source("postgresql.sslmode"),
		},
		&cli.IntFlag{
			Name:    "pg-max-conns",
			Usage:   "Set PostgreSQL pool size, 0 uses the driver default",
			Sources: source("postgresql.max_conns"),
		},
		&cli.StringFlag{
			Name:    "http-host",
			Usage:   "Set HTTP server host",
			Value:   "localhost",
			Sources: source("http.host"),
		},
		&cli.StringFlag{
			Name:    "http-port",
			Usage:   "Set HTTP server port",
			Value:   "8080",
			Sources: source("http.port"),
		},
		&cli.DurationFlag{
			Name:    "http-idle-timeout",
			Usage:   "Set HTTP server idle timeout",
			Value:   1 * time.Minute,
			Sources: source("http.idle_timeout"),
		},
		&cli.DurationFlag{
			Name:    "http-read-timeout",
			Usage:   "Set HTTP server read timeout",
			Value:   1 * time.Minute,
			Sources: source("http.read_timeout"),
		},
		&cli.DurationFlag{
			Name:    "http-write-timeout",
			Usage:   "Set HTTP server write timeout",
			Value:   5 * time.Minute,
			Sources: source("http.write_timeout"),
		},
		&cli.Int64Flag{
			Name:      "max-upload-size",
			Usage:     "Set the largest accepted upload in bytes",
			Value:     50 << 20,
			Sources:   source("http.max_upload_size"),
			Validator: validatePositive[int64],
		},
	}
}

func validateConfig(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%q does not exist", path)
		}
		return fmt.Errorf("failed to stat %q: %w", path, err)
	}

	if info.IsDir() {
		return fmt.Errorf("%q is a directory, not a file", path)
	}

	ext := filepath.Ext(info.Name())
	if ext != ".yml" && ext != ".yaml" {
		return fmt.Errorf("invalid extension %q", path)
	}

	return nil
}

func validateFormat(format string) error {
	if !domain.Format(format).Valid() {
		return fmt.Errorf("unsupported format %q", format)
	}

	return nil
}

func validateStorage(backend string) error {
	switch backend {
	case config.StorageBackendFilesystem, config.StorageBackendMinIO:
		return nil
	default:
		return fmt.Errorf("storage must be %q or %q, got %q",
			config.StorageBackendFilesystem, config.StorageBackendMinIO, backend)
	}
}

func validateEngine(engine string) error {
	switch engine {
	case config.EngineLibreOffice, config.EngineNative:
		return nil
	default:
		return fmt.Errorf("engine must be %q or %q, got %q", config.EngineLibreOffice, config.EngineNative, engine)
	}
}

func validatePositive[T int | int64](v T) error {
	if v <= 0 {
		return fmt.Errorf("must be positive, got %d", v)
	}

	return nil
}

func validatePositiveDuration(d time.Duration) error {
	if d <= 0 {
		return fmt.Errorf("must be positive, got %s", d)
	}

	return nil
}
