package main

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/kurochkinivan/doc_converter/internal/config"
	"github.com/kurochkinivan/doc_converter/internal/repository/postgresql"
	altsrc "github.com/urfave/cli-altsrc/v3"
	"github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

func main() {
	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	err := cmd(log).Run(ctx, os.Args)
	stop()

	if err != nil {
		log.ErrorContext(ctx, "failed to apply migrations", slog.String("err", err.Error()))
		os.Exit(1)
	}
}

func cmd(log *slog.Logger) *cli.Command {
	var configPath string

	source := func(key string) cli.ValueSourceChain {
		return cli.NewValueSourceChain(yaml.YAML(key, altsrc.NewStringPtrSourcer(&configPath)))
	}

	return &cli.Command{
		Name:  "migrator",
		Usage: "Apply doc_converter database migrations",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "Load database settings from `FILE`",
				Destination: &configPath,
			},
			&cli.StringFlag{Name: "pg-host", Value: "127.0.0.1", Usage: "Set PostgreSQL host", Sources: source("postgresql.host")},
			&cli.StringFlag{Name: "pg-port", Value: "5432", Usage: "Set PostgreSQL port", Sources: source("postgresql.port")},
			&cli.StringFlag{Name: "pg-username", Usage: "Set PostgreSQL username", Sources: source("postgresql.username"), Required: true},
			&cli.StringFlag{Name: "pg-password", Usage: "Set PostgreSQL password", Sources: source("postgresql.password"), Required: true},
			&cli.StringFlag{Name: "pg-dbname", Value: "doc_converter", Usage: "Set PostgreSQL database name", Sources: source("postgresql.dbname")},
			&cli.StringFlag{Name: "pg-sslmode", Value: "disable", Usage: "Set PostgreSQL sslmode", Sources: source("postgresql.sslmode")},
		},
		Commands: []*cli.Command{
			{
				Name:  "up",
				Usage: "Apply all pending migrations",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return withMigrator(cmd, func(m *migrate.Migrate) error {
						return report(ctx, log, "up", m.Up())
					})
				},
			},
			{
				Name:  "down",
				Usage: "Roll back migrations",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "steps", Value: 0, Usage: "Roll back `N` migrations, 0 rolls back all"},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return withMigrator(cmd, func(m *migrate.Migrate) error {
						if steps := cmd.Int("steps"); steps > 0 {
							return report(ctx, log, "down", m.Steps(-steps))
						}
						return report(ctx, log, "down", m.Down())
					})
				},
			},
			{
				Name:  "version",
				Usage: "Print the current schema version",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return withMigrator(cmd, func(m *migrate.Migrate) error {
						version, dirty, err := m.Version()
						if errors.Is(err, migrate.ErrNilVersion) {
							log.InfoContext(ctx, "no migrations applied")
							return nil
						}
						if err != nil {
							return fmt.Errorf("failed to read version: %w", err)
						}

						log.InfoContext(ctx, "schema version", slog.Uint64("version", uint64(version)), slog.Bool("dirty", dirty))
						return nil
					})
				},
			},
		},
	}
}

func withMigrator(cmd *cli.Command, fn func(m *migrate.Migrate) error) (err error) {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("failed to create migrations source: %w", err)
	}

	migrator, err := migrate.NewWithSourceInstance("iofs", src, databaseURL(cmd))
	if err != nil {
		return fmt.Errorf("failed to create migrator: %w", err)
	}
	defer func() {
		srcErr, dbErr := migrator.Close()
		err = errors.Join(err, srcErr, dbErr)
	}()

	return fn(migrator)
}

func report(ctx context.Context, log *slog.Logger, direction string, err error) error {
	if errors.Is(err, migrate.ErrNoChange) {
		log.InfoContext(ctx, "no migrations to apply")
		return nil
	}

	if err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	log.InfoContext(ctx, "migrations applied successfully", slog.String("type", direction))
	return nil
}

func databaseURL(cmd *cli.Command) string {
	return postgresql.ConnectionURL(config.PostgreSQL{
		Host:     cmd.String("pg-host"),
		Port:     cmd.String("pg-port"),
		Username: cmd.String("pg-username"),
		Password: cmd.String("pg-password"),
		DBName:   cmd.String("pg-dbname"),
		SSLMode:  cmd.String("pg-sslmode"),
	})
}
