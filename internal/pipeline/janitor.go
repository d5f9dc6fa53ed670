package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/kurochkinivan/doc_converter/internal/domain"
)

// Janitor removes artifacts older than their area's retention period.
// A zero retention keeps the area's artifacts forever.
type Janitor struct {
	log             *slog.Logger
	store           ArtifactStore
	interval        time.Duration
	inputRetention  time.Duration
	outputRetention time.Duration
	now             func() time.Time
}

func NewJanitor(
	log *slog.Logger,
	store ArtifactStore,
	interval time.Duration,
	inputRetention time.Duration,
	outputRetention time.Duration,
) *Janitor {
	return &Janitor{
		log:             log,
		store:           store,
		interval:        interval,
		inputRetention:  inputRetention,
		outputRetention: outputRetention,
		now:             time.Now,
	}
}

func (j *Janitor) Enabled() bool {
	return j.inputRetention > 0 || j.outputRetention > 0
}

func (j *Janitor) Run(ctx context.Context) error {
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			j.log.DebugContext(ctx, "sweep cycle started")

			for area, retention := range map[domain.Area]time.Duration{
				domain.AreaInbound:  j.inputRetention,
				domain.AreaOutbound: j.outputRetention,
			} {
				if retention <= 0 {
					continue
				}

				if err := j.sweep(ctx, area, retention); err != nil {
					j.log.ErrorContext(ctx, "failed to sweep artifacts",
						slog.String("area", string(area)),
						slog.String("err", err.Error()),
					)
				}
			}

		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (j *Janitor) sweep(ctx context.Context, area domain.Area, retention time.Duration) error {
	artifacts, err := j.store.Artifacts(ctx, area)
	if err != nil {
		return fmt.Errorf("failed to list artifacts: %w", err)
	}

	cutoff := j.now().Add(-retention)

	for _, artifact := range artifacts {
		if !artifact.ModTime.Before(cutoff) {
			continue
		}

		if err := j.delete(ctx, area, artifact.Name); err != nil {
			j.log.ErrorContext(ctx, "failed to delete expired artifact, skipping",
				slog.String("area", string(area)),
				slog.String("name", artifact.Name),
				slog.String("err", err.Error()),
			)
			continue
		}

		j.log.DebugContext(ctx, "deleted expired artifact",
			slog.String("area", string(area)),
			slog.String("name", artifact.Name),
		)
	}

	return nil
}

func (j *Janitor) delete(ctx context.Context, area domain.Area, name string) error {
	var err error
	switch area {
	case domain.AreaInbound:
		err = j.store.DeleteInbound(ctx, name)
	case domain.AreaOutbound:
		err = j.store.DeleteOutbound(ctx, name)
	default:
		return fmt.Errorf("unknown area %q", area)
	}

	if errors.Is(err, domain.ErrNotFound) {
		return nil
	}

	return err
}
