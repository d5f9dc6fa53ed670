// Package converter guards access to a conversion engine: calls are
// serialized through a fixed number of slots, bounded by a timeout and their
// failures are classified into domain errors.
package converter

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/kurochkinivan/doc_converter/internal/domain"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"golang.org/x/sync/semaphore"
)

func init() {
	api.DisableConfigDir()
}

// Engine is an out-of-process or in-process document converter. Engines are
// not assumed to be safe for concurrent use.
type Engine interface {
	Name() string
	Supports(format domain.Format) bool
	Convert(ctx context.Context, data []byte, format domain.Format) ([]byte, error)
}

type Adapter struct {
	log     *slog.Logger
	engine  Engine
	slots   *semaphore.Weighted
	timeout time.Duration
}

func NewAdapter(log *slog.Logger, engine Engine, workers int, timeout time.Duration) *Adapter {
	if workers < 1 {
		workers = 1
	}

	return &Adapter{
		log:     log.With(slog.String("engine", engine.Name())),
		engine:  engine,
		slots:   semaphore.NewWeighted(int64(workers)),
		timeout: timeout,
	}
}

func (a *Adapter) Supports(format domain.Format) bool {
	return a.engine.Supports(format)
}

func (a *Adapter) Convert(ctx context.Context, data []byte, format domain.Format) ([]byte, error) {
	if err := a.slots.Acquire(ctx, 1); err != nil {
		return nil, fmt.Errorf("waiting for engine slot: %w", err)
	}
	defer a.slots.Release(1)

	engineCtx := ctx
	if a.timeout > 0 {
		var cancel context.CancelFunc
		engineCtx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	start := time.Now()
	out, err := a.engine.Convert(engineCtx, data, format)
	if err != nil {
		return nil, a.classify(ctx, engineCtx, err)
	}

	if err := validateOutput(out, format); err != nil {
		return nil, err
	}

	a.log.DebugContext(ctx, "engine call finished",
		slog.String("format", string(format)),
		slog.Int("input_bytes", len(data)),
		slog.Int("output_bytes", len(out)),
		slog.Duration("took", time.Since(start)),
	)

	return out, nil
}

func (a *Adapter) classify(ctx, engineCtx context.Context, err error) error {
	switch {
	case ctx.Err() != nil:
		// the caller went away, not the engine
		return fmt.Errorf("conversion aborted: %w", ctx.Err())
	case errors.Is(engineCtx.Err(), context.DeadlineExceeded):
		return fmt.Errorf("%w after %s: %w", domain.ErrEngineTimeout, a.timeout, err)
	case errors.Is(err, domain.ErrEngineUnavailable), errors.Is(err, domain.ErrConversionFailed):
		return err
	default:
		return fmt.Errorf("%w: %w", domain.ErrConversionFailed, err)
	}
}

func validateOutput(out []byte, format domain.Format) error {
	if len(out) == 0 {
		return fmt.Errorf("%w: engine produced empty output", domain.ErrConversionFailed)
	}

	if format != domain.FormatPDF {
		return nil
	}

	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed

	pages, err := api.PageCount(bytes.NewReader(out), conf)
	if err != nil {
		return fmt.Errorf("%w: engine produced an unreadable pdf: %w", domain.ErrConversionFailed, err)
	}

	if pages < 1 {
		return fmt.Errorf("%w: engine produced a pdf without pages", domain.ErrConversionFailed)
	}

	return nil
}
