package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/kurochkinivan/doc_converter/internal/domain"
)

const recordTimeout = 5 * time.Second

// Recorder persists conversion records off the request path. Failures are
// logged and counted, never returned.
type Recorder struct {
	log        *slog.Logger
	records    <-chan *domain.ConversionRecord
	repository ConversionRecorder
	stats      *Stats
}

func NewRecorder(
	log *slog.Logger,
	records <-chan *domain.ConversionRecord,
	repository ConversionRecorder,
	stats *Stats,
) *Recorder {
	return &Recorder{
		log:        log,
		records:    records,
		repository: repository,
		stats:      stats,
	}
}

// Run persists records until ctx is cancelled, then saves whatever is still
// buffered before returning.
func (r *Recorder) Run(ctx context.Context) error {
	for {
		select {
		case record, ok := <-r.records:
			if !ok {
				return nil
			}

			r.handle(ctx, record)

		case <-ctx.Done():
			r.drain(context.WithoutCancel(ctx))
			return ctx.Err()
		}
	}
}

func (r *Recorder) drain(ctx context.Context) {
	for {
		select {
		case record, ok := <-r.records:
			if !ok {
				return
			}

			r.handle(ctx, record)

		default:
			return
		}
	}
}

func (r *Recorder) handle(ctx context.Context, record *domain.ConversionRecord) {
	log := r.log.With(
		slog.String("record_id", record.ID.String()),
		slog.String("converted_filename", record.ConvertedFilename),
	)

	if err := r.persist(ctx, record); err != nil {
		r.stats.metadataFailed.Add(1)
		log.ErrorContext(ctx, "failed to save conversion record", slog.String("err", err.Error()))
		return
	}

	log.DebugContext(ctx, "conversion record saved")
}

func (r *Recorder) persist(ctx context.Context, record *domain.ConversionRecord) error {
	if err := record.Validate(); err != nil {
		return fmt.Errorf("invalid conversion record: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, recordTimeout)
	defer cancel()

	if err := r.repository.RecordConversion(ctx, record); err != nil {
		return fmt.Errorf("failed to record conversion: %w", err)
	}

	return nil
}
