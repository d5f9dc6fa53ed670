package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/kurochkinivan/doc_converter/internal/domain"
	"github.com/kurochkinivan/doc_converter/internal/naming"
)

var errUnexpected = errors.New("unexpected pipeline failure")

// Orchestrator drives a single uploaded document through
// validate -> store input -> convert -> store output -> record.
type Orchestrator struct {
	log           *slog.Logger
	store         ArtifactStore
	engine        ConversionEngine
	allocator     NameAllocator
	records       chan<- *domain.ConversionRecord
	stats         *Stats
	defaultFormat domain.Format
	retainInputs  bool
	now           func() time.Time
}

func NewOrchestrator(
	log *slog.Logger,
	store ArtifactStore,
	engine ConversionEngine,
	allocator NameAllocator,
	records chan<- *domain.ConversionRecord,
	stats *Stats,
	defaultFormat domain.Format,
	retainInputs bool,
) *Orchestrator {
	return &Orchestrator{
		log:           log,
		store:         store,
		engine:        engine,
		allocator:     allocator,
		records:       records,
		stats:         stats,
		defaultFormat: defaultFormat,
		retainInputs:  retainInputs,
		now:           time.Now,
	}
}

// run is the per-request state of the pipeline.
type run struct {
	log        *slog.Logger
	doc        *domain.UploadedDocument
	format     domain.Format
	receivedAt time.Time
	state      domain.State
	input      string
	output     string
	converted  []byte
}

func (r *run) transition(ctx context.Context, to domain.State) {
	r.log.DebugContext(ctx, "state transition", slog.String("from", string(r.state)), slog.String("to", string(to)))
	r.state = to
}

type step func(ctx context.Context, r *run) error

func (o *Orchestrator) Convert(ctx context.Context, doc *domain.UploadedDocument) (_ *domain.Conversion, err error) {
	r := &run{
		log:        o.log.With(slog.String("original_filename", doc.Filename)),
		doc:        doc,
		receivedAt: o.now(),
		state:      domain.StateReceived,
	}

	defer func() {
		if p := recover(); p != nil {
			r.log.ErrorContext(ctx, "pipeline panicked",
				slog.Any("panic", p),
				slog.String("stack", string(debug.Stack())),
			)
			err = fmt.Errorf("%w: %v", errUnexpected, p)
		}

		if err != nil {
			o.fail(ctx, r, err)
			err = &domain.PipelineError{State: r.state, Err: err}
		}
	}()

	for _, s := range []step{
		o.validate,
		o.storeInput,
		o.convert,
		o.storeOutput,
		o.record,
	} {
		if err := s(ctx, r); err != nil {
			return nil, err
		}
	}

	r.transition(ctx, domain.StateCompleted)

	if !o.retainInputs {
		o.deleteInput(ctx, r)
	}

	r.log.InfoContext(ctx, "document converted",
		slog.String("stored_output", r.output),
		slog.String("format", string(r.format)),
		slog.Int("output_bytes", len(r.converted)),
	)

	return &domain.Conversion{
		OriginalFilename: doc.Filename,
		StoredInput:      r.input,
		StoredOutput:     r.output,
		Format:           r.format,
		SizeBytes:        len(r.converted),
		State:            r.state,
	}, nil
}

func (o *Orchestrator) validate(ctx context.Context, r *run) error {
	doc := r.doc

	if len(doc.Data) == 0 {
		return domain.NewValidationError("No file uploaded.")
	}

	if !domain.IsAllowedMediaType(doc.MediaType) || !sniffCompatible(doc.Data) {
		return domain.NewValidationError("Invalid file type. Only Word documents (.doc, .docx) are allowed.")
	}

	r.format = doc.Format
	if r.format == "" {
		r.format = o.defaultFormat
	}

	if !r.format.Valid() {
		return domain.NewValidationError("Unsupported target format %q.", r.format)
	}

	if !o.engine.Supports(r.format) {
		return domain.NewValidationError("Target format %q is not available.", r.format)
	}

	r.transition(ctx, domain.StateValidated)
	return nil
}

func (o *Orchestrator) storeInput(ctx context.Context, r *run) error {
	name := o.allocator.Allocate(r.doc.Filename)

	if err := o.store.WriteInbound(ctx, name, r.doc.Data); err != nil {
		return fmt.Errorf("failed to store input: %w", err)
	}

	r.input = name
	r.log = r.log.With(slog.String("stored_input", name))
	r.transition(ctx, domain.StateInputStored)
	return nil
}

func (o *Orchestrator) convert(ctx context.Context, r *run) error {
	r.transition(ctx, domain.StateConverting)

	out, err := o.engine.Convert(ctx, r.doc.Data, r.format)
	if err != nil {
		return fmt.Errorf("failed to convert %q: %w", r.input, err)
	}

	r.converted = out
	return nil
}

func (o *Orchestrator) storeOutput(ctx context.Context, r *run) error {
	name := naming.OutputName(r.input, r.format)

	if err := o.store.WriteOutbound(ctx, name, r.converted); err != nil {
		return fmt.Errorf("failed to store output: %w", err)
	}

	r.output = name
	r.transition(ctx, domain.StateOutputStored)
	return nil
}

// record hands the metadata record to the recorder stage without waiting.
func (o *Orchestrator) record(ctx context.Context, r *run) error {
	record := domain.NewConversionRecord(&domain.Conversion{
		OriginalFilename: r.doc.Filename,
		StoredOutput:     r.output,
		Format:           r.format,
		SizeBytes:        len(r.converted),
	}, r.receivedAt)

	select {
	case o.records <- record:
	default:
		o.stats.metadataDropped.Add(1)
		r.log.WarnContext(ctx, "metadata queue is full, dropping conversion record",
			slog.String("record_id", record.ID.String()),
		)
	}

	r.transition(ctx, domain.StateRecorded)
	return nil
}

// fail is the single cleanup path for every failure exit.
func (o *Orchestrator) fail(ctx context.Context, r *run, err error) {
	from := r.state
	r.state = failureState(from, err)

	ctx = context.WithoutCancel(ctx)

	if r.output != "" {
		if delErr := o.store.DeleteOutbound(ctx, r.output); delErr != nil && !errors.Is(delErr, domain.ErrNotFound) {
			r.log.ErrorContext(ctx, "failed to clean up stored output", slog.String("err", delErr.Error()))
		}
	}

	o.deleteInput(ctx, r)

	level := slog.LevelError
	if r.state == domain.StateValidationFailed {
		level = slog.LevelInfo
	}

	r.log.Log(ctx, level, "conversion pipeline failed",
		slog.String("failed_in", string(from)),
		slog.String("state", string(r.state)),
		slog.String("err", err.Error()),
	)
}

func (o *Orchestrator) deleteInput(ctx context.Context, r *run) {
	if r.input == "" {
		return
	}

	if err := o.store.DeleteInbound(ctx, r.input); err != nil && !errors.Is(err, domain.ErrNotFound) {
		r.log.ErrorContext(ctx, "failed to clean up stored input", slog.String("err", err.Error()))
	}
}

func failureState(from domain.State, err error) domain.State {
	switch {
	case domain.IsValidation(err):
		return domain.StateValidationFailed
	case from == domain.StateConverting && domain.IsEngineError(err):
		return domain.StateConversionFailed
	default:
		return domain.StateFailed
	}
}

// sniffCompatible reports whether the payload looks like a Word document or
// the container format one is stored in.
func sniffCompatible(data []byte) bool {
	for m := mimetype.Detect(data); m != nil; m = m.Parent() {
		if domain.IsAllowedMediaType(m.String()) || m.Is("application/zip") || m.Is("application/x-ole-storage") {
			return true
		}
	}

	return false
}
