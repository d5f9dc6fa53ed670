package pipeline

import (
	"context"

	"github.com/kurochkinivan/doc_converter/internal/domain"
)

type ArtifactStore interface {
	WriteInbound(ctx context.Context, name string, data []byte) error
	WriteOutbound(ctx context.Context, name string, data []byte) error
	ReadOutbound(ctx context.Context, name string) ([]byte, error)
	DeleteInbound(ctx context.Context, name string) error
	DeleteOutbound(ctx context.Context, name string) error
	Artifacts(ctx context.Context, area domain.Area) ([]*domain.Artifact, error)
}

type ConversionEngine interface {
	Supports(format domain.Format) bool
	Convert(ctx context.Context, data []byte, format domain.Format) ([]byte, error)
}

type NameAllocator interface {
	Allocate(original string) string
}

type ConversionRecorder interface {
	RecordConversion(ctx context.Context, record *domain.ConversionRecord) error
}
