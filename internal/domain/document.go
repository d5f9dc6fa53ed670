package domain

import "time"

// UploadedDocument is the request-scoped input of the conversion pipeline.
type UploadedDocument struct {
	Filename  string
	MediaType string
	Data      []byte
	Format    Format
}

// Conversion is the outcome of a completed pipeline run.
type Conversion struct {
	OriginalFilename string
	StoredInput      string
	StoredOutput     string
	Format           Format
	SizeBytes        int
	State            State
}

type Area string

const (
	AreaInbound  Area = "inbound"
	AreaOutbound Area = "outbound"
)

// Artifact is a listing entry of the artifact store.
type Artifact struct {
	Name    string
	Size    int64
	ModTime time.Time
}
