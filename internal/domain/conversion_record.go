package domain

import (
	"time"

	"github.com/google/uuid"
)

type ConversionRecord struct {
	ID                uuid.UUID `csv:"id"                 db:"id"                 json:"id"`
	OriginalFilename  string    `csv:"original_filename"  db:"original_filename"  json:"originalFilename"`
	ConvertedFilename string    `csv:"converted_filename" db:"converted_filename" json:"convertedFilename"`
	Format            Format    `csv:"format"             db:"format"             json:"format"`
	SizeBytes         int64     `csv:"size_bytes"         db:"size_bytes"         json:"sizeBytes"`
	UploadTimestamp   time.Time `csv:"upload_timestamp"   db:"upload_timestamp"   json:"uploadTimestamp"`
}

func NewConversionRecord(c *Conversion, uploadedAt time.Time) *ConversionRecord {
	return &ConversionRecord{
		ID:                uuid.New(),
		OriginalFilename:  c.OriginalFilename,
		ConvertedFilename: c.StoredOutput,
		Format:            c.Format,
		SizeBytes:         int64(c.SizeBytes),
		UploadTimestamp:   uploadedAt.UTC(),
	}
}

func (r *ConversionRecord) Validate() error {
	if r.OriginalFilename == "" {
		return NewValidationError("original_filename is required")
	}

	if r.ConvertedFilename == "" {
		return NewValidationError("converted_filename is required")
	}

	return nil
}
