package v1

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"mime"
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/kurochkinivan/doc_converter/internal/domain"
	"github.com/kurochkinivan/doc_converter/internal/storage"
)

type ArtifactReader interface {
	ReadOutbound(ctx context.Context, name string) ([]byte, error)
}

type DownloadHandler struct {
	log       *slog.Logger
	artifacts ArtifactReader
}

func NewDownloadHandler(log *slog.Logger, artifacts ArtifactReader) *DownloadHandler {
	return &DownloadHandler{
		log:       log,
		artifacts: artifacts,
	}
}

func (h *DownloadHandler) Download(w http.ResponseWriter, r *http.Request) {
	name, err := url.PathUnescape(chi.URLParam(r, "filename"))
	if err != nil || storage.ValidateName(name) != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid filename.")
		return
	}

	data, err := h.artifacts.ReadOutbound(r.Context(), name)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			writeMessage(w, http.StatusNotFound, "File not found.")
		case errors.Is(err, domain.ErrInvalidName):
			writeMessage(w, http.StatusBadRequest, "Invalid filename.")
		default:
			h.log.ErrorContext(r.Context(), "failed to read converted file",
				slog.String("filename", name),
				slog.String("err", err.Error()),
			)
			writeMessage(w, http.StatusInternalServerError, "Error downloading file.")
		}
		return
	}

	w.Header().Set("Content-Type", domain.ContentTypeByName(name))
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": name}))

	http.ServeContent(w, r, name, time.Time{}, bytes.NewReader(data))
}

// RejectNested answers paths with more than one segment after /download/.
func (h *DownloadHandler) RejectNested(w http.ResponseWriter, _ *http.Request) {
	writeMessage(w, http.StatusBadRequest, "Invalid filename.")
}
