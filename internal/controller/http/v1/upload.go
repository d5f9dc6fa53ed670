package v1

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/kurochkinivan/doc_converter/internal/domain"
)

const (
	documentField = "document"
	formatField   = "format"

	multipartMemory = 32 << 20
)

type Converter interface {
	Convert(ctx context.Context, doc *domain.UploadedDocument) (*domain.Conversion, error)
}

type UploadHandler struct {
	log           *slog.Logger
	converter     Converter
	maxUploadSize int64
}

func NewUploadHandler(log *slog.Logger, converter Converter, maxUploadSize int64) *UploadHandler {
	return &UploadHandler{
		log:           log,
		converter:     converter,
		maxUploadSize: maxUploadSize,
	}
}

type UploadResponse struct {
	Message     string `json:"message"`
	DownloadURL string `json:"downloadUrl"`
}

func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if h.maxUploadSize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)
	}

	doc, err := h.readDocument(r)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeMessage(w, http.StatusRequestEntityTooLarge, "File is too large.")
			return
		}

		writeMessage(w, http.StatusBadRequest, "No file uploaded.")
		return
	}

	conversion, err := h.converter.Convert(r.Context(), doc)
	if err != nil {
		var validationErr *domain.ValidationError
		switch {
		case errors.As(err, &validationErr):
			writeMessage(w, http.StatusBadRequest, validationErr.Message)
		case domain.IsEngineError(err):
			writeMessage(w, http.StatusInternalServerError, "Error converting file.")
		default:
			writeMessage(w, http.StatusInternalServerError, "Server error during file conversion.")
		}
		return
	}

	writeJSON(w, http.StatusOK, UploadResponse{
		Message:     "File converted successfully!",
		DownloadURL: "/api/download/" + url.PathEscape(conversion.StoredOutput),
	})
}

func (h *UploadHandler) readDocument(r *http.Request) (*domain.UploadedDocument, error) {
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		return nil, err
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile(documentField)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}

	h.log.DebugContext(r.Context(), "document received",
		slog.String("filename", header.Filename),
		slog.Int64("size", header.Size),
	)

	return &domain.UploadedDocument{
		Filename:  header.Filename,
		MediaType: header.Header.Get("Content-Type"),
		Data:      data,
		Format:    domain.Format(strings.ToLower(strings.TrimSpace(r.FormValue(formatField)))),
	}, nil
}
