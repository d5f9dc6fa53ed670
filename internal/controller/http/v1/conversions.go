package v1

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/jszwec/csvutil"
	"github.com/kurochkinivan/doc_converter/internal/domain"
)

type ConversionsRepository interface {
	Conversions(ctx context.Context, limit, offset uint64) ([]*domain.ConversionRecord, int, error)
}

type ConversionsHandler struct {
	log                   *slog.Logger
	conversionsRepository ConversionsRepository
}

func NewConversionsHandler(log *slog.Logger, conversionsRepository ConversionsRepository) *ConversionsHandler {
	return &ConversionsHandler{
		log:                   log,
		conversionsRepository: conversionsRepository,
	}
}

type GetConversionsResponse struct {
	Conversions []*domain.ConversionRecord `json:"conversions"`
	Pagination  Pagination                 `json:"pagination"`
}

func (h *ConversionsHandler) GetConversions(w http.ResponseWriter, r *http.Request) {
	page, limit, err := parsePagination(r)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	format := r.URL.Query().Get("format")
	if format != "" && format != "json" && format != "csv" {
		writeMessage(w, http.StatusBadRequest, "invalid format, must be json or csv")
		return
	}

	offset := (page - 1) * limit

	conversions, total, err := h.conversionsRepository.Conversions(r.Context(), limit, offset)
	if err != nil {
		h.log.ErrorContext(r.Context(), "failed to list conversions", slog.String("err", err.Error()))
		writeMessage(w, http.StatusInternalServerError, "Error listing conversions.")
		return
	}

	if format == "csv" {
		data, err := csvutil.Marshal(conversions)
		if err != nil {
			h.log.ErrorContext(r.Context(), "failed to encode conversions csv", slog.String("err", err.Error()))
			writeMessage(w, http.StatusInternalServerError, "Error listing conversions.")
			return
		}

		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", `attachment; filename="conversions.csv"`)
		w.Write(data)
		return
	}

	if conversions == nil {
		conversions = []*domain.ConversionRecord{}
	}

	writeJSON(w, http.StatusOK, GetConversionsResponse{
		Conversions: conversions,
		Pagination: Pagination{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: (total + int(limit) - 1) / int(limit),
		},
	})
}
