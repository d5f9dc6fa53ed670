package v1

import (
	"net/http"

	"github.com/kurochkinivan/doc_converter/internal/pipeline"
)

type StatsProvider interface {
	Snapshot() pipeline.StatsSnapshot
}

type HealthHandler struct {
	stats StatsProvider
}

func NewHealthHandler(stats StatsProvider) *HealthHandler {
	return &HealthHandler{stats: stats}
}

type HealthResponse struct {
	Status string `json:"status"`
	pipeline.StatsSnapshot
}

func (h *HealthHandler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:        "ok",
		StatsSnapshot: h.stats.Snapshot(),
	})
}
