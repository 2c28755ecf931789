package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/blackboyfilms/studio-api/internal/entity"
)

type AnalyticsHandler struct {
	Repo entity.LeadAnalyticsRepositoryInterface
}

func NewAnalyticsHandler(repo entity.LeadAnalyticsRepositoryInterface) *AnalyticsHandler {
	return &AnalyticsHandler{Repo: repo}
}

// HandleSummary agrega os leads da janela pedida (7, 30 ou 90 dias no
// painel; default 30).
func (h *AnalyticsHandler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	days := 30
	if raw := r.URL.Query().Get("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 || parsed > 365 {
			respondJSON(w, http.StatusBadRequest, errorResponse{Error: "days deve ser um inteiro entre 1 e 365"})
			return
		}
		days = parsed
	}

	since := time.Now().AddDate(0, 0, -days)

	summary, err := h.Repo.Analytics(r.Context(), since)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"period_days": days,
		"since":       since.UTC().Format(time.RFC3339),
		"summary":     summary,
	})
}
