package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/blackboyfilms/studio-api/internal/entity"
	"github.com/blackboyfilms/studio-api/internal/infra/http/middleware"
	"github.com/blackboyfilms/studio-api/internal/usecase"
)

// AdminLeadHandler é o console de leads: listagem, quadro Kanban,
// detalhe, edição de staff, transição de status e exclusão.
type AdminLeadHandler struct {
	LeadRepo     entity.LeadRepositoryInterface
	UpdateLeadUC *usecase.UpdateLeadUseCase
	SetStatusUC  *usecase.SetLeadStatusUseCase
}

func NewAdminLeadHandler(
	leadRepo entity.LeadRepositoryInterface,
	updateLeadUC *usecase.UpdateLeadUseCase,
	setStatusUC *usecase.SetLeadStatusUseCase,
) *AdminLeadHandler {
	return &AdminLeadHandler{
		LeadRepo:     leadRepo,
		UpdateLeadUC: updateLeadUC,
		SetStatusUC:  setStatusUC,
	}
}

func (h *AdminLeadHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")
	if status != "" && !entity.IsValidLeadStatus(status) {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "status inválido: " + status})
		return
	}

	leads, err := h.LeadRepo.List(r.Context(), entity.LeadFilter{Status: status})
	if err != nil {
		respondError(w, err)
		return
	}

	// O filtro de nicho é o mesmo predicado do quadro ("all" = identidade).
	leads = usecase.FilterLeadsByNiche(leads, r.URL.Query().Get("niche"))

	respondJSON(w, http.StatusOK, map[string]any{"leads": leads})
}

func (h *AdminLeadHandler) HandleKanban(w http.ResponseWriter, r *http.Request) {
	leads, err := h.LeadRepo.List(r.Context(), entity.LeadFilter{})
	if err != nil {
		respondError(w, err)
		return
	}

	board := usecase.BuildKanbanBoard(leads, r.URL.Query().Get("niche"))
	respondJSON(w, http.StatusOK, map[string]any{"columns": board})
}

func (h *AdminLeadHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	lead, err := h.LeadRepo.FindByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, lead)
}

func (h *AdminLeadHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var input usecase.UpdateLeadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "JSON inválido"})
		return
	}

	lead, err := h.UpdateLeadUC.Execute(r.Context(), chi.URLParam(r, "id"), input)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, lead)
}

type setStatusRequest struct {
	Status string `json:"status"`
}

func (h *AdminLeadHandler) HandleSetStatus(w http.ResponseWriter, r *http.Request) {
	var req setStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "JSON inválido"})
		return
	}

	lead, err := h.SetStatusUC.Execute(r.Context(), chi.URLParam(r, "id"), req.Status)
	if err != nil {
		respondError(w, err)
		return
	}

	middleware.RecordStatusChange(req.Status)
	respondJSON(w, http.StatusOK, lead)
}

func (h *AdminLeadHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.LeadRepo.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
