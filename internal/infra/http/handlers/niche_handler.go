package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/blackboyfilms/studio-api/internal/entity"
	"github.com/blackboyfilms/studio-api/internal/usecase"
)

type NicheHandler struct {
	Repo entity.NicheRepositoryInterface
}

func NewNicheHandler(repo entity.NicheRepositoryInterface) *NicheHandler {
	return &NicheHandler{Repo: repo}
}

// HandlePublicList devolve só nichos ativos, para o site.
func (h *NicheHandler) HandlePublicList(w http.ResponseWriter, r *http.Request) {
	niches, err := h.Repo.List(r.Context(), true)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"niches": niches})
}

func (h *NicheHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	niches, err := h.Repo.List(r.Context(), false)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"niches": niches})
}

type nicheRequest struct {
	Name         string  `json:"name"`
	Slug         string  `json:"slug"`
	Description  string  `json:"description"`
	CoverImage   *string `json:"cover_image"`
	DisplayOrder int     `json:"display_order"`
	IsActive     bool    `json:"is_active"`
}

func (h *NicheHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req nicheRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "JSON inválido"})
		return
	}

	now := time.Now()
	niche := &entity.Niche{
		ID:           uuid.New().String(),
		Name:         req.Name,
		Slug:         req.Slug,
		Description:  req.Description,
		CoverImage:   req.CoverImage,
		DisplayOrder: req.DisplayOrder,
		IsActive:     req.IsActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if errs := usecase.ValidateNiche(niche); len(errs) > 0 {
		respondError(w, errs)
		return
	}

	if err := h.Repo.Create(r.Context(), niche); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, niche)
}

func (h *NicheHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	niche, err := h.Repo.FindByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, niche)
}

func (h *NicheHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	existing, err := h.Repo.FindByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, err)
		return
	}

	var req nicheRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "JSON inválido"})
		return
	}

	existing.Name = req.Name
	existing.Slug = req.Slug
	existing.Description = req.Description
	existing.CoverImage = req.CoverImage
	existing.DisplayOrder = req.DisplayOrder
	existing.IsActive = req.IsActive

	if errs := usecase.ValidateNiche(existing); len(errs) > 0 {
		respondError(w, errs)
		return
	}

	if err := h.Repo.Update(r.Context(), existing); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, existing)
}

func (h *NicheHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.Repo.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
