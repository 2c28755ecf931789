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

type PortfolioHandler struct {
	Repo entity.PortfolioRepositoryInterface
}

func NewPortfolioHandler(repo entity.PortfolioRepositoryInterface) *PortfolioHandler {
	return &PortfolioHandler{Repo: repo}
}

// HandlePublicList devolve só itens publicados, com filtro opcional de nicho.
func (h *PortfolioHandler) HandlePublicList(w http.ResponseWriter, r *http.Request) {
	items, err := h.Repo.List(r.Context(), entity.PortfolioFilter{
		Niche:         r.URL.Query().Get("niche"),
		OnlyPublished: true,
	})
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"items": items})
}

func (h *PortfolioHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	items, err := h.Repo.List(r.Context(), entity.PortfolioFilter{
		Niche: r.URL.Query().Get("niche"),
	})
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"items": items})
}

type portfolioRequest struct {
	Title        string  `json:"title"`
	Description  *string `json:"description"`
	Niche        string  `json:"niche"`
	VideoURL     string  `json:"video_url"`
	ThumbnailURL *string `json:"thumbnail_url"`
	IsPublished  bool    `json:"is_published"`
	DisplayOrder int     `json:"display_order"`
}

func (h *PortfolioHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req portfolioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "JSON inválido"})
		return
	}

	now := time.Now()
	item := &entity.PortfolioItem{
		ID:           uuid.New().String(),
		Title:        req.Title,
		Description:  req.Description,
		Niche:        req.Niche,
		VideoURL:     req.VideoURL,
		ThumbnailURL: req.ThumbnailURL,
		IsPublished:  req.IsPublished,
		DisplayOrder: req.DisplayOrder,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if errs := usecase.ValidatePortfolioItem(item); len(errs) > 0 {
		respondError(w, errs)
		return
	}

	if err := h.Repo.Create(r.Context(), item); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, item)
}

func (h *PortfolioHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	item, err := h.Repo.FindByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, item)
}

func (h *PortfolioHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	existing, err := h.Repo.FindByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, err)
		return
	}

	var req portfolioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "JSON inválido"})
		return
	}

	existing.Title = req.Title
	existing.Description = req.Description
	existing.Niche = req.Niche
	existing.VideoURL = req.VideoURL
	existing.ThumbnailURL = req.ThumbnailURL
	existing.IsPublished = req.IsPublished
	existing.DisplayOrder = req.DisplayOrder

	if errs := usecase.ValidatePortfolioItem(existing); len(errs) > 0 {
		respondError(w, errs)
		return
	}

	if err := h.Repo.Update(r.Context(), existing); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, existing)
}

func (h *PortfolioHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.Repo.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
