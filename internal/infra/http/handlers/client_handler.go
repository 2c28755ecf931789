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

type ClientHandler struct {
	Repo entity.ClientRepositoryInterface
}

func NewClientHandler(repo entity.ClientRepositoryInterface) *ClientHandler {
	return &ClientHandler{Repo: repo}
}

func (h *ClientHandler) HandlePublicList(w http.ResponseWriter, r *http.Request) {
	clients, err := h.Repo.List(r.Context(), true)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"clients": clients})
}

func (h *ClientHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	clients, err := h.Repo.List(r.Context(), false)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"clients": clients})
}

type clientRequest struct {
	Name         string `json:"name"`
	LogoURL      string `json:"logo_url"`
	IsActive     bool   `json:"is_active"`
	DisplayOrder int    `json:"display_order"`
}

func (h *ClientHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req clientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "JSON inválido"})
		return
	}

	now := time.Now()
	client := &entity.Client{
		ID:           uuid.New().String(),
		Name:         req.Name,
		LogoURL:      req.LogoURL,
		IsActive:     req.IsActive,
		DisplayOrder: req.DisplayOrder,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if errs := usecase.ValidateClient(client); len(errs) > 0 {
		respondError(w, errs)
		return
	}

	if err := h.Repo.Create(r.Context(), client); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, client)
}

func (h *ClientHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	client, err := h.Repo.FindByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, client)
}

func (h *ClientHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	existing, err := h.Repo.FindByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, err)
		return
	}

	var req clientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "JSON inválido"})
		return
	}

	existing.Name = req.Name
	existing.LogoURL = req.LogoURL
	existing.IsActive = req.IsActive
	existing.DisplayOrder = req.DisplayOrder

	if errs := usecase.ValidateClient(existing); len(errs) > 0 {
		respondError(w, errs)
		return
	}

	if err := h.Repo.Update(r.Context(), existing); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, existing)
}

func (h *ClientHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.Repo.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
