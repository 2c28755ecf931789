package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/blackboyfilms/studio-api/internal/entity"
	"github.com/blackboyfilms/studio-api/internal/usecase"
)

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

type errorResponse struct {
	Error  string                    `json:"error"`
	Fields []usecase.ValidationError `json:"fields,omitempty"`
}

// respondError traduz a taxonomia de erros para HTTP:
// validação → 400 com erros por campo, NOT_FOUND → 404, CONFLICT → 409,
// o resto → 500 genérico (detalhe só no log).
func respondError(w http.ResponseWriter, err error) {
	var validationErrs usecase.ValidationErrors
	if errors.As(err, &validationErrs) {
		respondJSON(w, http.StatusBadRequest, errorResponse{
			Error:  "dados inválidos",
			Fields: validationErrs,
		})
		return
	}

	var domainErr *usecase.DomainError
	if errors.As(err, &domainErr) {
		switch domainErr.Code {
		case usecase.CodeNotFound:
			respondJSON(w, http.StatusNotFound, errorResponse{Error: domainErr.Message})
		case usecase.CodeConflict:
			respondJSON(w, http.StatusConflict, errorResponse{Error: domainErr.Message})
		default:
			respondJSON(w, http.StatusBadRequest, errorResponse{Error: domainErr.Message})
		}
		return
	}

	if errors.Is(err, entity.ErrNotFound) {
		respondJSON(w, http.StatusNotFound, errorResponse{Error: "registro não encontrado"})
		return
	}
	if errors.Is(err, entity.ErrSlugTaken) {
		respondJSON(w, http.StatusConflict, errorResponse{Error: "slug já está em uso"})
		return
	}

	log.Printf("❌ [HTTP] Erro interno: %v", err)
	respondJSON(w, http.StatusInternalServerError, errorResponse{Error: "erro interno"})
}
