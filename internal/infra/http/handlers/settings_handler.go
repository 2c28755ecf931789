package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/blackboyfilms/studio-api/internal/entity"
	"github.com/blackboyfilms/studio-api/internal/usecase"
	"github.com/blackboyfilms/studio-api/internal/webhook"
)

// SettingsHandler administra as configurações persistidas em site_settings:
// webhook de automação e pixels de tracking.
type SettingsHandler struct {
	Settings   entity.SettingsRepositoryInterface
	Dispatcher *webhook.Dispatcher
}

func NewSettingsHandler(settings entity.SettingsRepositoryInterface, dispatcher *webhook.Dispatcher) *SettingsHandler {
	return &SettingsHandler{Settings: settings, Dispatcher: dispatcher}
}

func (h *SettingsHandler) HandleGetWebhookConfig(w http.ResponseWriter, r *http.Request) {
	raw, err := h.Settings.Get(r.Context(), entity.SettingWebhookConfig)
	if err != nil {
		respondError(w, err)
		return
	}
	if raw == nil {
		// Nunca configurado = desligado.
		respondJSON(w, http.StatusOK, webhook.Config{})
		return
	}

	cfg, err := webhook.ParseConfig(raw)
	if err != nil {
		// Config corrompida se comporta como desligada; o admin vê o
		// estado real e pode salvar por cima.
		respondJSON(w, http.StatusOK, webhook.Config{})
		return
	}
	respondJSON(w, http.StatusOK, cfg)
}

func (h *SettingsHandler) HandlePutWebhookConfig(w http.ResponseWriter, r *http.Request) {
	var cfg webhook.Config
	if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "JSON inválido"})
		return
	}

	if err := cfg.Validate(); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	raw, err := json.Marshal(cfg)
	if err != nil {
		respondError(w, err)
		return
	}

	if err := h.Settings.Put(r.Context(), entity.SettingWebhookConfig, raw); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, cfg)
}

// HandleTestWebhook dispara um evento "test" síncrono com um lead de
// exemplo e devolve o resultado bruto para o admin conferir.
func (h *SettingsHandler) HandleTestWebhook(w http.ResponseWriter, r *http.Request) {
	outcome := h.Dispatcher.Dispatch(r.Context(), webhook.EventTest, testLead(), "")

	message := "Webhook enviado"
	switch {
	case outcome.Skipped():
		message = "Webhook não enviado: " + outcome.Reason
	case outcome.Failed():
		message = "Falha ao enviar webhook: " + outcome.Err.Error()
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"success":  outcome.Sent(),
		"result":   outcome.Result,
		"status":   outcome.HTTPStatus,
		"response": outcome.Response,
		"message":  message,
	})
}

func testLead() *entity.Lead {
	phoneE164 := "+5511999999999"
	return &entity.Lead{
		ID:        "test-uuid",
		Name:      "Lead de Teste",
		Email:     "teste@exemplo.com",
		Phone:     "(11) 99999-9999",
		PhoneE164: &phoneE164,
		Niche:     "casamento",
		Message:   "Esta é uma mensagem de teste do webhook.",
		Status:    entity.StatusNew,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

func (h *SettingsHandler) HandleGetTrackingConfig(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.loadTrackingConfig(r)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, cfg)
}

func (h *SettingsHandler) HandlePutTrackingConfig(w http.ResponseWriter, r *http.Request) {
	var cfg entity.TrackingConfig
	if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "JSON inválido"})
		return
	}

	if errs := usecase.ValidateTrackingConfig(cfg); len(errs) > 0 {
		respondError(w, errs)
		return
	}

	raw, err := json.Marshal(cfg)
	if err != nil {
		respondError(w, err)
		return
	}

	if err := h.Settings.Put(r.Context(), entity.SettingTrackingConfig, raw); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, cfg)
}

// HandlePublicTracking alimenta o shell do site: só pixels ativos.
func (h *SettingsHandler) HandlePublicTracking(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.loadTrackingConfig(r)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, cfg.Sanitized())
}

func (h *SettingsHandler) loadTrackingConfig(r *http.Request) (entity.TrackingConfig, error) {
	var cfg entity.TrackingConfig

	raw, err := h.Settings.Get(r.Context(), entity.SettingTrackingConfig)
	if err != nil {
		return cfg, err
	}
	if raw == nil {
		return cfg, nil
	}
	if err := json.Unmarshal(raw, &cfg); err != nil {
		// Config corrompida = tudo desligado.
		return entity.TrackingConfig{}, nil
	}
	return cfg, nil
}
