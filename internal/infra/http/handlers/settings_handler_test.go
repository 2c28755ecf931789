package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/blackboyfilms/studio-api/internal/entity"
	"github.com/blackboyfilms/studio-api/internal/webhook"
)

func TestGetWebhookConfigNeverConfigured(t *testing.T) {
	mockSettings := new(MockSettingsRepository)
	mockSettings.On("Get", mock.Anything, entity.SettingWebhookConfig).Return(nil, nil)

	h := NewSettingsHandler(mockSettings, nil)

	rec := httptest.NewRecorder()
	h.HandleGetWebhookConfig(rec, httptest.NewRequest(http.MethodGet, "/settings/webhook", nil))

	assert.Equal(t, http.StatusOK, rec.Code)

	var cfg webhook.Config
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cfg))
	assert.False(t, cfg.Enabled)
	assert.Empty(t, cfg.URL)
}

// Config corrompida no banco aparece para o admin como desligada,
// para que ele possa salvar por cima.
func TestGetWebhookConfigCorruptBehavesAsDisabled(t *testing.T) {
	mockSettings := new(MockSettingsRepository)
	mockSettings.On("Get", mock.Anything, entity.SettingWebhookConfig).
		Return(json.RawMessage(`{"enabled": tru`), nil)

	h := NewSettingsHandler(mockSettings, nil)

	rec := httptest.NewRecorder()
	h.HandleGetWebhookConfig(rec, httptest.NewRequest(http.MethodGet, "/settings/webhook", nil))

	assert.Equal(t, http.StatusOK, rec.Code)

	var cfg webhook.Config
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cfg))
	assert.False(t, cfg.Enabled)
}

func TestPutWebhookConfigPersists(t *testing.T) {
	mockSettings := new(MockSettingsRepository)
	mockSettings.On("Put", mock.Anything, entity.SettingWebhookConfig, mock.Anything).Return(nil)

	h := NewSettingsHandler(mockSettings, nil)

	body := bytes.NewBufferString(`{
		"enabled": true,
		"url": "https://hooks.example.com/leads",
		"send_on_create": true
	}`)
	rec := httptest.NewRecorder()
	h.HandlePutWebhookConfig(rec, httptest.NewRequest(http.MethodPut, "/settings/webhook", body))

	assert.Equal(t, http.StatusOK, rec.Code)
	mockSettings.AssertCalled(t, "Put", mock.Anything, entity.SettingWebhookConfig, mock.Anything)
}

func TestPutWebhookConfigRejectsBadURL(t *testing.T) {
	mockSettings := new(MockSettingsRepository)

	h := NewSettingsHandler(mockSettings, nil)

	body := bytes.NewBufferString(`{"enabled": true, "url": "ftp://hooks.example.com"}`)
	rec := httptest.NewRecorder()
	h.HandlePutWebhookConfig(rec, httptest.NewRequest(http.MethodPut, "/settings/webhook", body))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	mockSettings.AssertNotCalled(t, "Put")
}

func TestTestWebhookDispatchesSynchronously(t *testing.T) {
	var gotPayload webhook.Payload
	target := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&gotPayload)
		w.Write([]byte("ok"))
	}))
	defer target.Close()

	raw, _ := json.Marshal(webhook.Config{Enabled: true, URL: target.URL})
	mockSettings := new(MockSettingsRepository)
	mockSettings.On("Get", mock.Anything, entity.SettingWebhookConfig).Return(json.RawMessage(raw), nil)

	dispatcher := webhook.NewDispatcher(webhook.ConfigLoaderFunc(
		func(ctx context.Context) (*webhook.Config, error) {
			rawCfg, err := mockSettings.Get(ctx, entity.SettingWebhookConfig)
			if err != nil || rawCfg == nil {
				return nil, err
			}
			return webhook.ParseConfig(rawCfg)
		},
	))

	h := NewSettingsHandler(mockSettings, dispatcher)

	rec := httptest.NewRecorder()
	h.HandleTestWebhook(rec, httptest.NewRequest(http.MethodPost, "/settings/webhook/test", nil))

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success bool   `json:"success"`
		Result  string `json:"result"`
		Status  int    `json:"status"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, webhook.ResultSent, resp.Result)
	assert.Equal(t, http.StatusOK, resp.Status)

	// Evento "test" passa direto pelos gates por tipo e leva o lead fixo.
	assert.Equal(t, webhook.EventTest, gotPayload.Event)
	assert.Equal(t, "test-uuid", gotPayload.Data.ID)
	assert.Equal(t, "Lead de Teste", gotPayload.Data.Name)
}

func TestTestWebhookWithoutConfig(t *testing.T) {
	mockSettings := new(MockSettingsRepository)

	dispatcher := webhook.NewDispatcher(webhook.ConfigLoaderFunc(
		func(ctx context.Context) (*webhook.Config, error) {
			return nil, nil
		},
	))

	h := NewSettingsHandler(mockSettings, dispatcher)

	rec := httptest.NewRecorder()
	h.HandleTestWebhook(rec, httptest.NewRequest(http.MethodPost, "/settings/webhook/test", nil))

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success bool   `json:"success"`
		Result  string `json:"result"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, webhook.ResultSkipped, resp.Result)
}

func TestPublicTrackingOnlyActivePixels(t *testing.T) {
	raw, _ := json.Marshal(entity.TrackingConfig{
		GA4:  entity.GA4Config{Enabled: true, MeasurementID: "G-AB12CD34EF"},
		Meta: entity.PixelConfig{Enabled: false, PixelID: "123456789012345"},
	})
	mockSettings := new(MockSettingsRepository)
	mockSettings.On("Get", mock.Anything, entity.SettingTrackingConfig).Return(json.RawMessage(raw), nil)

	h := NewSettingsHandler(mockSettings, nil)

	rec := httptest.NewRecorder()
	h.HandlePublicTracking(rec, httptest.NewRequest(http.MethodGet, "/api/tracking", nil))

	assert.Equal(t, http.StatusOK, rec.Code)

	var cfg entity.TrackingConfig
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cfg))
	assert.True(t, cfg.GA4.Enabled)
	assert.Equal(t, "G-AB12CD34EF", cfg.GA4.MeasurementID)

	// Pixel desligado sai zerado: o ID não vaza para o site.
	assert.False(t, cfg.Meta.Enabled)
	assert.Empty(t, cfg.Meta.PixelID)
}

func TestPutTrackingConfigRejectsBadPixelID(t *testing.T) {
	mockSettings := new(MockSettingsRepository)

	h := NewSettingsHandler(mockSettings, nil)

	body := bytes.NewBufferString(`{"ga4": {"enabled": true, "measurement_id": "UA-12345-6"}}`)
	rec := httptest.NewRecorder()
	h.HandlePutTrackingConfig(rec, httptest.NewRequest(http.MethodPut, "/settings/tracking", body))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	mockSettings.AssertNotCalled(t, "Put")
}
