package webhook

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/blackboyfilms/studio-api/internal/entity"
)

// O contrato do webhook exige todas as chaves presentes: opcional
// ausente sai como null explícito, nunca some do JSON.
func TestPayloadOptionalFieldsMarshalAsNull(t *testing.T) {
	lead := &entity.Lead{
		ID:        "lead-123",
		Name:      "Ana Souza",
		Email:     "ana@example.com",
		Phone:     "(11) 98888-7777",
		Niche:     "casamento",
		Message:   "Quero um vídeo do meu casamento.",
		CreatedAt: time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC),
	}

	payload := NewPayload(EventLeadCreated, lead, "", time.Date(2025, 3, 10, 14, 30, 0, 0, time.UTC))
	raw, err := json.Marshal(payload)
	assert.NoError(t, err)

	var decoded map[string]any
	assert.NoError(t, json.Unmarshal(raw, &decoded))

	data, ok := decoded["data"].(map[string]any)
	assert.True(t, ok)

	for _, key := range []string{
		"phone_e164", "city", "notes", "source_page",
		"utm_source", "utm_medium", "utm_campaign", "utm_content", "utm_term",
		"consent", "status",
	} {
		v, present := data[key]
		assert.True(t, present, "chave %s ausente no payload", key)
		assert.Nil(t, v, "chave %s deveria ser null", key)
	}

	assert.Equal(t, "lead-123", data["id"])
	assert.Equal(t, "2025-03-10T12:00:00Z", data["created_at"])

	// previous_status não aparece fora de status_changed.
	_, present := decoded["previous_status"]
	assert.False(t, present)
}

func TestPayloadPreviousStatusOnlyOnStatusChange(t *testing.T) {
	lead := &entity.Lead{ID: "lead-123", Status: entity.StatusContacted}
	now := time.Date(2025, 3, 10, 14, 30, 0, 0, time.UTC)

	p := NewPayload(EventStatusChanged, lead, entity.StatusNew, now)
	assert.Equal(t, entity.StatusNew, p.PreviousStatus)

	// Mesmo com status anterior informado, outros eventos não o carregam.
	p = NewPayload(EventLeadUpdated, lead, entity.StatusNew, now)
	assert.Empty(t, p.PreviousStatus)
}

func TestPayloadTimestampIsUTC(t *testing.T) {
	saoPaulo := time.FixedZone("BRT", -3*60*60)
	now := time.Date(2025, 3, 10, 11, 30, 0, 0, saoPaulo)

	p := NewPayload(EventLeadCreated, &entity.Lead{}, "", now)

	assert.Equal(t, "2025-03-10T14:30:00Z", p.Timestamp)
}
