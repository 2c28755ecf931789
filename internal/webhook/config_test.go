package webhook

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseConfigSuccess(t *testing.T) {
	raw := []byte(`{
		"enabled": true,
		"url": "https://hooks.example.com/leads",
		"secret": "s3gr3d0",
		"send_on_create": true,
		"send_on_update": false,
		"send_on_status_change": true
	}`)

	cfg, err := ParseConfig(raw)

	assert.NoError(t, err)
	assert.True(t, cfg.Enabled)
	assert.Equal(t, "https://hooks.example.com/leads", cfg.URL)
	assert.Equal(t, "s3gr3d0", cfg.Secret)
	assert.True(t, cfg.SendOnCreate)
	assert.False(t, cfg.SendOnUpdate)
	assert.True(t, cfg.SendOnStatusChange)
}

func TestParseConfigMalformedJSON(t *testing.T) {
	cfg, err := ParseConfig([]byte(`{"enabled": tru`))

	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestParseConfigRejectsBadURL(t *testing.T) {
	cases := []string{
		`{"enabled": true, "url": "ftp://hooks.example.com"}`,
		`{"enabled": true, "url": "não é url"}`,
		`{"enabled": true, "url": "hooks.example.com/sem-esquema"}`,
	}
	for _, raw := range cases {
		cfg, err := ParseConfig([]byte(raw))
		assert.Error(t, err, raw)
		assert.Nil(t, cfg)
	}
}

// URL vazia é aceita: equivale a webhook sem destino, ou seja, desligado.
func TestValidateAcceptsEmptyURL(t *testing.T) {
	cfg := &Config{Enabled: true, URL: ""}
	assert.NoError(t, cfg.Validate())
}

func TestAllowsEventPerEventGates(t *testing.T) {
	cfg := &Config{
		SendOnCreate:       true,
		SendOnUpdate:       false,
		SendOnStatusChange: true,
	}

	assert.True(t, cfg.AllowsEvent(EventLeadCreated))
	assert.False(t, cfg.AllowsEvent(EventLeadUpdated))
	assert.True(t, cfg.AllowsEvent(EventStatusChanged))

	// Evento desconhecido nunca passa pelo gate.
	assert.False(t, cfg.AllowsEvent(Event("outro")))
}
