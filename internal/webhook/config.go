package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
)

// Config é a linha "webhook_config" de site_settings, decodificada e
// validada na borda. Config malformada é tratada como webhook desligado.
type Config struct {
	Enabled            bool   `json:"enabled"`
	URL                string `json:"url"`
	Secret             string `json:"secret,omitempty"`
	SendOnCreate       bool   `json:"send_on_create"`
	SendOnUpdate       bool   `json:"send_on_update"`
	SendOnStatusChange bool   `json:"send_on_status_change"`
}

// AllowsEvent aplica o gate por tipo de evento. Eventos de teste
// não passam por aqui: só respeitam enabled + url.
func (c *Config) AllowsEvent(event Event) bool {
	switch event {
	case EventLeadCreated:
		return c.SendOnCreate
	case EventLeadUpdated:
		return c.SendOnUpdate
	case EventStatusChanged:
		return c.SendOnStatusChange
	}
	return false
}

// Validate aceita URL vazia (webhook sem destino = desligado),
// mas rejeita URL que não seja http(s) absoluta.
func (c *Config) Validate() error {
	if c.URL == "" {
		return nil
	}
	u, err := url.ParseRequestURI(c.URL)
	if err != nil {
		return fmt.Errorf("url do webhook inválida: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("url do webhook deve ser http ou https, veio %q", u.Scheme)
	}
	return nil
}

// ParseConfig decodifica e valida o JSON persistido.
func ParseConfig(raw []byte) (*Config, error) {
	var cfg Config
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("webhook_config malformado: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ConfigLoader carrega a config no momento do disparo. Load devolve
// (nil, nil) quando nenhuma config foi cadastrada.
type ConfigLoader interface {
	Load(ctx context.Context) (*Config, error)
}

// ConfigLoaderFunc adapta uma função para ConfigLoader.
type ConfigLoaderFunc func(ctx context.Context) (*Config, error)

func (f ConfigLoaderFunc) Load(ctx context.Context) (*Config, error) {
	return f(ctx)
}
