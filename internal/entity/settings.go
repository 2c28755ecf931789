package entity

import (
	"context"
	"encoding/json"
)

// Chaves conhecidas da tabela site_settings (linha única por chave).
const (
	SettingWebhookConfig  = "webhook_config"
	SettingTrackingConfig = "tracking_config"
)

// SettingsRepositoryInterface guarda valores JSON por chave.
// Get devolve (nil, nil) quando a chave não existe.
type SettingsRepositoryInterface interface {
	Get(ctx context.Context, key string) (json.RawMessage, error)
	Put(ctx context.Context, key string, value json.RawMessage) error
}
