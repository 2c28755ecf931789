package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/blackboyfilms/studio-api/internal/entity"
	"github.com/blackboyfilms/studio-api/internal/webhook"
)

// SettingsRepository guarda blobs JSON por chave (linha única por chave),
// espelhando a tabela site_settings do site antigo.
type SettingsRepository struct {
	DB *sql.DB
}

func NewSettingsRepository(db *sql.DB) *SettingsRepository {
	return &SettingsRepository{DB: db}
}

func (r *SettingsRepository) Get(ctx context.Context, key string) (json.RawMessage, error) {
	var value []byte
	err := r.DB.QueryRowContext(ctx,
		`SELECT value FROM site_settings WHERE key = $1`, key,
	).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return json.RawMessage(value), nil
}

func (r *SettingsRepository) Put(ctx context.Context, key string, value json.RawMessage) error {
	query := `
		INSERT INTO site_settings (key, value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key)
		DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()
	`
	_, err := r.DB.ExecContext(ctx, query, key, []byte(value))
	return err
}

// WebhookConfigLoader adapta o SettingsRepository para o dispatcher:
// decodifica e valida na leitura, devolvendo nil quando não há config.
type WebhookConfigLoader struct {
	Settings entity.SettingsRepositoryInterface
}

func (l *WebhookConfigLoader) Load(ctx context.Context) (*webhook.Config, error) {
	raw, err := l.Settings.Get(ctx, entity.SettingWebhookConfig)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}
	return webhook.ParseConfig(raw)
}
