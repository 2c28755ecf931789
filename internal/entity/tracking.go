package entity

// TrackingConfig agrupa os pixels de terceiros injetados no site público.
type TrackingConfig struct {
	GA4    GA4Config   `json:"ga4"`
	Meta   PixelConfig `json:"meta"`
	TikTok PixelConfig `json:"tiktok"`
}

type GA4Config struct {
	Enabled       bool   `json:"enabled"`
	MeasurementID string `json:"measurement_id"`
	DebugMode     bool   `json:"debug_mode"`
}

type PixelConfig struct {
	Enabled bool   `json:"enabled"`
	PixelID string `json:"pixel_id"`
}

// Sanitized zera IDs de pixels desativados antes de expor ao site.
func (t TrackingConfig) Sanitized() TrackingConfig {
	out := t
	if !out.GA4.Enabled {
		out.GA4 = GA4Config{}
	}
	if !out.Meta.Enabled {
		out.Meta = PixelConfig{}
	}
	if !out.TikTok.Enabled {
		out.TikTok = PixelConfig{}
	}
	return out
}
