package entity

import (
	"context"
	"time"
)

type StatusCount struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

type NicheCount struct {
	Niche string `json:"niche"`
	Count int    `json:"count"`
}

type SourceCount struct {
	Source string `json:"source"`
	Count  int    `json:"count"`
}

type DayCount struct {
	Day   string `json:"day"` // YYYY-MM-DD
	Count int    `json:"count"`
}

// LeadAnalytics resume os leads capturados dentro de uma janela.
// TrendPct compara a metade recente da janela com a anterior, em %.
type LeadAnalytics struct {
	Total          int           `json:"total"`
	New            int           `json:"new"`
	InProgress     int           `json:"in_progress"`
	Closed         int           `json:"closed"`
	Lost           int           `json:"lost"`
	ConversionRate float64       `json:"conversion_rate"`
	TrendPct       float64       `json:"trend_pct"`
	PerDay         []DayCount    `json:"per_day"`
	ByNiche        []NicheCount  `json:"by_niche"`
	ByStatus       []StatusCount `json:"by_status"`
	ByUTMSource    []SourceCount `json:"by_utm_source"`
}

type LeadAnalyticsRepositoryInterface interface {
	Analytics(ctx context.Context, since time.Time) (*LeadAnalytics, error)
	CountStaleNew(ctx context.Context, olderThan time.Time) (int, error)
}
