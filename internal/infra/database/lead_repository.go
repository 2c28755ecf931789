package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/blackboyfilms/studio-api/internal/entity"
)

const leadColumns = `
	id, name, email, phone, phone_e164, niche, city, message,
	COALESCE(status, 'new'), notes, source_page,
	utm_source, utm_medium, utm_campaign, utm_content, utm_term,
	consent, created_at, updated_at`

type LeadRepository struct {
	DB *sql.DB
}

func NewLeadRepository(db *sql.DB) *LeadRepository {
	return &LeadRepository{DB: db}
}

func (r *LeadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	query := `
		INSERT INTO leads (
			id, name, email, phone, phone_e164, niche, city, message,
			status, notes, source_page,
			utm_source, utm_medium, utm_campaign, utm_content, utm_term,
			consent, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
	`

	_, err := r.DB.ExecContext(ctx, query,
		lead.ID,
		lead.Name,
		lead.Email,
		lead.Phone,
		lead.PhoneE164,
		lead.Niche,
		lead.City,
		lead.Message,
		lead.Status,
		lead.Notes,
		lead.SourcePage,
		lead.UTMSource,
		lead.UTMMedium,
		lead.UTMCampaign,
		lead.UTMContent,
		lead.UTMTerm,
		lead.Consent,
		lead.CreatedAt,
		lead.UpdatedAt,
	)
	return err
}

func (r *LeadRepository) FindByID(ctx context.Context, id string) (*entity.Lead, error) {
	query := `SELECT` + leadColumns + ` FROM leads WHERE id = $1`

	var lead entity.Lead
	err := scanLead(r.DB.QueryRowContext(ctx, query, id), &lead)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &lead, nil
}

func (r *LeadRepository) List(ctx context.Context, filter entity.LeadFilter) ([]entity.Lead, error) {
	query := `SELECT` + leadColumns + ` FROM leads`
	args := []any{}

	if filter.Status != "" {
		query += ` WHERE COALESCE(status, 'new') = $1`
		args = append(args, filter.Status)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	leads := []entity.Lead{}
	for rows.Next() {
		var lead entity.Lead
		if err := scanLead(rows, &lead); err != nil {
			return nil, err
		}
		leads = append(leads, lead)
	}
	return leads, rows.Err()
}

// UpdateStatus persiste só o novo status, devolvendo a linha inteira para
// o chamador montar o evento sem precisar de uma segunda leitura.
func (r *LeadRepository) UpdateStatus(ctx context.Context, id, status string) (*entity.Lead, error) {
	query := `
		UPDATE leads SET status = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING` + leadColumns

	var lead entity.Lead
	err := scanLead(r.DB.QueryRowContext(ctx, query, id, status), &lead)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &lead, nil
}

func (r *LeadRepository) UpdateDetails(ctx context.Context, id, status string, notes *string) (*entity.Lead, error) {
	query := `
		UPDATE leads SET status = $2, notes = $3, updated_at = NOW()
		WHERE id = $1
		RETURNING` + leadColumns

	var lead entity.Lead
	err := scanLead(r.DB.QueryRowContext(ctx, query, id, status, notes), &lead)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &lead, nil
}

func (r *LeadRepository) Delete(ctx context.Context, id string) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM leads WHERE id = $1`, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return entity.ErrNotFound
	}
	return nil
}

// Analytics agrega os leads da janela direto no banco.
func (r *LeadRepository) Analytics(ctx context.Context, since time.Time) (*entity.LeadAnalytics, error) {
	summary := &entity.LeadAnalytics{
		PerDay:      []entity.DayCount{},
		ByNiche:     []entity.NicheCount{},
		ByStatus:    []entity.StatusCount{},
		ByUTMSource: []entity.SourceCount{},
	}

	statusQuery := `
		SELECT COALESCE(status, 'new'), COUNT(*)
		FROM leads
		WHERE created_at >= $1
		GROUP BY 1
		ORDER BY 2 DESC
	`
	rows, err := r.DB.QueryContext(ctx, statusQuery, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var sc entity.StatusCount
		if err := rows.Scan(&sc.Status, &sc.Count); err != nil {
			return nil, err
		}
		summary.ByStatus = append(summary.ByStatus, sc)
		summary.Total += sc.Count
		switch sc.Status {
		case entity.StatusNew:
			summary.New = sc.Count
		case entity.StatusContacted, entity.StatusProposalSent:
			summary.InProgress += sc.Count
		case entity.StatusClosed:
			summary.Closed = sc.Count
		case entity.StatusLost:
			summary.Lost = sc.Count
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	// Taxa de conversão em %, como o painel exibe.
	if summary.Total > 0 {
		summary.ConversionRate = float64(summary.Closed) / float64(summary.Total) * 100
	}

	// Tendência: metade recente da janela contra a metade anterior.
	mid := since.Add(time.Since(since) / 2)
	trendQuery := `
		SELECT
			COUNT(*) FILTER (WHERE created_at >= $2),
			COUNT(*) FILTER (WHERE created_at < $2)
		FROM leads
		WHERE created_at >= $1
	`
	var recent, earlier int
	if err := r.DB.QueryRowContext(ctx, trendQuery, since, mid).Scan(&recent, &earlier); err != nil {
		return nil, err
	}
	if earlier > 0 {
		summary.TrendPct = float64(recent-earlier) / float64(earlier) * 100
	}

	nicheQuery := `
		SELECT niche, COUNT(*)
		FROM leads
		WHERE created_at >= $1
		GROUP BY niche
		ORDER BY 2 DESC
	`
	nicheRows, err := r.DB.QueryContext(ctx, nicheQuery, since)
	if err != nil {
		return nil, err
	}
	defer nicheRows.Close()

	for nicheRows.Next() {
		var nc entity.NicheCount
		if err := nicheRows.Scan(&nc.Niche, &nc.Count); err != nil {
			return nil, err
		}
		summary.ByNiche = append(summary.ByNiche, nc)
	}
	if err := nicheRows.Err(); err != nil {
		return nil, err
	}

	sourceQuery := `
		SELECT COALESCE(utm_source, '(direto)'), COUNT(*)
		FROM leads
		WHERE created_at >= $1
		GROUP BY 1
		ORDER BY 2 DESC
	`
	sourceRows, err := r.DB.QueryContext(ctx, sourceQuery, since)
	if err != nil {
		return nil, err
	}
	defer sourceRows.Close()

	for sourceRows.Next() {
		var sc entity.SourceCount
		if err := sourceRows.Scan(&sc.Source, &sc.Count); err != nil {
			return nil, err
		}
		summary.ByUTMSource = append(summary.ByUTMSource, sc)
	}
	if err := sourceRows.Err(); err != nil {
		return nil, err
	}

	dayQuery := `
		SELECT TO_CHAR(created_at::date, 'YYYY-MM-DD'), COUNT(*)
		FROM leads
		WHERE created_at >= $1
		GROUP BY 1
		ORDER BY 1
	`
	dayRows, err := r.DB.QueryContext(ctx, dayQuery, since)
	if err != nil {
		return nil, err
	}
	defer dayRows.Close()

	for dayRows.Next() {
		var dc entity.DayCount
		if err := dayRows.Scan(&dc.Day, &dc.Count); err != nil {
			return nil, err
		}
		summary.PerDay = append(summary.PerDay, dc)
	}
	if err := dayRows.Err(); err != nil {
		return nil, err
	}

	return summary, nil
}

func (r *LeadRepository) CountStaleNew(ctx context.Context, olderThan time.Time) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM leads
		WHERE COALESCE(status, 'new') = 'new' AND created_at < $1
	`
	var count int
	if err := r.DB.QueryRowContext(ctx, query, olderThan).Scan(&count); err != nil {
		return 0, fmt.Errorf("erro ao contar leads parados: %w", err)
	}
	return count, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanLead(row rowScanner, lead *entity.Lead) error {
	return row.Scan(
		&lead.ID,
		&lead.Name,
		&lead.Email,
		&lead.Phone,
		&lead.PhoneE164,
		&lead.Niche,
		&lead.City,
		&lead.Message,
		&lead.Status,
		&lead.Notes,
		&lead.SourcePage,
		&lead.UTMSource,
		&lead.UTMMedium,
		&lead.UTMCampaign,
		&lead.UTMContent,
		&lead.UTMTerm,
		&lead.Consent,
		&lead.CreatedAt,
		&lead.UpdatedAt,
	)
}
