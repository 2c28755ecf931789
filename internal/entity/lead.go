package entity

import (
	"context"
	"time"
)

// Status do lead no funil de vendas.
const (
	StatusNew          = "new"
	StatusContacted    = "contacted"
	StatusProposalSent = "proposal_sent"
	StatusClosed       = "closed"
	StatusLost         = "lost"
)

// LeadStatuses na ordem de exibição do quadro Kanban.
var LeadStatuses = []string{
	StatusNew,
	StatusContacted,
	StatusProposalSent,
	StatusClosed,
	StatusLost,
}

func IsValidLeadStatus(status string) bool {
	for _, s := range LeadStatuses {
		if s == status {
			return true
		}
	}
	return false
}

type Lead struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Phone     string  `json:"phone"`
	PhoneE164 *string `json:"phone_e164,omitempty"`
	Niche     string  `json:"niche"`
	City      *string `json:"city,omitempty"`
	Message   string  `json:"message"`
	Status    string  `json:"status"`
	Notes     *string `json:"notes,omitempty"`

	// Atribuição de origem. Gravada na captura, imutável depois.
	SourcePage  *string `json:"source_page,omitempty"`
	UTMSource   *string `json:"utm_source,omitempty"`
	UTMMedium   *string `json:"utm_medium,omitempty"`
	UTMCampaign *string `json:"utm_campaign,omitempty"`
	UTMContent  *string `json:"utm_content,omitempty"`
	UTMTerm     *string `json:"utm_term,omitempty"`

	Consent   *bool     `json:"consent,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CurrentStatus trata status vazio/ausente como "new".
func (l *Lead) CurrentStatus() string {
	if l.Status == "" {
		return StatusNew
	}
	return l.Status
}

type LeadFilter struct {
	Status string
}

type LeadRepositoryInterface interface {
	Create(ctx context.Context, lead *Lead) error
	FindByID(ctx context.Context, id string) (*Lead, error)
	List(ctx context.Context, filter LeadFilter) ([]Lead, error)
	UpdateStatus(ctx context.Context, id, status string) (*Lead, error)
	UpdateDetails(ctx context.Context, id, status string, notes *string) (*Lead, error)
	Delete(ctx context.Context, id string) error
}
