package usecase

type CreateLeadInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Niche   string `json:"niche"`
	City    string `json:"city"`
	Message string `json:"message"`
	Consent bool   `json:"consent"`

	SourcePage  string `json:"source_page"`
	UTMSource   string `json:"utm_source"`
	UTMMedium   string `json:"utm_medium"`
	UTMCampaign string `json:"utm_campaign"`
	UTMContent  string `json:"utm_content"`
	UTMTerm     string `json:"utm_term"`
}

// UpdateLeadInput é a edição de staff: só status e anotações internas.
// Campos de contato e atribuição são imutáveis após a captura.
type UpdateLeadInput struct {
	Status string  `json:"status"`
	Notes  *string `json:"notes"`
}
