package usecase

import (
	"strings"

	"github.com/blackboyfilms/studio-api/internal/entity"
)

// NicheFilterAll é o valor do filtro que devolve a coleção intacta.
const NicheFilterAll = "all"

type KanbanColumn struct {
	Status string        `json:"status"`
	Title  string        `json:"title"`
	Leads  []entity.Lead `json:"leads"`
}

// Colunas fixas do quadro, na ordem de exibição.
var kanbanColumns = []struct {
	status string
	title  string
}{
	{entity.StatusNew, "Novos"},
	{entity.StatusContacted, "Em Contato"},
	{entity.StatusProposalSent, "Proposta Enviada"},
	{entity.StatusClosed, "Fechados"},
	{entity.StatusLost, "Perdidos"},
}

// FilterLeadsByNiche aplica o filtro de nicho do quadro: "all" (ou vazio)
// é identidade; caso contrário, igualdade exata sem diferenciar maiúsculas.
func FilterLeadsByNiche(leads []entity.Lead, niche string) []entity.Lead {
	if niche == "" || niche == NicheFilterAll {
		return leads
	}
	filtered := make([]entity.Lead, 0, len(leads))
	for _, lead := range leads {
		if strings.EqualFold(lead.Niche, niche) {
			filtered = append(filtered, lead)
		}
	}
	return filtered
}

// BuildKanbanBoard agrupa os leads por status. Lead sem status cai na
// coluna "new". Cada lead aparece em exatamente uma coluna.
func BuildKanbanBoard(leads []entity.Lead, nicheFilter string) []KanbanColumn {
	filtered := FilterLeadsByNiche(leads, nicheFilter)

	byStatus := make(map[string][]entity.Lead, len(kanbanColumns))
	for _, lead := range filtered {
		status := lead.CurrentStatus()
		byStatus[status] = append(byStatus[status], lead)
	}

	board := make([]KanbanColumn, 0, len(kanbanColumns))
	for _, col := range kanbanColumns {
		leadsInColumn := byStatus[col.status]
		if leadsInColumn == nil {
			leadsInColumn = []entity.Lead{}
		}
		board = append(board, KanbanColumn{
			Status: col.status,
			Title:  col.title,
			Leads:  leadsInColumn,
		})
	}
	return board
}
