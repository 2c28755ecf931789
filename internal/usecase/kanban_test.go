package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/blackboyfilms/studio-api/internal/entity"
)

func boardLeads() []entity.Lead {
	return []entity.Lead{
		{ID: "l1", Niche: "casamento", Status: entity.StatusNew},
		{ID: "l2", Niche: "empresarial", Status: entity.StatusContacted},
		{ID: "l3", Niche: "Casamento", Status: entity.StatusClosed},
		{ID: "l4", Niche: "evento", Status: ""},
		{ID: "l5", Niche: "casamento", Status: entity.StatusLost},
	}
}

func TestFilterLeadsByNicheAllIsIdentity(t *testing.T) {
	leads := boardLeads()

	assert.Equal(t, leads, FilterLeadsByNiche(leads, NicheFilterAll))
	assert.Equal(t, leads, FilterLeadsByNiche(leads, ""))
}

func TestFilterLeadsByNicheIgnoresCase(t *testing.T) {
	filtered := FilterLeadsByNiche(boardLeads(), "CASAMENTO")

	assert.Len(t, filtered, 3)
	for _, lead := range filtered {
		assert.True(t, lead.Niche == "casamento" || lead.Niche == "Casamento")
	}
}

func TestFilterLeadsByNicheNoMatches(t *testing.T) {
	filtered := FilterLeadsByNiche(boardLeads(), "imobiliário")
	assert.Empty(t, filtered)
}

func TestBuildKanbanBoardGroupsByStatus(t *testing.T) {
	board := BuildKanbanBoard(boardLeads(), NicheFilterAll)

	assert.Len(t, board, 5)

	// Ordem fixa das colunas.
	assert.Equal(t, entity.StatusNew, board[0].Status)
	assert.Equal(t, entity.StatusContacted, board[1].Status)
	assert.Equal(t, entity.StatusProposalSent, board[2].Status)
	assert.Equal(t, entity.StatusClosed, board[3].Status)
	assert.Equal(t, entity.StatusLost, board[4].Status)

	// Lead sem status cai em "Novos" junto com o l1.
	assert.Len(t, board[0].Leads, 2)
	assert.Len(t, board[1].Leads, 1)
	assert.Len(t, board[3].Leads, 1)
	assert.Len(t, board[4].Leads, 1)

	// Coluna vazia vem como lista vazia, nunca nil (o front espera []).
	assert.NotNil(t, board[2].Leads)
	assert.Empty(t, board[2].Leads)

	// Cada lead aparece em exatamente uma coluna.
	total := 0
	for _, col := range board {
		total += len(col.Leads)
	}
	assert.Equal(t, len(boardLeads()), total)
}

func TestBuildKanbanBoardWithNicheFilter(t *testing.T) {
	board := BuildKanbanBoard(boardLeads(), "casamento")

	total := 0
	for _, col := range board {
		total += len(col.Leads)
	}
	assert.Equal(t, 3, total)
	assert.Len(t, board[0].Leads, 1)
	assert.Len(t, board[3].Leads, 1)
	assert.Len(t, board[4].Leads, 1)
}

func TestBuildKanbanBoardEmptyInput(t *testing.T) {
	board := BuildKanbanBoard(nil, NicheFilterAll)

	assert.Len(t, board, 5)
	for _, col := range board {
		assert.NotNil(t, col.Leads)
		assert.Empty(t, col.Leads)
	}
}
