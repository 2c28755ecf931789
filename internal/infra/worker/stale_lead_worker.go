package worker

import (
	"context"
	"log"
	"time"

	"github.com/blackboyfilms/studio-api/internal/infra/http/middleware"
)

type staleLeadCounter interface {
	CountStaleNew(ctx context.Context, olderThan time.Time) (int, error)
}

// StaleLeadWorker vigia leads esquecidos na coluna "new". O número vai
// para uma gauge do Prometheus e para o log, para a equipe agir.
type StaleLeadWorker struct {
	repo         staleLeadCounter
	staleWindow  time.Duration
	tickInterval time.Duration
}

func NewStaleLeadWorker(repo staleLeadCounter) *StaleLeadWorker {
	return &StaleLeadWorker{
		repo:         repo,
		staleWindow:  48 * time.Hour,
		tickInterval: 1 * time.Hour,
	}
}

func (w *StaleLeadWorker) Start(ctx context.Context) {
	log.Println("🕒 Stale Lead Worker iniciado (janela de 48h)")

	ticker := time.NewTicker(w.tickInterval)
	defer ticker.Stop()

	w.check(ctx)

	for {
		select {
		case <-ctx.Done():
			log.Println("⚠️ Stale Lead Worker encerrado")
			return
		case <-ticker.C:
			w.check(ctx)
		}
	}
}

func (w *StaleLeadWorker) check(ctx context.Context) {
	cutoff := time.Now().Add(-w.staleWindow)

	count, err := w.repo.CountStaleNew(ctx, cutoff)
	if err != nil {
		log.Printf("❌ [STALE] Erro ao contar leads parados: %v", err)
		return
	}

	middleware.SetStaleNewLeads(count)

	if count > 0 {
		log.Printf("⏰ [STALE] %d lead(s) sem contato há mais de 48h", count)
	}
}
