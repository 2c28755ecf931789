package handlers

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/blackboyfilms/studio-api/internal/infra/http/middleware"
	"github.com/blackboyfilms/studio-api/internal/usecase"
)

// LeadHandler expõe a captura pública do formulário de contato.
type LeadHandler struct {
	createLeadUC *usecase.CreateLeadUseCase
	rateLimiter  *RateLimiter
}

func NewLeadHandler(createLeadUC *usecase.CreateLeadUseCase) *LeadHandler {
	return &LeadHandler{
		createLeadUC: createLeadUC,
		rateLimiter:  NewRateLimiter(10, time.Minute), // 10 req/min por IP
	}
}

type CaptureLeadResponse struct {
	Success bool   `json:"success"`
	ID      string `json:"id,omitempty"`
	Message string `json:"message,omitempty"`
}

func (h *LeadHandler) CaptureLead(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	clientIP := getClientIP(r)
	if !h.rateLimiter.Allow(clientIP) {
		respondJSON(w, http.StatusTooManyRequests, CaptureLeadResponse{
			Success: false,
			Message: "Muitas tentativas. Tente novamente em instantes.",
		})
		return
	}

	var input usecase.CreateLeadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondJSON(w, http.StatusBadRequest, CaptureLeadResponse{
			Success: false,
			Message: "JSON inválido",
		})
		return
	}

	lead, err := h.createLeadUC.Execute(ctx, input)
	if err != nil {
		respondError(w, err)
		return
	}

	middleware.RecordLeadCaptured(lead.Niche)

	respondJSON(w, http.StatusCreated, CaptureLeadResponse{
		Success: true,
		ID:      lead.ID,
	})
}

func getClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		return xff
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}
	return r.RemoteAddr
}

type RateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    int
	window   time.Duration
}

type visitor struct {
	count     int
	lastReset time.Time
}

func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		visitors: make(map[string]*visitor),
		limit:    limit,
		window:   window,
	}

	go rl.cleanup()
	return rl
}

func (rl *RateLimiter) Allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	v, exists := rl.visitors[ip]
	now := time.Now()

	if !exists {
		rl.visitors[ip] = &visitor{count: 1, lastReset: now}
		return true
	}

	if now.Sub(v.lastReset) > rl.window {
		v.count = 1
		v.lastReset = now
		return true
	}

	v.count++
	return v.count <= rl.limit
}

func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		rl.mu.Lock()
		now := time.Now()
		for ip, v := range rl.visitors {
			if now.Sub(v.lastReset) > rl.window*2 {
				delete(rl.visitors, ip)
			}
		}
		rl.mu.Unlock()
	}
}
