package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/blackboyfilms/studio-api/internal/entity"
)

// Resultados possíveis de um disparo.
const (
	ResultSent    = "sent"
	ResultSkipped = "skipped"
	ResultFailed  = "failed"
)

// Captura no máximo isso do corpo da resposta, para diagnóstico no admin.
const maxResponseCapture = 500

type Outcome struct {
	Result     string `json:"result"`
	Reason     string `json:"reason,omitempty"`
	HTTPStatus int    `json:"http_status,omitempty"`
	Response   string `json:"response,omitempty"`
	Err        error  `json:"-"`
}

func (o Outcome) Sent() bool    { return o.Result == ResultSent }
func (o Outcome) Skipped() bool { return o.Result == ResultSkipped }
func (o Outcome) Failed() bool  { return o.Result == ResultFailed }

func skipped(reason string) Outcome {
	return Outcome{Result: ResultSkipped, Reason: reason}
}

func failed(err error) Outcome {
	return Outcome{Result: ResultFailed, Err: err}
}

// Dispatcher entrega eventos de lead no endpoint configurado pelo admin.
// A config é carregada a cada disparo; entrega é best effort: qualquer
// status HTTP conta como enviado e não há retry.
type Dispatcher struct {
	Loader ConfigLoader
	Client *http.Client
	Now    func() time.Time
}

func NewDispatcher(loader ConfigLoader) *Dispatcher {
	return &Dispatcher{
		Loader: loader,
		Client: http.DefaultClient,
		Now:    time.Now,
	}
}

func (d *Dispatcher) Dispatch(ctx context.Context, event Event, lead *entity.Lead, previousStatus string) Outcome {
	cfg, err := d.Loader.Load(ctx)
	if err != nil {
		// Config quebrada ou banco fora: falha fechado, sem disparo.
		log.Printf("⚠️ [WEBHOOK] Sem config utilizável: %v", err)
		return skipped("no config")
	}
	if cfg == nil {
		return skipped("no config")
	}

	if !cfg.Enabled || cfg.URL == "" {
		return skipped("disabled")
	}

	if event != EventTest && !cfg.AllowsEvent(event) {
		return skipped("event type disabled")
	}

	payload := NewPayload(event, lead, previousStatus, d.Now())
	body, err := json.Marshal(payload)
	if err != nil {
		return failed(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, cfg.URL, bytes.NewReader(body))
	if err != nil {
		return failed(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if cfg.Secret != "" {
		req.Header.Set("x-webhook-secret", cfg.Secret)
	}

	resp, err := d.Client.Do(req)
	if err != nil {
		log.Printf("❌ [WEBHOOK] Falha de rede ao enviar %s: %v", event, err)
		return failed(err)
	}
	defer resp.Body.Close()

	captured, _ := io.ReadAll(io.LimitReader(resp.Body, maxResponseCapture))

	log.Printf("📤 [WEBHOOK] Evento %s entregue em %s (HTTP %d)", event, cfg.URL, resp.StatusCode)

	return Outcome{
		Result:     ResultSent,
		HTTPStatus: resp.StatusCode,
		Response:   string(captured),
	}
}
