package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/blackboyfilms/studio-api/internal/entity"
	"github.com/blackboyfilms/studio-api/internal/infra/http/middleware"
	"github.com/blackboyfilms/studio-api/internal/webhook"
)

// DispatcherInterface é o contrato do disparador de webhooks.
type DispatcherInterface interface {
	Dispatch(ctx context.Context, event webhook.Event, lead *entity.Lead, previousStatus string) webhook.Outcome
}

// Worker consome a fila de eventos de lead e dispara o webhook de cada um.
type Worker struct {
	Channel    *amqp.Channel
	Dispatcher DispatcherInterface
}

func NewWorker(ch *amqp.Channel, dispatcher DispatcherInterface) *Worker {
	return &Worker{Channel: ch, Dispatcher: dispatcher}
}

func (w *Worker) Start(queueName string) {
	msgs, err := w.Channel.Consume(
		queueName, // fila
		"",        // consumer
		false,     // auto-ack (manual é mais seguro)
		false,     // exclusive
		false,     // no-local
		false,     // no-wait
		nil,       // args
	)
	if err != nil {
		log.Fatalf("❌ Falha ao registrar consumidor RabbitMQ: %s", err)
	}

	forever := make(chan bool)

	go func() {
		for d := range msgs {
			outcome, err := w.Process(context.Background(), d.Body)
			if err != nil {
				// Mensagem podre (malformada). Rejeita sem requeue.
				log.Printf("❌ [WORKER] Mensagem inválida: %s", err)
				d.Nack(false, false)
				continue
			}

			middleware.RecordWebhookDispatch(outcome.Result)

			if outcome.Failed() {
				// Falha de rede: sem retry, mas o evento fica registrado na DLQ.
				log.Printf("❌ [WORKER] Entrega falhou: %v", outcome.Err)
				d.Nack(false, false)
				continue
			}

			d.Ack(false)
		}
	}()

	log.Printf(" [*] Worker de webhooks aguardando na fila '%s'", queueName)
	<-forever
}

// Process desempacota um evento e executa o disparo. Erro aqui significa
// mensagem indecifrável; o resultado do disparo em si vem no Outcome.
func (w *Worker) Process(ctx context.Context, body []byte) (webhook.Outcome, error) {
	var payload LeadEventPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return webhook.Outcome{}, fmt.Errorf("payload inválido: %w", err)
	}

	event := webhook.Event(payload.Event)
	switch event {
	case webhook.EventLeadCreated, webhook.EventLeadUpdated, webhook.EventStatusChanged, webhook.EventTest:
	default:
		return webhook.Outcome{}, fmt.Errorf("evento desconhecido: %q", payload.Event)
	}

	outcome := w.Dispatcher.Dispatch(ctx, event, &payload.Lead, payload.PreviousStatus)
	if outcome.Skipped() {
		log.Printf("⏭️ [WORKER] Evento %s pulado: %s", event, outcome.Reason)
	}
	return outcome, nil
}
