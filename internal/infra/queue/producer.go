package queue

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/blackboyfilms/studio-api/internal/entity"
	"github.com/blackboyfilms/studio-api/internal/infra/http/middleware"
	"github.com/blackboyfilms/studio-api/internal/webhook"
)

// LeadEventPayload é a mensagem que trafega na fila entre a mutação do
// lead e o disparo do webhook.
type LeadEventPayload struct {
	Event          string      `json:"event"`
	Lead           entity.Lead `json:"lead"`
	PreviousStatus string      `json:"previous_status,omitempty"`
}

type RabbitMQProducer struct {
	Conn *amqp.Connection
	Ch   *amqp.Channel
}

func NewProducer(conn *amqp.Connection, ch *amqp.Channel) *RabbitMQProducer {
	return &RabbitMQProducer{Conn: conn, Ch: ch}
}

func (p *RabbitMQProducer) PublishLeadEvent(ctx context.Context, event webhook.Event, lead *entity.Lead, previousStatus string) error {
	payload := LeadEventPayload{
		Event:          string(event),
		Lead:           *lead,
		PreviousStatus: previousStatus,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("erro ao converter payload: %w", err)
	}

	err = p.Ch.PublishWithContext(ctx,
		ExchangeName,
		RoutingKey,
		false, // Mandatory
		false, // Immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent, // Mensagem salva no disco
		},
	)
	if err != nil {
		middleware.RecordIntegrationError("rabbitmq")
		return fmt.Errorf("falha ao publicar no RabbitMQ: %w", err)
	}

	middleware.RecordLeadEventPublished(string(event))
	return nil
}
