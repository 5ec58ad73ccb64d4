package notifications

import (
	"context"
	"taskgo-service/internal/app/models"
	"taskgo-service/internal/pkg/constvars"
	"taskgo-service/internal/pkg/exceptions"
	"time"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
)

type eventPublisher struct {
	Channel       *amqp091.Channel
	OrderQueue    string
	ReminderQueue string
}

type orderPlacedEvent struct {
	UserID           string                `json:"user_id"`
	Medicines        []models.MedicineLine `json:"medicines"`
	CollectionMethod string                `json:"collection_method"`
	PlacedAt         time.Time             `json:"placed_at"`
}

type reminderScheduledEvent struct {
	UserID       string `json:"user_id"`
	ReminderDate string `json:"reminder_date"`
}

func NewEventPublisher(rabbitMQConnection *amqp091.Connection, orderQueue, reminderQueue string) (EventPublisher, error) {
	channel, err := rabbitMQConnection.Channel()
	if err != nil {
		return nil, err
	}

	for _, queue := range []string{orderQueue, reminderQueue} {
		_, err = channel.QueueDeclare(queue, true, false, false, false, nil)
		if err != nil {
			return nil, err
		}
	}

	return &eventPublisher{
		Channel:       channel,
		OrderQueue:    orderQueue,
		ReminderQueue: reminderQueue,
	}, nil
}

func (svc *eventPublisher) PublishOrderPlaced(ctx context.Context, userID string, draft *models.OrderDraft) error {
	event := orderPlacedEvent{
		UserID:           userID,
		Medicines:        draft.Medicines,
		CollectionMethod: draft.CollectionMethod,
		PlacedAt:         time.Now(),
	}
	return svc.publish(ctx, svc.OrderQueue, event)
}

func (svc *eventPublisher) PublishReminderScheduled(ctx context.Context, userID, reminderDate string) error {
	event := reminderScheduledEvent{
		UserID:       userID,
		ReminderDate: reminderDate,
	}
	return svc.publish(ctx, svc.ReminderQueue, event)
}

func (svc *eventPublisher) publish(ctx context.Context, queue string, event interface{}) error {
	body, err := json.Marshal(event)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	message := amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp091.Persistent,
	}

	err = svc.Channel.PublishWithContext(ctx, "", queue, false, false, message)
	if err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, queue)
	}
	return nil
}
