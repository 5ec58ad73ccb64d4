package notifications

import (
	"context"
	"taskgo-service/internal/app/models"
)

// EventPublisher pushes order lifecycle events onto RabbitMQ for the
// fulfilment and reminder consumers.
type EventPublisher interface {
	PublishOrderPlaced(ctx context.Context, userID string, order *models.OrderDraft) error
	PublishReminderScheduled(ctx context.Context, userID, reminderDate string) error
}
