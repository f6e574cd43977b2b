package interfaces

import (
	"context"
	"time"
)

// Сообщения RabbitMQ

type OrderPlacedMessage struct {
	OrderID    int              `json:"order_id"`
	UserID     int              `json:"user_id"`
	Items      []OrderItemEvent `json:"items"`
	TotalPrice string           `json:"total_price"`
	PlacedAt   time.Time        `json:"placed_at"`
}

type OrderItemEvent struct {
	MenuItemID int    `json:"menu_item_id"`
	Quantity   int    `json:"quantity"`
	Price      string `json:"price"`
}

type StatusChangedMessage struct {
	Entity    string    `json:"entity"` // "order" or "reservation"
	EntityID  int       `json:"entity_id"`
	OldStatus string    `json:"old_status"`
	NewStatus string    `json:"new_status"`
	ChangedBy string    `json:"changed_by"`
	Timestamp time.Time `json:"timestamp"`
}

type EventPublisher interface {
	PublishOrderPlaced(ctx context.Context, msg OrderPlacedMessage) error
	PublishStatusChanged(ctx context.Context, msg StatusChangedMessage) error
}

type MessageConsumer interface {
	ConsumeNotifications(ctx context.Context, handler NotificationHandler) error
}

type NotificationHandler func(ctx context.Context, body []byte) error
