package amqp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/yummy-restaurant/backend/internal/adapter/logger"
	"github.com/yummy-restaurant/backend/internal/interfaces"
)

// NotificationHandler turns status-change events from the fanout into
// human-readable log lines. It backs the notifier run mode.
type NotificationHandler struct {
	logger logger.Logger
}

func NewNotificationHandler(logger logger.Logger) *NotificationHandler {
	return &NotificationHandler{logger: logger}
}

func (h *NotificationHandler) HandleNotification(ctx context.Context, body []byte) error {
	var msg interfaces.StatusChangedMessage
	if err := json.Unmarshal(body, &msg); err != nil {
		h.logger.Error("notification_parse_failed", "Failed to parse notification", "", nil, err)
		return err
	}

	h.logger.Info("status_notification",
		fmt.Sprintf("%s #%d is now %s", msg.Entity, msg.EntityID, msg.NewStatus),
		"",
		map[string]interface{}{
			"entity":     msg.Entity,
			"entity_id":  msg.EntityID,
			"old_status": msg.OldStatus,
			"new_status": msg.NewStatus,
			"changed_by": msg.ChangedBy,
		})
	return nil
}
