package order

import (
	"context"
	"fmt"

	"github.com/yummy-restaurant/backend/internal/adapter/logger"
	"github.com/yummy-restaurant/backend/internal/domain"
	"github.com/yummy-restaurant/backend/internal/interfaces"
)

type Service struct {
	orderRepo interfaces.OrderRepository
	menuRepo  interfaces.MenuRepository
	publisher interfaces.EventPublisher
	logger    logger.Logger
}

func NewService(orderRepo interfaces.OrderRepository, menuRepo interfaces.MenuRepository, publisher interfaces.EventPublisher, logger logger.Logger) *Service {
	return &Service{
		orderRepo: orderRepo,
		menuRepo:  menuRepo,
		publisher: publisher,
		logger:    logger,
	}
}

// PlaceOrder re-resolves every submitted cart line against the live catalog,
// snapshots the current prices, and persists the priced order. The client
// only ever supplies item ids and quantities; prices and the total are
// always derived server-side.
func (s *Service) PlaceOrder(ctx context.Context, cmd interfaces.PlaceOrderCommand) (*domain.Order, error) {
	if len(cmd.Lines) == 0 {
		return nil, &domain.ValidationError{Field: "items", Message: "order must have at least one item"}
	}

	// 1. Resolve cart lines against the catalog, preserving submitted order.
	// Each line is fully checked before the next one is resolved, so the
	// reported failure always belongs to the first bad line.
	resolved := make([]domain.ResolvedLine, 0, len(cmd.Lines))
	for _, line := range cmd.Lines {
		item, err := s.menuRepo.FindByID(ctx, line.MenuItemID)
		if err != nil {
			return nil, err
		}
		if err := domain.ValidateLine(*item, line.Quantity); err != nil {
			return nil, err
		}
		resolved = append(resolved, domain.ResolvedLine{Item: *item, Quantity: line.Quantity})
	}

	// 2. Assemble: availability and quantity checks, price snapshot, total.
	order, err := domain.AssembleOrder(cmd.UserID, resolved)
	if err != nil {
		s.logger.Error("order_validation_failed", "Order assembly failed", "", nil, err)
		return nil, err
	}

	// 3. Persist transactionally (order + lines + initial status log).
	if err := s.orderRepo.Create(ctx, order); err != nil {
		s.logger.Error("db_transaction_failed", "Failed to create order", "", nil, err)
		return nil, err
	}

	s.logger.Debug("order_created", "Order created in DB", "", map[string]interface{}{
		"order_id": order.ID,
		"total":    order.TotalPrice.String(),
	})

	// 4. Notify. The order is already committed, so a publish failure is
	// logged but never fails the request.
	if s.publisher != nil {
		msg := interfaces.OrderPlacedMessage{
			OrderID:    order.ID,
			UserID:     order.UserID,
			TotalPrice: order.TotalPrice.String(),
			PlacedAt:   order.CreatedAt,
		}
		for _, line := range order.Lines {
			msg.Items = append(msg.Items, interfaces.OrderItemEvent{
				MenuItemID: line.MenuItemID,
				Quantity:   line.Quantity,
				Price:      line.Price.String(),
			})
		}
		if err := s.publisher.PublishOrderPlaced(ctx, msg); err != nil {
			s.logger.Error("rabbitmq_publish_failed", "Failed to publish order placed event", "", map[string]interface{}{
				"order_id": order.ID,
			}, err)
		}
	}

	return order, nil
}

// ListOrders returns every order for admins and only the caller's own
// orders otherwise, newest first.
func (s *Service) ListOrders(ctx context.Context, userID int, admin bool) ([]*domain.Order, error) {
	if admin {
		return s.orderRepo.ListAll(ctx)
	}
	return s.orderRepo.ListByUser(ctx, userID)
}

// UpdateStatus applies a lifecycle transition. The repository write is
// conditional on the status the order had when we read it, so a lost race
// surfaces as a conflict instead of a silent overwrite.
func (s *Service) UpdateStatus(ctx context.Context, orderID int, status domain.OrderStatus, changedBy string) (*domain.Order, error) {
	if !domain.ValidOrderStatus(status) {
		return nil, &domain.ValidationError{
			Field:   "status",
			Message: fmt.Sprintf("unknown order status %q", status),
		}
	}

	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	prev := order.Status
	if err := order.TransitionTo(status); err != nil {
		return nil, err
	}

	if err := s.orderRepo.UpdateStatus(ctx, orderID, prev, status, changedBy); err != nil {
		return nil, err
	}

	s.logger.Info("order_status_changed", "Order status updated", "", map[string]interface{}{
		"order_id": orderID,
		"from":     string(prev),
		"to":       string(status),
	})

	if s.publisher != nil {
		msg := interfaces.StatusChangedMessage{
			Entity:    "order",
			EntityID:  orderID,
			OldStatus: string(prev),
			NewStatus: string(status),
			ChangedBy: changedBy,
			Timestamp: order.UpdatedAt,
		}
		if err := s.publisher.PublishStatusChanged(ctx, msg); err != nil {
			s.logger.Error("rabbitmq_publish_failed", "Failed to publish status change", "", nil, err)
		}
	}

	return order, nil
}

func (s *Service) GetStatusHistory(ctx context.Context, orderID int) ([]*domain.OrderStatusLog, error) {
	if _, err := s.orderRepo.FindByID(ctx, orderID); err != nil {
		return nil, err
	}
	return s.orderRepo.GetStatusHistory(ctx, orderID)
}
