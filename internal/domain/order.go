package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// CartLine is a client-submitted order line: an item reference and a
// quantity. The price is deliberately absent.
type CartLine struct {
	MenuItemID int
	Quantity   int
}

// ResolvedLine pairs a cart line with the catalog item it resolved to.
type ResolvedLine struct {
	Item     MenuItem
	Quantity int
}

// OrderLine is an order line with the price snapshotted at assembly time.
// The snapshot never changes, even if the catalog price does.
type OrderLine struct {
	ID         int
	OrderID    int
	MenuItemID int
	Quantity   int
	Price      decimal.Decimal
}

// Order represents a placed customer order.
type Order struct {
	ID         int
	UserID     int
	Lines      []OrderLine
	TotalPrice decimal.Decimal
	Status     OrderStatus
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// ValidateLine checks a single resolved cart line: the item must be
// available, the quantity positive, and the catalog price non-negative.
// Callers resolving a cart run this per line, in submitted order, before
// touching the next line.
func ValidateLine(item MenuItem, quantity int) error {
	if !item.Available {
		return &ValidationError{
			Field:   "items",
			Message: fmt.Sprintf("%s is not available", item.Name),
		}
	}
	if quantity < 1 {
		return &ValidationError{
			Field:   "items",
			Message: fmt.Sprintf("quantity for %s must be at least 1", item.Name),
		}
	}
	if item.Price.IsNegative() {
		return &IntegrityError{
			Message: fmt.Sprintf("catalog item %d has a negative price", item.ID),
		}
	}
	return nil
}

// AssembleOrder turns resolved cart lines into a priced order. Lines keep
// their submitted sequence. Every price comes from the catalog item on the
// line; the total is summed exactly and rounded to cents once at the end.
func AssembleOrder(userID int, lines []ResolvedLine) (*Order, error) {
	if len(lines) == 0 {
		return nil, &ValidationError{Field: "items", Message: "order must have at least one item"}
	}

	total := decimal.Zero
	orderLines := make([]OrderLine, 0, len(lines))

	for _, line := range lines {
		if err := ValidateLine(line.Item, line.Quantity); err != nil {
			return nil, err
		}

		total = total.Add(line.Item.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
		orderLines = append(orderLines, OrderLine{
			MenuItemID: line.Item.ID,
			Quantity:   line.Quantity,
			Price:      line.Item.Price,
		})
	}

	return &Order{
		UserID:     userID,
		Lines:      orderLines,
		TotalPrice: total.Round(2),
		Status:     OrderStatusPending,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}, nil
}

var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:    {OrderStatusProcessing, OrderStatusCancelled},
	OrderStatusProcessing: {OrderStatusCompleted, OrderStatusCancelled},
	OrderStatusCompleted:  {},
	OrderStatusCancelled:  {},
}

// CanTransitionTo checks if the order may move to the new status.
func (o *Order) CanTransitionTo(next OrderStatus) bool {
	for _, s := range orderTransitions[o.Status] {
		if s == next {
			return true
		}
	}
	return false
}

// TransitionTo moves the order to a new status, failing when the state
// machine does not allow the move.
func (o *Order) TransitionTo(next OrderStatus) error {
	if !o.CanTransitionTo(next) {
		return &ConflictError{
			Message: fmt.Sprintf("cannot transition order from %s to %s", o.Status, next),
		}
	}
	o.Status = next
	o.UpdatedAt = time.Now()
	return nil
}
