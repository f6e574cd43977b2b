package order

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yummy-restaurant/backend/internal/domain"
	"github.com/yummy-restaurant/backend/internal/interfaces"
)

type nopLogger struct{}

func (nopLogger) Info(string, string, string, map[string]interface{})         {}
func (nopLogger) Debug(string, string, string, map[string]interface{})        {}
func (nopLogger) Error(string, string, string, map[string]interface{}, error) {}

type fakeMenuRepo struct {
	items map[int]domain.MenuItem
}

func (r *fakeMenuRepo) Create(ctx context.Context, item *domain.MenuItem) error { return nil }

func (r *fakeMenuRepo) FindByID(ctx context.Context, id int) (*domain.MenuItem, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, &domain.NotFoundError{Entity: "menu item", ID: id}
	}
	return &item, nil
}

func (r *fakeMenuRepo) ListAvailable(ctx context.Context, category domain.Category) ([]domain.MenuItem, error) {
	return nil, nil
}

func (r *fakeMenuRepo) Update(ctx context.Context, item *domain.MenuItem) error { return nil }
func (r *fakeMenuRepo) Delete(ctx context.Context, id int) error                { return nil }

type fakeOrderRepo struct {
	nextID int
	orders map[int]*domain.Order
	logs   map[int][]*domain.OrderStatusLog
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{
		orders: make(map[int]*domain.Order),
		logs:   make(map[int][]*domain.OrderStatusLog),
	}
}

func (r *fakeOrderRepo) Create(ctx context.Context, order *domain.Order) error {
	r.nextID++
	order.ID = r.nextID
	stored := *order
	stored.Lines = append([]domain.OrderLine(nil), order.Lines...)
	r.orders[order.ID] = &stored
	r.logs[order.ID] = append(r.logs[order.ID], &domain.OrderStatusLog{
		OrderID: order.ID, Status: order.Status, ChangedBy: "api",
	})
	return nil
}

func (r *fakeOrderRepo) FindByID(ctx context.Context, id int) (*domain.Order, error) {
	order, ok := r.orders[id]
	if !ok {
		return nil, &domain.NotFoundError{Entity: "order", ID: id}
	}
	copied := *order
	return &copied, nil
}

func (r *fakeOrderRepo) ListAll(ctx context.Context) ([]*domain.Order, error) {
	var all []*domain.Order
	for _, o := range r.orders {
		all = append(all, o)
	}
	return all, nil
}

func (r *fakeOrderRepo) ListByUser(ctx context.Context, userID int) ([]*domain.Order, error) {
	var own []*domain.Order
	for _, o := range r.orders {
		if o.UserID == userID {
			own = append(own, o)
		}
	}
	return own, nil
}

func (r *fakeOrderRepo) UpdateStatus(ctx context.Context, orderID int, from, to domain.OrderStatus, changedBy string) error {
	order, ok := r.orders[orderID]
	if !ok {
		return &domain.NotFoundError{Entity: "order", ID: orderID}
	}
	if order.Status != from {
		return &domain.ConflictError{Message: fmt.Sprintf("order %d status changed concurrently", orderID)}
	}
	order.Status = to
	r.logs[orderID] = append(r.logs[orderID], &domain.OrderStatusLog{
		OrderID: orderID, Status: to, ChangedBy: changedBy,
	})
	return nil
}

func (r *fakeOrderRepo) GetStatusHistory(ctx context.Context, orderID int) ([]*domain.OrderStatusLog, error) {
	return r.logs[orderID], nil
}

type fakePublisher struct {
	placed  []interfaces.OrderPlacedMessage
	changed []interfaces.StatusChangedMessage
	fail    bool
}

func (p *fakePublisher) PublishOrderPlaced(ctx context.Context, msg interfaces.OrderPlacedMessage) error {
	if p.fail {
		return errors.New("broker unavailable")
	}
	p.placed = append(p.placed, msg)
	return nil
}

func (p *fakePublisher) PublishStatusChanged(ctx context.Context, msg interfaces.StatusChangedMessage) error {
	if p.fail {
		return errors.New("broker unavailable")
	}
	p.changed = append(p.changed, msg)
	return nil
}

func newTestService(items ...domain.MenuItem) (*Service, *fakeOrderRepo, *fakePublisher) {
	menuRepo := &fakeMenuRepo{items: make(map[int]domain.MenuItem)}
	for _, item := range items {
		menuRepo.items[item.ID] = item
	}
	orderRepo := newFakeOrderRepo()
	publisher := &fakePublisher{}
	return NewService(orderRepo, menuRepo, publisher, nopLogger{}), orderRepo, publisher
}

func availableItem(id int, name, price string) domain.MenuItem {
	return domain.MenuItem{
		ID:        id,
		Name:      name,
		Price:     decimal.RequireFromString(price),
		Category:  domain.CategoryLunch,
		Available: true,
	}
}

func TestPlaceOrder(t *testing.T) {
	svc, repo, publisher := newTestService(availableItem(1, "Classic Burger", "12.99"))

	order, err := svc.PlaceOrder(context.Background(), interfaces.PlaceOrderCommand{
		UserID: 42,
		Lines:  []domain.CartLine{{MenuItemID: 1, Quantity: 2}},
	})
	require.NoError(t, err)

	assert.Equal(t, "25.98", order.TotalPrice.String())
	assert.Equal(t, domain.OrderStatusPending, order.Status)
	require.Len(t, order.Lines, 1)
	assert.Equal(t, "12.99", order.Lines[0].Price.String())

	stored, err := repo.FindByID(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Equal(t, "25.98", stored.TotalPrice.String())

	require.Len(t, publisher.placed, 1)
	assert.Equal(t, order.ID, publisher.placed[0].OrderID)
}

func TestPlaceOrder_PriceChangeDoesNotAffectExistingOrder(t *testing.T) {
	menuRepo := &fakeMenuRepo{items: map[int]domain.MenuItem{
		1: availableItem(1, "Pasta Carbonara", "14.99"),
	}}
	orderRepo := newFakeOrderRepo()
	svc := NewService(orderRepo, menuRepo, &fakePublisher{}, nopLogger{})

	order, err := svc.PlaceOrder(context.Background(), interfaces.PlaceOrderCommand{
		UserID: 1,
		Lines:  []domain.CartLine{{MenuItemID: 1, Quantity: 1}},
	})
	require.NoError(t, err)

	// Admin raises the catalog price after the order was placed.
	item := menuRepo.items[1]
	item.Price = decimal.RequireFromString("18.99")
	menuRepo.items[1] = item

	stored, err := orderRepo.FindByID(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Equal(t, "14.99", stored.Lines[0].Price.String())
	assert.Equal(t, "14.99", stored.TotalPrice.String())
}

func TestPlaceOrder_EmptyCart(t *testing.T) {
	svc, repo, _ := newTestService()

	order, err := svc.PlaceOrder(context.Background(), interfaces.PlaceOrderCommand{UserID: 1})

	assert.Nil(t, order)
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Empty(t, repo.orders)
}

func TestPlaceOrder_UnknownItem(t *testing.T) {
	svc, repo, _ := newTestService(availableItem(1, "Soup", "6.50"))

	order, err := svc.PlaceOrder(context.Background(), interfaces.PlaceOrderCommand{
		UserID: 1,
		Lines: []domain.CartLine{
			{MenuItemID: 1, Quantity: 1},
			{MenuItemID: 99, Quantity: 1},
		},
	})

	assert.Nil(t, order)
	var notFound *domain.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, 99, notFound.ID)
	assert.Empty(t, repo.orders, "no partial order may be written")
}

func TestPlaceOrder_UnavailableItem(t *testing.T) {
	unavailable := availableItem(2, "Seasonal Special", "21.00")
	unavailable.Available = false
	svc, repo, _ := newTestService(availableItem(1, "Soup", "6.50"), unavailable)

	order, err := svc.PlaceOrder(context.Background(), interfaces.PlaceOrderCommand{
		UserID: 1,
		Lines: []domain.CartLine{
			{MenuItemID: 1, Quantity: 1},
			{MenuItemID: 2, Quantity: 1},
		},
	})

	assert.Nil(t, order)
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Empty(t, repo.orders)
}

func TestPlaceOrder_LinesCheckedInSubmittedOrder(t *testing.T) {
	unavailable := availableItem(2, "Seasonal Special", "21.00")
	unavailable.Available = false
	svc, repo, _ := newTestService(availableItem(1, "Soup", "6.50"), unavailable)

	// The first bad line is unavailable; a later line references an unknown
	// item. The unavailability must win because lines are checked in the
	// order the client submitted them.
	order, err := svc.PlaceOrder(context.Background(), interfaces.PlaceOrderCommand{
		UserID: 1,
		Lines: []domain.CartLine{
			{MenuItemID: 2, Quantity: 1},
			{MenuItemID: 99, Quantity: 1},
		},
	})

	assert.Nil(t, order)
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Message, "Seasonal Special")
	assert.Empty(t, repo.orders)

	// Same for a bad quantity preceding an unknown item.
	order, err = svc.PlaceOrder(context.Background(), interfaces.PlaceOrderCommand{
		UserID: 1,
		Lines: []domain.CartLine{
			{MenuItemID: 1, Quantity: 0},
			{MenuItemID: 99, Quantity: 1},
		},
	})

	assert.Nil(t, order)
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Message, "quantity")
}

func TestPlaceOrder_PublishFailureDoesNotFailRequest(t *testing.T) {
	svc, repo, publisher := newTestService(availableItem(1, "Soup", "6.50"))
	publisher.fail = true

	order, err := svc.PlaceOrder(context.Background(), interfaces.PlaceOrderCommand{
		UserID: 1,
		Lines:  []domain.CartLine{{MenuItemID: 1, Quantity: 1}},
	})

	require.NoError(t, err, "the order is committed before publishing")
	assert.Len(t, repo.orders, 1)
	_ = order
}

func TestUpdateStatus(t *testing.T) {
	svc, repo, publisher := newTestService(availableItem(1, "Soup", "6.50"))

	placed, err := svc.PlaceOrder(context.Background(), interfaces.PlaceOrderCommand{
		UserID: 1,
		Lines:  []domain.CartLine{{MenuItemID: 1, Quantity: 1}},
	})
	require.NoError(t, err)

	updated, err := svc.UpdateStatus(context.Background(), placed.ID, domain.OrderStatusProcessing, "admin")
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusProcessing, updated.Status)

	stored, _ := repo.FindByID(context.Background(), placed.ID)
	assert.Equal(t, domain.OrderStatusProcessing, stored.Status)

	require.Len(t, publisher.changed, 1)
	assert.Equal(t, "order", publisher.changed[0].Entity)
	assert.Equal(t, "pending", publisher.changed[0].OldStatus)
	assert.Equal(t, "processing", publisher.changed[0].NewStatus)
}

func TestUpdateStatus_IllegalTransition(t *testing.T) {
	svc, repo, _ := newTestService(availableItem(1, "Soup", "6.50"))

	placed, err := svc.PlaceOrder(context.Background(), interfaces.PlaceOrderCommand{
		UserID: 1,
		Lines:  []domain.CartLine{{MenuItemID: 1, Quantity: 1}},
	})
	require.NoError(t, err)

	_, err = svc.UpdateStatus(context.Background(), placed.ID, domain.OrderStatusProcessing, "admin")
	require.NoError(t, err)

	// processing -> pending is not a legal move.
	updated, err := svc.UpdateStatus(context.Background(), placed.ID, domain.OrderStatusPending, "admin")

	assert.Nil(t, updated)
	var conflict *domain.ConflictError
	require.ErrorAs(t, err, &conflict)

	stored, _ := repo.FindByID(context.Background(), placed.ID)
	assert.Equal(t, domain.OrderStatusProcessing, stored.Status, "status must stay unchanged")
}

func TestUpdateStatus_TerminalState(t *testing.T) {
	svc, _, _ := newTestService(availableItem(1, "Soup", "6.50"))

	placed, err := svc.PlaceOrder(context.Background(), interfaces.PlaceOrderCommand{
		UserID: 1,
		Lines:  []domain.CartLine{{MenuItemID: 1, Quantity: 1}},
	})
	require.NoError(t, err)

	_, err = svc.UpdateStatus(context.Background(), placed.ID, domain.OrderStatusCancelled, "admin")
	require.NoError(t, err)

	for _, next := range []domain.OrderStatus{
		domain.OrderStatusPending, domain.OrderStatusProcessing, domain.OrderStatusCompleted,
	} {
		_, err := svc.UpdateStatus(context.Background(), placed.ID, next, "admin")
		var conflict *domain.ConflictError
		require.ErrorAs(t, err, &conflict, "cancelled -> %s", next)
	}
}

func TestUpdateStatus_UnknownStatus(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.UpdateStatus(context.Background(), 1, domain.OrderStatus("shipped"), "admin")

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "status", verr.Field)
}

func TestUpdateStatus_UnknownOrder(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.UpdateStatus(context.Background(), 404, domain.OrderStatusProcessing, "admin")

	var notFound *domain.NotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestListOrders(t *testing.T) {
	svc, _, _ := newTestService(availableItem(1, "Soup", "6.50"))

	for _, uid := range []int{1, 1, 2} {
		_, err := svc.PlaceOrder(context.Background(), interfaces.PlaceOrderCommand{
			UserID: uid,
			Lines:  []domain.CartLine{{MenuItemID: 1, Quantity: 1}},
		})
		require.NoError(t, err)
	}

	own, err := svc.ListOrders(context.Background(), 1, false)
	require.NoError(t, err)
	assert.Len(t, own, 2)

	all, err := svc.ListOrders(context.Background(), 1, true)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestGetStatusHistory(t *testing.T) {
	svc, _, _ := newTestService(availableItem(1, "Soup", "6.50"))

	placed, err := svc.PlaceOrder(context.Background(), interfaces.PlaceOrderCommand{
		UserID: 1,
		Lines:  []domain.CartLine{{MenuItemID: 1, Quantity: 1}},
	})
	require.NoError(t, err)

	_, err = svc.UpdateStatus(context.Background(), placed.ID, domain.OrderStatusProcessing, "admin")
	require.NoError(t, err)

	logs, err := svc.GetStatusHistory(context.Background(), placed.ID)
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, domain.OrderStatusPending, logs[0].Status)
	assert.Equal(t, domain.OrderStatusProcessing, logs[1].Status)
}
