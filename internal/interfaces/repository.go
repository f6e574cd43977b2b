package interfaces

import (
	"context"

	"github.com/yummy-restaurant/backend/internal/domain"
)

type MenuRepository interface {
	Create(ctx context.Context, item *domain.MenuItem) error
	FindByID(ctx context.Context, id int) (*domain.MenuItem, error)
	// ListAvailable returns available items ordered by category then name.
	// An empty category means no filter.
	ListAvailable(ctx context.Context, category domain.Category) ([]domain.MenuItem, error)
	Update(ctx context.Context, item *domain.MenuItem) error
	Delete(ctx context.Context, id int) error
}

type OrderRepository interface {
	// Create persists the order, its lines, and the initial status log entry
	// in a single transaction.
	Create(ctx context.Context, order *domain.Order) error
	FindByID(ctx context.Context, id int) (*domain.Order, error)
	ListAll(ctx context.Context) ([]*domain.Order, error)
	ListByUser(ctx context.Context, userID int) ([]*domain.Order, error)
	// UpdateStatus applies the change only if the stored status still equals
	// from, so concurrent transitions cannot overwrite each other.
	UpdateStatus(ctx context.Context, orderID int, from, to domain.OrderStatus, changedBy string) error
	GetStatusHistory(ctx context.Context, orderID int) ([]*domain.OrderStatusLog, error)
}

type ReservationRepository interface {
	Create(ctx context.Context, res *domain.Reservation) error
	FindByID(ctx context.Context, id int) (*domain.Reservation, error)
	// ListAll returns reservations ordered by date then time.
	ListAll(ctx context.Context) ([]*domain.Reservation, error)
	// UpdateStatus has the same compare-and-set contract as orders.
	UpdateStatus(ctx context.Context, reservationID int, from, to domain.ReservationStatus) error
}

type ReviewRepository interface {
	Create(ctx context.Context, review *domain.Review) error
	// ListAll returns reviews newest first.
	ListAll(ctx context.Context) ([]domain.Review, error)
}
