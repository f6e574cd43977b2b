package interfaces

import (
	"context"

	"github.com/yummy-restaurant/backend/internal/domain"
)

// Команды для сервисов

type SaveMenuItemCommand struct {
	Name        string
	Description string
	Price       float64
	Category    string
	Image       string
	Available   *bool
}

type PlaceOrderCommand struct {
	UserID int
	Lines  []domain.CartLine
}

type CreateReservationCommand struct {
	Name            string
	Phone           string
	Email           string
	Date            string
	Time            string
	Guests          int
	SpecialRequests string
}

type SubmitReviewCommand struct {
	UserID   int
	UserName string
	Rating   int
	Comment  string
}

// Интерфейсы сервисов (Business Logic)

type CatalogService interface {
	GetItem(ctx context.Context, id int) (*domain.MenuItem, error)
	ListAvailable(ctx context.Context, category string) ([]domain.MenuItem, error)
	CreateItem(ctx context.Context, cmd SaveMenuItemCommand) (*domain.MenuItem, error)
	UpdateItem(ctx context.Context, id int, cmd SaveMenuItemCommand) (*domain.MenuItem, error)
	DeleteItem(ctx context.Context, id int) error
}

type OrderService interface {
	PlaceOrder(ctx context.Context, cmd PlaceOrderCommand) (*domain.Order, error)
	ListOrders(ctx context.Context, userID int, admin bool) ([]*domain.Order, error)
	UpdateStatus(ctx context.Context, orderID int, status domain.OrderStatus, changedBy string) (*domain.Order, error)
	GetStatusHistory(ctx context.Context, orderID int) ([]*domain.OrderStatusLog, error)
}

type ReservationService interface {
	CreateReservation(ctx context.Context, cmd CreateReservationCommand) (*domain.Reservation, error)
	ListReservations(ctx context.Context) ([]*domain.Reservation, error)
	UpdateStatus(ctx context.Context, reservationID int, status domain.ReservationStatus) (*domain.Reservation, error)
}

type ReviewService interface {
	SubmitReview(ctx context.Context, cmd SubmitReviewCommand) (*domain.Review, error)
	ListReviews(ctx context.Context) ([]domain.Review, domain.ReviewSummary, error)
}
