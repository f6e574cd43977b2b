package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/yummy-restaurant/backend/internal/adapter/logger"
	"github.com/yummy-restaurant/backend/internal/interfaces"
)

// NewRouter wires all handlers onto the API surface. Public routes need no
// identity; user routes need any identity; admin routes need the admin role.
func NewRouter(
	catalog interfaces.CatalogService,
	orders interfaces.OrderService,
	reservations interfaces.ReservationService,
	reviews interfaces.ReviewService,
	lgr logger.Logger,
) http.Handler {
	menuHandler := NewMenuHandler(catalog, lgr)
	orderHandler := NewOrderHandler(orders, lgr)
	reservationHandler := NewReservationHandler(reservations, lgr)
	reviewHandler := NewReviewHandler(reviews, lgr)

	r := chi.NewRouter()
	r.Use(RecoveryMiddleware(lgr))
	r.Use(LoggingMiddleware(lgr))
	r.Use(IdentityMiddleware)

	r.Route("/api", func(r chi.Router) {
		r.Route("/menu", func(r chi.Router) {
			r.Get("/", menuHandler.ListMenu)
			r.Get("/{id}", menuHandler.GetMenuItem)
			r.With(RequireAdmin).Post("/", menuHandler.CreateMenuItem)
			r.With(RequireAdmin).Put("/{id}", menuHandler.UpdateMenuItem)
			r.With(RequireAdmin).Delete("/{id}", menuHandler.DeleteMenuItem)
		})

		r.Route("/orders", func(r chi.Router) {
			r.With(RequireUser).Post("/", orderHandler.PlaceOrder)
			r.With(RequireUser).Get("/", orderHandler.ListOrders)
			r.With(RequireAdmin).Put("/{id}", orderHandler.UpdateOrderStatus)
			r.With(RequireAdmin).Get("/{id}/history", orderHandler.GetOrderHistory)
		})

		r.Route("/reservations", func(r chi.Router) {
			r.Post("/", reservationHandler.CreateReservation)
			r.With(RequireAdmin).Get("/", reservationHandler.ListReservations)
			r.With(RequireAdmin).Put("/{id}", reservationHandler.UpdateReservationStatus)
		})

		r.Route("/reviews", func(r chi.Router) {
			r.Get("/", reviewHandler.ListReviews)
			r.With(RequireUser).Post("/", reviewHandler.SubmitReview)
		})
	})

	return r
}
