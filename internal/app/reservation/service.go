package reservation

import (
	"context"
	"fmt"

	"github.com/yummy-restaurant/backend/internal/adapter/logger"
	"github.com/yummy-restaurant/backend/internal/domain"
	"github.com/yummy-restaurant/backend/internal/interfaces"
)

type Service struct {
	repo      interfaces.ReservationRepository
	publisher interfaces.EventPublisher
	logger    logger.Logger
}

func NewService(repo interfaces.ReservationRepository, publisher interfaces.EventPublisher, logger logger.Logger) *Service {
	return &Service{repo: repo, publisher: publisher, logger: logger}
}

// CreateReservation validates the request and persists a pending
// reservation. Table availability is not checked; confirmation is a
// manual back-office step.
func (s *Service) CreateReservation(ctx context.Context, cmd interfaces.CreateReservationCommand) (*domain.Reservation, error) {
	res, err := domain.NewReservation(cmd.Name, cmd.Phone, cmd.Email, cmd.Date, cmd.Time, cmd.Guests, cmd.SpecialRequests)
	if err != nil {
		s.logger.Error("reservation_validation_failed", "Reservation validation failed", "", nil, err)
		return nil, err
	}

	if err := s.repo.Create(ctx, res); err != nil {
		s.logger.Error("db_insert_failed", "Failed to create reservation", "", nil, err)
		return nil, err
	}

	s.logger.Info("reservation_created", "Reservation created", "", map[string]interface{}{
		"reservation_id": res.ID,
		"date":           res.Date,
		"guests":         res.Guests,
	})
	return res, nil
}

func (s *Service) ListReservations(ctx context.Context) ([]*domain.Reservation, error) {
	return s.repo.ListAll(ctx)
}

// UpdateStatus applies a lifecycle transition with the same
// compare-and-set contract as order status updates.
func (s *Service) UpdateStatus(ctx context.Context, reservationID int, status domain.ReservationStatus) (*domain.Reservation, error) {
	if !domain.ValidReservationStatus(status) {
		return nil, &domain.ValidationError{
			Field:   "status",
			Message: fmt.Sprintf("unknown reservation status %q", status),
		}
	}

	res, err := s.repo.FindByID(ctx, reservationID)
	if err != nil {
		return nil, err
	}

	prev := res.Status
	if err := res.TransitionTo(status); err != nil {
		return nil, err
	}

	if err := s.repo.UpdateStatus(ctx, reservationID, prev, status); err != nil {
		return nil, err
	}

	s.logger.Info("reservation_status_changed", "Reservation status updated", "", map[string]interface{}{
		"reservation_id": reservationID,
		"from":           string(prev),
		"to":             string(status),
	})

	if s.publisher != nil {
		msg := interfaces.StatusChangedMessage{
			Entity:    "reservation",
			EntityID:  reservationID,
			OldStatus: string(prev),
			NewStatus: string(status),
			Timestamp: res.UpdatedAt,
		}
		if err := s.publisher.PublishStatusChanged(ctx, msg); err != nil {
			s.logger.Error("rabbitmq_publish_failed", "Failed to publish status change", "", nil, err)
		}
	}

	return res, nil
}
