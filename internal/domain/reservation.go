package domain

import (
	"fmt"
	"regexp"
	"time"
)

const (
	MinGuests = 1
	MaxGuests = 20
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Reservation is a table reservation request.
type Reservation struct {
	ID              int
	Name            string
	Phone           string
	Email           string
	Date            string
	Time            string
	Guests          int
	SpecialRequests string
	Status          ReservationStatus
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewReservation validates the request fields and produces a pending
// reservation. All failed checks are reported together. Real table
// availability is not checked here.
func NewReservation(name, phone, email, date, timeOfDay string, guests int, specialRequests string) (*Reservation, error) {
	var errs ValidationErrors

	if name == "" {
		errs = append(errs, ValidationError{Field: "name", Message: "name is required"})
	}
	if phone == "" {
		errs = append(errs, ValidationError{Field: "phone", Message: "phone is required"})
	}
	if email == "" {
		errs = append(errs, ValidationError{Field: "email", Message: "email is required"})
	} else if !emailRegex.MatchString(email) {
		errs = append(errs, ValidationError{Field: "email", Message: "please provide a valid email"})
	}
	if date == "" {
		errs = append(errs, ValidationError{Field: "date", Message: "date is required"})
	} else if _, err := time.Parse("2006-01-02", date); err != nil {
		errs = append(errs, ValidationError{Field: "date", Message: "date must be a valid calendar date (YYYY-MM-DD)"})
	}
	if timeOfDay == "" {
		errs = append(errs, ValidationError{Field: "time", Message: "time is required"})
	}
	if guests < MinGuests || guests > MaxGuests {
		errs = append(errs, ValidationError{
			Field:   "guests",
			Message: fmt.Sprintf("guests must be between %d and %d", MinGuests, MaxGuests),
		})
	}

	if len(errs) > 0 {
		return nil, errs
	}

	return &Reservation{
		Name:            name,
		Phone:           phone,
		Email:           email,
		Date:            date,
		Time:            timeOfDay,
		Guests:          guests,
		SpecialRequests: specialRequests,
		Status:          ReservationStatusPending,
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}, nil
}

var reservationTransitions = map[ReservationStatus][]ReservationStatus{
	ReservationStatusPending:   {ReservationStatusConfirmed, ReservationStatusCancelled},
	ReservationStatusConfirmed: {ReservationStatusCancelled},
	ReservationStatusCancelled: {},
}

// CanTransitionTo checks if the reservation may move to the new status.
// Cancellation stays reachable from every non-terminal state.
func (r *Reservation) CanTransitionTo(next ReservationStatus) bool {
	for _, s := range reservationTransitions[r.Status] {
		if s == next {
			return true
		}
	}
	return false
}

// TransitionTo moves the reservation to a new status, failing when the
// state machine does not allow the move.
func (r *Reservation) TransitionTo(next ReservationStatus) error {
	if !r.CanTransitionTo(next) {
		return &ConflictError{
			Message: fmt.Sprintf("cannot transition reservation from %s to %s", r.Status, next),
		}
	}
	r.Status = next
	r.UpdatedAt = time.Now()
	return nil
}
