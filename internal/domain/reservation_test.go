package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReservation(t *testing.T) {
	res, err := NewReservation("Jane Doe", "+1-555-0101", "jane@example.com", "2025-06-15", "19:00", 4, "window seat")
	require.NoError(t, err)

	assert.Equal(t, ReservationStatusPending, res.Status)
	assert.Equal(t, 4, res.Guests)
	assert.Equal(t, "window seat", res.SpecialRequests)
}

func TestNewReservation_GuestBounds(t *testing.T) {
	tests := []struct {
		guests int
		valid  bool
	}{
		{0, false},
		{1, true},
		{20, true},
		{21, false},
		{-3, false},
	}
	for _, tt := range tests {
		res, err := NewReservation("Jane", "555", "jane@example.com", "2025-06-15", "19:00", tt.guests, "")
		if tt.valid {
			assert.NoError(t, err, "guests=%d", tt.guests)
		} else {
			assert.Nil(t, res, "guests=%d", tt.guests)
			var verrs ValidationErrors
			require.ErrorAs(t, err, &verrs, "guests=%d", tt.guests)
			assert.Equal(t, "guests", verrs[0].Field)
		}
	}
}

func TestNewReservation_CollectsAllErrors(t *testing.T) {
	res, err := NewReservation("", "", "not-an-email", "", "", 0, "")

	assert.Nil(t, res)
	var verrs ValidationErrors
	require.ErrorAs(t, err, &verrs)
	// name, phone, email, date, time, guests
	assert.Len(t, verrs, 6)
}

func TestNewReservation_InvalidDate(t *testing.T) {
	for _, date := range []string{"tomorrow", "2025-13-40", "15/06/2025"} {
		res, err := NewReservation("Jane", "555", "jane@example.com", date, "19:00", 2, "")
		assert.Nil(t, res, "date=%q", date)
		assert.Error(t, err, "date=%q", date)
	}
}

func TestNewReservation_InvalidEmail(t *testing.T) {
	res, err := NewReservation("Jane", "555", "jane@", "2025-06-15", "19:00", 2, "")

	assert.Nil(t, res)
	var verrs ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "email", verrs[0].Field)
}

func TestReservationCanTransitionTo(t *testing.T) {
	tests := []struct {
		from, to ReservationStatus
		want     bool
	}{
		{ReservationStatusPending, ReservationStatusConfirmed, true},
		{ReservationStatusPending, ReservationStatusCancelled, true},
		{ReservationStatusConfirmed, ReservationStatusCancelled, true},
		{ReservationStatusConfirmed, ReservationStatusPending, false},
		{ReservationStatusCancelled, ReservationStatusPending, false},
		{ReservationStatusCancelled, ReservationStatusConfirmed, false},
	}
	for _, tt := range tests {
		res := &Reservation{Status: tt.from}
		got := res.CanTransitionTo(tt.to)
		assert.Equal(t, tt.want, got, "transition %s -> %s", tt.from, tt.to)
	}
}

func TestReservationTransitionTo_Illegal(t *testing.T) {
	res := &Reservation{Status: ReservationStatusCancelled}

	err := res.TransitionTo(ReservationStatusConfirmed)

	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, ReservationStatusCancelled, res.Status)
}
