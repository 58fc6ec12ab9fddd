package appointmentRepo

import (
	"context"
	"errors"

	"jojocolaresbeauty/models"
)

// ErrSlotTaken is returned by CreateIfFree when another appointment claimed
// one of the requested hours between slot computation and insert.
var ErrSlotTaken = errors.New("requested time slot is no longer available")

// AppointmentRepository persists appointment records.
type AppointmentRepository interface {
	// Create inserts the appointment without checking occupancy. This is the
	// legacy behavior and races with concurrent bookings for the same hours.
	Create(ctx context.Context, appt models.Appointment) (string, error)

	// CreateIfFree inserts the appointment inside a transaction that
	// re-validates occupancy for its hour span first, returning ErrSlotTaken
	// when any required hour is already held by a pending or confirmed
	// appointment.
	CreateIfFree(ctx context.Context, appt models.Appointment) (string, error)

	// QueryByDate returns all appointments on the given date whose status is
	// in statuses. Pass nil to match any status.
	QueryByDate(ctx context.Context, date string, statuses []string) ([]models.Appointment, error)

	GetByID(ctx context.Context, id string) (*models.Appointment, error)
	ListAll(ctx context.Context) ([]models.Appointment, error)
	UpdateStatus(ctx context.Context, id, status string) error
	DeleteByID(ctx context.Context, id string) error
}
