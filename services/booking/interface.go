package booking

import (
	"context"

	"jojocolaresbeauty/models"
)

// CreateAppointmentInput is the public booking-flow payload.
type CreateAppointmentInput struct {
	ClientName    string            `json:"clientName" binding:"required"`
	Phone         string            `json:"phone" binding:"required"`
	City          string            `json:"city" binding:"required"`
	State         string            `json:"state" binding:"required"`
	ServiceIDs    []string          `json:"serviceIds" binding:"required"`
	Date          string            `json:"date" binding:"required"`
	Time          string            `json:"time" binding:"required"`
	ServiceType   string            `json:"serviceType"`
	HairType      string            `json:"hairType"`
	PaymentMethod string            `json:"paymentMethod"`
	CustomFields  map[string]string `json:"customFields"`
}

// SlotsResult is the availability response for one date.
type SlotsResult struct {
	Date        string   `json:"date"`
	Slots       []string `json:"slots"`
	FullyBooked bool     `json:"fullyBooked"`
}

// BookingService drives the public booking flow.
type BookingService interface {
	// GetAvailableSlots computes bookable start times for the combined
	// duration of the selected services. A store failure yields an empty
	// result, not an error: the flow degrades to "no slots" for display.
	GetAvailableSlots(ctx context.Context, date string, serviceIDs []string) (SlotsResult, error)

	// CreateAppointment validates and persists a pending appointment, then
	// dispatches best-effort notifications to admin and client.
	CreateAppointment(ctx context.Context, input CreateAppointmentInput) (*models.Appointment, error)
}
