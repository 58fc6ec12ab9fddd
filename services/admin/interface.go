package admin

import (
	"context"

	"jojocolaresbeauty/models"
)

// DashboardStats summarizes appointments for the back-office dashboard.
type DashboardStats struct {
	Pending   int `json:"pending"`
	Confirmed int `json:"confirmed"`
	Cancelled int `json:"cancelled"`
	Total     int `json:"total"`
}

// AdminService drives the back-office: appointment management, configuration
// and dashboard summaries.
type AdminService interface {
	// ListAppointments returns appointments, optionally filtered by status.
	// An empty filter returns everything, newest first.
	ListAppointments(ctx context.Context, statusFilter string) ([]models.Appointment, error)

	// UpdateStatus moves an appointment into any of the three statuses. Every
	// transition into confirmed or cancelled notifies the client and the
	// admin; transitions into pending are silent.
	UpdateStatus(ctx context.Context, id, status string) (*models.Appointment, error)

	DeleteAppointment(ctx context.Context, id string) error
	DashboardStats(ctx context.Context) (DashboardStats, error)

	GetSettings(ctx context.Context) (models.Settings, error)
	UpdateSettings(ctx context.Context, settings models.Settings) error
}
