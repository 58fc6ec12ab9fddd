package admin

import (
	"context"
	"fmt"
	"time"

	"jojocolaresbeauty/config"
	appointmentRepo "jojocolaresbeauty/database/repository/appointment"
	settingsRepo "jojocolaresbeauty/database/repository/settings"
	"jojocolaresbeauty/models"
	"jojocolaresbeauty/services/booking"
	"jojocolaresbeauty/services/notification"
	"jojocolaresbeauty/services/tasks"
	"jojocolaresbeauty/utils"

	"go.uber.org/zap"
)

const messageFooter = "Sistema de Agendamento"

// DefaultAdminService is the production AdminService.
type DefaultAdminService struct {
	ApptRepo     appointmentRepo.AppointmentRepository
	SettingsRepo settingsRepo.SettingsRepository
	Queue        booking.TaskEnqueuer
}

// ListAppointments returns appointments filtered by status; empty filter
// returns all.
func (s *DefaultAdminService) ListAppointments(ctx context.Context, statusFilter string) ([]models.Appointment, error) {
	appts, err := s.ApptRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	if statusFilter == "" {
		return appts, nil
	}
	filtered := make([]models.Appointment, 0, len(appts))
	for _, a := range appts {
		if a.Status == statusFilter {
			filtered = append(filtered, a)
		}
	}
	return filtered, nil
}

// UpdateStatus moves the appointment to the given status. The domain allows
// every transition, including reopening a cancelled appointment back to
// pending. Confirmed and cancelled transitions notify client and admin.
func (s *DefaultAdminService) UpdateStatus(ctx context.Context, id, status string) (*models.Appointment, error) {
	switch status {
	case models.StatusPending, models.StatusConfirmed, models.StatusCancelled:
	default:
		return nil, fmt.Errorf("unknown status %q", status)
	}

	appt, err := s.ApptRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("appointment not found: %w", err)
	}

	if err := s.ApptRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	appt.Status = status

	logger := utils.GetLogger()
	logger.Info("appointment status updated",
		zap.String("id", id), zap.String("status", status))

	switch status {
	case models.StatusConfirmed:
		s.notifyTransition(appt, buildConfirmedClientMessage(*appt), buildConfirmedAdminMessage(*appt))
		s.scheduleReminder(*appt)
	case models.StatusCancelled:
		s.notifyTransition(appt, buildCancelledClientMessage(*appt), buildCancelledAdminMessage(*appt))
	}

	return appt, nil
}

// DeleteAppointment removes a record entirely.
func (s *DefaultAdminService) DeleteAppointment(ctx context.Context, id string) error {
	return s.ApptRepo.DeleteByID(ctx, id)
}

// DashboardStats counts appointments per status.
func (s *DefaultAdminService) DashboardStats(ctx context.Context) (DashboardStats, error) {
	appts, err := s.ApptRepo.ListAll(ctx)
	if err != nil {
		return DashboardStats{}, fmt.Errorf("failed to load appointments: %w", err)
	}

	stats := DashboardStats{Total: len(appts)}
	for _, a := range appts {
		switch a.Status {
		case models.StatusPending:
			stats.Pending++
		case models.StatusConfirmed:
			stats.Confirmed++
		case models.StatusCancelled:
			stats.Cancelled++
		}
	}
	return stats, nil
}

// GetSettings returns the back-office configuration.
func (s *DefaultAdminService) GetSettings(ctx context.Context) (models.Settings, error) {
	return s.SettingsRepo.Get(ctx)
}

// UpdateSettings persists the back-office configuration.
func (s *DefaultAdminService) UpdateSettings(ctx context.Context, settings models.Settings) error {
	if _, err := settings.WorkingHours.ParseWindow(); err != nil {
		return fmt.Errorf("invalid working hours: %w", err)
	}
	return s.SettingsRepo.Update(ctx, settings)
}

// notifyTransition enqueues the client message and the admin confirmation.
// Failures are logged only.
func (s *DefaultAdminService) notifyTransition(appt *models.Appointment, clientMsg, adminMsg string) {
	logger := utils.GetLogger()
	clientPhone := notification.NormalizePhone(appt.Phone, config.AppConfig.PhoneCountryCode)

	payloads := []models.NotifyPayload{
		{Kind: models.NotifyKindMessage, Number: clientPhone, Message: clientMsg, Footer: "Enviado de " + messageFooter},
		{Kind: models.NotifyKindMessage, Number: config.AppConfig.AdminPhone, Message: adminMsg, Footer: messageFooter},
	}
	for _, p := range payloads {
		task, opts, err := tasks.NewNotifyTask(p)
		if err != nil {
			logger.Error("failed to build notify task", zap.Error(err))
			continue
		}
		if _, err := s.Queue.Enqueue(task, opts...); err != nil {
			logger.Error("failed to enqueue status notification",
				zap.String("number", p.Number), zap.Error(err))
		}
	}
}

// scheduleReminder queues a reminder 24 hours before the appointment start.
// Appointments confirmed less than a day ahead get no reminder.
func (s *DefaultAdminService) scheduleReminder(appt models.Appointment) {
	logger := utils.GetLogger()

	start, err := time.ParseInLocation("2006-01-02 15:04", appt.Date+" "+appt.Time, time.Local)
	if err != nil {
		logger.Warn("cannot schedule reminder, bad date/time",
			zap.String("id", appt.ID), zap.Error(err))
		return
	}
	fireAt := start.Add(-24 * time.Hour)
	if fireAt.Before(time.Now()) {
		return
	}

	task, opts, err := tasks.NewReminderTask(models.ReminderPayload{AppointmentID: appt.ID}, fireAt)
	if err != nil {
		logger.Error("failed to build reminder task", zap.Error(err))
		return
	}
	if _, err := s.Queue.Enqueue(task, opts...); err != nil {
		logger.Error("failed to enqueue reminder",
			zap.String("id", appt.ID), zap.Error(err))
	}
}
