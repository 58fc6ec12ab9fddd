package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"jojocolaresbeauty/config"
	appointmentRepo "jojocolaresbeauty/database/repository/appointment"
	catalogRepo "jojocolaresbeauty/database/repository/catalog"
	settingsRepo "jojocolaresbeauty/database/repository/settings"
	"jojocolaresbeauty/models"
	"jojocolaresbeauty/services/availability"
	"jojocolaresbeauty/services/form"
	"jojocolaresbeauty/services/notification"
	"jojocolaresbeauty/services/tasks"
	"jojocolaresbeauty/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// TaskEnqueuer abstracts the asynq client for notification dispatch.
type TaskEnqueuer interface {
	Enqueue(task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// DefaultBookingService is the production BookingService.
type DefaultBookingService struct {
	ApptRepo     appointmentRepo.AppointmentRepository
	ServiceRepo  catalogRepo.ServiceRepository
	SettingsRepo settingsRepo.SettingsRepository
	Queue        TaskEnqueuer
	AdminURL     string
}

// GetAvailableSlots resolves the working window and the day's appointments and
// runs the slot computation. Store failures degrade to an empty slot list.
func (s *DefaultBookingService) GetAvailableSlots(ctx context.Context, date string, serviceIDs []string) (SlotsResult, error) {
	logger := utils.GetLogger()
	result := SlotsResult{Date: date, Slots: []string{}}

	duration, _, err := s.resolveSelection(ctx, serviceIDs)
	if err != nil {
		logger.Warn("service lookup failed, reporting no availability",
			zap.String("date", date), zap.Error(err))
		return result, nil
	}
	if duration <= 0 {
		return result, nil
	}
	if !availability.DateSelectable(date, time.Now()) {
		return result, nil
	}

	settings := s.loadSettings(ctx)
	window := settings.WorkingHours.Window()

	existing, err := s.ApptRepo.QueryByDate(ctx, date, []string{models.StatusPending, models.StatusConfirmed})
	if err != nil {
		logger.Warn("slot query failed, reporting no availability",
			zap.String("date", date), zap.Error(err))
		return result, nil
	}

	result.Slots = availability.ComputeAvailableSlots(duration, window, existing)
	if settings.FullDateBlocking {
		result.FullyBooked = len(result.Slots) == 0
	}
	return result, nil
}

// CreateAppointment validates the input, persists the appointment as pending
// and enqueues the admin and client notifications. The insert is guarded
// against concurrent bookings for the same hours unless GUARDED_BOOKING is
// disabled, in which case the legacy racy insert is used.
func (s *DefaultBookingService) CreateAppointment(ctx context.Context, input CreateAppointmentInput) (*models.Appointment, error) {
	logger := utils.GetLogger()

	if err := validateInput(input); err != nil {
		return nil, err
	}

	duration, services, err := s.resolveSelection(ctx, input.ServiceIDs)
	if err != nil {
		return nil, err
	}
	if len(services) != len(input.ServiceIDs) {
		return nil, NewValidationError("one or more selected services do not exist")
	}
	if duration <= 0 {
		return nil, NewValidationError("selected services have no bookable duration")
	}

	if hasPenteado(services) && input.HairType == "" {
		return nil, NewValidationError("hair type is required when a penteado service is selected")
	}
	if fieldErrs := form.Validate(services, input.CustomFields); len(fieldErrs) > 0 {
		return nil, NewValidationError(fieldErrs[0].Error())
	}

	if !availability.DateSelectable(input.Date, time.Now()) {
		return nil, NewValidationError("date must be today or later")
	}

	settings := s.loadSettings(ctx)
	window := settings.WorkingHours.Window()
	existing, err := s.ApptRepo.QueryByDate(ctx, input.Date, []string{models.StatusPending, models.StatusConfirmed})
	if err != nil {
		return nil, fmt.Errorf("failed to load existing appointments: %w", err)
	}
	slots := availability.ComputeAvailableSlots(duration, window, existing)
	if !containsSlot(slots, input.Time) {
		return nil, NewSlotTakenError(fmt.Sprintf("slot %s is not available on %s", input.Time, input.Date))
	}

	basePrice := models.BasePrice(services)
	totalPrice := basePrice
	if input.ServiceType == models.ServiceTypeDomicilio {
		totalPrice += models.DomicilioFee
	}

	appt := models.Appointment{
		ClientName:    input.ClientName,
		Phone:         input.Phone,
		City:          input.City,
		State:         input.State,
		Services:      services,
		TotalDuration: duration,
		TotalPrice:    totalPrice,
		BasePrice:     basePrice,
		Date:          input.Date,
		Time:          input.Time,
		Status:        models.StatusPending,
		ServiceType:   input.ServiceType,
		HairType:      input.HairType,
		PaymentMethod: input.PaymentMethod,
		CustomFields:  input.CustomFields,
		CreatedAt:     time.Now(),
	}

	var id string
	if config.AppConfig.GuardedBooking {
		id, err = s.ApptRepo.CreateIfFree(ctx, appt)
	} else {
		id, err = s.ApptRepo.Create(ctx, appt)
	}
	if errors.Is(err, appointmentRepo.ErrSlotTaken) {
		return nil, NewSlotTakenError(fmt.Sprintf("slot %s was just booked by someone else", input.Time))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}
	appt.ID = id

	logger.Info("appointment created",
		zap.String("id", appt.ID),
		zap.String("date", appt.Date),
		zap.String("time", appt.Time),
		zap.Int("duration", appt.TotalDuration),
	)

	s.dispatchCreationNotifications(appt)
	return &appt, nil
}

// dispatchCreationNotifications enqueues the admin summary, the client vCard
// for the admin, and the client receipt. Failures are logged only; the
// persisted appointment is the source of truth.
func (s *DefaultBookingService) dispatchCreationNotifications(appt models.Appointment) {
	clientPhone := notification.NormalizePhone(appt.Phone, config.AppConfig.PhoneCountryCode)

	s.enqueueNotify(models.NotifyPayload{
		Kind:    models.NotifyKindMessage,
		Number:  config.AppConfig.AdminPhone,
		Message: BuildAdminRequestMessage(appt, s.AdminURL),
		Footer:  messageFooter,
	})
	s.enqueueNotify(models.NotifyPayload{
		Kind:   models.NotifyKindVCard,
		Number: config.AppConfig.AdminPhone,
		Name:   appt.ClientName,
		Phone:  clientPhone,
	})
	s.enqueueNotify(models.NotifyPayload{
		Kind:    models.NotifyKindMessage,
		Number:  clientPhone,
		Message: BuildClientReceiptMessage(appt.ClientName),
		Footer:  "Enviado de " + messageFooter,
	})
}

func (s *DefaultBookingService) enqueueNotify(payload models.NotifyPayload) {
	logger := utils.GetLogger()
	task, opts, err := tasks.NewNotifyTask(payload)
	if err != nil {
		logger.Error("failed to build notify task", zap.Error(err))
		return
	}
	if _, err := s.Queue.Enqueue(task, opts...); err != nil {
		logger.Error("failed to enqueue notification",
			zap.String("number", payload.Number), zap.Error(err))
	}
}

// resolveSelection loads the selected services and sums their duration.
func (s *DefaultBookingService) resolveSelection(ctx context.Context, serviceIDs []string) (int, []models.Service, error) {
	if len(serviceIDs) == 0 {
		return 0, nil, nil
	}
	services, err := s.ServiceRepo.GetByIDs(ctx, serviceIDs)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to load services: %w", err)
	}
	return models.TotalDuration(services), services, nil
}

// loadSettings never fails the flow: a store error falls back to defaults.
func (s *DefaultBookingService) loadSettings(ctx context.Context) models.Settings {
	settings, err := s.SettingsRepo.Get(ctx)
	if err != nil {
		utils.GetLogger().Warn("failed to load settings, using defaults", zap.Error(err))
		return models.DefaultSettings()
	}
	return settings
}

func validateInput(input CreateAppointmentInput) error {
	switch {
	case input.ClientName == "":
		return NewValidationError("client name is required")
	case input.Phone == "":
		return NewValidationError("phone is required")
	case input.City == "":
		return NewValidationError("city is required")
	case input.State == "":
		return NewValidationError("state is required")
	case len(input.ServiceIDs) == 0:
		return NewValidationError("at least one service must be selected")
	case input.Date == "":
		return NewValidationError("date is required")
	case input.Time == "":
		return NewValidationError("time is required")
	}
	switch input.ServiceType {
	case models.ServiceTypeStudio, models.ServiceTypeDomicilio:
	default:
		return NewValidationError("service type must be studio or domicilio")
	}
	switch input.PaymentMethod {
	case models.PaymentPix, models.PaymentCartao, models.PaymentDinheiro:
	default:
		return NewValidationError("payment method must be pix, cartao or dinheiro")
	}
	return nil
}

func hasPenteado(services []models.Service) bool {
	for _, svc := range services {
		name := strings.ToLower(svc.Name)
		if strings.Contains(name, "penteado") || strings.Contains(name, "cabelo") {
			return true
		}
	}
	return false
}

func containsSlot(slots []string, t string) bool {
	for _, s := range slots {
		if s == t {
			return true
		}
	}
	return false
}
