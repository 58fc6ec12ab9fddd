package booking

import (
	"context"
	"errors"
	"testing"

	"jojocolaresbeauty/config"
	appointmentRepo "jojocolaresbeauty/database/repository/appointment"
	"jojocolaresbeauty/models"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Far-future date so the today-or-later check always passes.
const testDate = "2100-01-05"

type fakeApptRepo struct {
	queryFn        func(date string, statuses []string) ([]models.Appointment, error)
	createFn       func(appt models.Appointment) (string, error)
	createIfFreeFn func(appt models.Appointment) (string, error)
	queryCalls     int
}

func (f *fakeApptRepo) QueryByDate(_ context.Context, date string, statuses []string) ([]models.Appointment, error) {
	f.queryCalls++
	if f.queryFn != nil {
		return f.queryFn(date, statuses)
	}
	return nil, nil
}

func (f *fakeApptRepo) Create(_ context.Context, appt models.Appointment) (string, error) {
	if f.createFn != nil {
		return f.createFn(appt)
	}
	return "created-id", nil
}

func (f *fakeApptRepo) CreateIfFree(_ context.Context, appt models.Appointment) (string, error) {
	if f.createIfFreeFn != nil {
		return f.createIfFreeFn(appt)
	}
	return "created-id", nil
}

func (f *fakeApptRepo) GetByID(context.Context, string) (*models.Appointment, error) {
	return nil, errors.New("not implemented")
}
func (f *fakeApptRepo) ListAll(context.Context) ([]models.Appointment, error) { return nil, nil }
func (f *fakeApptRepo) UpdateStatus(context.Context, string, string) error    { return nil }
func (f *fakeApptRepo) DeleteByID(context.Context, string) error              { return nil }

type fakeServiceRepo struct {
	services []models.Service
	err      error
}

func (f *fakeServiceRepo) GetByIDs(_ context.Context, ids []string) ([]models.Service, error) {
	return f.services, f.err
}
func (f *fakeServiceRepo) Create(context.Context, models.Service) (string, error) { return "", nil }
func (f *fakeServiceRepo) GetByID(context.Context, string) (*models.Service, error) {
	return nil, errors.New("not implemented")
}
func (f *fakeServiceRepo) ListAll(context.Context) ([]models.Service, error) { return nil, nil }
func (f *fakeServiceRepo) Update(context.Context, models.Service) error      { return nil }
func (f *fakeServiceRepo) DeleteByID(context.Context, string) error          { return nil }

type fakeSettingsRepo struct {
	settings models.Settings
	err      error
}

func (f *fakeSettingsRepo) Get(context.Context) (models.Settings, error) {
	if f.err != nil {
		return models.Settings{}, f.err
	}
	return f.settings, nil
}
func (f *fakeSettingsRepo) Update(context.Context, models.Settings) error { return nil }

type fakeQueue struct {
	tasks []*asynq.Task
	err   error
}

func (f *fakeQueue) Enqueue(task *asynq.Task, _ ...asynq.Option) (*asynq.TaskInfo, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.tasks = append(f.tasks, task)
	return &asynq.TaskInfo{}, nil
}

func newService(appt *fakeApptRepo, services []models.Service) (*DefaultBookingService, *fakeQueue) {
	queue := &fakeQueue{}
	svc := &DefaultBookingService{
		ApptRepo:     appt,
		ServiceRepo:  &fakeServiceRepo{services: services},
		SettingsRepo: &fakeSettingsRepo{settings: models.DefaultSettings()},
		Queue:        queue,
	}
	return svc, queue
}

func validInput() CreateAppointmentInput {
	return CreateAppointmentInput{
		ClientName:    "Maria Silva",
		Phone:         "(21) 97948-5161",
		City:          "Rio de Janeiro",
		State:         "RJ",
		ServiceIDs:    []string{"svc-1"},
		Date:          testDate,
		Time:          "10:00",
		ServiceType:   models.ServiceTypeStudio,
		PaymentMethod: models.PaymentPix,
	}
}

func makeup() []models.Service {
	return []models.Service{{ID: "svc-1", Name: "Maquiagem", Price: 150, Duration: 60}}
}

func TestMain(m *testing.M) {
	config.AppConfig.GuardedBooking = true
	config.AppConfig.PhoneCountryCode = "55"
	config.AppConfig.AdminPhone = "5521979485161"
	m.Run()
}

func TestGetAvailableSlots_NoServicesNoQuery(t *testing.T) {
	repo := &fakeApptRepo{}
	svc, _ := newService(repo, nil)

	res, err := svc.GetAvailableSlots(context.Background(), testDate, nil)
	require.NoError(t, err)
	assert.Empty(t, res.Slots)
	assert.Zero(t, repo.queryCalls, "zero duration must not hit the store")
}

func TestGetAvailableSlots_StoreFailureDegrades(t *testing.T) {
	repo := &fakeApptRepo{
		queryFn: func(string, []string) ([]models.Appointment, error) {
			return nil, errors.New("mongo down")
		},
	}
	svc, _ := newService(repo, makeup())

	res, err := svc.GetAvailableSlots(context.Background(), testDate, []string{"svc-1"})
	require.NoError(t, err, "store failure must not crash the flow")
	assert.Empty(t, res.Slots)
}

func TestGetAvailableSlots_CatalogFailureDegrades(t *testing.T) {
	repo := &fakeApptRepo{}
	svc, _ := newService(repo, nil)
	svc.ServiceRepo = &fakeServiceRepo{err: errors.New("mongo down")}

	res, err := svc.GetAvailableSlots(context.Background(), testDate, []string{"svc-1"})
	require.NoError(t, err, "catalog failure must degrade to no availability")
	assert.Empty(t, res.Slots)
	assert.Zero(t, repo.queryCalls, "no appointment query after a failed service lookup")
}

func TestGetAvailableSlots_FullDateBlockingMarksFullyBooked(t *testing.T) {
	repo := &fakeApptRepo{
		queryFn: func(string, []string) ([]models.Appointment, error) {
			return []models.Appointment{
				{Time: "09:00", TotalDuration: 540, Status: models.StatusConfirmed},
			}, nil
		},
	}
	svc, _ := newService(repo, makeup())
	settings := models.DefaultSettings()
	settings.FullDateBlocking = true
	svc.SettingsRepo = &fakeSettingsRepo{settings: settings}

	res, err := svc.GetAvailableSlots(context.Background(), testDate, []string{"svc-1"})
	require.NoError(t, err)
	assert.Empty(t, res.Slots)
	assert.True(t, res.FullyBooked)
}

func TestGetAvailableSlots_FiltersOccupied(t *testing.T) {
	repo := &fakeApptRepo{
		queryFn: func(date string, statuses []string) ([]models.Appointment, error) {
			assert.Equal(t, testDate, date)
			assert.ElementsMatch(t, []string{models.StatusPending, models.StatusConfirmed}, statuses)
			return []models.Appointment{
				{Time: "10:00", TotalDuration: 120, Status: models.StatusConfirmed},
			}, nil
		},
	}
	svc, _ := newService(repo, makeup())

	res, err := svc.GetAvailableSlots(context.Background(), testDate, []string{"svc-1"})
	require.NoError(t, err)
	assert.NotContains(t, res.Slots, "10:00")
	assert.NotContains(t, res.Slots, "11:00")
	assert.Contains(t, res.Slots, "09:00")
	assert.False(t, res.FullyBooked, "blocking is off by default")
}

func TestGetAvailableSlots_PastDateEmpty(t *testing.T) {
	repo := &fakeApptRepo{}
	svc, _ := newService(repo, makeup())

	res, err := svc.GetAvailableSlots(context.Background(), "2000-01-01", []string{"svc-1"})
	require.NoError(t, err)
	assert.Empty(t, res.Slots)
}

func TestCreateAppointment_Success(t *testing.T) {
	var inserted models.Appointment
	repo := &fakeApptRepo{
		createIfFreeFn: func(appt models.Appointment) (string, error) {
			inserted = appt
			return "appt-1", nil
		},
	}
	svc, queue := newService(repo, makeup())

	appt, err := svc.CreateAppointment(context.Background(), validInput())
	require.NoError(t, err)

	assert.Equal(t, "appt-1", appt.ID)
	assert.Equal(t, models.StatusPending, inserted.Status)
	assert.Equal(t, 150.0, inserted.TotalPrice)
	assert.Equal(t, 60, inserted.TotalDuration)
	assert.Len(t, queue.tasks, 3, "admin message, vcard and client receipt")
}

func TestCreateAppointment_DomicilioFee(t *testing.T) {
	var inserted models.Appointment
	repo := &fakeApptRepo{
		createIfFreeFn: func(appt models.Appointment) (string, error) {
			inserted = appt
			return "appt-1", nil
		},
	}
	svc, _ := newService(repo, makeup())

	input := validInput()
	input.ServiceType = models.ServiceTypeDomicilio

	_, err := svc.CreateAppointment(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, 150.0, inserted.BasePrice)
	assert.Equal(t, 200.0, inserted.TotalPrice)
}

func TestCreateAppointment_SlotNotAvailable(t *testing.T) {
	repo := &fakeApptRepo{
		queryFn: func(string, []string) ([]models.Appointment, error) {
			return []models.Appointment{
				{Time: "10:00", TotalDuration: 60, Status: models.StatusPending},
			}, nil
		},
	}
	svc, queue := newService(repo, makeup())

	_, err := svc.CreateAppointment(context.Background(), validInput())
	require.Error(t, err)

	var be *BookingError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, "slotTaken", be.Code)
	assert.Empty(t, queue.tasks)
}

func TestCreateAppointment_GuardedInsertLosesRace(t *testing.T) {
	repo := &fakeApptRepo{
		createIfFreeFn: func(models.Appointment) (string, error) {
			return "", appointmentRepo.ErrSlotTaken
		},
	}
	svc, queue := newService(repo, makeup())

	_, err := svc.CreateAppointment(context.Background(), validInput())
	require.Error(t, err)

	var be *BookingError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, "slotTaken", be.Code)
	assert.Empty(t, queue.tasks, "no notifications for a failed insert")
}

func TestCreateAppointment_PenteadoRequiresHairType(t *testing.T) {
	penteado := []models.Service{{ID: "svc-1", Name: "Penteado Festa", Price: 200, Duration: 90}}
	svc, _ := newService(&fakeApptRepo{}, penteado)

	_, err := svc.CreateAppointment(context.Background(), validInput())
	require.Error(t, err)

	var be *BookingError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, "validationError", be.Code)

	input := validInput()
	input.HairType = "cacheado"
	_, err = svc.CreateAppointment(context.Background(), input)
	assert.NoError(t, err)
}

func TestCreateAppointment_CustomFieldValidation(t *testing.T) {
	services := []models.Service{{
		ID: "svc-1", Name: "Maquiagem", Price: 150, Duration: 60,
		FormFields: []models.FormField{
			{ID: "skin_type", Label: "Tipo de pele", Kind: models.FieldSelect,
				Options: []string{"seca", "oleosa", "mista"}, Required: true},
		},
	}}
	svc, _ := newService(&fakeApptRepo{}, services)

	_, err := svc.CreateAppointment(context.Background(), validInput())
	require.Error(t, err, "required custom field missing")

	input := validInput()
	input.CustomFields = map[string]string{"skin_type": "mista"}
	_, err = svc.CreateAppointment(context.Background(), input)
	assert.NoError(t, err)
}

func TestCreateAppointment_UnknownService(t *testing.T) {
	svc, _ := newService(&fakeApptRepo{}, nil)

	_, err := svc.CreateAppointment(context.Background(), validInput())
	require.Error(t, err)

	var be *BookingError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, "validationError", be.Code)
}

func TestCreateAppointment_NotificationFailureNonFatal(t *testing.T) {
	repo := &fakeApptRepo{}
	svc, queue := newService(repo, makeup())
	queue.err = errors.New("redis down")

	appt, err := svc.CreateAppointment(context.Background(), validInput())
	require.NoError(t, err, "booking is the source of truth, notification is best effort")
	assert.NotNil(t, appt)
}

func TestCreateAppointment_PastDateRejected(t *testing.T) {
	svc, _ := newService(&fakeApptRepo{}, makeup())

	input := validInput()
	input.Date = "2000-01-01"
	_, err := svc.CreateAppointment(context.Background(), input)
	require.Error(t, err)
}
