package admin

import (
	"context"
	"errors"
	"testing"

	"jojocolaresbeauty/config"
	"jojocolaresbeauty/models"
	"jojocolaresbeauty/services/tasks"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeApptRepo struct {
	appointments  map[string]*models.Appointment
	updatedStatus string
}

func (f *fakeApptRepo) GetByID(_ context.Context, id string) (*models.Appointment, error) {
	if a, ok := f.appointments[id]; ok {
		cp := *a
		return &cp, nil
	}
	return nil, errors.New("not found")
}

func (f *fakeApptRepo) UpdateStatus(_ context.Context, id, status string) error {
	if _, ok := f.appointments[id]; !ok {
		return errors.New("not found")
	}
	f.appointments[id].Status = status
	f.updatedStatus = status
	return nil
}

func (f *fakeApptRepo) ListAll(context.Context) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, a := range f.appointments {
		out = append(out, *a)
	}
	return out, nil
}

func (f *fakeApptRepo) Create(context.Context, models.Appointment) (string, error) { return "", nil }
func (f *fakeApptRepo) CreateIfFree(context.Context, models.Appointment) (string, error) {
	return "", nil
}
func (f *fakeApptRepo) QueryByDate(context.Context, string, []string) ([]models.Appointment, error) {
	return nil, nil
}
func (f *fakeApptRepo) DeleteByID(_ context.Context, id string) error {
	delete(f.appointments, id)
	return nil
}

type fakeSettingsRepo struct {
	settings models.Settings
	updated  *models.Settings
}

func (f *fakeSettingsRepo) Get(context.Context) (models.Settings, error) { return f.settings, nil }
func (f *fakeSettingsRepo) Update(_ context.Context, s models.Settings) error {
	f.updated = &s
	return nil
}

type fakeQueue struct {
	tasks []*asynq.Task
}

func (f *fakeQueue) Enqueue(task *asynq.Task, _ ...asynq.Option) (*asynq.TaskInfo, error) {
	f.tasks = append(f.tasks, task)
	return &asynq.TaskInfo{}, nil
}

func (f *fakeQueue) typeNames() []string {
	var names []string
	for _, t := range f.tasks {
		names = append(names, t.Type())
	}
	return names
}

func pendingAppt(id string) *models.Appointment {
	return &models.Appointment{
		ID:         id,
		ClientName: "Maria",
		Phone:      "(21) 97948-5161",
		Services:   []models.Service{{Name: "Maquiagem"}},
		Date:       "2100-01-05",
		Time:       "10:00",
		Status:     models.StatusPending,
	}
}

func newService(repo *fakeApptRepo) (*DefaultAdminService, *fakeQueue) {
	queue := &fakeQueue{}
	return &DefaultAdminService{
		ApptRepo:     repo,
		SettingsRepo: &fakeSettingsRepo{settings: models.DefaultSettings()},
		Queue:        queue,
	}, queue
}

func TestMain(m *testing.M) {
	config.AppConfig.PhoneCountryCode = "55"
	config.AppConfig.AdminPhone = "5521979485161"
	m.Run()
}

func TestUpdateStatus_ConfirmNotifiesAndSchedulesReminder(t *testing.T) {
	repo := &fakeApptRepo{appointments: map[string]*models.Appointment{"a1": pendingAppt("a1")}}
	svc, queue := newService(repo)

	appt, err := svc.UpdateStatus(context.Background(), "a1", models.StatusConfirmed)
	require.NoError(t, err)
	assert.Equal(t, models.StatusConfirmed, appt.Status)
	assert.Equal(t, models.StatusConfirmed, repo.updatedStatus)

	names := queue.typeNames()
	assert.Equal(t, []string{tasks.TypeNotifySend, tasks.TypeNotifySend, tasks.TypeReminderSend}, names)
}

func TestUpdateStatus_CancelNotifiesWithoutReminder(t *testing.T) {
	repo := &fakeApptRepo{appointments: map[string]*models.Appointment{"a1": pendingAppt("a1")}}
	svc, queue := newService(repo)

	_, err := svc.UpdateStatus(context.Background(), "a1", models.StatusCancelled)
	require.NoError(t, err)
	assert.Equal(t, []string{tasks.TypeNotifySend, tasks.TypeNotifySend}, queue.typeNames())
}

func TestUpdateStatus_ReopenToPendingIsSilent(t *testing.T) {
	appt := pendingAppt("a1")
	appt.Status = models.StatusCancelled
	repo := &fakeApptRepo{appointments: map[string]*models.Appointment{"a1": appt}}
	svc, queue := newService(repo)

	got, err := svc.UpdateStatus(context.Background(), "a1", models.StatusPending)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, got.Status)
	assert.Empty(t, queue.tasks, "transitions into pending send nothing")
}

func TestUpdateStatus_UnknownStatusRejected(t *testing.T) {
	repo := &fakeApptRepo{appointments: map[string]*models.Appointment{"a1": pendingAppt("a1")}}
	svc, _ := newService(repo)

	_, err := svc.UpdateStatus(context.Background(), "a1", "archived")
	assert.Error(t, err)
}

func TestListAppointments_StatusFilter(t *testing.T) {
	a := pendingAppt("a1")
	b := pendingAppt("a2")
	b.Status = models.StatusConfirmed
	repo := &fakeApptRepo{appointments: map[string]*models.Appointment{"a1": a, "a2": b}}
	svc, _ := newService(repo)

	all, err := svc.ListAppointments(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	confirmed, err := svc.ListAppointments(context.Background(), models.StatusConfirmed)
	require.NoError(t, err)
	require.Len(t, confirmed, 1)
	assert.Equal(t, "a2", confirmed[0].ID)
}

func TestDashboardStats(t *testing.T) {
	a := pendingAppt("a1")
	b := pendingAppt("a2")
	b.Status = models.StatusConfirmed
	c := pendingAppt("a3")
	c.Status = models.StatusCancelled
	repo := &fakeApptRepo{appointments: map[string]*models.Appointment{"a1": a, "a2": b, "a3": c}}
	svc, _ := newService(repo)

	stats, err := svc.DashboardStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, DashboardStats{Pending: 1, Confirmed: 1, Cancelled: 1, Total: 3}, stats)
}

func TestUpdateSettings_Validation(t *testing.T) {
	svc, _ := newService(&fakeApptRepo{})

	err := svc.UpdateSettings(context.Background(), models.Settings{
		WorkingHours: models.WorkingHours{Start: "10:00", End: "16:00", Interval: 60},
	})
	assert.NoError(t, err)

	err = svc.UpdateSettings(context.Background(), models.Settings{
		WorkingHours: models.WorkingHours{Start: "", End: "16:00"},
	})
	assert.Error(t, err)
}
