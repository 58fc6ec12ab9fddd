package availability

import (
	"regexp"
	"sort"
	"testing"
	"time"

	"jojocolaresbeauty/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultWindow() models.WorkingWindow {
	return models.WorkingWindow{StartHour: 9, EndHour: 18}
}

func appt(startTime string, durationMinutes int, status string) models.Appointment {
	return models.Appointment{
		Time:          startTime,
		TotalDuration: durationMinutes,
		Status:        status,
	}
}

func TestRequiredSlots(t *testing.T) {
	cases := []struct {
		minutes int
		want    int
	}{
		{0, 0},
		{-30, 0},
		{1, 1},
		{30, 1},
		{60, 1},
		{61, 2},
		{90, 2},
		{120, 2},
		{121, 3},
		{180, 3},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, RequiredSlots(tc.minutes), "minutes=%d", tc.minutes)
	}
}

func TestComputeAvailableSlots_NonPositiveDurationIsEmpty(t *testing.T) {
	assert.Empty(t, ComputeAvailableSlots(0, defaultWindow(), nil))
	assert.Empty(t, ComputeAvailableSlots(-15, defaultWindow(), nil))
}

func TestComputeAvailableSlots_EmptyDay(t *testing.T) {
	slots := ComputeAvailableSlots(60, defaultWindow(), nil)
	require.Len(t, slots, 9)
	assert.Equal(t, "09:00", slots[0])
	assert.Equal(t, "17:00", slots[8])
}

func TestComputeAvailableSlots_TwoHourBookingBlocksBothHours(t *testing.T) {
	existing := []models.Appointment{appt("10:00", 120, models.StatusConfirmed)}
	slots := ComputeAvailableSlots(60, defaultWindow(), existing)

	assert.NotContains(t, slots, "10:00")
	assert.NotContains(t, slots, "11:00")
	assert.Contains(t, slots, "09:00")
	assert.Contains(t, slots, "12:00")
}

func TestComputeAvailableSlots_NinetyMinutesNeedsTwoConsecutiveHours(t *testing.T) {
	existing := []models.Appointment{appt("11:00", 60, models.StatusPending)}
	slots := ComputeAvailableSlots(90, defaultWindow(), existing)

	// 10:00 would spill into the occupied 11:00 hour.
	assert.NotContains(t, slots, "10:00")
	assert.NotContains(t, slots, "11:00")
	assert.Contains(t, slots, "09:00")
	assert.Contains(t, slots, "12:00")
	// The last hour of the day cannot host a two-hour span.
	assert.NotContains(t, slots, "17:00")
}

func TestComputeAvailableSlots_CancelledNeverOccupies(t *testing.T) {
	existing := []models.Appointment{appt("10:00", 180, models.StatusCancelled)}
	slots := ComputeAvailableSlots(60, defaultWindow(), existing)
	assert.Contains(t, slots, "10:00")
	assert.Contains(t, slots, "11:00")
	assert.Contains(t, slots, "12:00")
}

func TestComputeAvailableSlots_PendingOccupies(t *testing.T) {
	existing := []models.Appointment{appt("14:00", 60, models.StatusPending)}
	slots := ComputeAvailableSlots(60, defaultWindow(), existing)
	assert.NotContains(t, slots, "14:00")
}

func TestComputeAvailableSlots_ExistingNinetyMinutesBlocksTwoHours(t *testing.T) {
	existing := []models.Appointment{appt("09:00", 90, models.StatusConfirmed)}
	slots := ComputeAvailableSlots(60, defaultWindow(), existing)
	assert.NotContains(t, slots, "09:00")
	assert.NotContains(t, slots, "10:00")
	assert.Contains(t, slots, "11:00")
}

func TestComputeAvailableSlots_SpillPastClosingIsHarmless(t *testing.T) {
	// A long appointment near closing occupies hours beyond the window; those
	// hours are never candidates so availability inside the window is intact.
	existing := []models.Appointment{appt("17:00", 180, models.StatusConfirmed)}
	slots := ComputeAvailableSlots(60, defaultWindow(), existing)
	assert.NotContains(t, slots, "17:00")
	assert.Contains(t, slots, "16:00")
}

func TestComputeAvailableSlots_Idempotent(t *testing.T) {
	existing := []models.Appointment{
		appt("10:00", 120, models.StatusConfirmed),
		appt("15:00", 60, models.StatusPending),
	}
	first := ComputeAvailableSlots(60, defaultWindow(), existing)
	second := ComputeAvailableSlots(60, defaultWindow(), existing)
	assert.Equal(t, first, second)
}

func TestComputeAvailableSlots_OutputShape(t *testing.T) {
	slotRe := regexp.MustCompile(`^([01][0-9]|2[0-3]):00$`)
	slots := ComputeAvailableSlots(60, defaultWindow(), []models.Appointment{
		appt("11:00", 60, models.StatusConfirmed),
	})
	for _, s := range slots {
		assert.Regexp(t, slotRe, s)
	}
	assert.True(t, sort.StringsAreSorted(slots))
}

func TestComputeAvailableSlots_MalformedTimeSkipped(t *testing.T) {
	existing := []models.Appointment{appt("whenever", 60, models.StatusConfirmed)}
	slots := ComputeAvailableSlots(60, defaultWindow(), existing)
	assert.Len(t, slots, 9)
}

func TestIsFullyBooked(t *testing.T) {
	window := models.WorkingWindow{StartHour: 9, EndHour: 11}
	existing := []models.Appointment{
		appt("09:00", 60, models.StatusConfirmed),
		appt("10:00", 60, models.StatusPending),
	}
	assert.True(t, IsFullyBooked(60, window, existing))
	assert.False(t, IsFullyBooked(60, window, existing[:1]))
}

func TestDateSelectable(t *testing.T) {
	now := time.Date(2026, 3, 10, 23, 30, 0, 0, time.Local)

	assert.True(t, DateSelectable("2026-03-10", now), "today stays selectable until midnight")
	assert.True(t, DateSelectable("2026-03-11", now))
	assert.False(t, DateSelectable("2026-03-09", now))
	assert.False(t, DateSelectable("not-a-date", now))
}

func TestAppointmentHours(t *testing.T) {
	assert.Equal(t, []int{10, 11}, AppointmentHours(appt("10:00", 90, models.StatusPending)))
	assert.Nil(t, AppointmentHours(appt("bogus", 60, models.StatusPending)))
}
