package availability

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"jojocolaresbeauty/models"
)

// Slots are whole hours regardless of the configured interval.
const slotMinutes = 60

// RequiredSlots converts a duration in minutes to the number of consecutive
// hour slots it blocks. Non-positive durations need no slots.
func RequiredSlots(durationMinutes int) int {
	if durationMinutes <= 0 {
		return 0
	}
	return (durationMinutes + slotMinutes - 1) / slotMinutes
}

// AppointmentHours returns the hours the appointment spans, starting at its
// start hour. Malformed start times yield nil.
func AppointmentHours(appt models.Appointment) []int {
	start, ok := parseStartHour(appt.Time)
	if !ok {
		return nil
	}
	span := RequiredSlots(appt.TotalDuration)
	hours := make([]int, 0, span)
	for i := 0; i < span; i++ {
		hours = append(hours, start+i)
	}
	return hours
}

// OccupiedHours builds the set of hours blocked by the given appointments.
// Cancelled appointments and records with malformed times are skipped.
func OccupiedHours(appts []models.Appointment) map[int]bool {
	occupied := make(map[int]bool)
	for _, appt := range appts {
		if !appt.Occupies() {
			continue
		}
		for _, h := range AppointmentHours(appt) {
			occupied[h] = true
		}
	}
	return occupied
}

// ComputeAvailableSlots returns the start times within the window at which an
// appointment of the given duration fits without overlapping the existing
// ones. Every hour the appointment would span must lie inside the window and
// be unoccupied. The result is sorted ascending and never nil.
func ComputeAvailableSlots(durationMinutes int, window models.WorkingWindow, existing []models.Appointment) []string {
	slots := []string{}
	required := RequiredSlots(durationMinutes)
	if required == 0 {
		return slots
	}

	occupied := OccupiedHours(existing)
	for h := window.StartHour; h < window.EndHour; h++ {
		fits := true
		for i := 0; i < required; i++ {
			if h+i >= window.EndHour || occupied[h+i] {
				fits = false
				break
			}
		}
		if fits {
			slots = append(slots, FormatSlot(h))
		}
	}

	sort.Strings(slots)
	return slots
}

// IsFullyBooked reports whether no slot of the given duration fits on the day.
func IsFullyBooked(durationMinutes int, window models.WorkingWindow, existing []models.Appointment) bool {
	return len(ComputeAvailableSlots(durationMinutes, window, existing)) == 0
}

// DateSelectable reports whether the date (YYYY-MM-DD) is today or later.
// Malformed dates are not selectable.
func DateSelectable(date string, now time.Time) bool {
	d, err := time.ParseInLocation("2006-01-02", date, now.Location())
	if err != nil {
		return false
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return !d.Before(today)
}

// FormatSlot renders an hour as a "HH:00" slot label.
func FormatSlot(hour int) string {
	return fmt.Sprintf("%02d:00", hour)
}

func parseStartHour(hhmm string) (int, bool) {
	h, _, found := strings.Cut(hhmm, ":")
	if !found {
		return 0, false
	}
	hour, err := strconv.Atoi(h)
	if err != nil || hour < 0 || hour > 23 {
		return 0, false
	}
	return hour, true
}
