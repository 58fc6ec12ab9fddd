package models

import (
	"errors"
	"strconv"
	"strings"
)

// Default working window used whenever configuration is missing or malformed.
const (
	DefaultWorkingStart = "09:00"
	DefaultWorkingEnd   = "18:00"
	DefaultInterval     = 60
)

// WorkingHours is the configured daily booking window. Interval is stored for
// the admin UI but slot granularity is always whole hours.
type WorkingHours struct {
	Start    string `bson:"start" json:"start"` // "HH:mm"
	End      string `bson:"end" json:"end"`     // "HH:mm"
	Interval int    `bson:"interval" json:"interval"`
}

// Settings is the single back-office configuration document.
type Settings struct {
	WorkingHours     WorkingHours `bson:"working_hours" json:"workingHours"`
	FullDateBlocking bool         `bson:"full_date_blocking" json:"fullDateBlocking"`
}

// DefaultSettings returns the documented fallback configuration.
func DefaultSettings() Settings {
	return Settings{
		WorkingHours: WorkingHours{
			Start:    DefaultWorkingStart,
			End:      DefaultWorkingEnd,
			Interval: DefaultInterval,
		},
	}
}

// WorkingWindow is the half-open hour range [StartHour, EndHour) during which
// slots may start.
type WorkingWindow struct {
	StartHour int `json:"startHour"`
	EndHour   int `json:"endHour"`
}

// Window parses the configured hours into a WorkingWindow, falling back to the
// defaults when either bound is malformed or the range is empty.
func (wh WorkingHours) Window() WorkingWindow {
	window, err := wh.ParseWindow()
	if err != nil {
		defaults := DefaultSettings().WorkingHours
		window, _ = defaults.ParseWindow()
	}
	return window
}

// ParseWindow parses the configured hours strictly, erroring on malformed
// bounds or an empty range. Used by the admin settings update to reject bad
// input instead of silently defaulting.
func (wh WorkingHours) ParseWindow() (WorkingWindow, error) {
	start, okStart := parseHour(wh.Start)
	end, okEnd := parseHour(wh.End)
	if !okStart || !okEnd {
		return WorkingWindow{}, errors.New("working hours must be HH:mm with a valid hour")
	}
	if start >= end {
		return WorkingWindow{}, errors.New("working hours start must be before end")
	}
	return WorkingWindow{StartHour: start, EndHour: end}, nil
}

func parseHour(hhmm string) (int, bool) {
	h, _, found := strings.Cut(hhmm, ":")
	if !found {
		h = hhmm
	}
	hour, err := strconv.Atoi(h)
	if err != nil || hour < 0 || hour > 23 {
		return 0, false
	}
	return hour, true
}
