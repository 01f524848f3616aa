package query

import (
	"errors"
	"fmt"
	"time"
)

// Preset names a date window relative to today.
type Preset string

const (
	Last7Days   Preset = "7days"
	Last30Days  Preset = "30days"
	Last6Months Preset = "6months"
	LastYear    Preset = "1year"
	ThisWeek    Preset = "week"
	ThisMonth   Preset = "month"
	ThisQuarter Preset = "quarter"
	ThisYear    Preset = "year"
)

// Presets lists the supported presets.
var Presets = []Preset{Last7Days, Last30Days, Last6Months, LastYear, ThisWeek, ThisMonth, ThisQuarter, ThisYear}

// ErrUnknownPreset is returned for a preset name outside Presets.
var ErrUnknownPreset = errors.New("unknown date range preset")

// DateRange is an inclusive time interval.
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Contains reports whether t lies within the range, bounds included.
func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

// PresetToDateRange resolves preset against the current time.
func PresetToDateRange(preset Preset) (DateRange, error) {
	return PresetToDateRangeAt(preset, time.Now())
}

// PresetToDateRangeAt resolves preset against now. End is the last instant
// of now's day. Rolling presets start at the beginning of the day the window
// reaches back to; calendar presets start at the beginning of the current
// week (Monday), month, quarter or year.
func PresetToDateRangeAt(preset Preset, now time.Time) (DateRange, error) {
	end := endOfDay(now)
	var start time.Time

	switch preset {
	case Last7Days:
		start = end.AddDate(0, 0, -7)
	case Last30Days:
		start = end.AddDate(0, 0, -30)
	case Last6Months:
		start = end.AddDate(0, -6, 0)
	case LastYear:
		start = end.AddDate(-1, 0, 0)
	case ThisWeek:
		offset := (int(now.Weekday()) + 6) % 7
		start = now.AddDate(0, 0, -offset)
	case ThisMonth:
		start = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	case ThisQuarter:
		first := time.Month((int(now.Month())-1)/3*3 + 1)
		start = time.Date(now.Year(), first, 1, 0, 0, 0, 0, now.Location())
	case ThisYear:
		start = time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
	default:
		return DateRange{}, fmt.Errorf("%w: %q", ErrUnknownPreset, preset)
	}

	return DateRange{Start: startOfDay(start), End: end}, nil
}

// FilterByDateRange keeps the items whose field falls inside r. Items with a
// missing or unparsable date are dropped.
func FilterByDateRange[T Record](items []T, field string, r DateRange) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		t, ok := parseTime(item.Field(field))
		if ok && r.Contains(t) {
			out = append(out, item)
		}
	}
	return out
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}
