package render

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const minutesPerDay = 24 * 60

// Slot is one fixed-duration row in the week grid: the half-open interval
// [Minutes, Minutes+interval) counted from the day's midnight. Minutes can
// exceed a day's worth when the configured range wraps past midnight; Label
// is always the wall-clock "HH:MM" form.
type Slot struct {
	Label   string
	Minutes int
	Row     int
}

// parseClock turns a "HH:MM" string into minutes from midnight.
func parseClock(s string) (int, error) {
	hourStr, minuteStr, found := strings.Cut(strings.TrimSpace(s), ":")
	if !found {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeRange, s)
	}
	hour, err := strconv.Atoi(hourStr)
	if err != nil || hour < 0 || hour > 23 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeRange, s)
	}
	minute, err := strconv.Atoi(minuteStr)
	if err != nil || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeRange, s)
	}
	return hour*60 + minute, nil
}

func clockLabel(minutes int) string {
	minutes %= minutesPerDay
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// EnumerateSlots produces the ordered, deduplicated slot sequence from
// startTime up to (excluding) endTime, stepping by interval minutes. Equal
// start and end times mean a full 24-hour day, not an empty sequence. A
// trailing partial slot is kept as a boundary marker; its own end is
// computed at render time.
func EnumerateSlots(startTime, endTime string, interval int) ([]Slot, error) {
	if interval <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidInterval, interval)
	}
	startMinutes, err := parseClock(startTime)
	if err != nil {
		return nil, err
	}
	endMinutes, err := parseClock(endTime)
	if err != nil {
		return nil, err
	}
	switch {
	case startMinutes == endMinutes:
		// all-day configuration
		endMinutes += minutesPerDay
	case endMinutes < startMinutes:
		return nil, fmt.Errorf("%w: %s is after %s", ErrInvalidTimeRange, startTime, endTime)
	}

	var slots []Slot
	seen := make(map[string]struct{})
	for minutes := startMinutes; minutes < endMinutes; minutes += interval {
		label := clockLabel(minutes)
		if _, ok := seen[label]; ok {
			continue
		}
		seen[label] = struct{}{}
		slots = append(slots, Slot{
			Label:   label,
			Minutes: minutes,
			Row:     len(slots),
		})
	}
	return slots, nil
}

// slotStartAt anchors a slot to an absolute datetime on the given day.
func slotStartAt(day time.Time, slot Slot) time.Time {
	midnight := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	return midnight.Add(time.Duration(slot.Minutes) * time.Minute)
}
