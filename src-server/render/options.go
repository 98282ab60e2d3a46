package render

import (
	"errors"
	"time"
)

var (
	ErrInvalidTimeRange = errors.New("start/end time must be valid HH:MM clock values")
	ErrInvalidInterval  = errors.New("time interval must be a positive number of minutes")
)

// Options carries everything one render call needs. Every field is optional;
// Normalize fills the blanks and fails fast before any HTML is assembled.
type Options struct {
	// Color is a style variant name, appended as a CSS class on the
	// container div.
	Color string
	// StartDate anchors the period; it gets sanitized back to the
	// configured week start for the week view.
	StartDate time.Time
	// TimeInterval is the minutes per slot row.
	TimeInterval int
	// StartTime and EndTime are "HH:MM" bounds for the day's rows. Equal
	// values mean a full 24-hour day.
	StartTime string
	EndTime   string

	Locale       string
	TableClasses string
	// StartingDay is the first day of the week: 0 for Sunday, 1 for Monday.
	StartingDay int
	// HiddenWeekdays are omitted from headers and body cells at emission
	// time; internal row/column indices are not shifted.
	HiddenWeekdays map[time.Weekday]bool

	Location *time.Location
	// Now is injectable so tests can pin the "today" decoration.
	Now func() time.Time
}

// Normalize fills defaults and validates the time range and interval. It is
// idempotent; routes call it to reject bad requests before rendering and the
// renderers call it again on entry.
func (o *Options) Normalize() error {
	if o.Location == nil {
		o.Location = time.Local
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	if o.TimeInterval == 0 {
		o.TimeInterval = 30
	}
	if o.StartTime == "" {
		o.StartTime = "08:00"
	}
	if o.EndTime == "" {
		o.EndTime = "20:00"
	}
	if o.Locale == "" {
		o.Locale = "en"
	}
	if o.StartDate.IsZero() {
		o.StartDate = o.Now().In(o.Location)
	}
	if o.StartingDay != 0 && o.StartingDay != 1 {
		o.StartingDay = 1
	}

	if o.TimeInterval < 0 {
		return ErrInvalidInterval
	}
	if _, err := EnumerateSlots(o.StartTime, o.EndTime, o.TimeInterval); err != nil {
		return err
	}
	return nil
}

func (o *Options) dayHidden(day time.Time) bool {
	return o.HiddenWeekdays[day.Weekday()]
}

// SanitizeWeekStart walks t back to the most recent configured week-start
// day (Sunday=0 or Monday=1), at midnight in t's location.
func SanitizeWeekStart(t time.Time, startingDay int) time.Time {
	offset := (int(t.Weekday()) - startingDay + 7) % 7
	t = t.AddDate(0, 0, -offset)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// weekDays lists the 7 consecutive days beginning at the sanitized anchor.
func (o *Options) weekDays() [7]time.Time {
	start := SanitizeWeekStart(o.StartDate.In(o.Location), o.StartingDay)
	var days [7]time.Time
	for i := range days {
		days[i] = start.AddDate(0, 0, i)
	}
	return days
}

func sameDate(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
