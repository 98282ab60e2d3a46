package render_test

import (
	"testing"
	"time"

	"gridcal/src-server/render"
)

func TestSanitizeWeekStart(t *testing.T) {
	wednesday := time.Date(2024, 9, 4, 15, 30, 0, 0, time.UTC)

	// Monday start
	if got := render.SanitizeWeekStart(wednesday, 1); !got.Equal(monday) {
		t.Errorf("want %v, got %v", monday, got)
	}
	// Sunday start
	sunday := time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC)
	if got := render.SanitizeWeekStart(wednesday, 0); !got.Equal(sunday) {
		t.Errorf("want %v, got %v", sunday, got)
	}
	// an anchor already on the week start stays put, clamped to midnight
	if got := render.SanitizeWeekStart(monday.Add(11*time.Hour), 1); !got.Equal(monday) {
		t.Errorf("want %v, got %v", monday, got)
	}
}

func TestOptionsNormalizeDefaults(t *testing.T) {
	var opts render.Options
	if err := opts.Normalize(); err != nil {
		t.Fatal(err)
	}
	if opts.TimeInterval != 30 {
		t.Errorf("want default interval 30, got %d", opts.TimeInterval)
	}
	if opts.StartTime != "08:00" || opts.EndTime != "20:00" {
		t.Errorf("want default 08:00-20:00, got %s-%s", opts.StartTime, opts.EndTime)
	}
	if opts.Locale != "en" {
		t.Errorf("want default locale en, got %s", opts.Locale)
	}
	if opts.StartDate.IsZero() {
		t.Error("want start date defaulted to now")
	}
	if opts.Location == nil || opts.Now == nil {
		t.Error("want location and clock defaulted")
	}
}

func TestOptionsNormalizeFailsFast(t *testing.T) {
	opts := render.Options{StartTime: "25:00"}
	if err := opts.Normalize(); err == nil {
		t.Error("want an error for a bad start time")
	}
	opts = render.Options{TimeInterval: -1}
	if err := opts.Normalize(); err == nil {
		t.Error("want an error for a negative interval")
	}
}
