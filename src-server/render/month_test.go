package render_test

import (
	"strings"
	"testing"
	"time"

	"gridcal/src-server/render"
)

func TestMonthGrid(t *testing.T) {
	opts := testOptions()
	opts.StartDate = time.Date(2024, 9, 10, 0, 0, 0, 0, time.UTC)

	event := &render.Event{
		ID:      "review",
		Summary: "Quarterly review",
		Start:   time.Date(2024, 9, 10, 14, 0, 0, 0, time.UTC),
		End:     time.Date(2024, 9, 10, 15, 0, 0, 0, time.UTC),
	}
	fragment, err := render.Month(opts, render.NewEventSet([]*render.Event{event}))
	if err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(fragment, `<div class="monthly-calendar-container">`) {
		t.Error("missing container div")
	}
	// September 2024 with Monday week start: Aug 26 .. Oct 6, six week rows
	if got := len(bodyRows(t, fragment)); got != 6 {
		t.Errorf("want 6 week rows, got %d", got)
	}
	if !strings.Contains(fragment, "other-month") {
		t.Error("want other-month class on neighbor-month days")
	}
	if !strings.Contains(fragment, "Quarterly review") {
		t.Error("want the event summary listed on its day")
	}
	if !strings.Contains(fragment, "today") {
		t.Error("want the today class on the pinned current date")
	}
}

func TestMonthHiddenDays(t *testing.T) {
	opts := testOptions()
	opts.StartDate = time.Date(2024, 9, 10, 0, 0, 0, 0, time.UTC)
	opts.HiddenWeekdays = map[time.Weekday]bool{time.Sunday: true}

	fragment, err := render.Month(opts, render.NewEventSet(nil))
	if err != nil {
		t.Fatal(err)
	}
	if got := strings.Count(fragment, "</th>"); got != 6 {
		t.Errorf("want 6 header cells, got %d", got)
	}
	for i, row := range bodyRows(t, fragment) {
		if got := strings.Count(row, "<td"); got != 6 {
			t.Errorf("row %d: want 6 cells, got %d", i, got)
		}
	}
}

func TestMonthLocalized(t *testing.T) {
	opts := testOptions()
	opts.StartDate = time.Date(2024, 9, 10, 0, 0, 0, 0, time.UTC)
	opts.Locale = "fr"

	fragment, err := render.Month(opts, render.NewEventSet(nil))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(fragment, "Lundi") {
		t.Error("want French weekday names in the header")
	}
}
