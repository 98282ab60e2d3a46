package model_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"

	"gridcal/src-server/model"
)

func newTestDB(t *testing.T) *bun.DB {
	t.Helper()
	db, err := sql.Open(sqliteshim.ShimName, ":memory:")
	if err != nil {
		t.Fatal(err)
	}
	bundb := bun.NewDB(db, sqlitedialect.New())
	if err := model.CreateSchema(bundb); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { bundb.Close() })
	return bundb
}

func TestEventUpsert(t *testing.T) {
	bundb := newTestDB(t)
	start := time.Date(2024, 9, 2, 9, 0, 0, 0, time.UTC)

	eventModel := model.Event{
		ID:               uuid.NewString(),
		Summary:          "Standup",
		CalendarID:       model.DefaultCalendarID,
		StartDateUnixUTC: start.Unix(),
		EndDateUnixUTC:   start.Add(time.Hour).Unix(),
	}
	if err := eventModel.Upsert(context.Background(), bundb); err != nil {
		t.Fatal(err)
	}

	// case: updating bumps the sequence
	eventModel.Summary = "Standup (moved)"
	if err := eventModel.Upsert(context.Background(), bundb); err != nil {
		t.Fatal(err)
	}
	stored := new(model.Event)
	if err := bundb.NewSelect().
		Model(stored).
		Where("id = ?", eventModel.ID).
		Scan(context.Background()); err != nil {
		t.Fatal(err)
	}
	if stored.Summary != "Standup (moved)" || stored.Sequence != 1 {
		t.Errorf("want updated summary and sequence 1, got %q seq %d", stored.Summary, stored.Sequence)
	}

	// case: validation failures
	blank := model.Event{
		ID:               uuid.NewString(),
		CalendarID:       model.DefaultCalendarID,
		StartDateUnixUTC: start.Unix(),
		EndDateUnixUTC:   start.Add(time.Hour).Unix(),
	}
	if err := blank.Upsert(context.Background(), bundb); err == nil {
		t.Error("want an error for a blank summary")
	}
	inverted := model.Event{
		ID:               uuid.NewString(),
		Summary:          "Inverted",
		CalendarID:       model.DefaultCalendarID,
		StartDateUnixUTC: start.Add(time.Hour).Unix(),
		EndDateUnixUTC:   start.Unix(),
	}
	if err := inverted.Upsert(context.Background(), bundb); err == nil {
		t.Error("want an error for start after end")
	}
}

func TestEventsOverlapping(t *testing.T) {
	bundb := newTestDB(t)
	base := time.Date(2024, 9, 2, 0, 0, 0, 0, time.UTC)

	insert := func(summary string, start, end time.Time) {
		t.Helper()
		eventModel := model.Event{
			ID:               uuid.NewString(),
			Summary:          summary,
			CalendarID:       model.DefaultCalendarID,
			StartDateUnixUTC: start.Unix(),
			EndDateUnixUTC:   end.Unix(),
		}
		if err := eventModel.Upsert(context.Background(), bundb); err != nil {
			t.Fatal(err)
		}
	}
	insert("morning", base.Add(9*time.Hour), base.Add(10*time.Hour))
	insert("afternoon", base.Add(14*time.Hour), base.Add(15*time.Hour))
	insert("next day", base.Add(33*time.Hour), base.Add(34*time.Hour))

	// the whole first day
	events, err := model.EventsOverlapping(context.Background(), bundb,
		model.DefaultCalendarID, base, base.AddDate(0, 0, 1))
	if err != nil {
		t.Fatal(err)
	}
	if len(events) != 2 {
		t.Fatalf("want 2 events, got %d", len(events))
	}
	// ordered by start date, the first-match policy depends on this
	if events[0].Summary != "morning" || events[1].Summary != "afternoon" {
		t.Errorf("want stable start-date order, got %q then %q", events[0].Summary, events[1].Summary)
	}

	// boundaries are inclusive-start, exclusive-end
	events, err = model.EventsOverlapping(context.Background(), bundb,
		model.DefaultCalendarID, base.Add(10*time.Hour), base.Add(14*time.Hour))
	if err != nil {
		t.Fatal(err)
	}
	if len(events) != 0 {
		t.Errorf("want 0 events between the two, got %d", len(events))
	}

	// a different calendar sees nothing
	events, err = model.EventsOverlapping(context.Background(), bundb,
		"elsewhere", base, base.AddDate(0, 0, 7))
	if err != nil {
		t.Fatal(err)
	}
	if len(events) != 0 {
		t.Errorf("want 0 events in another calendar, got %d", len(events))
	}
}

func TestToRenderEvent(t *testing.T) {
	start := time.Date(2024, 9, 2, 9, 0, 0, 0, time.UTC)
	eventModel := model.Event{
		ID:               "abc",
		Summary:          "Standup",
		StartDateUnixUTC: start.Unix(),
		EndDateUnixUTC:   start.Add(time.Hour).Unix(),
		Mask:             true,
		Classes:          "team-a",
	}
	renderEvent := eventModel.ToRenderEvent(time.UTC)
	if !renderEvent.Start.Equal(start) || !renderEvent.End.Equal(start.Add(time.Hour)) {
		t.Errorf("timestamps mangled: %v - %v", renderEvent.Start, renderEvent.End)
	}
	if !renderEvent.Mask || renderEvent.Classes != "team-a" {
		t.Error("mask flag or classes lost in conversion")
	}
}
