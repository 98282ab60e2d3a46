package model

import (
	"context"
	"fmt"
	"time"

	"github.com/uptrace/bun"

	"gridcal/src-server/render"
)

type Event struct {
	bun.BaseModel `bun:"table:events"`

	ID          string `bun:"id,pk"`           // required
	Summary     string `bun:"summary,notnull"` // required
	Description string `bun:"description"`
	Location    string `bun:"location"`

	StartDateUnixUTC int64 `bun:"start_date,notnull"` // required
	EndDateUnixUTC   int64 `bun:"end_date,notnull"`   // required
	IsWholeDay       bool  `bun:"is_whole_day"`

	// Mask marks the event as a visual "in progress" span in the week view.
	Mask bool `bun:"mask"`
	// Classes are extra CSS classes emitted on the event's start cell.
	Classes string `bun:"classes"`

	CreatedAt int64 `bun:"created_at,notnull"`
	UpdatedAt int64 `bun:"updated_at"`
	Sequence  int   `bun:"sequence"`

	CalendarID string    `bun:"calendar_id,notnull"` // required
	Calendar   *Calendar `bun:"rel:belongs-to,join:calendar_id=id"`
}

func (e *Event) Upsert(ctx context.Context, db bun.IDB) error {
	switch {
	case e.ID == "":
		return fmt.Errorf("(*Event).Upsert: event id is blank")
	case e.Summary == "":
		return fmt.Errorf("(*Event).Upsert: summary is blank")
	case e.CalendarID == "":
		return fmt.Errorf("(*Event).Upsert: calendar id is blank")
	case e.StartDateUnixUTC == 0:
		return fmt.Errorf("(*Event).Upsert: start date is blank")
	case e.EndDateUnixUTC == 0:
		return fmt.Errorf("(*Event).Upsert: end date is blank")
	case e.StartDateUnixUTC > e.EndDateUnixUTC:
		return fmt.Errorf("(*Event).Upsert: start date must be before end date")
	}
	if e.CreatedAt == 0 {
		e.CreatedAt = time.Now().UTC().Unix()
	}
	startDate := time.Unix(e.StartDateUnixUTC, 0).UTC()
	if startDate.Hour() == 0 &&
		startDate.Minute() == 0 &&
		startDate.Second() == 0 {
		e.IsWholeDay = true
	}

	exists, err := db.NewSelect().
		Model((*Event)(nil)).
		Where("id = ?", e.ID).
		Exists(ctx)
	if err != nil {
		return fmt.Errorf("(*Event).Upsert: %w", err)
	}

	switch exists {
	case true:
		e.UpdatedAt = time.Now().UTC().Unix()
		e.Sequence++
		if _, err := db.NewUpdate().
			Model(e).
			WherePK().
			Exec(ctx); err != nil {
			return fmt.Errorf("(*Event).Upsert: %w", err)
		}
	case false:
		if _, err := db.NewInsert().
			Model(e).
			Exec(ctx); err != nil {
			return fmt.Errorf("(*Event).Upsert: %w", err)
		}
	}

	return nil
}

// EventsOverlapping returns every event of one calendar overlapping the
// half-open interval [start, end), ordered by (start_date, id). The order is
// load-bearing: the grid builder's first-match policy rides on it.
func EventsOverlapping(ctx context.Context, db bun.IDB, calendarID string, start, end time.Time) ([]Event, error) {
	eventModels := make([]Event, 0)
	if err := db.NewSelect().
		Model(&eventModels).
		Where("calendar_id = ?", calendarID).
		Where("start_date < ?", end.UTC().Unix()).
		Where("end_date > ?", start.UTC().Unix()).
		Order("start_date ASC", "id ASC").
		Scan(ctx); err != nil {
		return nil, fmt.Errorf("EventsOverlapping: %w", err)
	}
	return eventModels, nil
}

// ToRenderEvent converts the stored row into the renderer's read-only view,
// with timestamps expressed in the display location.
func (e *Event) ToRenderEvent(loc *time.Location) *render.Event {
	return &render.Event{
		ID:          e.ID,
		Summary:     e.Summary,
		Description: e.Description,
		Start:       time.Unix(e.StartDateUnixUTC, 0).In(loc),
		End:         time.Unix(e.EndDateUnixUTC, 0).In(loc),
		Mask:        e.Mask,
		Classes:     e.Classes,
	}
}
