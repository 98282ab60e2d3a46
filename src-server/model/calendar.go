package model

import "github.com/uptrace/bun"

type Calendar struct {
	bun.BaseModel `bun:"table:calendars"`

	ID   string `bun:"id,pk"`        // required
	Name string `bun:"name,notnull"` // required

	Events []*Event `bun:"rel:has-many,join:id=calendar_id"`
}

// DefaultCalendarID is the calendar the view routes fall back to when no
// ?calendar= param is given.
const DefaultCalendarID = "default"
