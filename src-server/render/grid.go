package render

import (
	"time"
)

type CellKind int

const (
	// CellEmpty: no event touches the slot; an empty placeholder is emitted.
	CellEmpty CellKind = iota
	// CellEventStart: an event begins occupying the column here; the cell
	// carries the event and its rowspan.
	CellEventStart
	// CellOccupied: a prior EventStart's rowspan already covers this row;
	// no cell is emitted for the day at all.
	CellOccupied
)

type Cell struct {
	Kind    CellKind
	Event   *Event
	Rowspan int
}

// WeekGrid is the per-day, per-row cell assignment for one 7-day period.
type WeekGrid struct {
	Days     [7]time.Time
	Slots    []Slot
	Interval time.Duration
	// Cells[day][row]; exactly one cell per (day, row) pair.
	Cells [7][]Cell
}

// BuildWeekGrid walks every (day, row) position in increasing row order and
// assigns each one a cell. `find` must return events overlapping the given
// half-open interval in a stable order; when several match, the first one
// wins (a deliberate simplification, not a tie-break rule).
//
// Rows claimed by an earlier rowspan are recorded before the next row is
// processed and are never re-queried, so two EventStarts in the same day can
// never claim overlapping rows.
func BuildWeekGrid(days [7]time.Time, slots []Slot, interval time.Duration, find func(start, end time.Time) []*Event) *WeekGrid {
	grid := &WeekGrid{
		Days:     days,
		Slots:    slots,
		Interval: interval,
	}

	for dayIndex, day := range days {
		cells := make([]Cell, len(slots))
		for row, slot := range slots {
			if cells[row].Kind == CellOccupied {
				continue
			}

			slotStart := slotStartAt(day, slot)
			matches := find(slotStart, slotStart.Add(interval))
			if len(matches) == 0 {
				continue // zero value already is CellEmpty
			}

			event := matches[0]
			rowspan := spanRows(event.End.Sub(slotStart), interval)
			if remaining := len(slots) - row; rowspan > remaining {
				// keep the table rectangular when the event runs past
				// the last slot of the day
				rowspan = remaining
			}
			cells[row] = Cell{
				Kind:    CellEventStart,
				Event:   event,
				Rowspan: rowspan,
			}
			for claimed := row + 1; claimed < row+rowspan; claimed++ {
				cells[claimed] = Cell{Kind: CellOccupied}
			}
		}
		grid.Cells[dayIndex] = cells
	}

	return grid
}

// spanRows is ceil(remaining / interval), never below 1.
func spanRows(remaining, interval time.Duration) int {
	if remaining <= 0 {
		return 1
	}
	rows := int((remaining + interval - 1) / interval)
	if rows < 1 {
		return 1
	}
	return rows
}
