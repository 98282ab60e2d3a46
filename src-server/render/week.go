package render

import (
	"fmt"
	"html"
	"strings"
	"time"
)

// Week renders one 7-day period as an HTML fragment:
//
//	<div class="weekly-calendar-container"><table>...</table></div>
//
// with one header cell per visible day and one body row per time slot. The
// whole render is a single synchronous call; the only mutable state is the
// shown-events set, which is local to the call so repeated renders can never
// leak summaries into each other.
func Week(opts Options, set *EventSet) (string, error) {
	if err := opts.Normalize(); err != nil {
		return "", err
	}
	slots, err := EnumerateSlots(opts.StartTime, opts.EndTime, opts.TimeInterval)
	if err != nil {
		return "", err
	}

	interval := time.Duration(opts.TimeInterval) * time.Minute
	grid := BuildWeekGrid(opts.weekDays(), slots, interval, set.Overlapping)
	rangeEndMinutes := rangeEnd(opts, grid.Slots)

	now := opts.Now().In(opts.Location)
	shown := make(map[*Event]struct{})
	locale := NewLocale(opts.Locale)

	var b strings.Builder
	b.WriteString(`<div class="` + containerClass("weekly-calendar-container", opts.Color) + `">`)
	b.WriteString("<table")
	if opts.TableClasses != "" {
		b.WriteString(` class="` + html.EscapeString(opts.TableClasses) + `"`)
	}
	b.WriteString(">")

	writeWeekHeader(&b, opts, grid.Days, locale)

	b.WriteString("<tbody>")
	for row, slot := range grid.Slots {
		b.WriteString("<tr>")
		b.WriteString(`<td class="time-label">`)
		b.WriteString(slot.Label + " - " + rowEndLabel(grid.Slots, row, opts.TimeInterval, rangeEndMinutes))
		b.WriteString("</td>")

		for dayIndex, day := range grid.Days {
			if opts.dayHidden(day) {
				continue
			}
			cell := grid.Cells[dayIndex][row]
			switch cell.Kind {
			case CellOccupied:
				// covered by an earlier rowspan, no <td> at all
			case CellEmpty:
				b.WriteString(`<td class="` + cellClass(nil, day, now, slot, opts.TimeInterval) + `"></td>`)
			case CellEventStart:
				writeEventCell(&b, cell, day, now, slot, opts.TimeInterval, shown)
			}
		}
		b.WriteString("</tr>")
	}
	b.WriteString("</tbody></table></div>")

	return b.String(), nil
}

func writeWeekHeader(b *strings.Builder, opts Options, days [7]time.Time, locale Locale) {
	b.WriteString("<thead><tr>")
	b.WriteString(`<th class="time-label"></th>`)
	for _, day := range days {
		if opts.dayHidden(day) {
			continue
		}
		b.WriteString("<th>")
		b.WriteString(html.EscapeString(fmt.Sprintf("%s %d %s",
			locale.WeekdayName(day.Weekday()), day.Day(), locale.MonthName(day.Month()))))
		b.WriteString("</th>")
	}
	b.WriteString("</tr></thead>")
}

// rangeEnd is the display end of the whole configured range in minutes from
// midnight, used to clamp the trailing partial slot's label. A wrapped
// all-day range keeps its computed end.
func rangeEnd(opts Options, slots []Slot) int {
	last := slots[len(slots)-1].Minutes + opts.TimeInterval
	startMinutes, err := parseClock(opts.StartTime)
	if err != nil {
		return last
	}
	endMinutes, err := parseClock(opts.EndTime)
	if err != nil || startMinutes == endMinutes {
		return last
	}
	if endMinutes < startMinutes {
		endMinutes += minutesPerDay
	}
	if endMinutes < last {
		return endMinutes
	}
	return last
}

// rowEndLabel is the display end of a slot row: the next slot's start, or the
// clamped range end for the trailing (possibly partial) slot.
func rowEndLabel(slots []Slot, row, interval, rangeEndMinutes int) string {
	if row+1 < len(slots) {
		return slots[row+1].Label
	}
	end := slots[row].Minutes + interval
	if rangeEndMinutes < end {
		end = rangeEndMinutes
	}
	return clockLabel(end)
}

// cellClass assembles the decoration classes for one cell. A nil cell means
// an empty placeholder.
func cellClass(cell *Cell, day, now time.Time, slot Slot, interval int) string {
	var classes []string
	if cell == nil {
		classes = append(classes, "empty")
	} else {
		classes = append(classes, "event")
		if cell.Rowspan > 1 {
			classes = append(classes, "multi-row-event")
		}
		if cell.Event.Mask {
			switch {
			case sameDate(day, cell.Event.Start):
				classes = append(classes, "mask-start")
				if cell.Event.Classes != "" {
					classes = append(classes, cell.Event.Classes)
				}
			case sameDate(day, cell.Event.End):
				classes = append(classes, "mask-end")
			default:
				classes = append(classes, "mask")
			}
		} else if cell.Event.Classes != "" {
			classes = append(classes, cell.Event.Classes)
		}
	}
	if sameDate(day, now) {
		classes = append(classes, "today")
		nowMinutes := now.Hour()*60 + now.Minute()
		if slot.Minutes <= nowMinutes && nowMinutes < slot.Minutes+interval {
			classes = append(classes, "now")
		}
	}
	return html.EscapeString(strings.Join(classes, " "))
}

func writeEventCell(b *strings.Builder, cell Cell, day, now time.Time, slot Slot, interval int, shown map[*Event]struct{}) {
	b.WriteString("<td")
	if cell.Rowspan > 1 {
		fmt.Fprintf(b, ` rowspan="%d"`, cell.Rowspan)
	}
	b.WriteString(` class="` + cellClass(&cell, day, now, slot, interval) + `">`)

	// the summary is written only the first time this exact event instance
	// shows up anywhere in the week; later cells stay blank
	if _, ok := shown[cell.Event]; !ok {
		shown[cell.Event] = struct{}{}
		b.WriteString(html.EscapeString(cell.Event.Summary))
	}
	b.WriteString("</td>")
}

func containerClass(base, color string) string {
	if color == "" {
		return base
	}
	return html.EscapeString(base + " " + color)
}
