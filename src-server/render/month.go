package render

import (
	"fmt"
	"html"
	"strings"
	"time"
)

// Month renders the month containing opts.StartDate as a week-per-row table:
//
//	<div class="monthly-calendar-container"><table>...</table></div>
//
// Day cells list the summaries of every event touching that date. Leading and
// trailing days that belong to the neighboring months are still rendered (the
// table stays rectangular) but carry the other-month class.
func Month(opts Options, set *EventSet) (string, error) {
	if err := opts.Normalize(); err != nil {
		return "", err
	}

	anchor := opts.StartDate.In(opts.Location)
	firstOfMonth := time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, opts.Location)
	firstCell := SanitizeWeekStart(firstOfMonth, opts.StartingDay)
	now := opts.Now().In(opts.Location)
	locale := NewLocale(opts.Locale)

	var b strings.Builder
	b.WriteString(`<div class="` + containerClass("monthly-calendar-container", opts.Color) + `">`)
	b.WriteString("<table")
	if opts.TableClasses != "" {
		b.WriteString(` class="` + html.EscapeString(opts.TableClasses) + `"`)
	}
	b.WriteString(">")

	b.WriteString("<thead><tr>")
	for i := 0; i < 7; i++ {
		day := firstCell.AddDate(0, 0, i)
		if opts.dayHidden(day) {
			continue
		}
		b.WriteString("<th>" + html.EscapeString(locale.WeekdayName(day.Weekday())) + "</th>")
	}
	b.WriteString("</tr></thead>")

	b.WriteString("<tbody>")
	for weekStart := firstCell; weekStart.Month() == anchor.Month() || weekStart.Before(firstOfMonth); weekStart = weekStart.AddDate(0, 0, 7) {
		b.WriteString("<tr>")
		for i := 0; i < 7; i++ {
			day := weekStart.AddDate(0, 0, i)
			if opts.dayHidden(day) {
				continue
			}
			writeMonthCell(&b, day, anchor, now, set)
		}
		b.WriteString("</tr>")
	}
	b.WriteString("</tbody></table></div>")

	return b.String(), nil
}

func writeMonthCell(b *strings.Builder, day, anchor, now time.Time, set *EventSet) {
	var classes []string
	if day.Month() != anchor.Month() {
		classes = append(classes, "other-month")
	}
	if sameDate(day, now) {
		classes = append(classes, "today")
	}

	b.WriteString("<td")
	if len(classes) > 0 {
		b.WriteString(` class="` + strings.Join(classes, " ") + `"`)
	}
	b.WriteString(">")
	fmt.Fprintf(b, `<span class="day-number">%d</span>`, day.Day())

	events := set.OnDate(day)
	if len(events) > 0 {
		b.WriteString("<ul>")
		for _, event := range events {
			b.WriteString("<li")
			if event.Classes != "" {
				b.WriteString(` class="` + html.EscapeString(event.Classes) + `"`)
			}
			b.WriteString(">" + html.EscapeString(event.Summary) + "</li>")
		}
		b.WriteString("</ul>")
	}
	b.WriteString("</td>")
}
