package render_test

import (
	"testing"
	"time"

	"gridcal/src-server/render"
)

func TestLocaleLabels(t *testing.T) {
	cases := []struct {
		locale  string
		weekday string
		month   string
	}{
		{"en", "Wednesday", "August"},
		{"de", "Mittwoch", "August"},
		{"fr", "Mercredi", "Août"},
		{"es", "Miércoles", "Agosto"},
		{"ko", "수요일", "8월"},
		// regional variants resolve to their base language
		{"fr-CA", "Mercredi", "Août"},
		{"de-AT", "Mittwoch", "August"},
		// unknown locales fall back to English
		{"tlh", "Wednesday", "August"},
		{"", "Wednesday", "August"},
	}
	for _, c := range cases {
		locale := render.NewLocale(c.locale)
		if got := locale.WeekdayName(time.Wednesday); got != c.weekday {
			t.Errorf("%q weekday: want %s, got %s", c.locale, c.weekday, got)
		}
		if got := locale.MonthName(time.August); got != c.month {
			t.Errorf("%q month: want %s, got %s", c.locale, c.month, got)
		}
	}
}
