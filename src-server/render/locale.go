package render

import (
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Day and month labels for the supported locales. Names are stored the way
// the language writes them mid-sentence and title-cased per language on the
// way out, so header labels come out capitalized everywhere.

var supportedLocales = []language.Tag{
	language.English, // first entry is the fallback
	language.German,
	language.French,
	language.Spanish,
	language.Korean,
}

var localeMatcher = language.NewMatcher(supportedLocales)

type localeLabels struct {
	weekdays [7]string // indexed by time.Weekday (Sunday = 0)
	months   [12]string
}

var localeTable = map[language.Tag]localeLabels{
	language.English: {
		weekdays: [7]string{"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday"},
		months:   [12]string{"january", "february", "march", "april", "may", "june", "july", "august", "september", "october", "november", "december"},
	},
	language.German: {
		weekdays: [7]string{"sonntag", "montag", "dienstag", "mittwoch", "donnerstag", "freitag", "samstag"},
		months:   [12]string{"januar", "februar", "märz", "april", "mai", "juni", "juli", "august", "september", "oktober", "november", "dezember"},
	},
	language.French: {
		weekdays: [7]string{"dimanche", "lundi", "mardi", "mercredi", "jeudi", "vendredi", "samedi"},
		months:   [12]string{"janvier", "février", "mars", "avril", "mai", "juin", "juillet", "août", "septembre", "octobre", "novembre", "décembre"},
	},
	language.Spanish: {
		weekdays: [7]string{"domingo", "lunes", "martes", "miércoles", "jueves", "viernes", "sábado"},
		months:   [12]string{"enero", "febrero", "marzo", "abril", "mayo", "junio", "julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre"},
	},
	language.Korean: {
		weekdays: [7]string{"일요일", "월요일", "화요일", "수요일", "목요일", "금요일", "토요일"},
		months:   [12]string{"1월", "2월", "3월", "4월", "5월", "6월", "7월", "8월", "9월", "10월", "11월", "12월"},
	},
}

// Locale resolves a BCP 47 locale string ("de", "fr-CA", ...) against the
// supported set, falling back to English for anything unknown.
type Locale struct {
	tag    language.Tag
	titler cases.Caser
	labels localeLabels
}

func NewLocale(locale string) Locale {
	tag, _ := language.MatchStrings(localeMatcher, locale)
	// the matcher can return an extended variant of a supported tag;
	// walk back up to the base entry that keys the label table
	base, _ := tag.Base()
	resolved := language.English
	for _, candidate := range supportedLocales {
		if candidateBase, _ := candidate.Base(); candidateBase == base {
			resolved = candidate
			break
		}
	}
	return Locale{
		tag:    resolved,
		titler: cases.Title(resolved),
		labels: localeTable[resolved],
	}
}

func (l Locale) WeekdayName(d time.Weekday) string {
	return l.titler.String(l.labels.weekdays[int(d)])
}

func (l Locale) MonthName(m time.Month) string {
	return l.titler.String(l.labels.months[int(m)-1])
}
