package route

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"gridcal/src-server/model"
	"gridcal/src-server/render"
	"gridcal/src-server/utils"
)

// View wires the HTML fragment endpoints:
//
//	GET /view/week?start=...&interval=...&startTime=...&endTime=...&color=...&locale=...&calendar=...
//	GET /view/month?start=...&color=...&locale=...&calendar=...
//
// Requests with no query params are served from the scheduler's pre-rendered
// cache when it's fresh enough; everything else renders on the spot.
func View(muxer *http.ServeMux, as *utils.AppState) {
	muxer.HandleFunc("GET /view/week", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")

		if len(r.URL.Query()) == 0 {
			if cached, ok := as.GetCachedView("week", 2*as.Config.GetPrerenderInterval()); ok {
				w.WriteHeader(http.StatusOK)
				w.Write([]byte(cached))
				return
			}
		}

		opts, calendarID, err := optionsFromQuery(as, r)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(err.Error()))
			return
		}

		// one storage query for the whole period; slot-level overlap
		// checks run against the in-memory set
		weekStart := render.SanitizeWeekStart(opts.StartDate.In(opts.Location), opts.StartingDay)
		set, err := loadEventSet(as, r, calendarID, weekStart, weekStart.AddDate(0, 0, 7))
		if err != nil {
			slog.Error("can't load events for week view", "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte("Can't get events"))
			return
		}

		startTimer := time.Now()
		fragment, err := render.Week(opts, set)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(err.Error()))
			return
		}
		as.MetricChans.RenderWeek <- float64(time.Since(startTimer).Microseconds())

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(fragment))
	})

	muxer.HandleFunc("GET /view/month", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")

		if len(r.URL.Query()) == 0 {
			if cached, ok := as.GetCachedView("month", 2*as.Config.GetPrerenderInterval()); ok {
				w.WriteHeader(http.StatusOK)
				w.Write([]byte(cached))
				return
			}
		}

		opts, calendarID, err := optionsFromQuery(as, r)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(err.Error()))
			return
		}

		// load the padded month range (the grid shows neighbor-month days)
		anchor := opts.StartDate.In(opts.Location)
		firstOfMonth := time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, opts.Location)
		rangeStart := render.SanitizeWeekStart(firstOfMonth, opts.StartingDay)
		rangeEnd := firstOfMonth.AddDate(0, 1, 7)
		set, err := loadEventSet(as, r, calendarID, rangeStart, rangeEnd)
		if err != nil {
			slog.Error("can't load events for month view", "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte("Can't get events"))
			return
		}

		startTimer := time.Now()
		fragment, err := render.Month(opts, set)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(err.Error()))
			return
		}
		as.MetricChans.RenderMonth <- float64(time.Since(startTimer).Microseconds())

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(fragment))
	})
}

// DefaultOptions assembles render options from the config; routes and the
// scheduler both start from this and layer query params on top.
func DefaultOptions(as *utils.AppState) render.Options {
	return render.Options{
		TimeInterval:   as.Config.GetTimeInterval(),
		StartTime:      as.Config.GetStartTime(),
		EndTime:        as.Config.GetEndTime(),
		Locale:         as.Config.GetLocale(),
		TableClasses:   as.Config.GetTableClasses(),
		StartingDay:    as.Config.GetStartingDay(),
		HiddenWeekdays: as.Config.GetHiddenWeekdays(),
		Location:       as.Config.GetLocation(),
	}
}

func optionsFromQuery(as *utils.AppState, r *http.Request) (render.Options, string, error) {
	opts := DefaultOptions(as)
	q := r.URL.Query()

	if startStr := q.Get("start"); startStr != "" {
		startDate, err := parseStartParam(as, startStr)
		if err != nil {
			return opts, "", err
		}
		opts.StartDate = startDate
	}
	if intervalStr := q.Get("interval"); intervalStr != "" {
		interval, err := strconv.Atoi(intervalStr)
		if err != nil || interval <= 0 {
			return opts, "", render.ErrInvalidInterval
		}
		opts.TimeInterval = interval
	}
	if startTime := q.Get("startTime"); startTime != "" {
		opts.StartTime = startTime
	}
	if endTime := q.Get("endTime"); endTime != "" {
		opts.EndTime = endTime
	}
	if color := q.Get("color"); color != "" {
		opts.Color = color
	}
	if locale := q.Get("locale"); locale != "" {
		opts.Locale = locale
	}

	// fail fast before any events are loaded or HTML assembled
	if err := opts.Normalize(); err != nil {
		return opts, "", err
	}

	calendarID := q.Get("calendar")
	if calendarID == "" {
		calendarID = model.DefaultCalendarID
	}
	return opts, calendarID, nil
}

// parseStartParam accepts RFC3339, a plain date, or natural language
// ("next monday", "in 2 weeks").
func parseStartParam(as *utils.AppState, s string) (time.Time, error) {
	loc := as.Config.GetLocation()
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.In(loc), nil
	}
	if t, err := time.ParseInLocation("2006-01-02", s, loc); err == nil {
		return t, nil
	}
	result, err := as.When.Parse(s, time.Now().In(loc))
	if err == nil && result != nil {
		return result.Time, nil
	}
	return time.Time{}, errors.New("can't parse start date: " + s)
}

func loadEventSet(as *utils.AppState, r *http.Request, calendarID string, start, end time.Time) (*render.EventSet, error) {
	startTimer := time.Now()
	eventModels, err := model.EventsOverlapping(r.Context(), as.BunDB, calendarID, start, end)
	if err != nil {
		return nil, err
	}
	as.MetricChans.DatabaseRead <- float64(time.Since(startTimer).Microseconds())

	renderEvents := make([]*render.Event, 0, len(eventModels))
	for i := range eventModels {
		renderEvents = append(renderEvents, eventModels[i].ToRenderEvent(as.Config.GetLocation()))
	}
	return render.NewEventSet(renderEvents), nil
}
