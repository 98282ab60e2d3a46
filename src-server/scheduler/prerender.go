package scheduler

import (
	"context"
	"log/slog"
	"time"

	"gridcal/src-server/model"
	"gridcal/src-server/render"
	"gridcal/src-server/utils"
)

// PreRender keeps the default week and month views warm: every
// PRERENDER_INTERVAL it renders both with config defaults and stores the
// fragments in the AppState view cache, so parameterless view requests skip
// the database and the layout pass entirely.
func PreRender(as *utils.AppState) {
	gracefulShutdownCh := as.CreateGracefulShutdownChan()
	ticker := time.NewTicker(as.Config.GetPrerenderInterval())
	defer ticker.Stop()

	renderOnce(as)
	for {
		select {
		case <-*gracefulShutdownCh:
			return
		case <-ticker.C:
			renderOnce(as)
		}
	}
}

func renderOnce(as *utils.AppState) {
	opts := render.Options{
		TimeInterval:   as.Config.GetTimeInterval(),
		StartTime:      as.Config.GetStartTime(),
		EndTime:        as.Config.GetEndTime(),
		Locale:         as.Config.GetLocale(),
		TableClasses:   as.Config.GetTableClasses(),
		StartingDay:    as.Config.GetStartingDay(),
		HiddenWeekdays: as.Config.GetHiddenWeekdays(),
		Location:       as.Config.GetLocation(),
	}
	if err := opts.Normalize(); err != nil {
		slog.Error("prerender: invalid default options", "error", err)
		return
	}

	loc := as.Config.GetLocation()
	weekStart := render.SanitizeWeekStart(opts.StartDate.In(loc), opts.StartingDay)
	firstOfMonth := time.Date(opts.StartDate.Year(), opts.StartDate.Month(), 1, 0, 0, 0, 0, loc)
	rangeStart := render.SanitizeWeekStart(firstOfMonth, opts.StartingDay)
	if weekStart.Before(rangeStart) {
		rangeStart = weekStart
	}
	rangeEnd := firstOfMonth.AddDate(0, 1, 7)
	if weekEnd := weekStart.AddDate(0, 0, 7); weekEnd.After(rangeEnd) {
		rangeEnd = weekEnd
	}

	eventModels, err := model.EventsOverlapping(context.Background(), as.BunDB,
		model.DefaultCalendarID, rangeStart, rangeEnd)
	if err != nil {
		slog.Error("prerender: can't load events", "error", err)
		return
	}
	renderEvents := make([]*render.Event, 0, len(eventModels))
	for i := range eventModels {
		renderEvents = append(renderEvents, eventModels[i].ToRenderEvent(loc))
	}
	set := render.NewEventSet(renderEvents)

	startTimer := time.Now()
	week, err := render.Week(opts, set)
	if err != nil {
		slog.Error("prerender: week render failed", "error", err)
		return
	}
	as.MetricChans.RenderWeek <- float64(time.Since(startTimer).Microseconds())
	as.SetCachedView("week", week)

	startTimer = time.Now()
	month, err := render.Month(opts, set)
	if err != nil {
		slog.Error("prerender: month render failed", "error", err)
		return
	}
	as.MetricChans.RenderMonth <- float64(time.Since(startTimer).Microseconds())
	as.SetCachedView("month", month)

	slog.Debug("prerender: views refreshed", "events", len(renderEvents))
}
