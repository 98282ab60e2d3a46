package route

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"gridcal/src-server/model"
	"gridcal/src-server/utils"
)

func Calendar(muxer *http.ServeMux, as *utils.AppState) {
	type GetEventsReqBody struct {
		CalendarID       string `json:"calendarId"`
		StartDateUnixUTC int64  `json:"startDateUnixUTC"`
		EndDateUnixUTC   int64  `json:"endDateUnixUTC"`
	}

	type OneEventRespBody struct {
		ID               string `json:"id"`
		Title            string `json:"title"`
		Description      string `json:"description"`
		Location         string `json:"location"`
		StartDateUnixUTC int64  `json:"startDateUnixUTC"`
		EndDateUnixUTC   int64  `json:"endDateUnixUTC"`
		IsWholeDay       bool   `json:"isWholeDay"`
		Mask             bool   `json:"mask"`
		Classes          string `json:"classes"`
	}

	// get all events overlapping a date range
	muxer.HandleFunc("POST /calendar/get-events", func(w http.ResponseWriter, r *http.Request) {
		var reqBody GetEventsReqBody
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewDecoder(r.Body).Decode(&reqBody); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte("Invalid request body"))
			return
		}
		if reqBody.StartDateUnixUTC == 0 || reqBody.EndDateUnixUTC == 0 {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte("Please provide a start date and end date"))
			return
		}
		if reqBody.CalendarID == "" {
			reqBody.CalendarID = model.DefaultCalendarID
		}

		startTimer := time.Now()
		eventModels, err := model.EventsOverlapping(r.Context(), as.BunDB,
			reqBody.CalendarID,
			time.Unix(reqBody.StartDateUnixUTC, 0).UTC(),
			time.Unix(reqBody.EndDateUnixUTC, 0).UTC())
		if err != nil {
			slog.Error("can't get events", "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte("Can't get events"))
			return
		}
		as.MetricChans.DatabaseRead <- float64(time.Since(startTimer).Microseconds())

		respBody := make([]OneEventRespBody, 0)
		for _, event := range eventModels {
			respBody = append(respBody, OneEventRespBody{
				ID:               event.ID,
				Title:            event.Summary,
				Description:      event.Description,
				Location:         event.Location,
				StartDateUnixUTC: event.StartDateUnixUTC,
				EndDateUnixUTC:   event.EndDateUnixUTC,
				IsWholeDay:       event.IsWholeDay,
				Mask:             event.Mask,
				Classes:          event.Classes,
			})
		}
		respBodyJson, err := json.Marshal(respBody)
		if err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte("Can't marshal response body"))
			return
		}

		w.WriteHeader(http.StatusOK)
		w.Write(respBodyJson)
	})

	type CreateEventReqBody struct {
		CalendarID       string `json:"calendarId"`
		Title            string `json:"title"`
		Description      string `json:"description"`
		Location         string `json:"location"`
		StartDateUnixUTC int64  `json:"startDateUnixUTC"`
		EndDateUnixUTC   int64  `json:"endDateUnixUTC"`
		Mask             bool   `json:"mask"`
		Classes          string `json:"classes"`
	}

	type ModifyEventReqBody struct {
		ID string `json:"id"`
		CreateEventReqBody
	}

	// create a new event, the success response is the event ID
	muxer.HandleFunc("POST /calendar/create-event", APIKeyMiddleware(as,
		func(w http.ResponseWriter, r *http.Request) {
			var reqBody CreateEventReqBody
			w.Header().Set("Content-Type", "application/json")
			if err := json.NewDecoder(r.Body).Decode(&reqBody); err != nil {
				w.WriteHeader(http.StatusBadRequest)
				w.Write([]byte("Invalid request body"))
				return
			}
			if reqBody.CalendarID == "" {
				reqBody.CalendarID = model.DefaultCalendarID
			}

			// ensure calendar exists
			exists, err := as.BunDB.
				NewSelect().
				Model((*model.Calendar)(nil)).
				Where("id = ?", reqBody.CalendarID).
				Exists(r.Context())
			switch {
			case err != nil:
				w.WriteHeader(http.StatusInternalServerError)
				w.Write([]byte("Can't check if calendar exists"))
				return
			case !exists:
				if _, err := as.BunDB.NewInsert().
					Model(&model.Calendar{
						ID:   reqBody.CalendarID,
						Name: utils.CleanupSummary(reqBody.CalendarID),
					}).
					Exec(r.Context()); err != nil {
					w.WriteHeader(http.StatusInternalServerError)
					w.Write([]byte("Can't create calendar"))
					return
				}
			}

			newEvent := model.Event{
				ID:               uuid.NewString(),
				Summary:          utils.CleanupSummary(reqBody.Title),
				Description:      reqBody.Description,
				Location:         reqBody.Location,
				StartDateUnixUTC: reqBody.StartDateUnixUTC,
				EndDateUnixUTC:   reqBody.EndDateUnixUTC,
				Mask:             reqBody.Mask,
				Classes:          reqBody.Classes,
				CalendarID:       reqBody.CalendarID,
			}
			startTimer := time.Now()
			if err := newEvent.Upsert(r.Context(), as.BunDB); err != nil {
				slog.Error("can't create event", "error", err)
				w.WriteHeader(http.StatusBadRequest)
				w.Write([]byte("Can't create event"))
				return
			}
			as.MetricChans.DatabaseWrite <- float64(time.Since(startTimer).Microseconds())

			w.WriteHeader(http.StatusOK)
			w.Write([]byte(newEvent.ID))
		}))

	// modify an existing event
	muxer.HandleFunc("POST /calendar/modify-event", APIKeyMiddleware(as,
		func(w http.ResponseWriter, r *http.Request) {
			var reqBody ModifyEventReqBody
			w.Header().Set("Content-Type", "application/json")
			if err := json.NewDecoder(r.Body).Decode(&reqBody); err != nil {
				w.WriteHeader(http.StatusBadRequest)
				w.Write([]byte("Invalid request body"))
				return
			}

			eventModel := new(model.Event)
			if err := as.BunDB.
				NewSelect().
				Model(eventModel).
				Where("id = ?", reqBody.ID).
				Scan(r.Context()); err != nil {
				w.WriteHeader(http.StatusNotFound)
				w.Write([]byte("Event not found"))
				return
			}

			eventModel.Summary = utils.CleanupSummary(reqBody.Title)
			eventModel.Description = reqBody.Description
			eventModel.Location = reqBody.Location
			eventModel.StartDateUnixUTC = reqBody.StartDateUnixUTC
			eventModel.EndDateUnixUTC = reqBody.EndDateUnixUTC
			eventModel.Mask = reqBody.Mask
			eventModel.Classes = reqBody.Classes

			startTimer := time.Now()
			if err := eventModel.Upsert(r.Context(), as.BunDB); err != nil {
				slog.Error("can't modify event", "error", err)
				w.WriteHeader(http.StatusBadRequest)
				w.Write([]byte("Can't modify event"))
				return
			}
			as.MetricChans.DatabaseWrite <- float64(time.Since(startTimer).Microseconds())

			w.WriteHeader(http.StatusOK)
			w.Write([]byte(eventModel.ID))
		}))

	type DeleteEventReqBody struct {
		ID string `json:"id"`
	}

	// delete an event by ID
	muxer.HandleFunc("POST /calendar/delete-event", APIKeyMiddleware(as,
		func(w http.ResponseWriter, r *http.Request) {
			var reqBody DeleteEventReqBody
			w.Header().Set("Content-Type", "application/json")
			if err := json.NewDecoder(r.Body).Decode(&reqBody); err != nil || reqBody.ID == "" {
				w.WriteHeader(http.StatusBadRequest)
				w.Write([]byte("Invalid request body"))
				return
			}

			startTimer := time.Now()
			result, err := as.BunDB.
				NewDelete().
				Model((*model.Event)(nil)).
				Where("id = ?", reqBody.ID).
				Exec(r.Context())
			if err != nil {
				w.WriteHeader(http.StatusInternalServerError)
				w.Write([]byte("Can't delete event"))
				return
			}
			as.MetricChans.DatabaseWrite <- float64(time.Since(startTimer).Microseconds())

			if affected, err := result.RowsAffected(); err == nil && affected == 0 {
				w.WriteHeader(http.StatusNotFound)
				w.Write([]byte("Event not found"))
				return
			}

			w.WriteHeader(http.StatusOK)
			w.Write([]byte(reqBody.ID))
		}))
}
