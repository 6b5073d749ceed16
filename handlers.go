package bahncopilot

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"
)

// App wires the HTTP handlers to the gateway.
type App struct {
	gateway *Gateway
}

func NewApp(g *Gateway) *App {
	return &App{gateway: g}
}

func (a *App) handleLocations(w http.ResponseWriter, r *http.Request) {
	stations, cd, err := a.gateway.SearchStations(r.Context(), r.URL.Query().Get("query"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, cd, stations)
}

func (a *App) handleDepartures(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	board, cd, err := a.gateway.Departures(r.Context(), q.Get("evaId"), q.Get("when"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, cd, board)
}

func (a *App) handleArrivals(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	board, cd, err := a.gateway.Arrivals(r.Context(), q.Get("evaId"), q.Get("when"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, cd, board)
}

func (a *App) handleJourneys(w http.ResponseWriter, r *http.Request) {
	res, cd, err := a.gateway.Journeys(r.Context(), journeyQueryFromRequest(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, cd, res)
}

// handleItinerary runs the journey search and responds with the rendered
// plain-text itinerary block instead of the raw payload.
func (a *App) handleItinerary(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	jq := journeyQueryFromRequest(r)
	res, cd, err := a.gateway.Journeys(r.Context(), jq)
	if err != nil {
		writeError(w, err)
		return
	}

	opts := ReportOptions{
		FromName:        orDefault(q.Get("fromName"), jq.FromID),
		ToName:          orDefault(q.Get("toName"), jq.ToID),
		Departure:       timestampOrNil(jq.Departure),
		ReturnDeparture: returnTimestamp(q.Get("returnDate"), q.Get("returnTime")),
		ReturnFrom:      q.Get("returnFrom"),
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Cache-Control", cd.String())
	_, _ = io.WriteString(w, RenderItinerary(res.Journeys, opts)+"\n")
}

func journeyQueryFromRequest(r *http.Request) JourneyQuery {
	q := r.URL.Query()
	return JourneyQuery{
		FromID:    q.Get("from"),
		ToID:      q.Get("to"),
		Departure: q.Get("departure"),
		Transfers: q.Get("transfers"),
	}
}

// timestampOrNil parses an optional RFC 3339 parameter for display; an
// absent or unparseable value renders as "date missing".
func timestampOrNil(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil
	}
	return &t
}

// returnTimestamp composes the separate return-trip date and time
// parameters. The return header is only rendered when both are present and
// parseable.
func returnTimestamp(date, clock string) *time.Time {
	if date == "" || clock == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02T15:04", date+"T"+clock)
	if err != nil {
		return nil
	}
	return &t
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

func writeJSON(w http.ResponseWriter, cd CacheDirective, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", cd.String())
	_ = json.NewEncoder(w).Encode(body)
}

// writeError maps validation failures to 400 and everything else to 500.
// Cache headers are never set on errors.
func writeError(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "application/json")
	var ve *ValidationError
	if errors.As(err, &ve) {
		w.WriteHeader(http.StatusBadRequest)
	} else {
		w.WriteHeader(http.StatusInternalServerError)
	}
	_, _ = w.Write(errorPayload(err.Error()))
}

// withCORS allows the browser UI to call the API from another origin.
func withCORS(h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		h(w, r)
	}
}
