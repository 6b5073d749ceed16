package hafas

import (
	"bytes"
	"fmt"
	"time"
)

// Reachability is the provider's tri-state judgement on whether the
// connection to the following leg is achievable. Absence of the field in
// the payload is a distinct state, not "reachable".
type Reachability int

const (
	ReachabilityUnknown Reachability = iota
	ReachabilityReachable
	ReachabilityUnreachable
)

func (r Reachability) String() string {
	switch r {
	case ReachabilityReachable:
		return "reachable"
	case ReachabilityUnreachable:
		return "unreachable"
	default:
		return "unknown"
	}
}

// UnmarshalJSON maps the provider's nullable boolean onto the tri-state.
func (r *Reachability) UnmarshalJSON(data []byte) error {
	switch {
	case bytes.Equal(data, []byte("null")):
		*r = ReachabilityUnknown
	case bytes.Equal(data, []byte("true")):
		*r = ReachabilityReachable
	case bytes.Equal(data, []byte("false")):
		*r = ReachabilityUnreachable
	default:
		return fmt.Errorf("invalid reachable value: %s", data)
	}
	return nil
}

// MarshalJSON restores the provider's wire form so board and journey
// payloads pass through unchanged.
func (r Reachability) MarshalJSON() ([]byte, error) {
	switch r {
	case ReachabilityReachable:
		return []byte("true"), nil
	case ReachabilityUnreachable:
		return []byte("false"), nil
	default:
		return []byte("null"), nil
	}
}

// Location is a raw provider location entity. The id may arrive under any
// of three aliases depending on profile and endpoint.
type Location struct {
	Type      string `json:"type,omitempty"`
	ID        string `json:"id,omitempty"`
	EvaNumber string `json:"evaNumber,omitempty"`
	Eva       string `json:"eva,omitempty"`
	Name      string `json:"name,omitempty"`
	Label     string `json:"label,omitempty"`
}

// EvaID returns the canonical station identifier, checking the provider's
// id aliases in precedence order, or "" when none is set.
func (l Location) EvaID() string {
	if l.ID != "" {
		return l.ID
	}
	if l.EvaNumber != "" {
		return l.EvaNumber
	}
	return l.Eva
}

// Line identifies the vehicle/line serving a leg or board entry.
type Line struct {
	Type    string `json:"type,omitempty"`
	ID      string `json:"id,omitempty"`
	Name    string `json:"name,omitempty"`
	Mode    string `json:"mode,omitempty"`
	Product string `json:"product,omitempty"`
}

// Stopover is an intermediate stop on a leg, present when the journey
// search asked for stopovers.
type Stopover struct {
	Stop              *Location  `json:"stop,omitempty"`
	Arrival           *time.Time `json:"arrival,omitempty"`
	PlannedArrival    *time.Time `json:"plannedArrival,omitempty"`
	ArrivalDelay      *int       `json:"arrivalDelay,omitempty"`
	ArrivalPlatform   string     `json:"arrivalPlatform,omitempty"`
	Departure         *time.Time `json:"departure,omitempty"`
	PlannedDeparture  *time.Time `json:"plannedDeparture,omitempty"`
	DepartureDelay    *int       `json:"departureDelay,omitempty"`
	DeparturePlatform string     `json:"departurePlatform,omitempty"`
	Cancelled         bool       `json:"cancelled,omitempty"`
}

// Leg is one uninterrupted ride segment of a journey. Times and platforms
// are optional; the provider omits realtime data it does not have. Journey
// payloads are served back to API callers verbatim, so the planned/realtime
// pairs, delays and stopovers all survive the round trip.
type Leg struct {
	TripID                   string       `json:"tripId,omitempty"`
	Origin                   *Location    `json:"origin,omitempty"`
	Destination              *Location    `json:"destination,omitempty"`
	Departure                *time.Time   `json:"departure,omitempty"`
	PlannedDeparture         *time.Time   `json:"plannedDeparture,omitempty"`
	DepartureDelay           *int         `json:"departureDelay,omitempty"`
	Arrival                  *time.Time   `json:"arrival,omitempty"`
	PlannedArrival           *time.Time   `json:"plannedArrival,omitempty"`
	ArrivalDelay             *int         `json:"arrivalDelay,omitempty"`
	Line                     *Line        `json:"line,omitempty"`
	Mode                     string       `json:"mode,omitempty"`
	Direction                string       `json:"direction,omitempty"`
	DeparturePlatform        string       `json:"departurePlatform,omitempty"`
	PlannedDeparturePlatform string       `json:"plannedDeparturePlatform,omitempty"`
	ArrivalPlatform          string       `json:"arrivalPlatform,omitempty"`
	PlannedArrivalPlatform   string       `json:"plannedArrivalPlatform,omitempty"`
	Stopovers                []Stopover   `json:"stopovers,omitempty"`
	Cancelled                bool         `json:"cancelled,omitempty"`
	Reachable                Reachability `json:"reachable,omitempty"`
}

// Journey is an ordered, non-empty sequence of legs. Leg contiguity is the
// provider's responsibility and is not re-verified here.
type Journey struct {
	Type     string `json:"type,omitempty"`
	Legs     []Leg  `json:"legs"`
	Duration string `json:"duration,omitempty"`
}

// JourneysResponse is the journey search payload.
type JourneysResponse struct {
	Journeys              []Journey `json:"journeys"`
	RealtimeDataUpdatedAt int64     `json:"realtimeDataUpdatedAt,omitempty"`
}

// BoardEntry is one departure or arrival on a station board.
type BoardEntry struct {
	TripID          string     `json:"tripId,omitempty"`
	Stop            *Location  `json:"stop,omitempty"`
	When            *time.Time `json:"when,omitempty"`
	PlannedWhen     *time.Time `json:"plannedWhen,omitempty"`
	Delay           *int       `json:"delay,omitempty"`
	Platform        string     `json:"platform,omitempty"`
	PlannedPlatform string     `json:"plannedPlatform,omitempty"`
	Direction       string     `json:"direction,omitempty"`
	Provenance      string     `json:"provenance,omitempty"`
	Line            *Line      `json:"line,omitempty"`
	Cancelled       bool       `json:"cancelled,omitempty"`
}

// Board is a departure or arrival board payload.
type Board struct {
	Departures            []BoardEntry `json:"departures,omitempty"`
	Arrivals              []BoardEntry `json:"arrivals,omitempty"`
	RealtimeDataUpdatedAt int64        `json:"realtimeDataUpdatedAt,omitempty"`
}
