package bahncopilot

import (
	"fmt"
	"strings"
	"time"

	"github.com/bahn-copilot/bahn-copilot/hafas"
)

const (
	unknownClock = "??"

	// maxJourneyBlocks caps the number of rendered candidate journeys.
	maxJourneyBlocks = 3

	// minTransferMinutes floors the rendered transfer time; a computed gap
	// shorter than this is not a realistic station change.
	minTransferMinutes = 5

	// defaultTransferMinutes is rendered when the gap to the next leg
	// cannot be computed.
	defaultTransferMinutes = 10

	criticalLabel    = "⚠️ Anschluss kritisch"
	onTimeLabel      = "pünktlich"
	missingDateLabel = "(Datum fehlt)"
	noJourneysLine   = "Keine Verbindungen gefunden."
	disclaimerLine   = "Hinweis: PoC mit HAFAS-Client. Daten & Verfügbarkeit ohne Gewähr."
	returnStubLine   = "- (Rückfahrtslogik analog – optional nachrüsten)"
)

// ReportOptions carries the request context the report needs beyond the
// journeys themselves. ReturnDeparture only adds a placeholder header;
// return-trip itineraries are not computed.
type ReportOptions struct {
	FromName        string
	ToName          string
	Departure       *time.Time
	ReturnDeparture *time.Time
	ReturnFrom      string
}

// RenderItinerary turns up to three candidate journeys into the
// human-readable mail block. Output depends only on its inputs; rendering
// the same data twice yields identical text.
func RenderItinerary(journeys []hafas.Journey, opts ReportOptions) string {
	dateLong := missingDateLabel
	if opts.Departure != nil {
		dateLong = germanDateLong(*opts.Departure)
	}
	lines := []string{
		fmt.Sprintf("Verbindungen %s → %s (%s)", opts.FromName, opts.ToName, dateLong),
		"",
	}

	shown := journeys
	if len(shown) > maxJourneyBlocks {
		shown = shown[:maxJourneyBlocks]
	}
	for i, j := range shown {
		lines = append(lines, summaryLine(i+1, j))
		for li := range j.Legs {
			leg := j.Legs[li]
			var next *hafas.Leg
			if li+1 < len(j.Legs) {
				next = &j.Legs[li+1]
			}
			lines = append(lines,
				legLine(leg),
				transferLine(leg, next),
				"   Prognose: "+prognosisLabel(leg.Reachable),
			)
		}
		lines = append(lines, "")
	}
	if len(shown) == 0 {
		lines = append(lines, noJourneysLine, "")
	}

	if opts.ReturnDeparture != nil {
		from := opts.ReturnFrom
		if from == "" {
			from = opts.ToName
		}
		lines = append(lines,
			fmt.Sprintf("Rückfahrt (ab %s, %s)", from, germanDateLong(*opts.ReturnDeparture)),
			returnStubLine,
		)
	}

	lines = append(lines, disclaimerLine)
	return strings.Join(lines, "\n")
}

func summaryLine(index int, j hafas.Journey) string {
	dep, arr := unknownClock, unknownClock
	transfers := 0
	if len(j.Legs) > 0 {
		dep = clockOrUnknown(j.Legs[0].Departure)
		arr = clockOrUnknown(j.Legs[len(j.Legs)-1].Arrival)
		transfers = len(j.Legs) - 1
	}
	return fmt.Sprintf("%d) %s–%s (%s) | %d Umstieg(e)", index, dep, arr, j.Duration, transfers)
}

func legLine(leg hafas.Leg) string {
	s := fmt.Sprintf("   %s %s (%s) → %s %s",
		locationName(leg.Origin), clockOrUnknown(leg.Departure),
		legLabel(leg),
		locationName(leg.Destination), clockOrUnknown(leg.Arrival))
	if leg.DeparturePlatform != "" {
		s += " Gl. " + leg.DeparturePlatform
	}
	return s
}

func transferLine(leg hafas.Leg, next *hafas.Leg) string {
	s := fmt.Sprintf("   [Umstieg ~%d min]", transferMinutes(leg, next))
	if plat := transferPlatform(leg); plat != "" {
		s += "  / Gleis " + plat
	}
	return s
}

// transferMinutes is the gap between this leg's arrival and the next leg's
// departure, floored at minTransferMinutes. Without a next leg or complete
// timestamps the original placeholder value is used.
func transferMinutes(leg hafas.Leg, next *hafas.Leg) int {
	if next == nil || leg.Arrival == nil || next.Departure == nil {
		return defaultTransferMinutes
	}
	m := int(next.Departure.Sub(*leg.Arrival) / time.Minute)
	if m < minTransferMinutes {
		return minTransferMinutes
	}
	return m
}

// transferPlatform prefers the arrival platform, falling back to the
// departure platform.
func transferPlatform(leg hafas.Leg) string {
	if leg.ArrivalPlatform != "" {
		return leg.ArrivalPlatform
	}
	return leg.DeparturePlatform
}

// prognosisLabel treats everything but an explicit "unreachable" as on
// time, unknown included. This mirrors the upstream behaviour and is kept
// deliberately, not corrected.
func prognosisLabel(r hafas.Reachability) string {
	if r == hafas.ReachabilityUnreachable {
		return criticalLabel
	}
	return onTimeLabel
}

func locationName(l *hafas.Location) string {
	if l == nil || l.Name == "" {
		return "?"
	}
	return l.Name
}

// legLabel falls back from the line name to the transport mode.
func legLabel(leg hafas.Leg) string {
	if leg.Line != nil && leg.Line.Name != "" {
		return leg.Line.Name
	}
	return leg.Mode
}
