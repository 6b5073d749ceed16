package bahncopilot

import "github.com/bahn-copilot/bahn-copilot/hafas"

// StationRecord is the minimal station projection returned by the station
// search endpoint. ID is null when the provider supplied no identifier.
type StationRecord struct {
	ID   *string `json:"id"`
	Name string  `json:"name"`
	Type string  `json:"type"`
}

// ResolveStations keeps entities whose kind is "stop" or "station" and
// which carry an identifier under any alias, and projects them to
// StationRecord. Provider order is preserved; empty input yields empty
// output.
func ResolveStations(locs []hafas.Location) []StationRecord {
	out := make([]StationRecord, 0, len(locs))
	for _, l := range locs {
		if l.Type != "stop" && l.Type != "station" {
			continue
		}
		if l.EvaID() == "" {
			continue
		}
		out = append(out, toStationRecord(l))
	}
	return out
}

func toStationRecord(l hafas.Location) StationRecord {
	rec := StationRecord{Name: l.Name, Type: l.Type}
	if rec.Name == "" {
		rec.Name = l.Label
	}
	if rec.Type == "" {
		rec.Type = "station"
	}
	if eva := l.EvaID(); eva != "" {
		rec.ID = &eva
	}
	return rec
}
