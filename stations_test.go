package bahncopilot

import (
	"testing"

	"github.com/bahn-copilot/bahn-copilot/hafas"
)

func TestResolveStations_FiltersByKind(t *testing.T) {
	in := []hafas.Location{
		{Type: "stop", ID: "8000152", Name: "Hannover Hbf"},
		{Type: "location", ID: "123", Name: "Some address"},
		{Type: "station", ID: "8000105", Name: "Frankfurt (Main) Hbf"},
		{Type: "region", ID: "999", Name: "Hessen"},
	}

	out := ResolveStations(in)
	if len(out) != 2 {
		t.Fatalf("expected 2 records, got %d", len(out))
	}
	if out[0].Name != "Hannover Hbf" || out[1].Name != "Frankfurt (Main) Hbf" {
		t.Errorf("provider order not preserved: %v", out)
	}
}

func TestResolveStations_IDAliases(t *testing.T) {
	tests := []struct {
		name       string
		in         hafas.Location
		expectedID string
	}{
		{"id field", hafas.Location{Type: "stop", ID: "8000152", Name: "A"}, "8000152"},
		{"evaNumber field", hafas.Location{Type: "stop", EvaNumber: "8000105", Name: "B"}, "8000105"},
		{"eva field", hafas.Location{Type: "station", Eva: "8002549", Name: "C"}, "8002549"},
		{"id wins over evaNumber", hafas.Location{Type: "stop", ID: "1", EvaNumber: "2", Name: "D"}, "1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := ResolveStations([]hafas.Location{tt.in})
			if len(out) != 1 {
				t.Fatalf("expected 1 record, got %d", len(out))
			}
			if out[0].ID == nil || *out[0].ID != tt.expectedID {
				t.Errorf("id = %v, want %q", out[0].ID, tt.expectedID)
			}
		})
	}
}

func TestResolveStations_DropsEntitiesWithoutID(t *testing.T) {
	in := []hafas.Location{
		{Type: "stop", Name: "No id at all"},
		{Type: "station", ID: "8000261", Name: "München Hbf"},
	}

	out := ResolveStations(in)
	if len(out) != 1 {
		t.Fatalf("expected 1 record, got %d", len(out))
	}
	if out[0].Name != "München Hbf" {
		t.Errorf("unexpected record: %+v", out[0])
	}
}

func TestResolveStations_NameFallsBackToLabel(t *testing.T) {
	out := ResolveStations([]hafas.Location{
		{Type: "stop", ID: "1", Label: "Labelled stop"},
		{Type: "stop", ID: "2"},
	})
	if len(out) != 2 {
		t.Fatalf("expected 2 records, got %d", len(out))
	}
	if out[0].Name != "Labelled stop" {
		t.Errorf("name = %q, want label fallback", out[0].Name)
	}
	if out[1].Name != "" {
		t.Errorf("name = %q, want empty default", out[1].Name)
	}
}

func TestResolveStations_Empty(t *testing.T) {
	if out := ResolveStations(nil); len(out) != 0 {
		t.Errorf("expected empty output, got %v", out)
	}
}
