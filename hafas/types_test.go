package hafas

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestReachability_TriState(t *testing.T) {
	tests := []struct {
		name     string
		payload  string
		expected Reachability
	}{
		{"absent field", `{}`, ReachabilityUnknown},
		{"explicit null", `{"reachable":null}`, ReachabilityUnknown},
		{"true", `{"reachable":true}`, ReachabilityReachable},
		{"false", `{"reachable":false}`, ReachabilityUnreachable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var leg Leg
			if err := json.Unmarshal([]byte(tt.payload), &leg); err != nil {
				t.Fatal(err)
			}
			if leg.Reachable != tt.expected {
				t.Errorf("reachable = %v, want %v", leg.Reachable, tt.expected)
			}
		})
	}
}

func TestReachability_Passthrough(t *testing.T) {
	// unknown must stay off the wire; false must survive re-encoding
	b, err := json.Marshal(Leg{Mode: "train"})
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(b), "reachable") {
		t.Errorf("unknown reachability serialized: %s", b)
	}

	b, err = json.Marshal(Leg{Mode: "train", Reachable: ReachabilityUnreachable})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(b), `"reachable":false`) {
		t.Errorf("explicit false lost: %s", b)
	}
}

func TestJourneys_StopoversSurviveRoundTrip(t *testing.T) {
	payload := `{"journeys":[{"type":"journey","legs":[{
		"tripId":"1|23456|0|80|22082025",
		"mode":"train",
		"plannedDeparture":"2025-08-22T07:55:00+02:00",
		"departureDelay":300,
		"stopovers":[
			{"stop":{"type":"stop","id":"8000147","name":"Hamburg-Harburg"},
			 "arrival":"2025-08-22T08:10:00+02:00","arrivalPlatform":"4"}
		]
	}]}]}`

	var res JourneysResponse
	if err := json.Unmarshal([]byte(payload), &res); err != nil {
		t.Fatal(err)
	}

	leg := res.Journeys[0].Legs[0]
	if len(leg.Stopovers) != 1 || leg.Stopovers[0].Stop.Name != "Hamburg-Harburg" {
		t.Fatalf("stopovers not decoded: %+v", leg.Stopovers)
	}
	if leg.DepartureDelay == nil || *leg.DepartureDelay != 300 {
		t.Errorf("departureDelay = %v, want 300", leg.DepartureDelay)
	}

	b, err := json.Marshal(res)
	if err != nil {
		t.Fatal(err)
	}
	for _, fragment := range []string{
		`"stopovers"`, `"Hamburg-Harburg"`, `"arrivalPlatform":"4"`,
		`"plannedDeparture"`, `"departureDelay":300`,
	} {
		if !strings.Contains(string(b), fragment) {
			t.Errorf("re-encoded payload lost %s:\n%s", fragment, b)
		}
	}
}

func TestLocation_EvaID(t *testing.T) {
	tests := []struct {
		name     string
		loc      Location
		expected string
	}{
		{"id", Location{ID: "1"}, "1"},
		{"evaNumber", Location{EvaNumber: "2"}, "2"},
		{"eva", Location{Eva: "3"}, "3"},
		{"precedence", Location{ID: "1", EvaNumber: "2", Eva: "3"}, "1"},
		{"none", Location{Name: "x"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.loc.EvaID(); got != tt.expected {
				t.Errorf("EvaID() = %q, want %q", got, tt.expected)
			}
		})
	}
}
