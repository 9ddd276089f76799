package night

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBuildReportNoRoute(t *testing.T) {
	s := &Summary{Origin: "nowhere", Destination: "Gangnam", NoRoute: true}
	r := BuildReport(s)
	assert.Contains(t, r, "No transit route found from nowhere to Gangnam")
}

func TestBuildReport(t *testing.T) {
	now := time.Date(2026, 3, 6, 23, 0, 0, 0, kst)
	s := &Summary{
		Origin:      "Gangnam",
		Destination: "Incheon",
		Now:         now,
		Route: &Route{
			DistanceMeters: 32400,
			Legs: []Leg{
				{Kind: VehicleSubway, Line: "2", DepartureStop: "Gangnam", ArrivalStop: "Sindorim"},
				{Kind: VehicleRail, Line: "1", DepartureStop: "Sindorim", ArrivalStop: "Incheon"},
			},
		},
		Subway:      Cutoff{Departure: now.Add(47 * time.Minute), Duration: 75, Found: true},
		Any:         Cutoff{Departure: now.Add(90 * time.Minute), Duration: 80, Found: true},
		Recommended: Cutoff{Departure: now.Add(40 * time.Minute), Duration: 72, Found: true},
	}

	r := BuildReport(s)
	assert.Contains(t, r, "Distance: 32.4 km")
	assert.Contains(t, r, "[subway] 2: Gangnam -> Sindorim")
	assert.Contains(t, r, "[rail] 1: Sindorim -> Incheon")
	assert.Contains(t, r, "Last with subway: 23:47 (75 min trip, 47 min left)")
	assert.Contains(t, r, "Still 47 minutes until the last subway.")
}

func TestBuildReportUrgencyTiers(t *testing.T) {
	now := time.Date(2026, 3, 6, 23, 0, 0, 0, kst)
	base := Summary{Now: now, Route: &Route{}}

	run := &base
	s := *run
	s.Subway = Cutoff{Departure: now.Add(8 * time.Minute), Duration: 40, Found: true}
	s.Any = s.Subway
	assert.Contains(t, BuildReport(&s), "Run. 8 minutes")

	s = *run
	s.Subway = Cutoff{Departure: now.Add(25 * time.Minute), Duration: 40, Found: true}
	s.Any = s.Subway
	assert.Contains(t, BuildReport(&s), "Hurry, 25 minutes")

	s = *run
	s.Any = Cutoff{Departure: now.Add(35 * time.Minute), Duration: 55, Found: true}
	assert.Contains(t, BuildReport(&s), "Subway is gone, take the bus.")

	s = *run
	out := BuildReport(&s)
	assert.Contains(t, out, "Everything is gone for tonight.")
	assert.True(t, strings.Contains(out, "gone for tonight"))
}
