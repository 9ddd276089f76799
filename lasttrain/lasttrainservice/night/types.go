package night

import (
	"time"
)

// VehicleKind classifies a transit leg by the vehicle serving it.
type VehicleKind string

const (
	VehicleBus    VehicleKind = "bus"
	VehicleSubway VehicleKind = "subway"
	VehicleRail   VehicleKind = "rail"
	VehicleOther  VehicleKind = "other"
)

// FixedRail reports whether the vehicle runs on rails with a fixed
// schedule, as opposed to a bus that may keep running past the last train.
func (k VehicleKind) FixedRail() bool {
	return k == VehicleSubway || k == VehicleRail
}

// Leg is one boarded vehicle within a route: a single line ridden
// between a departure stop and an arrival stop. Walking segments are
// not legs.
type Leg struct {
	Kind          VehicleKind `json:"kind"`
	Line          string      `json:"line"`
	DepartureStop string      `json:"departureStop"`
	ArrivalStop   string      `json:"arrivalStop"`
	Departure     time.Time   `json:"departure"`
	Arrival       time.Time   `json:"arrival"`
}

// Route is one alternative returned by the oracle.
type Route struct {
	DistanceMeters int   `json:"distanceMeters"`
	Legs           []Leg `json:"legs"`
}

// QueryResult is the raw oracle output for a single departure instant.
// A nil *QueryResult or an empty Routes slice both mean "no route", a
// state distinct from "routes present but infeasible".
type QueryResult struct {
	Routes []Route `json:"routes"`
}

// Window is the nightly search range. Start < End always holds for
// windows produced by ComputeWindow.
type Window struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

func (w Window) Width() time.Duration {
	return w.End.Sub(w.Start)
}

// Outcome is the analyzer verdict for one (query result, departure)
// pair. When Valid is false derived fields carry whatever could still
// be extracted; callers must check Valid before trusting them.
type Outcome struct {
	Valid        bool
	HasFixedRail bool
	NightBus     bool
	// Duration is minutes from the requested departure to the arrival
	// of the last transit leg. Zero when no arrival could be extracted.
	Duration       int
	FirstDeparture time.Time
	LastArrival    time.Time
}

// Cutoff is one best-so-far answer slot: a departure instant paired
// with the trip duration observed at that instant. The zero value is
// the "not found" sentinel.
type Cutoff struct {
	Departure time.Time `json:"departure"`
	Duration  int       `json:"durationMinutes"`
	Found     bool      `json:"found"`
}

func (c Cutoff) MinutesLeft(now time.Time) int {
	if !c.Found {
		return 0
	}
	return int(c.Departure.Sub(now) / time.Minute)
}

// Summary is the terminal result of one escape-plan search, consumed
// by the presentation layer and serialized to API clients.
type Summary struct {
	Origin      string    `json:"origin"`
	Destination string    `json:"destination"`
	Now         time.Time `json:"now"`
	Window      Window    `json:"window"`

	// NoRoute is set when the very first query found no route at all
	// (bad address or unreachable by transit). Distinct from a route
	// that exists but is already infeasible tonight.
	NoRoute bool `json:"noRoute"`

	// Route is the route captured at the seed query, reused for
	// display so the presentation layer costs no extra oracle call.
	// Nil when NoRoute.
	Route *Route `json:"route,omitempty"`

	Subway      Cutoff `json:"subway"`
	Any         Cutoff `json:"any"`
	Recommended Cutoff `json:"recommended"`

	Queries int         `json:"queries"`
	Stats   SampleStats `json:"stats"`

	Report string `json:"report"`
}
