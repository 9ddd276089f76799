package night

import (
	"strings"
	"time"
)

// Policy holds the feasibility thresholds applied to a single route.
type Policy struct {
	// MaxTotalMinutes caps the full door-to-door duration, measured
	// from the requested departure instant to the last leg's arrival.
	MaxTotalMinutes int
	// MaxWaitMinutes caps the wait between the requested departure
	// instant and the first leg's scheduled departure.
	MaxWaitMinutes int
	// RequireFixedRail rejects routes without a subway or rail leg.
	RequireFixedRail bool
	// ForbidNightBus rejects routes that board a night-service bus.
	ForbidNightBus bool
	// NightBusPrefix is the lexical marker of night-service bus lines.
	NightBusPrefix string
}

// DefaultPolicy mirrors the reference thresholds: at most 3.5 hours
// total, at most 80 minutes waiting for the first vehicle, Seoul-style
// N-prefixed night buses.
func DefaultPolicy() Policy {
	return Policy{
		MaxTotalMinutes: 210,
		MaxWaitMinutes:  80,
		NightBusPrefix:  "N",
	}
}

// Analyzer derives feasibility verdicts from raw oracle output. It is
// a pure value: no network access, no mutation of its input.
type Analyzer struct {
	policy Policy
}

func NewAnalyzer(p Policy) *Analyzer {
	return &Analyzer{policy: p}
}

// Analyze inspects the first (best-ranked) route of qr against the
// requested departure instant. Malformed or partial input degrades to
// an invalid outcome, never a panic: the search layer must be able to
// treat unparseable oracle output as infeasible.
func (a *Analyzer) Analyze(qr *QueryResult, departure time.Time) Outcome {
	var out Outcome
	if qr == nil || len(qr.Routes) == 0 {
		return out
	}
	route := qr.Routes[0]

	for _, leg := range route.Legs {
		if leg.Kind.FixedRail() {
			out.HasFixedRail = true
		}
		if leg.Kind == VehicleBus && a.policy.NightBusPrefix != "" &&
			strings.HasPrefix(leg.Line, a.policy.NightBusPrefix) {
			out.NightBus = true
		}
	}
	for _, leg := range route.Legs {
		if !leg.Departure.IsZero() {
			out.FirstDeparture = leg.Departure
			break
		}
	}
	for i := len(route.Legs) - 1; i >= 0; i-- {
		if !route.Legs[i].Arrival.IsZero() {
			out.LastArrival = route.Legs[i].Arrival
			break
		}
	}

	if out.LastArrival.IsZero() {
		return out
	}
	out.Duration = int(out.LastArrival.Sub(departure) / time.Minute)

	if out.Duration > a.policy.MaxTotalMinutes {
		return out
	}
	if !out.FirstDeparture.IsZero() {
		wait := out.FirstDeparture.Sub(departure) / time.Minute
		if int(wait) > a.policy.MaxWaitMinutes {
			return out
		}
	}
	if a.policy.RequireFixedRail && !out.HasFixedRail {
		return out
	}
	if a.policy.ForbidNightBus && out.NightBus {
		return out
	}

	out.Valid = true
	return out
}
