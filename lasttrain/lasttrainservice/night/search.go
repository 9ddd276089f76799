package night

import (
	"context"
	"time"
)

// Searcher locates the latest feasible departures of the night under a
// strict oracle-query budget. One seed query at now plus Depth
// bisection queries; after Depth iterations the bracket has shrunk to
// window-width / 2^Depth, which bounds the precision of every cutoff.
//
// Bisection presumes feasibility is monotonic in departure time inside
// the window: once a departure is infeasible, every later one is too.
// Real schedules can violate this (per-line first/last-train quirks);
// the searcher accepts bisection's outcome unconditionally.
type Searcher struct {
	oracle   Oracle
	analyzer *Analyzer
	depth    int
	factor   float64
}

// Result carries the three answer slots plus the raw route captured at
// the seed query. Queries counts oracle calls actually issued.
type Result struct {
	NoRoute     bool
	Route       *Route
	Subway      Cutoff
	Any         Cutoff
	Recommended Cutoff
	Queries     int
	Samples     []Sample
}

// Sample is one observed (departure, verdict) point, kept for the
// duration statistics on the summary.
type Sample struct {
	Departure time.Time
	Duration  int
	Valid     bool
}

func NewSearcher(o Oracle, a *Analyzer, depth int, recommendFactor float64) *Searcher {
	return &Searcher{oracle: o, analyzer: a, depth: depth, factor: recommendFactor}
}

// Run executes one combined single-pass search over w with the seed
// instant now. Oracle failures at a midpoint are analyzed as invalid
// for that instant only; the search always spends its full budget and
// returns a best-effort answer.
func (s *Searcher) Run(ctx context.Context, origin, destination string, now time.Time, w Window) Result {
	var res Result

	seed := s.query(ctx, origin, destination, now, &res)
	if seed == nil || len(seed.Routes) == 0 {
		res.NoRoute = true
		return res
	}
	res.Route = &seed.Routes[0]

	out := s.analyzer.Analyze(seed, now)
	res.record(now, out)
	if !out.Valid {
		// Routes exist but the night is already over for this pair.
		return res
	}

	base := out.Duration
	res.Any = Cutoff{Departure: now, Duration: base, Found: true}
	res.Recommended = res.Any
	if out.HasFixedRail {
		res.Subway = res.Any
	}

	left, right := w.Start, w.End
	for i := 0; i < s.depth; i++ {
		mid := left.Add(right.Sub(left) / 2)
		qr := s.query(ctx, origin, destination, mid, &res)
		out := s.analyzer.Analyze(qr, mid)
		res.record(mid, out)
		if !out.Valid {
			right = mid
			continue
		}
		left = mid
		c := Cutoff{Departure: mid, Duration: out.Duration, Found: true}
		res.Any.advance(c)
		if out.HasFixedRail {
			res.Subway.advance(c)
		}
		if float64(out.Duration) < s.factor*float64(base) {
			res.Recommended.advance(c)
		}
	}

	return res
}

func (s *Searcher) query(ctx context.Context, origin, destination string, at time.Time, res *Result) *QueryResult {
	res.Queries++
	qr, err := s.oracle.Query(ctx, origin, destination, at)
	if err != nil {
		return nil
	}
	return qr
}

func (r *Result) record(at time.Time, out Outcome) {
	r.Samples = append(r.Samples, Sample{Departure: at, Duration: out.Duration, Valid: out.Valid})
}

// advance moves the slot to c only when c is strictly later; answer
// slots never regress, even when bisection revisits the region before
// an already-confirmed departure.
func (c *Cutoff) advance(to Cutoff) {
	if c.Found && !to.Departure.After(c.Departure) {
		return
	}
	*c = to
}
