package night

import "time"

// Config gathers every knob of the nightly search. The search control
// flow never reads ambient process state; everything adjustable comes
// through here.
type Config struct {
	Policy Policy
	Bounds Bounds

	// Depth is the number of bisection iterations after the seed
	// query. Total oracle budget per search is 1 + Depth.
	Depth int

	// RecommendFactor bounds the recommended departure's duration to
	// this multiple of the duration available at the seed instant.
	RecommendFactor float64

	// QueryTimeout bounds each oracle round-trip.
	QueryTimeout time.Duration

	// Location is the civil timezone anchoring the night window.
	Location *time.Location
}

func DefaultConfig() Config {
	return Config{
		Policy:          DefaultPolicy(),
		Bounds:          DefaultBounds,
		Depth:           6,
		RecommendFactor: 1.5,
		QueryTimeout:    10 * time.Second,
		Location:        time.FixedZone("KST", 9*60*60),
	}
}
