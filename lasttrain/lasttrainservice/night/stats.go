package night

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// SampleStats aggregates the durations of the feasible departures the
// search observed. With at most 1+depth samples this is a coarse
// picture of how the trip degrades over the night, not a forecast.
type SampleStats struct {
	FeasibleSamples int     `json:"feasibleSamples"`
	MeanMinutes     float64 `json:"meanMinutes"`
	FastestMinutes  int     `json:"fastestMinutes"`
	SlowestMinutes  int     `json:"slowestMinutes"`
}

func ComputeStats(samples []Sample) SampleStats {
	var durations []float64
	for _, s := range samples {
		if s.Valid {
			durations = append(durations, float64(s.Duration))
		}
	}
	if len(durations) == 0 {
		return SampleStats{}
	}
	return SampleStats{
		FeasibleSamples: len(durations),
		MeanMinutes:     stat.Mean(durations, nil),
		FastestMinutes:  int(floats.Min(durations)),
		SlowestMinutes:  int(floats.Max(durations)),
	}
}
