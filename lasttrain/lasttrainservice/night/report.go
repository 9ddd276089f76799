package night

import (
	"fmt"
	"strings"
)

// BuildReport renders the user-facing plan text from an already
// populated summary. Purely presentational: it reuses the route
// captured at the seed query and never issues another oracle call.
func BuildReport(s *Summary) string {
	if s.NoRoute {
		return strings.Join([]string{
			fmt.Sprintf("No transit route found from %s to %s.", s.Origin, s.Destination),
			"Check the place names, or the trip may not be reachable by transit at all.",
		}, "\n")
	}

	var lines []string
	lines = append(lines, fmt.Sprintf("Route: %s -> %s", s.Origin, s.Destination))
	if s.Route != nil {
		lines = append(lines, fmt.Sprintf("Distance: %.1f km", float64(s.Route.DistanceMeters)/1000))
		for _, leg := range s.Route.Legs {
			lines = append(lines, fmt.Sprintf(
				"[%s] %s: %s -> %s",
				leg.Kind, leg.Line, leg.DepartureStop, leg.ArrivalStop))
		}
	}

	lines = append(lines,
		fmt.Sprintf("Last with subway: %s", formatCutoff(s, s.Subway)),
		fmt.Sprintf("Last of any kind: %s", formatCutoff(s, s.Any)),
		fmt.Sprintf("Recommended: %s", formatCutoff(s, s.Recommended)),
	)
	lines = append(lines, urgency(s)...)

	return strings.Join(lines, "\n")
}

func formatCutoff(s *Summary, c Cutoff) string {
	if !c.Found {
		return "gone for tonight"
	}
	return fmt.Sprintf(
		"%s (%d min trip, %d min left)",
		c.Departure.Format("15:04"), c.Duration, c.MinutesLeft(s.Now))
}

func urgency(s *Summary) []string {
	subwayLeft := s.Subway.MinutesLeft(s.Now)
	anyLeft := s.Any.MinutesLeft(s.Now)

	switch {
	case !s.Subway.Found || subwayLeft <= 0:
		if s.Any.Found && anyLeft > 0 {
			return []string{
				"Subway is gone, take the bus.",
				fmt.Sprintf("%d minutes until the last one.", anyLeft),
			}
		}
		return []string{
			"Everything is gone for tonight.",
			"No more transit until the first departures tomorrow.",
		}
	case subwayLeft <= 10:
		return []string{fmt.Sprintf("Run. %d minutes until the last subway.", subwayLeft)}
	case subwayLeft <= 30:
		return []string{fmt.Sprintf("Hurry, %d minutes until the last subway. Leave now.", subwayLeft)}
	default:
		return []string{fmt.Sprintf("Still %d minutes until the last subway.", subwayLeft)}
	}
}
