package night

import (
	"context"
	"strconv"
	"time"

	"googlemaps.github.io/maps"
)

// Oracle answers one transit route query for a departure instant.
// A nil result with a nil error means the oracle found nothing; the
// search layer treats errors and nil results identically (fail closed),
// so implementations should prefer returning (nil, err) over panicking
// for transport failures.
type Oracle interface {
	Query(ctx context.Context, origin, destination string, departure time.Time) (*QueryResult, error)
}

// DirectionsOracle asks the Google Maps Directions API for transit
// routes. Each call is one blocking round-trip bounded by Timeout.
type DirectionsOracle struct {
	client   *maps.Client
	timeout  time.Duration
	language string
	region   string
}

func NewDirectionsOracle(c *maps.Client, timeout time.Duration, language, region string) *DirectionsOracle {
	return &DirectionsOracle{
		client:   c,
		timeout:  timeout,
		language: language,
		region:   region,
	}
}

func (o *DirectionsOracle) Query(ctx context.Context, origin, destination string, departure time.Time) (*QueryResult, error) {
	ctx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	r := &maps.DirectionsRequest{
		Origin:        origin,
		Destination:   destination,
		Mode:          maps.TravelModeTransit,
		DepartureTime: strconv.FormatInt(departure.Unix(), 10),
		Language:      o.language,
		Region:        o.region,
	}
	routes, _, err := o.client.Directions(ctx, r)
	if err != nil {
		return nil, err
	}
	if len(routes) == 0 {
		return nil, nil
	}

	qr := &QueryResult{Routes: make([]Route, 0, len(routes))}
	for _, mr := range routes {
		qr.Routes = append(qr.Routes, convertRoute(&mr, departure.Location()))
	}
	return qr, nil
}

func convertRoute(mr *maps.Route, loc *time.Location) Route {
	var route Route
	for _, leg := range mr.Legs {
		route.DistanceMeters += leg.Distance.Meters
		for _, step := range leg.Steps {
			td := step.TransitDetails
			if td == nil {
				continue
			}
			line := td.Line.ShortName
			if line == "" {
				line = td.Line.Name
			}
			route.Legs = append(route.Legs, Leg{
				Kind:          vehicleKind(string(td.Line.Vehicle.Type)),
				Line:          line,
				DepartureStop: td.DepartureStop.Name,
				ArrivalStop:   td.ArrivalStop.Name,
				Departure:     td.DepartureTime.In(loc),
				Arrival:       td.ArrivalTime.In(loc),
			})
		}
	}
	return route
}

func vehicleKind(apiType string) VehicleKind {
	switch apiType {
	case "BUS", "INTERCITY_BUS", "TROLLEYBUS":
		return VehicleBus
	case "SUBWAY", "METRO_RAIL":
		return VehicleSubway
	case "RAIL", "HEAVY_RAIL", "COMMUTER_TRAIN", "HIGH_SPEED_TRAIN",
		"LONG_DISTANCE_TRAIN", "MONORAIL", "TRAM":
		return VehicleRail
	default:
		return VehicleOther
	}
}
