package lasttrainservice

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-kit/kit/log"
	"github.com/gregjones/httpcache"
	"github.com/mitchellh/mapstructure"
	"github.com/radekwlsk/go-lasttrain/lasttrain/lasttrainservice/night"
	"github.com/radekwlsk/go-lasttrain/utils"
	"googlemaps.github.io/maps"
)

// Service interface definition and basic service methods implementation,
// the actual actions performed by service on data.
type Service interface {
	EscapePlan(context.Context, night.Configuration) (night.Summary, error)
}

func New(logger log.Logger, cfg night.Config, defaultAPIKey string) Service {
	var s Service
	{
		s = NewService(cfg, defaultAPIKey)
		s = NewLoggingMiddleware(log.With(logger, "layer", "service"))(s)
	}
	return s
}

var (
	ErrAPIKeyEmpty = errors.New("request must contain Google Maps API Key as 'apiKey'" +
		" or the server must be started with one")

	ErrOriginEmpty = errors.New("request must contain a place description as 'origin'")

	ErrDestinationEmpty = errors.New("request must contain a place description as 'destination'")

	ErrBadMode = errors.New(fmt.Sprintf("place description mode is not valid, available modes are: %s",
		strings.Join(night.ModeOptions, ", ")))
)

type ErrBadDescription struct {
	Description interface{}
}

func (err ErrBadDescription) Error() string {
	return fmt.Sprintf("could not parse place description of %s", err.Description)
}

type ErrDescriptionInaccurate struct {
	Description interface{}
}

func (err ErrDescriptionInaccurate) Error() string {
	return fmt.Sprintf("description not accurate, no results found for %s", err.Description)
}

type service struct {
	cfg            night.Config
	apiKey         string
	cacheTransport *httpcache.Transport

	// now and newOracle are swappable so the full plan path can run
	// against a fixed clock and an injected fake oracle.
	now       func() time.Time
	newOracle func(c *maps.Client, tc night.Configuration) night.Oracle
}

func NewService(cfg night.Config, defaultAPIKey string) Service {
	s := &service{
		cfg:            cfg,
		apiKey:         defaultAPIKey,
		cacheTransport: httpcache.NewMemoryCacheTransport(),
		now:            time.Now,
	}
	s.newOracle = func(c *maps.Client, tc night.Configuration) night.Oracle {
		return night.NewDirectionsOracle(c, cfg.QueryTimeout, tc.Language, tc.Region)
	}
	return s
}

// resolved is one trip endpoint after description decoding: a label
// for display and a waypoint string the Directions API accepts.
type resolved struct {
	label    string
	waypoint string
}

func (s *service) EscapePlan(ctx context.Context, tc night.Configuration) (night.Summary, error) {
	key := tc.APIKey
	if key == "" {
		key = s.apiKey
	}
	if key == "" {
		return night.Summary{}, ErrAPIKeyEmpty
	}

	if tc.Mode == "" {
		tc.Mode = night.ModeOptions[0]
	} else if !utils.StringIn(tc.Mode, night.ModeOptions) {
		return night.Summary{}, ErrBadMode
	}

	if tc.Origin == nil {
		return night.Summary{}, ErrOriginEmpty
	}
	if tc.Destination == nil {
		return night.Summary{}, ErrDestinationEmpty
	}

	c, err := maps.NewClient(maps.WithAPIKey(key), maps.WithHTTPClient(s.cacheTransport.Client()))
	if err != nil {
		return night.Summary{}, err
	}

	var places [2]resolved
	descriptions := [2]interface{}{tc.Origin, tc.Destination}

	wg := sync.WaitGroup{}
	wg.Add(len(descriptions))
	errChan := make(chan error, len(descriptions))
	for i, d := range descriptions {
		go func(i int, description interface{}) {
			defer wg.Done()
			r, err := s.resolvePlace(ctx, c, tc.Mode, description)
			if err != nil {
				errChan <- err
				return
			}
			places[i] = r
			errChan <- nil
		}(i, d)
	}
	wg.Wait()
	close(errChan)
	for err := range errChan {
		if err != nil {
			return night.Summary{}, err
		}
	}

	now := s.now().In(s.cfg.Location)
	w := night.ComputeWindow(now, s.cfg.Bounds)

	oracle := s.newOracle(c, tc)
	searcher := night.NewSearcher(oracle, night.NewAnalyzer(s.cfg.Policy), s.cfg.Depth, s.cfg.RecommendFactor)
	res := searcher.Run(ctx, places[0].waypoint, places[1].waypoint, now, w)

	summary := night.Summary{
		Origin:      places[0].label,
		Destination: places[1].label,
		Now:         now,
		Window:      w,
		NoRoute:     res.NoRoute,
		Route:       res.Route,
		Subway:      res.Subway,
		Any:         res.Any,
		Recommended: res.Recommended,
		Queries:     res.Queries,
		Stats:       night.ComputeStats(res.Samples),
	}
	summary.Report = night.BuildReport(&summary)

	return summary, nil
}

func (s *service) resolvePlace(ctx context.Context, c *maps.Client, mode string, description interface{}) (resolved, error) {
	if mode == "text" {
		text, ok := description.(string)
		if !ok || text == "" {
			return resolved{}, ErrBadDescription{description}
		}
		return resolved{label: text, waypoint: text}, nil
	}

	config := mapstructure.DecoderConfig{ErrorUnused: true}
	switch mode {
	case "address":
		config.Result = &night.AddressDescription{}
	case "name":
		config.Result = &night.NameDescription{}
	case "id":
		config.Result = &night.PlaceIDDescription{}
	default:
		return resolved{}, ErrBadMode
	}
	decoder, err := mapstructure.NewDecoder(&config)
	if err != nil {
		return resolved{}, err
	}
	if err = decoder.Decode(description); err != nil {
		return resolved{}, ErrBadDescription{description}
	}

	var label string
	switch d := config.Result.(type) {
	case *night.AddressDescription:
		if d.IsEmpty() {
			return resolved{}, ErrBadDescription{description}
		}
		label = utils.IfThenElse(d.Name != "", d.Name, d.City)
	case *night.NameDescription:
		if d.Name == "" {
			return resolved{}, ErrBadDescription{description}
		}
		label = d.Name
	case *night.PlaceIDDescription:
		if d.PlaceID == "" {
			return resolved{}, ErrBadDescription{description}
		}
		label = d.PlaceID
	}

	placeID, err := config.Result.(night.Description).MapsPlaceID(ctx, c)
	switch err {
	case nil:
	case night.ErrZeroResults:
		return resolved{}, ErrDescriptionInaccurate{description}
	default:
		return resolved{}, err
	}

	return resolved{label: label, waypoint: "place_id:" + placeID}, nil
}
