package main

import (
	"flag"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-kit/kit/log"
	"github.com/joho/godotenv"

	"github.com/radekwlsk/go-lasttrain/lasttrain/lasttrainendpoint"
	"github.com/radekwlsk/go-lasttrain/lasttrain/lasttrainservice"
	"github.com/radekwlsk/go-lasttrain/lasttrain/lasttrainservice/night"
	"github.com/radekwlsk/go-lasttrain/lasttrain/lasttraintransport"
)

func main() {
	var (
		httpAddr    = flag.String("http-addr", ":8080", "HTTP port to listen")
		timezone    = flag.String("timezone", "Asia/Seoul", "civil timezone anchoring the night window")
		windowStart = flag.String("window-start", "20:30", "night window start, HH:MM local")
		windowEnd   = flag.String("window-end", "02:00", "night window end, HH:MM local")
		maxTotal    = flag.Int("max-total", 210, "max total trip minutes for a feasible route")
		maxWait     = flag.Int("max-wait", 80, "max minutes waiting for the first vehicle")
		depth       = flag.Int("depth", 6, "bisection iterations after the seed query")
		factor      = flag.Float64("recommend-factor", 1.5, "recommended departure duration multiplier")
		timeout     = flag.Duration("query-timeout", 10*time.Second, "per-query oracle timeout")
	)
	flag.Parse()

	var logger log.Logger
	{
		logger = log.NewLogfmtLogger(os.Stderr)
		logger = log.With(logger, "ts", log.DefaultTimestampUTC)
		logger = log.With(logger, "caller", log.DefaultCaller)
	}

	logger.Log("msg", "lasttrain service started")
	defer logger.Log("msg", "finished")

	godotenv.Load()
	apiKey := os.Getenv("GOOGLE_API_KEY")

	cfg := night.DefaultConfig()
	cfg.Policy.MaxTotalMinutes = *maxTotal
	cfg.Policy.MaxWaitMinutes = *maxWait
	cfg.Depth = *depth
	cfg.RecommendFactor = *factor
	cfg.QueryTimeout = *timeout

	if loc, err := time.LoadLocation(*timezone); err != nil {
		logger.Log("err", err, "timezone", *timezone, "msg", "falling back to KST")
	} else {
		cfg.Location = loc
	}
	if b, err := parseBounds(*windowStart, *windowEnd); err != nil {
		logger.Log("exit", err)
		return
	} else {
		cfg.Bounds = b
	}

	var (
		service     = lasttrainservice.New(logger, cfg, apiKey)
		endpoints   = lasttrainendpoint.New(service, logger)
		httpHandler = lasttraintransport.MakeHTTPHandler(endpoints, log.With(logger, "component", "HTTP"))
	)

	errs := make(chan error)
	go func() {
		c := make(chan os.Signal, 1)
		signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
		errs <- fmt.Errorf("%s", <-c)
	}()

	go func() {
		httpListener, err := net.Listen("tcp", *httpAddr)
		if err != nil {
			errs <- err
			return
		}
		logger.Log("transport", "HTTP", "addr", *httpAddr)
		errs <- http.Serve(httpListener, httpHandler)
	}()

	logger.Log("exit", <-errs)
}

func parseBounds(start, end string) (night.Bounds, error) {
	s, err := time.Parse("15:04", start)
	if err != nil {
		return night.Bounds{}, fmt.Errorf("bad window-start %q: %s", start, err)
	}
	e, err := time.Parse("15:04", end)
	if err != nil {
		return night.Bounds{}, fmt.Errorf("bad window-end %q: %s", end, err)
	}
	return night.Bounds{
		StartHour:   s.Hour(),
		StartMinute: s.Minute(),
		EndHour:     e.Hour(),
		EndMinute:   e.Minute(),
	}, nil
}
