package lasttrainendpoint

import (
	"context"

	"github.com/go-kit/kit/endpoint"
	"github.com/go-kit/kit/log"
	"github.com/radekwlsk/go-lasttrain/lasttrain/lasttrainservice"
	"github.com/radekwlsk/go-lasttrain/lasttrain/lasttrainservice/night"
)

type Endpoints struct {
	EscapePlanEndpoint endpoint.Endpoint
}

func New(s lasttrainservice.Service, logger log.Logger) Endpoints {
	var escapePlanEndpoint endpoint.Endpoint
	{
		escapePlanEndpoint = NewEscapePlanEndpoint(s)
		escapePlanEndpoint = NewLoggingMiddleware(log.With(logger, "layer", "endpoint"))(escapePlanEndpoint)
	}
	return Endpoints{
		EscapePlanEndpoint: escapePlanEndpoint,
	}
}

func (e Endpoints) EscapePlan(ctx context.Context, tc night.Configuration) (night.Summary, error) {
	response, err := e.EscapePlanEndpoint(ctx, EscapePlanRequest{Configuration: tc})
	if err != nil {
		return night.Summary{}, err
	}
	resp := response.(EscapePlanResponse)
	return resp.Summary, resp.Err
}

func NewEscapePlanEndpoint(s lasttrainservice.Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(EscapePlanRequest)
		resp, e := s.EscapePlan(ctx, req.Configuration)
		return EscapePlanResponse{Summary: resp, Err: e}, nil
	}
}

type EscapePlanRequest struct {
	Configuration night.Configuration
}

type EscapePlanResponse struct {
	night.Summary
	Err error `json:"err,omitempty"`
}

func (r EscapePlanResponse) Error() error { return r.Err }
