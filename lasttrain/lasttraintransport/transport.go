package lasttraintransport

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io/ioutil"
	"net/http"
	"net/url"
	"strings"

	"github.com/gorilla/mux"

	"github.com/go-kit/kit/endpoint"
	"github.com/go-kit/kit/log"
	httptransport "github.com/go-kit/kit/transport/http"

	"github.com/radekwlsk/go-lasttrain/lasttrain/lasttrainendpoint"
	"github.com/radekwlsk/go-lasttrain/lasttrain/lasttrainservice"
)

func MakeHTTPHandler(endpoints lasttrainendpoint.Endpoints, logger log.Logger) http.Handler {
	r := mux.NewRouter()
	options := []httptransport.ServerOption{
		httptransport.ServerErrorLogger(logger),
		httptransport.ServerErrorEncoder(errorEncoder),
	}

	r.Methods("POST").Path("/api/plan/").Handler(httptransport.NewServer(
		endpoints.EscapePlanEndpoint,
		decodeEscapePlanRequest,
		encodeResponse,
		options...,
	))

	return r
}

// MakeHTTPClient returns a Service talking to a remote instance,
// expected in "host:port" form.
func MakeHTTPClient(instance string) (lasttrainservice.Service, error) {
	if !strings.HasPrefix(instance, "http") {
		instance = "http://" + instance
	}
	u, err := url.Parse(instance)
	if err != nil {
		return nil, err
	}

	var options []httptransport.ClientOption

	var escapePlanEndpoint endpoint.Endpoint
	{
		escapePlanEndpoint = httptransport.NewClient(
			"POST",
			copyURL(u, "/api/plan/"),
			encodeEscapePlanRequest,
			decodeEscapePlanResponse,
			options...,
		).Endpoint()
	}

	return lasttrainendpoint.Endpoints{
		EscapePlanEndpoint: escapePlanEndpoint,
	}, nil
}

func copyURL(base *url.URL, path string) *url.URL {
	next := *base
	next.Path = path
	return &next
}

func decodeEscapePlanRequest(_ context.Context, r *http.Request) (interface{}, error) {
	var request lasttrainendpoint.EscapePlanRequest
	if err := json.NewDecoder(r.Body).Decode(&request.Configuration); err != nil {
		return nil, err
	}
	return request, nil
}

func encodeEscapePlanRequest(ctx context.Context, req *http.Request, request interface{}) error {
	r := request.(lasttrainendpoint.EscapePlanRequest)
	return encodeRequest(ctx, req, r.Configuration)
}

func decodeEscapePlanResponse(_ context.Context, resp *http.Response) (interface{}, error) {
	if resp.StatusCode != http.StatusOK {
		return nil, errorDecoder(resp)
	}
	var response lasttrainendpoint.EscapePlanResponse
	err := json.NewDecoder(resp.Body).Decode(&response)
	return response, err
}

type erroneousResponse interface {
	Error() error
}

func encodeResponse(ctx context.Context, w http.ResponseWriter, response interface{}) error {
	if e, ok := response.(erroneousResponse); ok && e.Error() != nil {
		errorEncoder(ctx, e.Error(), w)
		return nil
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	return json.NewEncoder(w).Encode(response)
}

func encodeRequest(_ context.Context, req *http.Request, request interface{}) error {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(request); err != nil {
		return err
	}
	req.Body = ioutil.NopCloser(&buf)
	return nil
}

func errorDecoder(r *http.Response) error {
	var w errorWrapper
	if err := json.NewDecoder(r.Body).Decode(&w); err != nil {
		return err
	}
	return errors.New(w.Error)
}

func errorEncoder(_ context.Context, err error, w http.ResponseWriter) {
	if err == nil {
		panic("encodeError with nil error")
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(errToStatus(err))
	json.NewEncoder(w).Encode(errorWrapper{Error: err.Error()})
}

func errToStatus(err error) int {
	switch err {
	case
		lasttrainservice.ErrAPIKeyEmpty,
		lasttrainservice.ErrOriginEmpty,
		lasttrainservice.ErrDestinationEmpty,
		lasttrainservice.ErrBadMode:
		return http.StatusBadRequest
	}
	switch err.(type) {
	case lasttrainservice.ErrBadDescription, lasttrainservice.ErrDescriptionInaccurate:
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

type errorWrapper struct {
	Error string `json:"err"`
}
