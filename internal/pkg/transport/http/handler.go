package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/flightdeck/itinerary-search-service/internal/pkg/exception"
	"github.com/go-chi/render"
	"github.com/go-kit/kit/endpoint"
)

type DecodeRequestFunc func(ctx context.Context, r *http.Request) (interface{}, error)

type EncodeResponseFunc func(ctx context.Context, w http.ResponseWriter, response interface{}) error

// QueryBinder is implemented by requests populated from URL query parameters
// instead of a JSON body.
type QueryBinder interface {
	BindQuery(r *http.Request) error
}

// MakeHandlerFunc glues a go-kit endpoint to the router: decode, call,
// encode, with all errors funnelled through ErrorResponse.
func MakeHandlerFunc(ep endpoint.Endpoint, decode DecodeRequestFunc, encode EncodeResponseFunc) http.HandlerFunc {
	return func(respWriter http.ResponseWriter, req *http.Request) {
		ctx := req.Context()

		request, err := decode(ctx, req)
		if err != nil {
			ErrorResponse(ctx, err, respWriter)

			return
		}

		response, err := ep(ctx, request)
		if err != nil {
			ErrorResponse(ctx, err, respWriter)

			return
		}

		if err := encode(ctx, respWriter, response); err != nil {
			ErrorResponse(ctx, err, respWriter)
		}
	}
}

// DecodeRequest decodes a JSON body into T and runs its Bind hook. Malformed
// bodies surface as 400, not 500.
func DecodeRequest[T any](_ context.Context, req *http.Request) (interface{}, error) {
	request := new(T)

	if binder, ok := any(request).(render.Binder); ok {
		if err := render.Bind(req, binder); err != nil {
			return nil, asBadRequest(err)
		}

		return request, nil
	}

	if err := render.DecodeJSON(req.Body, request); err != nil {
		return nil, asBadRequest(err)
	}

	return request, nil
}

// DecodeQueryRequest populates T from URL query parameters.
func DecodeQueryRequest[T any](_ context.Context, req *http.Request) (interface{}, error) {
	request := new(T)

	if binder, ok := any(request).(QueryBinder); ok {
		if err := binder.BindQuery(req); err != nil {
			return nil, asBadRequest(err)
		}
	}

	return request, nil
}

func asBadRequest(err error) error {
	var appErr exception.ApplicationError
	if errors.As(err, &appErr) {
		return err
	}

	return exception.ApplicationError{
		StatusCode: http.StatusBadRequest,
		Message:    "malformed request",
		Cause:      err,
	}
}
