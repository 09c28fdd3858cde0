package response

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/aws/aws-lambda-go/events"

	"github.com/mkalns/samplestore/internal/apierr"
	"github.com/mkalns/samplestore/internal/logging"
)

var jsonHeaders = map[string]string{
	"Content-Type": "application/json",
}

// JSON marshals v into an API Gateway response with the given status.
func JSON(v any, status int) (events.APIGatewayV2HTTPResponse, error) {
	if v == nil {
		return events.APIGatewayV2HTTPResponse{StatusCode: status, Headers: jsonHeaders}, nil
	}

	b, err := json.Marshal(v)
	if err != nil {
		return events.APIGatewayV2HTTPResponse{}, err
	}

	return events.APIGatewayV2HTTPResponse{
		Body:       string(b),
		StatusCode: status,
		Headers:    jsonHeaders,
	}, nil
}

// Error renders err as an ErrorResult response. Classified errors keep their
// status and details; anything else is logged and collapsed to the generic
// 500 envelope so internal detail never reaches the caller.
func Error(ctx context.Context, log logging.Logger, err error) (events.APIGatewayV2HTTPResponse, error) {
	var result *apierr.ErrorResult
	if !errors.As(err, &result) {
		result = apierr.InternalServer()
		log.Error(ctx, "unhandled error", "error", err.Error(), "incident", result.Incident())
	}

	return JSON(result, result.Status)
}

// NoContent is the empty success response used by delete.
func NoContent() (events.APIGatewayV2HTTPResponse, error) {
	return events.APIGatewayV2HTTPResponse{StatusCode: http.StatusNoContent}, nil
}
