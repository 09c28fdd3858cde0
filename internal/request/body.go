package request

import (
	"encoding/base64"
	"encoding/json"

	"github.com/aws/aws-lambda-go/events"

	"github.com/mkalns/samplestore/internal/apierr"
)

// Body decodes the JSON request body into T. API Gateway base64-encodes
// binary-safe payloads, so that form is handled too. An empty body maps to
// required_body and malformed JSON to invalid_body.
func Body[T any](req events.APIGatewayV2HTTPRequest) (*T, error) {
	raw := []byte(req.Body)
	if req.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(req.Body)
		if err != nil {
			return nil, apierr.InvalidBody()
		}
		raw = decoded
	}

	if len(raw) == 0 {
		return nil, apierr.RequiredBody()
	}

	v := new(T)
	if err := json.Unmarshal(raw, v); err != nil {
		return nil, apierr.InvalidBody()
	}
	return v, nil
}
