package request

import (
	"encoding/base64"
	"errors"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkalns/samplestore/internal/apierr"
)

func TestBody(t *testing.T) {
	type payload struct {
		Name string `json:"name"`
	}

	t.Run("plain json", func(t *testing.T) {
		v, err := Body[payload](events.APIGatewayV2HTTPRequest{Body: `{"name":"Widget"}`})
		require.NoError(t, err)
		assert.Equal(t, "Widget", v.Name)
	})

	t.Run("base64 encoded", func(t *testing.T) {
		encoded := base64.StdEncoding.EncodeToString([]byte(`{"name":"Widget"}`))
		v, err := Body[payload](events.APIGatewayV2HTTPRequest{Body: encoded, IsBase64Encoded: true})
		require.NoError(t, err)
		assert.Equal(t, "Widget", v.Name)
	})

	t.Run("empty body is required_body", func(t *testing.T) {
		_, err := Body[payload](events.APIGatewayV2HTTPRequest{})
		var result *apierr.ErrorResult
		require.True(t, errors.As(err, &result))
		assert.Equal(t, apierr.CodeRequired, result.Errors[0].Code)
	})

	t.Run("malformed json is invalid_body", func(t *testing.T) {
		_, err := Body[payload](events.APIGatewayV2HTTPRequest{Body: "{"})
		var result *apierr.ErrorResult
		require.True(t, errors.As(err, &result))
		assert.Equal(t, apierr.CodeInvalid, result.Errors[0].Code)
	})

	t.Run("bad base64 is invalid_body", func(t *testing.T) {
		_, err := Body[payload](events.APIGatewayV2HTTPRequest{Body: "!!!", IsBase64Encoded: true})
		var result *apierr.ErrorResult
		require.True(t, errors.As(err, &result))
		assert.Equal(t, apierr.CodeInvalid, result.Errors[0].Code)
	})
}
