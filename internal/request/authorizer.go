package request

import (
	"github.com/aws/aws-lambda-go/events"

	"github.com/mkalns/samplestore/internal/apierr"
)

// UserID extracts the acting user's identifier from the gateway JWT
// authorizer. The value is opaque to the service; authorization itself
// happened upstream.
func UserID(reqCtx events.APIGatewayV2HTTPRequestContext) (string, error) {
	auth := reqCtx.Authorizer
	if auth == nil || auth.JWT == nil {
		return "", apierr.Unauthorized()
	}

	sub, ok := auth.JWT.Claims["sub"]
	if !ok || sub == "" {
		return "", apierr.Unauthorized()
	}
	return sub, nil
}
