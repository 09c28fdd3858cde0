// Administrative sample delete. Soft-deletes the entity, gated on the
// caller's current version, attributed to the authenticated user.
package main

import (
	"context"
	"log"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"

	"github.com/mkalns/samplestore/internal/request"
	"github.com/mkalns/samplestore/internal/response"
	"github.com/mkalns/samplestore/internal/server"
)

var app *server.App

func init() {
	var err error
	app, err = server.NewApp(context.Background())
	if err != nil {
		log.Fatalf("init: %v", err)
	}
}

func handle(ctx context.Context, req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	actor, err := request.UserID(req.RequestContext)
	if err != nil {
		return response.Error(ctx, app.Logger, err)
	}

	id, err := request.PathID(req.PathParameters, "id")
	if err != nil {
		return response.Error(ctx, app.Logger, err)
	}
	version, err := request.Version(req.QueryStringParameters)
	if err != nil {
		return response.Error(ctx, app.Logger, err)
	}

	if err := app.Samples.Delete(ctx, id, version, actor); err != nil {
		return response.Error(ctx, app.Logger, err)
	}

	return response.NoContent()
}

func main() {
	lambda.Start(handle)
}
