// Administrative sample save. One handler serves both create (no path id)
// and update (path id plus the caller's current version); the write is
// attributed to the authenticated user.
package main

import (
	"context"
	"log"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"

	"github.com/mkalns/samplestore/internal/request"
	"github.com/mkalns/samplestore/internal/response"
	"github.com/mkalns/samplestore/internal/server"
	"github.com/mkalns/samplestore/internal/server/models"
	"github.com/mkalns/samplestore/internal/validation"
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

	body, err := request.Body[models.SampleRequest](req)
	if err != nil {
		return response.Error(ctx, app.Logger, err)
	}
	if err := validation.Validate(body); err != nil {
		return response.Error(ctx, app.Logger, err)
	}

	if _, ok := req.PathParameters["id"]; !ok {
		sample, err := app.Samples.Create(ctx, body, actor)
		if err != nil {
			return response.Error(ctx, app.Logger, err)
		}
		return response.JSON(sample, 201)
	}

	id, err := request.PathID(req.PathParameters, "id")
	if err != nil {
		return response.Error(ctx, app.Logger, err)
	}
	version, err := request.Version(req.QueryStringParameters)
	if err != nil {
		return response.Error(ctx, app.Logger, err)
	}

	sample, err := app.Samples.Update(ctx, id, body, version, actor)
	if err != nil {
		return response.Error(ctx, app.Logger, err)
	}
	return response.JSON(sample, 200)
}

func main() {
	lambda.Start(handle)
}
