// Customer-facing sample fetch. Returns the entity with name and
// description resolved to the caller's language; the full translation set
// is never exposed here.
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
	id, err := request.PathID(req.PathParameters, "id")
	if err != nil {
		return response.Error(ctx, app.Logger, err)
	}

	language := request.Language(req.Headers, app.Config.DefaultLanguage)

	sample, err := app.Samples.Get(ctx, id, true, language)
	if err != nil {
		return response.Error(ctx, app.Logger, err)
	}

	return response.JSON(sample, 200)
}

func main() {
	lambda.Start(handle)
}
