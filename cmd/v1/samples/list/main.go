// Customer-facing sample listing. Cursor-paged, localized through the
// Accept-Language header, filterable by a substring query.
package main

import (
	"context"
	"log"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"

	"github.com/mkalns/samplestore/internal/request"
	"github.com/mkalns/samplestore/internal/response"
	"github.com/mkalns/samplestore/internal/server"
	"github.com/mkalns/samplestore/internal/server/repositories/samples"
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
	filter := samples.SeekFilter{
		Language: request.Language(req.Headers, app.Config.DefaultLanguage),
		Query:    request.Query(req.QueryStringParameters),
	}

	result, err := app.Samples.Seek(ctx, filter, request.NewSeekRequest(req.QueryStringParameters))
	if err != nil {
		return response.Error(ctx, app.Logger, err)
	}

	return response.JSON(result, 200)
}

func main() {
	lambda.Start(handle)
}
