// Administrative sample listing. Page/size pagination with a total count,
// untranslated primary names only.
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
	result, err := app.Samples.List(ctx,
		request.Query(req.QueryStringParameters),
		request.NewPageRequest(req.QueryStringParameters),
	)
	if err != nil {
		return response.Error(ctx, app.Logger, err)
	}

	return response.JSON(result, 200)
}

func main() {
	lambda.Start(handle)
}
