//go:build lambda
// +build lambda

package main

import (
	"context"

	"github.com/address-cleanser/address-cleanser/internal/config"
	"github.com/address-cleanser/address-cleanser/internal/logger"
	"github.com/address-cleanser/address-cleanser/internal/server"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
	"github.com/davecgh/go-spew/spew"
	"go.uber.org/zap"
)

// @title           Address Cleanser API
// @version         1.0.12
// @description     REST API for parsing, validating, and formatting US addresses

// @BasePath  /

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

var ginLambda *ginadapter.GinLambda

func init() {
	cfg, err := config.Load("")
	if err != nil {
		panic("failed to load configuration: " + err.Error())
	}

	logger.InitLoggerWithConfig(logger.LoggerConfig{
		Level:      cfg.Log.Level,
		Stage:      cfg.Stage,
		EnableJSON: true,
	})

	ginLambda = ginadapter.New(server.New(cfg).Router())
}

func Handler(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	logger.Debug("Received Lambda request",
		zap.String("path", req.Path),
		zap.String("request", spew.Sdump(req)),
	)

	return ginLambda.ProxyWithContext(ctx, req)
}

func main() {
	defer logger.Sync()
	lambda.Start(Handler)
}
