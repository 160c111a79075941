package main

import (
	"context"
	"log"

	"ecommerce-backend/infrastructure/config"
	ddbstore "ecommerce-backend/infrastructure/persistence/dynamodb"
	"ecommerce-backend/interfaces/lambda/ingest"

	"github.com/aws/aws-lambda-go/lambda"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awsdynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"go.uber.org/zap"
)

var handler *ingest.Handler

// init runs during cold start
func init() {
	ctx := context.Background()

	cfg, err := config.LoadIngestConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	var logger *zap.Logger
	if cfg.IsProduction() {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.AWSRegion),
	)
	if err != nil {
		log.Fatalf("Failed to load AWS configuration: %v", err)
	}

	store := ddbstore.NewItemStore(
		awsdynamodb.NewFromConfig(awsCfg),
		cfg.DynamoDBTable,
		logger,
	)
	handler = ingest.NewHandler(store, logger)
}

func main() {
	lambda.Start(handler.Handle)
}
