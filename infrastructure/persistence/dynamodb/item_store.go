package dynamodb

import (
	"context"
	"fmt"

	"ecommerce-backend/application/ports"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"go.uber.org/zap"
)

// PutItemAPI is the slice of the DynamoDB client the item store uses
type PutItemAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
}

// ItemStore implements the ItemWriter port using DynamoDB. Writes are
// full-overwrite upserts keyed by the item's id attribute.
type ItemStore struct {
	client    PutItemAPI
	tableName string
	logger    *zap.Logger
}

// NewItemStore creates a new ItemStore
func NewItemStore(client PutItemAPI, tableName string, logger *zap.Logger) ports.ItemWriter {
	return &ItemStore{
		client:    client,
		tableName: tableName,
		logger:    logger,
	}
}

// Put upserts one item into the table
func (s *ItemStore) Put(ctx context.Context, item map[string]interface{}) error {
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return fmt.Errorf("failed to marshal item: %w", err)
	}

	_, err = s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.tableName),
		Item:      av,
	})
	if err != nil {
		return fmt.Errorf("failed to put item: %w", err)
	}

	s.logger.Debug("Item written to DynamoDB", zap.String("table", s.tableName))
	return nil
}
