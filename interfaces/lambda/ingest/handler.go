// Package ingest implements the serverless write path: an API Gateway
// event whose body carries {id, data} is upserted as one item into the
// configured DynamoDB table.
package ingest

import (
	"context"
	"encoding/json"
	"fmt"

	"ecommerce-backend/application/ports"

	"github.com/aws/aws-lambda-go/events"
	"go.uber.org/zap"
)

const (
	successMessage = "Data written to DynamoDB"
	errorMessage   = "Error writing to DynamoDB"
)

// Handler processes ingest invocations
type Handler struct {
	store  ports.ItemWriter
	logger *zap.Logger
}

// NewHandler creates a new ingest handler
func NewHandler(store ports.ItemWriter, logger *zap.Logger) *Handler {
	return &Handler{
		store:  store,
		logger: logger,
	}
}

// payload is the expected request body shape
type payload struct {
	ID   interface{} `json:"id"`
	Data interface{} `json:"data"`
}

// Handle parses the event body and upserts the item. Every failure maps to
// a 500 response with an opaque message; the cause goes to the logs only.
// The returned error is always nil so the runtime never retries.
func (h *Handler) Handle(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	var body payload
	if err := json.Unmarshal([]byte(event.Body), &body); err != nil {
		h.logger.Error("Failed to parse event body", zap.Error(err))
		return errorResponse(), nil
	}
	if body.ID == nil {
		h.logger.Error("Event body is missing the id field")
		return errorResponse(), nil
	}

	item := map[string]interface{}{
		"id":   body.ID,
		"data": body.Data,
	}
	if err := h.store.Put(ctx, item); err != nil {
		h.logger.Error("Failed to write item", zap.Error(err))
		return errorResponse(), nil
	}

	h.logger.Info("Item ingested", zap.Any("id", body.ID))
	return jsonStringResponse(200, successMessage), nil
}

func errorResponse() events.APIGatewayProxyResponse {
	return jsonStringResponse(500, errorMessage)
}

// jsonStringResponse renders the body as a JSON-encoded string, matching
// the {statusCode, body} contract of the upstream consumers.
func jsonStringResponse(status int, message string) events.APIGatewayProxyResponse {
	encoded, err := json.Marshal(message)
	if err != nil {
		// Marshalling a string constant cannot fail; keep the contract anyway.
		encoded = []byte(fmt.Sprintf("%q", message))
	}
	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Body:       string(encoded),
		Headers:    map[string]string{"Content-Type": "application/json"},
	}
}
