package query

import (
	"context"

	"github.com/abdhack/medgemma-gateway/internal/infrastructure/gradio"
	"github.com/abdhack/medgemma-gateway/internal/services/query/models"
)

// RemoteClient is the narrow capability used to reach the hosted model
type RemoteClient interface {
	// Predict submits one prediction and returns the generated text
	Predict(ctx context.Context, req gradio.PredictRequest) (string, error)
}

// Service defines the interface for medical query operations
type Service interface {
	// ProcessQuery forwards a medical question to the remote model and returns
	// the answer, degrading to a fallback response on remote failure
	ProcessQuery(ctx context.Context, req *models.QueryRequest) (*models.QueryResponse, error)
}
