package repositories

import (
	"context"

	"github.com/SAP-F-2025/question-delivery-service/internal/models"
)

// QuestionRepository is the source of question batches
type QuestionRepository interface {
	Create(ctx context.Context, question *models.Question) error
	GetByID(ctx context.Context, id string) (*models.Question, error)

	// GetByCategory returns every stored question in category, ordered by ID.
	// The result is not validated.
	GetByCategory(ctx context.Context, category models.QuestionCategory) ([]*models.Question, error)
}
