package services

import (
	"context"

	"github.com/SAP-F-2025/question-delivery-service/internal/models"
)

type QuestionBatchService interface {
	// GetBatch returns the deliverable questions of category. Invalid stored
	// questions are dropped and counted in Rejected.
	GetBatch(ctx context.Context, category models.QuestionCategory) (*BatchResponse, error)
	ValidateQuestion(ctx context.Context, question *models.Question) *ValidationResult

	// CreateQuestion stores a valid question and drops the shared batch tier
	CreateQuestion(ctx context.Context, question *models.Question) (*models.Question, error)
}

type ResponseService interface {
	Submit(ctx context.Context, req *SubmitResponseRequest) (*EvaluationResult, error)
}

type KnownUserService interface {
	FindByEmail(ctx context.Context, email string) (*models.KnownUserRecord, error)
}

// KnownUserDirectory is satisfied by *retrieval.Directory
type KnownUserDirectory interface {
	FindKnownUser(ctx context.Context, email string) (*models.KnownUserRecord, error)
}

// ===== REQUEST/RESPONSE DTOs =====

type BatchResponse struct {
	Category  models.QuestionCategory `json:"category"`
	Questions []*models.Question      `json:"questions"`
	Rejected  int                     `json:"rejected"`
}

type ValidationResult struct {
	Valid  bool   `json:"valid"`
	Reason string `json:"reason,omitempty"`
	Field  string `json:"field,omitempty"`
}

// SubmitResponseRequest carries either a stored question ID or an inline
// question, plus the answer value and delivery context.
type SubmitResponseRequest struct {
	QuestionID string                 `json:"question_id" validate:"required_without=Question"`
	Question   *models.Question       `json:"question"`
	Value      interface{}            `json:"value"`
	Context    models.QuestionContext `json:"context"`
}

type EvaluationResult struct {
	QuestionID    string                `json:"question_id"`
	Correct       bool                  `json:"correct"`
	DelightFactor *models.DelightFactor `json:"delight_factor"`
}
