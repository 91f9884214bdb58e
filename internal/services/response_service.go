package services

import (
	"context"
	"fmt"
	"time"

	"github.com/SAP-F-2025/question-delivery-service/internal/delight"
	"github.com/SAP-F-2025/question-delivery-service/internal/evaluator"
	"github.com/SAP-F-2025/question-delivery-service/internal/events"
	"github.com/SAP-F-2025/question-delivery-service/internal/metrics"
	"github.com/SAP-F-2025/question-delivery-service/internal/models"
	"github.com/SAP-F-2025/question-delivery-service/internal/repositories"
	"github.com/SAP-F-2025/question-delivery-service/internal/validator"
)

type responseService struct {
	repo      repositories.QuestionRepository
	validator *validator.Validator
	evaluator *evaluator.Evaluator
	delight   *delight.Engine
	publisher events.EventPublisher
	metrics   metrics.MetricsCollector
	logger    *ServiceLogger
	now       func() time.Time
}

func NewResponseService(deps *Dependencies) ResponseService {
	return &responseService{
		repo:      deps.Questions,
		validator: deps.Validator,
		evaluator: deps.Evaluator,
		delight:   deps.Delight,
		publisher: deps.Publisher,
		metrics:   deps.Metrics,
		logger:    NewServiceLogger(deps.Logger, LogConfig{Service: "question-delivery", Component: "responses"}),
		now:       time.Now,
	}
}

// Submit evaluates a response and picks the delight factor to show with it.
// Publishing the outcome is best effort.
func (s *responseService) Submit(ctx context.Context, req *SubmitResponseRequest) (result *EvaluationResult, err error) {
	start := time.Now()
	defer func() {
		id := ""
		if req != nil {
			id = req.QuestionID
		}
		s.logger.LogOperation(ctx, "submit_response", id, "response", time.Since(start), err)
	}()

	if req == nil {
		return nil, fmt.Errorf("%w: request is required", ErrBadRequest)
	}
	if err := s.validator.ValidateStruct(req); err != nil {
		if ve := validator.ToValidationErrors(err); len(ve) > 0 {
			return nil, ve
		}
		return nil, fmt.Errorf("%w: %w", ErrValidationFailed, err)
	}
	if req.Value == nil {
		return nil, ValidationErrors{*NewValidationError("value", "is required", nil)}
	}

	question, err := s.resolveQuestion(ctx, req)
	if err != nil {
		return nil, err
	}
	if err := s.validator.Question().ValidateQuestion(question); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidQuestion, err)
	}

	response := &models.QuestionResponse{
		QuestionID: question.ID,
		Value:      req.Value,
		Timestamp:  s.now().UTC(),
	}

	correct := s.evaluator.Evaluate(question, response)
	factor := s.delight.Select(question, response, req.Context)

	s.metrics.RecordEvaluation(string(question.Type), correct)
	if factor != nil {
		s.metrics.RecordDelightFactor(string(factor.Type))
	}

	if s.publisher != nil {
		event := events.NewResponseEvaluatedEvent(question, response, &req.Context, correct, factor)
		if err := s.publisher.Publish(ctx, event); err != nil {
			s.logger.Logger().Warn("Failed to publish response event",
				"question_id", question.ID,
				"error", err)
		}
	}

	return &EvaluationResult{
		QuestionID:    question.ID,
		Correct:       correct,
		DelightFactor: factor,
	}, nil
}

func (s *responseService) resolveQuestion(ctx context.Context, req *SubmitResponseRequest) (*models.Question, error) {
	if req.Question != nil {
		return req.Question, nil
	}

	question, err := s.repo.GetByID(ctx, req.QuestionID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, fmt.Errorf("%w: %s", ErrQuestionNotFound, req.QuestionID)
		}
		return nil, fmt.Errorf("%w: %w", ErrDataUnavailable, err)
	}
	return question, nil
}
