package services

import (
	"context"
	"fmt"
	"time"

	"github.com/SAP-F-2025/question-delivery-service/internal/cache"
	apperrors "github.com/SAP-F-2025/question-delivery-service/internal/errors"
	"github.com/SAP-F-2025/question-delivery-service/internal/events"
	"github.com/SAP-F-2025/question-delivery-service/internal/metrics"
	"github.com/SAP-F-2025/question-delivery-service/internal/models"
	"github.com/SAP-F-2025/question-delivery-service/internal/repositories"
	"github.com/SAP-F-2025/question-delivery-service/internal/retrieval"
	"github.com/SAP-F-2025/question-delivery-service/internal/validator"
)

const batchKeyPrefix = "question_batch:"

// DefaultBatchTTL is how long a validated batch is served before reloading
const DefaultBatchTTL = 5 * time.Minute

type cachedBatch struct {
	Questions []*models.Question
	Rejected  int
}

type questionBatchService struct {
	repo      repositories.QuestionRepository
	shared    cache.CacheService
	local     *retrieval.Cache
	validator *validator.Validator
	publisher events.EventPublisher
	metrics   metrics.MetricsCollector
	logger    *ServiceLogger
	ttl       time.Duration
}

func NewQuestionBatchService(deps *Dependencies) QuestionBatchService {
	ttl := deps.BatchTTL
	if ttl == 0 {
		ttl = DefaultBatchTTL
	}
	return &questionBatchService{
		repo:      deps.Questions,
		shared:    deps.SharedCache,
		local:     deps.LocalCache,
		validator: deps.Validator,
		publisher: deps.Publisher,
		metrics:   deps.Metrics,
		logger:    NewServiceLogger(deps.Logger, LogConfig{Service: "question-delivery", Component: "batches"}),
		ttl:       ttl,
	}
}

func (s *questionBatchService) GetBatch(ctx context.Context, category models.QuestionCategory) (resp *BatchResponse, err error) {
	start := time.Now()
	defer func() {
		s.logger.LogOperation(ctx, "get_batch", string(category), "question_batch", time.Since(start), err)
	}()

	if err := s.validator.Var(string(category), "required,question_category"); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidCategory, category)
	}

	batch, err := retrieval.GetCached(ctx, s.local, batchKeyPrefix+string(category), s.ttl,
		func(ctx context.Context) (*cachedBatch, error) {
			return s.loadBatch(ctx, category)
		})
	if err != nil {
		return nil, err
	}

	return &BatchResponse{
		Category:  category,
		Questions: batch.Questions,
		Rejected:  batch.Rejected,
	}, nil
}

// loadBatch reads the shared Redis tier first and falls back to the store.
// Either way the batch is validated before it is cached locally.
func (s *questionBatchService) loadBatch(ctx context.Context, category models.QuestionCategory) (*cachedBatch, error) {
	key := batchKeyPrefix + string(category)

	questions, ok := s.readShared(ctx, key)
	if !ok {
		var err error
		questions, err = s.repo.GetByCategory(ctx, category)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrDataUnavailable, err)
		}
		s.writeShared(ctx, key, questions)
	}

	valid, rejected := s.validator.Question().ValidateBatch(questions)
	for _, r := range rejected {
		s.logger.LogRejectedQuestion(ctx, string(category), r.QuestionID, r.Err)
	}
	if len(rejected) > 0 {
		s.metrics.RecordRejectedQuestions(string(category), len(rejected))
	}

	if s.publisher != nil {
		event := events.NewBatchDeliveredEvent(category, len(valid), len(rejected))
		if err := s.publisher.Publish(ctx, event); err != nil {
			s.logger.Logger().Warn("Failed to publish batch event", "category", category, "error", err)
		}
	}

	return &cachedBatch{Questions: valid, Rejected: len(rejected)}, nil
}

func (s *questionBatchService) readShared(ctx context.Context, key string) ([]*models.Question, bool) {
	if s.shared == nil {
		return nil, false
	}
	var questions []*models.Question
	if err := s.shared.Get(ctx, key, &questions); err != nil {
		if !cache.IsCacheMiss(err) {
			s.logger.Logger().Warn("Shared batch cache unavailable", "key", key, "error", err)
		}
		return nil, false
	}
	return questions, true
}

func (s *questionBatchService) writeShared(ctx context.Context, key string, questions []*models.Question) {
	if s.shared == nil {
		return
	}
	if err := s.shared.Set(ctx, key, questions, s.ttl); err != nil {
		s.logger.Logger().Warn("Failed to store batch in shared cache", "key", key, "error", err)
	}
}

// ValidateQuestion reports the first violated rule of question, if any
func (s *questionBatchService) ValidateQuestion(ctx context.Context, question *models.Question) *ValidationResult {
	err := s.validator.Question().ValidateQuestion(question)
	if err == nil {
		return &ValidationResult{Valid: true}
	}

	result := &ValidationResult{Reason: err.Error()}
	if ce, ok := apperrors.AsConfigError(err); ok {
		result.Field = ce.Field
	}
	return result
}

func (s *questionBatchService) CreateQuestion(ctx context.Context, question *models.Question) (created *models.Question, err error) {
	start := time.Now()
	defer func() {
		id := ""
		if question != nil {
			id = question.ID
		}
		s.logger.LogOperation(ctx, "create_question", id, "question", time.Since(start), err)
	}()

	if err := s.validator.Question().ValidateQuestion(question); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidQuestion, err)
	}

	if err := s.repo.Create(ctx, question); err != nil {
		if repositories.IsDuplicateError(err) {
			return nil, fmt.Errorf("%w: %s", ErrQuestionExists, question.ID)
		}
		return nil, fmt.Errorf("%w: %w", ErrDataUnavailable, err)
	}

	// shared tier first so a reload on this instance cannot pick up the old batch
	if s.shared != nil {
		if err := s.shared.DeletePattern(ctx, batchKeyPrefix+"*"); err != nil {
			s.logger.Logger().Warn("Failed to drop shared batches", "error", err)
		}
	}
	s.local.Delete(batchKeyPrefix + string(question.Category))

	return question, nil
}
