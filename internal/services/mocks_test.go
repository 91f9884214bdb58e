package services

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"time"

	"github.com/SAP-F-2025/question-delivery-service/internal/events"
	"github.com/SAP-F-2025/question-delivery-service/internal/models"
	"github.com/stretchr/testify/mock"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// MockQuestionRepository is a mock implementation of QuestionRepository
type MockQuestionRepository struct {
	mock.Mock
}

func (m *MockQuestionRepository) Create(ctx context.Context, question *models.Question) error {
	args := m.Called(ctx, question)
	return args.Error(0)
}

func (m *MockQuestionRepository) GetByID(ctx context.Context, id string) (*models.Question, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Question), args.Error(1)
}

func (m *MockQuestionRepository) GetByCategory(ctx context.Context, category models.QuestionCategory) ([]*models.Question, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Question), args.Error(1)
}

// MockCacheService is a mock implementation of cache.CacheService. Get
// copies the configured value into dest through JSON.
type MockCacheService struct {
	mock.Mock
}

func (m *MockCacheService) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCacheService) Get(ctx context.Context, key string, dest interface{}) error {
	args := m.Called(ctx, key, dest)
	if value := args.Get(0); value != nil {
		data, _ := json.Marshal(value)
		_ = json.Unmarshal(data, dest)
	}
	return args.Error(1)
}

func (m *MockCacheService) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCacheService) DeletePattern(ctx context.Context, pattern string) error {
	args := m.Called(ctx, pattern)
	return args.Error(0)
}

type MockKnownUserDirectory struct {
	mock.Mock
}

func (m *MockKnownUserDirectory) FindKnownUser(ctx context.Context, email string) (*models.KnownUserRecord, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.KnownUserRecord), args.Error(1)
}

// MockEventPublisher is a mock implementation of events.EventPublisher
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(ctx context.Context, event *events.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockEventPublisher) Close() error {
	return nil
}

func newSliderQuestion(id string, category models.QuestionCategory, correct float64) *models.Question {
	q := &models.Question{ID: id, Text: "Where do you land?", Category: category, Type: models.QuestionTypeSlider}
	_ = q.SetContent(models.SliderContent{
		Mode:          models.SliderModeContinuous,
		Config:        models.SliderConfig{Min: 0, Max: 10},
		CorrectAnswer: &correct,
	})
	return q
}

func newQuizQuestion(id string, options []string, correct string) *models.Question {
	q := &models.Question{ID: id, Text: "Pick one", Category: models.CategoryGeneral, Type: models.QuestionTypeQuiz}
	_ = q.SetContent(models.QuizContent{Options: options, CorrectAnswer: &correct})
	return q
}

func newBrokenSlider(id string) *models.Question {
	q := &models.Question{ID: id, Text: "Broken", Category: models.CategorySkills, Type: models.QuestionTypeSlider}
	_ = q.SetContent(models.SliderContent{
		Mode:   models.SliderModeContinuous,
		Config: models.SliderConfig{Min: 10, Max: 0},
	})
	return q
}

type MockMetrics struct {
	mock.Mock
}

func (m *MockMetrics) RecordFetchAttempt(outcome string) { m.Called(outcome) }
func (m *MockMetrics) RecordCacheLookup(hit bool)        { m.Called(hit) }
func (m *MockMetrics) RecordEvaluation(questionType string, correct bool) {
	m.Called(questionType, correct)
}
func (m *MockMetrics) RecordDelightFactor(factorType string) { m.Called(factorType) }
func (m *MockMetrics) RecordRejectedQuestions(category string, count int) {
	m.Called(category, count)
}
