package services

import (
	"log/slog"
	"time"

	"github.com/SAP-F-2025/question-delivery-service/internal/cache"
	"github.com/SAP-F-2025/question-delivery-service/internal/delight"
	"github.com/SAP-F-2025/question-delivery-service/internal/evaluator"
	"github.com/SAP-F-2025/question-delivery-service/internal/events"
	"github.com/SAP-F-2025/question-delivery-service/internal/metrics"
	"github.com/SAP-F-2025/question-delivery-service/internal/repositories"
	"github.com/SAP-F-2025/question-delivery-service/internal/retrieval"
	"github.com/SAP-F-2025/question-delivery-service/internal/validator"
)

// Dependencies is everything the services need. Optional fields may be nil:
// SharedCache, Publisher and Directory.
type Dependencies struct {
	Questions   repositories.QuestionRepository
	SharedCache cache.CacheService
	LocalCache  *retrieval.Cache
	Directory   KnownUserDirectory
	Validator   *validator.Validator
	Evaluator   *evaluator.Evaluator
	Delight     *delight.Engine
	Publisher   events.EventPublisher
	Metrics     metrics.MetricsCollector
	Logger      *slog.Logger
	BatchTTL    time.Duration
}

type ServiceManager struct {
	Batches    QuestionBatchService
	Responses  ResponseService
	KnownUsers KnownUserService
}

// NewServiceManager fills unset collaborators with defaults and builds
// every service
func NewServiceManager(deps Dependencies) *ServiceManager {
	if deps.Validator == nil {
		deps.Validator = validator.New()
	}
	if deps.Evaluator == nil {
		deps.Evaluator = evaluator.New()
	}
	if deps.Delight == nil {
		deps.Delight = delight.NewEngine()
	}
	if deps.Metrics == nil {
		deps.Metrics = metrics.Noop()
	}
	if deps.LocalCache == nil {
		deps.LocalCache = retrieval.NewCache(retrieval.WithCacheMetrics(deps.Metrics))
	}
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}

	return &ServiceManager{
		Batches:    NewQuestionBatchService(&deps),
		Responses:  NewResponseService(&deps),
		KnownUsers: NewKnownUserService(&deps),
	}
}
