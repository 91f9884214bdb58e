package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SAP-F-2025/question-delivery-service/internal/utils"
)

// ServiceLogger provides structured logging for service layer operations
type ServiceLogger struct {
	logger *slog.Logger
}

type LogConfig struct {
	Service   string
	Component string
}

func NewServiceLogger(logger *slog.Logger, config LogConfig) *ServiceLogger {
	return &ServiceLogger{
		logger: logger.With("service", config.Service, "component", config.Component),
	}
}

// LogOperation logs the outcome of a service call. The level follows the
// error kind: validation failures warn, misses are info, everything else
// is an error.
func (l *ServiceLogger) LogOperation(ctx context.Context, operation, resourceID, resourceType string, duration time.Duration, err error) {
	level := slog.LevelInfo
	status := "success"

	if err != nil {
		switch {
		case IsValidation(err):
			level = slog.LevelWarn
			status = "validation_error"
		case IsNotFound(err):
			status = "not_found"
		case IsConflict(err):
			level = slog.LevelWarn
			status = "conflict"
		case IsUnavailable(err):
			level = slog.LevelError
			status = "unavailable"
		default:
			level = slog.LevelError
			status = "error"
		}
	}

	attrs := []slog.Attr{
		slog.String("operation", operation),
		slog.String("resource_id", resourceID),
		slog.String("resource_type", resourceType),
		slog.String("status", status),
		slog.Duration("duration", duration),
	}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
		if ve, ok := err.(ValidationErrors); ok {
			attrs = append(attrs, slog.Int("validation_errors_count", len(ve)))
		}
	}
	if requestID := utils.RequestIDFromContext(ctx); requestID != "" {
		attrs = append(attrs, slog.String("request_id", requestID))
	}

	l.logger.LogAttrs(ctx, level, fmt.Sprintf("%s operation %s", operation, status), attrs...)
}

// LogRejectedQuestion records a question dropped from a batch
func (l *ServiceLogger) LogRejectedQuestion(ctx context.Context, category, questionID string, err error) {
	l.logger.LogAttrs(ctx, slog.LevelWarn, "Question rejected from batch",
		slog.String("category", category),
		slog.String("question_id", questionID),
		slog.String("reason", err.Error()),
	)
}

func (l *ServiceLogger) Logger() *slog.Logger {
	return l.logger
}
