package services

import (
	"context"
	"fmt"
	"time"

	"github.com/SAP-F-2025/question-delivery-service/internal/models"
	"github.com/SAP-F-2025/question-delivery-service/internal/validator"
)

type knownUserService struct {
	directory KnownUserDirectory
	validator *validator.Validator
	logger    *ServiceLogger
}

func NewKnownUserService(deps *Dependencies) KnownUserService {
	return &knownUserService{
		directory: deps.Directory,
		validator: deps.Validator,
		logger:    NewServiceLogger(deps.Logger, LogConfig{Service: "question-delivery", Component: "known-users"}),
	}
}

func (s *knownUserService) FindByEmail(ctx context.Context, email string) (record *models.KnownUserRecord, err error) {
	start := time.Now()
	defer func() {
		s.logger.LogOperation(ctx, "find_known_user", email, "known_user", time.Since(start), err)
	}()

	if err := s.validator.Var(email, "required,email"); err != nil {
		return nil, fmt.Errorf("%w: invalid email", ErrBadRequest)
	}
	if s.directory == nil {
		return nil, fmt.Errorf("%w: known-user directory not configured", ErrDataUnavailable)
	}

	record, err = s.directory.FindKnownUser(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDataUnavailable, err)
	}
	if record == nil {
		return nil, ErrKnownUserNotFound
	}
	return record, nil
}
