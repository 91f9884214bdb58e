package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/SAP-F-2025/question-delivery-service/internal/models"
	"github.com/SAP-F-2025/question-delivery-service/internal/repositories"
	"gorm.io/gorm"
)

type QuestionPostgreSQL struct {
	db *gorm.DB
}

func NewQuestionPostgreSQL(db *gorm.DB) repositories.QuestionRepository {
	return &QuestionPostgreSQL{db: db}
}

// AutoMigrate creates or updates the questions table
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.Question{})
}

func (q *QuestionPostgreSQL) Create(ctx context.Context, question *models.Question) error {
	if err := q.db.WithContext(ctx).Create(question).Error; err != nil {
		return createError(question.ID, err)
	}
	return nil
}

// createError needs the connection opened with TranslateError so unique
// violations arrive as gorm.ErrDuplicatedKey
func createError(id string, err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return repositories.DuplicateError("question", id)
	}
	return fmt.Errorf("failed to create question: %w", err)
}

func (q *QuestionPostgreSQL) GetByID(ctx context.Context, id string) (*models.Question, error) {
	var question models.Question
	if err := q.db.WithContext(ctx).Where("id = ?", id).First(&question).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repositories.NotFoundError("question", id)
		}
		return nil, fmt.Errorf("failed to get question: %w", err)
	}
	return &question, nil
}

func (q *QuestionPostgreSQL) GetByCategory(ctx context.Context, category models.QuestionCategory) ([]*models.Question, error) {
	var questions []*models.Question
	if err := q.db.WithContext(ctx).
		Where("category = ?", category).
		Order("id ASC").
		Find(&questions).Error; err != nil {
		return nil, fmt.Errorf("failed to get questions by category: %w", err)
	}
	return questions, nil
}
