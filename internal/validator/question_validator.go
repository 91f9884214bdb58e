package validator

import (
	"fmt"

	apperrors "github.com/SAP-F-2025/question-delivery-service/internal/errors"
	"github.com/SAP-F-2025/question-delivery-service/internal/models"
	"github.com/go-playground/validator/v10"
)

const (
	ReasonMinNotLessThanMax = "Min must be less than max"
	ReasonStepNotPositive   = "Step must be positive"
	ReasonSegmentsRequired  = "Segmented slider requires segments"
)

// VariantValidator checks the configuration of one question variant
type VariantValidator func(v *QuestionValidator, question *models.Question) error

// SliderModeValidator checks the mode-specific part of a slider configuration
type SliderModeValidator func(content *models.SliderContent) error

// RejectedQuestion is a question dropped from a batch together with the reason
type RejectedQuestion struct {
	QuestionID string
	Err        error
}

// QuestionValidator handles question-specific validation. Variants and slider
// modes are looked up in tables so new ones are added by registration.
type QuestionValidator struct {
	structValidator *validator.Validate
	variants        map[models.QuestionType]VariantValidator
	sliderModes     map[models.SliderMode]SliderModeValidator
}

// NewQuestionValidator creates a new question validator with the built-in variants
func NewQuestionValidator(structValidator *validator.Validate) *QuestionValidator {
	v := &QuestionValidator{
		structValidator: structValidator,
		variants:        make(map[models.QuestionType]VariantValidator),
		sliderModes:     make(map[models.SliderMode]SliderModeValidator),
	}

	v.RegisterVariant(models.QuestionTypeSlider, validateSliderQuestion)
	v.RegisterVariant(models.QuestionTypeQuiz, validateQuizQuestion)
	v.RegisterVariant(models.QuestionTypeText, validateTextQuestion)

	v.RegisterSliderMode(models.SliderModeContinuous, func(*models.SliderContent) error { return nil })
	v.RegisterSliderMode(models.SliderModeSegmented, validateSegmentedSlider)

	return v
}

func (v *QuestionValidator) RegisterVariant(questionType models.QuestionType, fn VariantValidator) {
	v.variants[questionType] = fn
}

func (v *QuestionValidator) RegisterSliderMode(mode models.SliderMode, fn SliderModeValidator) {
	v.sliderModes[mode] = fn
}

// ValidateConfig validates the numeric slider configuration
func (v *QuestionValidator) ValidateConfig(config models.SliderConfig) error {
	if config.Min >= config.Max {
		return apperrors.NewConfigError("config.min", ReasonMinNotLessThanMax)
	}
	if config.Step != nil && *config.Step <= 0 {
		return apperrors.NewConfigError("config.step", ReasonStepNotPositive)
	}
	return nil
}

// ValidateQuestion validates a complete question object. The first violated
// rule is returned as a *errors.ConfigError.
func (v *QuestionValidator) ValidateQuestion(question *models.Question) error {
	if question == nil {
		return apperrors.NewConfigError("", "question is required")
	}

	if v.structValidator != nil {
		if err := v.structValidator.Struct(question); err != nil {
			return apperrors.ConfigErrorFromValidation(err)
		}
	}

	validate, ok := v.variants[question.Type]
	if !ok {
		return apperrors.NewConfigError("type", fmt.Sprintf("unsupported question type: %s", question.Type))
	}
	return validate(v, question)
}

// ValidateBatch splits a fetched batch into deliverable and rejected questions
func (v *QuestionValidator) ValidateBatch(questions []*models.Question) ([]*models.Question, []RejectedQuestion) {
	valid := make([]*models.Question, 0, len(questions))
	var rejected []RejectedQuestion

	for i, question := range questions {
		if err := v.ValidateQuestion(question); err != nil {
			id := fmt.Sprintf("#%d", i+1)
			if question != nil && question.ID != "" {
				id = question.ID
			}
			rejected = append(rejected, RejectedQuestion{QuestionID: id, Err: err})
			continue
		}
		valid = append(valid, question)
	}

	return valid, rejected
}

func validateSliderQuestion(v *QuestionValidator, question *models.Question) error {
	content, err := question.SliderContent()
	if err != nil {
		return apperrors.NewConfigError("content", err.Error())
	}

	if err := v.ValidateConfig(content.Config); err != nil {
		return err
	}

	validateMode, ok := v.sliderModes[content.Mode]
	if !ok {
		return apperrors.NewConfigError("mode", fmt.Sprintf("unsupported slider mode: %q", content.Mode))
	}
	return validateMode(content)
}

func validateSegmentedSlider(content *models.SliderContent) error {
	if len(content.Segments) == 0 {
		return apperrors.NewConfigError("segments", ReasonSegmentsRequired)
	}
	return nil
}

func validateQuizQuestion(_ *QuestionValidator, question *models.Question) error {
	content, err := question.QuizContent()
	if err != nil {
		return apperrors.NewConfigError("content", err.Error())
	}

	if len(content.Options) < 2 {
		return apperrors.NewConfigError("options", "Quiz requires at least 2 options")
	}
	for i, option := range content.Options {
		if option == "" {
			return apperrors.NewConfigError("options", fmt.Sprintf("option %d cannot be empty", i+1))
		}
	}
	if content.CorrectAnswer != nil && *content.CorrectAnswer == "" {
		return apperrors.NewConfigError("correct_answer", "correct answer cannot be empty")
	}

	return nil
}

func validateTextQuestion(_ *QuestionValidator, question *models.Question) error {
	content, err := question.TextContent()
	if err != nil {
		return apperrors.NewConfigError("content", err.Error())
	}
	if content.MaxLength < 0 {
		return apperrors.NewConfigError("max_length", "max length cannot be negative")
	}
	return nil
}
