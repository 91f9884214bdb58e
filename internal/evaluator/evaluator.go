// Package evaluator decides whether a submitted response is correct.
package evaluator

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/SAP-F-2025/question-delivery-service/internal/models"
)

// AnswerTolerance is the accepted absolute distance between a numeric answer
// and the correct value, measured on the question's own scale.
const AnswerTolerance = 0.1

// floatEpsilon absorbs binary rounding so a difference of exactly
// AnswerTolerance (e.g. 1.1 vs 1.0) is still accepted.
const floatEpsilon = 1e-9

// VariantEvaluator scores a response for one question variant
type VariantEvaluator func(question *models.Question, response *models.QuestionResponse) bool

// Evaluator dispatches on question type. Types without a registered
// evaluator are always incorrect.
type Evaluator struct {
	variants map[models.QuestionType]VariantEvaluator
}

func New() *Evaluator {
	e := &Evaluator{variants: make(map[models.QuestionType]VariantEvaluator)}
	e.Register(models.QuestionTypeSlider, evaluateSlider)
	e.Register(models.QuestionTypeQuiz, evaluateQuiz)
	return e
}

func (e *Evaluator) Register(questionType models.QuestionType, fn VariantEvaluator) {
	e.variants[questionType] = fn
}

// Evaluate reports whether response answers question correctly
func (e *Evaluator) Evaluate(question *models.Question, response *models.QuestionResponse) bool {
	if question == nil || response == nil {
		return false
	}
	evaluate, ok := e.variants[question.Type]
	if !ok {
		return false
	}
	return evaluate(question, response)
}

// WithinTolerance compares two numbers using AnswerTolerance
func WithinTolerance(userValue, correctValue float64) bool {
	return math.Abs(userValue-correctValue) <= AnswerTolerance+floatEpsilon
}

func evaluateSlider(question *models.Question, response *models.QuestionResponse) bool {
	content, err := question.SliderContent()
	if err != nil || content.CorrectAnswer == nil {
		return false
	}
	userValue, ok := ParseNumber(response.Value)
	if !ok {
		return false
	}
	return WithinTolerance(userValue, *content.CorrectAnswer)
}

func evaluateQuiz(question *models.Question, response *models.QuestionResponse) bool {
	content, err := question.QuizContent()
	if err != nil || content.CorrectAnswer == nil {
		return false
	}

	correctValue, correctIsNumber := ParseNumber(*content.CorrectAnswer)
	userValue, userIsNumber := ParseNumber(response.Value)
	if correctIsNumber && userIsNumber {
		return WithinTolerance(userValue, correctValue)
	}
	if correctIsNumber {
		return false
	}

	answer, ok := response.Value.(string)
	if !ok {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(answer), strings.TrimSpace(*content.CorrectAnswer))
}

// ParseNumber converts a raw response value into a float64. Strings are
// parsed after trimming; NaN and infinities are rejected.
func ParseNumber(value interface{}) (float64, bool) {
	var f float64
	switch v := value.(type) {
	case float64:
		f = v
	case float32:
		f = float64(v)
	case int:
		f = float64(v)
	case int32:
		f = float64(v)
	case int64:
		f = float64(v)
	case json.Number:
		parsed, err := v.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
