// Package delight selects the feedback shown to a user after answering.
package delight

import (
	"github.com/SAP-F-2025/question-delivery-service/internal/models"
)

// AnyExperience matches every experience that has no rule of its own
const AnyExperience models.Experience = "*"

// Rule builds a delight factor for a matched (variant, experience) pair. A
// rule may return nil to suppress feedback.
type Rule func(question *models.Question, response *models.QuestionResponse, ctx models.QuestionContext) *models.DelightFactor

type ruleKey struct {
	questionType models.QuestionType
	experience   models.Experience
}

// Engine looks rules up by question variant, then by experience. It holds no
// per-call state, so one Engine can serve concurrent callers once rules are
// registered.
type Engine struct {
	rules map[ruleKey]Rule
}

// NewEngine creates an engine with the default slider and quiz rules
func NewEngine() *Engine {
	e := &Engine{rules: make(map[ruleKey]Rule)}
	for _, questionType := range []models.QuestionType{models.QuestionTypeSlider, models.QuestionTypeQuiz} {
		e.Register(questionType, models.ExperienceQuiz, celebrationRule)
		e.Register(questionType, AnyExperience, peerStatsRule)
	}
	return e
}

// Register adds or replaces the rule for a variant and experience.
// Use AnyExperience for the variant's fallback rule.
func (e *Engine) Register(questionType models.QuestionType, experience models.Experience, rule Rule) {
	e.rules[ruleKey{questionType: questionType, experience: experience}] = rule
}

// Select returns the delight factor for the answer, or nil when no rule applies
func (e *Engine) Select(question *models.Question, response *models.QuestionResponse, ctx models.QuestionContext) *models.DelightFactor {
	if question == nil {
		return nil
	}

	rule, ok := e.rules[ruleKey{questionType: question.Type, experience: ctx.Experience}]
	if !ok {
		rule, ok = e.rules[ruleKey{questionType: question.Type, experience: AnyExperience}]
	}
	if !ok {
		return nil
	}
	return rule(question, response, ctx)
}
