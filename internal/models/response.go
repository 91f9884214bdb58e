package models

import "time"

type Experience string

const (
	ExperienceQuiz       Experience = "QUIZ"
	ExperienceOnboarding Experience = "ONBOARDING"
	ExperienceExplore    Experience = "EXPLORE"
)

// QuestionResponse is a single submission. Value is a number, a string or a
// structured payload depending on the question variant.
type QuestionResponse struct {
	QuestionID string      `json:"question_id" validate:"required"`
	Value      interface{} `json:"value"`
	Timestamp  time.Time   `json:"timestamp"`
}

// QuestionContext describes how a question is being delivered
type QuestionContext struct {
	Experience Experience      `json:"experience" validate:"omitempty,experience"`
	SessionID  string          `json:"session_id,omitempty"`
	Flags      map[string]bool `json:"flags,omitempty"`
}

func (c QuestionContext) IsQuiz() bool {
	return c.Experience == ExperienceQuiz
}
