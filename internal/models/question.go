package models

import (
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/datatypes"
)

type QuestionType string

const (
	QuestionTypeSlider QuestionType = "SLIDER"
	QuestionTypeQuiz   QuestionType = "QUIZ"
	QuestionTypeText   QuestionType = "TEXT"
)

type QuestionCategory string

const (
	CategoryPersonality   QuestionCategory = "PERSONALITY"
	CategoryLearningStyle QuestionCategory = "LEARNING_STYLE"
	CategoryInterests     QuestionCategory = "INTERESTS"
	CategorySkills        QuestionCategory = "SKILLS"
	CategoryGoals         QuestionCategory = "GOALS"
	CategoryGeneral       QuestionCategory = "GENERAL"
)

// QuestionTypes lists every variant the service knows how to deliver
var QuestionTypes = []QuestionType{
	QuestionTypeSlider,
	QuestionTypeQuiz,
	QuestionTypeText,
}

var QuestionCategories = []QuestionCategory{
	CategoryPersonality,
	CategoryLearningStyle,
	CategoryInterests,
	CategorySkills,
	CategoryGoals,
	CategoryGeneral,
}

type SliderMode string

const (
	SliderModeContinuous SliderMode = "continuous"
	SliderModeSegmented  SliderMode = "segmented"
)

// Question is the shared shape of every variant. Variant configuration lives
// in Content and is decoded with SliderContent, QuizContent or TextContent.
type Question struct {
	ID       string           `json:"id" gorm:"primaryKey;size:64" validate:"required"`
	Text     string           `json:"text" gorm:"type:text;not null" validate:"required"`
	Category QuestionCategory `json:"category" gorm:"size:50;index;not null" validate:"required,question_category"`
	Type     QuestionType     `json:"type" gorm:"size:20;not null" validate:"required,question_type"`
	Content  datatypes.JSON   `json:"content" gorm:"type:jsonb"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Question) TableName() string {
	return "questions"
}

type SliderConfig struct {
	Min    float64           `json:"min"`
	Max    float64           `json:"max"`
	Step   *float64          `json:"step,omitempty"`
	Labels map[string]string `json:"labels,omitempty"`
}

type SliderSegment struct {
	Value float64 `json:"value"`
	Label string  `json:"label"`
}

type SliderContent struct {
	Mode          SliderMode      `json:"mode"`
	Config        SliderConfig    `json:"config"`
	Segments      []SliderSegment `json:"segments,omitempty"`
	CorrectAnswer *float64        `json:"correct_answer,omitempty"`
}

type QuizContent struct {
	Options       []string `json:"options"`
	CorrectAnswer *string  `json:"correct_answer,omitempty"`
}

type TextContent struct {
	Placeholder string `json:"placeholder,omitempty"`
	MaxLength   int    `json:"max_length,omitempty"`
}

// SliderContent decodes the slider configuration of q
func (q *Question) SliderContent() (*SliderContent, error) {
	var content SliderContent
	if err := q.decodeContent(QuestionTypeSlider, &content); err != nil {
		return nil, err
	}
	return &content, nil
}

func (q *Question) QuizContent() (*QuizContent, error) {
	var content QuizContent
	if err := q.decodeContent(QuestionTypeQuiz, &content); err != nil {
		return nil, err
	}
	return &content, nil
}

func (q *Question) TextContent() (*TextContent, error) {
	var content TextContent
	if err := q.decodeContent(QuestionTypeText, &content); err != nil {
		return nil, err
	}
	return &content, nil
}

func (q *Question) decodeContent(want QuestionType, dest interface{}) error {
	if q.Type != want {
		return fmt.Errorf("question %s is %s, not %s", q.ID, q.Type, want)
	}
	if len(q.Content) == 0 {
		return nil
	}
	if err := json.Unmarshal(q.Content, dest); err != nil {
		return fmt.Errorf("invalid %s content: %w", want, err)
	}
	return nil
}

// SetContent encodes a variant configuration into q.Content
func (q *Question) SetContent(content interface{}) error {
	data, err := json.Marshal(content)
	if err != nil {
		return fmt.Errorf("failed to marshal content: %w", err)
	}
	q.Content = datatypes.JSON(data)
	return nil
}
