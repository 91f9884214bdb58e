package validator

import (
	"testing"

	apperrors "github.com/SAP-F-2025/question-delivery-service/internal/errors"
	"github.com/SAP-F-2025/question-delivery-service/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(f float64) *float64 { return &f }

func stringPtr(s string) *string { return &s }

func sliderQuestion(t *testing.T, content models.SliderContent) *models.Question {
	t.Helper()
	q := &models.Question{
		ID:       "q-slider",
		Text:     "How much do you enjoy group work?",
		Category: models.CategoryPersonality,
		Type:     models.QuestionTypeSlider,
	}
	require.NoError(t, q.SetContent(content))
	return q
}

func TestQuestionValidator_ValidateConfig(t *testing.T) {
	v := New().Question()

	tests := []struct {
		name   string
		config models.SliderConfig
		reason string
	}{
		{name: "valid without step", config: models.SliderConfig{Min: 0, Max: 10}},
		{name: "valid with step", config: models.SliderConfig{Min: 1, Max: 5, Step: floatPtr(0.5)}},
		{name: "min equals max", config: models.SliderConfig{Min: 5, Max: 5}, reason: ReasonMinNotLessThanMax},
		{name: "min greater than max", config: models.SliderConfig{Min: 10, Max: 0}, reason: ReasonMinNotLessThanMax},
		{name: "zero step", config: models.SliderConfig{Min: 0, Max: 10, Step: floatPtr(0)}, reason: ReasonStepNotPositive},
		{name: "negative step", config: models.SliderConfig{Min: 0, Max: 10, Step: floatPtr(-1)}, reason: ReasonStepNotPositive},
		{name: "min checked before step", config: models.SliderConfig{Min: 3, Max: 1, Step: floatPtr(-1)}, reason: ReasonMinNotLessThanMax},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateConfig(tt.config)
			if tt.reason == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.EqualError(t, err, tt.reason)

			var ce *apperrors.ConfigError
			assert.ErrorAs(t, err, &ce)
		})
	}
}

func TestQuestionValidator_ValidateQuestion_Slider(t *testing.T) {
	v := New().Question()

	tests := []struct {
		name    string
		content models.SliderContent
		reason  string
	}{
		{
			name:    "continuous slider",
			content: models.SliderContent{Mode: models.SliderModeContinuous, Config: models.SliderConfig{Min: 0, Max: 100}},
		},
		{
			name: "segmented slider with segments",
			content: models.SliderContent{
				Mode:     models.SliderModeSegmented,
				Config:   models.SliderConfig{Min: 1, Max: 3, Step: floatPtr(1)},
				Segments: []models.SliderSegment{{Value: 1, Label: "Low"}},
			},
		},
		{
			name:    "segmented slider without segments",
			content: models.SliderContent{Mode: models.SliderModeSegmented, Config: models.SliderConfig{Min: 1, Max: 3}},
			reason:  ReasonSegmentsRequired,
		},
		{
			name: "segmented slider with empty segments",
			content: models.SliderContent{
				Mode:     models.SliderModeSegmented,
				Config:   models.SliderConfig{Min: 1, Max: 3},
				Segments: []models.SliderSegment{},
			},
			reason: ReasonSegmentsRequired,
		},
		{
			name:    "config checked before segments",
			content: models.SliderContent{Mode: models.SliderModeSegmented, Config: models.SliderConfig{Min: 3, Max: 3}},
			reason:  ReasonMinNotLessThanMax,
		},
		{
			name:    "bad step on continuous slider",
			content: models.SliderContent{Mode: models.SliderModeContinuous, Config: models.SliderConfig{Min: 0, Max: 1, Step: floatPtr(0)}},
			reason:  ReasonStepNotPositive,
		},
		{
			name:    "unknown mode",
			content: models.SliderContent{Mode: "radial", Config: models.SliderConfig{Min: 0, Max: 1}},
			reason:  `unsupported slider mode: "radial"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateQuestion(sliderQuestion(t, tt.content))
			if tt.reason == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tt.reason)
		})
	}
}

func TestQuestionValidator_ValidateQuestion_BaseFields(t *testing.T) {
	v := New().Question()

	t.Run("missing text", func(t *testing.T) {
		q := sliderQuestion(t, models.SliderContent{Mode: models.SliderModeContinuous, Config: models.SliderConfig{Min: 0, Max: 1}})
		q.Text = ""

		err := v.ValidateQuestion(q)
		ce, ok := apperrors.AsConfigError(err)
		require.True(t, ok)
		assert.Equal(t, "text", ce.Field)
		assert.Equal(t, "text is required", ce.Reason)
	})

	t.Run("unknown category", func(t *testing.T) {
		q := sliderQuestion(t, models.SliderContent{Mode: models.SliderModeContinuous, Config: models.SliderConfig{Min: 0, Max: 1}})
		q.Category = "ASTROLOGY"

		err := v.ValidateQuestion(q)
		ce, ok := apperrors.AsConfigError(err)
		require.True(t, ok)
		assert.Equal(t, "category", ce.Field)
	})

	t.Run("unknown type", func(t *testing.T) {
		q := &models.Question{ID: "q1", Text: "?", Category: models.CategoryGeneral, Type: "MATRIX"}

		err := v.ValidateQuestion(q)
		require.Error(t, err)
		_, ok := apperrors.AsConfigError(err)
		assert.True(t, ok)
	})

	t.Run("nil question", func(t *testing.T) {
		assert.Error(t, v.ValidateQuestion(nil))
	})
}

func TestQuestionValidator_ValidateQuestion_Quiz(t *testing.T) {
	v := New().Question()

	build := func(content models.QuizContent) *models.Question {
		q := &models.Question{ID: "q-quiz", Text: "2 + 2?", Category: models.CategorySkills, Type: models.QuestionTypeQuiz}
		require.NoError(t, q.SetContent(content))
		return q
	}

	assert.NoError(t, v.ValidateQuestion(build(models.QuizContent{Options: []string{"3", "4"}, CorrectAnswer: stringPtr("4")})))
	assert.NoError(t, v.ValidateQuestion(build(models.QuizContent{Options: []string{"yes", "no"}})))
	assert.EqualError(t, v.ValidateQuestion(build(models.QuizContent{Options: []string{"only"}})), "Quiz requires at least 2 options")
	assert.EqualError(t, v.ValidateQuestion(build(models.QuizContent{Options: []string{"a", ""}})), "option 2 cannot be empty")
	assert.EqualError(t, v.ValidateQuestion(build(models.QuizContent{Options: []string{"a", "b"}, CorrectAnswer: stringPtr("")})), "correct answer cannot be empty")
}

func TestQuestionValidator_RegisterVariant(t *testing.T) {
	v := New().Question()
	called := false
	v.RegisterVariant("RANKING", func(_ *QuestionValidator, q *models.Question) error {
		called = true
		return nil
	})

	q := &models.Question{ID: "q-rank", Text: "Rank these", Category: models.CategoryGoals, Type: "RANKING"}

	// RANKING is not a known type tag, so struct validation rejects it first
	assert.Error(t, v.ValidateQuestion(q))
	assert.False(t, called)

	v.structValidator = nil
	assert.NoError(t, v.ValidateQuestion(q))
	assert.True(t, called)
}

func TestQuestionValidator_ValidateBatch(t *testing.T) {
	v := New().Question()

	good := sliderQuestion(t, models.SliderContent{Mode: models.SliderModeContinuous, Config: models.SliderConfig{Min: 0, Max: 10}})
	bad := sliderQuestion(t, models.SliderContent{Mode: models.SliderModeSegmented, Config: models.SliderConfig{Min: 0, Max: 10}})
	bad.ID = "q-bad"

	valid, rejected := v.ValidateBatch([]*models.Question{good, bad, nil})

	require.Len(t, valid, 1)
	assert.Equal(t, good.ID, valid[0].ID)

	require.Len(t, rejected, 2)
	assert.Equal(t, "q-bad", rejected[0].QuestionID)
	assert.EqualError(t, rejected[0].Err, ReasonSegmentsRequired)
	assert.Equal(t, "#3", rejected[1].QuestionID)
}
