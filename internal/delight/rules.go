package delight

import (
	"fmt"

	"github.com/SAP-F-2025/question-delivery-service/internal/models"
)

const (
	confettiAnimation  = "confetti"
	fireworksAnimation = "fireworks"
)

var celebrationDurations = map[models.QuestionType]int{
	models.QuestionTypeSlider: 2000,
	models.QuestionTypeQuiz:   2500,
}

var celebrationAnimations = map[models.QuestionType]string{
	models.QuestionTypeSlider: confettiAnimation,
	models.QuestionTypeQuiz:   fireworksAnimation,
}

// peerStat is an illustrative aggregate shown during onboarding. Values are
// fixed per category rather than sampled.
type peerStat struct {
	percent float64
	phrase  string
}

var peerStats = map[models.QuestionCategory]peerStat{
	models.CategoryPersonality:   {percent: 68, phrase: "answered this personality question the same way"},
	models.CategoryLearningStyle: {percent: 74, phrase: "share a similar learning style"},
	models.CategoryInterests:     {percent: 59, phrase: "picked an answer close to yours"},
	models.CategorySkills:        {percent: 45, phrase: "rated this skill like you did"},
	models.CategoryGoals:         {percent: 81, phrase: "have a goal in common with you"},
}

var defaultPeerStat = peerStat{percent: 62, phrase: "of students answered similarly"}

func celebrationRule(question *models.Question, _ *models.QuestionResponse, _ models.QuestionContext) *models.DelightFactor {
	name, ok := celebrationAnimations[question.Type]
	if !ok {
		name = confettiAnimation
	}
	duration, ok := celebrationDurations[question.Type]
	if !ok {
		duration = 2000
	}

	return &models.DelightFactor{
		ID:      fmt.Sprintf("%s-%s", name, question.ID),
		Type:    models.DelightAnimation,
		Timing:  models.TimingPostAnswer,
		Trigger: models.TriggerOnCorrect,
		Content: models.DelightContent{
			Animation: &models.AnimationContent{Name: name, DurationMs: duration},
		},
	}
}

func peerStatsRule(question *models.Question, _ *models.QuestionResponse, _ models.QuestionContext) *models.DelightFactor {
	value := defaultPeerStat.percent
	message := fmt.Sprintf("%.0f%% %s", value, defaultPeerStat.phrase)
	if stat, ok := peerStats[question.Category]; ok {
		value = stat.percent
		message = fmt.Sprintf("%.0f%% of students %s", value, stat.phrase)
	}

	return &models.DelightFactor{
		ID:      fmt.Sprintf("stats-%s", question.ID),
		Type:    models.DelightStats,
		Timing:  models.TimingPostAnswer,
		Trigger: models.TriggerImmediate,
		Content: models.DelightContent{
			Stats: &models.StatsContent{Message: message, Value: value},
		},
	}
}
