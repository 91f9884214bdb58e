package models

type DelightFactorType string

const (
	DelightAnimation DelightFactorType = "ANIMATION"
	DelightStats     DelightFactorType = "STATS"
)

type DelightTiming string

const (
	TimingPostAnswer DelightTiming = "POST_ANSWER"
)

type DelightTrigger string

const (
	TriggerOnCorrect DelightTrigger = "ON_CORRECT"
	TriggerImmediate DelightTrigger = "IMMEDIATE"
)

// DelightFactor is post-answer feedback for the client to render. Trigger is
// advisory: ON_CORRECT means the client shows it only when the answer was
// evaluated as correct.
type DelightFactor struct {
	ID      string            `json:"id"`
	Type    DelightFactorType `json:"type"`
	Timing  DelightTiming     `json:"timing"`
	Trigger DelightTrigger    `json:"trigger"`
	Content DelightContent    `json:"content"`
}

type DelightContent struct {
	Animation *AnimationContent `json:"animation,omitempty"`
	Stats     *StatsContent     `json:"stats,omitempty"`
}

type AnimationContent struct {
	Name       string `json:"name"`
	DurationMs int    `json:"duration_ms"`
}

type StatsContent struct {
	Message string  `json:"message"`
	Value   float64 `json:"value"`
}
