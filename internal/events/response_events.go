package events

import (
	"time"

	"github.com/SAP-F-2025/question-delivery-service/internal/models"
	"github.com/google/uuid"
)

// EventType represents the kinds of events the service emits
type EventType string

const (
	EventResponseEvaluated EventType = "response.evaluated"
	EventBatchDelivered    EventType = "question_batch.delivered"
)

const (
	eventSource  = "question-delivery-service"
	eventVersion = "1.0"
)

// Event is the envelope for every published event
type Event struct {
	ID        string                 `json:"id"`
	Type      EventType              `json:"type"`
	Timestamp time.Time              `json:"timestamp"`
	Source    string                 `json:"source"`
	Version   string                 `json:"version"`
	Data      interface{}            `json:"data"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
}

type ResponseEvaluatedEvent struct {
	QuestionID   string                  `json:"question_id"`
	QuestionType models.QuestionType     `json:"question_type"`
	Category     models.QuestionCategory `json:"category"`
	Experience   models.Experience       `json:"experience,omitempty"`
	SessionID    string                  `json:"session_id,omitempty"`
	Correct      bool                    `json:"correct"`
	DelightType  string                  `json:"delight_type,omitempty"`
	AnsweredAt   time.Time               `json:"answered_at"`
}

type BatchDeliveredEvent struct {
	Category models.QuestionCategory `json:"category"`
	Count    int                     `json:"count"`
	Rejected int                     `json:"rejected"`
}

func newEvent(eventType EventType, data interface{}) *Event {
	return &Event{
		ID:        GenerateEventID(),
		Type:      eventType,
		Timestamp: time.Now().UTC(),
		Source:    eventSource,
		Version:   eventVersion,
		Data:      data,
	}
}

func NewResponseEvaluatedEvent(q *models.Question, r *models.QuestionResponse, ctx *models.QuestionContext, correct bool, delight *models.DelightFactor) *Event {
	payload := ResponseEvaluatedEvent{
		QuestionID:   q.ID,
		QuestionType: q.Type,
		Category:     q.Category,
		Correct:      correct,
		AnsweredAt:   r.Timestamp,
	}
	if ctx != nil {
		payload.Experience = ctx.Experience
		payload.SessionID = ctx.SessionID
	}
	if delight != nil {
		payload.DelightType = string(delight.Type)
	}
	return newEvent(EventResponseEvaluated, payload)
}

func NewBatchDeliveredEvent(category models.QuestionCategory, count, rejected int) *Event {
	return newEvent(EventBatchDelivered, BatchDeliveredEvent{
		Category: category,
		Count:    count,
		Rejected: rejected,
	})
}

func GenerateEventID() string {
	return uuid.NewString()
}
