package events

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/SAP-F-2025/question-delivery-service/internal/models"
	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func sampleEvent() *Event {
	answer := 5.0
	q := &models.Question{ID: "q-1", Type: models.QuestionTypeSlider, Category: models.CategorySkills}
	_ = q.SetContent(models.SliderContent{CorrectAnswer: &answer})
	r := &models.QuestionResponse{QuestionID: "q-1", Value: 5.0, Timestamp: time.Unix(1700000000, 0).UTC()}
	ctx := &models.QuestionContext{Experience: models.ExperienceQuiz, SessionID: "s-9"}
	delight := &models.DelightFactor{ID: "confetti-q-1", Type: models.DelightAnimation}

	return NewResponseEvaluatedEvent(q, r, ctx, true, delight)
}

func TestNewResponseEvaluatedEvent(t *testing.T) {
	event := sampleEvent()

	assert.NotEmpty(t, event.ID)
	assert.Equal(t, EventResponseEvaluated, event.Type)
	assert.Equal(t, "question-delivery-service", event.Source)

	data, ok := event.Data.(ResponseEvaluatedEvent)
	require.True(t, ok)
	assert.Equal(t, "q-1", data.QuestionID)
	assert.Equal(t, models.ExperienceQuiz, data.Experience)
	assert.Equal(t, "s-9", data.SessionID)
	assert.True(t, data.Correct)
	assert.Equal(t, "ANIMATION", data.DelightType)
}

func TestGenerateEventID_Unique(t *testing.T) {
	assert.NotEqual(t, GenerateEventID(), GenerateEventID())
}

func TestKafkaEventPublisher_Publish(t *testing.T) {
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	defer pubSub.Close()

	messages, err := pubSub.Subscribe(context.Background(), "question-events")
	require.NoError(t, err)

	publisher := newKafkaEventPublisher(pubSub, "question-events", discardLogger())
	event := sampleEvent()
	require.NoError(t, publisher.Publish(context.Background(), event))

	select {
	case msg := <-messages:
		msg.Ack()
		assert.Equal(t, event.ID, msg.UUID)
		assert.Equal(t, "response.evaluated", msg.Metadata.Get("event_type"))
		assert.Equal(t, "question-delivery-service", msg.Metadata.Get("source"))

		var decoded map[string]interface{}
		require.NoError(t, json.Unmarshal(msg.Payload, &decoded))
		assert.Equal(t, "response.evaluated", decoded["type"])
	case <-time.After(time.Second):
		t.Fatal("event was not delivered")
	}
}

func TestMockEventPublisher(t *testing.T) {
	publisher := NewMockEventPublisher(discardLogger())

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = publisher.Publish(context.Background(), sampleEvent())
		}()
	}
	wg.Wait()

	assert.Len(t, publisher.GetPublishedEvents(), 10)

	publisher.ClearEvents()
	assert.Empty(t, publisher.GetPublishedEvents())
	assert.NoError(t, publisher.Close())
}
