package events

import (
	"context"
	"encoding/json"
	"time"

	"foodtrace/contexts/identity-access/directory-service/ports"
	"foodtrace/internal/platform/messaging"
)

// TopicParticipantRegistered carries directory change notifications to the
// refresh worker.
const TopicParticipantRegistered = "directory.participant_registered"

// Publisher bridges the directory's event port onto the in-process bus.
type Publisher struct {
	Bus *messaging.Bus
}

func (p Publisher) PublishParticipantRegistered(ctx context.Context, event ports.ParticipantRegisteredEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	occurred := event.OccurredAt
	if occurred.IsZero() {
		occurred = time.Now().UTC()
	}
	return p.Bus.Publish(ctx, TopicParticipantRegistered, messaging.Event{
		EventID:    event.EventID,
		Type:       "participant_registered",
		Payload:    payload,
		OccurredAt: occurred,
	})
}
