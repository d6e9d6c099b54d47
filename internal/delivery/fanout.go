package delivery

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/dtroode/cipherchat-server/internal/model"
)

var _ model.Publisher = (*Fanout)(nil)

// Fanout publishes a delivery event to the conversation channel and to the
// personal channel of each recipient.
type Fanout struct {
	bus Bus
}

func NewFanout(bus Bus) *Fanout {
	return &Fanout{bus: bus}
}

// Publish sends the event once per distinct channel. Recipients must already
// be filtered to users allowed to read the conversation.
func (f *Fanout) Publish(ctx context.Context, event model.DeliveryEvent, recipients []uuid.UUID) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to encode delivery event: %w", err)
	}

	var errs []error
	for _, channel := range Channels(event.ConversationID, recipients) {
		if err := f.bus.Publish(ctx, channel, data); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Channels returns the deduplicated target channels of an event.
func Channels(conversationID uuid.UUID, recipients []uuid.UUID) []string {
	channels := make([]string, 0, len(recipients)+1)
	channels = append(channels, ConversationChannel(conversationID))

	seen := make(map[uuid.UUID]struct{}, len(recipients))
	for _, id := range recipients {
		if id == uuid.Nil {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		channels = append(channels, UserChannel(id))
	}
	return channels
}
