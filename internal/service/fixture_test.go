package service

import (
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/cipherchat-server/internal/delivery"
	"github.com/dtroode/cipherchat-server/internal/model"
	"github.com/dtroode/cipherchat-server/internal/repository/memory"
	"github.com/dtroode/cipherchat-server/internal/testutil"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// fixture wires every service to in-memory stores and a local bus.
type fixture struct {
	clock         *fakeClock
	directory     *memory.Directory
	messageStore  *memory.MessageRepository
	hub           *delivery.Hub
	keys          *Keys
	conversations *Conversations
	messages      *Messages
	live          *Live
	sweeper       *RetentionSweeper
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	log := testutil.MakeNoopLogger()
	clock := newFakeClock()
	directory := memory.NewDirectory()
	conversationStore := memory.NewConversationRepository()
	messageStore := memory.NewMessageRepository()
	keyStore := memory.NewKeyRepository()
	bus := delivery.NewLocalBus()
	t.Cleanup(func() { _ = bus.Close() })
	hub := delivery.NewHub(bus, nil, log)

	keys := NewKeys(keyStore, directory, log)
	keys.clock = clock.Now
	conversations := NewConversations(conversationStore, keyStore, directory, nil, log)
	conversations.clock = clock.Now
	messages := NewMessages(conversations, conversationStore, messageStore, directory, delivery.NewFanout(bus), nil, log)
	messages.clock = clock.Now
	sweeper := NewRetentionSweeper(messageStore, SweepConfig{BatchSize: 10}, nil, log)
	sweeper.clock = clock.Now

	return &fixture{
		clock:         clock,
		directory:     directory,
		messageStore:  messageStore,
		hub:           hub,
		keys:          keys,
		conversations: conversations,
		messages:      messages,
		live:          NewLive(conversations, hub),
		sweeper:       sweeper,
	}
}

func (f *fixture) user(role model.Role, teams ...uuid.UUID) model.User {
	u := model.User{ID: uuid.New(), Role: role, TeamIDs: teams, Name: "user"}
	f.directory.PutUser(u)
	return u
}

func envelope(payload string, recipients ...model.User) model.Envelope {
	ids := make([]string, 0, len(recipients))
	for _, r := range recipients {
		ids = append(ids, r.ID.String())
	}
	return model.Envelope{
		Ciphertext: []byte(payload),
		IV:         []byte("iv-" + payload),
		AuthTag:    []byte("tag-" + payload),
		Recipients: ids,
	}
}
