package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/cipherchat-server/internal/model"
)

func TestScenario_TeamsAndDirectMessaging(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	t1, t2 := uuid.New(), uuid.New()
	u1 := f.user(model.RoleMember, t1)
	u2 := f.user(model.RoleMember, t1)
	u3 := f.user(model.RoleMember, t2)

	conv, err := f.conversations.GetOrCreateDirect(ctx, u1, u2.ID, "")
	require.NoError(t, err)
	assert.Equal(t, model.Retention7Days, conv.RetentionPolicy)

	_, err = f.conversations.GetOrCreateDirect(ctx, u1, u3.ID, "")
	assert.ErrorIs(t, err, model.ErrForbidden)

	m1, err := f.messages.Append(ctx, u1, conv.ID, envelope("m1", u2))
	require.NoError(t, err)
	assert.Equal(t, m1.CreatedAt.Add(7*24*time.Hour), m1.ExpiresAt)

	_, err = f.messages.List(ctx, u3, conv.ID, model.MessageQuery{})
	assert.ErrorIs(t, err, model.ErrForbidden)
}

func TestScenario_IdempotentDirectCreation(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	team := uuid.New()
	a := f.user(model.RoleMember, team)
	b := f.user(model.RoleMember, team)

	const n = 20
	ids := make([]uuid.UUID, 2*n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			c, err := f.conversations.GetOrCreateDirect(ctx, a, b.ID, "")
			assert.NoError(t, err)
			ids[2*i] = c.ID
		}(i)
		go func(i int) {
			defer wg.Done()
			c, err := f.conversations.GetOrCreateDirect(ctx, b, a.ID, "")
			assert.NoError(t, err)
			ids[2*i+1] = c.ID
		}(i)
	}
	wg.Wait()

	for _, id := range ids {
		assert.Equal(t, ids[0], id)
	}

	list, err := f.conversations.ListForUser(ctx, a)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, model.ParticipantsKey(a.ID, b.ID), *list[0].ParticipantsKey)
}

func TestScenario_TeamConversationUniqueness(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	team := uuid.New()
	member := f.user(model.RoleMember, team)
	admin := f.user(model.RoleAdmin)
	outsider := f.user(model.RoleMember, uuid.New())

	first, err := f.conversations.GetOrCreateTeam(ctx, member, team, "30d")
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		again, err := f.conversations.GetOrCreateTeam(ctx, member, team, "")
		require.NoError(t, err)
		assert.Equal(t, first.ID, again.ID)
	}

	byAdmin, err := f.conversations.GetOrCreateTeam(ctx, admin, team, "")
	require.NoError(t, err)
	assert.Equal(t, first.ID, byAdmin.ID)

	_, err = f.conversations.GetOrCreateTeam(ctx, outsider, team, "")
	assert.ErrorIs(t, err, model.ErrForbidden)
}

func TestScenario_GateSoundness(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	team := uuid.New()
	a := f.user(model.RoleMember, team)
	b := f.user(model.RoleMember, team)
	c := f.user(model.RoleMember, team)
	admin := f.user(model.RoleAdmin)

	conv, err := f.conversations.GetOrCreateDirect(ctx, a, b.ID, "")
	require.NoError(t, err)
	_, err = f.messages.Append(ctx, a, conv.ID, envelope("hello", b))
	require.NoError(t, err)

	operations := map[string]func(model.User) error{
		"append": func(u model.User) error {
			_, err := f.messages.Append(ctx, u, conv.ID, envelope("x", a))
			return err
		},
		"list": func(u model.User) error {
			_, err := f.messages.List(ctx, u, conv.ID, model.MessageQuery{})
			return err
		},
		"search": func(u model.User) error {
			_, err := f.messages.Search(ctx, u, conv.ID, model.MessageSearch{})
			return err
		},
		"export": func(u model.User) error {
			_, err := f.messages.Export(ctx, u, conv.ID, model.ExportParams{})
			return err
		},
		"participants": func(u model.User) error {
			_, err := f.conversations.ListParticipants(ctx, u, conv.ID)
			return err
		},
		"retention": func(u model.User) error {
			_, err := f.conversations.UpdateRetention(ctx, u, conv.ID, "30d")
			return err
		},
		"watch": func(u model.User) error {
			session, err := f.live.Open(ctx, u)
			require.NoError(t, err)
			defer session.Close()
			return session.Watch(ctx, conv.ID)
		},
	}

	for name, op := range operations {
		t.Run(name, func(t *testing.T) {
			assert.ErrorIs(t, op(c), model.ErrForbidden)
			assert.NoError(t, op(admin))
		})
	}

	t.Run("unknown conversation", func(t *testing.T) {
		_, err := f.messages.List(ctx, a, uuid.New(), model.MessageQuery{})
		assert.ErrorIs(t, err, model.ErrForbidden)
	})
}

func TestScenario_Retention(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	team := uuid.New()
	a := f.user(model.RoleMember, team)
	b := f.user(model.RoleMember, team)

	conv, err := f.conversations.GetOrCreateDirect(ctx, a, b.ID, "30d")
	require.NoError(t, err)

	long, err := f.messages.Append(ctx, a, conv.ID, envelope("long", b))
	require.NoError(t, err)
	assert.Equal(t, long.CreatedAt.Add(720*time.Hour), long.ExpiresAt)

	_, err = f.conversations.UpdateRetention(ctx, b, conv.ID, "7d")
	assert.ErrorIs(t, err, model.ErrForbidden)
	_, err = f.conversations.UpdateRetention(ctx, a, conv.ID, "1d")
	assert.ErrorIs(t, err, model.ErrInvalidInput)
	_, err = f.conversations.UpdateRetention(ctx, a, conv.ID, "7d")
	require.NoError(t, err)

	f.clock.Advance(time.Minute)
	short, err := f.messages.Append(ctx, a, conv.ID, envelope("short", b))
	require.NoError(t, err)
	assert.Equal(t, short.CreatedAt.Add(168*time.Hour), short.ExpiresAt)

	f.clock.Advance(7*24*time.Hour + time.Second)
	deleted, err := f.sweeper.RunOnce(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	page, err := f.messages.List(ctx, a, conv.ID, model.MessageQuery{})
	require.NoError(t, err)
	require.Len(t, page.Messages, 1)
	assert.Equal(t, long.ID, page.Messages[0].ID)
	assert.Equal(t, long.ExpiresAt, page.Messages[0].ExpiresAt)

	f.clock.Advance(30 * 24 * time.Hour)
	deleted, err = f.sweeper.RunOnce(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)
	assert.Equal(t, 0, f.messageStore.Len())
}

func TestScenario_Pagination(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	team := uuid.New()
	a := f.user(model.RoleMember, team)
	b := f.user(model.RoleMember, team)

	conv, err := f.conversations.GetOrCreateDirect(ctx, a, b.ID, "")
	require.NoError(t, err)

	const total = 250
	appended := make([]uuid.UUID, 0, total)
	for i := 0; i < total; i++ {
		// several messages share a timestamp to exercise the id tie-break
		if i%3 == 0 {
			f.clock.Advance(time.Millisecond)
		}
		m, err := f.messages.Append(ctx, a, conv.ID, envelope("p", b))
		require.NoError(t, err)
		appended = append(appended, m.ID)
	}

	var (
		got    []model.Message
		query  = model.MessageQuery{Limit: 50}
		pages  int
		seenID = map[uuid.UUID]bool{}
	)
	for {
		page, err := f.messages.List(ctx, a, conv.ID, query)
		require.NoError(t, err)
		pages++
		for _, m := range page.Messages {
			require.False(t, seenID[m.ID], "duplicate message %s", m.ID)
			seenID[m.ID] = true
		}
		got = append(got, page.Messages...)
		if page.NextCursor == nil {
			break
		}
		query.Before, query.BeforeID = &page.NextCursor.Before, &page.NextCursor.BeforeID
	}

	require.Len(t, got, total)
	assert.LessOrEqual(t, pages, 6)
	for i := 1; i < len(got); i++ {
		prev, cur := got[i-1], got[i]
		assert.False(t, cur.CreatedAt.After(prev.CreatedAt), "not newest-first at %d", i)
	}
	for _, id := range appended {
		assert.True(t, seenID[id])
	}
}

func TestScenario_PassThroughOpacity(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	team := uuid.New()
	a := f.user(model.RoleMember, team)
	b := f.user(model.RoleMember, team)

	conv, err := f.conversations.GetOrCreateDirect(ctx, a, b.ID, "")
	require.NoError(t, err)

	env := model.Envelope{
		Ciphertext: []byte{0x00, 0xff, 0x10, 0x80, 0x7f},
		IV:         []byte{0xde, 0xad, 0xbe, 0xef},
		AuthTag:    []byte{0x01, 0x00, 0x02},
		Recipients: []string{b.ID.String()},
		Metadata:   []byte(`{"attachments":[1,2],"nested":{"x":"y"}}`),
	}
	stored, err := f.messages.Append(ctx, a, conv.ID, env)
	require.NoError(t, err)

	check := func(m model.Message) {
		assert.Equal(t, env.Ciphertext, m.Ciphertext)
		assert.Equal(t, env.IV, m.IV)
		assert.Equal(t, env.AuthTag, m.AuthTag)
		assert.JSONEq(t, string(env.Metadata), string(m.Metadata))
	}

	page, err := f.messages.List(ctx, b, conv.ID, model.MessageQuery{})
	require.NoError(t, err)
	require.Len(t, page.Messages, 1)
	check(page.Messages[0])

	found, err := f.messages.Search(ctx, b, conv.ID, model.MessageSearch{SenderID: &a.ID})
	require.NoError(t, err)
	require.Len(t, found, 1)
	check(found[0])

	export, err := f.messages.Export(ctx, b, conv.ID, model.ExportParams{})
	require.NoError(t, err)
	require.Equal(t, 1, export.Count)
	check(export.Messages[0])
	assert.Equal(t, stored.ID, export.Messages[0].ID)
}

func TestScenario_FanOut(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	team := uuid.New()
	a := f.user(model.RoleMember, team)
	b := f.user(model.RoleMember, team)

	conv, err := f.conversations.GetOrCreateDirect(ctx, a, b.ID, "")
	require.NoError(t, err)

	t.Run("connected recipient receives exactly one event", func(t *testing.T) {
		session, err := f.live.Open(ctx, b)
		require.NoError(t, err)
		defer session.Close()
		require.NoError(t, session.Watch(ctx, conv.ID))

		m, err := f.messages.Append(ctx, a, conv.ID, envelope("live", b))
		require.NoError(t, err)

		select {
		case e := <-session.Events():
			assert.Equal(t, m.ID, e.MessageID)
			assert.Equal(t, conv.ID, e.ConversationID)
		case <-time.After(time.Second):
			t.Fatal("no delivery event")
		}
		select {
		case e := <-session.Events():
			t.Fatalf("unexpected second event %s", e.MessageID)
		default:
		}
	})

	t.Run("disconnected recipient reads history", func(t *testing.T) {
		session, err := f.live.Open(ctx, b)
		require.NoError(t, err)
		require.NoError(t, session.Close())

		m, err := f.messages.Append(ctx, a, conv.ID, envelope("offline", b))
		require.NoError(t, err)

		_, open := <-session.Events()
		assert.False(t, open)

		page, err := f.messages.List(ctx, b, conv.ID, model.MessageQuery{Limit: 1})
		require.NoError(t, err)
		require.Len(t, page.Messages, 1)
		assert.Equal(t, m.ID, page.Messages[0].ID)
	})

	t.Run("unauthorized recipient is not pushed to", func(t *testing.T) {
		stranger := f.user(model.RoleMember, uuid.New())
		session, err := f.live.Open(ctx, stranger)
		require.NoError(t, err)
		defer session.Close()

		_, err = f.messages.Append(ctx, a, conv.ID, envelope("leak", b, stranger))
		require.NoError(t, err)

		select {
		case e := <-session.Events():
			t.Fatalf("stranger received %s", e.MessageID)
		default:
		}
	})
}

func TestScenario_AppendIdempotency(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	team := uuid.New()
	a := f.user(model.RoleMember, team)
	b := f.user(model.RoleMember, team)

	conv, err := f.conversations.GetOrCreateDirect(ctx, a, b.ID, "")
	require.NoError(t, err)

	session, err := f.live.Open(ctx, b)
	require.NoError(t, err)
	defer session.Close()

	requestID := uuid.New()
	env := envelope("once", b)
	env.RequestID = &requestID

	first, err := f.messages.Append(ctx, a, conv.ID, env)
	require.NoError(t, err)
	f.clock.Advance(time.Second)
	second, err := f.messages.Append(ctx, a, conv.ID, env)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.CreatedAt, second.CreatedAt)
	assert.Equal(t, 1, f.messageStore.Len())
	assert.Len(t, session.Events(), 1)
}

func TestScenario_LostTeamKeepsDirectAccess(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	team := uuid.New()
	a := f.user(model.RoleMember, team)
	b := f.user(model.RoleMember, team)

	conv, err := f.conversations.GetOrCreateDirect(ctx, a, b.ID, "")
	require.NoError(t, err)

	f.directory.SetTeams(b.ID)
	b, err = f.directory.GetUser(ctx, b.ID)
	require.NoError(t, err)

	_, err = f.messages.Append(ctx, b, conv.ID, envelope("still here", a))
	assert.NoError(t, err)

	// a new direct conversation with a former teammate is no longer allowed
	other := f.user(model.RoleMember, team)
	_, err = f.conversations.GetOrCreateDirect(ctx, b, other.ID, "")
	assert.ErrorIs(t, err, model.ErrForbidden)
}
