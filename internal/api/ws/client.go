package ws

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/contrib/websocket"
	"github.com/google/uuid"

	"github.com/dtroode/cipherchat-server/internal/logger"
	"github.com/dtroode/cipherchat-server/internal/model"
	"github.com/dtroode/cipherchat-server/internal/service"
)

const (
	maxFrameSize   = 4 << 10
	outboundBuffer = 16
)

// Client actions.
const (
	ActionWatch   = "watch"
	ActionUnwatch = "unwatch"
)

// Server events besides model.DeliveryEventName.
const (
	EventWatching  = "watching"
	EventUnwatched = "unwatched"
	EventError     = "error"
)

type clientFrame struct {
	Action         string `json:"action"`
	ConversationID string `json:"conversationId"`
}

type serverFrame struct {
	Event          string               `json:"event"`
	Data           *model.DeliveryEvent `json:"data,omitempty"`
	ConversationID string               `json:"conversationId,omitempty"`
	Message        string               `json:"message,omitempty"`
}

// client pumps one websocket connection. Only the writer touches the
// connection for writes.
type client struct {
	conn     *websocket.Conn
	session  *service.LiveSession
	outbound chan serverFrame
	done     chan struct{}
	server   *Server
	logger   *logger.Logger
}

func (s *Server) handleConn(conn *websocket.Conn) {
	user, ok := conn.Locals(localUser).(model.User)
	if !ok {
		_ = conn.Close()
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	session, err := s.live.Open(ctx, user)
	if err != nil {
		s.logger.Error("ws: failed to open live session", "user_id", user.ID, "error", err)
		_ = conn.WriteJSON(serverFrame{Event: EventError, Message: "service unavailable"})
		_ = conn.Close()
		return
	}

	c := &client{
		conn:     conn,
		session:  session,
		outbound: make(chan serverFrame, outboundBuffer),
		done:     make(chan struct{}),
		server:   s,
		logger:   s.logger.With("user_id", user.ID),
	}

	c.logger.Debug("ws: client connected")

	writerDone := make(chan struct{})
	go func() {
		c.write()
		// Unblocks the reader when the writer fails first.
		_ = conn.Close()
		close(writerDone)
	}()

	c.read(ctx)

	close(c.done)
	<-writerDone
	_ = session.Close()

	c.logger.Debug("ws: client disconnected")
}

func (c *client) read(ctx context.Context) {
	c.conn.SetReadLimit(maxFrameSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(c.server.opts.PongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(c.server.opts.PongWait))
	})

	for {
		var frame clientFrame
		if err := c.conn.ReadJSON(&frame); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.logger.Debug("ws: read failed", "error", err)
			}
			return
		}
		_ = c.conn.SetReadDeadline(time.Now().Add(c.server.opts.PongWait))

		c.handle(ctx, frame)
	}
}

func (c *client) handle(ctx context.Context, frame clientFrame) {
	conversationID, err := uuid.Parse(frame.ConversationID)
	if err != nil || conversationID == uuid.Nil {
		c.send(serverFrame{Event: EventError, Message: "invalid conversationId"})
		return
	}

	switch frame.Action {
	case ActionWatch:
		if err := c.session.Watch(ctx, conversationID); err != nil {
			c.send(serverFrame{Event: EventError, ConversationID: frame.ConversationID, Message: errorMessage(err)})
			return
		}
		c.send(serverFrame{Event: EventWatching, ConversationID: conversationID.String()})
	case ActionUnwatch:
		if err := c.session.Unwatch(conversationID); err != nil {
			c.send(serverFrame{Event: EventError, ConversationID: frame.ConversationID, Message: errorMessage(err)})
			return
		}
		c.send(serverFrame{Event: EventUnwatched, ConversationID: conversationID.String()})
	default:
		c.send(serverFrame{Event: EventError, Message: "unknown action"})
	}
}

// send queues a control frame, dropping it if the writer is backed up.
func (c *client) send(frame serverFrame) {
	select {
	case c.outbound <- frame:
	default:
		c.logger.Warn("ws: outbound buffer full, frame dropped", "event", frame.Event)
	}
}

func (c *client) write() {
	ticker := time.NewTicker(c.server.opts.PingPeriod)
	defer ticker.Stop()

	events := c.session.Events()
	for {
		select {
		case event, ok := <-events:
			if !ok {
				return
			}
			if err := c.writeJSON(serverFrame{Event: model.DeliveryEventName, Data: &event}); err != nil {
				return
			}
		case frame := <-c.outbound:
			if err := c.writeJSON(frame); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(c.server.opts.WriteWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-c.done:
			_ = c.conn.SetWriteDeadline(time.Now().Add(c.server.opts.WriteWait))
			_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		}
	}
}

func (c *client) writeJSON(frame serverFrame) error {
	_ = c.conn.SetWriteDeadline(time.Now().Add(c.server.opts.WriteWait))
	if err := c.conn.WriteJSON(frame); err != nil {
		c.logger.Debug("ws: write failed", "error", err)
		return err
	}
	return nil
}

func errorMessage(err error) string {
	switch {
	case errors.Is(err, model.ErrForbidden):
		return "forbidden"
	case errors.Is(err, model.ErrInvalidInput):
		return "invalid input"
	default:
		return "service unavailable"
	}
}
