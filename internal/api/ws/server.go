// Package ws serves the browser live channel, health and metrics over HTTP.
package ws

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dtroode/cipherchat-server/internal/logger"
	"github.com/dtroode/cipherchat-server/internal/model"
	"github.com/dtroode/cipherchat-server/internal/service"
	"github.com/dtroode/cipherchat-server/internal/token"
)

const localUser = "user"

var _ model.Server = (*Server)(nil)

// TokenService resolves user ID from bearer tokens.
type TokenService interface {
	GetUserID(ctx context.Context, token string) (uuid.UUID, error)
}

// LiveService opens live delivery sessions.
type LiveService interface {
	Open(ctx context.Context, user model.User) (*service.LiveSession, error)
}

// Options tunes the HTTP server. GET /metrics is served only when Gatherer
// is set; empty AllowedOrigins accepts any origin.
type Options struct {
	AllowedOrigins []string
	Gatherer       prometheus.Gatherer
	PingPeriod     time.Duration
	WriteWait      time.Duration
	PongWait       time.Duration
}

// Server is the fiber application of the HTTP port.
type Server struct {
	app       *fiber.App
	addr      string
	live      LiveService
	tokens    TokenService
	directory model.Directory
	opts      Options
	logger    *logger.Logger
}

func NewServer(addr string, live LiveService, tokens TokenService, directory model.Directory, opts Options, logger *logger.Logger) *Server {
	if opts.PongWait <= 0 {
		opts.PongWait = 60 * time.Second
	}
	if opts.PingPeriod <= 0 || opts.PingPeriod >= opts.PongWait {
		opts.PingPeriod = opts.PongWait * 9 / 10
	}
	if opts.WriteWait <= 0 {
		opts.WriteWait = 10 * time.Second
	}

	s := &Server{
		app: fiber.New(fiber.Config{
			DisableStartupMessage: true,
			ErrorHandler:          errorHandler,
		}),
		addr:      addr,
		live:      live,
		tokens:    tokens,
		directory: directory,
		opts:      opts,
		logger:    logger,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.app.Use(recover.New())
	s.app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "${time} ${status} ${method} ${path} ${latency}\n",
	}))

	s.app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	if s.opts.Gatherer != nil {
		s.app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(s.opts.Gatherer, promhttp.HandlerOpts{})))
	}

	s.app.Use("/ws", s.upgrade)
	s.app.Get("/ws", websocket.New(s.handleConn, websocket.Config{
		Origins: s.opts.AllowedOrigins,
	}))
}

// upgrade authenticates the handshake and resolves the principal before the
// connection is upgraded.
func (s *Server) upgrade(c *fiber.Ctx) error {
	if !websocket.IsWebSocketUpgrade(c) {
		return fiber.ErrUpgradeRequired
	}

	// Browsers cannot set headers on a websocket handshake.
	raw := token.FromAuthorization(c.Get(fiber.HeaderAuthorization))
	if raw == "" {
		raw = c.Query("token")
	}
	if raw == "" {
		return fiber.NewError(fiber.StatusUnauthorized, "missing authorization token")
	}

	userID, err := s.tokens.GetUserID(c.UserContext(), raw)
	if err != nil || userID == uuid.Nil {
		return fiber.NewError(fiber.StatusUnauthorized, "invalid authorization token")
	}

	user, err := s.directory.GetUser(c.UserContext(), userID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return fiber.NewError(fiber.StatusForbidden, "forbidden")
		}
		s.logger.Error("ws: failed to resolve principal", "user_id", userID, "error", err)
		return fiber.NewError(fiber.StatusServiceUnavailable, "service unavailable")
	}

	c.Locals(localUser, user)
	return c.Next()
}

func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "internal server error"
	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
		message = e.Message
	}
	return c.Status(code).JSON(fiber.Map{"error": message})
}

// App exposes the fiber application for in-process tests.
func (s *Server) App() *fiber.App {
	return s.app
}

// Start serves on the configured address using the provided security layer.
func (s *Server) Start(securityLayer model.SecurityLayer) error {
	listener, err := securityLayer.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}
	return s.app.Listener(listener)
}

// Stop closes the listener and waits for open connections until ctx is done.
func (s *Server) Stop(ctx context.Context) error {
	return s.app.ShutdownWithContext(ctx)
}

func (s *Server) Address() string {
	return s.addr
}
