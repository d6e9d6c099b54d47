package router

import (
	"context"
	"strings"

	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/auth"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/selector"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"

	"github.com/dtroode/cipherchat-server/internal/api/grpc/handler"
	"github.com/dtroode/cipherchat-server/internal/api/grpc/messagingpb"
	"github.com/dtroode/cipherchat-server/internal/api/grpc/middleware"
	"github.com/dtroode/cipherchat-server/internal/logger"
	"github.com/dtroode/cipherchat-server/internal/metrics"
	"github.com/dtroode/cipherchat-server/internal/model"
)

// Router wires the messaging handler, interceptors and the health service
// into a gRPC server.
type Router struct {
	keys           handler.KeyService
	conversations  handler.ConversationService
	messages       handler.MessageService
	live           handler.LiveService
	directory      model.Directory
	tokenService   middleware.TokenService
	contextManager model.ContextManager
	metrics        *metrics.Metrics
	logger         *logger.Logger
	health         *health.Server
}

// Services groups the business services served over gRPC.
type Services struct {
	Keys          handler.KeyService
	Conversations handler.ConversationService
	Messages      handler.MessageService
	Live          handler.LiveService
	Directory     model.Directory
}

// New creates new gRPC Router instance.
func New(
	services Services,
	tokenService middleware.TokenService,
	contextManager model.ContextManager,
	metrics *metrics.Metrics,
	logger *logger.Logger,
) *Router {
	return &Router{
		keys:           services.Keys,
		conversations:  services.Conversations,
		messages:       services.Messages,
		live:           services.Live,
		directory:      services.Directory,
		tokenService:   tokenService,
		contextManager: contextManager,
		metrics:        metrics,
		logger:         logger,
		health:         health.NewServer(),
	}
}

// authSkip selects the calls that need a bearer token.
func authSkip(_ context.Context, c interceptors.CallMeta) bool {
	return !strings.HasPrefix(c.FullMethod(), "/grpc.health.v1.Health/") &&
		!strings.HasPrefix(c.FullMethod(), "/grpc.reflection.")
}

// Register registers all gRPC services and middleware.
//
// Returns the configured gRPC server instance.
func (r *Router) Register() *grpc.Server {
	logging := middleware.NewLogging(r.logger)
	rpcMetrics := middleware.NewMetrics(r.metrics)
	authenticate := middleware.NewAuthenticate(r.tokenService, r.contextManager, r.logger)
	recoverOpt := recovery.WithRecoveryHandler(func(p any) error {
		r.logger.Error("panic in gRPC handler", "panic", p)
		return status.Error(codes.Internal, "internal server error")
	})

	s := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			recovery.UnaryServerInterceptor(recoverOpt),
			logging.HandleGRPC,
			rpcMetrics.HandleGRPC,
			selector.UnaryServerInterceptor(
				auth.UnaryServerInterceptor(authenticate.AuthFunc),
				selector.MatchFunc(authSkip),
			),
		),
		grpc.ChainStreamInterceptor(
			recovery.StreamServerInterceptor(recoverOpt),
			logging.HandleGRPCStream,
			rpcMetrics.HandleGRPCStream,
			selector.StreamServerInterceptor(
				auth.StreamServerInterceptor(authenticate.AuthFunc),
				selector.MatchFunc(authSkip),
			),
		),
	)
	r.registerMessagingRoutes(s)
	r.registerHealth(s)
	reflection.Register(s)

	return s
}

// Health exposes the health server so the owner can flip serving status on shutdown.
func (r *Router) Health() *health.Server {
	return r.health
}

func (r *Router) registerMessagingRoutes(server *grpc.Server) {
	messagingHandler := handler.NewMessaging(r.keys, r.conversations, r.messages, r.live, r.directory, r.contextManager, r.logger)
	messagingpb.RegisterMessagingServer(server, messagingHandler)
}

func (r *Router) registerHealth(server *grpc.Server) {
	healthpb.RegisterHealthServer(server, r.health)
	r.health.SetServingStatus(messagingpb.Messaging_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_SERVING)
}
