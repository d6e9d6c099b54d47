package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	grpcctx "github.com/dtroode/cipherchat-server/internal/api/grpc/context"
	pb "github.com/dtroode/cipherchat-server/internal/api/grpc/messagingpb"
	"github.com/dtroode/cipherchat-server/internal/api/grpc/router"
	grpcServer "github.com/dtroode/cipherchat-server/internal/api/grpc/server"
	"github.com/dtroode/cipherchat-server/internal/api/ws"
	"github.com/dtroode/cipherchat-server/internal/config"
	"github.com/dtroode/cipherchat-server/internal/delivery"
	"github.com/dtroode/cipherchat-server/internal/logger"
	"github.com/dtroode/cipherchat-server/internal/metrics"
	"github.com/dtroode/cipherchat-server/internal/model"
	"github.com/dtroode/cipherchat-server/internal/repository/memory"
	"github.com/dtroode/cipherchat-server/internal/repository/postgres"
	"github.com/dtroode/cipherchat-server/internal/server"
	"github.com/dtroode/cipherchat-server/internal/service"
	storage "github.com/dtroode/cipherchat-server/internal/storage/minio"
	"github.com/dtroode/cipherchat-server/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

type stores struct {
	conversations model.ConversationStore
	messages      model.MessageStore
	keys          model.KeyStore
	directory     model.Directory
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel, logger.WithFormat(cfg.LogFormat))

	var (
		registry *prometheus.Registry
		m        *metrics.Metrics
	)
	if cfg.MetricsEnabled {
		registry = prometheus.NewRegistry()
		registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		m = metrics.New(registry)
	}

	st, closeStores, err := openStores(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}
	defer closeStores()

	bus, err := openBus(cfg, logger)
	if err != nil {
		logger.Fatal("failed to initialize delivery bus", "error", err)
	}
	defer bus.Close()

	var messageOpts []service.MessagesOption
	if cfg.Storage.Enabled {
		archive, err := openArchive(ctx, cfg)
		if err != nil {
			logger.Fatal("failed to initialize export archive", "error", err)
		}
		messageOpts = append(messageOpts, service.WithArchive(archive, cfg.Storage.ExportLinkTTL))
	}

	conversationService := service.NewConversations(st.conversations, st.keys, st.directory, m, logger)
	messageService := service.NewMessages(conversationService, st.conversations, st.messages, st.directory, delivery.NewFanout(bus), m, logger, messageOpts...)
	keyService := service.NewKeys(st.keys, st.directory, logger)
	liveService := service.NewLive(conversationService, delivery.NewHub(bus, m, logger))

	tokenManager := token.NewJWT(cfg.JWT.Secret, token.WithIssuer(cfg.JWT.Issuer))
	tokenService := service.NewTokenService(tokenManager, logger)
	ctxMgr := grpcctx.NewManager()

	r := router.New(router.Services{
		Keys:          keyService,
		Conversations: conversationService,
		Messages:      messageService,
		Live:          liveService,
		Directory:     st.directory,
	}, tokenService, ctxMgr, m, logger)
	grpcSrv := grpcServer.NewGRPCServer(r.Register(), fmt.Sprintf(":%s", cfg.GRPC.Port))

	wsOpts := ws.Options{AllowedOrigins: cfg.HTTP.AllowedOrigins}
	if registry != nil {
		wsOpts.Gatherer = registry
	}
	httpSrv := ws.NewServer(fmt.Sprintf(":%s", cfg.HTTP.Port), liveService, tokenService, st.directory, wsOpts, logger)

	sweeper := service.NewRetentionSweeper(st.messages, service.SweepConfig{
		Interval:   cfg.Retention.SweepInterval,
		BatchSize:  cfg.Retention.BatchSize,
		BatchDelay: cfg.Retention.BatchDelay,
	}, m, logger)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		sweeper.Run(ctx)
	}()

	servers := []struct {
		server model.Server
		layer  model.SecurityLayer
	}{
		{grpcSrv, server.NewSecurityLayer(cfg.GRPC.EnableHTTPS, cfg.GRPC.CertFileName, cfg.GRPC.PrivateKeyFileName, server.ProtoHTTP2)},
		{httpSrv, server.NewSecurityLayer(cfg.GRPC.EnableHTTPS, cfg.GRPC.CertFileName, cfg.GRPC.PrivateKeyFileName, server.ProtoHTTP1)},
	}
	for _, s := range servers {
		wg.Add(1)
		go func(s model.Server, sl model.SecurityLayer) {
			defer wg.Done()
			logger.Info("Starting server on", "address", s.Address())
			if err := s.Start(sl); err != nil {
				logger.Error("failed to start server", "error", err, "address", s.Address())
				stop()
			}
		}(s.server, s.layer)
	}

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	r.Health().SetServingStatus(pb.Messaging_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_NOT_SERVING)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	for _, s := range servers {
		if err := s.server.Stop(shutdownCtx); err != nil {
			logger.Error("error during server shutdown", "error", err, "address", s.server.Address())
		}
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

func openStores(ctx context.Context, cfg *config.Config, logger *logger.Logger) (stores, func(), error) {
	if cfg.Database.Driver == config.DriverMemory {
		directory, err := memory.LoadDirectory(strings.NewReader(cfg.DirectorySeed))
		if err != nil {
			return stores{}, nil, err
		}
		logger.Warn("using in-memory storage, data is lost on restart")
		return stores{
			conversations: memory.NewConversationRepository(),
			messages:      memory.NewMessageRepository(),
			keys:          memory.NewKeyRepository(),
			directory:     directory,
		}, func() {}, nil
	}

	db, err := postgres.NewConnection(ctx, cfg.Database.DSN, postgres.WithRetryMaxElapsed(cfg.Database.RetryMaxElapsed))
	if err != nil {
		return stores{}, nil, err
	}

	return stores{
		conversations: postgres.NewConversationRepository(db),
		messages:      postgres.NewMessageRepository(db),
		keys:          postgres.NewKeyRepository(db),
		directory:     postgres.NewDirectoryRepository(db),
	}, func() { _ = db.Close() }, nil
}

func openBus(cfg *config.Config, logger *logger.Logger) (delivery.Bus, error) {
	if cfg.NATS.URL == "" {
		return delivery.NewLocalBus(), nil
	}
	return delivery.NewNATSBus(cfg.NATS.URL, cfg.NATS.SubjectPrefix, logger)
}

func openArchive(ctx context.Context, cfg *config.Config) (*storage.Client, error) {
	minioClient, err := minio.New(cfg.Storage.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.Storage.AccessKey, cfg.Storage.SecretKey, ""),
		Secure: cfg.Storage.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}
	return storage.NewClient(ctx, minioClient, cfg.Storage.Bucket, storage.WithExpiry(service.ExportPrefix+"/", cfg.Storage.ExportExpiryDays))
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
