package middleware

import (
	"context"

	"google.golang.org/grpc"

	"github.com/dtroode/cipherchat-server/internal/metrics"
)

// Metrics counts finished RPCs by method and status code.
type Metrics struct {
	metrics *metrics.Metrics
}

func NewMetrics(m *metrics.Metrics) *Metrics {
	return &Metrics{metrics: m}
}

func (m *Metrics) HandleGRPC(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	resp, err := handler(ctx, req)
	m.metrics.RPC(info.FullMethod, codeOf(err).String())
	return resp, err
}

func (m *Metrics) HandleGRPCStream(srv interface{}, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
	err := handler(srv, ss)
	m.metrics.RPC(info.FullMethod, codeOf(err).String())
	return err
}
