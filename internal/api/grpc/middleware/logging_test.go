package middleware

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dtroode/cipherchat-server/internal/metrics"
	logtest "github.com/dtroode/cipherchat-server/internal/testutil"
)

func TestLogging_HandleGRPC(t *testing.T) {
	t.Parallel()

	lg := NewLogging(logtest.MakeNoopLogger())

	tests := []struct {
		name     string
		handler  grpc.UnaryHandler
		wantCode codes.Code
	}{
		{
			name: "success path",
			handler: func(ctx context.Context, req interface{}) (interface{}, error) {
				time.Sleep(10 * time.Millisecond)
				return "ok", nil
			},
			wantCode: codes.OK,
		},
		{
			name: "grpc error propagates",
			handler: func(ctx context.Context, req interface{}) (interface{}, error) {
				return nil, status.Error(codes.InvalidArgument, "bad input")
			},
			wantCode: codes.InvalidArgument,
		},
		{
			name: "non-grpc error becomes Internal",
			handler: func(ctx context.Context, req interface{}) (interface{}, error) {
				return nil, errors.New("boom")
			},
			wantCode: codes.Internal,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			info := &grpc.UnaryServerInfo{FullMethod: "/svc/Method"}
			resp, err := lg.HandleGRPC(context.Background(), struct{}{}, info, tt.handler)

			if tt.wantCode == codes.OK {
				assert.NoError(t, err)
				assert.Equal(t, "ok", resp)
				return
			}

			assert.Equal(t, tt.wantCode, codeOf(err))
		})
	}
}

func TestLogging_HandleGRPCStream(t *testing.T) {
	t.Parallel()

	lg := NewLogging(logtest.MakeNoopLogger())
	info := &grpc.StreamServerInfo{FullMethod: "/svc/Stream", IsServerStream: true}

	called := false
	err := lg.HandleGRPCStream(nil, nil, info, func(srv interface{}, ss grpc.ServerStream) error {
		called = true
		return status.Error(codes.Unavailable, "gone")
	})

	assert.True(t, called)
	assert.Equal(t, codes.Unavailable, codeOf(err))
}

func TestMetrics_CountsByCode(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	mw := NewMetrics(metrics.New(reg))
	info := &grpc.UnaryServerInfo{FullMethod: "/svc/Method"}

	_, _ = mw.HandleGRPC(context.Background(), nil, info, func(ctx context.Context, req interface{}) (interface{}, error) {
		return nil, nil
	})
	_, _ = mw.HandleGRPC(context.Background(), nil, info, func(ctx context.Context, req interface{}) (interface{}, error) {
		return nil, status.Error(codes.PermissionDenied, "forbidden")
	})

	series, err := testutil.GatherAndCount(reg, "cipherchat_rpc_requests_total")
	assert.NoError(t, err)
	assert.Equal(t, 2, series)
}
