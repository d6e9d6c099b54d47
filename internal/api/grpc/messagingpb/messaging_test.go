package messagingpb_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/reflect/protoregistry"
	"google.golang.org/protobuf/types/known/timestamppb"

	pb "github.com/dtroode/cipherchat-server/internal/api/grpc/messagingpb"
)

func TestFileDescriptor(t *testing.T) {
	fd, err := protoregistry.GlobalFiles.FindFileByPath("messaging/v1/messaging.proto")
	require.NoError(t, err)
	assert.Equal(t, protoreflect.FullName("messaging.v1"), fd.Package())

	svc := fd.Services().ByName("Messaging")
	require.NotNil(t, svc)
	assert.Equal(t, pb.Messaging_ServiceDesc.ServiceName, string(svc.FullName()))
	assert.Equal(t, 12, svc.Methods().Len())

	subscribe := svc.Methods().ByName("Subscribe")
	require.NotNil(t, subscribe)
	assert.True(t, subscribe.IsStreamingServer())
	assert.False(t, subscribe.IsStreamingClient())
	assert.Equal(t, protoreflect.FullName("messaging.v1.Event"), subscribe.Output().FullName())

	expires := (&pb.Message{}).ProtoReflect().Descriptor().Fields().ByName("expires_at")
	require.NotNil(t, expires)
	assert.Equal(t, protoreflect.FullName("google.protobuf.Timestamp"), expires.Message().FullName())
}

func TestMessage_WireRoundTrip(t *testing.T) {
	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	in := &pb.AppendMessageRequest{
		ConversationId: "c9a3e1f4-6f0b-4f59-9a55-1d9d7c7a2b10",
		RequestId:      "0b8f6c57-2f7e-4a8e-9f5c-56c1d1b5d0a2",
		Envelope: &pb.Envelope{
			Ciphertext:   []byte{0x00, 0xff, 0x80, 0x0a},
			Iv:           []byte("iv"),
			AuthTag:      []byte("tag"),
			Recipients:   []string{"a", "b"},
			DerivedKeyId: "dk-1",
			Metadata:     `{"kind":"text"}`,
		},
	}

	raw, err := proto.Marshal(in)
	require.NoError(t, err)

	out := &pb.AppendMessageRequest{}
	require.NoError(t, proto.Unmarshal(raw, out))
	assert.True(t, proto.Equal(in, out))
	assert.Equal(t, []byte{0x00, 0xff, 0x80, 0x0a}, out.GetEnvelope().GetCiphertext())

	msg := &pb.Message{Id: "m", CreatedAt: timestamppb.New(created)}
	raw, err = proto.Marshal(msg)
	require.NoError(t, err)
	decoded := &pb.Message{}
	require.NoError(t, proto.Unmarshal(raw, decoded))
	assert.Equal(t, created, decoded.GetCreatedAt().AsTime())
	assert.Nil(t, decoded.GetExpiresAt())
}

func TestGetters_NilReceiver(t *testing.T) {
	var conv *pb.Conversation
	assert.Empty(t, conv.GetId())
	assert.Nil(t, conv.GetMetadata())
	assert.Empty(t, conv.GetMetadata().GetOtherParticipant())
}
