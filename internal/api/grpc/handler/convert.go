package handler

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	pb "github.com/dtroode/cipherchat-server/internal/api/grpc/messagingpb"
	"github.com/dtroode/cipherchat-server/internal/model"
)

const emptyMetadata = "{}"

func parseID(field, raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil || id == uuid.Nil {
		return uuid.Nil, status.Errorf(codes.InvalidArgument, "invalid %s", field)
	}
	return id, nil
}

func parseIDs(field string, raw []string) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(raw))
	for _, r := range raw {
		id, err := parseID(field, r)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func toKey(k model.DeviceKey) *pb.Key {
	return &pb.Key{
		UserId:        k.UserID.String(),
		DeviceId:      k.DeviceID,
		PublicKey:     k.PublicKey,
		Algorithm:     k.Algorithm,
		Version:       int32(k.Version),
		LastRotatedAt: timestamppb.New(k.LastRotatedAt),
		CreatedAt:     timestamppb.New(k.CreatedAt),
		UpdatedAt:     timestamppb.New(k.UpdatedAt),
	}
}

// toConversation renders c for viewer; otherParticipant is viewer relative.
func toConversation(c model.Conversation, viewer uuid.UUID) *pb.Conversation {
	out := &pb.Conversation{
		Id:                c.ID.String(),
		Type:              string(c.Type),
		CreatedBy:         c.CreatedBy.String(),
		RetentionPolicy:   string(c.RetentionPolicy),
		EncryptionVersion: int32(c.EncryptionVersion),
		LastMessageAt:     optionalTimestamp(c.LastMessageAt),
		CreatedAt:         timestamppb.New(c.CreatedAt),
		UpdatedAt:         timestamppb.New(c.UpdatedAt),
		Metadata:          &pb.ConversationMetadata{},
	}
	for _, id := range c.Participants {
		out.Participants = append(out.Participants, id.String())
	}
	if c.TeamID != nil {
		out.TeamId = c.TeamID.String()
	}
	if other, ok := c.OtherParticipant(viewer); ok {
		out.Metadata.OtherParticipant = other.String()
	}
	return out
}

func toParticipant(p model.Participant) *pb.Participant {
	out := &pb.Participant{
		UserId:       p.User.ID.String(),
		Name:         p.User.Name,
		Email:        p.User.Email,
		Role:         string(p.User.Role),
		AvatarUrl:    p.User.AvatarURL,
		Algorithm:    p.Algorithm,
		KeyUpdatedAt: optionalTimestamp(p.KeyUpdatedAt),
	}
	if p.PublicKey != nil {
		out.PublicKey = *p.PublicKey
	}
	return out
}

func toMessage(m model.Message) *pb.Message {
	out := &pb.Message{
		Id:              m.ID.String(),
		ConversationId:  m.ConversationID.String(),
		SenderId:        m.SenderID.String(),
		RecipientIds:    make([]string, 0, len(m.RecipientIDs)),
		Ciphertext:      m.Ciphertext,
		Iv:              m.IV,
		AuthTag:         m.AuthTag,
		Metadata:        metadataString(m.Metadata),
		RetentionPolicy: string(m.RetentionPolicy),
		ExpiresAt:       timestamppb.New(m.ExpiresAt),
		CreatedAt:       timestamppb.New(m.CreatedAt),
	}
	for _, id := range m.RecipientIDs {
		out.RecipientIds = append(out.RecipientIds, id.String())
	}
	if m.DerivedKeyID != nil {
		out.DerivedKeyId = *m.DerivedKeyID
	}
	if m.RequestID != nil {
		out.RequestId = m.RequestID.String()
	}
	return out
}

func toMessages(messages []model.Message) []*pb.Message {
	out := make([]*pb.Message, 0, len(messages))
	for _, m := range messages {
		out = append(out, toMessage(m))
	}
	return out
}

func toEnvelope(e *pb.Envelope) model.Envelope {
	if e == nil {
		return model.Envelope{}
	}
	out := model.Envelope{
		Ciphertext: e.GetCiphertext(),
		IV:         e.GetIv(),
		AuthTag:    e.GetAuthTag(),
		Recipients: e.GetRecipients(),
	}
	if e.GetDerivedKeyId() != "" {
		derivedKeyID := e.GetDerivedKeyId()
		out.DerivedKeyID = &derivedKeyID
	}
	if e.GetMetadata() != "" {
		out.Metadata = json.RawMessage(e.GetMetadata())
	}
	return out
}

func toEvent(e model.DeliveryEvent) *pb.Event {
	return &pb.Event{
		Event:          model.DeliveryEventName,
		ConversationId: e.ConversationID.String(),
		MessageId:      e.MessageID.String(),
		SenderId:       e.SenderID.String(),
		Ciphertext:     e.Ciphertext,
		Iv:             e.IV,
		AuthTag:        e.AuthTag,
		Metadata:       metadataString(e.Metadata),
		CreatedAt:      timestamppb.New(e.CreatedAt),
	}
}

func metadataString(raw json.RawMessage) string {
	if len(raw) == 0 {
		return emptyMetadata
	}
	return string(raw)
}

func optionalTimestamp(t *time.Time) *timestamppb.Timestamp {
	if t == nil {
		return nil
	}
	return timestamppb.New(*t)
}

// optionalTime reads an unset timestamp as absent.
func optionalTime(ts *timestamppb.Timestamp) *time.Time {
	if ts == nil {
		return nil
	}
	t := ts.AsTime()
	return &t
}
