package handler

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	pb "github.com/dtroode/cipherchat-server/internal/api/grpc/messagingpb"
	"github.com/dtroode/cipherchat-server/internal/logger"
	"github.com/dtroode/cipherchat-server/internal/model"
	"github.com/dtroode/cipherchat-server/internal/service"
)

// SubscribedHeader is sent once every requested conversation is watched.
const SubscribedHeader = "x-subscribed"

// KeyService defines business operations for device keys.
type KeyService interface {
	RegisterKey(ctx context.Context, user model.User, params model.RegisterKeyParams) (model.DeviceKey, error)
	LookupKeys(ctx context.Context, requester model.User, userIDs []uuid.UUID) ([]model.DeviceKey, error)
}

// ConversationService defines business operations for conversations.
type ConversationService interface {
	GetOrCreateDirect(ctx context.Context, requester model.User, otherUserID uuid.UUID, retention string) (model.Conversation, error)
	GetOrCreateTeam(ctx context.Context, requester model.User, teamID uuid.UUID, retention string) (model.Conversation, error)
	ListForUser(ctx context.Context, requester model.User) ([]model.Conversation, error)
	UpdateRetention(ctx context.Context, requester model.User, conversationID uuid.UUID, retention string) (model.Conversation, error)
	ListParticipants(ctx context.Context, requester model.User, conversationID uuid.UUID) ([]model.Participant, error)
}

// MessageService defines business operations for messages.
type MessageService interface {
	Append(ctx context.Context, requester model.User, conversationID uuid.UUID, envelope model.Envelope) (model.Message, error)
	List(ctx context.Context, requester model.User, conversationID uuid.UUID, query model.MessageQuery) (model.MessagePage, error)
	Search(ctx context.Context, requester model.User, conversationID uuid.UUID, query model.MessageSearch) ([]model.Message, error)
	Export(ctx context.Context, requester model.User, conversationID uuid.UUID, params model.ExportParams) (model.Export, error)
}

// LiveService opens live delivery sessions.
type LiveService interface {
	Open(ctx context.Context, user model.User) (*service.LiveSession, error)
}

// Messaging handles gRPC endpoints of the messaging service.
type Messaging struct {
	pb.UnimplementedMessagingServer
	keys           KeyService
	conversations  ConversationService
	messages       MessageService
	live           LiveService
	directory      model.Directory
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewMessaging creates a new Messaging handler.
func NewMessaging(
	keys KeyService,
	conversations ConversationService,
	messages MessageService,
	live LiveService,
	directory model.Directory,
	contextManager model.ContextManager,
	logger *logger.Logger,
) *Messaging {
	return &Messaging{
		keys:           keys,
		conversations:  conversations,
		messages:       messages,
		live:           live,
		directory:      directory,
		contextManager: contextManager,
		logger:         logger,
	}
}

// principal resolves the caller's current role and teams from the directory.
func (h *Messaging) principal(ctx context.Context) (model.User, error) {
	userID, ok := h.contextManager.UserID(ctx)
	if !ok {
		return model.User{}, status.Error(codes.Unauthenticated, "user id not found in context")
	}

	user, err := h.directory.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.User{}, status.Error(codes.PermissionDenied, "forbidden")
		}
		h.logger.Error("Messaging handler: failed to resolve principal", "user_id", userID, "error", err)
		return model.User{}, handleError(err)
	}

	return user, nil
}

func (h *Messaging) fail(method string, user model.User, err error) error {
	if isClientError(err) {
		h.logger.Debug("Messaging handler: request rejected", "method", method, "user_id", user.ID, "error", err)
	} else {
		h.logger.Error("Messaging handler: request failed", "method", method, "user_id", user.ID, "error", err)
	}
	return handleError(err)
}

func (h *Messaging) RegisterKey(ctx context.Context, req *pb.RegisterKeyRequest) (*pb.RegisterKeyResponse, error) {
	user, err := h.principal(ctx)
	if err != nil {
		return nil, err
	}

	key, err := h.keys.RegisterKey(ctx, user, model.RegisterKeyParams{
		DeviceID:  req.GetDeviceId(),
		PublicKey: req.GetPublicKey(),
		Algorithm: req.GetAlgorithm(),
	})
	if err != nil {
		return nil, h.fail("RegisterKey", user, err)
	}

	return &pb.RegisterKeyResponse{Key: toKey(key)}, nil
}

func (h *Messaging) LookupKeys(ctx context.Context, req *pb.LookupKeysRequest) (*pb.LookupKeysResponse, error) {
	user, err := h.principal(ctx)
	if err != nil {
		return nil, err
	}

	ids, err := parseIDs("userIds", req.GetUserIds())
	if err != nil {
		return nil, err
	}

	keys, err := h.keys.LookupKeys(ctx, user, ids)
	if err != nil {
		return nil, h.fail("LookupKeys", user, err)
	}

	resp := &pb.LookupKeysResponse{Keys: make([]*pb.Key, 0, len(keys))}
	for _, key := range keys {
		resp.Keys = append(resp.Keys, toKey(key))
	}
	return resp, nil
}

func (h *Messaging) CreateDirectConversation(ctx context.Context, req *pb.CreateDirectConversationRequest) (*pb.ConversationResponse, error) {
	user, err := h.principal(ctx)
	if err != nil {
		return nil, err
	}

	otherID, err := parseID("participantId", req.GetParticipantId())
	if err != nil {
		return nil, err
	}

	conversation, err := h.conversations.GetOrCreateDirect(ctx, user, otherID, req.GetRetentionPolicy())
	if err != nil {
		return nil, h.fail("CreateDirectConversation", user, err)
	}

	return &pb.ConversationResponse{Conversation: toConversation(conversation, user.ID)}, nil
}

func (h *Messaging) CreateTeamConversation(ctx context.Context, req *pb.CreateTeamConversationRequest) (*pb.ConversationResponse, error) {
	user, err := h.principal(ctx)
	if err != nil {
		return nil, err
	}

	teamID, err := parseID("teamId", req.GetTeamId())
	if err != nil {
		return nil, err
	}

	conversation, err := h.conversations.GetOrCreateTeam(ctx, user, teamID, req.GetRetentionPolicy())
	if err != nil {
		return nil, h.fail("CreateTeamConversation", user, err)
	}

	return &pb.ConversationResponse{Conversation: toConversation(conversation, user.ID)}, nil
}

func (h *Messaging) ListConversations(ctx context.Context, _ *pb.ListConversationsRequest) (*pb.ListConversationsResponse, error) {
	user, err := h.principal(ctx)
	if err != nil {
		return nil, err
	}

	conversations, err := h.conversations.ListForUser(ctx, user)
	if err != nil {
		return nil, h.fail("ListConversations", user, err)
	}

	resp := &pb.ListConversationsResponse{Conversations: make([]*pb.Conversation, 0, len(conversations))}
	for _, c := range conversations {
		resp.Conversations = append(resp.Conversations, toConversation(c, user.ID))
	}
	return resp, nil
}

func (h *Messaging) UpdateRetention(ctx context.Context, req *pb.UpdateRetentionRequest) (*pb.ConversationResponse, error) {
	user, err := h.principal(ctx)
	if err != nil {
		return nil, err
	}

	conversationID, err := parseID("conversationId", req.GetConversationId())
	if err != nil {
		return nil, err
	}

	conversation, err := h.conversations.UpdateRetention(ctx, user, conversationID, req.GetRetentionPolicy())
	if err != nil {
		return nil, h.fail("UpdateRetention", user, err)
	}

	return &pb.ConversationResponse{Conversation: toConversation(conversation, user.ID)}, nil
}

func (h *Messaging) ListParticipants(ctx context.Context, req *pb.ListParticipantsRequest) (*pb.ListParticipantsResponse, error) {
	user, err := h.principal(ctx)
	if err != nil {
		return nil, err
	}

	conversationID, err := parseID("conversationId", req.GetConversationId())
	if err != nil {
		return nil, err
	}

	participants, err := h.conversations.ListParticipants(ctx, user, conversationID)
	if err != nil {
		return nil, h.fail("ListParticipants", user, err)
	}

	resp := &pb.ListParticipantsResponse{Participants: make([]*pb.Participant, 0, len(participants))}
	for _, p := range participants {
		resp.Participants = append(resp.Participants, toParticipant(p))
	}
	return resp, nil
}

func (h *Messaging) AppendMessage(ctx context.Context, req *pb.AppendMessageRequest) (*pb.MessageResponse, error) {
	user, err := h.principal(ctx)
	if err != nil {
		return nil, err
	}

	conversationID, err := parseID("conversationId", req.GetConversationId())
	if err != nil {
		return nil, err
	}

	envelope := toEnvelope(req.GetEnvelope())
	if req.GetRequestId() != "" {
		requestID, err := parseID("requestId", req.GetRequestId())
		if err != nil {
			return nil, err
		}
		envelope.RequestID = &requestID
	}

	message, err := h.messages.Append(ctx, user, conversationID, envelope)
	if err != nil {
		return nil, h.fail("AppendMessage", user, err)
	}

	return &pb.MessageResponse{Message: toMessage(message)}, nil
}

func (h *Messaging) ListMessages(ctx context.Context, req *pb.ListMessagesRequest) (*pb.ListMessagesResponse, error) {
	user, err := h.principal(ctx)
	if err != nil {
		return nil, err
	}

	conversationID, err := parseID("conversationId", req.GetConversationId())
	if err != nil {
		return nil, err
	}

	query := model.MessageQuery{Limit: int(req.GetLimit()), Before: optionalTime(req.GetBefore())}
	if req.GetBeforeId() != "" {
		beforeID, err := parseID("beforeId", req.GetBeforeId())
		if err != nil {
			return nil, err
		}
		query.BeforeID = &beforeID
	}

	page, err := h.messages.List(ctx, user, conversationID, query)
	if err != nil {
		return nil, h.fail("ListMessages", user, err)
	}

	resp := &pb.ListMessagesResponse{Messages: toMessages(page.Messages)}
	if page.NextCursor != nil {
		resp.NextCursor = &pb.Cursor{
			Before:   timestamppb.New(page.NextCursor.Before),
			BeforeId: page.NextCursor.BeforeID.String(),
		}
	}
	return resp, nil
}

func (h *Messaging) SearchMessages(ctx context.Context, req *pb.SearchMessagesRequest) (*pb.SearchMessagesResponse, error) {
	user, err := h.principal(ctx)
	if err != nil {
		return nil, err
	}

	conversationID, err := parseID("conversationId", req.GetConversationId())
	if err != nil {
		return nil, err
	}

	query := model.MessageSearch{Limit: int(req.GetLimit()), From: optionalTime(req.GetFrom()), To: optionalTime(req.GetTo())}
	if req.GetSenderId() != "" {
		senderID, err := parseID("senderId", req.GetSenderId())
		if err != nil {
			return nil, err
		}
		query.SenderID = &senderID
	}

	messages, err := h.messages.Search(ctx, user, conversationID, query)
	if err != nil {
		return nil, h.fail("SearchMessages", user, err)
	}

	return &pb.SearchMessagesResponse{Messages: toMessages(messages)}, nil
}

func (h *Messaging) ExportConversation(ctx context.Context, req *pb.ExportConversationRequest) (*pb.ExportConversationResponse, error) {
	user, err := h.principal(ctx)
	if err != nil {
		return nil, err
	}

	conversationID, err := parseID("conversationId", req.GetConversationId())
	if err != nil {
		return nil, err
	}

	export, err := h.messages.Export(ctx, user, conversationID, model.ExportParams{Archive: req.GetArchive()})
	if err != nil {
		return nil, h.fail("ExportConversation", user, err)
	}

	return &pb.ExportConversationResponse{
		Conversation: toConversation(export.Conversation, user.ID),
		Count:        int32(export.Count),
		Messages:     toMessages(export.Messages),
		FileName:     export.FileName,
		ExportedAt:   timestamppb.New(export.ExportedAt),
		ArchiveUrl:   export.ArchiveURL,
	}, nil
}

// Subscribe streams delivery events for the caller's personal channel and the
// requested conversations until the client goes away.
func (h *Messaging) Subscribe(req *pb.SubscribeRequest, stream grpc.ServerStreamingServer[pb.Event]) error {
	ctx := stream.Context()

	user, err := h.principal(ctx)
	if err != nil {
		return err
	}

	conversationIDs, err := parseIDs("conversationIds", req.GetConversationIds())
	if err != nil {
		return err
	}

	session, err := h.live.Open(ctx, user)
	if err != nil {
		return h.fail("Subscribe", user, err)
	}
	defer session.Close()

	for _, id := range conversationIDs {
		if err := session.Watch(ctx, id); err != nil {
			return h.fail("Subscribe", user, err)
		}
	}

	if err := stream.SendHeader(metadata.Pairs(SubscribedHeader, "true")); err != nil {
		return err
	}

	h.logger.Debug("Messaging handler: live subscription opened", "user_id", user.ID, "conversations", len(conversationIDs))

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-session.Events():
			if !ok {
				return status.Error(codes.Unavailable, "live session closed")
			}
			if err := stream.Send(toEvent(event)); err != nil {
				return err
			}
		}
	}
}
