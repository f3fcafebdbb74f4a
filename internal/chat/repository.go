package chat

import (
	"context"
	"strings"

	"marketplace-client/internal/api"
	"marketplace-client/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	StartConversation(ctx context.Context, params StartParams) (*Conversation, error)
	Conversations(ctx context.Context) ([]Conversation, error)
	Messages(ctx context.Context, conversationID string) ([]Message, error)
	SendMessage(ctx context.Context, conversationID, text string) (*Message, error)
	MarkAsRead(ctx context.Context, conversationID string) error
}

type repository struct {
	client *api.Client
}

func NewRepository(client *api.Client) Repository {
	return &repository{client: client}
}

// StartConversation opens (or reuses, server side) a conversation with
// another user.
func (r *repository) StartConversation(ctx context.Context, params StartParams) (*Conversation, error) {
	if params.ParticipantID == "" {
		return nil, ErrMissingParticipant
	}

	var c Conversation
	if _, err := r.client.Post(ctx, "/chat/conversation", params, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repository) Conversations(ctx context.Context) ([]Conversation, error) {
	var list []Conversation
	if _, err := r.client.Get(ctx, "/chat/conversations", nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (r *repository) Messages(ctx context.Context, conversationID string) ([]Message, error) {
	if conversationID == "" {
		return nil, ErrMissingConversationID
	}

	var msgs []Message
	if _, err := r.client.Get(ctx, api.Path("chat", "messages", conversationID), nil, &msgs); err != nil {
		return nil, err
	}
	return msgs, nil
}

func (r *repository) SendMessage(ctx context.Context, conversationID, text string) (*Message, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "SendMessage"),
	)

	if conversationID == "" {
		return nil, ErrMissingConversationID
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyMessage
	}

	var m Message
	if _, err := r.client.Post(ctx, "/chat/message", sendBody{ConversationID: conversationID, Text: text}, &m); err != nil {
		log.Warn("send message failed", zap.String("conversation_id", conversationID), zap.Error(err))
		return nil, err
	}
	return &m, nil
}

func (r *repository) MarkAsRead(ctx context.Context, conversationID string) error {
	if conversationID == "" {
		return ErrMissingConversationID
	}
	_, err := r.client.Put(ctx, "/chat/mark-as-read", markReadBody{ConversationID: conversationID}, nil)
	return err
}
