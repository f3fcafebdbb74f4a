package chat

import "time"

type Participant struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar,omitempty"`
}

type Message struct {
	ID             string    `json:"id"`
	ConversationID string    `json:"conversationId"`
	SenderID       string    `json:"senderId"`
	Text           string    `json:"text"`
	Read           bool      `json:"read"`
	CreatedAt      time.Time `json:"createdAt"`
}

type Conversation struct {
	ID           string        `json:"id"`
	Participants []Participant `json:"participants"`
	ProductID    string        `json:"productId,omitempty"`
	LastMessage  *Message      `json:"lastMessage,omitempty"`
	UnreadCount  int           `json:"unreadCount"`
	UpdatedAt    time.Time     `json:"updatedAt"`
}

type StartParams struct {
	ParticipantID string `json:"participantId"`
	ProductID     string `json:"productId,omitempty"`
}

type sendBody struct {
	ConversationID string `json:"conversationId"`
	Text           string `json:"text"`
}

type markReadBody struct {
	ConversationID string `json:"conversationId"`
}
