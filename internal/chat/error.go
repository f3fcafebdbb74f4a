package chat

import "errors"

var (
	ErrMissingParticipant    = errors.New("participant id is required")
	ErrMissingConversationID = errors.New("conversation id is required")
	ErrEmptyMessage          = errors.New("message text is empty")
)
