package chat

import (
	"github.com/salehq/mockchat/internal/dataset"
	"github.com/salehq/mockchat/internal/model"
)

// Service handles chat history reads and message sends over the shared
// dataset. Sent messages are stored verbatim; the caller owns message IDs
// and timestamps, and resending a request stores a duplicate.
type Service struct {
	store *dataset.Store
}

// NewService creates a new chat service with the dataset injected
func NewService(store *dataset.Store) *Service {
	return &Service{store: store}
}

// ListUserChats returns every direct message
func (s *Service) ListUserChats() []model.UserMessage {
	return s.store.UserMessages()
}

// ListGroupChats returns every group message
func (s *Service) ListGroupChats() []model.GroupMessage {
	return s.store.GroupMessages()
}

// Conversation returns the direct messages exchanged between two
// usernames, in either direction, in insertion order. Unknown usernames
// simply match nothing.
func (s *Service) Conversation(username1, username2 string) []model.UserMessage {
	return s.store.ConversationBetween(username1, username2)
}

// GroupConversation returns the messages addressed to the group
func (s *Service) GroupConversation(groupID int) ([]model.GroupMessage, error) {
	if _, ok := s.store.GroupByID(groupID); !ok {
		return nil, dataset.ErrGroupNotFound
	}
	return s.store.GroupConversation(groupID), nil
}

// SendUserMessage appends a direct message exactly as supplied
func (s *Service) SendUserMessage(m model.UserMessage) {
	s.store.AppendUserMessage(m)
}

// SendGroupMessage appends a group message exactly as supplied
func (s *Service) SendGroupMessage(m model.GroupMessage) {
	s.store.AppendGroupMessage(m)
}
