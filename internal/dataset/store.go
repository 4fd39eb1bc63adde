// Package dataset holds the in-memory world the mock server answers from:
// users, groups and seeded message history, generated once at startup and
// alive for the process lifetime. Nothing is persisted.
package dataset

import (
	"errors"
	"fmt"
	"sync"

	"github.com/salehq/mockchat/internal/model"
)

// Common errors
var (
	ErrUserNotFound  = errors.New("user not found")
	ErrGroupNotFound = errors.New("group not found")
	ErrAlreadyMember = errors.New("user already in the group")
	ErrNotMember     = errors.New("user not in the group")
)

// Store is the single shared dataset. It is constructed once in main and
// injected into every feature service. Handlers run on the net/http
// per-request goroutines, so all access goes through one RWMutex.
type Store struct {
	mu sync.RWMutex

	users       []model.User
	currentUser model.User

	groups []model.Group

	// Separate collections with independent sequential ID spaces.
	userMessages  []model.UserMessage
	groupMessages []model.GroupMessage
}

// NewStore creates a store pre-populated with users and the designated
// current user. Groups and messages are added through the mutators.
func NewStore(users []model.User, currentUser model.User) *Store {
	return &Store{
		users:       users,
		currentUser: currentUser,
	}
}

// Users returns all users.
func (s *Store) Users() []model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.User(nil), s.users...)
}

// CurrentUser returns the user acting as the implicit authenticated actor.
func (s *Store) CurrentUser() model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.currentUser
}

// UserByUsername looks up a user by exact username match.
func (s *Store) UserByUsername(username string) (model.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.findUser(username)
}

func (s *Store) findUser(username string) (model.User, bool) {
	for _, u := range s.users {
		if u.Username == username {
			return u, true
		}
	}
	return model.User{}, false
}

// Groups returns all groups.
func (s *Store) Groups() []model.Group {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Group(nil), s.groups...)
}

// GroupByID looks up a group by its numeric ID.
func (s *Store) GroupByID(id int) (model.Group, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.findGroup(id)
}

func (s *Store) findGroup(id int) (model.Group, bool) {
	for _, g := range s.groups {
		if g.ID == id {
			return g, true
		}
	}
	return model.Group{}, false
}

// GroupsJoinedBy returns every group whose member list contains the user.
func (s *Store) GroupsJoinedBy(user model.User) []model.Group {
	s.mu.RLock()
	defer s.mu.RUnlock()

	joined := []model.Group{}
	for _, g := range s.groups {
		if g.HasMember(user) {
			joined = append(joined, g)
		}
	}
	return joined
}

// AddGroup creates a group with the next sequential ID and the creator as
// its only member. The group's avatar is copied from the creator.
func (s *Store) AddGroup(name string, creator model.User) model.Group {
	s.mu.Lock()
	defer s.mu.Unlock()

	group := model.Group{
		ID:       len(s.groups),
		ClientID: fmt.Sprintf("g%d", len(s.groups)),
		Name:     name,
		Avatar:   creator.Avatar,
		Creator:  creator,
		Members:  []model.User{creator},
	}
	s.groups = append(s.groups, group)
	return group
}

// AddMember adds the named user to the group. The membership invariants
// live here rather than in the callers: unknown group or user fails with
// a not-found error, an existing member with ErrAlreadyMember.
func (s *Store) AddMember(groupID int, username string) (model.Membership, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.groupIndex(groupID)
	if idx < 0 {
		return model.Membership{}, ErrGroupNotFound
	}
	user, ok := s.findUser(username)
	if !ok {
		return model.Membership{}, ErrUserNotFound
	}
	if s.groups[idx].HasMember(user) {
		return model.Membership{}, ErrAlreadyMember
	}

	// Copy-append so slices handed out earlier stay untouched.
	members := make([]model.User, 0, len(s.groups[idx].Members)+1)
	members = append(members, s.groups[idx].Members...)
	s.groups[idx].Members = append(members, user)

	return model.Membership{Member: user, Group: s.groups[idx]}, nil
}

// RemoveMember removes the named user from the group. Removing the
// creator is allowed; the creator has no special protection.
func (s *Store) RemoveMember(groupID int, username string) (model.Membership, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.groupIndex(groupID)
	if idx < 0 {
		return model.Membership{}, ErrGroupNotFound
	}
	user, ok := s.findUser(username)
	if !ok {
		return model.Membership{}, ErrUserNotFound
	}
	if !s.groups[idx].HasMember(user) {
		return model.Membership{}, ErrNotMember
	}

	members := make([]model.User, 0, len(s.groups[idx].Members)-1)
	for _, m := range s.groups[idx].Members {
		if m.ID != user.ID {
			members = append(members, m)
		}
	}
	s.groups[idx].Members = members

	return model.Membership{Member: user, Group: s.groups[idx]}, nil
}

func (s *Store) groupIndex(id int) int {
	for i, g := range s.groups {
		if g.ID == id {
			return i
		}
	}
	return -1
}

// UserMessages returns every direct message, in insertion order.
func (s *Store) UserMessages() []model.UserMessage {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.UserMessage(nil), s.userMessages...)
}

// GroupMessages returns every group message, in insertion order.
func (s *Store) GroupMessages() []model.GroupMessage {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.GroupMessage(nil), s.groupMessages...)
}

// ConversationBetween returns the direct messages exchanged between the
// two usernames, in either direction, preserving insertion order.
func (s *Store) ConversationBetween(username1, username2 string) []model.UserMessage {
	s.mu.RLock()
	defer s.mu.RUnlock()

	chats := []model.UserMessage{}
	for _, m := range s.userMessages {
		if (m.Sender.Username == username1 && m.Receiver.Username == username2) ||
			(m.Sender.Username == username2 && m.Receiver.Username == username1) {
			chats = append(chats, m)
		}
	}
	return chats
}

// GroupConversation returns the group messages addressed to the group.
func (s *Store) GroupConversation(groupID int) []model.GroupMessage {
	s.mu.RLock()
	defer s.mu.RUnlock()

	chats := []model.GroupMessage{}
	for _, m := range s.groupMessages {
		if m.Receiver.ID == groupID {
			chats = append(chats, m)
		}
	}
	return chats
}

// AppendUserMessage appends a direct message exactly as supplied. The
// caller owns id and timestamp; the server assigns neither.
func (s *Store) AppendUserMessage(m model.UserMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.userMessages = append(s.userMessages, m)
}

// AppendGroupMessage appends a group message exactly as supplied.
func (s *Store) AppendGroupMessage(m model.GroupMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.groupMessages = append(s.groupMessages, m)
}
