package group

import (
	"errors"
	"unicode/utf8"

	"github.com/salehq/mockchat/internal/dataset"
	"github.com/salehq/mockchat/internal/model"
)

// Group name length bounds, in characters.
const (
	minNameLength = 4
	maxNameLength = 20
)

// Common errors
var (
	ErrInvalidName     = errors.New("group name must be between 4 and 20 characters")
	ErrCreatorNotFound = errors.New("creator not found")
)

// Service handles group business logic over the shared dataset
type Service struct {
	store *dataset.Store
}

// NewService creates a new group service with the dataset injected
func NewService(store *dataset.Store) *Service {
	return &Service{store: store}
}

// List returns all groups
func (s *Service) List() []model.Group {
	return s.store.Groups()
}

// GetByID retrieves a group by its numeric ID
func (s *Service) GetByID(id int) (model.Group, error) {
	g, ok := s.store.GroupByID(id)
	if !ok {
		return model.Group{}, dataset.ErrGroupNotFound
	}
	return g, nil
}

// Create validates the request and creates a new group whose only member
// is its creator. Duplicate group names are allowed.
func (s *Service) Create(req *CreateGroupRequest) (model.Group, error) {
	if n := utf8.RuneCountInString(req.Name); n < minNameLength || n > maxNameLength {
		return model.Group{}, ErrInvalidName
	}

	creator, ok := s.store.UserByUsername(req.Creator.Username)
	if !ok {
		return model.Group{}, ErrCreatorNotFound
	}

	return s.store.AddGroup(req.Name, creator), nil
}

// Members returns the member list of a group
func (s *Service) Members(id int) ([]model.User, error) {
	g, ok := s.store.GroupByID(id)
	if !ok {
		return nil, dataset.ErrGroupNotFound
	}
	return g.Members, nil
}

// AddMember adds the named user to the group
func (s *Service) AddMember(id int, username string) (model.Membership, error) {
	return s.store.AddMember(id, username)
}

// RemoveMember removes the named user from the group
func (s *Service) RemoveMember(id int, username string) (model.Membership, error) {
	return s.store.RemoveMember(id, username)
}
