package user

import (
	"github.com/salehq/mockchat/internal/dataset"
	"github.com/salehq/mockchat/internal/model"
)

// Service handles user lookups over the shared dataset
type Service struct {
	store *dataset.Store
}

// NewService creates a new user service with the dataset injected
func NewService(store *dataset.Store) *Service {
	return &Service{store: store}
}

// List returns all users
func (s *Service) List() []model.User {
	return s.store.Users()
}

// Current returns the user acting as the implicit authenticated actor
func (s *Service) Current() model.User {
	return s.store.CurrentUser()
}

// GetByUsername retrieves a user by exact username
func (s *Service) GetByUsername(username string) (model.User, error) {
	u, ok := s.store.UserByUsername(username)
	if !ok {
		return model.User{}, dataset.ErrUserNotFound
	}
	return u, nil
}

// JoinedGroups returns the groups whose member list contains the user
func (s *Service) JoinedGroups(username string) ([]model.Group, error) {
	u, ok := s.store.UserByUsername(username)
	if !ok {
		return nil, dataset.ErrUserNotFound
	}
	return s.store.GroupsJoinedBy(u), nil
}
