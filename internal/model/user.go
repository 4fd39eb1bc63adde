// Package model defines the entities shared by the dataset and the HTTP
// feature packages. JSON field names follow the original mock API contract
// (camelCase), so clients prototyped against it keep working unchanged.
package model

import "github.com/google/uuid"

// User is a chat participant. ID is the UUID issued by the identity
// source and is the stable lookup key; Username is unique as well and is
// what the user-facing routes key on.
type User struct {
	ID       uuid.UUID `json:"id"`
	ClientID string    `json:"clientId"`
	Username string    `json:"username"`
	Name     string    `json:"name"`
	Avatar   string    `json:"avatar"`
	IsOnline bool      `json:"isOnline"`
}
