package model

import "time"

// Message holds the fields common to direct and group messages. IDs are
// sequential within each message collection; the two collections have
// independent ID spaces. Read and Delivered are carried for the clients'
// benefit but this server never flips them.
type Message struct {
	ID        int       `json:"id"`
	Sender    User      `json:"sender"`
	Content   string    `json:"content"`
	Time      time.Time `json:"time"`
	Read      bool      `json:"read"`
	Delivered bool      `json:"delivered"`
}

// UserMessage is a direct message between two users.
type UserMessage struct {
	Message
	Receiver User `json:"receiver"`
}

// GroupMessage is a message addressed to every member of a group.
type GroupMessage struct {
	Message
	Receiver Group `json:"receiver"`
}
