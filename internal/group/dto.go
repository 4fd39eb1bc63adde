package group

// UserRef identifies an existing user by username inside a request body.
type UserRef struct {
	Username string `json:"username"`
}

// CreateGroupRequest represents the request to create a new group
type CreateGroupRequest struct {
	Name    string  `json:"name"`
	Creator UserRef `json:"creator"`
}

// MembershipRequest represents the request to add or remove a group member
type MembershipRequest struct {
	Member UserRef `json:"member"`
}
