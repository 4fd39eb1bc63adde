package model

// Group is a chat group. ID equals the group's creation index and never
// changes. Avatar is copied from the creator at creation time. The
// creator starts out in Members but has no special protection against a
// later membership removal.
type Group struct {
	ID       int    `json:"id"`
	ClientID string `json:"clientId"`
	Name     string `json:"name"`
	Avatar   string `json:"avatar"`
	Creator  User   `json:"creator"`
	Members  []User `json:"members"`
}

// HasMember reports whether the user with the given ID is in the group.
// Membership is decided by key, never by struct equality.
func (g *Group) HasMember(u User) bool {
	for _, m := range g.Members {
		if m.ID == u.ID {
			return true
		}
	}
	return false
}

// Membership pairs a user with a group. It is a request/response payload
// for the membership endpoints, never a stored record.
type Membership struct {
	Member User  `json:"member"`
	Group  Group `json:"group"`
}
