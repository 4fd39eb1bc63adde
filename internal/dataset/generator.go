package dataset

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/salehq/mockchat/internal/model"
	"github.com/salehq/mockchat/internal/randomuser"
)

const loremContent = "Lorem ipsum dolor sit amet, consectetur adipiscing elit, sed do eiusmod tempor" +
	"incididunt ut labore et dolore magna aliqua"

// Source supplies person identities for seeding. randomuser.Client is the
// production implementation; tests substitute a stub.
type Source interface {
	Fetch(ctx context.Context, count int) ([]randomuser.Identity, error)
}

// Options controls the shape of the generated dataset.
type Options struct {
	UserCount    int
	GroupCount   int
	MessageCount int
}

// Generate builds the complete dataset: users from the identity source, a
// randomly chosen current user, groups with random member subsets, and
// seeded direct and group conversation history. Any failure leaves no
// partial dataset behind; the caller treats it as fatal.
//
// The random source is injected so test runs can be reproduced with a
// fixed seed.
func Generate(ctx context.Context, src Source, opts Options, rng *rand.Rand) (*Store, error) {
	identities, err := src.Fetch(ctx, opts.UserCount)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch identities: %w", err)
	}
	if len(identities) == 0 {
		return nil, fmt.Errorf("identity source returned no results")
	}

	users := make([]model.User, len(identities))
	for i, item := range identities {
		id, err := uuid.Parse(item.Login.UUID)
		if err != nil {
			return nil, fmt.Errorf("identity %d has invalid uuid %q: %w", i, item.Login.UUID, err)
		}
		users[i] = model.User{
			ID:       id,
			ClientID: "u" + item.Login.UUID,
			Username: item.Login.Username,
			Name:     item.Name.First + " " + item.Name.Last,
			Avatar:   item.Picture.Large,
			IsOnline: rng.Intn(2) == 0,
		}
	}

	currentUser := users[rng.Intn(len(users))]
	store := NewStore(users, currentUser)

	if err := seedGroups(store, users, opts, rng); err != nil {
		return nil, err
	}
	seedUserMessages(store, users, currentUser, opts.MessageCount)
	seedGroupMessages(store, opts.MessageCount)

	return store, nil
}

// seedGroups creates the groups. Creators are sampled without
// replacement, so no two groups share a creator; this bounds the group
// count by the user count.
func seedGroups(store *Store, users []model.User, opts Options, rng *rand.Rand) error {
	if opts.GroupCount > len(users) {
		return fmt.Errorf("group count %d exceeds user count %d", opts.GroupCount, len(users))
	}

	creatorOrder := rng.Perm(len(users))
	for i := 0; i < opts.GroupCount; i++ {
		creator := users[creatorOrder[i]]
		group := store.AddGroup(fmt.Sprintf("Group %d", i), creator)

		// Random subset of all users, uniform size between 1 and N.
		size := rng.Intn(len(users)) + 1
		for _, idx := range rng.Perm(len(users))[:size] {
			member := users[idx]
			if member.ID == creator.ID {
				continue
			}
			if _, err := store.AddMember(group.ID, member.Username); err != nil {
				return fmt.Errorf("failed to seed group %d: %w", group.ID, err)
			}
		}
	}
	return nil
}

// seedUserMessages seeds the direct history: for every user other than
// the current one, messages alternate between the two directions, even
// indexes flowing toward the current user.
func seedUserMessages(store *Store, users []model.User, currentUser model.User, count int) {
	nextID := 0
	for _, other := range users {
		if other.ID == currentUser.ID {
			continue
		}
		for j := 0; j < count; j++ {
			sender, receiver := other, currentUser
			if j%2 == 1 {
				sender, receiver = currentUser, other
			}
			store.AppendUserMessage(model.UserMessage{
				Message: model.Message{
					ID:      nextID,
					Sender:  sender,
					Content: loremContent,
					Time:    time.Now(),
				},
				Receiver: receiver,
			})
			nextID++
		}
	}
}

// seedGroupMessages seeds each group's history, the sender cycling
// through the member list by position.
func seedGroupMessages(store *Store, count int) {
	nextID := 0
	for _, group := range store.Groups() {
		for j := 0; j < count; j++ {
			store.AppendGroupMessage(model.GroupMessage{
				Message: model.Message{
					ID:      nextID,
					Sender:  group.Members[j%len(group.Members)],
					Content: loremContent,
					Time:    time.Now(),
				},
				Receiver: group,
			})
			nextID++
		}
	}
}
