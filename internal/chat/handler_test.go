package chat

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/salehq/mockchat/internal/dataset"
	"github.com/salehq/mockchat/internal/model"
)

func testUser(username string) model.User {
	id := uuid.New()
	return model.User{
		ID:       id,
		ClientID: "u" + id.String(),
		Username: username,
		Name:     "Test " + username,
		Avatar:   "https://example.com/" + username + ".jpg",
	}
}

// newTestRouter seeds a small world: alice (current), bob, carol, one
// group containing alice and bob, five direct messages and two group
// messages.
func newTestRouter(t *testing.T) (http.Handler, *dataset.Store, []model.User) {
	t.Helper()
	users := []model.User{testUser("alice"), testUser("bob"), testUser("carol")}
	alice, bob, carol := users[0], users[1], users[2]

	store := dataset.NewStore(users, alice)
	g := store.AddGroup("Weekend plans", alice)
	if _, err := store.AddMember(g.ID, "bob"); err != nil {
		t.Fatalf("AddMember returned error: %v", err)
	}

	direct := []struct {
		from, to model.User
	}{
		{alice, bob},
		{carol, bob},
		{bob, alice},
		{alice, carol},
		{alice, bob},
	}
	for i, d := range direct {
		store.AppendUserMessage(model.UserMessage{
			Message:  model.Message{ID: i, Sender: d.from, Content: "hey", Time: time.Now()},
			Receiver: d.to,
		})
	}

	group, _ := store.GroupByID(g.ID)
	for i := 0; i < 2; i++ {
		store.AppendGroupMessage(model.GroupMessage{
			Message:  model.Message{ID: i, Sender: group.Members[i%2], Content: "hey all", Time: time.Now()},
			Receiver: group,
		})
	}

	router := NewHandler(NewService(store)).Routes()
	return router, store, users
}

func TestListAllChatsIgnoresPathID(t *testing.T) {
	router, _, _ := newTestRouter(t)

	// The id segment is part of the route shape but never read; any
	// value returns the full collection.
	for _, id := range []string{"0", "99", "whatever"} {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/"+id+"/users", http.NoBody))
		if rr.Code != http.StatusOK {
			t.Fatalf("id %q: status got %d want %d", id, rr.Code, http.StatusOK)
		}
		var got []model.UserMessage
		if err := json.Unmarshal(rr.Body.Bytes(), &got); err != nil {
			t.Fatalf("failed to decode body: %v", err)
		}
		if len(got) != 5 {
			t.Errorf("id %q: direct message count got %d want 5", id, len(got))
		}

		rr = httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/"+id+"/groups", http.NoBody))
		var gotGroups []model.GroupMessage
		if err := json.Unmarshal(rr.Body.Bytes(), &gotGroups); err != nil {
			t.Fatalf("failed to decode body: %v", err)
		}
		if len(gotGroups) != 2 {
			t.Errorf("id %q: group message count got %d want 2", id, len(gotGroups))
		}
	}
}

func TestGetConversation(t *testing.T) {
	router, _, _ := newTestRouter(t)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/users/alice/bob", http.NoBody))
	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d want %d", rr.Code, http.StatusOK)
	}

	var got []model.UserMessage
	if err := json.Unmarshal(rr.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("conversation length: got %d want 3", len(got))
	}
	for i, wantID := range []int{0, 2, 4} {
		if got[i].ID != wantID {
			t.Errorf("conversation[%d]: got id %d want %d (insertion order)", i, got[i].ID, wantID)
		}
		pair := got[i].Sender.Username + "/" + got[i].Receiver.Username
		if pair != "alice/bob" && pair != "bob/alice" {
			t.Errorf("conversation[%d]: unexpected pair %q", i, pair)
		}
	}

	// Unknown usernames match nothing rather than erroring.
	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/users/nobody/alice", http.NoBody))
	if rr.Code != http.StatusOK {
		t.Fatalf("unknown user status: got %d want %d", rr.Code, http.StatusOK)
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("unknown user conversation: got %d messages want 0", len(got))
	}
}

func TestGetGroupConversation(t *testing.T) {
	router, _, _ := newTestRouter(t)

	t.Run("known group", func(t *testing.T) {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/groups/0", http.NoBody))
		if rr.Code != http.StatusOK {
			t.Fatalf("status: got %d want %d", rr.Code, http.StatusOK)
		}
		var got []model.GroupMessage
		if err := json.Unmarshal(rr.Body.Bytes(), &got); err != nil {
			t.Fatalf("failed to decode body: %v", err)
		}
		if len(got) != 2 {
			t.Errorf("group conversation length: got %d want 2", len(got))
		}
		for i, m := range got {
			if m.Receiver.ID != 0 {
				t.Errorf("message %d addressed to group %d, want 0", i, m.Receiver.ID)
			}
		}
	})

	t.Run("unknown group", func(t *testing.T) {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/groups/99", http.NoBody))
		if rr.Code != http.StatusNotFound {
			t.Fatalf("status: got %d want %d", rr.Code, http.StatusNotFound)
		}
		if rr.Body.String() != "Group 99 not found" {
			t.Errorf("body: got %q", rr.Body.String())
		}
	})

	t.Run("non-numeric id", func(t *testing.T) {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/groups/abc", http.NoBody))
		if rr.Code != http.StatusBadRequest {
			t.Fatalf("status: got %d want %d", rr.Code, http.StatusBadRequest)
		}
	})
}

func TestSendUserMessage(t *testing.T) {
	router, store, users := newTestRouter(t)

	body := fmt.Sprintf(`{
		"id": 100,
		"sender": {"id": %q, "username": "bob"},
		"receiver": {"id": %q, "username": "alice"},
		"content": "hello there",
		"time": "2026-08-28T10:00:00Z"
	}`, users[1].ID, users[0].ID)

	send := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		return rr
	}

	rr := send()
	if rr.Code != http.StatusCreated {
		t.Fatalf("status: got %d want %d (body %q)", rr.Code, http.StatusCreated, rr.Body.String())
	}
	if rr.Body.String() != "ok" {
		t.Errorf("body: got %q want %q", rr.Body.String(), "ok")
	}

	messages := store.UserMessages()
	if len(messages) != 6 {
		t.Fatalf("message count: got %d want 6", len(messages))
	}
	last := messages[len(messages)-1]
	if last.ID != 100 || last.Content != "hello there" {
		t.Errorf("stored message: got id %d content %q", last.ID, last.Content)
	}

	// Resending stores a duplicate; idempotency is the caller's problem.
	send()
	if got := len(store.UserMessages()); got != 7 {
		t.Errorf("message count after resend: got %d want 7", got)
	}
}

func TestSendGroupMessage(t *testing.T) {
	router, store, users := newTestRouter(t)

	body := fmt.Sprintf(`{
		"id": 50,
		"sender": {"id": %q, "username": "alice"},
		"receiver": {"id": 0, "name": "Weekend plans"},
		"content": "meeting at noon",
		"time": "2026-08-28T10:00:00Z"
	}`, users[0].ID)

	req := httptest.NewRequest(http.MethodPost, "/groups", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("status: got %d want %d (body %q)", rr.Code, http.StatusCreated, rr.Body.String())
	}
	if rr.Body.String() != "ok" {
		t.Errorf("body: got %q want %q", rr.Body.String(), "ok")
	}

	messages := store.GroupMessages()
	if len(messages) != 3 {
		t.Fatalf("message count: got %d want 3", len(messages))
	}
	last := messages[len(messages)-1]
	if last.ID != 50 || last.Receiver.ID != 0 {
		t.Errorf("stored message: got id %d receiver %d", last.ID, last.Receiver.ID)
	}
}
