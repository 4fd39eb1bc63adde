package chat

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/salehq/mockchat/internal/dataset"
	"github.com/salehq/mockchat/internal/model"
	"github.com/salehq/mockchat/pkg/response"
)

// Handler handles HTTP requests for chat operations
type Handler struct {
	service *Service
}

// NewHandler creates a new chat handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for chat endpoints.
//
// The {id} parameter on the two "list all" routes is accepted but
// ignored: the original API listed the full collections there, and the
// routes keep that shape so existing clients don't break.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/{id}/users", h.ListUserChats)
	r.Get("/{id}/groups", h.ListGroupChats)
	r.Get("/users/{username1}/{username2}", h.GetConversation)
	r.Get("/groups/{id}", h.GetGroupConversation)
	r.Post("/users", h.SendUserMessage)
	r.Post("/groups", h.SendGroupMessage)

	return r
}

// ListUserChats handles GET /chats/{id}/users
// @Summary      List all direct messages
// @Description  Get every direct message. The id path parameter is ignored; the full collection is returned.
// @Tags         chats
// @Produce      json
// @Param        id path string true "Ignored"
// @Success      200 {array} model.UserMessage
// @Router       /chats/{id}/users [get]
func (h *Handler) ListUserChats(w http.ResponseWriter, _ *http.Request) {
	response.JSON(w, http.StatusOK, h.service.ListUserChats())
}

// ListGroupChats handles GET /chats/{id}/groups
// @Summary      List all group messages
// @Description  Get every group message. The id path parameter is ignored; the full collection is returned.
// @Tags         chats
// @Produce      json
// @Param        id path string true "Ignored"
// @Success      200 {array} model.GroupMessage
// @Router       /chats/{id}/groups [get]
func (h *Handler) ListGroupChats(w http.ResponseWriter, _ *http.Request) {
	response.JSON(w, http.StatusOK, h.service.ListGroupChats())
}

// GetConversation handles GET /chats/users/{username1}/{username2}
// @Summary      Get a direct conversation
// @Description  Get the direct messages exchanged between two usernames, in either direction
// @Tags         chats
// @Produce      json
// @Param        username1 path string true "First username"
// @Param        username2 path string true "Second username"
// @Success      200 {array} model.UserMessage
// @Router       /chats/users/{username1}/{username2} [get]
func (h *Handler) GetConversation(w http.ResponseWriter, r *http.Request) {
	username1 := chi.URLParam(r, "username1")
	username2 := chi.URLParam(r, "username2")

	response.JSON(w, http.StatusOK, h.service.Conversation(username1, username2))
}

// GetGroupConversation handles GET /chats/groups/{id}
// @Summary      Get a group conversation
// @Description  Get the messages addressed to the group
// @Tags         chats
// @Produce      json
// @Param        id path int true "Group ID"
// @Success      200 {array} model.GroupMessage
// @Failure      400 {string} string "Invalid group ID"
// @Failure      404 {string} string "Group not found"
// @Router       /chats/groups/{id} [get]
func (h *Handler) GetGroupConversation(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid group ID")
		return
	}

	chats, err := h.service.GroupConversation(id)
	if err != nil {
		if errors.Is(err, dataset.ErrGroupNotFound) {
			response.NotFound(w, fmt.Sprintf("Group %d not found", id))
			return
		}
		response.InternalError(w, "Failed to get group conversation")
		return
	}

	response.JSON(w, http.StatusOK, chats)
}

// SendUserMessage handles POST /chats/users
// @Summary      Send a direct message
// @Description  Append the direct message exactly as supplied; the caller owns id and timestamp
// @Tags         chats
// @Accept       json
// @Produce      plain
// @Param        message body model.UserMessage true "Message to send"
// @Success      201 {string} string "ok"
// @Router       /chats/users [post]
func (h *Handler) SendUserMessage(w http.ResponseWriter, r *http.Request) {
	var m model.UserMessage
	if err := json.NewDecoder(r.Body).Decode(&m); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	h.service.SendUserMessage(m)
	response.Text(w, http.StatusCreated, "ok")
}

// SendGroupMessage handles POST /chats/groups
// @Summary      Send a group message
// @Description  Append the group message exactly as supplied; the caller owns id and timestamp
// @Tags         chats
// @Accept       json
// @Produce      plain
// @Param        message body model.GroupMessage true "Message to send"
// @Success      201 {string} string "ok"
// @Router       /chats/groups [post]
func (h *Handler) SendGroupMessage(w http.ResponseWriter, r *http.Request) {
	var m model.GroupMessage
	if err := json.NewDecoder(r.Body).Decode(&m); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	h.service.SendGroupMessage(m)
	response.Text(w, http.StatusCreated, "ok")
}
