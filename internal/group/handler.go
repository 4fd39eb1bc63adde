package group

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/salehq/mockchat/internal/dataset"
	"github.com/salehq/mockchat/pkg/response"
)

// Handler handles HTTP requests for group operations
type Handler struct {
	service *Service
}

// NewHandler creates a new group handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for group endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/{id}", h.GetByID)

	// Membership management
	r.Get("/{id}/members", h.GetMembers)
	r.Post("/{id}/memberships", h.AddMembership)
	r.Delete("/{id}/memberships", h.RemoveMembership)

	return r
}

// List handles GET /groups
// @Summary      List all groups
// @Description  Get every group in the generated dataset
// @Tags         groups
// @Produce      json
// @Success      200 {array} model.Group
// @Router       /groups [get]
func (h *Handler) List(w http.ResponseWriter, _ *http.Request) {
	response.JSON(w, http.StatusOK, h.service.List())
}

// GetByID handles GET /groups/{id}
// @Summary      Get group by ID
// @Description  Get a single group by its numeric ID
// @Tags         groups
// @Produce      json
// @Param        id path int true "Group ID"
// @Success      200 {object} model.Group
// @Failure      400 {string} string "Invalid group ID"
// @Failure      404 {string} string "Group not found"
// @Router       /groups/{id} [get]
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid group ID")
		return
	}

	g, err := h.service.GetByID(id)
	if err != nil {
		if errors.Is(err, dataset.ErrGroupNotFound) {
			response.NotFound(w, "Group not found")
			return
		}
		response.InternalError(w, "Failed to get group")
		return
	}

	response.JSON(w, http.StatusOK, g)
}

// Create handles POST /groups
// @Summary      Create a new group
// @Description  Create a group whose only member is its creator. The name must be 4 to 20 characters.
// @Tags         groups
// @Accept       json
// @Produce      json
// @Param        request body CreateGroupRequest true "Group creation request"
// @Success      201 {object} model.Group
// @Failure      400 {string} string "Invalid group name"
// @Failure      403 {string} string "Creator not found"
// @Router       /groups [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateGroupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	g, err := h.service.Create(&req)
	if err != nil {
		if errors.Is(err, ErrInvalidName) {
			response.BadRequest(w, err.Error())
			return
		}
		if errors.Is(err, ErrCreatorNotFound) {
			response.Forbidden(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to create group")
		return
	}

	response.JSON(w, http.StatusCreated, g)
}

// GetMembers handles GET /groups/{id}/members
// @Summary      List group members
// @Description  Get the member list of a group
// @Tags         groups
// @Produce      json
// @Param        id path int true "Group ID"
// @Success      200 {array} model.User
// @Failure      400 {string} string "Invalid group ID"
// @Failure      404 {string} string "Group not found"
// @Router       /groups/{id}/members [get]
func (h *Handler) GetMembers(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid group ID")
		return
	}

	members, err := h.service.Members(id)
	if err != nil {
		if errors.Is(err, dataset.ErrGroupNotFound) {
			response.NotFound(w, "Group not found")
			return
		}
		response.InternalError(w, "Failed to get members")
		return
	}

	response.JSON(w, http.StatusOK, members)
}

// AddMembership handles POST /groups/{id}/memberships
// @Summary      Add a member to a group
// @Description  Add the user named in the request body to the group
// @Tags         groups
// @Accept       json
// @Produce      json
// @Param        id path int true "Group ID"
// @Param        request body MembershipRequest true "Member to add"
// @Success      201 {object} model.Membership
// @Failure      403 {string} string "User already in the group"
// @Failure      404 {string} string "Group or user not found"
// @Router       /groups/{id}/memberships [post]
func (h *Handler) AddMembership(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid group ID")
		return
	}

	var req MembershipRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	membership, err := h.service.AddMember(id, req.Member.Username)
	if err != nil {
		h.writeMembershipError(w, err, "Failed to add member")
		return
	}

	response.JSON(w, http.StatusCreated, membership)
}

// RemoveMembership handles DELETE /groups/{id}/memberships
// @Summary      Remove a member from a group
// @Description  Remove the user named in the request body from the group. The creator may be removed like any other member.
// @Tags         groups
// @Accept       json
// @Produce      json
// @Param        id path int true "Group ID"
// @Param        request body MembershipRequest true "Member to remove"
// @Success      200 {object} model.Membership
// @Failure      403 {string} string "User not in the group"
// @Failure      404 {string} string "Group or user not found"
// @Router       /groups/{id}/memberships [delete]
func (h *Handler) RemoveMembership(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid group ID")
		return
	}

	var req MembershipRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	membership, err := h.service.RemoveMember(id, req.Member.Username)
	if err != nil {
		h.writeMembershipError(w, err, "Failed to remove member")
		return
	}

	response.JSON(w, http.StatusOK, membership)
}

func (h *Handler) writeMembershipError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, dataset.ErrGroupNotFound):
		response.NotFound(w, "Group not found")
	case errors.Is(err, dataset.ErrUserNotFound):
		response.NotFound(w, "User not found")
	case errors.Is(err, dataset.ErrAlreadyMember):
		response.Forbidden(w, "User already in group")
	case errors.Is(err, dataset.ErrNotMember):
		response.Forbidden(w, "User not in group")
	default:
		response.InternalError(w, fallback)
	}
}
