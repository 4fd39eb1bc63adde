package user

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/salehq/mockchat/internal/dataset"
	"github.com/salehq/mockchat/pkg/response"
)

// Handler handles HTTP requests for user operations
type Handler struct {
	service *Service
}

// NewHandler creates a new user handler with service dependency injected
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for user endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.List)
	r.Get("/me", h.GetCurrent)
	r.Get("/{username}", h.GetByUsername)
	r.Get("/{username}/groups", h.GetJoinedGroups)

	return r
}

// List handles GET /users
// @Summary      List all users
// @Description  Get every user in the generated dataset
// @Tags         users
// @Produce      json
// @Success      200 {array} model.User
// @Router       /users [get]
func (h *Handler) List(w http.ResponseWriter, _ *http.Request) {
	response.JSON(w, http.StatusOK, h.service.List())
}

// GetCurrent handles GET /users/me
// @Summary      Get the current user
// @Description  Get the user acting as the implicit authenticated actor
// @Tags         users
// @Produce      json
// @Success      200 {object} model.User
// @Router       /users/me [get]
func (h *Handler) GetCurrent(w http.ResponseWriter, _ *http.Request) {
	response.JSON(w, http.StatusOK, h.service.Current())
}

// GetByUsername handles GET /users/{username}
// @Summary      Get user by username
// @Description  Get a single user by their username
// @Tags         users
// @Produce      json
// @Param        username path string true "Username"
// @Success      200 {object} model.User
// @Failure      404 {string} string "User not found"
// @Router       /users/{username} [get]
func (h *Handler) GetByUsername(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	u, err := h.service.GetByUsername(username)
	if err != nil {
		if errors.Is(err, dataset.ErrUserNotFound) {
			response.NotFound(w, "User not found")
			return
		}
		response.InternalError(w, "Failed to get user")
		return
	}

	response.JSON(w, http.StatusOK, u)
}

// GetJoinedGroups handles GET /users/{username}/groups
// @Summary      Get groups joined by a user
// @Description  Get every group whose member list contains the user
// @Tags         users
// @Produce      json
// @Param        username path string true "Username"
// @Success      200 {array} model.Group
// @Failure      404 {string} string "User not found"
// @Router       /users/{username}/groups [get]
func (h *Handler) GetJoinedGroups(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	groups, err := h.service.JoinedGroups(username)
	if err != nil {
		if errors.Is(err, dataset.ErrUserNotFound) {
			response.NotFound(w, "User not found")
			return
		}
		response.InternalError(w, "Failed to get joined groups")
		return
	}

	response.JSON(w, http.StatusOK, groups)
}
