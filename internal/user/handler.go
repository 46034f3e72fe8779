package user

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/mfurukawa/traineehub/pkg/middleware"
	"github.com/mfurukawa/traineehub/pkg/response"
)

// Handler handles HTTP requests for user management. All routes are
// mounted behind the ADMIN role guard.
type Handler struct {
	service  *Service
	validate *validator.Validate
}

// NewHandler creates a new user handler
func NewHandler(service *Service, validate *validator.Validate) *Handler {
	return &Handler{service: service, validate: validate}
}

// Routes returns the router for user management endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.Create)
	r.Get("/", h.List)
	r.Get("/{id}", h.GetByID)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
	r.Post("/{id}/link-trainee", h.LinkTrainee)

	return r
}

// Create handles POST /admin/users
// @Summary      Create a user
// @Description  Create a user account with its organization membership
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request body CreateUserRequest true "User creation request"
// @Success      201 {object} response.APIResponse{data=UserResponse}
// @Failure      400 {object} response.APIResponse
// @Failure      409 {object} response.APIResponse
// @Router       /admin/users [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	u, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmailAlreadyInUse):
			response.Conflict(w, "このメールアドレスは既に登録されています")
		case errors.Is(err, ErrInvalidRole):
			response.BadRequest(w, "Invalid role")
		default:
			response.InternalError(w, "Failed to create user")
		}
		return
	}

	response.JSON(w, http.StatusCreated, u.ToResponse())
}

// List handles GET /admin/users
// @Summary      List users
// @Tags         users
// @Produce      json
// @Success      200 {object} response.APIResponse{data=[]UserResponse}
// @Router       /admin/users [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	perPage, _ := strconv.Atoi(r.URL.Query().Get("per_page"))
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 20
	}

	users, total, err := h.service.List(r.Context(), page, perPage)
	if err != nil {
		response.InternalError(w, "Failed to list users")
		return
	}

	userResponses := make([]*UserResponse, len(users))
	for i, u := range users {
		userResponses[i] = u.ToResponse()
	}

	meta := &response.Meta{
		Page:       page,
		PerPage:    perPage,
		Total:      total,
		TotalPages: (total + perPage - 1) / perPage,
	}

	response.JSONWithMeta(w, http.StatusOK, userResponses, meta)
}

// GetByID handles GET /admin/users/{id}
// @Summary      Get user by ID
// @Tags         users
// @Produce      json
// @Param        id path string true "User ID"
// @Success      200 {object} response.APIResponse{data=UserResponse}
// @Failure      404 {object} response.APIResponse
// @Router       /admin/users/{id} [get]
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid user ID")
		return
	}

	u, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to get user")
		return
	}

	response.JSON(w, http.StatusOK, u.ToResponse())
}

// Update handles PUT /admin/users/{id}
// @Summary      Update a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id path string true "User ID"
// @Param        request body UpdateUserRequest true "User update request"
// @Success      200 {object} response.APIResponse{data=UserResponse}
// @Failure      404 {object} response.APIResponse
// @Router       /admin/users/{id} [put]
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid user ID")
		return
	}

	var req UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	u, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, ErrUserNotFound):
			response.NotFound(w, err.Error())
		case errors.Is(err, ErrInvalidRole):
			response.BadRequest(w, "Invalid role")
		default:
			response.InternalError(w, "Failed to update user")
		}
		return
	}

	response.JSON(w, http.StatusOK, u.ToResponse())
}

// Delete handles DELETE /admin/users/{id} (soft delete)
// @Summary      Deactivate a user
// @Tags         users
// @Produce      json
// @Param        id path string true "User ID"
// @Success      200 {object} response.APIResponse
// @Failure      400 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /admin/users/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid user ID")
		return
	}

	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	if err := h.service.Deactivate(r.Context(), id, identity.UserID); err != nil {
		switch {
		case errors.Is(err, ErrSelfDelete):
			response.BadRequest(w, "自分自身を削除することはできません")
		case errors.Is(err, ErrUserNotFound):
			response.NotFound(w, err.Error())
		default:
			response.InternalError(w, "Failed to deactivate user")
		}
		return
	}

	response.JSON(w, http.StatusOK, map[string]bool{"deleted": true})
}

// LinkTrainee handles POST /admin/users/{id}/link-trainee
// @Summary      Link a trainee record to a user
// @Description  Associates the user account with a trainee record, or unlinks with a null trainee_id
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id path string true "User ID"
// @Param        request body LinkTraineeRequest true "Trainee link request"
// @Success      200 {object} response.APIResponse
// @Failure      400 {object} response.APIResponse
// @Router       /admin/users/{id}/link-trainee [post]
func (h *Handler) LinkTrainee(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid user ID")
		return
	}

	var req LinkTraineeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.service.LinkTrainee(r.Context(), id, req.TraineeID); err != nil {
		switch {
		case errors.Is(err, ErrTraineeNotFound):
			response.BadRequest(w, "指定された実習生が見つかりません")
		case errors.Is(err, ErrUserNotFound):
			response.NotFound(w, err.Error())
		default:
			response.InternalError(w, "Failed to link trainee")
		}
		return
	}

	response.JSON(w, http.StatusOK, map[string]bool{"ok": true})
}
