package organization

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/mfurukawa/traineehub/pkg/middleware"
	"github.com/mfurukawa/traineehub/pkg/response"
)

// Handler handles HTTP requests for organization operations
type Handler struct {
	service  *Service
	validate *validator.Validate
}

// NewHandler creates a new organization handler
func NewHandler(service *Service, validate *validator.Validate) *Handler {
	return &Handler{service: service, validate: validate}
}

// Routes returns the router for admin organization endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.Create)
	r.Get("/", h.List)
	r.Get("/{id}", h.GetByID)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)

	return r
}

// Create handles POST /admin/organizations
// @Summary      Create an organization
// @Tags         organizations
// @Accept       json
// @Produce      json
// @Param        request body CreateOrganizationRequest true "Organization creation request"
// @Success      201 {object} response.APIResponse{data=OrganizationResponse}
// @Failure      400 {object} response.APIResponse
// @Failure      409 {object} response.APIResponse
// @Router       /admin/organizations [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateOrganizationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		response.BadRequest(w, "組織名は必須です")
		return
	}

	o, err := h.service.Create(r.Context(), &req)
	if err != nil {
		if errors.Is(err, ErrCodeAlreadyInUse) {
			response.Conflict(w, "このコードは既に使用されています")
			return
		}
		response.InternalError(w, "Failed to create organization")
		return
	}

	response.JSON(w, http.StatusCreated, o.ToResponse())
}

// List handles GET /admin/organizations
// @Summary      List organizations
// @Tags         organizations
// @Produce      json
// @Success      200 {object} response.APIResponse{data=[]OrganizationResponse}
// @Router       /admin/organizations [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	orgs, err := h.service.List(r.Context())
	if err != nil {
		response.InternalError(w, "Failed to list organizations")
		return
	}

	orgResponses := make([]*OrganizationResponse, len(orgs))
	for i, o := range orgs {
		orgResponses[i] = o.ToResponse()
	}

	response.JSON(w, http.StatusOK, orgResponses)
}

// GetByID handles GET /admin/organizations/{id}
// @Summary      Get organization by ID
// @Tags         organizations
// @Produce      json
// @Param        id path string true "Organization ID"
// @Success      200 {object} response.APIResponse{data=OrganizationResponse}
// @Failure      404 {object} response.APIResponse
// @Router       /admin/organizations/{id} [get]
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid organization ID")
		return
	}

	o, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrOrganizationNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to get organization")
		return
	}

	response.JSON(w, http.StatusOK, o.ToResponse())
}

// Update handles PUT /admin/organizations/{id}
// @Summary      Update an organization
// @Tags         organizations
// @Accept       json
// @Produce      json
// @Param        id path string true "Organization ID"
// @Param        request body UpdateOrganizationRequest true "Organization update request"
// @Success      200 {object} response.APIResponse{data=OrganizationResponse}
// @Failure      404 {object} response.APIResponse
// @Router       /admin/organizations/{id} [put]
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid organization ID")
		return
	}

	var req UpdateOrganizationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	o, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, ErrOrganizationNotFound):
			response.NotFound(w, err.Error())
		case errors.Is(err, ErrCodeAlreadyInUse):
			response.Conflict(w, "このコードは既に使用されています")
		default:
			response.InternalError(w, "Failed to update organization")
		}
		return
	}

	response.JSON(w, http.StatusOK, o.ToResponse())
}

// Delete handles DELETE /admin/organizations/{id} (soft delete)
// @Summary      Deactivate an organization
// @Tags         organizations
// @Produce      json
// @Param        id path string true "Organization ID"
// @Success      200 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /admin/organizations/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid organization ID")
		return
	}

	if err := h.service.Deactivate(r.Context(), id); err != nil {
		if errors.Is(err, ErrOrganizationNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to deactivate organization")
		return
	}

	response.JSON(w, http.StatusOK, map[string]bool{"deleted": true})
}

// MyOrganizations handles GET /me/orgs
// @Summary      List the caller's organizations
// @Tags         organizations
// @Produce      json
// @Success      200 {object} response.APIResponse{data=[]OrganizationResponse}
// @Router       /me/orgs [get]
func (h *Handler) MyOrganizations(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	orgs, err := h.service.ListByUserID(r.Context(), identity.UserID)
	if err != nil {
		response.InternalError(w, "Failed to list organizations")
		return
	}

	orgResponses := make([]*OrganizationResponse, len(orgs))
	for i, o := range orgs {
		orgResponses[i] = o.ToResponse()
	}

	response.JSON(w, http.StatusOK, orgResponses)
}
