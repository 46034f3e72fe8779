package skill

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/mfurukawa/traineehub/pkg/response"
)

// Handler handles HTTP requests for the skill catalogue
type Handler struct {
	service  *Service
	validate *validator.Validate
}

// NewHandler creates a new skill handler
func NewHandler(service *Service, validate *validator.Validate) *Handler {
	return &Handler{service: service, validate: validate}
}

// Routes returns the router for skill endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.Create)
	r.Get("/", h.List)
	r.Get("/{id}", h.GetByID)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)

	return r
}

// Create handles POST /skills
// @Summary      Add a skill to the catalogue
// @Tags         skills
// @Accept       json
// @Produce      json
// @Param        request body CreateSkillRequest true "Skill creation request"
// @Success      201 {object} response.APIResponse{data=SkillMaster}
// @Failure      400 {object} response.APIResponse
// @Router       /skills [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateSkillRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	sk, err := h.service.Create(r.Context(), &req)
	if err != nil {
		response.InternalError(w, "Failed to create skill")
		return
	}

	response.JSON(w, http.StatusCreated, sk)
}

// List handles GET /skills
// @Summary      List the skill catalogue
// @Tags         skills
// @Produce      json
// @Success      200 {object} response.APIResponse{data=[]SkillMaster}
// @Router       /skills [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	skills, err := h.service.List(r.Context())
	if err != nil {
		response.InternalError(w, "Failed to list skills")
		return
	}

	response.JSON(w, http.StatusOK, skills)
}

// GetByID handles GET /skills/{id}
// @Summary      Get skill by ID
// @Tags         skills
// @Produce      json
// @Param        id path string true "Skill ID"
// @Success      200 {object} response.APIResponse{data=SkillMaster}
// @Failure      404 {object} response.APIResponse
// @Router       /skills/{id} [get]
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid skill ID")
		return
	}

	sk, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrSkillNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to get skill")
		return
	}

	response.JSON(w, http.StatusOK, sk)
}

// Update handles PUT /skills/{id}
// @Summary      Update a skill
// @Tags         skills
// @Accept       json
// @Produce      json
// @Param        id path string true "Skill ID"
// @Param        request body UpdateSkillRequest true "Skill update request"
// @Success      200 {object} response.APIResponse{data=SkillMaster}
// @Failure      404 {object} response.APIResponse
// @Router       /skills/{id} [put]
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid skill ID")
		return
	}

	var req UpdateSkillRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	sk, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		if errors.Is(err, ErrSkillNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to update skill")
		return
	}

	response.JSON(w, http.StatusOK, sk)
}

// Delete handles DELETE /skills/{id}
// @Summary      Remove a skill
// @Tags         skills
// @Produce      json
// @Param        id path string true "Skill ID"
// @Success      200 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /skills/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid skill ID")
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, ErrSkillNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to delete skill")
		return
	}

	response.JSON(w, http.StatusOK, map[string]bool{"deleted": true})
}
