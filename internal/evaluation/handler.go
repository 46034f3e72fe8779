package evaluation

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

// Handler handles HTTP requests for evaluations
type Handler struct {
	service  *Service
	validate *validator.Validate
}

// NewHandler creates a new evaluation handler
func NewHandler(service *Service, validate *validator.Validate) *Handler {
	return &Handler{service: service, validate: validate}
}

// Routes returns the router for evaluation endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.Create)
	r.Get("/{id}", h.GetByID)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)

	return r
}

// Create handles POST /evaluations
// @Summary      Record a skill evaluation
// @Description  The authenticated user is recorded as the evaluator.
// @Tags         evaluations
// @Accept       json
// @Produce      json
// @Param        request body CreateEvaluationRequest true "Evaluation creation request"
// @Success      201 {object} response.APIResponse{data=Evaluation}
// @Failure      400 {object} response.APIResponse
// @Router       /evaluations [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	var req CreateEvaluationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	e, err := h.service.Create(r.Context(), identity.UserID, &req)
	if err != nil {
		if errors.Is(err, ErrInvalidLevel) {
			response.BadRequest(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to create evaluation")
		return
	}

	response.JSON(w, http.StatusCreated, e)
}

// GetByID handles GET /evaluations/{id}
// @Summary      Get evaluation by ID
// @Tags         evaluations
// @Produce      json
// @Param        id path string true "Evaluation ID"
// @Success      200 {object} response.APIResponse{data=Evaluation}
// @Failure      404 {object} response.APIResponse
// @Router       /evaluations/{id} [get]
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid evaluation ID")
		return
	}

	e, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrEvaluationNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to get evaluation")
		return
	}

	response.JSON(w, http.StatusOK, e)
}

// ListByTrainee handles GET /trainees/{traineeId}/evaluations
// @Summary      List evaluations for a trainee
// @Tags         evaluations
// @Produce      json
// @Param        traineeId path string true "Trainee ID"
// @Success      200 {object} response.APIResponse{data=[]Evaluation}
// @Router       /trainees/{traineeId}/evaluations [get]
func (h *Handler) ListByTrainee(w http.ResponseWriter, r *http.Request) {
	traineeID, err := uuid.Parse(chi.URLParam(r, "traineeId"))
	if err != nil {
		response.BadRequest(w, "Invalid trainee ID")
		return
	}

	evaluations, err := h.service.ListByTraineeID(r.Context(), traineeID)
	if err != nil {
		response.InternalError(w, "Failed to list evaluations")
		return
	}

	response.JSON(w, http.StatusOK, evaluations)
}

// Update handles PUT /evaluations/{id}
// @Summary      Update an evaluation
// @Tags         evaluations
// @Accept       json
// @Produce      json
// @Param        id path string true "Evaluation ID"
// @Param        request body UpdateEvaluationRequest true "Evaluation update request"
// @Success      200 {object} response.APIResponse{data=Evaluation}
// @Failure      404 {object} response.APIResponse
// @Router       /evaluations/{id} [put]
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid evaluation ID")
		return
	}

	var req UpdateEvaluationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	e, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, ErrEvaluationNotFound):
			response.NotFound(w, err.Error())
		case errors.Is(err, ErrInvalidLevel):
			response.BadRequest(w, err.Error())
		default:
			response.InternalError(w, "Failed to update evaluation")
		}
		return
	}

	response.JSON(w, http.StatusOK, e)
}

// Delete handles DELETE /evaluations/{id}
// @Summary      Remove an evaluation
// @Tags         evaluations
// @Produce      json
// @Param        id path string true "Evaluation ID"
// @Success      200 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /evaluations/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid evaluation ID")
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, ErrEvaluationNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to delete evaluation")
		return
	}

	response.JSON(w, http.StatusOK, map[string]bool{"deleted": true})
}
