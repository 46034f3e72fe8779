package certificate

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/mfurukawa/traineehub/pkg/response"
)

// Handler handles HTTP requests for certificate operations
type Handler struct {
	service  *Service
	validate *validator.Validate
}

// NewHandler creates a new certificate handler
func NewHandler(service *Service, validate *validator.Validate) *Handler {
	return &Handler{service: service, validate: validate}
}

// Routes returns the router for certificate endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.Create)
	r.Get("/{id}", h.GetByID)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)

	return r
}

// Create handles POST /certificates
// @Summary      Attach a certificate to a trainee
// @Tags         certificates
// @Accept       json
// @Produce      json
// @Param        request body CreateCertificateRequest true "Certificate creation request"
// @Success      201 {object} response.APIResponse{data=Certificate}
// @Failure      400 {object} response.APIResponse
// @Router       /certificates [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateCertificateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	c, err := h.service.Create(r.Context(), &req)
	if err != nil {
		if errors.Is(err, ErrInvalidDocumentType) {
			response.BadRequest(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to create certificate")
		return
	}

	response.JSON(w, http.StatusCreated, c)
}

// GetByID handles GET /certificates/{id}
// @Summary      Get certificate by ID
// @Tags         certificates
// @Produce      json
// @Param        id path string true "Certificate ID"
// @Success      200 {object} response.APIResponse{data=Certificate}
// @Failure      404 {object} response.APIResponse
// @Router       /certificates/{id} [get]
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid certificate ID")
		return
	}

	c, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrCertificateNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to get certificate")
		return
	}

	response.JSON(w, http.StatusOK, c)
}

// ListByTrainee handles GET /trainees/{traineeId}/certificates.
// Mounted from the parent router so certificate listings hang off the
// trainee resource.
func (h *Handler) ListByTrainee(w http.ResponseWriter, r *http.Request) {
	traineeID, err := uuid.Parse(chi.URLParam(r, "traineeId"))
	if err != nil {
		response.BadRequest(w, "Invalid trainee ID")
		return
	}

	certs, err := h.service.ListByTraineeID(r.Context(), traineeID)
	if err != nil {
		response.InternalError(w, "Failed to list certificates")
		return
	}

	response.JSON(w, http.StatusOK, certs)
}

// Update handles PUT /certificates/{id}
// @Summary      Update a certificate
// @Tags         certificates
// @Accept       json
// @Produce      json
// @Param        id path string true "Certificate ID"
// @Param        request body UpdateCertificateRequest true "Certificate update request"
// @Success      200 {object} response.APIResponse{data=Certificate}
// @Failure      404 {object} response.APIResponse
// @Router       /certificates/{id} [put]
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid certificate ID")
		return
	}

	var req UpdateCertificateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	c, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, ErrCertificateNotFound):
			response.NotFound(w, err.Error())
		case errors.Is(err, ErrInvalidDocumentType):
			response.BadRequest(w, err.Error())
		default:
			response.InternalError(w, "Failed to update certificate")
		}
		return
	}

	response.JSON(w, http.StatusOK, c)
}

// Delete handles DELETE /certificates/{id} (soft delete)
// @Summary      Deactivate a certificate
// @Tags         certificates
// @Produce      json
// @Param        id path string true "Certificate ID"
// @Success      200 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /certificates/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid certificate ID")
		return
	}

	if err := h.service.Deactivate(r.Context(), id); err != nil {
		if errors.Is(err, ErrCertificateNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to deactivate certificate")
		return
	}

	response.JSON(w, http.StatusOK, map[string]bool{"deleted": true})
}
