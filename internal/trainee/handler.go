package trainee

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	mw "github.com/mfurukawa/traineehub/pkg/middleware"
	"github.com/mfurukawa/traineehub/pkg/response"
)

// Handler handles HTTP requests for trainee operations
type Handler struct {
	service  *Service
	validate *validator.Validate
}

// NewHandler creates a new trainee handler
func NewHandler(service *Service, validate *validator.Validate) *Handler {
	return &Handler{service: service, validate: validate}
}

// Routes returns the router for trainee endpoints. Deletion is limited
// to administrators; the remaining operations are open to any staff role.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.Create)
	r.Get("/", h.List)
	r.Get("/export", h.ExportCSV)
	r.Get("/export-excel", h.ExportExcel)
	r.Get("/{id}", h.GetByID)
	r.Put("/{id}", h.Update)
	r.With(mw.RequireRoles("ADMIN")).Delete("/{id}", h.Delete)

	return r
}

// Create handles POST /trainees
// @Summary      Register a trainee
// @Tags         trainees
// @Accept       json
// @Produce      json
// @Param        request body CreateTraineeRequest true "Trainee registration request"
// @Success      201 {object} response.APIResponse{data=Trainee}
// @Failure      400 {object} response.APIResponse
// @Failure      409 {object} response.APIResponse
// @Router       /trainees [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateTraineeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	t, err := h.service.Create(r.Context(), &req)
	if err != nil {
		if errors.Is(err, ErrCodeAlreadyInUse) {
			response.Conflict(w, "この実習生IDは既に使用されています")
			return
		}
		response.InternalError(w, "Failed to create trainee")
		return
	}

	response.JSON(w, http.StatusCreated, t)
}

// List handles GET /trainees
// @Summary      List active trainees
// @Tags         trainees
// @Produce      json
// @Success      200 {object} response.APIResponse{data=[]TraineeSummary}
// @Router       /trainees [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	trainees, err := h.service.ListSummaries(r.Context())
	if err != nil {
		response.InternalError(w, "Failed to fetch trainees")
		return
	}

	response.JSON(w, http.StatusOK, trainees)
}

// GetByID handles GET /trainees/{id}
// @Summary      Get trainee by ID
// @Tags         trainees
// @Produce      json
// @Param        id path string true "Trainee ID"
// @Success      200 {object} response.APIResponse{data=Trainee}
// @Failure      404 {object} response.APIResponse
// @Router       /trainees/{id} [get]
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid trainee ID")
		return
	}

	t, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrTraineeNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to get trainee")
		return
	}

	response.JSON(w, http.StatusOK, t)
}

// Update handles PUT /trainees/{id}
// @Summary      Update a trainee
// @Tags         trainees
// @Accept       json
// @Produce      json
// @Param        id path string true "Trainee ID"
// @Param        request body UpdateTraineeRequest true "Trainee update request"
// @Success      200 {object} response.APIResponse{data=Trainee}
// @Failure      404 {object} response.APIResponse
// @Router       /trainees/{id} [put]
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid trainee ID")
		return
	}

	var req UpdateTraineeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	t, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		if errors.Is(err, ErrTraineeNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to update trainee")
		return
	}

	response.JSON(w, http.StatusOK, t)
}

// Delete handles DELETE /trainees/{id} (soft delete, ADMIN only)
// @Summary      Deactivate a trainee
// @Tags         trainees
// @Produce      json
// @Param        id path string true "Trainee ID"
// @Success      200 {object} response.APIResponse
// @Failure      403 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /trainees/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid trainee ID")
		return
	}

	if err := h.service.Deactivate(r.Context(), id); err != nil {
		if errors.Is(err, ErrTraineeNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to deactivate trainee")
		return
	}

	response.JSON(w, http.StatusOK, map[string]bool{"success": true})
}

// ExportCSV handles GET /trainees/export
// @Summary      Export active trainees as CSV
// @Tags         trainees
// @Produce      text/csv
// @Success      200 {string} string "CSV file"
// @Router       /trainees/export [get]
func (h *Handler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	trainees, err := h.service.ListActive(r.Context())
	if err != nil {
		response.InternalError(w, "Failed to fetch trainees")
		return
	}

	filename := "trainees_" + time.Now().Format("2006-01-02") + ".csv"
	w.Header().Set("Content-Type", "text/csv;charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)

	if err := WriteCSV(w, trainees); err != nil {
		// Headers already sent; nothing sensible to return to the client.
		return
	}
}

// ExportExcel handles GET /trainees/export-excel
// @Summary      Export active trainees as an Excel workbook
// @Tags         trainees
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200 {string} string "XLSX file"
// @Router       /trainees/export-excel [get]
func (h *Handler) ExportExcel(w http.ResponseWriter, r *http.Request) {
	trainees, err := h.service.ListActive(r.Context())
	if err != nil {
		response.InternalError(w, "Failed to fetch trainees")
		return
	}

	f, err := BuildWorkbook(trainees)
	if err != nil {
		response.InternalError(w, "Failed to build workbook")
		return
	}

	filename := "trainees_" + time.Now().Format("2006-01-02") + ".xlsx"
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)

	if err := f.Write(w); err != nil {
		return
	}
}
