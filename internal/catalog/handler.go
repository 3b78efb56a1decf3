package catalog

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	"github.com/studypath/backend/internal/models"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func getUserID(r *http.Request) (int64, bool) {
	uid, ok := r.Context().Value("user_id").(int64)
	return uid, ok
}

func (h *Handler) ListSubjects(w http.ResponseWriter, r *http.Request) {
	subjects, err := h.service.ListSubjects(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to list subjects"})
		return
	}
	if subjects == nil {
		subjects = []string{}
	}
	writeJSON(w, http.StatusOK, models.SubjectListResponse{Subjects: subjects})
}

func (h *Handler) ListUnits(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserID(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Unauthorized"})
		return
	}

	subject := r.URL.Query().Get("subject")
	units, err := h.service.ListUnitsForUser(r.Context(), userID, subject)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to list units"})
		return
	}
	writeJSON(w, http.StatusOK, models.UnitListResponse{Units: units, Total: len(units)})
}

func (h *Handler) GetUnit(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid unit ID"})
		return
	}

	unit, err := h.service.GetUnit(r.Context(), id)
	if err != nil {
		writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: "Unit not found"})
		return
	}
	writeJSON(w, http.StatusOK, unit)
}

func (h *Handler) CreateCustomUnit(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserID(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req models.CustomUnitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}
	req.Subject = strings.TrimSpace(req.Subject)
	req.Query = strings.TrimSpace(req.Query)
	if req.Subject == "" || req.Query == "" {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "subject and query are required"})
		return
	}

	unit, err := h.service.CreateCustomUnit(r.Context(), userID, req.Subject, req.Query)
	if err != nil {
		writeJSON(w, http.StatusBadGateway, models.ErrorResponse{Error: "Failed to create custom unit: " + err.Error()})
		return
	}
	writeJSON(w, http.StatusCreated, unit)
}

func (h *Handler) SearchUnits(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "q parameter is required"})
		return
	}

	suggestions, err := h.service.SearchUnits(r.Context(), query)
	if err != nil {
		writeJSON(w, http.StatusBadGateway, models.ErrorResponse{Error: "Search failed"})
		return
	}
	writeJSON(w, http.StatusOK, suggestions)
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
