package learning

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/studypath/backend/internal/models"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// getUserID extracts the authenticated user ID from the request context.
func getUserID(r *http.Request) (int64, bool) {
	uid, ok := r.Context().Value("user_id").(int64)
	return uid, ok
}

func (h *Handler) GetProgress(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserID(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Unauthorized"})
		return
	}
	unitID, err := unitIDFromPath(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid unit ID"})
		return
	}

	resp, err := h.service.GetProgress(r.Context(), userID, unitID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) StartPhase(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserID(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Unauthorized"})
		return
	}
	unitID, err := unitIDFromPath(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid unit ID"})
		return
	}

	phase := models.Phase(mux.Vars(r)["phase"])
	if !models.ValidPhases[phase] || phase == models.PhaseComplete {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "phase must be 'diagnostic', 'lecture', or 'practice'"})
		return
	}

	resp, err := h.service.StartPhase(r.Context(), userID, unitID, phase)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) SubmitDiagnosticAnswer(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserID(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Unauthorized"})
		return
	}
	unitID, err := unitIDFromPath(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid unit ID"})
		return
	}

	var req models.SubmitAnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}
	if req.QuestionText == "" || req.UserAnswer == "" {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "question_text and user_answer are required"})
		return
	}

	resp, err := h.service.SubmitDiagnosticAnswer(r.Context(), userID, unitID, req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) CompleteLecture(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserID(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Unauthorized"})
		return
	}
	unitID, err := unitIDFromPath(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid unit ID"})
		return
	}

	progress, err := h.service.CompleteLecture(r.Context(), userID, unitID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, progress)
}

func (h *Handler) SubmitPracticeAnswer(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserID(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Unauthorized"})
		return
	}
	unitID, err := unitIDFromPath(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid unit ID"})
		return
	}

	var req models.SubmitAnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}
	if req.QuestionText == "" || req.UserAnswer == "" {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "question_text and user_answer are required"})
		return
	}

	resp, err := h.service.SubmitPracticeAnswer(r.Context(), userID, unitID, req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) NextPracticeQuestion(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserID(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Unauthorized"})
		return
	}
	unitID, err := unitIDFromPath(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid unit ID"})
		return
	}

	question, err := h.service.NextPracticeQuestion(r.Context(), userID, unitID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, question)
}

func (h *Handler) EndSession(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserID(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Unauthorized"})
		return
	}
	sessionID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid session ID"})
		return
	}

	var req models.EndSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}
	if req.DurationSeconds < 0 {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "duration_seconds must be non-negative"})
		return
	}

	if err := h.service.EndSession(r.Context(), sessionID, userID, req.DurationSeconds); err != nil {
		writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: "Session not found"})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func unitIDFromPath(r *http.Request) (int64, error) {
	return strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
}

// writeServiceError maps engine errors onto HTTP statuses. A failed
// evaluation or generation is the upstream provider's fault (502); locked
// units and illegal transitions are client-state conflicts.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrUnitLocked):
		writeJSON(w, http.StatusForbidden, models.ErrorResponse{Error: "Unit is locked: complete its prerequisites first"})
	case errors.Is(err, ErrInvalidTransition):
		writeJSON(w, http.StatusConflict, models.ErrorResponse{Error: "Phase not reachable from current progress"})
	case errors.Is(err, ErrEvaluationFailed):
		writeJSON(w, http.StatusBadGateway, models.ErrorResponse{Error: "Answer evaluation failed, please resubmit"})
	case errors.Is(err, ErrContentGeneration):
		writeJSON(w, http.StatusBadGateway, models.ErrorResponse{Error: "Content generation failed, please retry"})
	default:
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Internal server error"})
	}
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
