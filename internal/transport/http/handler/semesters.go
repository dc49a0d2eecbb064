package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/course-reviews-api/internal/application/semester"
)

// SemesterHandler handles semester listing.
type SemesterHandler struct {
	svc semester.Service
}

func NewSemesterHandler(svc semester.Service) *SemesterHandler {
	return &SemesterHandler{svc: svc}
}

func (h *SemesterHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	out, err := h.svc.ListRecent(r.Context(), limit)
	if err != nil {
		slog.Warn("semester list failed", "err", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, out)
}
