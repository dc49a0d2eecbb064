package handler

import (
	"log/slog"
	"net/http"

	"github.com/course-reviews-api/internal/application/program"
)

// ProgramHandler handles degree program listing.
type ProgramHandler struct {
	svc program.Service
}

func NewProgramHandler(svc program.Service) *ProgramHandler {
	return &ProgramHandler{svc: svc}
}

func (h *ProgramHandler) List(w http.ResponseWriter, r *http.Request) {
	out, err := h.svc.List(r.Context())
	if err != nil {
		slog.Warn("program list failed", "err", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, out)
}
