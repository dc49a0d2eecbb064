package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/course-reviews-api/internal/application/course"
	"github.com/course-reviews-api/internal/domain"
)

// CourseHandler handles course catalog endpoints.
type CourseHandler struct {
	svc course.Service
}

func NewCourseHandler(svc course.Service) *CourseHandler {
	return &CourseHandler{svc: svc}
}

func (h *CourseHandler) List(w http.ResponseWriter, r *http.Request) {
	out, err := h.svc.ListWithStats(r.Context())
	if err != nil {
		slog.Warn("course list failed", "err", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *CourseHandler) Get(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	detail, err := h.svc.GetBySlug(r.Context(), slug)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "course not found")
			return
		}
		slog.Warn("course detail failed", "slug", slug, "err", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, detail)
}
