package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/course-reviews-api/internal/application/review"
	"github.com/course-reviews-api/internal/domain"
)

// ReviewHandler handles review submission and the recent-reviews feed.
type ReviewHandler struct {
	svc review.Service
}

func NewReviewHandler(svc review.Service) *ReviewHandler {
	return &ReviewHandler{svc: svc}
}

// Create runs one submission through the verification pipeline. Classified
// rejections come back as 400 with client-facing messages; anything
// unclassified is a generic 500 so provider and store internals never leak.
func (h *ReviewHandler) Create(w http.ResponseWriter, r *http.Request) {
	var sub domain.ReviewSubmission
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		writeErrors(w, http.StatusBadRequest, []string{"Invalid request body."})
		return
	}

	res, err := h.svc.Submit(r.Context(), sub)
	if err != nil {
		slog.Warn("review submission failed", "err", err)
		writeErrors(w, http.StatusInternalServerError, []string{"Error creating review. Try again later."})
		return
	}
	if res.Status == review.StatusRejected {
		writeErrors(w, http.StatusBadRequest, res.Errors)
		return
	}
	writeJSON(w, http.StatusCreated, struct{}{})
}

// Recent returns the newest reviews across all courses.
func (h *ReviewHandler) Recent(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	out, err := h.svc.Recent(r.Context(), limit)
	if err != nil {
		slog.Warn("recent reviews query failed", "err", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, out)
}
