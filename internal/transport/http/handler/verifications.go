package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/course-reviews-api/internal/application/verification"
)

// VerificationHandler handles one-time code issuance.
type VerificationHandler struct {
	svc verification.Service
}

func NewVerificationHandler(svc verification.Service) *VerificationHandler {
	return &VerificationHandler{svc: svc}
}

// Create asks the provider to email a one-time code to the claimed username.
func (h *VerificationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Username string `json:"username"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Username == "" {
		writeError(w, http.StatusBadRequest, "Username required.")
		return
	}

	res, err := h.svc.IssueCode(r.Context(), body.Username)
	if err != nil {
		slog.Warn("code issuance failed", "err", err)
		writeError(w, http.StatusInternalServerError, "Error sending code. Try again later.")
		return
	}
	if !res.Accepted {
		writeError(w, http.StatusBadRequest, res.Reason)
		return
	}
	writeJSON(w, http.StatusCreated, struct{}{})
}
