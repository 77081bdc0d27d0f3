package api

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"idgate/internal/api/helpers"
	"idgate/internal/audit"
	"idgate/internal/validator"
)

// IdentifierHandler serves the acceptance-check endpoints.
type IdentifierHandler struct {
	validator *validator.Validator
	audit     audit.AuditLogger
}

func NewIdentifierHandler(v *validator.Validator, auditLogger audit.AuditLogger) *IdentifierHandler {
	return &IdentifierHandler{validator: v, audit: auditLogger}
}

// CheckResponse is the wire shape for an acceptance decision.
type CheckResponse struct {
	ID         uint64 `json:"id"`
	Acceptable bool   `json:"acceptable"`
}

// Check decides whether the identifier in the URL may be used.
// Unlike the CLI, the HTTP surface parses strictly: a non-numeric id is
// a 400, not a zero.
func (h *IdentifierHandler) Check(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "id")

	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		helpers.RespondError(w, http.StatusBadRequest, "id must be a non-negative integer")
		return
	}

	ctx := r.Context()
	ok, err := h.validator.IsAcceptable(ctx, id)
	if err != nil {
		slog.Error("identifier_check_failed", "id", id, "error", err)
		h.audit.Log(ctx, audit.EventCheckFailed, id, map[string]string{
			"reason": "existence check error",
		})
		helpers.RespondError(w, http.StatusServiceUnavailable, "service temporarily unavailable")
		return
	}

	action := audit.EventCheckRejected
	if ok {
		action = audit.EventCheckAccepted
	}
	h.audit.Log(ctx, action, id, nil)

	helpers.RespondJSON(w, http.StatusOK, CheckResponse{ID: id, Acceptable: ok})
}
