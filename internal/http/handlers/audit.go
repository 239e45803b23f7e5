package handlers

import (
	"net/http"
	"strconv"

	"linkboard/internal/services/dashboard"
)

// ListAudit returns the recorded mutation trail, newest first.
func ListAudit(svc *dashboard.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := 50
		offset := 0
		if v := r.URL.Query().Get("limit"); v != "" {
			if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 200 {
				limit = n
			}
		}
		if v := r.URL.Query().Get("offset"); v != "" {
			if n, err := strconv.Atoi(v); err == nil && n >= 0 {
				offset = n
			}
		}
		entries, err := svc.Audit(r.Context(), limit, offset)
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, map[string]any{"message": "audit lookup failed"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"data": entries})
	}
}
