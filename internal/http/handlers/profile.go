package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	middlewarex "linkboard/internal/http/middleware"
	"linkboard/internal/services/dashboard"
	"linkboard/internal/upstream"
)

func UpdateProfile(svc *dashboard.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := middlewarex.SessionFrom(r.Context())
		if !ok {
			http.Error(w, "session not found", http.StatusUnauthorized)
			return
		}
		var upd upstream.ProfileUpdate
		if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]any{"message": "invalid JSON"})
			return
		}
		if strings.TrimSpace(upd.Name) == "" && strings.TrimSpace(upd.Email) == "" && strings.TrimSpace(upd.Bio) == "" {
			writeJSON(w, http.StatusBadRequest, map[string]any{"message": "nothing to update"})
			return
		}
		if err := svc.UpdateProfile(r.Context(), sess, upd); err != nil {
			writeActionError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"message": "profile updated"})
	}
}

// ChangePassword enforces the local checks before any remote call: current
// password present, new password long enough, confirmation matching.
func ChangePassword(svc *dashboard.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := middlewarex.SessionFrom(r.Context())
		if !ok {
			http.Error(w, "session not found", http.StatusUnauthorized)
			return
		}
		var body struct {
			CurrentPassword string `json:"current_password"`
			NewPassword     string `json:"new_password"`
			ConfirmPassword string `json:"confirm_password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]any{"message": "invalid JSON"})
			return
		}
		if body.CurrentPassword == "" {
			writeJSON(w, http.StatusBadRequest, map[string]any{"message": "current password is required"})
			return
		}
		if len(body.NewPassword) < 8 {
			writeJSON(w, http.StatusBadRequest, map[string]any{"message": "new password must be at least 8 characters"})
			return
		}
		if body.NewPassword != body.ConfirmPassword {
			writeJSON(w, http.StatusBadRequest, map[string]any{"message": "passwords do not match"})
			return
		}
		if err := svc.ChangePassword(r.Context(), sess, body.CurrentPassword, body.NewPassword); err != nil {
			writeActionError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"message": "password changed"})
	}
}
