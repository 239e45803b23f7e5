package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	middlewarex "linkboard/internal/http/middleware"
	"linkboard/internal/services/dashboard"
	"linkboard/internal/session"
	"linkboard/internal/upstream"
)

// Login proxies credentials upstream and hydrates a gateway session from the
// result. The upstream token doubles as the dashboard bearer token.
func Login(api *upstream.Client, mgr *session.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]any{"message": "invalid JSON"})
			return
		}
		if strings.TrimSpace(body.Email) == "" || body.Password == "" {
			writeJSON(w, http.StatusBadRequest, map[string]any{"message": "email and password are required"})
			return
		}

		res, err := api.Login(r.Context(), body.Email, body.Password)
		if err != nil {
			writeActionError(w, err)
			return
		}

		sess := session.Session{
			Token:  res.Token,
			UserID: int64(res.User.ID),
			Name:   res.User.Name,
			Email:  res.User.Email,
			Role:   session.Role(res.User.Role),
		}
		if err := mgr.Hydrate(r.Context(), sess); err != nil {
			writeJSON(w, http.StatusBadGateway, map[string]any{"message": err.Error()})
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"token": sess.Token,
			"user": map[string]any{
				"id":    sess.UserID,
				"name":  sess.Name,
				"email": sess.Email,
				"role":  sess.Role,
			},
		})
	}
}

// Logout clears the session and drops its mounted controllers.
func Logout(mgr *session.Manager, svc *dashboard.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := middlewarex.SessionFrom(r.Context())
		if !ok {
			http.Error(w, "session not found", http.StatusUnauthorized)
			return
		}
		mgr.Clear(r.Context(), sess.Token)
		svc.Drop(sess.Token)
		writeJSON(w, http.StatusOK, map[string]any{"message": "logged out"})
	}
}
