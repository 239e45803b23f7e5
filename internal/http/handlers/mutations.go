package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"linkboard/internal/domain/payment"
	middlewarex "linkboard/internal/http/middleware"
	"linkboard/internal/services/dashboard"
)

func recordID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	return id, err == nil && id > 0
}

// MarkPaid settles a pending payout. Success answers with a fresh snapshot
// already refetched by the controller.
func MarkPaid(svc *dashboard.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := middlewarex.SessionFrom(r.Context())
		if !ok {
			http.Error(w, "session not found", http.StatusUnauthorized)
			return
		}
		id, ok := recordID(r)
		if !ok {
			writeJSON(w, http.StatusBadRequest, map[string]any{"message": "invalid payment id"})
			return
		}
		if err := svc.MutatePayments(r.Context(), sess, dashboard.ActionMarkPaid, id, nil); err != nil {
			writeActionError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"message": "payment marked as paid"})
	}
}

func FinalizeTask(svc *dashboard.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := middlewarex.SessionFrom(r.Context())
		if !ok {
			http.Error(w, "session not found", http.StatusUnauthorized)
			return
		}
		id, ok := recordID(r)
		if !ok {
			writeJSON(w, http.StatusBadRequest, map[string]any{"message": "invalid task id"})
			return
		}
		if err := svc.MutateTasks(r.Context(), sess, dashboard.ActionFinalizeTask, id, nil); err != nil {
			writeActionError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"message": "task finalized"})
	}
}

func RejectTask(svc *dashboard.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := middlewarex.SessionFrom(r.Context())
		if !ok {
			http.Error(w, "session not found", http.StatusUnauthorized)
			return
		}
		id, ok := recordID(r)
		if !ok {
			writeJSON(w, http.StatusBadRequest, map[string]any{"message": "invalid task id"})
			return
		}
		var body struct {
			Reason string `json:"reason"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]any{"message": "invalid JSON"})
			return
		}
		if strings.TrimSpace(body.Reason) == "" {
			writeJSON(w, http.StatusBadRequest, map[string]any{"message": "rejection reason is required"})
			return
		}
		if err := svc.MutateTasks(r.Context(), sess, dashboard.ActionRejectTask, id, body.Reason); err != nil {
			writeActionError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"message": "task rejected"})
	}
}

func SubmitLink(svc *dashboard.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := middlewarex.SessionFrom(r.Context())
		if !ok {
			http.Error(w, "session not found", http.StatusUnauthorized)
			return
		}
		id, ok := recordID(r)
		if !ok {
			writeJSON(w, http.StatusBadRequest, map[string]any{"message": "invalid task id"})
			return
		}
		var body struct {
			LiveURL string `json:"live_url"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]any{"message": "invalid JSON"})
			return
		}
		if !strings.HasPrefix(body.LiveURL, "http") {
			writeJSON(w, http.StatusBadRequest, map[string]any{"message": "a live URL is required"})
			return
		}
		if err := svc.MutateTasks(r.Context(), sess, dashboard.ActionSubmitLink, id, body.LiveURL); err != nil {
			writeActionError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"message": "link submitted"})
	}
}

func SubmitContent(svc *dashboard.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := middlewarex.SessionFrom(r.Context())
		if !ok {
			http.Error(w, "session not found", http.StatusUnauthorized)
			return
		}
		id, ok := recordID(r)
		if !ok {
			writeJSON(w, http.StatusBadRequest, map[string]any{"message": "invalid task id"})
			return
		}
		var body struct {
			DocURL string `json:"doc_url"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]any{"message": "invalid JSON"})
			return
		}
		if strings.TrimSpace(body.DocURL) == "" {
			writeJSON(w, http.StatusBadRequest, map[string]any{"message": "a document URL is required"})
			return
		}
		if err := svc.MutateTasks(r.Context(), sess, dashboard.ActionSubmitContent, id, body.DocURL); err != nil {
			writeActionError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"message": "content submitted"})
	}
}

// SubmitWithdrawal validates the payout request locally; an invalid method or
// amount never reaches the upstream.
func SubmitWithdrawal(svc *dashboard.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := middlewarex.SessionFrom(r.Context())
		if !ok {
			http.Error(w, "session not found", http.StatusUnauthorized)
			return
		}
		var req payment.WithdrawalRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]any{"message": "invalid JSON"})
			return
		}
		if err := req.Validate(); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]any{"message": err.Error()})
			return
		}
		if err := svc.SubmitWithdrawal(r.Context(), sess, req); err != nil {
			writeActionError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"message": "withdrawal submitted"})
	}
}
