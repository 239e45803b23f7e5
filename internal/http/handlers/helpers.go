package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"linkboard/internal/listview"
	"linkboard/internal/upstream"
)

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// writeActionError maps a failed dispatch to a response: remote-reported
// failures keep the upstream status and message verbatim, transport failures
// become a 502.
func writeActionError(w http.ResponseWriter, err error) {
	var ue *upstream.Error
	if errors.As(err, &ue) {
		writeJSON(w, ue.Status, map[string]any{"message": ue.Message})
		return
	}
	writeJSON(w, http.StatusBadGateway, map[string]any{"message": err.Error()})
}

func pageParams(r *http.Request) (page, size int, refresh bool) {
	if v := r.URL.Query().Get("page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 1 {
			page = n
		}
	}
	if v := r.URL.Query().Get("page_size"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			size = n
		}
	}
	refresh = r.URL.Query().Get("refresh") == "1"
	return
}

// setIfPresent copies a query parameter into the criteria, skipping values
// that impose no constraint so unrelated requests compare equal.
func setIfPresent(cr *listview.Criteria, r *http.Request, name string) {
	v := r.URL.Query().Get(name)
	if v == "" || v == listview.AllValue {
		return
	}
	cr.SetValue(name, v)
}

// setDateRange reads the from/to query parameters into the "date" field.
// A date-only `to` bound is advanced to end of day so the range stays
// inclusive against timestamped records.
func setDateRange(cr *listview.Criteria, r *http.Request) {
	from := parseQueryDate(r.URL.Query().Get("from"), false)
	to := parseQueryDate(r.URL.Query().Get("to"), true)
	if from != nil || to != nil {
		cr.SetRange("date", from, to)
	}
}

func parseQueryDate(s string, endOfDay bool) *time.Time {
	if s == "" {
		return nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return &t
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Second)
	}
	return &t
}

// serveList drives one controller through a request: apply query state, load
// when idle or explicitly refreshed, respond with the snapshot. A failed load
// with stale rows still answers 200 so the view can show them alongside the
// error; with nothing to show it answers 502.
func serveList[T any](w http.ResponseWriter, r *http.Request, ctrl *listview.Controller[T], cr listview.Criteria, extra func() map[string]any) {
	page, size, refresh := pageParams(r)
	ctrl.Apply(cr, page, size)
	if ctrl.State() == listview.StateIdle || refresh {
		_ = ctrl.Load(r.Context())
	}
	snap := ctrl.Snapshot()
	if snap.State == listview.StateErrored && snap.Total == 0 {
		writeJSON(w, http.StatusBadGateway, map[string]any{"message": snap.Error})
		return
	}
	body := map[string]any{"data": snap}
	if extra != nil {
		for k, v := range extra() {
			body[k] = v
		}
	}
	writeJSON(w, http.StatusOK, body)
}
