package httpx

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"linkboard/internal/services/dashboard"
	"linkboard/internal/session"
	"linkboard/internal/upstream"
)

func newTestStack(t *testing.T, upstreamHandler http.HandlerFunc) (http.Handler, *session.Manager, func()) {
	t.Helper()
	srv := httptest.NewServer(upstreamHandler)
	api := upstream.New(srv.URL, 5)
	mgr := session.NewManager(session.NewMemoryStore(), time.Hour)
	svc := dashboard.NewService(api, nil)
	router := NewRouter(RouterDependencies{API: api, Sessions: mgr, Dashboard: svc})
	return router, mgr, srv.Close
}

func hydrate(t *testing.T, mgr *session.Manager, token string, role session.Role) {
	t.Helper()
	err := mgr.Hydrate(context.Background(), session.Session{
		Token: token, UserID: 1, Name: "Test", Role: role,
	})
	if err != nil {
		t.Fatalf("hydrate failed: %v", err)
	}
}

func doJSON(t *testing.T, router http.Handler, method, path, token, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var rd *strings.Reader
	if body == "" {
		rd = strings.NewReader("{}")
	} else {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	var decoded map[string]any
	_ = json.Unmarshal(rec.Body.Bytes(), &decoded)
	return rec, decoded
}

const upstreamPayments = `{"payments": [
	{"id": 1, "user_name": "Alex Smith", "user_email": "alex@example.com", "amount": 100.10, "status": "Paid", "request_date": "2024-03-01"},
	{"id": 2, "user_name": "maria", "user_email": "maria@example.com", "amount": 50.25, "status": "Pending", "request_date": "2024-03-02"},
	{"id": 3, "user_name": "Jordan", "user_email": "jordan@example.com", "amount": 25.00, "status": "Rejected", "request_date": "2024-03-03"}
]}`

func TestListPaymentsEndToEnd(t *testing.T) {
	router, mgr, done := newTestStack(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(upstreamPayments))
	})
	defer done()
	hydrate(t, mgr, "tok", session.RoleAccountant)

	rec, body := doJSON(t, router, http.MethodGet, "/api/v1/payments", "tok", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	data := body["data"].(map[string]any)
	if n := data["total"].(float64); n != 3 {
		t.Fatalf("expected 3 rows, got %v", n)
	}
	if total := body["totalAmount"].(float64); total != 100.10+50.25+25.00 {
		t.Fatalf("footer total wrong: %v", total)
	}
}

func TestListPaymentsFilterResetsPage(t *testing.T) {
	router, mgr, done := newTestStack(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(upstreamPayments))
	})
	defer done()
	hydrate(t, mgr, "tok", session.RoleAccountant)

	// Establish the unfiltered view on page 1, then ask for page 2 of a
	// freshly filtered view: the filter must win and reset to page 1.
	doJSON(t, router, http.MethodGet, "/api/v1/payments", "tok", "")
	rec, body := doJSON(t, router, http.MethodGet, "/api/v1/payments?q=alex&page=2", "tok", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	data := body["data"].(map[string]any)
	if p := data["page"].(float64); p != 1 {
		t.Fatalf("filter change must reset to page 1, got %v", p)
	}
	if n := data["total"].(float64); n != 1 {
		t.Fatalf("expected 1 filtered row, got %v", n)
	}
	rows := data["rows"].([]any)
	if rows[0].(map[string]any)["userName"] != "Alex Smith" {
		t.Fatalf("case-insensitive match failed: %v", rows[0])
	}
}

func TestMarkPaidSuccessAndFailure(t *testing.T) {
	failing := false
	router, mgr, done := newTestStack(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			if failing {
				w.WriteHeader(http.StatusConflict)
				w.Write([]byte(`{"message": "payment already settled"}`))
				return
			}
			w.Write([]byte(`{"message": "ok"}`))
			return
		}
		w.Write([]byte(upstreamPayments))
	})
	defer done()
	hydrate(t, mgr, "tok", session.RoleAccountant)

	rec, body := doJSON(t, router, http.MethodPost, "/api/v1/payments/1/mark-paid", "tok", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if body["message"] != "payment marked as paid" {
		t.Fatalf("unexpected message: %v", body["message"])
	}

	failing = true
	rec, body = doJSON(t, router, http.MethodPost, "/api/v1/payments/1/mark-paid", "tok", "")
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected upstream status passthrough, got %d", rec.Code)
	}
	if body["message"] != "payment already settled" {
		t.Fatalf("upstream message not verbatim: %v", body["message"])
	}
}

func TestRoleGuards(t *testing.T) {
	router, mgr, done := newTestStack(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"users": []}`))
	})
	defer done()
	hydrate(t, mgr, "writer-tok", session.RoleWriter)

	// No bearer at all.
	rec, _ := doJSON(t, router, http.MethodGet, "/api/v1/payments", "", "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}

	// Writer may not list users.
	rec, _ = doJSON(t, router, http.MethodGet, "/api/v1/users", "writer-tok", "")
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}

	// Writer may list tasks.
	router2, mgr2, done2 := newTestStack(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"tasks": []}`))
	})
	defer done2()
	hydrate(t, mgr2, "writer-tok", session.RoleWriter)
	rec, _ = doJSON(t, router2, http.MethodGet, "/api/v1/tasks", "writer-tok", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestLoadFailureWithNoDataAnswers502(t *testing.T) {
	router, mgr, done := newTestStack(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"message": "database is down"}`))
	})
	defer done()
	hydrate(t, mgr, "tok", session.RoleAccountant)

	rec, body := doJSON(t, router, http.MethodGet, "/api/v1/payments", "tok", "")
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", rec.Code)
	}
	if msg, _ := body["message"].(string); !strings.Contains(msg, "database is down") {
		t.Fatalf("expected upstream message, got %v", body["message"])
	}
}

func TestLoadFailureWithStaleDataServesIt(t *testing.T) {
	failing := false
	router, mgr, done := newTestStack(t, func(w http.ResponseWriter, r *http.Request) {
		if failing {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"message": "flaky"}`))
			return
		}
		w.Write([]byte(upstreamPayments))
	})
	defer done()
	hydrate(t, mgr, "tok", session.RoleAccountant)

	doJSON(t, router, http.MethodGet, "/api/v1/payments", "tok", "")
	failing = true
	rec, body := doJSON(t, router, http.MethodGet, "/api/v1/payments?refresh=1", "tok", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("stale data should still serve 200, got %d", rec.Code)
	}
	data := body["data"].(map[string]any)
	if n := data["total"].(float64); n != 3 {
		t.Fatalf("stale rows lost: %v", n)
	}
	if data["state"] != string("errored") {
		t.Fatalf("expected errored state, got %v", data["state"])
	}
	if msg, _ := data["error"].(string); !strings.Contains(msg, "flaky") {
		t.Fatalf("expected error message in snapshot, got %v", data["error"])
	}
}

func TestLoginAndLogout(t *testing.T) {
	router, _, done := newTestStack(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/auth/login" {
			w.Write([]byte(`{"token": "fresh-tok", "user": {"id": 5, "name": "Alex", "email": "alex@example.com", "role": "blogger"}}`))
			return
		}
		w.Write([]byte(`{"payments": []}`))
	})
	defer done()

	rec, body := doJSON(t, router, http.MethodPost, "/auth/login", "", `{"email": "alex@example.com", "password": "secret"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("login failed: %d %s", rec.Code, rec.Body.String())
	}
	token, _ := body["token"].(string)
	if token != "fresh-tok" {
		t.Fatalf("token not returned: %v", body)
	}

	// The hydrated session works for an authenticated route.
	rec, _ = doJSON(t, router, http.MethodGet, "/api/v1/payments", token, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("session not usable after login: %d", rec.Code)
	}

	rec, _ = doJSON(t, router, http.MethodPost, "/auth/logout", token, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("logout failed: %d", rec.Code)
	}
	rec, _ = doJSON(t, router, http.MethodGet, "/api/v1/payments", token, "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("session should be gone after logout, got %d", rec.Code)
	}
}

func TestWithdrawalLocalValidation(t *testing.T) {
	var upstreamCalls int
	router, mgr, done := newTestStack(t, func(w http.ResponseWriter, r *http.Request) {
		upstreamCalls++
		w.Write([]byte(`{}`))
	})
	defer done()
	hydrate(t, mgr, "tok", session.RoleBlogger)

	rec, body := doJSON(t, router, http.MethodPost, "/api/v1/withdrawals", "tok",
		`{"amount": 50, "method": "cash", "account": "x"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if msg, _ := body["message"].(string); !strings.Contains(msg, "payout method") {
		t.Fatalf("unexpected message: %v", body["message"])
	}
	if upstreamCalls != 0 {
		t.Fatal("invalid withdrawal must never reach the upstream")
	}
}
