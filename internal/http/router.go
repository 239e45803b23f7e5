package httpx

import (
	"encoding/json"
	"net/http"

	"linkboard/internal/http/handlers"
	middlewarex "linkboard/internal/http/middleware"
	"linkboard/internal/services/dashboard"
	"linkboard/internal/session"
	"linkboard/internal/upstream"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

// RouterDependencies holds all dependencies for the HTTP router
type RouterDependencies struct {
	API       *upstream.Client
	Sessions  *session.Manager
	Dashboard *dashboard.Service
}

// NewRouter wires the role-scoped dashboard routes.
func NewRouter(deps RouterDependencies) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimw.RequestID)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)

	// Health check (public)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"status": "ok"})
	})

	// Authentication (public login, authenticated logout)
	r.Post("/auth/login", handlers.Login(deps.API, deps.Sessions))
	r.Group(func(r chi.Router) {
		r.Use(middlewarex.SessionAuth(deps.Sessions))
		r.Post("/auth/logout", handlers.Logout(deps.Sessions, deps.Dashboard))
	})

	// Dashboard routes (session required, role-scoped per resource)
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middlewarex.SessionAuth(deps.Sessions))

		r.Group(func(r chi.Router) {
			r.Use(middlewarex.RequireRole(
				session.RoleAdmin, session.RoleAccountant, session.RoleBlogger, session.RoleTeams,
			))
			r.Get("/payments", handlers.ListPayments(deps.Dashboard))
		})
		r.Group(func(r chi.Router) {
			r.Use(middlewarex.RequireRole(session.RoleAdmin, session.RoleAccountant))
			r.Post("/payments/{id}/mark-paid", handlers.MarkPaid(deps.Dashboard))
		})

		r.Group(func(r chi.Router) {
			r.Use(middlewarex.RequireRole(session.RoleAdmin))
			r.Get("/users", handlers.ListUsers(deps.Dashboard))
		})

		r.Group(func(r chi.Router) {
			r.Use(middlewarex.RequireRole(
				session.RoleAdmin, session.RoleBlogger, session.RoleManager, session.RoleTeams,
			))
			r.Get("/sites", handlers.ListSites(deps.Dashboard))
		})

		r.Group(func(r chi.Router) {
			r.Use(middlewarex.RequireRole(
				session.RoleAdmin, session.RoleManager, session.RoleWriter,
				session.RoleBlogger, session.RoleTeams,
			))
			r.Get("/tasks", handlers.ListTasks(deps.Dashboard))
		})
		r.Group(func(r chi.Router) {
			r.Use(middlewarex.RequireRole(session.RoleAdmin, session.RoleManager))
			r.Post("/tasks/{id}/finalize", handlers.FinalizeTask(deps.Dashboard))
			r.Post("/tasks/{id}/reject", handlers.RejectTask(deps.Dashboard))
		})
		r.Group(func(r chi.Router) {
			r.Use(middlewarex.RequireRole(session.RoleBlogger, session.RoleTeams))
			r.Post("/tasks/{id}/submit-link", handlers.SubmitLink(deps.Dashboard))
			r.Post("/withdrawals", handlers.SubmitWithdrawal(deps.Dashboard))
		})
		r.Group(func(r chi.Router) {
			r.Use(middlewarex.RequireRole(session.RoleAdmin, session.RoleWriter))
			r.Post("/tasks/{id}/submit-content", handlers.SubmitContent(deps.Dashboard))
		})

		r.Group(func(r chi.Router) {
			r.Use(middlewarex.RequireRole(
				session.RoleAdmin, session.RoleManager, session.RoleTeams,
			))
			r.Get("/orders", handlers.ListOrders(deps.Dashboard))
		})

		// Profile mutations (any signed-in role)
		r.Put("/profile", handlers.UpdateProfile(deps.Dashboard))
		r.Post("/profile/password", handlers.ChangePassword(deps.Dashboard))
	})

	// Admin routes
	r.Route("/admin", func(r chi.Router) {
		r.Use(middlewarex.SessionAuth(deps.Sessions))
		r.Use(middlewarex.RequireRole(session.RoleAdmin))
		r.Get("/audit", handlers.ListAudit(deps.Dashboard))
	})

	return r
}
