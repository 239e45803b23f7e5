package handlers

import (
	"net/http"

	"linkboard/internal/domain/payment"
	middlewarex "linkboard/internal/http/middleware"
	"linkboard/internal/listview"
	"linkboard/internal/services/dashboard"
)

func ListPayments(svc *dashboard.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := middlewarex.SessionFrom(r.Context())
		if !ok {
			http.Error(w, "session not found", http.StatusUnauthorized)
			return
		}
		cr := listview.NewCriteria()
		setIfPresent(&cr, r, "q")
		setIfPresent(&cr, r, "status")
		setDateRange(&cr, r)

		ctrl := svc.Payments(sess)
		serveList(w, r, ctrl, cr, func() map[string]any {
			// Footer total over the filtered collection, not just the page.
			return map[string]any{
				"totalAmount": payment.TotalAmount(ctrl.Filtered()),
			}
		})
	}
}

func ListUsers(svc *dashboard.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := middlewarex.SessionFrom(r.Context())
		if !ok {
			http.Error(w, "session not found", http.StatusUnauthorized)
			return
		}
		cr := listview.NewCriteria()
		setIfPresent(&cr, r, "q")
		setIfPresent(&cr, r, "role")
		setIfPresent(&cr, r, "status")
		setDateRange(&cr, r)

		serveList(w, r, svc.Users(sess), cr, nil)
	}
}

func ListSites(svc *dashboard.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := middlewarex.SessionFrom(r.Context())
		if !ok {
			http.Error(w, "session not found", http.StatusUnauthorized)
			return
		}
		cr := listview.NewCriteria()
		setIfPresent(&cr, r, "q")
		setIfPresent(&cr, r, "category")
		setIfPresent(&cr, r, "status")
		setDateRange(&cr, r)

		serveList(w, r, svc.Sites(sess), cr, nil)
	}
}

func ListTasks(svc *dashboard.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := middlewarex.SessionFrom(r.Context())
		if !ok {
			http.Error(w, "session not found", http.StatusUnauthorized)
			return
		}
		cr := listview.NewCriteria()
		setIfPresent(&cr, r, "q")
		setIfPresent(&cr, r, "status")
		setIfPresent(&cr, r, "order_type")
		setDateRange(&cr, r)

		serveList(w, r, svc.Tasks(sess), cr, nil)
	}
}

func ListOrders(svc *dashboard.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := middlewarex.SessionFrom(r.Context())
		if !ok {
			http.Error(w, "session not found", http.StatusUnauthorized)
			return
		}
		cr := listview.NewCriteria()
		setIfPresent(&cr, r, "q")
		setIfPresent(&cr, r, "status")
		setIfPresent(&cr, r, "order_type")
		setDateRange(&cr, r)

		serveList(w, r, svc.Orders(sess), cr, nil)
	}
}
