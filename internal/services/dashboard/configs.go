package dashboard

import (
	"time"

	"linkboard/internal/domain/order"
	"linkboard/internal/domain/payment"
	"linkboard/internal/domain/site"
	"linkboard/internal/domain/task"
	"linkboard/internal/domain/user"
	"linkboard/internal/listview"
)

// Declarative filter configuration per resource. Field names double as the
// query parameters the list endpoints accept.

func paymentsConfig() listview.Config[payment.Payment] {
	return listview.Config[payment.Payment]{
		Resource: "payments",
		Fields: []listview.FieldSpec[payment.Payment]{
			{Name: "q", Kind: listview.MatchSubstring, Text: func(p payment.Payment) []string {
				return []string{p.UserName, p.UserEmail}
			}},
			{Name: "status", Kind: listview.MatchExact, Value: func(p payment.Payment) string {
				return string(p.Status)
			}},
			{Name: "date", Kind: listview.MatchDateRange, Date: func(p payment.Payment) time.Time {
				return p.RequestDate
			}},
		},
	}
}

func usersConfig() listview.Config[user.User] {
	return listview.Config[user.User]{
		Resource: "users",
		Fields: []listview.FieldSpec[user.User]{
			{Name: "q", Kind: listview.MatchSubstring, Text: func(u user.User) []string {
				return []string{u.Name, u.Email}
			}},
			{Name: "role", Kind: listview.MatchExact, Value: func(u user.User) string {
				return u.Role
			}},
			{Name: "status", Kind: listview.MatchExact, Value: func(u user.User) string {
				return string(u.Status)
			}},
			{Name: "date", Kind: listview.MatchDateRange, Date: func(u user.User) time.Time {
				return u.JoinedAt
			}},
		},
	}
}

func sitesConfig() listview.Config[site.Site] {
	return listview.Config[site.Site]{
		Resource: "sites",
		Fields: []listview.FieldSpec[site.Site]{
			{Name: "q", Kind: listview.MatchSubstring, Text: func(s site.Site) []string {
				return []string{s.Domain}
			}},
			{Name: "category", Kind: listview.MatchExact, Value: func(s site.Site) string {
				return s.Category
			}},
			{Name: "status", Kind: listview.MatchExact, Value: func(s site.Site) string {
				return string(s.Status)
			}},
			{Name: "date", Kind: listview.MatchDateRange, Date: func(s site.Site) time.Time {
				return s.CreatedAt
			}},
		},
	}
}

func tasksConfig() listview.Config[task.Task] {
	return listview.Config[task.Task]{
		Resource: "tasks",
		Fields: []listview.FieldSpec[task.Task]{
			{Name: "q", Kind: listview.MatchSubstring, Text: func(t task.Task) []string {
				return []string{t.WebsiteDomain, t.Title}
			}},
			{Name: "status", Kind: listview.MatchExact, Value: func(t task.Task) string {
				return string(t.CurrentStatus)
			}},
			{Name: "order_type", Kind: listview.MatchExact, Value: func(t task.Task) string {
				return string(t.OrderType)
			}},
			{Name: "date", Kind: listview.MatchDateRange, Date: func(t task.Task) time.Time {
				return t.CreatedAt
			}},
		},
	}
}

func ordersConfig() listview.Config[order.Order] {
	return listview.Config[order.Order]{
		Resource: "orders",
		Fields: []listview.FieldSpec[order.Order]{
			{Name: "q", Kind: listview.MatchSubstring, Text: func(o order.Order) []string {
				return []string{o.BuyerName, o.WebsiteDomain}
			}},
			{Name: "status", Kind: listview.MatchExact, Value: func(o order.Order) string {
				return string(o.Status)
			}},
			{Name: "order_type", Kind: listview.MatchExact, Value: func(o order.Order) string {
				return o.OrderType
			}},
			{Name: "date", Kind: listview.MatchDateRange, Date: func(o order.Order) time.Time {
				return o.CreatedAt
			}},
		},
	}
}
