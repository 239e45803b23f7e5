package upstream

import (
	"context"

	"linkboard/internal/domain/order"
	"linkboard/internal/domain/payment"
	"linkboard/internal/domain/site"
	"linkboard/internal/domain/task"
	"linkboard/internal/domain/user"
)

// Each fetcher retrieves the full raw collection for one resource, decodes
// its resource-named envelope and normalizes every record before it reaches
// filtering or pagination.

type paymentWire struct {
	ID          flexInt    `json:"id"`
	UserName    string     `json:"user_name"`
	UserEmail   string     `json:"user_email"`
	Amount      flexFloat  `json:"amount"`
	Status      flexString `json:"status"`
	Method      string     `json:"method"`
	RequestDate string     `json:"request_date"`
}

func (c *Client) FetchPayments(ctx context.Context, token string) ([]payment.Payment, error) {
	var env struct {
		Payments   []paymentWire `json:"payments"`
		Pagination *Meta         `json:"pagination"`
	}
	if err := c.get(ctx, token, "/payments", nil, &env); err != nil {
		return nil, err
	}
	out := make([]payment.Payment, 0, len(env.Payments))
	for _, w := range env.Payments {
		out = append(out, payment.Payment{
			ID:          int64(w.ID),
			UserName:    textOr(w.UserName),
			UserEmail:   textOr(w.UserEmail),
			Amount:      float64(w.Amount),
			Status:      payment.Status(textOr(string(w.Status))),
			Method:      payment.Method(w.Method),
			RequestDate: parseDate(w.RequestDate),
		})
	}
	return out, nil
}

type userWire struct {
	ID       flexInt    `json:"id"`
	Name     string     `json:"name"`
	Email    string     `json:"email"`
	Role     string     `json:"role"`
	Status   flexString `json:"status"`
	Balance  flexFloat  `json:"balance"`
	JoinedAt string     `json:"created_at"`
}

func (c *Client) FetchUsers(ctx context.Context, token string) ([]user.User, error) {
	var env struct {
		Users      []userWire `json:"users"`
		Pagination *Meta      `json:"pagination"`
	}
	if err := c.get(ctx, token, "/users", nil, &env); err != nil {
		return nil, err
	}
	out := make([]user.User, 0, len(env.Users))
	for _, w := range env.Users {
		status := user.StatusActive
		if string(w.Status) == "0" || string(w.Status) == "suspended" {
			status = user.StatusSuspended
		}
		out = append(out, user.User{
			ID:       int64(w.ID),
			Name:     textOr(w.Name),
			Email:    textOr(w.Email),
			Role:     textOr(w.Role),
			Status:   status,
			Balance:  float64(w.Balance),
			JoinedAt: parseDate(w.JoinedAt),
		})
	}
	return out, nil
}

type siteWire struct {
	ID        flexInt    `json:"id"`
	Domain    string     `json:"domain"`
	Category  string     `json:"category"`
	Status    flexString `json:"site_status"`
	DA        flexInt    `json:"da"`
	Price     flexFloat  `json:"price"`
	CreatedAt string     `json:"created_at"`
}

func (c *Client) FetchSites(ctx context.Context, token string) ([]site.Site, error) {
	var env struct {
		Sites      []siteWire `json:"sites"`
		Pagination *Meta      `json:"pagination"`
	}
	if err := c.get(ctx, token, "/sites", nil, &env); err != nil {
		return nil, err
	}
	out := make([]site.Site, 0, len(env.Sites))
	for _, w := range env.Sites {
		out = append(out, site.Site{
			ID:        int64(w.ID),
			Domain:    textOr(w.Domain),
			Category:  textOr(w.Category),
			Status:    site.NormalizeStatus(string(w.Status)),
			DA:        int(w.DA),
			Price:     float64(w.Price),
			CreatedAt: parseDate(w.CreatedAt),
		})
	}
	return out, nil
}

type taskWire struct {
	ID            flexInt `json:"id"`
	Title         string  `json:"title"`
	WebsiteDomain string  `json:"website_domain"`
	OrderType     string  `json:"order_type"`
	CurrentStatus string  `json:"current_status"`
	AssignedTo    string  `json:"assigned_to"`
	DueDate       string  `json:"due_date"`
	CreatedAt     string  `json:"created_at"`
}

func (c *Client) FetchTasks(ctx context.Context, token string) ([]task.Task, error) {
	var env struct {
		Tasks      []taskWire `json:"tasks"`
		Pagination *Meta      `json:"pagination"`
	}
	if err := c.get(ctx, token, "/tasks", nil, &env); err != nil {
		return nil, err
	}
	out := make([]task.Task, 0, len(env.Tasks))
	for _, w := range env.Tasks {
		out = append(out, task.Task{
			ID:            int64(w.ID),
			Title:         textOr(w.Title),
			WebsiteDomain: textOr(w.WebsiteDomain),
			OrderType:     task.OrderType(w.OrderType),
			CurrentStatus: task.Status(textOr(w.CurrentStatus)),
			AssignedTo:    textOr(w.AssignedTo),
			DueDate:       parseDate(w.DueDate),
			CreatedAt:     parseDate(w.CreatedAt),
		})
	}
	return out, nil
}

type orderWire struct {
	ID            flexInt    `json:"id"`
	BuyerName     string     `json:"buyer_name"`
	WebsiteDomain string     `json:"website_domain"`
	OrderType     string     `json:"order_type"`
	Status        flexString `json:"status"`
	Amount        flexFloat  `json:"amount"`
	CreatedAt     string     `json:"created_at"`
}

func (c *Client) FetchOrders(ctx context.Context, token string) ([]order.Order, error) {
	var env struct {
		Orders     []orderWire `json:"orders"`
		Pagination *Meta       `json:"pagination"`
	}
	if err := c.get(ctx, token, "/orders", nil, &env); err != nil {
		return nil, err
	}
	out := make([]order.Order, 0, len(env.Orders))
	for _, w := range env.Orders {
		out = append(out, order.Order{
			ID:            int64(w.ID),
			BuyerName:     textOr(w.BuyerName),
			WebsiteDomain: textOr(w.WebsiteDomain),
			OrderType:     textOr(w.OrderType),
			Status:        order.Status(textOr(string(w.Status))),
			Amount:        float64(w.Amount),
			CreatedAt:     parseDate(w.CreatedAt),
		})
	}
	return out, nil
}
