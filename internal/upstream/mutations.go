package upstream

import (
	"context"
	"fmt"
	"net/http"

	"linkboard/internal/domain/payment"
)

// Mutation endpoints. Success and failure are distinguished only by HTTP
// status; failures carry the upstream message verbatim (see decodeError).
// Nothing here retries.

func (c *Client) MarkPaid(ctx context.Context, token string, id int64) error {
	return c.send(ctx, http.MethodPost, token, fmt.Sprintf("/payments/%d/mark-paid", id), nil, nil)
}

func (c *Client) FinalizeTask(ctx context.Context, token string, id int64) error {
	return c.send(ctx, http.MethodPost, token, fmt.Sprintf("/tasks/%d/finalize", id), nil, nil)
}

func (c *Client) RejectTask(ctx context.Context, token string, id int64, reason string) error {
	body := map[string]string{"reason": reason}
	return c.send(ctx, http.MethodPost, token, fmt.Sprintf("/tasks/%d/reject", id), body, nil)
}

func (c *Client) SubmitLink(ctx context.Context, token string, id int64, liveURL string) error {
	body := map[string]string{"live_url": liveURL}
	return c.send(ctx, http.MethodPost, token, fmt.Sprintf("/tasks/%d/submit-link", id), body, nil)
}

func (c *Client) SubmitContent(ctx context.Context, token string, id int64, docURL string) error {
	body := map[string]string{"doc_url": docURL}
	return c.send(ctx, http.MethodPost, token, fmt.Sprintf("/tasks/%d/submit-content", id), body, nil)
}

func (c *Client) SubmitWithdrawal(ctx context.Context, token string, req payment.WithdrawalRequest) error {
	return c.send(ctx, http.MethodPost, token, "/withdrawals", req, nil)
}

func (c *Client) ChangePassword(ctx context.Context, token, current, next string) error {
	body := map[string]string{"current_password": current, "new_password": next}
	return c.send(ctx, http.MethodPost, token, "/profile/password", body, nil)
}

// ProfileUpdate carries the editable profile fields; empty fields are
// omitted so the upstream keeps its current values.
type ProfileUpdate struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Bio   string `json:"bio,omitempty"`
}

func (c *Client) UpdateProfile(ctx context.Context, token string, upd ProfileUpdate) error {
	return c.send(ctx, http.MethodPut, token, "/profile", upd, nil)
}

// LoginResult is the upstream authentication response.
type LoginResult struct {
	Token string `json:"token"`
	User  struct {
		ID    flexInt `json:"id"`
		Name  string  `json:"name"`
		Email string  `json:"email"`
		Role  string  `json:"role"`
	} `json:"user"`
}

func (c *Client) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	body := map[string]string{"email": email, "password": password}
	var res LoginResult
	if err := c.send(ctx, http.MethodPost, "", "/auth/login", body, &res); err != nil {
		return nil, err
	}
	return &res, nil
}
