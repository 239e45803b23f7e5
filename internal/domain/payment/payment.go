package payment

import (
	"fmt"
	"strings"
	"time"
)

// Payment represents a payout request row on the accountant/admin dashboards.
type Payment struct {
	ID          int64     `json:"id"`
	UserName    string    `json:"userName"`
	UserEmail   string    `json:"userEmail"`
	Amount      float64   `json:"amount"`
	Status      Status    `json:"status"`
	Method      Method    `json:"method"`
	RequestDate time.Time `json:"requestDate"`
}

// Status represents payment status
type Status string

const (
	StatusPending  Status = "Pending"
	StatusPaid     Status = "Paid"
	StatusRejected Status = "Rejected"
)

// Method represents a payout method
type Method string

const (
	MethodPayPal Method = "paypal"
	MethodBank   Method = "bank"
	MethodSkrill Method = "skrill"
)

// ValidMethod reports whether m is a payout method withdrawals may use.
func ValidMethod(m Method) bool {
	switch m {
	case MethodPayPal, MethodBank, MethodSkrill:
		return true
	}
	return false
}

// WithdrawalRequest is a blogger/teams payout request before dispatch.
type WithdrawalRequest struct {
	Amount  float64 `json:"amount"`
	Method  Method  `json:"method"`
	Account string  `json:"account"`
}

// Validate runs the local checks that must pass before any remote call.
func (w WithdrawalRequest) Validate() error {
	if w.Amount <= 0 {
		return fmt.Errorf("withdrawal amount must be positive")
	}
	if !ValidMethod(w.Method) {
		return fmt.Errorf("unsupported payout method: %s", w.Method)
	}
	if strings.TrimSpace(w.Account) == "" {
		return fmt.Errorf("payout account is required")
	}
	return nil
}

// TotalAmount sums the amount column for a filtered set of payments.
func TotalAmount(rows []Payment) float64 {
	var sum float64
	for _, p := range rows {
		sum += p.Amount
	}
	return sum
}

// DisplayAmount formats an amount the way the dashboard footer shows it.
func DisplayAmount(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
