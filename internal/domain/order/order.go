package order

import "time"

// Order represents a buyer order row on the manager/teams dashboards.
type Order struct {
	ID            int64     `json:"id"`
	BuyerName     string    `json:"buyerName"`
	WebsiteDomain string    `json:"websiteDomain"`
	OrderType     string    `json:"orderType"`
	Status        Status    `json:"status"`
	Amount        float64   `json:"amount"`
	CreatedAt     time.Time `json:"createdAt"`
}

// Status represents order status
type Status string

const (
	StatusOpen      Status = "open"
	StatusDelivered Status = "delivered"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)
