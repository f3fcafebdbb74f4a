package payment

import "time"

// MomoParams starts a MoMo wallet payment for an order.
type MomoParams struct {
	OrderID   string  `json:"orderId"`
	Amount    float64 `json:"amount"`
	OrderInfo string  `json:"orderInfo,omitempty"`
}

// MomoPayment is what the backend hands back: where to send the buyer.
type MomoPayment struct {
	OrderID   string  `json:"orderId"`
	RequestID string  `json:"requestId"`
	Amount    float64 `json:"amount,omitempty"`
	PayURL    string  `json:"payUrl"`
	Deeplink  string  `json:"deeplink,omitempty"`
	QRCodeURL string  `json:"qrCodeUrl,omitempty"`
}

// Link returns the best URL to open: the app deeplink when present.
func (p MomoPayment) Link() string {
	if p.Deeplink != "" {
		return p.Deeplink
	}
	return p.PayURL
}

type Status struct {
	OrderID string     `json:"orderId"`
	Status  string     `json:"status"`
	Amount  float64    `json:"amount,omitempty"`
	TransID string     `json:"transId,omitempty"`
	Message string     `json:"message,omitempty"`
	PaidAt  *time.Time `json:"paidAt,omitempty"`
}

const (
	StatusPending   = "pending"
	StatusPaid      = "paid"
	StatusSuccess   = "success"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
	StatusCancelled = "cancelled"
	StatusExpired   = "expired"
)

// Terminal reports whether the payment will not change any more.
func (s Status) Terminal() bool {
	switch s.Status {
	case StatusPaid, StatusSuccess, StatusCompleted, StatusFailed, StatusCancelled, StatusExpired:
		return true
	}
	return false
}

func (s Status) Succeeded() bool {
	switch s.Status {
	case StatusPaid, StatusSuccess, StatusCompleted:
		return true
	}
	return false
}
