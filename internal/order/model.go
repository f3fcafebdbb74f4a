package order

import (
	"time"

	"marketplace-client/internal/cart"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusShipping  Status = "shipping"
	StatusShipped   Status = "shipped"
	StatusDelivered Status = "delivered"
	StatusCancelled Status = "cancelled"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusShipping, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// Order is the client's display copy of an order. The backend owns the real
// one; status here is advisory.
type Order struct {
	ID     string      `json:"id"`
	Date   time.Time   `json:"date"`
	Items  []cart.Item `json:"items"`
	Total  float64     `json:"total"`
	Status Status      `json:"status"`
}

type Party struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Record is an order as the backend returns it.
type Record struct {
	ID              string      `json:"id"`
	Items           []cart.Item `json:"items"`
	TotalAmount     float64     `json:"totalAmount"`
	Total           float64     `json:"total"`
	Status          Status      `json:"status"`
	ShippingAddress string      `json:"shippingAddress,omitempty"`
	PaymentMethod   string      `json:"paymentMethod,omitempty"`
	Buyer           *Party      `json:"buyer,omitempty"`
	Seller          *Party      `json:"seller,omitempty"`
	CreatedAt       time.Time   `json:"createdAt"`
}

type LineParams struct {
	ProductID string  `json:"productId"`
	Quantity  int     `json:"quantity"`
	Size      string  `json:"size,omitempty"`
	Price     float64 `json:"price"`
}

type CreateParams struct {
	Items           []LineParams `json:"items"`
	TotalAmount     float64      `json:"totalAmount"`
	ShippingAddress string       `json:"shippingAddress"`
	PaymentMethod   string       `json:"paymentMethod,omitempty"`
	Note            string       `json:"note,omitempty"`
}

// CheckoutParams is what the buyer fills in; the lines come from the cart.
type CheckoutParams struct {
	ShippingAddress string
	PaymentMethod   string
	Note            string
}

type Notification struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	OrderID   string    `json:"orderId,omitempty"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}
