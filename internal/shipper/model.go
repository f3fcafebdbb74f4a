package shipper

import "time"

type DeliveryStatus string

const (
	StatusAssigned  DeliveryStatus = "assigned"
	StatusPickedUp  DeliveryStatus = "picked_up"
	StatusShipping  DeliveryStatus = "shipping"
	StatusDelivered DeliveryStatus = "delivered"
	StatusCancelled DeliveryStatus = "cancelled"
)

// Updatable reports whether a shipper may set s through UpdateStatus.
// Delivered and cancelled have their own endpoints.
func (s DeliveryStatus) Updatable() bool {
	switch s {
	case StatusAssigned, StatusPickedUp, StatusShipping:
		return true
	}
	return false
}

type Stats struct {
	TotalDeliveries     int     `json:"totalDeliveries"`
	CompletedDeliveries int     `json:"completedDeliveries"`
	ActiveDeliveries    int     `json:"activeDeliveries"`
	CancelledDeliveries int     `json:"cancelledDeliveries"`
	TotalEarnings       float64 `json:"totalEarnings"`
	Rating              float64 `json:"rating"`
}

type EarningEntry struct {
	OrderID     string    `json:"orderId"`
	Amount      float64   `json:"amount"`
	CompletedAt time.Time `json:"completedAt"`
}

type Earnings struct {
	Today   float64        `json:"today"`
	Week    float64        `json:"week"`
	Month   float64        `json:"month"`
	Total   float64        `json:"total"`
	History []EarningEntry `json:"history"`
}

type Delivery struct {
	ID              string         `json:"id"`
	OrderID         string         `json:"orderId"`
	Status          DeliveryStatus `json:"status"`
	PickupAddress   string         `json:"pickupAddress"`
	DeliveryAddress string         `json:"deliveryAddress"`
	RecipientName   string         `json:"recipientName,omitempty"`
	RecipientPhone  string         `json:"recipientPhone,omitempty"`
	Fee             float64        `json:"fee"`
	TotalAmount     float64        `json:"totalAmount"`
	CreatedAt       time.Time      `json:"createdAt"`
}

type updateStatusBody struct {
	Status DeliveryStatus `json:"status"`
	Note   string         `json:"note,omitempty"`
}

type cancelBody struct {
	Reason string `json:"reason,omitempty"`
}
