package banner

import "time"

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

type Banner struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	ImageURL     string    `json:"imageUrl"`
	Link         string    `json:"link,omitempty"`
	ShopID       string    `json:"shopId,omitempty"`
	Status       Status    `json:"status"`
	RejectReason string    `json:"rejectReason,omitempty"`
	StartDate    time.Time `json:"startDate,omitempty"`
	EndDate      time.Time `json:"endDate,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Live reports whether b is approved and within its run at now. Zero dates
// leave that side open.
func (b Banner) Live(now time.Time) bool {
	if b.Status != StatusApproved {
		return false
	}
	if !b.StartDate.IsZero() && now.Before(b.StartDate) {
		return false
	}
	if !b.EndDate.IsZero() && now.After(b.EndDate) {
		return false
	}
	return true
}

type CreateParams struct {
	Title     string     `json:"title"`
	ImageURL  string     `json:"imageUrl"`
	Link      string     `json:"link,omitempty"`
	StartDate *time.Time `json:"startDate,omitempty"`
	EndDate   *time.Time `json:"endDate,omitempty"`
}

type rejectBody struct {
	Reason string `json:"reason"`
}
