package review

import "time"

const (
	MinRating = 1
	MaxRating = 5

	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 50
)

type Author struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar,omitempty"`
}

type Review struct {
	ID        string    `json:"id"`
	ProductID string    `json:"productId"`
	OrderID   string    `json:"orderId,omitempty"`
	User      Author    `json:"user"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
}

type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}

// Page is one page of a product's reviews.
type Page struct {
	Reviews       []Review   `json:"reviews"`
	Pagination    Pagination `json:"pagination"`
	AverageRating float64    `json:"averageRating"`
}

func (p Page) HasMore() bool {
	return p.Pagination.Page < p.Pagination.Pages
}

type CreateParams struct {
	ProductID string `json:"productId"`
	OrderID   string `json:"orderId,omitempty"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment,omitempty"`
}

type UpdateParams struct {
	Rating  int    `json:"rating,omitempty"`
	Comment string `json:"comment,omitempty"`
}
