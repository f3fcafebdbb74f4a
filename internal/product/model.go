package product

import "time"

type Shop struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar,omitempty"`
}

type Product struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description,omitempty"`
	Price         float64   `json:"price"`
	OriginalPrice float64   `json:"originalPrice,omitempty"`
	Images        []string  `json:"images,omitempty"`
	Category      string    `json:"category,omitempty"`
	Sizes         []string  `json:"sizes,omitempty"`
	Stock         int       `json:"stock"`
	Condition     string    `json:"condition,omitempty"`
	SellerID      string    `json:"sellerId,omitempty"`
	Shop          *Shop     `json:"shop,omitempty"`
	Rating        float64   `json:"rating,omitempty"`
	ReviewCount   int       `json:"reviewCount,omitempty"`
	CreatedAt     time.Time `json:"createdAt,omitempty"`
}

// Image is the first image or "" for a product without pictures.
func (p Product) Image() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}

// HasSize reports whether size is offered. Products without sizes accept "".
func (p Product) HasSize(size string) bool {
	if len(p.Sizes) == 0 {
		return size == ""
	}
	for _, s := range p.Sizes {
		if s == size {
			return true
		}
	}
	return false
}

type ListFilter struct {
	Category string
	Search   string
}

// Input is the body of create and update calls. Zero fields are omitted so
// an update only touches what was set.
type Input struct {
	Name          string   `json:"name,omitempty"`
	Description   string   `json:"description,omitempty"`
	Price         float64  `json:"price,omitempty"`
	OriginalPrice float64  `json:"originalPrice,omitempty"`
	Images        []string `json:"images,omitempty"`
	Category      string   `json:"category,omitempty"`
	Sizes         []string `json:"sizes,omitempty"`
	Stock         *int     `json:"stock,omitempty"`
	Condition     string   `json:"condition,omitempty"`
}

func (in Input) empty() bool {
	return in.Name == "" &&
		in.Description == "" &&
		in.Price == 0 &&
		in.OriginalPrice == 0 &&
		len(in.Images) == 0 &&
		in.Category == "" &&
		len(in.Sizes) == 0 &&
		in.Stock == nil &&
		in.Condition == ""
}
