package cart

import "marketplace-client/internal/product"

// Key identifies a cart line: the same product in two sizes is two lines.
type Key struct {
	ProductID string
	Size      string
}

type Item struct {
	// ID is the backend's cart line id; empty for lines that only exist locally.
	ID       string          `json:"id,omitempty"`
	Product  product.Product `json:"product"`
	Quantity int             `json:"quantity"`
	Size     string          `json:"size,omitempty"`
}

func (i Item) Key() Key {
	return Key{ProductID: i.Product.ID, Size: i.Size}
}

func (i Item) Subtotal() float64 {
	return i.Product.Price * float64(i.Quantity)
}

// Cart is the data member of every /cart response.
type Cart struct {
	Items []Item  `json:"items"`
	Total float64 `json:"total,omitempty"`
}

type AddParams struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
	Size      string `json:"size,omitempty"`
}

type updateBody struct {
	Quantity int `json:"quantity"`
}
