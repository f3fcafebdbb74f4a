package order

import "marketplace-client/internal/cart"

// ToShadow maps a backend record to the local display copy.
func ToShadow(r Record) Order {
	total := r.TotalAmount
	if total == 0 {
		total = r.Total
	}
	if total == 0 {
		total = cart.Total(r.Items)
	}

	status := r.Status
	if status == "" {
		status = StatusPending
	}

	return Order{
		ID:     r.ID,
		Date:   r.CreatedAt,
		Items:  append([]cart.Item(nil), r.Items...),
		Total:  total,
		Status: status,
	}
}

func ToShadows(records []Record) []Order {
	out := make([]Order, 0, len(records))
	for _, r := range records {
		out = append(out, ToShadow(r))
	}
	return out
}

// lineParams turns cart lines into the create-order payload.
func lineParams(items []cart.Item) []LineParams {
	lines := make([]LineParams, 0, len(items))
	for _, it := range items {
		lines = append(lines, LineParams{
			ProductID: it.Product.ID,
			Quantity:  it.Quantity,
			Size:      it.Size,
			Price:     it.Product.Price,
		})
	}
	return lines
}
