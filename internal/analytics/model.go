package analytics

type Period string

const (
	PeriodDay   Period = "day"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
)

func (p Period) Valid() bool {
	switch p {
	case PeriodDay, PeriodWeek, PeriodMonth:
		return true
	}
	return false
}

type Point struct {
	Label   string  `json:"label"`
	Revenue float64 `json:"revenue"`
	Orders  int     `json:"orders"`
}

type TopProduct struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Sold      int     `json:"sold"`
	Revenue   float64 `json:"revenue"`
}

// Seller is the backend's aggregate for one seller over a period.
type Seller struct {
	Period        Period       `json:"period"`
	TotalRevenue  float64      `json:"totalRevenue"`
	TotalOrders   int          `json:"totalOrders"`
	TotalProducts int          `json:"totalProducts"`
	PendingOrders int          `json:"pendingOrders"`
	AverageRating float64      `json:"averageRating"`
	Followers     int          `json:"followers"`
	RevenueChart  []Point      `json:"revenueChart"`
	TopProducts   []TopProduct `json:"topProducts"`
}

// AverageOrderValue is revenue per order, zero when there were no orders.
func (s Seller) AverageOrderValue() float64 {
	if s.TotalOrders == 0 {
		return 0
	}
	return s.TotalRevenue / float64(s.TotalOrders)
}
