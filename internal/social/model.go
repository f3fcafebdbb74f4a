package social

import "marketplace-client/internal/product"

// FeaturedShop is a shop card on the home feed.
type FeaturedShop struct {
	product.Shop
	Description  string  `json:"description,omitempty"`
	Followers    int     `json:"followers"`
	Likes        int     `json:"likes"`
	ProductCount int     `json:"productCount"`
	Rating       float64 `json:"rating,omitempty"`
	IsFollowing  bool    `json:"isFollowing"`
	IsLiked      bool    `json:"isLiked"`
}

// Counts is what follow/like calls report back.
type Counts struct {
	Followers int `json:"followers"`
	Likes     int `json:"likes"`
}
