// Package app builds the client from configuration.
package app

import (
	"io"

	"marketplace-client/internal/analytics"
	"marketplace-client/internal/api"
	"marketplace-client/internal/banner"
	"marketplace-client/internal/cart"
	"marketplace-client/internal/chat"
	"marketplace-client/internal/config"
	"marketplace-client/internal/logger"
	"marketplace-client/internal/order"
	"marketplace-client/internal/payment"
	"marketplace-client/internal/product"
	"marketplace-client/internal/review"
	"marketplace-client/internal/shipper"
	"marketplace-client/internal/social"
	"marketplace-client/internal/storage"
	"marketplace-client/internal/user"
	"marketplace-client/internal/wishlist"
)

type App struct {
	Config  *config.Config
	API     *api.Client
	Storage storage.Storage
	Session *user.Session

	Users     user.Service
	Products  product.Repository
	Cart      cart.Service
	Wishlist  wishlist.Service
	Orders    order.Service
	OrderAPI  order.Repository
	Reviews   review.Repository
	Chat      chat.Repository
	Shipper   shipper.Repository
	Payments  payment.Service
	Social    social.Repository
	Banners   banner.Repository
	Analytics analytics.Repository

	closer io.Closer
	unsub  func()
}

// New opens the configured device storage and wires every service on it.
func New(cfg *config.Config) (*App, error) {
	st, closer, err := storage.New(cfg)
	if err != nil {
		return nil, err
	}

	a := NewWithStorage(cfg, st)
	a.closer = closer
	return a, nil
}

// NewWithStorage wires the client on an already opened storage.
func NewWithStorage(cfg *config.Config, st storage.Storage) *App {
	session := user.NewSession(st)
	client := api.New(api.Config{
		BaseURL:   cfg.APIBaseURL,
		Timeout:   cfg.APITimeout,
		RateLimit: cfg.RateLimit,
		RateBurst: cfg.RateBurst,
	}, session)

	cartStore := cart.NewStore()
	favorites := wishlist.NewStore()
	orders := order.NewStore()
	orderRepo := order.NewRepository(client)

	a := &App{
		Config:  cfg,
		API:     client,
		Storage: st,
		Session: session,

		Users:     user.NewService(user.NewRepository(client), session),
		Products:  product.NewRepository(client),
		Cart:      cart.NewService(cart.NewRepository(client), cartStore),
		Wishlist:  wishlist.NewService(wishlist.NewRepository(client), favorites),
		Orders:    order.NewService(orderRepo, orders, cartStore),
		OrderAPI:  orderRepo,
		Reviews:   review.NewRepository(client),
		Chat:      chat.NewRepository(client),
		Shipper:   shipper.NewRepository(client),
		Payments:  payment.NewService(payment.NewMomoGateway(client), 0),
		Social:    social.NewRepository(client),
		Banners:   banner.NewRepository(client),
		Analytics: analytics.NewRepository(client),
	}

	// Per-user state must not outlive the session, however it ends.
	a.unsub = session.Subscribe(func(u *user.User) {
		if u != nil {
			return
		}
		cartStore.Clear()
		favorites.Clear()
		orders.Clear()
		logger.L().Info("session ended, local state cleared")
	})

	return a
}

func (a *App) Close() error {
	if a.unsub != nil {
		a.unsub()
	}
	if a.closer != nil {
		return a.closer.Close()
	}
	return nil
}
