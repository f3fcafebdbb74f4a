package user

import (
	"context"

	"marketplace-client/internal/logger"

	"go.uber.org/zap"
)

type Service interface {
	Register(ctx context.Context, params RegisterParams) (*User, error)
	Login(ctx context.Context, email, password string) (*User, error)
	Logout(ctx context.Context) error
	Me(ctx context.Context) (*User, error)
	UpdateProfile(ctx context.Context, params UpdateProfileParams) (*User, error)
	Restore(ctx context.Context) (*User, error)
	Session() *Session
}

type service struct {
	repo    Repository
	session *Session
}

func NewService(repo Repository, session *Session) Service {
	return &service{repo: repo, session: session}
}

func (s *service) Session() *Session {
	return s.session
}

func (s *service) Register(ctx context.Context, params RegisterParams) (*User, error) {
	if params.Role == "" {
		params.Role = RoleBuyer
	}

	res, err := s.repo.Register(ctx, params)
	if err != nil {
		return nil, err
	}
	if res.User.Name == "" {
		res.User.Name = params.Name
	}
	if res.User.Email == "" {
		res.User.Email = params.Email
	}
	return s.start(ctx, res)
}

func (s *service) Login(ctx context.Context, email, password string) (*User, error) {
	res, err := s.repo.Login(ctx, LoginParams{Email: email, Password: password})
	if err != nil {
		return nil, err
	}
	if res.User.Email == "" {
		res.User.Email = email
	}
	return s.start(ctx, res)
}

func (s *service) start(ctx context.Context, res *AuthResult) (*User, error) {
	if err := s.session.Save(ctx, res.Token, res.User); err != nil {
		return nil, err
	}

	u, _ := s.session.User(ctx)
	logger.FromCtx(ctx).Info("session started",
		zap.String("user_id", u.ID),
		zap.String("role", string(u.Role)),
	)
	return &u, nil
}

// Logout is local only; the backend keeps no session to end.
func (s *service) Logout(ctx context.Context) error {
	return s.session.Clear(ctx)
}

// Me fetches the profile and refreshes the stored copy.
func (s *service) Me(ctx context.Context) (*User, error) {
	if _, ok := s.session.User(ctx); !ok {
		return nil, ErrNotLoggedIn
	}

	u, err := s.repo.Me(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.session.SetUser(ctx, *u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *service) UpdateProfile(ctx context.Context, params UpdateProfileParams) (*User, error) {
	if _, ok := s.session.User(ctx); !ok {
		return nil, ErrNotLoggedIn
	}

	u, err := s.repo.UpdateProfile(ctx, params)
	if err != nil {
		return nil, err
	}
	if err := s.session.SetUser(ctx, *u); err != nil {
		return nil, err
	}
	return u, nil
}

// Restore brings back a stored session, returning ErrNotLoggedIn when there
// is none (or its token expired).
func (s *service) Restore(ctx context.Context) (*User, error) {
	token, err := s.session.Token(ctx)
	if err != nil {
		return nil, err
	}
	if token == "" {
		return nil, ErrNotLoggedIn
	}
	u, ok := s.session.User(ctx)
	if !ok {
		return nil, ErrNotLoggedIn
	}
	return &u, nil
}
