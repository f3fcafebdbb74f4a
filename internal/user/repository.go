package user

import (
	"context"
	"encoding/json"
	"fmt"
	"net/mail"

	"marketplace-client/internal/api"
	"marketplace-client/internal/logger"

	"go.uber.org/zap"
)

const minPasswordLength = 6

type Repository interface {
	Register(ctx context.Context, params RegisterParams) (*AuthResult, error)
	Login(ctx context.Context, params LoginParams) (*AuthResult, error)
	Me(ctx context.Context) (*User, error)
	UpdateProfile(ctx context.Context, params UpdateProfileParams) (*User, error)
}

type repository struct {
	client *api.Client
}

func NewRepository(client *api.Client) Repository {
	return &repository{client: client}
}

func (r *repository) Register(ctx context.Context, params RegisterParams) (*AuthResult, error) {
	if params.Name == "" {
		return nil, ErrInvalidName
	}
	if err := validateCredentials(params.Email, params.Password); err != nil {
		return nil, err
	}
	if params.Role != "" && !params.Role.Valid() {
		return nil, ErrInvalidRole
	}

	env, err := r.client.Post(ctx, "/auth/register", params, nil)
	if err != nil {
		return nil, err
	}
	return authResult(env)
}

func (r *repository) Login(ctx context.Context, params LoginParams) (*AuthResult, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "Login"),
	)

	if err := validateCredentials(params.Email, params.Password); err != nil {
		return nil, err
	}

	env, err := r.client.Post(ctx, "/auth/login", params, nil)
	if err != nil {
		log.Info("login rejected", zap.Error(err))
		return nil, err
	}
	return authResult(env)
}

func (r *repository) Me(ctx context.Context) (*User, error) {
	env, err := r.client.Get(ctx, "/auth/me", nil, nil)
	if err != nil {
		return nil, err
	}
	return userFrom(env)
}

func (r *repository) UpdateProfile(ctx context.Context, params UpdateProfileParams) (*User, error) {
	if params.empty() {
		return nil, ErrNothingToUpdate
	}
	if params.Name != nil && *params.Name == "" {
		return nil, ErrInvalidName
	}

	env, err := r.client.Put(ctx, "/auth/profile", params, nil)
	if err != nil {
		return nil, err
	}
	return userFrom(env)
}

func validateCredentials(email, password string) error {
	if _, err := mail.ParseAddress(email); err != nil {
		return ErrInvalidEmail
	}
	if len(password) < minPasswordLength {
		return ErrInvalidPassword
	}
	return nil
}

// authResult accepts both shapes the backend uses: token/user at the top
// level of the envelope, or nested under data.
func authResult(env *api.Envelope) (*AuthResult, error) {
	res := &AuthResult{Token: env.Token}

	if len(env.User) > 0 {
		if err := json.Unmarshal(env.User, &res.User); err != nil {
			return nil, fmt.Errorf("%w: user: %v", api.ErrInvalidResponse, err)
		}
	}
	if res.Token == "" && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, res); err != nil {
			return nil, fmt.Errorf("%w: data: %v", api.ErrInvalidResponse, err)
		}
	}

	if res.Token == "" {
		return nil, ErrMissingToken
	}
	return res, nil
}

// userFrom reads the user from envelope.user, falling back to data (either
// the user itself or {user: ...}).
func userFrom(env *api.Envelope) (*User, error) {
	raw := env.User
	if len(raw) == 0 {
		raw = env.Data
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: no user in response", api.ErrInvalidResponse)
	}

	var wrapped struct {
		User *User `json:"user"`
	}
	if err := json.Unmarshal(raw, &wrapped); err == nil && wrapped.User != nil {
		return wrapped.User, nil
	}

	u := &User{}
	if err := json.Unmarshal(raw, u); err != nil {
		return nil, fmt.Errorf("%w: user: %v", api.ErrInvalidResponse, err)
	}
	return u, nil
}
