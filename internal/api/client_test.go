package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubTokens struct {
	token   string
	err     error
	cleared int
}

func (s *stubTokens) Token(context.Context) (string, error) { return s.token, s.err }

func (s *stubTokens) ClearToken(context.Context) error {
	s.cleared++
	s.token = ""
	return nil
}

// MockRoundTripper lets a test answer requests without a listener.
type MockRoundTripper func(req *http.Request) (*http.Response, error)

func (f MockRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(bytes.NewBufferString(body)),
		Header:     make(http.Header),
	}
}

func TestClient_Do(t *testing.T) {
	type product struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}

	t.Run("Success decodes data and sends bearer", func(t *testing.T) {
		tokens := &stubTokens{token: "tok-1"}
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/api/products", r.URL.Path)
			assert.Equal(t, "shoes", r.URL.Query().Get("category"))
			assert.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))
			assert.NotEmpty(t, r.Header.Get("X-Request-ID"))
			w.Write([]byte(`{"success":true,"data":[{"id":"p1","name":"Boots"}]}`))
		}))
		defer srv.Close()

		c := New(Config{BaseURL: srv.URL + "/api/"}, tokens)

		var out []product
		env, err := c.Get(context.Background(), "/products", url.Values{"category": {"shoes"}}, &out)
		require.NoError(t, err)
		assert.True(t, env.Success)
		assert.Equal(t, []product{{ID: "p1", Name: "Boots"}}, out)
	})

	t.Run("JSON body and no token", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Empty(t, r.Header.Get("Authorization"))
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

			var body map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "a@b.c", body["email"])

			w.Write([]byte(`{"success":true,"token":"new-token","user":{"id":"u1"}}`))
		}))
		defer srv.Close()

		c := New(Config{BaseURL: srv.URL}, &stubTokens{})

		env, err := c.Post(context.Background(), "/auth/login", map[string]string{"email": "a@b.c"}, nil)
		require.NoError(t, err)
		assert.Equal(t, "new-token", env.Token)
		assert.JSONEq(t, `{"id":"u1"}`, string(env.User))
	})

	t.Run("401 evicts token", func(t *testing.T) {
		tokens := &stubTokens{token: "stale"}
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"success":false,"message":"Token expired"}`))
		}))
		defer srv.Close()

		c := New(Config{BaseURL: srv.URL}, tokens)

		_, err := c.Get(context.Background(), "/auth/me", nil, nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnauthorized)
		assert.ErrorIs(t, err, ErrRequestFailed)
		assert.Equal(t, http.StatusUnauthorized, StatusCode(err))
		assert.Equal(t, "Token expired", Message(err))
		assert.Equal(t, 1, tokens.cleared)
		assert.Empty(t, tokens.token)
	})

	t.Run("Non-2xx uses envelope message", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"success":false,"message":"Out of stock"}`))
		}))
		defer srv.Close()

		c := New(Config{BaseURL: srv.URL}, nil)

		_, err := c.Post(context.Background(), "/cart/add", map[string]int{"quantity": 3}, nil)
		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
		assert.Equal(t, "Out of stock", apiErr.Message)
		assert.NotErrorIs(t, err, ErrUnauthorized)
		assert.Equal(t, "Out of stock (HTTP 400)", err.Error())
	})

	t.Run("Non-2xx without body falls back to status text", func(t *testing.T) {
		c := New(Config{
			BaseURL: "http://backend.test",
			Transport: MockRoundTripper(func(*http.Request) (*http.Response, error) {
				return jsonResponse(http.StatusBadGateway, "<html>bad gateway</html>"), nil
			}),
		}, nil)

		_, err := c.Get(context.Background(), "/banners", nil, nil)
		assert.Equal(t, http.StatusBadGateway, StatusCode(err))
		assert.Equal(t, "Bad Gateway", Message(err))
	})

	t.Run("Invalid JSON on 2xx", func(t *testing.T) {
		c := New(Config{
			BaseURL: "http://backend.test",
			Transport: MockRoundTripper(func(*http.Request) (*http.Response, error) {
				return jsonResponse(http.StatusOK, `{invalid-json`), nil
			}),
		}, nil)

		_, err := c.Get(context.Background(), "/products", nil, nil)
		assert.ErrorIs(t, err, ErrInvalidResponse)
	})

	t.Run("Data shape mismatch", func(t *testing.T) {
		c := New(Config{
			BaseURL: "http://backend.test",
			Transport: MockRoundTripper(func(*http.Request) (*http.Response, error) {
				return jsonResponse(http.StatusOK, `{"success":true,"data":"not-a-list"}`), nil
			}),
		}, nil)

		var out []product
		_, err := c.Get(context.Background(), "/products", nil, &out)
		assert.ErrorIs(t, err, ErrInvalidResponse)
	})

	t.Run("Empty body and null data", func(t *testing.T) {
		bodies := []string{"", `{"success":true,"data":null}`}
		for _, body := range bodies {
			c := New(Config{
				BaseURL: "http://backend.test",
				Transport: MockRoundTripper(func(*http.Request) (*http.Response, error) {
					return jsonResponse(http.StatusOK, body), nil
				}),
			}, nil)

			var out []product
			env, err := c.Delete(context.Background(), "/cart", &out)
			require.NoError(t, err)
			assert.NotNil(t, env)
			assert.Nil(t, out)
		}
	})

	t.Run("Network error", func(t *testing.T) {
		c := New(Config{
			BaseURL: "http://backend.test",
			Transport: MockRoundTripper(func(*http.Request) (*http.Response, error) {
				return nil, errors.New("connection refused")
			}),
		}, nil)

		_, err := c.Get(context.Background(), "/products", nil, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "connection refused")
		assert.Equal(t, 0, StatusCode(err))
	})

	t.Run("Token source failure", func(t *testing.T) {
		c := New(Config{BaseURL: "http://backend.test"}, &stubTokens{err: errors.New("disk gone")})

		_, err := c.Get(context.Background(), "/cart", nil, nil)
		assert.ErrorContains(t, err, "disk gone")
	})

	t.Run("Unmarshalable body", func(t *testing.T) {
		c := New(Config{BaseURL: "http://backend.test"}, nil)

		_, err := c.Post(context.Background(), "/chat/message", map[string]any{"bad": make(chan int)}, nil)
		assert.ErrorContains(t, err, "marshal request")
	})
}

func TestClient_RateLimit(t *testing.T) {
	calls := 0
	c := New(Config{
		BaseURL:   "http://backend.test",
		RateLimit: 1,
		RateBurst: 1,
		Transport: MockRoundTripper(func(*http.Request) (*http.Response, error) {
			calls++
			return jsonResponse(http.StatusOK, `{"success":true}`), nil
		}),
	}, nil)

	_, err := c.Get(context.Background(), "/products", nil, nil)
	require.NoError(t, err)

	// The bucket is empty now; a short deadline cannot wait a full second.
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err = c.Get(ctx, "/products", nil, nil)
	assert.ErrorContains(t, err, "rate limit wait")
	assert.Equal(t, 1, calls)
}

func TestPath(t *testing.T) {
	assert.Equal(t, "/orders/42/approve", Path("orders", "42", "approve"))
	assert.Equal(t, "/products/a%2Fb", Path("products", "a/b"))
	assert.Equal(t, "/cart", Path("cart"))
}

func TestMessage(t *testing.T) {
	assert.Equal(t, "plain", Message(errors.New("plain")))
	assert.Equal(t, "nope", Message(&APIError{StatusCode: 403, Message: "nope"}))
}
