// Package apitest runs a scripted fake backend for repository tests.
package apitest

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"marketplace-client/internal/api"
)

// Call is one request the fake backend received.
type Call struct {
	Method string
	Path   string
	Query  url.Values
	Auth   string
	Body   map[string]any
}

type reply struct {
	status int
	body   string
}

type Server struct {
	*httptest.Server
	API    *api.Client
	Tokens *Tokens

	mu      sync.Mutex
	calls   []Call
	replies map[string]reply
}

// Tokens is an in-memory api.TokenSource.
type Tokens struct {
	mu      sync.Mutex
	Value   string
	Cleared int
}

func (t *Tokens) Token(context.Context) (string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.Value, nil
}

func (t *Tokens) ClearToken(context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.Value = ""
	t.Cleared++
	return nil
}

// New starts a fake backend; it is closed with the test. Unscripted routes
// answer 404 {"success":false,"message":"not found"}.
func New(t *testing.T) *Server {
	t.Helper()

	s := &Server{
		Tokens:  &Tokens{Value: "test-token"},
		replies: make(map[string]reply),
	}
	s.Server = httptest.NewServer(http.HandlerFunc(s.serve))
	t.Cleanup(s.Close)

	s.API = api.New(api.Config{BaseURL: s.URL}, s.Tokens)
	return s
}

// Reply scripts the answer for method+path (path without query).
func (s *Server) Reply(method, path string, status int, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.replies[method+" "+path] = reply{status: status, body: body}
}

// OK scripts a 200 envelope carrying data (raw JSON).
func (s *Server) OK(method, path, data string) {
	s.Reply(method, path, http.StatusOK, `{"success":true,"data":`+data+`}`)
}

func (s *Server) Calls() []Call {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Call(nil), s.calls...)
}

// Last returns the most recent call, or a zero Call when none was made.
func (s *Server) Last() Call {
	calls := s.Calls()
	if len(calls) == 0 {
		return Call{}
	}
	return calls[len(calls)-1]
}

func (s *Server) serve(w http.ResponseWriter, r *http.Request) {
	call := Call{
		Method: r.Method,
		Path:   r.URL.Path,
		Query:  r.URL.Query(),
		Auth:   r.Header.Get("Authorization"),
	}
	if raw, _ := io.ReadAll(r.Body); len(raw) > 0 {
		_ = json.Unmarshal(raw, &call.Body)
	}

	s.mu.Lock()
	s.calls = append(s.calls, call)
	rep, ok := s.replies[r.Method+" "+r.URL.Path]
	s.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"success":false,"message":"not found"}`))
		return
	}
	w.WriteHeader(rep.status)
	w.Write([]byte(rep.body))
}
