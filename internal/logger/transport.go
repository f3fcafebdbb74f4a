package logger

import (
	"net/http"
	"time"

	"go.uber.org/zap"
)

const RequestIDHeader = "X-Request-ID"

// Transport tags every outgoing request with X-Request-ID and logs its outcome.
type Transport struct {
	Base http.RoundTripper
}

func (t *Transport) base() http.RoundTripper {
	if t.Base != nil {
		return t.Base
	}
	return http.DefaultTransport
}

func (t *Transport) RoundTrip(r *http.Request) (*http.Response, error) {
	ctx, reqID := EnsureRequestID(r.Context())
	r = r.Clone(ctx)
	if r.Header.Get(RequestIDHeader) == "" {
		r.Header.Set(RequestIDHeader, reqID)
	}

	start := time.Now()
	log := FromCtx(ctx).With(
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
	)

	resp, err := t.base().RoundTrip(r)
	if err != nil {
		log.Warn("outgoing request failed",
			zap.Error(err),
			zap.Duration("duration", time.Since(start)),
		)
		return nil, err
	}

	log.Info("outgoing request",
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)),
	)
	return resp, nil
}
