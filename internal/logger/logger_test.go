package logger

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestInit(t *testing.T) {
	originalLog := log
	defer func() { log = originalLog }()

	t.Run("Production", func(t *testing.T) {
		Init("production")
		assert.NotNil(t, log)
		assert.True(t, log.Core().Enabled(zapcore.InfoLevel))
	})

	t.Run("Development", func(t *testing.T) {
		Init("development")
		assert.NotNil(t, log)
		assert.False(t, log.Core().Enabled(zapcore.InfoLevel))
	})

	t.Run("Debug", func(t *testing.T) {
		Init("debug")
		assert.True(t, log.Core().Enabled(zapcore.DebugLevel))
	})
}

func TestL(t *testing.T) {
	originalLog := log
	defer func() { log = originalLog }()

	// Force nil to test lazy initialization
	log = nil
	os.Setenv("APP_ENV", "test")

	l := L()
	assert.NotNil(t, l)
	assert.NotNil(t, log)
}

func TestReplace(t *testing.T) {
	originalLog := log
	nop := zap.NewNop()

	restore := Replace(nop)
	assert.Same(t, nop, L())

	restore()
	assert.Same(t, originalLog, log)
}

func TestContextFunctions(t *testing.T) {
	ctx := context.Background()
	reqID := "test-request-id-123"

	t.Run("WithRequestID", func(t *testing.T) {
		newCtx := WithRequestID(ctx, reqID)
		assert.NotEqual(t, ctx, newCtx)
		assert.Equal(t, reqID, newCtx.Value(requestIDKey))
	})

	t.Run("RequestIDFrom", func(t *testing.T) {
		assert.Equal(t, reqID, RequestIDFrom(WithRequestID(ctx, reqID)))
		assert.Equal(t, "", RequestIDFrom(ctx))
	})

	t.Run("EnsureRequestID keeps existing", func(t *testing.T) {
		withID := WithRequestID(ctx, reqID)
		got, id := EnsureRequestID(withID)
		assert.Equal(t, reqID, id)
		assert.Equal(t, withID, got)
	})

	t.Run("EnsureRequestID generates", func(t *testing.T) {
		got, id := EnsureRequestID(ctx)
		assert.NotEmpty(t, id)
		assert.Equal(t, id, RequestIDFrom(got))
	})
}

func TestFromCtx(t *testing.T) {
	core, observed := observer.New(zapcore.InfoLevel)
	defer Replace(zap.New(core))()

	t.Run("WithRequestID", func(t *testing.T) {
		reqID := "req-abc-123"
		ctx := WithRequestID(context.Background(), reqID)

		FromCtx(ctx).Info("test message with id")

		logs := observed.TakeAll()
		require.Len(t, logs, 1)
		assert.Equal(t, "test message with id", logs[0].Message)
		assert.Equal(t, reqID, logs[0].ContextMap()["request_id"])
	})

	t.Run("WithoutRequestID", func(t *testing.T) {
		FromCtx(context.Background()).Info("test message without id")

		logs := observed.TakeAll()
		require.Len(t, logs, 1)
		_, ok := logs[0].ContextMap()["request_id"]
		assert.False(t, ok)
	})
}

func TestSync(t *testing.T) {
	assert.NotPanics(t, func() {
		Sync()
	})
}

func TestTransport(t *testing.T) {
	core, observed := observer.New(zapcore.InfoLevel)
	defer Replace(zap.New(core))()

	var seen string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = r.Header.Get(RequestIDHeader)
		w.WriteHeader(http.StatusTeapot)
	}))
	defer srv.Close()

	client := &http.Client{Transport: &Transport{}}

	t.Run("Generates ID when missing", func(t *testing.T) {
		req, _ := http.NewRequest(http.MethodGet, srv.URL+"/products", nil)
		resp, err := client.Do(req)
		require.NoError(t, err)
		resp.Body.Close()

		assert.NotEmpty(t, seen)
		logs := observed.TakeAll()
		require.Len(t, logs, 1)
		assert.Equal(t, "outgoing request", logs[0].Message)
		assert.Equal(t, "/products", logs[0].ContextMap()["path"])
		assert.EqualValues(t, http.StatusTeapot, logs[0].ContextMap()["status"])
	})

	t.Run("Uses ID from context", func(t *testing.T) {
		ctx := WithRequestID(context.Background(), "ctx-id")
		req, _ := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL, nil)
		resp, err := client.Do(req)
		require.NoError(t, err)
		resp.Body.Close()

		assert.Equal(t, "ctx-id", seen)
		observed.TakeAll()
	})

	t.Run("Logs transport failure", func(t *testing.T) {
		req, _ := http.NewRequest(http.MethodGet, "http://127.0.0.1:1", nil)
		_, err := client.Do(req)
		assert.Error(t, err)

		logs := observed.FilterMessage("outgoing request failed").All()
		assert.Len(t, logs, 1)
	})
}
