package payment

import (
	"context"
	"errors"
	"testing"
	"time"

	"marketplace-client/internal/api"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockGateway struct {
	mock.Mock
}

func (m *MockGateway) CreateMomo(ctx context.Context, params MomoParams) (*MomoPayment, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*MomoPayment), args.Error(1)
}

func (m *MockGateway) Status(ctx context.Context, orderID string) (*Status, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Status), args.Error(1)
}

func TestService_Pay(t *testing.T) {
	gw := new(MockGateway)
	svc := NewService(gw, 0)
	ctx := context.Background()
	params := MomoParams{OrderID: "o1", Amount: 1000}

	gw.On("CreateMomo", ctx, params).Return(&MomoPayment{OrderID: "o1", PayURL: "https://pay"}, nil)

	p, err := svc.Pay(ctx, params)
	require.NoError(t, err)
	assert.Equal(t, "https://pay", p.Link())
	gw.AssertExpectations(t)
}

func TestService_AwaitStatus(t *testing.T) {
	t.Run("Polls until terminal", func(t *testing.T) {
		gw := new(MockGateway)
		svc := NewService(gw, time.Millisecond)
		ctx := context.Background()

		gw.On("Status", ctx, "o1").Return(&Status{Status: StatusPending}, nil).Once()
		gw.On("Status", ctx, "o1").Return(nil, errors.New("timeout")).Once()
		gw.On("Status", ctx, "o1").Return(&Status{Status: StatusPaid}, nil).Once()

		st, err := svc.AwaitStatus(ctx, "o1")
		require.NoError(t, err)
		assert.Equal(t, StatusPaid, st.Status)
		gw.AssertNumberOfCalls(t, "Status", 3)
	})

	t.Run("Failed is terminal too", func(t *testing.T) {
		gw := new(MockGateway)
		svc := NewService(gw, time.Millisecond)

		gw.On("Status", mock.Anything, "o1").Return(&Status{Status: StatusFailed}, nil)

		st, err := svc.AwaitStatus(context.Background(), "o1")
		require.NoError(t, err)
		assert.False(t, st.Succeeded())
	})

	t.Run("Context ends first", func(t *testing.T) {
		gw := new(MockGateway)
		svc := NewService(gw, time.Millisecond)
		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()

		gw.On("Status", mock.Anything, "o1").Return(&Status{Status: StatusPending}, nil)

		st, err := svc.AwaitStatus(ctx, "o1")
		assert.ErrorIs(t, err, context.DeadlineExceeded)
		require.NotNil(t, st)
		assert.Equal(t, StatusPending, st.Status)
	})

	t.Run("Unauthorized stops", func(t *testing.T) {
		gw := new(MockGateway)
		svc := NewService(gw, time.Millisecond)

		gw.On("Status", mock.Anything, "o1").Return(nil, &api.APIError{StatusCode: 401, Message: "expired"})

		_, err := svc.AwaitStatus(context.Background(), "o1")
		assert.ErrorIs(t, err, api.ErrUnauthorized)
		gw.AssertNumberOfCalls(t, "Status", 1)
	})

	t.Run("Not found stops with backend message", func(t *testing.T) {
		gw := new(MockGateway)
		svc := NewService(gw, time.Millisecond)

		gw.On("Status", mock.Anything, "missing-order").
			Return(nil, &api.APIError{StatusCode: 404, Message: "Payment not found"})

		st, err := svc.AwaitStatus(context.Background(), "missing-order")
		assert.Nil(t, st)
		assert.Equal(t, 404, api.StatusCode(err))
		assert.Equal(t, "Payment not found", api.Message(err))
		gw.AssertNumberOfCalls(t, "Status", 1)
	})

	t.Run("Server errors are retried", func(t *testing.T) {
		gw := new(MockGateway)
		svc := NewService(gw, time.Millisecond)

		gw.On("Status", mock.Anything, "o1").
			Return(nil, &api.APIError{StatusCode: 503, Message: "unavailable"}).Once()
		gw.On("Status", mock.Anything, "o1").Return(&Status{Status: StatusPaid}, nil).Once()

		st, err := svc.AwaitStatus(context.Background(), "o1")
		require.NoError(t, err)
		assert.True(t, st.Succeeded())
		gw.AssertNumberOfCalls(t, "Status", 2)
	})

	t.Run("Missing order id", func(t *testing.T) {
		_, err := NewService(new(MockGateway), 0).AwaitStatus(context.Background(), "")
		assert.ErrorIs(t, err, ErrMissingOrderID)
	})
}
