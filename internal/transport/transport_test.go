package transport

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arjunalabs/pos-backend/internal/apierr"
	"github.com/arjunalabs/pos-backend/internal/fixtures"
	"github.com/arjunalabs/pos-backend/internal/localstore"
	"github.com/arjunalabs/pos-backend/internal/modules/auth"
	"github.com/arjunalabs/pos-backend/internal/modules/catalog"
	"github.com/arjunalabs/pos-backend/internal/modules/checkout"
	"github.com/arjunalabs/pos-backend/internal/modules/dashboard"
	"github.com/arjunalabs/pos-backend/internal/modules/user"
)

func testTransport(t *testing.T) (*Transport, localstore.Store) {
	t.Helper()
	store := localstore.NewMemory()
	catalogRepo := catalog.NewMemoryRepository(fixtures.Items(), fixtures.Categories())
	return New(Deps{
		Auth:      auth.NewService(user.NewMemoryRepository(fixtures.Users())),
		Catalog:   catalog.NewService(catalogRepo),
		Checkout:  checkout.NewService(store, catalogRepo),
		Dashboard: dashboard.NewService(fixtures.History(), fixtures.TopSellingItem),
	}), store
}

func jsonBody(t *testing.T, v interface{}) []byte {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	return raw
}

func TestLoginSuccess(t *testing.T) {
	tr, _ := testTransport(t)
	resp, err := tr.Handle(context.Background(), Request{
		Method: "POST",
		Path:   "/v1/auth/login",
		Body:   jsonBody(t, map[string]string{"email": "owner@store.com", "password": fixtures.Password}),
	})
	require.NoError(t, err)

	assert.Equal(t, 200, resp.Status)
	assert.True(t, resp.Envelope.Success)
	result, ok := resp.Envelope.Data.(*auth.LoginResult)
	require.True(t, ok)
	assert.Equal(t, "owner@store.com", result.User.Email)
	assert.NotEmpty(t, result.Token)
}

func TestLoginUnregisteredEmail(t *testing.T) {
	tr, store := testTransport(t)
	resp, err := tr.Handle(context.Background(), Request{
		Method: "POST",
		Path:   "/v1/auth/login",
		Body:   jsonBody(t, map[string]string{"email": "ghost@store.com", "password": fixtures.Password}),
	})

	assert.True(t, apierr.IsUnauthorized(err))
	assert.Equal(t, 401, resp.Status)
	assert.False(t, resp.Envelope.Success)

	// Session state untouched by the failed attempt.
	keys, keysErr := store.Keys()
	require.NoError(t, keysErr)
	assert.Empty(t, keys)
}

func TestLoginWrongPassword(t *testing.T) {
	tr, _ := testTransport(t)
	resp, err := tr.Handle(context.Background(), Request{
		Method: "POST",
		Path:   "/v1/auth/login",
		Body:   jsonBody(t, map[string]string{"email": "owner@store.com", "password": "000000"}),
	})
	assert.True(t, apierr.IsUnauthorized(err))
	assert.Equal(t, 401, resp.Status)
}

func TestItemsAndCategories(t *testing.T) {
	tr, _ := testTransport(t)

	resp, err := tr.Handle(context.Background(), Request{Method: "GET", Path: "/v1/items"})
	require.NoError(t, err)
	assert.Equal(t, 200, resp.Status)
	require.NotNil(t, resp.Envelope.Meta)
	assert.Equal(t, len(fixtures.Items()), resp.Envelope.Meta.TotalItems)

	resp, err = tr.Handle(context.Background(), Request{Method: "GET", Path: "/v1/categories"})
	require.NoError(t, err)
	assert.Equal(t, 200, resp.Status)
	assert.True(t, resp.Envelope.Success)
}

func TestDashboardSummary(t *testing.T) {
	tr, _ := testTransport(t)
	resp, err := tr.Handle(context.Background(), Request{Method: "GET", Path: "/v1/dashboard/summary"})
	require.NoError(t, err)

	sum, ok := resp.Envelope.Data.(dashboard.Summary)
	require.True(t, ok)
	assert.Equal(t, 1382000, sum.TotalRevenue)
	assert.Equal(t, 5, sum.TransactionCount)
}

func TestCreateTransaction(t *testing.T) {
	tr, store := testTransport(t)
	resp, err := tr.Handle(context.Background(), Request{
		Method: "POST",
		Path:   "/v1/transactions",
		Body: jsonBody(t, checkout.CreateTransactionRequest{
			PaymentMethod: "qris",
			Items:         []checkout.RequestLine{{ItemID: 201, Qty: 2}},
		}),
	})
	require.NoError(t, err)
	assert.Equal(t, 201, resp.Status)

	echo, ok := resp.Envelope.Data.(checkout.CreateTransactionResponse)
	require.True(t, ok)
	assert.Regexp(t, `^INV-\d+$`, echo.TransactionID)
	assert.Equal(t, 90000, echo.GrandTotal)

	_, present, _ := store.Get(localstore.KeyLastTransaction)
	assert.True(t, present)
}

func TestUnmatchedRouteIsNotFound(t *testing.T) {
	tr, _ := testTransport(t)
	resp, err := tr.Handle(context.Background(), Request{Method: "GET", Path: "/v1/unknown"})

	assert.True(t, apierr.IsNotFound(err))
	assert.Equal(t, 404, resp.Status)
	assert.False(t, resp.Envelope.Success)
}

func TestMethodMustMatchToo(t *testing.T) {
	tr, _ := testTransport(t)
	_, err := tr.Handle(context.Background(), Request{Method: "GET", Path: "/v1/auth/login"})
	assert.True(t, apierr.IsNotFound(err))
}

func TestPathsWorkWithoutVersionPrefix(t *testing.T) {
	tr, _ := testTransport(t)
	resp, err := tr.Handle(context.Background(), Request{Method: "GET", Path: "/items"})
	require.NoError(t, err)
	assert.Equal(t, 200, resp.Status)
}

func TestLatencyHonorsCancellation(t *testing.T) {
	tr, _ := testTransport(t)
	tr.WithLatency(5 * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := tr.Handle(ctx, Request{Method: "GET", Path: "/v1/items"})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), time.Second)
}

func TestLatencyDelaysResponse(t *testing.T) {
	tr, _ := testTransport(t)
	tr.WithLatency(30 * time.Millisecond)

	start := time.Now()
	_, err := tr.Handle(context.Background(), Request{Method: "GET", Path: "/v1/items"})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
}
