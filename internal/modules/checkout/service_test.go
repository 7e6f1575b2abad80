package checkout

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arjunalabs/pos-backend/internal/apierr"
	"github.com/arjunalabs/pos-backend/internal/localstore"
	"github.com/arjunalabs/pos-backend/internal/modules/cart"
	"github.com/arjunalabs/pos-backend/internal/modules/catalog"
	"github.com/arjunalabs/pos-backend/internal/modules/user"
)

var (
	banner = catalog.Item{ID: 101, Name: "Spanduk Flexi", Price: 15000, Unit: "m²", IsCustomizable: true}
	shirt  = catalog.Item{ID: 201, Name: "Kaos Polos", Price: 45000, Unit: "pcs"}
)

func testService(t *testing.T) (Service, localstore.Store) {
	t.Helper()
	store := localstore.NewMemory()
	repo := catalog.NewMemoryRepository([]catalog.Item{banner, shirt}, nil)
	return NewService(store, repo), store
}

func scenarioCart(t *testing.T) []cart.Line {
	t.Helper()
	dim, err := cart.NewDimensioned(banner, 2, 3, 1)
	require.NoError(t, err)
	return []cart.Line{dim, cart.NewSimple(shirt, 2)}
}

func TestSanitizeCash(t *testing.T) {
	assert.Equal(t, 200000, SanitizeCash("200000"))
	assert.Equal(t, 200000, SanitizeCash("Rp 200.000"))
	assert.Equal(t, 0, SanitizeCash(""))
	assert.Equal(t, 0, SanitizeCash("abc"))
	assert.Equal(t, 1500, SanitizeCash("1a5b0c0"))
}

func TestEvaluateCashSufficient(t *testing.T) {
	svc, _ := testService(t)
	q := svc.Evaluate(scenarioCart(t), PaymentCash, "200000")

	assert.Equal(t, 180000, q.Total)
	assert.Equal(t, 200000, q.PayValue)
	assert.Equal(t, 20000, q.Change)
	assert.True(t, q.Sufficient)
}

func TestEvaluateCashInsufficient(t *testing.T) {
	svc, _ := testService(t)
	q := svc.Evaluate(scenarioCart(t), PaymentCash, "100000")

	assert.Equal(t, -80000, q.Change)
	assert.False(t, q.Sufficient)
}

func TestEvaluateQRISIsAlwaysExact(t *testing.T) {
	svc, _ := testService(t)
	q := svc.Evaluate(scenarioCart(t), PaymentQRIS, "")

	assert.Equal(t, 180000, q.PayValue)
	assert.Equal(t, 0, q.Change)
	assert.True(t, q.Sufficient)
}

func TestConfirmCash(t *testing.T) {
	svc, store := testService(t)
	mgr := cart.NewManager(nil)
	mgr.AddSimple(shirt)
	mgr.AddSimple(shirt)
	_, err := mgr.AddCustom(banner, 2, 3, 1)
	require.NoError(t, err)

	trx, err := svc.Confirm(context.Background(), mgr, PaymentCash, "200000", user.StorePrinting)
	require.NoError(t, err)

	assert.Regexp(t, `^INV-\d+$`, trx.ID)
	assert.Equal(t, 180000, trx.Total)
	assert.Equal(t, Payment{Method: PaymentCash, Amount: 200000, Change: 20000}, trx.Payment)
	assert.Equal(t, user.StorePrinting, trx.StoreContext)
	assert.Len(t, trx.Items, 2)
	assert.Equal(t, 0, mgr.Len(), "confirmation clears the cart")

	var persisted Transaction
	ok, err := localstore.GetJSON(store, localstore.KeyLastTransaction, &persisted)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, trx.ID, persisted.ID)
}

func TestConfirmBlockedWhenCashInsufficient(t *testing.T) {
	svc, store := testService(t)
	mgr := cart.NewManager(nil)
	_, err := mgr.AddCustom(banner, 2, 3, 1)
	require.NoError(t, err)
	mgr.AddSimple(shirt)
	mgr.AddSimple(shirt)

	_, err = svc.Confirm(context.Background(), mgr, PaymentCash, "100000", user.StoreGeneral)
	assert.True(t, apierr.IsValidation(err))
	assert.Equal(t, 2, mgr.Len(), "blocked confirmation leaves the cart alone")

	_, ok, getErr := store.Get(localstore.KeyLastTransaction)
	require.NoError(t, getErr)
	assert.False(t, ok, "nothing persisted on a blocked confirmation")
}

func TestConfirmQRISNeedsNoAmount(t *testing.T) {
	svc, _ := testService(t)
	mgr := cart.NewManager(nil)
	mgr.AddSimple(shirt)

	trx, err := svc.Confirm(context.Background(), mgr, PaymentQRIS, "", user.StoreRetail)
	require.NoError(t, err)
	assert.Equal(t, PaymentQRIS, trx.Payment.Method)
	assert.Equal(t, trx.Total, trx.Payment.Amount)
	assert.Equal(t, 0, trx.Payment.Change)
}

func TestConfirmEmptyCart(t *testing.T) {
	svc, _ := testService(t)
	_, err := svc.Confirm(context.Background(), cart.NewManager(nil), PaymentQRIS, "", user.StoreGeneral)
	assert.True(t, apierr.IsValidation(err))
}

func TestConfirmIDsAreUnique(t *testing.T) {
	svc, _ := testService(t)
	seen := map[string]bool{}
	for i := 0; i < 10; i++ {
		mgr := cart.NewManager(nil)
		mgr.AddSimple(shirt)
		trx, err := svc.Confirm(context.Background(), mgr, PaymentQRIS, "", user.StoreGeneral)
		require.NoError(t, err)
		assert.False(t, seen[trx.ID], "duplicate id %s", trx.ID)
		seen[trx.ID] = true
	}
}

func TestConfirmPayload(t *testing.T) {
	svc, _ := testService(t)
	trx, err := svc.ConfirmPayload(context.Background(), CreateTransactionRequest{
		PaymentMethod: "cash",
		CashAmount:    "200000",
		Items: []RequestLine{
			{ItemID: banner.ID, Qty: 1, CustomLength: 2, CustomWidth: 3},
			{ItemID: shirt.ID, Qty: 2},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 180000, trx.Total)
	assert.Equal(t, 20000, trx.Payment.Change)
	assert.Equal(t, cart.LineDimensioned, trx.Items[0].Kind)
	assert.Equal(t, cart.LineSimple, trx.Items[1].Kind)
}

func TestConfirmPayloadUnknownItem(t *testing.T) {
	svc, _ := testService(t)
	_, err := svc.ConfirmPayload(context.Background(), CreateTransactionRequest{
		PaymentMethod: "qris",
		Items:         []RequestLine{{ItemID: 12345, Qty: 1}},
	})
	assert.True(t, apierr.IsNotFound(err))
}

func TestConfirmPayloadBadMethod(t *testing.T) {
	svc, _ := testService(t)
	_, err := svc.ConfirmPayload(context.Background(), CreateTransactionRequest{
		PaymentMethod: "cheque",
		Items:         []RequestLine{{ItemID: shirt.ID, Qty: 1}},
	})
	assert.True(t, apierr.IsValidation(err))
}

func TestParseMethod(t *testing.T) {
	m, err := ParseMethod("CASH")
	require.NoError(t, err)
	assert.Equal(t, PaymentCash, m)

	m, err = ParseMethod("qris")
	require.NoError(t, err)
	assert.Equal(t, PaymentQRIS, m)

	_, err = ParseMethod("voucher")
	assert.True(t, apierr.IsValidation(err))
}
