package checkout

import (
	"context"
	"fmt"
	"time"

	"github.com/arjunalabs/pos-backend/internal/apierr"
	"github.com/arjunalabs/pos-backend/internal/localstore"
	"github.com/arjunalabs/pos-backend/internal/modules/cart"
	"github.com/arjunalabs/pos-backend/internal/modules/catalog"
	"github.com/arjunalabs/pos-backend/internal/modules/user"
	"github.com/arjunalabs/pos-backend/internal/monotime"
	"github.com/arjunalabs/pos-backend/internal/session"
)

// SanitizeCash normalizes raw cash input to an integer Rupiah amount: every
// non-digit character is stripped and an empty result reads as 0. Malformed
// input is never an error here; the insufficiency check catches it.
func SanitizeCash(raw string) int {
	value := 0
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			value = value*10 + int(r-'0')
		}
	}
	return value
}

// Service defines checkout business logic.
type Service interface {
	// Evaluate prices the cart against the tendered payment. QRIS always
	// settles exactly; cash uses the sanitized amount.
	Evaluate(lines []cart.Line, method PaymentMethod, rawCash string) Quote
	// Confirm finalizes the manager-owned cart: builds the transaction,
	// persists it as last_transaction, and clears the cart.
	Confirm(ctx context.Context, mgr *cart.Manager, method PaymentMethod, rawCash string, store user.StoreContext) (*Transaction, error)
	// ConfirmPayload is the wire-level variant: it resolves item references
	// against the catalog and takes the store context from the session.
	ConfirmPayload(ctx context.Context, req CreateTransactionRequest) (*Transaction, error)
}

type service struct {
	store localstore.Store
	items catalog.Repository
}

func NewService(store localstore.Store, items catalog.Repository) Service {
	return &service{store: store, items: items}
}

func (s *service) Evaluate(lines []cart.Line, method PaymentMethod, rawCash string) Quote {
	total := cart.CartTotal(lines)
	payValue := total
	if method == PaymentCash {
		payValue = SanitizeCash(rawCash)
	}
	return Quote{
		Total:      total,
		PayValue:   payValue,
		Change:     payValue - total,
		Sufficient: payValue >= total,
	}
}

func (s *service) Confirm(ctx context.Context, mgr *cart.Manager, method PaymentMethod, rawCash string, store user.StoreContext) (*Transaction, error) {
	trx, err := s.finalize(mgr.Lines(), method, rawCash, store)
	if err != nil {
		return nil, err
	}
	mgr.Clear()
	return trx, nil
}

func (s *service) ConfirmPayload(ctx context.Context, req CreateTransactionRequest) (*Transaction, error) {
	method, err := ParseMethod(req.PaymentMethod)
	if err != nil {
		return nil, err
	}
	lines := make([]cart.Line, 0, len(req.Items))
	for _, rl := range req.Items {
		item, err := s.items.GetItem(ctx, rl.ItemID)
		if err != nil {
			return nil, err
		}
		qty := rl.Qty
		if qty < 1 {
			return nil, apierr.Validation("quantity must be at least 1 for item %d", rl.ItemID)
		}
		if item.IsCustomizable && rl.CustomLength != 0 {
			line, err := cart.NewDimensioned(*item, rl.CustomLength, rl.CustomWidth, qty)
			if err != nil {
				return nil, err
			}
			lines = append(lines, line)
		} else {
			lines = append(lines, cart.NewSimple(*item, qty))
		}
	}
	return s.finalize(lines, method, req.CashAmount, session.Context(s.store))
}

// finalize applies the confirmation gate and emits the immutable record.
func (s *service) finalize(lines []cart.Line, method PaymentMethod, rawCash string, store user.StoreContext) (*Transaction, error) {
	if len(lines) == 0 {
		return nil, apierr.Validation("cart is empty")
	}
	quote := s.Evaluate(lines, method, rawCash)
	if method == PaymentCash && !quote.Sufficient {
		return nil, apierr.Validation("cash received is less than the amount due")
	}
	trx := &Transaction{
		ID:    fmt.Sprintf("INV-%d", monotime.Next()),
		Date:  time.Now().UTC(),
		Items: lines,
		Total: quote.Total,
		Payment: Payment{
			Method: method,
			Amount: quote.PayValue,
			Change: quote.Change,
		},
		StoreContext: store,
	}
	if err := localstore.SetJSON(s.store, localstore.KeyLastTransaction, trx); err != nil {
		return nil, apierr.System(err, "persisting transaction")
	}
	return trx, nil
}
