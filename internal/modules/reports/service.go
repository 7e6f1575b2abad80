package reports

import (
	"context"
	"time"

	"github.com/arjunalabs/pos-backend/internal/apierr"
	"github.com/arjunalabs/pos-backend/internal/localstore"
	"github.com/arjunalabs/pos-backend/internal/modules/cart"
	"github.com/arjunalabs/pos-backend/internal/modules/catalog"
	"github.com/arjunalabs/pos-backend/internal/modules/checkout"
	"github.com/arjunalabs/pos-backend/internal/session"
)

// Service defines sales-report business logic.
type Service interface {
	History(ctx context.Context, period Period, ref time.Time) ([]Entry, error)
	Summarize(ctx context.Context, period Period, ref time.Time) (Summary, error)
	// Reprint rebuilds a last_transaction payload for an old receipt and
	// seeds the store with it, so the invoice collaborator can render it.
	Reprint(ctx context.Context, id string) (*checkout.Transaction, error)
}

type service struct {
	entries []Entry
	store   localstore.Store
}

// NewService creates a report service over the history fixture.
func NewService(entries []Entry, store localstore.Store) Service {
	return &service{entries: entries, store: store}
}

func (s *service) History(ctx context.Context, period Period, ref time.Time) ([]Entry, error) {
	out := make([]Entry, 0, len(s.entries))
	for _, e := range s.entries {
		if inPeriod(e.Date, period, ref) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (s *service) Summarize(ctx context.Context, period Period, ref time.Time) (Summary, error) {
	entries, err := s.History(ctx, period, ref)
	if err != nil {
		return Summary{}, err
	}
	var sum Summary
	for _, e := range entries {
		sum.Revenue += e.Total
		sum.Transactions++
		sum.ItemsSold += e.Items
	}
	return sum, nil
}

func (s *service) Reprint(ctx context.Context, id string) (*checkout.Transaction, error) {
	for _, e := range s.entries {
		if e.ID != id {
			continue
		}
		trx := reprintPayload(e, s.store)
		if err := localstore.SetJSON(s.store, localstore.KeyLastTransaction, trx); err != nil {
			return nil, apierr.System(err, "seeding reprint")
		}
		return trx, nil
	}
	return nil, apierr.NotFound("no transaction with id %s", id)
}

// reprintPayload approximates the original receipt from the history row; the
// fixture keeps no per-line detail, so the reprint shows one stand-in line.
func reprintPayload(e Entry, store localstore.Store) *checkout.Transaction {
	qty := e.Items
	if qty < 1 {
		qty = 1
	}
	standIn := catalog.Item{
		Name:  "Produk Contoh (Reprint)",
		Price: e.Total / qty,
		Unit:  "pcs",
	}
	return &checkout.Transaction{
		ID:    e.ID,
		Date:  e.Date,
		Items: []cart.Line{cart.NewSimple(standIn, qty)},
		Total: e.Total,
		Payment: checkout.Payment{
			Method: checkout.PaymentMethod(e.Method),
			Amount: e.Total,
			Change: 0,
		},
		StoreContext: session.Context(store),
	}
}

func inPeriod(t time.Time, period Period, ref time.Time) bool {
	switch period {
	case PeriodToday:
		ry, rm, rd := ref.Date()
		ty, tm, td := t.Date()
		return ry == ty && rm == tm && rd == td
	case PeriodWeek:
		return !t.Before(ref.AddDate(0, 0, -7)) && !t.After(ref)
	case PeriodMonth:
		return !t.Before(ref.AddDate(0, -1, 0)) && !t.After(ref)
	default:
		return true
	}
}
