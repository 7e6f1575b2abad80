package dashboard

import (
	"context"

	"github.com/arjunalabs/pos-backend/internal/modules/reports"
)

// Summary is the aggregate block the home screen shows.
type Summary struct {
	TotalRevenue     int    `json:"total_revenue"`
	TransactionCount int    `json:"transaction_count"`
	ItemsSold        int    `json:"items_sold"`
	TopSellingItem   string `json:"top_selling_item"`
}

// Service defines dashboard business logic.
type Service interface {
	Summarize(ctx context.Context) (Summary, error)
}

type service struct {
	history   []reports.Entry
	topSeller string
}

// NewService computes summaries from the sales history so the dashboard and
// the reports page always agree; the top seller is fixture data because
// history rows carry no per-item detail.
func NewService(history []reports.Entry, topSeller string) Service {
	return &service{history: history, topSeller: topSeller}
}

func (s *service) Summarize(ctx context.Context) (Summary, error) {
	sum := Summary{TopSellingItem: s.topSeller}
	for _, e := range s.history {
		sum.TotalRevenue += e.Total
		sum.TransactionCount++
		sum.ItemsSold += e.Items
	}
	return sum, nil
}
