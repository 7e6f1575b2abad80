package checkout

import (
	"strings"
	"time"

	"github.com/arjunalabs/pos-backend/internal/apierr"
	"github.com/arjunalabs/pos-backend/internal/modules/cart"
	"github.com/arjunalabs/pos-backend/internal/modules/user"
)

// PaymentMethod represents how the customer pays at the counter.
type PaymentMethod string

const (
	PaymentCash PaymentMethod = "cash"
	PaymentQRIS PaymentMethod = "qris"
)

// ParseMethod validates a wire-level payment method string.
func ParseMethod(raw string) (PaymentMethod, error) {
	switch PaymentMethod(strings.ToLower(raw)) {
	case PaymentCash:
		return PaymentCash, nil
	case PaymentQRIS:
		return PaymentQRIS, nil
	default:
		return "", apierr.Validation("invalid payment_method: %s (allowed: cash, qris)", raw)
	}
}

// Payment records how a confirmed transaction was settled.
type Payment struct {
	Method PaymentMethod `json:"method"`
	Amount int           `json:"amount"`
	Change int           `json:"change"`
}

// Transaction is the immutable record a confirmation produces. It is
// persisted under last_transaction for exactly one downstream read by the
// invoice view, then superseded by the next confirmation.
type Transaction struct {
	ID           string            `json:"id"`
	Date         time.Time         `json:"date"`
	Items        []cart.Line       `json:"items"`
	Total        int               `json:"total"`
	Payment      Payment           `json:"payment"`
	StoreContext user.StoreContext `json:"store_context"`
}

// Quote is the payment evaluation for the current cart: what is due, what
// is tendered, and whether confirmation may proceed.
type Quote struct {
	Total      int  `json:"total"`
	PayValue   int  `json:"pay_value"`
	Change     int  `json:"change"`
	Sufficient bool `json:"sufficient"`
}

// CreateTransactionRequest is the POST /transactions payload.
type CreateTransactionRequest struct {
	Items         []RequestLine `json:"items"`
	PaymentMethod string        `json:"payment_method"`
	CashAmount    string        `json:"cash_amount,omitempty"`
	CustomerName  string        `json:"customer_name,omitempty"`
}

// RequestLine references a catalog item by id; dimensions are present only
// for area-priced entries.
type RequestLine struct {
	ItemID       int     `json:"item_id"`
	Qty          int     `json:"qty"`
	CustomLength float64 `json:"custom_length,omitempty"`
	CustomWidth  float64 `json:"custom_width,omitempty"`
	Note         string  `json:"note,omitempty"`
}

// CreateTransactionResponse is the echo the mock API returns on create.
type CreateTransactionResponse struct {
	TransactionID string    `json:"transaction_id"`
	CreatedAt     time.Time `json:"created_at"`
	GrandTotal    int       `json:"grand_total"`
	CashierName   string    `json:"cashier_name"`
}
