// Package invoice renders receipts from the last confirmed transaction.
package invoice

import (
	"fmt"
	"strings"

	"github.com/arjunalabs/pos-backend/internal/apierr"
	"github.com/arjunalabs/pos-backend/internal/localstore"
	"github.com/arjunalabs/pos-backend/internal/modules/cart"
	"github.com/arjunalabs/pos-backend/internal/modules/checkout"
	"github.com/arjunalabs/pos-backend/internal/modules/settings"
	"github.com/arjunalabs/pos-backend/internal/modules/user"
)

// LoadLast reads the transaction the invoice view consumes. Absent or
// corrupted data reports NotFound so the caller can redirect to the POS page.
func LoadLast(s localstore.Store) (*checkout.Transaction, error) {
	var trx checkout.Transaction
	ok, err := localstore.GetJSON(s, localstore.KeyLastTransaction, &trx)
	if err != nil {
		return nil, apierr.System(err, "loading last transaction")
	}
	if !ok || trx.ID == "" {
		return nil, apierr.NotFound("no transaction to show")
	}
	return &trx, nil
}

// ShareText formats the WhatsApp-ready digital receipt.
func ShareText(trx *checkout.Transaction) string {
	header := "ARJUNA RETAIL"
	if trx.StoreContext == user.StorePrinting {
		header = "ARJUNA PRINT"
	}

	var b strings.Builder
	rule := strings.Repeat("-", 32)
	fmt.Fprintf(&b, "*STRUK DIGITAL - %s*\n", header)
	b.WriteString(rule + "\n")
	fmt.Fprintf(&b, "No: %s\n", trx.ID)
	fmt.Fprintf(&b, "Tgl: %s\n", trx.Date.Format("02/01/2006"))
	b.WriteString(rule + "\n")
	for _, line := range trx.Items {
		b.WriteString(lineLabel(line) + "\n")
	}
	b.WriteString(rule + "\n")
	fmt.Fprintf(&b, "*Total: %s*\n", rupiah(trx.Total))
	if trx.Payment.Method == checkout.PaymentCash {
		fmt.Fprintf(&b, "Tunai: %s\n", rupiah(trx.Payment.Amount))
	} else {
		b.WriteString("Lunas via QRIS\n")
	}
	b.WriteString(rule + "\n")
	b.WriteString("Terima kasih! Simpan struk ini sebagai bukti sah.")
	return b.String()
}

// Receipt renders the printable fixed-width receipt: 32 columns on 58mm
// paper, 48 on 80mm.
func Receipt(trx *checkout.Transaction, store settings.StoreInfo, printer settings.PrinterConfig) string {
	width := 32
	if printer.PaperSize == "80mm" {
		width = 48
	}
	rule := strings.Repeat("-", width)

	var b strings.Builder
	b.WriteString(center(store.Name, width) + "\n")
	b.WriteString(center(store.Address, width) + "\n")
	b.WriteString(center(store.Phone, width) + "\n")
	b.WriteString(rule + "\n")
	fmt.Fprintf(&b, "%s\n", trx.ID)
	fmt.Fprintf(&b, "%s\n", trx.Date.Format("02/01/2006 15:04"))
	b.WriteString(rule + "\n")
	for _, line := range trx.Items {
		b.WriteString(sides(lineLabel(line), rupiah(cart.LineTotal(line)), width) + "\n")
	}
	b.WriteString(rule + "\n")
	b.WriteString(sides("TOTAL", rupiah(trx.Total), width) + "\n")
	if trx.Payment.Method == checkout.PaymentCash {
		b.WriteString(sides("TUNAI", rupiah(trx.Payment.Amount), width) + "\n")
		b.WriteString(sides("KEMBALI", rupiah(trx.Payment.Change), width) + "\n")
	} else {
		b.WriteString(sides("QRIS", "LUNAS", width) + "\n")
	}
	b.WriteString(rule + "\n")
	b.WriteString(center(printer.FooterMsg, width) + "\n")
	if printer.AutoCut {
		b.WriteString("\n\n\n")
	}
	return b.String()
}

// lineLabel is the receipt description of a cart line, with the chosen
// dimensions spelled out for area-priced entries.
func lineLabel(line cart.Line) string {
	if line.Kind == cart.LineDimensioned {
		return fmt.Sprintf("%s (%gx%gm) %dx", line.Item.Name, line.Length, line.Width, line.Qty)
	}
	return fmt.Sprintf("%s (%dx)", line.Item.Name, line.Qty)
}

// rupiah formats an integer amount as "Rp 1.234.567".
func rupiah(amount int) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	digits := fmt.Sprintf("%d", amount)
	var groups []string
	for len(digits) > 3 {
		groups = append([]string{digits[len(digits)-3:]}, groups...)
		digits = digits[:len(digits)-3]
	}
	groups = append([]string{digits}, groups...)
	return "Rp " + sign + strings.Join(groups, ".")
}

func center(s string, width int) string {
	if len(s) >= width {
		return s
	}
	pad := (width - len(s)) / 2
	return strings.Repeat(" ", pad) + s
}

// sides left-aligns label and right-aligns value, wrapping onto two lines
// when they no longer fit.
func sides(label, value string, width int) string {
	gap := width - len(label) - len(value)
	if gap < 1 {
		return label + "\n" + strings.Repeat(" ", width-len(value)) + value
	}
	return label + strings.Repeat(" ", gap) + value
}
