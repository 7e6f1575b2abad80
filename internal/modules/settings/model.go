package settings

// StoreInfo identifies the shop on receipts.
type StoreInfo struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

// PrinterConfig drives receipt rendering. PaperSize is "58mm" or "80mm".
type PrinterConfig struct {
	PaperSize string `json:"paper_size"`
	AutoCut   bool   `json:"auto_cut"`
	FooterMsg string `json:"footer_msg"`
}

// NotifConfig gates cosmetic feedback: the scanner beep, low-stock alerts,
// and the daily report digest.
type NotifConfig struct {
	Sound       bool `json:"sound"`
	LowStock    bool `json:"low_stock"`
	DailyReport bool `json:"daily_report"`
}

// Staff is a staff list row.
type Staff struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Role  string `json:"role"`
	Email string `json:"email"`
}

// Defaults matching a fresh install.
func DefaultStoreInfo() StoreInfo {
	return StoreInfo{Name: "Arjuna Printing", Address: "Jl. Ahmad Yani No. 88", Phone: "0812-3456-7890"}
}

func DefaultPrinterConfig() PrinterConfig {
	return PrinterConfig{PaperSize: "58mm", AutoCut: true, FooterMsg: "Terima Kasih!"}
}

func DefaultNotifConfig() NotifConfig {
	return NotifConfig{Sound: true, LowStock: true, DailyReport: false}
}

func DefaultStaff() []Staff {
	return []Staff{
		{ID: 1, Name: "Budi Santoso", Role: "Manager", Email: "budi@arjuna.com"},
		{ID: 2, Name: "Siti Aminah", Role: "Kasir", Email: "siti@arjuna.com"},
	}
}
