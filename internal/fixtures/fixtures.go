// Package fixtures is the hard-coded mock data set: users, the product
// catalog, and a slice of sales history. Read-only during a process lifetime.
package fixtures

import (
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/arjunalabs/pos-backend/internal/modules/catalog"
	"github.com/arjunalabs/pos-backend/internal/modules/reports"
	"github.com/arjunalabs/pos-backend/internal/modules/user"
)

// Password is the single fixed credential every fixture user shares. This is
// mock data, not a credential store.
const Password = "123456"

var passwordHash = mustHash(Password)

func mustHash(pw string) string {
	// MinCost keeps fixture setup cheap; these hashes protect nothing.
	h, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.MinCost)
	if err != nil {
		log.Fatalf("fixtures: hashing password: %v", err)
	}
	return string(h)
}

// Users returns the fixture user set.
func Users() []user.User {
	return []user.User{
		{ID: 1, Name: "Budi Owner", Email: "owner@store.com", Role: user.RoleOwner, PasswordHash: passwordHash},
		{ID: 2, Name: "Siti Admin", Email: "admin@store.com", Role: user.RoleAdmin, PasswordHash: passwordHash},
		{ID: 3, Name: "Andi Kasir", Email: "cashier@store.com", Role: user.RoleOperator, PasswordHash: passwordHash},
		{ID: 4, Name: "Dewi Lestari", Email: "dewi@arjuna.digital", Role: user.RoleAdmin, PasswordHash: passwordHash},
		{ID: 5, Name: "Rama Wijaya", Email: "rama@arjuna.seragam", Role: user.RoleAdmin, PasswordHash: passwordHash},
	}
}

// Categories returns the fixture category set.
func Categories() []catalog.Category {
	return []catalog.Category{
		{ID: catalog.CategoryPrinting, Name: "Cetak Digital"},
		{ID: catalog.CategoryRetail, Name: "Seragam & Konveksi"},
		{ID: catalog.CategoryShared, Name: "ATK & Umum"},
	}
}

// Items returns the fixture catalog.
func Items() []catalog.Item {
	return []catalog.Item{
		{
			ID: 101, CategoryID: catalog.CategoryPrinting,
			Name:        "Spanduk Flexi China 280gr",
			Description: "Outdoor banner, cetak resolusi tinggi",
			Stock:       120, Price: 25000, Unit: "m²", IsCustomizable: true,
		},
		{
			ID: 102, CategoryID: catalog.CategoryPrinting,
			Name:        "Stiker Vinyl Ritrama",
			Description: "Tahan air, cocok untuk outdoor",
			Stock:       80, Price: 45000, Unit: "m²", IsCustomizable: true,
		},
		{
			ID: 103, CategoryID: catalog.CategoryPrinting,
			Name:        "Banner Albatros Indoor",
			Description: "Bahan albatros halus, harga per meter lari",
			Stock:       60, Price: 15000, Unit: "m", IsCustomizable: true,
		},
		{
			ID: 104, CategoryID: catalog.CategoryPrinting,
			Name:        "Kartu Nama Art Carton (1 box)",
			Description: "Isi 100 lembar, laminasi doff",
			Stock:       35, Price: 35000, Unit: "box",
		},
		{
			ID: 201, CategoryID: catalog.CategoryRetail,
			Name:        "Kaos Polos Combed 30s",
			Description: "Katun combed, jahitan rantai",
			Stock:       150, Price: 45000, Unit: "pcs",
		},
		{
			ID: 202, CategoryID: catalog.CategoryRetail,
			Name:        "Kemeja Seragam PDH",
			Description: "Bahan drill, bordir logo opsional",
			Stock:       40, Price: 185000, Unit: "pcs",
		},
		{
			ID: 203, CategoryID: catalog.CategoryRetail,
			Name:        "Topi Bordir Custom",
			Description: "Twill tebal, bordir depan",
			Stock:       75, Price: 25000, Unit: "pcs",
		},
		{
			ID: 301, CategoryID: catalog.CategoryShared,
			Name:        "Pulpen Standard AE7",
			Description: "Tinta biru 0.5mm",
			Stock:       200, Price: 3000, Unit: "pcs",
		},
		{
			ID: 302, CategoryID: catalog.CategoryShared,
			Name:        "Kopi Susu Gula Aren",
			Description: "Robusta blend dengan gula aren asli",
			Stock:       45, Price: 18000, Unit: "cup",
		},
		{
			ID: 303, CategoryID: catalog.CategoryShared,
			Name:        "Lakban Bening 2 inch",
			Description: "Panjang 90 yard",
			Stock:       58, Price: 12000, Unit: "pcs",
		},
	}
}

// History returns the fixture sales history consumed by reports and the
// dashboard summary.
func History() []reports.Entry {
	day := func(h, m int) time.Time {
		return time.Date(2024, time.February, 8, h, m, 0, 0, time.UTC)
	}
	return []reports.Entry{
		{ID: "INV-1707361", Date: day(10, 30), Total: 150000, Method: "cash", Status: "success", Items: 3},
		{ID: "INV-1707362", Date: day(11, 15), Total: 45000, Method: "qris", Status: "success", Items: 1},
		{ID: "INV-1707363", Date: day(13, 0), Total: 325000, Method: "transfer", Status: "success", Items: 5},
		{ID: "INV-1707364", Date: day(14, 20), Total: 12000, Method: "cash", Status: "success", Items: 1},
		{ID: "INV-1707365", Date: day(15, 45), Total: 850000, Method: "qris", Status: "success", Items: 2},
	}
}

// TopSellingItem is the dashboard headline product. History entries carry
// only line counts, so the top seller stays a fixture.
const TopSellingItem = "Spanduk Flexi China 280gr"
