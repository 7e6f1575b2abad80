package catalog

// Category groups items. Reference data, immutable for the process lifetime.
type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Well-known category ids. Printing-mode stores sell categories 1 and 3,
// retail-mode stores sell 2 and 3, general stores sell everything.
const (
	CategoryPrinting = 1
	CategoryRetail   = 2
	CategoryShared   = 3
)

// Item is a catalog entry. Price is an integer Rupiah amount per Unit; when
// IsCustomizable is set the price applies per unit area and the cashier picks
// length and width at add-to-cart time.
type Item struct {
	ID             int    `json:"id"`
	CategoryID     int    `json:"category_id"`
	Name           string `json:"name"`
	Description    string `json:"description,omitempty"`
	ImageURL       string `json:"image_url,omitempty"`
	Stock          int    `json:"stock"`
	Price          int    `json:"price"`
	Unit           string `json:"unit"`
	IsCustomizable bool   `json:"is_customizable"`
}
