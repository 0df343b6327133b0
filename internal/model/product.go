package model

import "github.com/shopspring/decimal"

// Product represents an item in the shop catalogue.
type Product struct {
	ID          int             `json:"product_id"`
	Name        string          `json:"product_name"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    string          `json:"image_url,omitempty"`
	CategoryID  int             `json:"category_id"`
	IsSpecial   bool            `json:"is_special"`
}

// Category groups products on the catalogue pages.
type Category struct {
	ID   int    `json:"category_id"`
	Name string `json:"category_name"`
}

// Catalogue filters understood by FilterByCategory in addition to numeric ids.
const (
	CategoryAll      = "All"
	CategorySpecials = "Specials"
)
