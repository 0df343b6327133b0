package model

import "github.com/shopspring/decimal"

// CartItem is one cart line: a product and how many of it.
type CartItem struct {
	ProductID int `json:"product_id"`
	Quantity  int `json:"quantity"`
}

// CartDetail is a cart line as returned by GET /api/cart/{id}, with the
// product embedded.
type CartDetail struct {
	CartItemID int     `json:"cart_item_id,omitempty"`
	CartID     int     `json:"cart_id,omitempty"`
	ProductID  int     `json:"product_id"`
	Quantity   int     `json:"quantity"`
	Product    Product `json:"product"`
}

// CartLine is a cart line ready for display.
type CartLine struct {
	ID         int             `json:"id"`
	Name       string          `json:"name"`
	Price      decimal.Decimal `json:"price"`
	Quantity   int             `json:"quantity"`
	ImageURL   string          `json:"imageUrl,omitempty"`
	TotalPrice decimal.Decimal `json:"totalPrice"`
}

// CartSummary is the priced view of a cart.
type CartSummary struct {
	Items             []CartLine      `json:"itemList"`
	Total             decimal.Decimal `json:"total"`
	NotificationCount int             `json:"notificationCount"`
}

// CartRequest is the body posted to the backend cart endpoints.
type CartRequest struct {
	ProductID int `json:"product_id,omitempty"`
	Quantity  int `json:"quantity,omitempty"`
	CartID    int `json:"cart_id"`
}

// CartResult is the backend's answer to a cart mutation.
type CartResult struct {
	Result
	CartItem *CartDetail `json:"cartItem,omitempty"`
}
