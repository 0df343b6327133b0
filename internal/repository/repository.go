// Package repository talks to the shop's REST backend. Each repository wraps
// one resource family and returns model types; transport failures wrap
// model.ErrServerUnavailable and non-2xx answers surface as *model.APIError.
package repository

import (
	"context"

	"storefront/internal/model"
)

// UserRepository defines account operations against the backend.
type UserRepository interface {
	// Login verifies credentials and returns the user and their cart id.
	Login(ctx context.Context, req model.LoginRequest) (*model.LoginResult, error)

	// Register creates a new account.
	Register(ctx context.Context, req model.RegisterRequest) (*model.Result, error)

	// Profile retrieves a user's profile.
	Profile(ctx context.Context, userID int) (*model.User, error)

	// UpdateProfile changes a user's first and last name.
	UpdateProfile(ctx context.Context, req model.ProfileUpdate) (*model.User, error)

	// UpdatePassword changes a user's password.
	UpdatePassword(ctx context.Context, req model.PasswordUpdate) (*model.Result, error)

	// Delete removes a user and their cart items.
	Delete(ctx context.Context, userID int) (*model.Result, error)
}

// ProductRepository defines catalogue read operations.
type ProductRepository interface {
	// All retrieves every product.
	All(ctx context.Context) ([]model.Product, error)

	// Categories retrieves every category.
	Categories(ctx context.Context) ([]model.Category, error)

	// ByID retrieves a single product.
	ByID(ctx context.Context, id int) (*model.Product, error)
}

// CartRepository defines the server-authoritative cart operations.
type CartRepository interface {
	// Get retrieves the cart lines, each with its product embedded.
	Get(ctx context.Context, cartID int) ([]model.CartDetail, error)

	// Add adds quantity of a product to the cart.
	Add(ctx context.Context, cartID, productID, quantity int) (*model.CartResult, error)

	// Update sets the quantity of a product in the cart.
	Update(ctx context.Context, cartID, productID, quantity int) (*model.CartResult, error)

	// Remove deletes a product line from the cart.
	Remove(ctx context.Context, cartID, productID int) (*model.CartResult, error)

	// Submit turns the cart into an order.
	Submit(ctx context.Context, cartID int) (*model.CartResult, error)
}

// ReviewRepository defines review and reply operations.
type ReviewRepository interface {
	All(ctx context.Context) ([]model.Review, error)
	ByProduct(ctx context.Context, productID int) ([]model.Review, error)
	Create(ctx context.Context, req model.ReviewRequest) (*model.Review, error)
	Update(ctx context.Context, reviewID int, req model.ReviewRequest) (*model.Review, error)
	Delete(ctx context.Context, reviewID, userID int) (*model.Review, error)
	CreateReply(ctx context.Context, req model.ReplyRequest) (*model.Review, error)
	UpdateReply(ctx context.Context, replyID int, req model.ReplyRequest) (*model.Review, error)
	DeleteReply(ctx context.Context, replyID, userID int) (*model.Review, error)
}

// FollowRepository defines the follow relationship operations.
type FollowRepository interface {
	Follow(ctx context.Context, followerID, followingID int) (*model.Result, error)
	Unfollow(ctx context.Context, followerID, followingID int) (*model.Result, error)
	IsFollowing(ctx context.Context, followerID, followingID int) (bool, error)
}
