package service

import (
	"context"

	"storefront/internal/model"
	"storefront/internal/payment"
	"storefront/internal/tdee"
)

// AuthService defines account and session lifecycle operations.
type AuthService interface {
	// Login verifies credentials and attaches the user and cart to sess.
	Login(ctx context.Context, sess *model.Session, req model.LoginRequest) (*model.LoginResult, error)

	// Register creates a new account.
	Register(ctx context.Context, req model.RegisterRequest) (*model.Result, error)

	// Logout clears the local cart and forgets the session.
	Logout(ctx context.Context, sess *model.Session) error

	// Profile returns the logged-in user's profile.
	Profile(ctx context.Context, sess *model.Session) (*model.User, error)

	// UpdateProfile changes the logged-in user's name.
	UpdateProfile(ctx context.Context, sess *model.Session, firstName, lastName string) (*model.User, error)

	// UpdatePassword changes the logged-in user's password.
	UpdatePassword(ctx context.Context, sess *model.Session, password string) (*model.Result, error)

	// DeleteAccount removes the user and logs the session out.
	DeleteAccount(ctx context.Context, sess *model.Session) (*model.Result, error)
}

// ProductService defines catalogue operations.
type ProductService interface {
	// List returns products matching a catalogue filter ("All", "Specials"
	// or a category id).
	List(ctx context.Context, filter string) ([]model.Product, error)

	// Categories returns every category.
	Categories(ctx context.Context) ([]model.Category, error)

	// GetByID retrieves a single product.
	GetByID(ctx context.Context, id int) (*model.Product, error)
}

// CartService defines operations on the session's cart.
type CartService interface {
	Summary(ctx context.Context, sess *model.Session) (*model.CartSummary, error)
	Add(ctx context.Context, sess *model.Session, productID int) (*model.CartResult, error)
	Remove(ctx context.Context, sess *model.Session, productID int) (*model.CartResult, error)
	UpdateQuantity(ctx context.Context, sess *model.Session, productID, quantity int) (*model.CartResult, error)
	Increment(ctx context.Context, sess *model.Session, productID int) (*model.CartResult, error)
	Decrement(ctx context.Context, sess *model.Session, productID int) (*model.CartResult, error)

	// Checkout validates the card and submits the cart.
	Checkout(ctx context.Context, sess *model.Session, card payment.Card) (*model.CartResult, error)
}

// ReviewService defines review and reply operations.
type ReviewService interface {
	All(ctx context.Context) ([]model.Review, error)
	ByProduct(ctx context.Context, productID int) ([]model.Review, error)
	Create(ctx context.Context, sess *model.Session, req model.ReviewRequest) (*model.Review, error)
	Update(ctx context.Context, sess *model.Session, reviewID int, req model.ReviewRequest) (*model.Review, error)
	Delete(ctx context.Context, sess *model.Session, reviewID int) (*model.Review, error)
	CreateReply(ctx context.Context, sess *model.Session, reviewID int, req model.ReplyRequest) (*model.Review, error)
	UpdateReply(ctx context.Context, sess *model.Session, replyID int, req model.ReplyRequest) (*model.Review, error)
	DeleteReply(ctx context.Context, sess *model.Session, replyID int) (*model.Review, error)
}

// FollowService defines follow relationships from the logged-in user.
type FollowService interface {
	Follow(ctx context.Context, sess *model.Session, userID int) (*model.Result, error)
	Unfollow(ctx context.Context, sess *model.Session, userID int) (*model.Result, error)
	IsFollowing(ctx context.Context, sess *model.Session, userID int) (bool, error)
}

// PlannerService derives calorie targets and meal plans.
type PlannerService interface {
	// SetProfile computes the TDEE for p and stores it on sess.
	SetProfile(ctx context.Context, sess *model.Session, p tdee.Profile) (int, error)

	// MealPlan builds a plan for the TDEE stored on sess.
	MealPlan(ctx context.Context, sess *model.Session, tf model.TimeFrame, diet string) (*model.MealPlan, error)
}

func requireUser(sess *model.Session) error {
	if !sess.LoggedIn() {
		return model.ErrNotLoggedIn
	}
	return nil
}

func requireCart(sess *model.Session) error {
	if !sess.LoggedIn() || sess.CartID == 0 {
		return model.ErrCartRequired
	}
	return nil
}
