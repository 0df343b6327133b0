package router

import (
	"net/http"

	"storefront/internal/handler"
	"storefront/internal/middleware"
	"storefront/internal/session"

	"github.com/rs/zerolog"
)

// Handlers groups the HTTP handlers served by the router.
type Handlers struct {
	Auth    *handler.AuthHandler
	Product *handler.ProductHandler
	Cart    *handler.CartHandler
	Review  *handler.ReviewHandler
	Follow  *handler.FollowHandler
	Planner *handler.PlannerHandler
}

// New creates a new HTTP router with all routes and middleware configured.
func New(h Handlers, sessions session.Store, logger zerolog.Logger) http.Handler {
	mux := http.NewServeMux()

	// Health check endpoint (no session required)
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	mux.HandleFunc("POST /api/auth/login", h.Auth.Login)
	mux.HandleFunc("POST /api/auth/register", h.Auth.Register)
	mux.HandleFunc("POST /api/auth/logout", h.Auth.Logout)
	mux.HandleFunc("GET /api/profile", h.Auth.Profile)
	mux.HandleFunc("PUT /api/profile", h.Auth.UpdateProfile)
	mux.HandleFunc("DELETE /api/profile", h.Auth.DeleteAccount)
	mux.HandleFunc("PUT /api/profile/password", h.Auth.UpdatePassword)

	mux.HandleFunc("GET /api/products", h.Product.List)
	mux.HandleFunc("GET /api/products/categories", h.Product.Categories)
	mux.HandleFunc("GET /api/products/{id}", h.Product.GetByID)

	mux.HandleFunc("GET /api/cart", h.Cart.Summary)
	mux.HandleFunc("POST /api/cart/items", h.Cart.AddItem)
	mux.HandleFunc("PUT /api/cart/items/{id}", h.Cart.UpdateItem)
	mux.HandleFunc("DELETE /api/cart/items/{id}", h.Cart.RemoveItem)
	mux.HandleFunc("POST /api/cart/items/{id}/increment", h.Cart.Increment)
	mux.HandleFunc("POST /api/cart/items/{id}/decrement", h.Cart.Decrement)
	mux.HandleFunc("POST /api/checkout", h.Cart.Checkout)

	mux.HandleFunc("GET /api/reviews", h.Review.All)
	mux.HandleFunc("GET /api/products/{id}/reviews", h.Review.ByProduct)
	mux.HandleFunc("POST /api/products/{id}/reviews", h.Review.Create)
	mux.HandleFunc("PUT /api/reviews/{id}", h.Review.Update)
	mux.HandleFunc("DELETE /api/reviews/{id}", h.Review.Delete)
	mux.HandleFunc("POST /api/reviews/{id}/replies", h.Review.CreateReply)
	mux.HandleFunc("PUT /api/replies/{id}", h.Review.UpdateReply)
	mux.HandleFunc("DELETE /api/replies/{id}", h.Review.DeleteReply)

	mux.HandleFunc("GET /api/follows/{userID}", h.Follow.IsFollowing)
	mux.HandleFunc("POST /api/follows/{userID}", h.Follow.Follow)
	mux.HandleFunc("DELETE /api/follows/{userID}", h.Follow.Unfollow)

	mux.HandleFunc("POST /api/tdee", h.Planner.SetProfile)
	mux.HandleFunc("GET /api/mealplan", h.Planner.MealPlan)

	// Apply middleware in order: Recovery -> Logging -> CORS -> Session
	var handler http.Handler = mux
	handler = middleware.Session(sessions, logger)(handler)
	handler = middleware.CORS(handler)
	handler = middleware.Logging(logger)(handler)
	handler = middleware.Recovery(logger)(handler)

	return handler
}
