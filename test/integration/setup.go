package integration

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"
	"time"

	"storefront/internal/config"
	"storefront/internal/database"
	"storefront/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestDB represents a test database instance.
type TestDB struct {
	Container *postgres.PostgresContainer
	Pool      *pgxpool.Pool
	ConnStr   string
}

// SetupTestDB creates a PostgreSQL test container with the session schema
// applied.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	ctx := context.Background()

	// Create PostgreSQL container
	postgresContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	// Get connection string
	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	dbConfig := config.DatabaseConfig{
		MaxConnections:  10,
		MinConnections:  2,
		MaxConnLifetime: 300,
	}

	pool, err := database.NewPoolFromURL(ctx, connStr, dbConfig, zerolog.Nop())
	if err != nil {
		t.Fatalf("failed to create connection pool: %v", err)
	}

	if err := database.Migrate(ctx, pool); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		pool.Close()
		if err := postgresContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	return &TestDB{
		Container: postgresContainer,
		Pool:      pool,
		ConnStr:   connStr,
	}
}

// CleanupDB removes every stored session.
func CleanupDB(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	if _, err := pool.Exec(context.Background(), "DELETE FROM sessions"); err != nil {
		t.Logf("failed to clean sessions: %v", err)
	}
}

// Test account known to the fake backend.
const (
	TestEmail    = "ann@example.com"
	TestPassword = "organic"
	TestUserID   = 4
	TestCartID   = 11
)

// FakeBackend is an in-memory stand-in for the shop's REST backend covering
// the users, products and cart endpoints.
type FakeBackend struct {
	Server *httptest.Server

	mu       sync.Mutex
	products map[int]model.Product
	cart     map[int]int // product id -> quantity
	order    []int
	submits  int
}

// NewFakeBackend starts a fake backend seeded with three products.
func NewFakeBackend(t *testing.T) *FakeBackend {
	t.Helper()

	b := &FakeBackend{
		products: map[int]model.Product{
			1: {ID: 1, Name: "Organic Apples", Price: decimal.RequireFromString("4.50"), CategoryID: 1},
			2: {ID: 2, Name: "Oat Milk", Price: decimal.RequireFromString("3.20"), CategoryID: 2, IsSpecial: true},
			3: {ID: 3, Name: "Sourdough", Price: decimal.RequireFromString("6.00"), CategoryID: 3},
		},
		cart: map[int]int{},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/users/login", b.login)
	mux.HandleFunc("GET /api/users/profile/{id}", b.profile)
	mux.HandleFunc("GET /api/products/", b.listProducts)
	mux.HandleFunc("GET /api/products/categories", b.categories)
	mux.HandleFunc("GET /api/products/select/{id}", b.product)
	mux.HandleFunc("GET /api/cart/{id}", b.getCart)
	mux.HandleFunc("POST /api/cart/add", b.cartAdd)
	mux.HandleFunc("POST /api/cart/update", b.cartUpdate)
	mux.HandleFunc("POST /api/cart/remove", b.cartRemove)
	mux.HandleFunc("POST /api/cart/submit", b.cartSubmit)

	b.Server = httptest.NewServer(mux)
	t.Cleanup(b.Server.Close)

	return b
}

// Submits returns how many times the cart was submitted.
func (b *FakeBackend) Submits() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.submits
}

func reply(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (b *FakeBackend) login(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	_ = json.NewDecoder(r.Body).Decode(&req)

	if req.Email != TestEmail || req.Password != TestPassword {
		reply(w, http.StatusUnauthorized, map[string]any{"success": false, "message": "Invalid email or password"})
		return
	}
	reply(w, http.StatusOK, model.LoginResult{
		Result: model.Result{Success: true, Message: "Login successful"},
		User:   &model.User{ID: TestUserID, Email: TestEmail, FirstName: "Ann", LastName: "Lee"},
		CartID: TestCartID,
	})
}

func (b *FakeBackend) profile(w http.ResponseWriter, r *http.Request) {
	if r.PathValue("id") != strconv.Itoa(TestUserID) {
		reply(w, http.StatusNotFound, map[string]string{"error": "User not found"})
		return
	}
	reply(w, http.StatusOK, model.User{ID: TestUserID, Email: TestEmail, FirstName: "Ann", LastName: "Lee", JoinedDate: "2024-01-02"})
}

func (b *FakeBackend) listProducts(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()

	products := make([]model.Product, 0, len(b.products))
	for id := 1; id <= len(b.products); id++ {
		products = append(products, b.products[id])
	}
	reply(w, http.StatusOK, products)
}

func (b *FakeBackend) categories(w http.ResponseWriter, r *http.Request) {
	reply(w, http.StatusOK, []model.Category{{ID: 1, Name: "Fruit"}, {ID: 2, Name: "Dairy"}, {ID: 3, Name: "Bakery"}})
}

func (b *FakeBackend) product(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(r.PathValue("id"))

	b.mu.Lock()
	p, ok := b.products[id]
	b.mu.Unlock()

	if !ok {
		reply(w, http.StatusNotFound, map[string]string{"message": "Product not found"})
		return
	}
	reply(w, http.StatusOK, p)
}

func (b *FakeBackend) getCart(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()

	details := make([]model.CartDetail, 0, len(b.order))
	for _, id := range b.order {
		details = append(details, model.CartDetail{
			CartID:    TestCartID,
			ProductID: id,
			Quantity:  b.cart[id],
			Product:   b.products[id],
		})
	}
	reply(w, http.StatusOK, details)
}

func (b *FakeBackend) decodeCart(w http.ResponseWriter, r *http.Request) (model.CartRequest, bool) {
	var req model.CartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.CartID != TestCartID {
		reply(w, http.StatusBadRequest, map[string]string{"message": "Unknown cart"})
		return req, false
	}
	return req, true
}

func (b *FakeBackend) cartAdd(w http.ResponseWriter, r *http.Request) {
	req, ok := b.decodeCart(w, r)
	if !ok {
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if _, known := b.products[req.ProductID]; !known {
		reply(w, http.StatusOK, model.Result{Success: false, Message: "Product unavailable"})
		return
	}
	if _, inCart := b.cart[req.ProductID]; !inCart {
		b.order = append(b.order, req.ProductID)
	}
	b.cart[req.ProductID] += req.Quantity
	reply(w, http.StatusOK, model.Result{Success: true, Message: "Item added to cart"})
}

func (b *FakeBackend) cartUpdate(w http.ResponseWriter, r *http.Request) {
	req, ok := b.decodeCart(w, r)
	if !ok {
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if _, inCart := b.cart[req.ProductID]; !inCart {
		reply(w, http.StatusOK, model.Result{Success: false, Message: "Item not in cart"})
		return
	}
	b.cart[req.ProductID] = req.Quantity
	reply(w, http.StatusOK, model.Result{Success: true, Message: "Cart updated"})
}

func (b *FakeBackend) cartRemove(w http.ResponseWriter, r *http.Request) {
	req, ok := b.decodeCart(w, r)
	if !ok {
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	delete(b.cart, req.ProductID)
	for i, id := range b.order {
		if id == req.ProductID {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}
	reply(w, http.StatusOK, model.Result{Success: true, Message: "Item removed"})
}

func (b *FakeBackend) cartSubmit(w http.ResponseWriter, r *http.Request) {
	if _, ok := b.decodeCart(w, r); !ok {
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if len(b.order) == 0 {
		reply(w, http.StatusOK, model.Result{Success: false, Message: "Cart is empty"})
		return
	}
	b.cart = map[int]int{}
	b.order = nil
	b.submits++
	reply(w, http.StatusOK, model.Result{Success: true, Message: "Order placed"})
}
