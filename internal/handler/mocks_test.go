package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"

	"storefront/internal/model"
	"storefront/internal/payment"
	"storefront/internal/session"
	"storefront/internal/tdee"

	"github.com/stretchr/testify/mock"
)

// newRequest builds a request carrying sess the way the session middleware
// would.
func newRequest(method, target, body string, sess *model.Session) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	if sess != nil {
		req = req.WithContext(session.NewContext(req.Context(), sess))
	}
	return req
}

type MockProductService struct {
	mock.Mock
}

func (m *MockProductService) List(ctx context.Context, filter string) ([]model.Product, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *MockProductService) Categories(ctx context.Context) ([]model.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Category), args.Error(1)
}

func (m *MockProductService) GetByID(ctx context.Context, id int) (*model.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, sess *model.Session, req model.LoginRequest) (*model.LoginResult, error) {
	args := m.Called(ctx, sess, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.LoginResult), args.Error(1)
}

func (m *MockAuthService) Register(ctx context.Context, req model.RegisterRequest) (*model.Result, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Result), args.Error(1)
}

func (m *MockAuthService) Logout(ctx context.Context, sess *model.Session) error {
	args := m.Called(ctx, sess)
	return args.Error(0)
}

func (m *MockAuthService) Profile(ctx context.Context, sess *model.Session) (*model.User, error) {
	args := m.Called(ctx, sess)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockAuthService) UpdateProfile(ctx context.Context, sess *model.Session, firstName, lastName string) (*model.User, error) {
	args := m.Called(ctx, sess, firstName, lastName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockAuthService) UpdatePassword(ctx context.Context, sess *model.Session, password string) (*model.Result, error) {
	args := m.Called(ctx, sess, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Result), args.Error(1)
}

func (m *MockAuthService) DeleteAccount(ctx context.Context, sess *model.Session) (*model.Result, error) {
	args := m.Called(ctx, sess)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Result), args.Error(1)
}

type MockCartService struct {
	mock.Mock
}

func (m *MockCartService) cartResult(args mock.Arguments) (*model.CartResult, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CartResult), args.Error(1)
}

func (m *MockCartService) Summary(ctx context.Context, sess *model.Session) (*model.CartSummary, error) {
	args := m.Called(ctx, sess)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CartSummary), args.Error(1)
}

func (m *MockCartService) Add(ctx context.Context, sess *model.Session, productID int) (*model.CartResult, error) {
	return m.cartResult(m.Called(ctx, sess, productID))
}

func (m *MockCartService) Remove(ctx context.Context, sess *model.Session, productID int) (*model.CartResult, error) {
	return m.cartResult(m.Called(ctx, sess, productID))
}

func (m *MockCartService) UpdateQuantity(ctx context.Context, sess *model.Session, productID, quantity int) (*model.CartResult, error) {
	return m.cartResult(m.Called(ctx, sess, productID, quantity))
}

func (m *MockCartService) Increment(ctx context.Context, sess *model.Session, productID int) (*model.CartResult, error) {
	return m.cartResult(m.Called(ctx, sess, productID))
}

func (m *MockCartService) Decrement(ctx context.Context, sess *model.Session, productID int) (*model.CartResult, error) {
	return m.cartResult(m.Called(ctx, sess, productID))
}

func (m *MockCartService) Checkout(ctx context.Context, sess *model.Session, card payment.Card) (*model.CartResult, error) {
	return m.cartResult(m.Called(ctx, sess, card))
}

type MockReviewService struct {
	mock.Mock
}

func (m *MockReviewService) reviews(args mock.Arguments) ([]model.Review, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Review), args.Error(1)
}

func (m *MockReviewService) review(args mock.Arguments) (*model.Review, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Review), args.Error(1)
}

func (m *MockReviewService) All(ctx context.Context) ([]model.Review, error) {
	return m.reviews(m.Called(ctx))
}

func (m *MockReviewService) ByProduct(ctx context.Context, productID int) ([]model.Review, error) {
	return m.reviews(m.Called(ctx, productID))
}

func (m *MockReviewService) Create(ctx context.Context, sess *model.Session, req model.ReviewRequest) (*model.Review, error) {
	return m.review(m.Called(ctx, sess, req))
}

func (m *MockReviewService) Update(ctx context.Context, sess *model.Session, reviewID int, req model.ReviewRequest) (*model.Review, error) {
	return m.review(m.Called(ctx, sess, reviewID, req))
}

func (m *MockReviewService) Delete(ctx context.Context, sess *model.Session, reviewID int) (*model.Review, error) {
	return m.review(m.Called(ctx, sess, reviewID))
}

func (m *MockReviewService) CreateReply(ctx context.Context, sess *model.Session, reviewID int, req model.ReplyRequest) (*model.Review, error) {
	return m.review(m.Called(ctx, sess, reviewID, req))
}

func (m *MockReviewService) UpdateReply(ctx context.Context, sess *model.Session, replyID int, req model.ReplyRequest) (*model.Review, error) {
	return m.review(m.Called(ctx, sess, replyID, req))
}

func (m *MockReviewService) DeleteReply(ctx context.Context, sess *model.Session, replyID int) (*model.Review, error) {
	return m.review(m.Called(ctx, sess, replyID))
}

type MockFollowService struct {
	mock.Mock
}

func (m *MockFollowService) Follow(ctx context.Context, sess *model.Session, userID int) (*model.Result, error) {
	args := m.Called(ctx, sess, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Result), args.Error(1)
}

func (m *MockFollowService) Unfollow(ctx context.Context, sess *model.Session, userID int) (*model.Result, error) {
	args := m.Called(ctx, sess, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Result), args.Error(1)
}

func (m *MockFollowService) IsFollowing(ctx context.Context, sess *model.Session, userID int) (bool, error) {
	args := m.Called(ctx, sess, userID)
	return args.Bool(0), args.Error(1)
}

type MockPlannerService struct {
	mock.Mock
}

func (m *MockPlannerService) SetProfile(ctx context.Context, sess *model.Session, p tdee.Profile) (int, error) {
	args := m.Called(ctx, sess, p)
	return args.Int(0), args.Error(1)
}

func (m *MockPlannerService) MealPlan(ctx context.Context, sess *model.Session, tf model.TimeFrame, diet string) (*model.MealPlan, error) {
	args := m.Called(ctx, sess, tf, diet)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MealPlan), args.Error(1)
}
