package service

import (
	"context"

	"storefront/internal/model"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Login(ctx context.Context, req model.LoginRequest) (*model.LoginResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.LoginResult), args.Error(1)
}

func (m *MockUserRepository) Register(ctx context.Context, req model.RegisterRequest) (*model.Result, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Result), args.Error(1)
}

func (m *MockUserRepository) Profile(ctx context.Context, userID int) (*model.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) UpdateProfile(ctx context.Context, req model.ProfileUpdate) (*model.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) UpdatePassword(ctx context.Context, req model.PasswordUpdate) (*model.Result, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Result), args.Error(1)
}

func (m *MockUserRepository) Delete(ctx context.Context, userID int) (*model.Result, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Result), args.Error(1)
}

// MockProductRepository is a mock implementation of ProductRepository.
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) All(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *MockProductRepository) Categories(ctx context.Context) ([]model.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Category), args.Error(1)
}

func (m *MockProductRepository) ByID(ctx context.Context, id int) (*model.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

// MockCartRepository is a mock implementation of CartRepository.
type MockCartRepository struct {
	mock.Mock
}

func (m *MockCartRepository) Get(ctx context.Context, cartID int) ([]model.CartDetail, error) {
	args := m.Called(ctx, cartID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.CartDetail), args.Error(1)
}

func (m *MockCartRepository) Add(ctx context.Context, cartID, productID, quantity int) (*model.CartResult, error) {
	return m.result(m.Called(ctx, cartID, productID, quantity))
}

func (m *MockCartRepository) Update(ctx context.Context, cartID, productID, quantity int) (*model.CartResult, error) {
	return m.result(m.Called(ctx, cartID, productID, quantity))
}

func (m *MockCartRepository) Remove(ctx context.Context, cartID, productID int) (*model.CartResult, error) {
	return m.result(m.Called(ctx, cartID, productID))
}

func (m *MockCartRepository) Submit(ctx context.Context, cartID int) (*model.CartResult, error) {
	return m.result(m.Called(ctx, cartID))
}

func (m *MockCartRepository) result(args mock.Arguments) (*model.CartResult, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CartResult), args.Error(1)
}

// MockReviewRepository is a mock implementation of ReviewRepository.
type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) All(ctx context.Context) ([]model.Review, error) {
	return m.list(m.Called(ctx))
}

func (m *MockReviewRepository) ByProduct(ctx context.Context, productID int) ([]model.Review, error) {
	return m.list(m.Called(ctx, productID))
}

func (m *MockReviewRepository) Create(ctx context.Context, req model.ReviewRequest) (*model.Review, error) {
	return m.one(m.Called(ctx, req))
}

func (m *MockReviewRepository) Update(ctx context.Context, reviewID int, req model.ReviewRequest) (*model.Review, error) {
	return m.one(m.Called(ctx, reviewID, req))
}

func (m *MockReviewRepository) Delete(ctx context.Context, reviewID, userID int) (*model.Review, error) {
	return m.one(m.Called(ctx, reviewID, userID))
}

func (m *MockReviewRepository) CreateReply(ctx context.Context, req model.ReplyRequest) (*model.Review, error) {
	return m.one(m.Called(ctx, req))
}

func (m *MockReviewRepository) UpdateReply(ctx context.Context, replyID int, req model.ReplyRequest) (*model.Review, error) {
	return m.one(m.Called(ctx, replyID, req))
}

func (m *MockReviewRepository) DeleteReply(ctx context.Context, replyID, userID int) (*model.Review, error) {
	return m.one(m.Called(ctx, replyID, userID))
}

func (m *MockReviewRepository) list(args mock.Arguments) ([]model.Review, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Review), args.Error(1)
}

func (m *MockReviewRepository) one(args mock.Arguments) (*model.Review, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Review), args.Error(1)
}

// MockFollowRepository is a mock implementation of FollowRepository.
type MockFollowRepository struct {
	mock.Mock
}

func (m *MockFollowRepository) Follow(ctx context.Context, followerID, followingID int) (*model.Result, error) {
	args := m.Called(ctx, followerID, followingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Result), args.Error(1)
}

func (m *MockFollowRepository) Unfollow(ctx context.Context, followerID, followingID int) (*model.Result, error) {
	args := m.Called(ctx, followerID, followingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Result), args.Error(1)
}

func (m *MockFollowRepository) IsFollowing(ctx context.Context, followerID, followingID int) (bool, error) {
	args := m.Called(ctx, followerID, followingID)
	return args.Bool(0), args.Error(1)
}

// MockMealPlanner is a mock implementation of MealPlanner.
type MockMealPlanner struct {
	mock.Mock
}

func (m *MockMealPlanner) Plan(ctx context.Context, targetCalories int, tf model.TimeFrame, diet string) (*model.MealPlan, error) {
	args := m.Called(ctx, targetCalories, tf, diet)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MealPlan), args.Error(1)
}

func loggedIn(userID, cartID int) *model.Session {
	return &model.Session{ID: "7b0e6f6a-3f4c-4d7e-9f55-1a2b3c4d5e6f", UserID: userID, CartID: cartID}
}
