package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"storefront/internal/cart"
	"storefront/internal/model"
	"storefront/internal/session"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type authFixture struct {
	users    *MockUserRepository
	carts    *MockCartRepository
	store    *session.MemoryStore
	registry *cart.Registry
	service  AuthService
}

func newAuthFixture() *authFixture {
	f := &authFixture{
		users: new(MockUserRepository),
		carts: new(MockCartRepository),
		store: session.NewMemoryStore(time.Hour),
	}
	f.registry = cart.NewRegistry(f.carts, zerolog.Nop())
	f.service = NewAuthService(f.users, f.store, f.registry, zerolog.Nop())
	return f
}

func TestAuthService_Login_Success(t *testing.T) {
	ctx := context.Background()
	f := newAuthFixture()
	sess := session.New()

	req := model.LoginRequest{Email: "ana@example.com", Password: "pw"}
	f.users.On("Login", ctx, req).Return(&model.LoginResult{
		Result: model.Result{Success: true, Message: "Login successful"},
		User:   &model.User{ID: 5, FirstName: "Ana"},
		CartID: 9,
	}, nil)
	f.carts.On("Get", ctx, 9).Return([]model.CartDetail{{ProductID: 1, Quantity: 2}}, nil)

	result, err := f.service.Login(ctx, sess, model.LoginRequest{Email: " ana@example.com ", Password: "pw"})

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, 5, sess.UserID)
	assert.Equal(t, 9, sess.CartID)

	stored, err := f.store.Get(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, 9, stored.CartID)
	assert.Equal(t, 1, f.registry.Len())
	f.users.AssertExpectations(t)
	f.carts.AssertExpectations(t)
}

func TestAuthService_Login_CartWarmFailureIsNotFatal(t *testing.T) {
	ctx := context.Background()
	f := newAuthFixture()
	sess := session.New()

	f.users.On("Login", ctx, model.LoginRequest{Email: "a@b.c", Password: "pw"}).Return(&model.LoginResult{
		Result: model.Result{Success: true},
		User:   &model.User{ID: 5},
		CartID: 9,
	}, nil)
	f.carts.On("Get", ctx, 9).Return(nil, model.ErrServerUnavailable)

	result, err := f.service.Login(ctx, sess, model.LoginRequest{Email: "a@b.c", Password: "pw"})

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.True(t, sess.LoggedIn())
	assert.Equal(t, 0, f.registry.Len())
}

func TestAuthService_Login_Rejected(t *testing.T) {
	ctx := context.Background()
	f := newAuthFixture()
	sess := session.New()

	req := model.LoginRequest{Email: "a@b.c", Password: "wrong"}
	f.users.On("Login", ctx, req).Return(&model.LoginResult{
		Result: model.Result{Success: false, Message: "Invalid email or password"},
	}, nil)

	result, err := f.service.Login(ctx, sess, req)

	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, "Invalid email or password", result.Message)
	assert.False(t, sess.LoggedIn())

	_, err = f.store.Get(ctx, sess.ID)
	assert.ErrorIs(t, err, session.ErrNotFound)
}

func TestAuthService_Login_Validation(t *testing.T) {
	f := newAuthFixture()

	_, err := f.service.Login(context.Background(), session.New(), model.LoginRequest{Email: "  ", Password: "pw"})

	var domainErr *model.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, model.ErrCodeMissingField, domainErr.Code)
	f.users.AssertNumberOfCalls(t, "Login", 0)
}

func TestAuthService_Logout(t *testing.T) {
	ctx := context.Background()
	f := newAuthFixture()
	sess := loggedIn(5, 9)
	require.NoError(t, f.store.Save(ctx, sess))

	f.carts.On("Get", ctx, 9).Return([]model.CartDetail{{ProductID: 1, Quantity: 1}}, nil)
	m, err := f.registry.Get(ctx, 9)
	require.NoError(t, err)

	require.NoError(t, f.service.Logout(ctx, sess))

	assert.Equal(t, 0, m.NotificationCount())
	assert.Equal(t, 0, f.registry.Len())
	assert.False(t, sess.LoggedIn())
	_, err = f.store.Get(ctx, sess.ID)
	assert.ErrorIs(t, err, session.ErrNotFound)
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()
	f := newAuthFixture()

	req := model.RegisterRequest{Email: "a@b.c", FirstName: "A", LastName: "B", Password: "pw"}
	f.users.On("Register", ctx, req).Return(&model.Result{Success: true}, nil)

	result, err := f.service.Register(ctx, req)
	require.NoError(t, err)
	assert.True(t, result.Success)

	_, err = f.service.Register(ctx, model.RegisterRequest{Email: "a@b.c", Password: "pw"})
	assert.Error(t, err)
	f.users.AssertNumberOfCalls(t, "Register", 1)
}

func TestAuthService_ProfileRequiresLogin(t *testing.T) {
	f := newAuthFixture()
	ctx := context.Background()
	anon := session.New()

	_, err := f.service.Profile(ctx, anon)
	assert.ErrorIs(t, err, model.ErrNotLoggedIn)
	_, err = f.service.UpdateProfile(ctx, anon, "A", "B")
	assert.ErrorIs(t, err, model.ErrNotLoggedIn)
	_, err = f.service.UpdatePassword(ctx, anon, "pw")
	assert.ErrorIs(t, err, model.ErrNotLoggedIn)
	_, err = f.service.DeleteAccount(ctx, anon)
	assert.ErrorIs(t, err, model.ErrNotLoggedIn)
}

func TestAuthService_UpdateProfile(t *testing.T) {
	ctx := context.Background()
	f := newAuthFixture()
	sess := loggedIn(5, 9)

	f.users.On("UpdateProfile", ctx, model.ProfileUpdate{UserID: 5, FirstName: "Ana", LastName: "Lee"}).
		Return(&model.User{ID: 5, FirstName: "Ana", LastName: "Lee"}, nil)

	user, err := f.service.UpdateProfile(ctx, sess, " Ana ", "Lee")
	require.NoError(t, err)
	assert.Equal(t, "Ana Lee", user.FullName())

	_, err = f.service.UpdateProfile(ctx, sess, "", "Lee")
	assert.Error(t, err)
}

func TestAuthService_UpdatePassword(t *testing.T) {
	ctx := context.Background()
	f := newAuthFixture()
	sess := loggedIn(5, 9)

	f.users.On("UpdatePassword", ctx, model.PasswordUpdate{UserID: 5, Password: "n3w"}).
		Return(&model.Result{Success: true}, nil)

	result, err := f.service.UpdatePassword(ctx, sess, "n3w")
	require.NoError(t, err)
	assert.True(t, result.Success)

	_, err = f.service.UpdatePassword(ctx, sess, "")
	assert.Error(t, err)
}

func TestAuthService_DeleteAccount(t *testing.T) {
	ctx := context.Background()

	t.Run("Success logs out", func(t *testing.T) {
		f := newAuthFixture()
		sess := loggedIn(5, 9)
		require.NoError(t, f.store.Save(ctx, sess))
		f.users.On("Delete", ctx, 5).Return(&model.Result{Success: true}, nil)

		result, err := f.service.DeleteAccount(ctx, sess)

		require.NoError(t, err)
		assert.True(t, result.Success)
		assert.False(t, sess.LoggedIn())
		_, err = f.store.Get(ctx, sess.ID)
		assert.ErrorIs(t, err, session.ErrNotFound)
	})

	t.Run("Refused keeps session", func(t *testing.T) {
		f := newAuthFixture()
		sess := loggedIn(5, 9)
		f.users.On("Delete", ctx, 5).Return(&model.Result{Success: false, Message: "nope"}, nil)

		result, err := f.service.DeleteAccount(ctx, sess)

		require.NoError(t, err)
		assert.False(t, result.Success)
		assert.True(t, sess.LoggedIn())
	})
}
