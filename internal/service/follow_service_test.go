package service

import (
	"context"
	"testing"

	"storefront/internal/model"
	"storefront/internal/session"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestFollowService(t *testing.T) {
	ctx := context.Background()
	repo := new(MockFollowRepository)
	service := NewFollowService(repo, zerolog.Nop())
	sess := loggedIn(5, 9)

	repo.On("Follow", ctx, 5, 8).Return(&model.Result{Success: true}, nil)
	repo.On("Unfollow", ctx, 5, 8).Return(&model.Result{Success: true}, nil)
	repo.On("IsFollowing", ctx, 5, 8).Return(true, nil)

	result, err := service.Follow(ctx, sess, 8)
	require.NoError(t, err)
	assert.True(t, result.Success)

	following, err := service.IsFollowing(ctx, sess, 8)
	require.NoError(t, err)
	assert.True(t, following)

	result, err = service.Unfollow(ctx, sess, 8)
	require.NoError(t, err)
	assert.True(t, result.Success)

	repo.AssertExpectations(t)
}

func TestFollowService_Guards(t *testing.T) {
	ctx := context.Background()
	repo := new(MockFollowRepository)
	service := NewFollowService(repo, zerolog.Nop())

	_, err := service.Follow(ctx, session.New(), 8)
	assert.ErrorIs(t, err, model.ErrNotLoggedIn)

	_, err = service.Follow(ctx, loggedIn(5, 9), 5)
	assert.ErrorIs(t, err, errFollowSelf)

	_, err = service.Unfollow(ctx, loggedIn(5, 9), 0)
	assert.Error(t, err)

	following, err := service.IsFollowing(ctx, session.New(), 8)
	require.NoError(t, err)
	assert.False(t, following)

	repo.AssertNotCalled(t, "Follow", mock.Anything, mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "IsFollowing", mock.Anything, mock.Anything, mock.Anything)
}
