package handler

import (
	"net/http"
	"testing"

	"storefront/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestFollowHandler(t *testing.T) {
	sess := shopper()
	svc := new(MockFollowService)
	svc.On("Follow", mock.Anything, sess, 8).Return(&model.Result{Success: true, Message: "Followed"}, nil)
	svc.On("Unfollow", mock.Anything, sess, 8).Return(&model.Result{Success: true, Message: "Unfollowed"}, nil)
	svc.On("IsFollowing", mock.Anything, sess, 8).Return(true, nil)
	h := NewFollowHandler(svc, zerolog.Nop())

	rec := serve("POST /api/follows/{userID}", h.Follow, newRequest(http.MethodPost, "/api/follows/8", "", sess))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"message":"Followed"}`, rec.Body.String())

	rec = serve("GET /api/follows/{userID}", h.IsFollowing, newRequest(http.MethodGet, "/api/follows/8", "", sess))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"user_id":8,"isFollowing":true}`, rec.Body.String())

	rec = serve("DELETE /api/follows/{userID}", h.Unfollow, newRequest(http.MethodDelete, "/api/follows/8", "", sess))
	assert.Equal(t, http.StatusOK, rec.Code)

	svc.AssertExpectations(t)
}

func TestFollowHandler_Errors(t *testing.T) {
	svc := new(MockFollowService)
	svc.On("Follow", mock.Anything, mock.Anything, 8).Return(nil, model.ErrNotLoggedIn)
	h := NewFollowHandler(svc, zerolog.Nop())

	rec := serve("POST /api/follows/{userID}", h.Follow, newRequest(http.MethodPost, "/api/follows/8", "", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = serve("POST /api/follows/{userID}", h.Follow, newRequest(http.MethodPost, "/api/follows/me", "", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
