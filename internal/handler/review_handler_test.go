package handler

import (
	"net/http"
	"testing"

	"storefront/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestReviewHandler_ByProduct(t *testing.T) {
	svc := new(MockReviewService)
	svc.On("ByProduct", mock.Anything, 3).Return([]model.Review{{ID: 1, ProductID: 3, Title: "Crisp", Description: "Fresh", Stars: 5}}, nil)
	h := NewReviewHandler(svc, zerolog.Nop())

	rec := serve("GET /api/products/{id}/reviews", h.ByProduct, newRequest(http.MethodGet, "/api/products/3/reviews", "", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"title":"Crisp"`)
	svc.AssertExpectations(t)
}

func TestReviewHandler_All(t *testing.T) {
	svc := new(MockReviewService)
	svc.On("All", mock.Anything).Return([]model.Review{}, nil)
	h := NewReviewHandler(svc, zerolog.Nop())

	rec := serve("GET /api/reviews", h.All, newRequest(http.MethodGet, "/api/reviews", "", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestReviewHandler_Create(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		mockReturn     *model.Review
		mockError      error
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:           "Created",
			body:           `{"title":"Crisp","description":"Fresh apples","stars":5}`,
			mockReturn:     &model.Review{ID: 9, ProductID: 3, Title: "Crisp"},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "Empty title",
			body:           `{"title":" ","description":"Fresh apples","stars":5}`,
			mockError:      model.NewDomainError(model.ErrCodeInvalidReview, "A title cannot be empty."),
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "A title cannot be empty.",
		},
		{
			name:           "Anonymous",
			body:           `{"title":"Crisp","description":"Fresh apples","stars":5}`,
			mockError:      model.ErrNotLoggedIn,
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sess := shopper()
			svc := new(MockReviewService)
			svc.On("Create", mock.Anything, sess, mock.MatchedBy(func(req model.ReviewRequest) bool {
				return req.ProductID == 3
			})).Return(tt.mockReturn, tt.mockError)
			h := NewReviewHandler(svc, zerolog.Nop())

			rec := serve("POST /api/products/{id}/reviews", h.Create, newRequest(http.MethodPost, "/api/products/3/reviews", tt.body, sess))

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedMsg != "" {
				assert.Equal(t, tt.expectedMsg, decodeFailure(t, rec).Message)
			}
			svc.AssertExpectations(t)
		})
	}
}

func TestReviewHandler_OwnershipPassthrough(t *testing.T) {
	sess := shopper()
	svc := new(MockReviewService)
	svc.On("Update", mock.Anything, sess, 9, mock.Anything).Return(nil, &model.APIError{Status: http.StatusForbidden, Message: "Not your review"})
	svc.On("Delete", mock.Anything, sess, 10).Return(nil, &model.APIError{Status: http.StatusNotFound, Message: "Review not found"})
	h := NewReviewHandler(svc, zerolog.Nop())

	rec := serve("PUT /api/reviews/{id}", h.Update, newRequest(http.MethodPut, "/api/reviews/9", `{"title":"t","description":"d","stars":3}`, sess))
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "Not your review", decodeFailure(t, rec).Message)

	rec = serve("DELETE /api/reviews/{id}", h.Delete, newRequest(http.MethodDelete, "/api/reviews/10", "", sess))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Review not found", decodeFailure(t, rec).Message)
}

func TestReviewHandler_Replies(t *testing.T) {
	sess := shopper()
	parent := 9
	reply := &model.Review{ID: 20, ParentID: &parent, Description: "Agreed"}

	svc := new(MockReviewService)
	svc.On("CreateReply", mock.Anything, sess, 9, model.ReplyRequest{Description: "Agreed", ProductID: 3}).Return(reply, nil)
	svc.On("UpdateReply", mock.Anything, sess, 20, model.ReplyRequest{Description: "Strongly agreed"}).Return(reply, nil)
	svc.On("DeleteReply", mock.Anything, sess, 20).Return(reply, nil)
	h := NewReviewHandler(svc, zerolog.Nop())

	rec := serve("POST /api/reviews/{id}/replies", h.CreateReply, newRequest(http.MethodPost, "/api/reviews/9/replies", `{"description":"Agreed","product_id":3}`, sess))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"parent_id":9`)

	rec = serve("PUT /api/replies/{id}", h.UpdateReply, newRequest(http.MethodPut, "/api/replies/20", `{"description":"Strongly agreed"}`, sess))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve("DELETE /api/replies/{id}", h.DeleteReply, newRequest(http.MethodDelete, "/api/replies/20", "", sess))
	assert.Equal(t, http.StatusOK, rec.Code)

	svc.AssertExpectations(t)
}
