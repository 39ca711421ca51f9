package http_test

import (
	"context"
	nethttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"vidtube/domain/dto"
	"vidtube/domain/model"
	httpHandler "vidtube/interfaces/http"
)

type MockTweetUsecase struct {
	mock.Mock
}

func (m *MockTweetUsecase) Create(ctx context.Context, userID string, req dto.TweetRequest) (*model.Tweet, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Tweet), args.Error(1)
}

func (m *MockTweetUsecase) ListByUser(ctx context.Context, userID string) ([]model.TweetWithMeta, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.TweetWithMeta), args.Error(1)
}

func (m *MockTweetUsecase) Update(ctx context.Context, userID, tweetID string, req dto.TweetRequest) (*model.Tweet, error) {
	args := m.Called(ctx, userID, tweetID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Tweet), args.Error(1)
}

func (m *MockTweetUsecase) Delete(ctx context.Context, userID, tweetID string) error {
	args := m.Called(ctx, userID, tweetID)
	return args.Error(0)
}

func tweetRouter(tweetUsecase *MockTweetUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := httpHandler.NewTweetHandler(tweetUsecase)

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("user_id", "65f1a2b3c4d5e6f7a8b9c0d1")
	})
	router.POST("/tweets", handler.Create)
	return router
}

func TestCreateTweetMissingContentIs400(t *testing.T) {
	tweetUsecase := new(MockTweetUsecase)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(nethttp.MethodPost, "/tweets", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	tweetRouter(tweetUsecase).ServeHTTP(rec, req)

	assert.Equal(t, nethttp.StatusBadRequest, rec.Code)
	tweetUsecase.AssertNotCalled(t, "Create")
}

func TestCreateTweetReturns201(t *testing.T) {
	tweetUsecase := new(MockTweetUsecase)
	tweetUsecase.On("Create", mock.Anything, "65f1a2b3c4d5e6f7a8b9c0d1", dto.TweetRequest{Content: "hello"}).
		Return(&model.Tweet{Content: "hello"}, nil).Once()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(nethttp.MethodPost, "/tweets", strings.NewReader(`{"content":"hello"}`))
	req.Header.Set("Content-Type", "application/json")
	tweetRouter(tweetUsecase).ServeHTTP(rec, req)

	require.Equal(t, nethttp.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "hello")
}
