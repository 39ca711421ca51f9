package usecase_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"vidtube/domain/apperror"
	"vidtube/domain/dto"
	"vidtube/domain/model"
	"vidtube/usecase"
)

const testTweetHex = "65f1a2b3c4d5e6f7a8b9c0d6"

func TestCreateTweet(t *testing.T) {
	tweetRepo := new(MockTweetRepository)
	uc := usecase.NewTweetUsecase(tweetRepo, new(MockLikeRepository))

	owner, _ := bson.ObjectIDFromHex(testUserHex)
	tweetRepo.On("Create", mock.Anything, mock.MatchedBy(func(tw *model.Tweet) bool {
		return tw.Content == "hello" && tw.Owner == owner
	})).Return(&model.Tweet{Content: "hello"}, nil).Once()

	tweet, err := uc.Create(context.Background(), testUserHex, dto.TweetRequest{Content: "hello"})
	require.NoError(t, err)
	assert.Equal(t, "hello", tweet.Content)
	tweetRepo.AssertExpectations(t)
}

func TestUpdateTweetRejectsNonOwner(t *testing.T) {
	tweetRepo := new(MockTweetRepository)
	uc := usecase.NewTweetUsecase(tweetRepo, new(MockLikeRepository))

	tweetID, _ := bson.ObjectIDFromHex(testTweetHex)
	owner, _ := bson.ObjectIDFromHex(testUserHex)
	tweetRepo.On("GetByID", mock.Anything, tweetID).
		Return(&model.Tweet{ID: tweetID, Owner: owner}, nil).Once()

	_, err := uc.Update(context.Background(), otherUserHex, testTweetHex, dto.TweetRequest{Content: "edit"})
	require.Error(t, err)
	assert.Equal(t, http.StatusForbidden, apperror.StatusOf(err))
	tweetRepo.AssertNotCalled(t, "UpdateContent")
}

func TestDeleteTweetCascadesLikes(t *testing.T) {
	tweetRepo := new(MockTweetRepository)
	likeRepo := new(MockLikeRepository)
	uc := usecase.NewTweetUsecase(tweetRepo, likeRepo)

	tweetID, _ := bson.ObjectIDFromHex(testTweetHex)
	owner, _ := bson.ObjectIDFromHex(testUserHex)

	tweetRepo.On("GetByID", mock.Anything, tweetID).
		Return(&model.Tweet{ID: tweetID, Owner: owner}, nil).Once()
	likeRepo.On("DeleteAllForTarget", mock.Anything, model.LikeTargetTweet, tweetID).Return(nil).Once()
	tweetRepo.On("Delete", mock.Anything, tweetID).Return(nil).Once()

	err := uc.Delete(context.Background(), testUserHex, testTweetHex)
	require.NoError(t, err)

	tweetRepo.AssertExpectations(t)
	likeRepo.AssertExpectations(t)
}

func TestDeleteMissingTweetIs404(t *testing.T) {
	tweetRepo := new(MockTweetRepository)
	likeRepo := new(MockLikeRepository)
	uc := usecase.NewTweetUsecase(tweetRepo, likeRepo)

	tweetID, _ := bson.ObjectIDFromHex(testTweetHex)
	tweetRepo.On("GetByID", mock.Anything, tweetID).Return(nil, nil).Once()

	err := uc.Delete(context.Background(), testUserHex, testTweetHex)
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apperror.StatusOf(err))
	likeRepo.AssertNotCalled(t, "DeleteAllForTarget")
}
