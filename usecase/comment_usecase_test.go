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

const testCommentHex = "65f1a2b3c4d5e6f7a8b9c0d4"

func newCommentUsecase() (usecase.ICommentUsecase, *MockCommentRepository, *MockVideoRepository, *MockLikeRepository) {
	commentRepo := new(MockCommentRepository)
	videoRepo := new(MockVideoRepository)
	likeRepo := new(MockLikeRepository)
	return usecase.NewCommentUsecase(commentRepo, videoRepo, likeRepo), commentRepo, videoRepo, likeRepo
}

func TestAddCommentToMissingVideoIs404(t *testing.T) {
	uc, commentRepo, videoRepo, _ := newCommentUsecase()

	videoID, _ := bson.ObjectIDFromHex(testVideoHex)
	videoRepo.On("GetByID", mock.Anything, videoID).Return(nil, nil).Once()

	_, err := uc.Add(context.Background(), testUserHex, testVideoHex, dto.CommentRequest{Content: "nice"})
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apperror.StatusOf(err))
	commentRepo.AssertNotCalled(t, "Create")
}

func TestAddComment(t *testing.T) {
	uc, commentRepo, videoRepo, _ := newCommentUsecase()

	videoID, _ := bson.ObjectIDFromHex(testVideoHex)
	owner, _ := bson.ObjectIDFromHex(testUserHex)

	videoRepo.On("GetByID", mock.Anything, videoID).Return(&model.Video{ID: videoID}, nil).Once()
	commentRepo.On("Create", mock.Anything, mock.MatchedBy(func(c *model.Comment) bool {
		return c.Content == "nice" && c.Video == videoID && c.Owner == owner
	})).Return(&model.Comment{Content: "nice"}, nil).Once()

	comment, err := uc.Add(context.Background(), testUserHex, testVideoHex, dto.CommentRequest{Content: "nice"})
	require.NoError(t, err)
	assert.Equal(t, "nice", comment.Content)
	commentRepo.AssertExpectations(t)
}

func TestUpdateCommentRejectsNonOwner(t *testing.T) {
	uc, commentRepo, _, _ := newCommentUsecase()

	commentID, _ := bson.ObjectIDFromHex(testCommentHex)
	owner, _ := bson.ObjectIDFromHex(testUserHex)
	commentRepo.On("GetByID", mock.Anything, commentID).
		Return(&model.Comment{ID: commentID, Owner: owner}, nil).Once()

	_, err := uc.Update(context.Background(), otherUserHex, testCommentHex, dto.CommentRequest{Content: "edit"})
	require.Error(t, err)
	assert.Equal(t, http.StatusForbidden, apperror.StatusOf(err))
	commentRepo.AssertNotCalled(t, "UpdateContent")
}

func TestDeleteCommentCascadesLikes(t *testing.T) {
	uc, commentRepo, _, likeRepo := newCommentUsecase()

	commentID, _ := bson.ObjectIDFromHex(testCommentHex)
	owner, _ := bson.ObjectIDFromHex(testUserHex)

	commentRepo.On("GetByID", mock.Anything, commentID).
		Return(&model.Comment{ID: commentID, Owner: owner}, nil).Once()
	likeRepo.On("DeleteAllForTarget", mock.Anything, model.LikeTargetComment, commentID).Return(nil).Once()
	commentRepo.On("Delete", mock.Anything, commentID).Return(nil).Once()

	err := uc.Delete(context.Background(), testUserHex, testCommentHex)
	require.NoError(t, err)

	commentRepo.AssertExpectations(t)
	likeRepo.AssertExpectations(t)
}

func TestListForVideoNormalizesThroughRepository(t *testing.T) {
	uc, commentRepo, videoRepo, _ := newCommentUsecase()

	videoID, _ := bson.ObjectIDFromHex(testVideoHex)
	videoRepo.On("GetByID", mock.Anything, videoID).Return(&model.Video{ID: videoID}, nil).Once()
	commentRepo.On("ListByVideo", mock.Anything, videoID, 2, 5).
		Return(dto.NewPage[model.CommentWithMeta](nil, 0, 2, 5), nil).Once()

	page, err := uc.ListForVideo(context.Background(), testVideoHex, dto.PageRequest{Page: 2, Limit: 5})
	require.NoError(t, err)
	assert.Equal(t, 2, page.CurrentPage)
}
