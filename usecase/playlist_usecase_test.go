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

const testPlaylistHex = "65f1a2b3c4d5e6f7a8b9c0d5"

func newPlaylistUsecase() (usecase.IPlaylistUsecase, *MockPlaylistRepository, *MockVideoRepository) {
	playlistRepo := new(MockPlaylistRepository)
	videoRepo := new(MockVideoRepository)
	return usecase.NewPlaylistUsecase(playlistRepo, videoRepo), playlistRepo, videoRepo
}

func TestCreatePlaylistStartsEmpty(t *testing.T) {
	uc, playlistRepo, _ := newPlaylistUsecase()

	owner, _ := bson.ObjectIDFromHex(testUserHex)
	playlistRepo.On("Create", mock.Anything, mock.MatchedBy(func(p *model.Playlist) bool {
		return p.Name == "favs" && p.Owner == owner && p.Videos != nil && len(p.Videos) == 0
	})).Return(&model.Playlist{Name: "favs"}, nil).Once()

	playlist, err := uc.Create(context.Background(), testUserHex, dto.PlaylistRequest{Name: "favs"})
	require.NoError(t, err)
	assert.Equal(t, "favs", playlist.Name)
	playlistRepo.AssertExpectations(t)
}

func TestAddVideoRejectsNonOwner(t *testing.T) {
	uc, playlistRepo, videoRepo := newPlaylistUsecase()

	playlistID, _ := bson.ObjectIDFromHex(testPlaylistHex)
	owner, _ := bson.ObjectIDFromHex(testUserHex)
	playlistRepo.On("GetByID", mock.Anything, playlistID).
		Return(&model.Playlist{ID: playlistID, Owner: owner}, nil).Once()

	_, err := uc.AddVideo(context.Background(), otherUserHex, testPlaylistHex, testVideoHex)
	require.Error(t, err)
	assert.Equal(t, http.StatusForbidden, apperror.StatusOf(err))
	videoRepo.AssertNotCalled(t, "GetByID")
	playlistRepo.AssertNotCalled(t, "AddVideo")
}

func TestAddVideoMissingVideoIs404(t *testing.T) {
	uc, playlistRepo, videoRepo := newPlaylistUsecase()

	playlistID, _ := bson.ObjectIDFromHex(testPlaylistHex)
	videoID, _ := bson.ObjectIDFromHex(testVideoHex)
	owner, _ := bson.ObjectIDFromHex(testUserHex)

	playlistRepo.On("GetByID", mock.Anything, playlistID).
		Return(&model.Playlist{ID: playlistID, Owner: owner}, nil).Once()
	videoRepo.On("GetByID", mock.Anything, videoID).Return(nil, nil).Once()

	_, err := uc.AddVideo(context.Background(), testUserHex, testPlaylistHex, testVideoHex)
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apperror.StatusOf(err))
	playlistRepo.AssertNotCalled(t, "AddVideo")
}

func TestAddVideoDelegatesToSetSemantics(t *testing.T) {
	uc, playlistRepo, videoRepo := newPlaylistUsecase()

	playlistID, _ := bson.ObjectIDFromHex(testPlaylistHex)
	videoID, _ := bson.ObjectIDFromHex(testVideoHex)
	owner, _ := bson.ObjectIDFromHex(testUserHex)

	playlistRepo.On("GetByID", mock.Anything, playlistID).
		Return(&model.Playlist{ID: playlistID, Owner: owner}, nil).Once()
	videoRepo.On("GetByID", mock.Anything, videoID).Return(&model.Video{ID: videoID}, nil).Once()
	playlistRepo.On("AddVideo", mock.Anything, playlistID, videoID).
		Return(&model.Playlist{ID: playlistID, Videos: []bson.ObjectID{videoID}}, nil).Once()

	playlist, err := uc.AddVideo(context.Background(), testUserHex, testPlaylistHex, testVideoHex)
	require.NoError(t, err)
	assert.Len(t, playlist.Videos, 1)
	playlistRepo.AssertExpectations(t)
}

func TestUpdatePlaylistRequiresSomeField(t *testing.T) {
	uc, playlistRepo, _ := newPlaylistUsecase()

	playlistID, _ := bson.ObjectIDFromHex(testPlaylistHex)
	owner, _ := bson.ObjectIDFromHex(testUserHex)
	playlistRepo.On("GetByID", mock.Anything, playlistID).
		Return(&model.Playlist{ID: playlistID, Owner: owner}, nil).Once()

	_, err := uc.Update(context.Background(), testUserHex, testPlaylistHex, dto.PlaylistUpdateRequest{})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apperror.StatusOf(err))
	playlistRepo.AssertNotCalled(t, "UpdateFields")
}
