package usecase

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"vidtube/domain/apperror"
	"vidtube/domain/dto"
	"vidtube/domain/model"
	"vidtube/domain/repository"
	"vidtube/infrastructure/utils"
)

type IPlaylistUsecase interface {
	Create(ctx context.Context, userID string, req dto.PlaylistRequest) (*model.Playlist, error)
	ListByUser(ctx context.Context, userID string) ([]model.PlaylistWithVideos, error)
	Get(ctx context.Context, playlistID string) (*model.PlaylistWithVideos, error)
	AddVideo(ctx context.Context, userID, playlistID, videoID string) (*model.Playlist, error)
	RemoveVideo(ctx context.Context, userID, playlistID, videoID string) (*model.Playlist, error)
	Update(ctx context.Context, userID, playlistID string, req dto.PlaylistUpdateRequest) (*model.Playlist, error)
	Delete(ctx context.Context, userID, playlistID string) error
}

type playlistUsecase struct {
	playlistRepository repository.IPlaylist
	videoRepository    repository.IVideo
}

func NewPlaylistUsecase(playlistRepository repository.IPlaylist, videoRepository repository.IVideo) IPlaylistUsecase {
	return &playlistUsecase{playlistRepository: playlistRepository, videoRepository: videoRepository}
}

func (u *playlistUsecase) Create(ctx context.Context, userID string, req dto.PlaylistRequest) (*model.Playlist, error) {
	owner, err := utils.ParseObjectID(userID, "user id")
	if err != nil {
		return nil, err
	}
	now := utils.GetCurrentTime()
	playlist := &model.Playlist{
		Name:        req.Name,
		Description: req.Description,
		Owner:       owner,
		Videos:      []bson.ObjectID{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	return u.playlistRepository.Create(ctx, playlist)
}

func (u *playlistUsecase) ListByUser(ctx context.Context, userID string) ([]model.PlaylistWithVideos, error) {
	owner, err := utils.ParseObjectID(userID, "user id")
	if err != nil {
		return nil, err
	}
	return u.playlistRepository.ListByUser(ctx, owner)
}

func (u *playlistUsecase) Get(ctx context.Context, playlistID string) (*model.PlaylistWithVideos, error) {
	id, err := utils.ParseObjectID(playlistID, "playlist id")
	if err != nil {
		return nil, err
	}
	playlist, err := u.playlistRepository.GetEnriched(ctx, id)
	if err != nil {
		return nil, err
	}
	if playlist == nil {
		return nil, apperror.NotFound("Playlist not found")
	}
	return playlist, nil
}

// AddVideo appends the video unless it is already present; re-adding is a
// no-op, not an error.
func (u *playlistUsecase) AddVideo(ctx context.Context, userID, playlistID, videoID string) (*model.Playlist, error) {
	playlist, videoObjID, err := u.ownedPlaylistAndVideo(ctx, userID, playlistID, videoID)
	if err != nil {
		return nil, err
	}
	updated, err := u.playlistRepository.AddVideo(ctx, playlist.ID, videoObjID)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, apperror.NotFound("Playlist not found")
	}
	return updated, nil
}

func (u *playlistUsecase) RemoveVideo(ctx context.Context, userID, playlistID, videoID string) (*model.Playlist, error) {
	playlist, videoObjID, err := u.ownedPlaylistAndVideo(ctx, userID, playlistID, videoID)
	if err != nil {
		return nil, err
	}
	updated, err := u.playlistRepository.RemoveVideo(ctx, playlist.ID, videoObjID)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, apperror.NotFound("Playlist not found")
	}
	return updated, nil
}

func (u *playlistUsecase) Update(ctx context.Context, userID, playlistID string, req dto.PlaylistUpdateRequest) (*model.Playlist, error) {
	playlist, err := u.ownedPlaylist(ctx, userID, playlistID)
	if err != nil {
		return nil, err
	}
	if req.Name == "" && req.Description == "" {
		return nil, apperror.Validation("Nothing to update")
	}

	fields := bson.D{{Key: "updatedAt", Value: utils.GetCurrentTime()}}
	if req.Name != "" {
		fields = append(fields, bson.E{Key: "name", Value: req.Name})
	}
	if req.Description != "" {
		fields = append(fields, bson.E{Key: "description", Value: req.Description})
	}

	updated, err := u.playlistRepository.UpdateFields(ctx, playlist.ID, fields)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, apperror.NotFound("Playlist not found")
	}
	return updated, nil
}

func (u *playlistUsecase) Delete(ctx context.Context, userID, playlistID string) error {
	playlist, err := u.ownedPlaylist(ctx, userID, playlistID)
	if err != nil {
		return err
	}
	return u.playlistRepository.Delete(ctx, playlist.ID)
}

func (u *playlistUsecase) ownedPlaylist(ctx context.Context, userID, playlistID string) (*model.Playlist, error) {
	id, err := utils.ParseObjectID(playlistID, "playlist id")
	if err != nil {
		return nil, err
	}
	actor, err := utils.ParseObjectID(userID, "user id")
	if err != nil {
		return nil, err
	}

	playlist, err := u.playlistRepository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if playlist == nil {
		return nil, apperror.NotFound("Playlist not found")
	}
	if playlist.Owner != actor {
		return nil, apperror.Forbidden("You are not allowed to modify this playlist")
	}
	return playlist, nil
}

func (u *playlistUsecase) ownedPlaylistAndVideo(ctx context.Context, userID, playlistID, videoID string) (*model.Playlist, bson.ObjectID, error) {
	playlist, err := u.ownedPlaylist(ctx, userID, playlistID)
	if err != nil {
		return nil, bson.ObjectID{}, err
	}
	id, err := utils.ParseObjectID(videoID, "video id")
	if err != nil {
		return nil, bson.ObjectID{}, err
	}
	video, err := u.videoRepository.GetByID(ctx, id)
	if err != nil {
		return nil, bson.ObjectID{}, err
	}
	if video == nil {
		return nil, bson.ObjectID{}, apperror.NotFound("Video not found")
	}
	return playlist, id, nil
}
