package repository

import (
	"context"

	"vidtube/domain/model"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type IPlaylist interface {
	Create(ctx context.Context, playlist *model.Playlist) (*model.Playlist, error)
	GetByID(ctx context.Context, id bson.ObjectID) (*model.Playlist, error)
	ListByUser(ctx context.Context, ownerID bson.ObjectID) ([]model.PlaylistWithVideos, error)
	GetEnriched(ctx context.Context, id bson.ObjectID) (*model.PlaylistWithVideos, error)
	// AddVideo uses set semantics: adding a video already present is a no-op.
	AddVideo(ctx context.Context, playlistID, videoID bson.ObjectID) (*model.Playlist, error)
	RemoveVideo(ctx context.Context, playlistID, videoID bson.ObjectID) (*model.Playlist, error)
	UpdateFields(ctx context.Context, id bson.ObjectID, fields bson.D) (*model.Playlist, error)
	Delete(ctx context.Context, id bson.ObjectID) error
}
