package persistence

import (
	"context"
	"errors"

	"vidtube/domain/model"
	"vidtube/domain/repository"
	"vidtube/infrastructure/logger"
	"vidtube/infrastructure/pipeline"
	"vidtube/infrastructure/utils"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type PlaylistRepository struct {
	coll *mongo.Collection
}

func NewPlaylistRepository(db *mongo.Database) repository.IPlaylist {
	return &PlaylistRepository{coll: db.Collection(CollPlaylists)}
}

// playlistEnrichment joins the referenced videos and derives the totals.
func playlistEnrichment() []pipeline.Stage {
	return []pipeline.Stage{
		pipeline.Lookup(CollVideos, "videos", "_id", "playlistVideos"),
		pipeline.AddFields(bson.D{
			{Key: "totalViews", Value: pipeline.Sum("$playlistVideos.views")},
			{Key: "totalVideos", Value: pipeline.Size("$playlistVideos")},
		}),
		pipeline.Project(bson.D{
			{Key: "name", Value: 1},
			{Key: "description", Value: 1},
			{Key: "owner", Value: 1},
			{Key: "playlistVideos", Value: 1},
			{Key: "totalViews", Value: 1},
			{Key: "totalVideos", Value: 1},
			{Key: "createdAt", Value: 1},
		}),
	}
}

func (r *PlaylistRepository) Create(ctx context.Context, playlist *model.Playlist) (*model.Playlist, error) {
	now := utils.GetCurrentTime()
	playlist.CreatedAt = now
	playlist.UpdatedAt = now
	if playlist.Videos == nil {
		playlist.Videos = []bson.ObjectID{}
	}
	res, err := r.coll.InsertOne(ctx, playlist)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while inserting playlist")
		return nil, err
	}
	playlist.ID = res.InsertedID.(bson.ObjectID)
	return playlist, nil
}

func (r *PlaylistRepository) GetByID(ctx context.Context, id bson.ObjectID) (*model.Playlist, error) {
	var playlist model.Playlist
	err := r.coll.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&playlist)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &playlist, nil
}

func (r *PlaylistRepository) ListByUser(ctx context.Context, ownerID bson.ObjectID) ([]model.PlaylistWithVideos, error) {
	p := pipeline.New().
		Add(pipeline.Match(bson.D{{Key: "owner", Value: ownerID}})).
		Add(playlistEnrichment()...).
		Build()

	cursor, err := r.coll.Aggregate(ctx, p)
	if err != nil {
		return nil, err
	}
	var playlists []model.PlaylistWithVideos
	if err := cursor.All(ctx, &playlists); err != nil {
		return nil, err
	}
	return playlists, nil
}

func (r *PlaylistRepository) GetEnriched(ctx context.Context, id bson.ObjectID) (*model.PlaylistWithVideos, error) {
	p := pipeline.New().
		Add(pipeline.Match(bson.D{{Key: "_id", Value: id}})).
		Add(playlistEnrichment()...).
		Build()

	cursor, err := r.coll.Aggregate(ctx, p)
	if err != nil {
		return nil, err
	}
	var playlists []model.PlaylistWithVideos
	if err := cursor.All(ctx, &playlists); err != nil {
		return nil, err
	}
	if len(playlists) == 0 {
		return nil, nil
	}
	return &playlists[0], nil
}

func (r *PlaylistRepository) AddVideo(ctx context.Context, playlistID, videoID bson.ObjectID) (*model.Playlist, error) {
	return r.updateVideos(ctx, playlistID, bson.D{
		{Key: "$addToSet", Value: bson.D{{Key: "videos", Value: videoID}}},
	})
}

func (r *PlaylistRepository) RemoveVideo(ctx context.Context, playlistID, videoID bson.ObjectID) (*model.Playlist, error) {
	return r.updateVideos(ctx, playlistID, bson.D{
		{Key: "$pull", Value: bson.D{{Key: "videos", Value: videoID}}},
	})
}

func (r *PlaylistRepository) updateVideos(ctx context.Context, playlistID bson.ObjectID, update bson.D) (*model.Playlist, error) {
	update = append(update, bson.E{Key: "$set", Value: bson.D{
		{Key: "updatedAt", Value: utils.GetCurrentTime()},
	}})
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var playlist model.Playlist
	err := r.coll.FindOneAndUpdate(ctx, bson.D{{Key: "_id", Value: playlistID}}, update, opts).Decode(&playlist)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &playlist, nil
}

func (r *PlaylistRepository) UpdateFields(ctx context.Context, id bson.ObjectID, fields bson.D) (*model.Playlist, error) {
	fields = append(fields, bson.E{Key: "updatedAt", Value: utils.GetCurrentTime()})
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var playlist model.Playlist
	err := r.coll.FindOneAndUpdate(ctx,
		bson.D{{Key: "_id", Value: id}},
		bson.D{{Key: "$set", Value: fields}},
		opts,
	).Decode(&playlist)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &playlist, nil
}

func (r *PlaylistRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	_, err := r.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	return err
}
