package persistence

import (
	"context"

	"vidtube/domain/model"
	"vidtube/domain/repository"
	"vidtube/infrastructure/pipeline"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

type DashboardRepository struct {
	videos        *mongo.Collection
	subscriptions *mongo.Collection
	likes         *mongo.Collection
}

func NewDashboardRepository(db *mongo.Database) repository.IDashboard {
	return &DashboardRepository{
		videos:        db.Collection(CollVideos),
		subscriptions: db.Collection(CollSubscriptions),
		likes:         db.Collection(CollLikes),
	}
}

// ChannelStats combines a subscription count with a grouped video scan. A
// channel with no subscribers or videos legitimately reports zeros.
func (r *DashboardRepository) ChannelStats(ctx context.Context, channelID bson.ObjectID) (*model.ChannelStats, error) {
	stats := &model.ChannelStats{}

	subs, err := r.subscriptions.CountDocuments(ctx, bson.D{{Key: "channel", Value: channelID}})
	if err != nil {
		return nil, err
	}
	stats.TotalSubs = subs

	p := pipeline.New().
		Add(pipeline.Match(bson.D{{Key: "owner", Value: channelID}})).
		Add(pipeline.Group(bson.D{
			{Key: "_id", Value: nil},
			{Key: "totalVideos", Value: pipeline.Sum(1)},
			{Key: "totalViews", Value: pipeline.Sum("$views")},
			{Key: "videoIds", Value: bson.D{{Key: "$push", Value: "$_id"}}},
		})).
		Add(pipeline.Lookup(CollLikes, "videoIds", "video", "likes")).
		Add(pipeline.AddFields(bson.D{
			{Key: "totalLikes", Value: pipeline.Size("$likes")},
		})).
		Add(pipeline.Project(bson.D{
			{Key: "_id", Value: 0},
			{Key: "totalVideos", Value: 1},
			{Key: "totalViews", Value: 1},
			{Key: "totalLikes", Value: 1},
		})).
		Build()

	cursor, err := r.videos.Aggregate(ctx, p)
	if err != nil {
		return nil, err
	}
	var grouped []struct {
		TotalVideos int64 `bson:"totalVideos"`
		TotalViews  int64 `bson:"totalViews"`
		TotalLikes  int64 `bson:"totalLikes"`
	}
	if err := cursor.All(ctx, &grouped); err != nil {
		return nil, err
	}
	if len(grouped) > 0 {
		stats.TotalVideos = grouped[0].TotalVideos
		stats.TotalViews = grouped[0].TotalViews
		stats.TotalLikes = grouped[0].TotalLikes
	}
	return stats, nil
}

// ChannelVideos lists every upload of the channel, published or not, with
// like and comment counts for the owner's dashboard.
func (r *DashboardRepository) ChannelVideos(ctx context.Context, channelID bson.ObjectID) ([]model.ChannelVideo, error) {
	p := pipeline.New().
		Add(pipeline.Match(bson.D{{Key: "owner", Value: channelID}})).
		Add(pipeline.Sort("createdAt", false)).
		Add(pipeline.Lookup(CollLikes, "_id", "video", "likes")).
		Add(pipeline.Lookup(CollComments, "_id", "video", "comments")).
		Add(pipeline.AddFields(bson.D{
			{Key: "likesCount", Value: pipeline.Size("$likes")},
			{Key: "commentsCount", Value: pipeline.Size("$comments")},
		})).
		Add(pipeline.Project(bson.D{
			{Key: "videoFile", Value: 1},
			{Key: "thumbnail", Value: 1},
			{Key: "title", Value: 1},
			{Key: "description", Value: 1},
			{Key: "isPublished", Value: 1},
			{Key: "likesCount", Value: 1},
			{Key: "commentsCount", Value: 1},
			{Key: "createdAt", Value: 1},
		})).
		Build()

	cursor, err := r.videos.Aggregate(ctx, p)
	if err != nil {
		return nil, err
	}
	var videos []model.ChannelVideo
	if err := cursor.All(ctx, &videos); err != nil {
		return nil, err
	}
	return videos, nil
}
