package repository

import (
	"context"

	"vidtube/domain/model"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type IDashboard interface {
	ChannelStats(ctx context.Context, channelID bson.ObjectID) (*model.ChannelStats, error)
	ChannelVideos(ctx context.Context, channelID bson.ObjectID) ([]model.ChannelVideo, error)
}

// IStatsCache fronts ChannelStats reads with a short-TTL cache. A nil result
// with a nil error is a miss.
type IStatsCache interface {
	GetChannelStats(ctx context.Context, channelID string) (*model.ChannelStats, error)
	SetChannelStats(ctx context.Context, channelID string, stats *model.ChannelStats)
}

// IMediaStorage uploads a local artifact to external storage and returns its
// public URL. The local artifact is removed whether or not the upload
// succeeds.
type IMediaStorage interface {
	Upload(ctx context.Context, localPath string) (*model.UploadResult, error)
}
