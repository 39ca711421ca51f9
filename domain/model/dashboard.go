package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// ChannelStats aggregates a channel's totals. A channel with no activity
// reports zeros, never an error.
type ChannelStats struct {
	TotalSubs   int64 `bson:"totalSubs" json:"totalSubs"`
	TotalVideos int64 `bson:"totalVideos" json:"totalVideos"`
	TotalViews  int64 `bson:"totalViews" json:"totalViews"`
	TotalLikes  int64 `bson:"totalLikes" json:"totalLikes"`
}

// ChannelVideo is one row of the channel dashboard video list.
type ChannelVideo struct {
	ID            bson.ObjectID `bson:"_id" json:"_id"`
	VideoFile     string        `bson:"videoFile" json:"videoFile"`
	Thumbnail     string        `bson:"thumbnail" json:"thumbnail"`
	Title         string        `bson:"title" json:"title"`
	Description   string        `bson:"description" json:"description"`
	IsPublished   bool          `bson:"isPublished" json:"isPublished"`
	LikesCount    int64         `bson:"likesCount" json:"likesCount"`
	CommentsCount int64         `bson:"commentsCount" json:"commentsCount"`
	CreatedAt     time.Time     `bson:"createdAt" json:"createdAt"`
}
