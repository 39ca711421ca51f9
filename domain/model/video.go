package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Video struct {
	ID          bson.ObjectID `bson:"_id,omitempty" json:"_id"`
	Owner       bson.ObjectID `bson:"owner" json:"owner"`
	VideoFile   string        `bson:"videoFile" json:"videoFile"`
	Thumbnail   string        `bson:"thumbnail" json:"thumbnail"`
	Title       string        `bson:"title" json:"title"`
	Description string        `bson:"description" json:"description"`
	Duration    float64       `bson:"duration" json:"duration"`
	Views       int64         `bson:"views" json:"views"`
	IsPublished bool          `bson:"isPublished" json:"isPublished"`
	CreatedAt   time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time     `bson:"updatedAt" json:"updatedAt"`
}

// VideoWithOwner is a Video enriched with the flattened owner lookup. The
// join produces 0-or-1 owners and the following unwind drops the video when
// the owner no longer exists.
type VideoWithOwner struct {
	Video        `bson:",inline"`
	OwnerDetails OwnerSummary `bson:"ownerDetails" json:"ownerDetails"`
}

// VideoDetails is the single-video page: counts derived from the likes and
// comments joins plus the flattened owner.
type VideoDetails struct {
	Video         `bson:",inline"`
	OwnerDetails  OwnerSummary `bson:"ownerDetails" json:"ownerDetails"`
	LikesCount    int64        `bson:"likesCount" json:"likesCount"`
	CommentsCount int64        `bson:"commentsCount" json:"commentsCount"`
}
