package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// LikeTarget names the reference field a Like row points at. A Like always
// targets exactly one of video, comment or tweet.
type LikeTarget string

const (
	LikeTargetVideo   LikeTarget = "video"
	LikeTargetComment LikeTarget = "comment"
	LikeTargetTweet   LikeTarget = "tweet"
)

// Like is a join row: its mere existence is the "liked" state for the
// (likedBy, target) pair.
type Like struct {
	ID        bson.ObjectID  `bson:"_id,omitempty" json:"_id"`
	Video     *bson.ObjectID `bson:"video,omitempty" json:"video,omitempty"`
	Comment   *bson.ObjectID `bson:"comment,omitempty" json:"comment,omitempty"`
	Tweet     *bson.ObjectID `bson:"tweet,omitempty" json:"tweet,omitempty"`
	LikedBy   bson.ObjectID  `bson:"likedBy" json:"likedBy"`
	CreatedAt time.Time      `bson:"createdAt" json:"createdAt"`
}
