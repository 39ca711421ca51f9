package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Tweet struct {
	ID        bson.ObjectID `bson:"_id,omitempty" json:"_id"`
	Owner     bson.ObjectID `bson:"owner" json:"owner"`
	Content   string        `bson:"content" json:"content"`
	CreatedAt time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time     `bson:"updatedAt" json:"updatedAt"`
}

type TweetWithMeta struct {
	ID           bson.ObjectID `bson:"_id" json:"_id"`
	Content      string        `bson:"content" json:"content"`
	CreatedAt    time.Time     `bson:"createdAt" json:"createdAt"`
	LikesCount   int64         `bson:"likesCount" json:"likesCount"`
	OwnerDetails OwnerSummary  `bson:"ownerDetails" json:"ownerDetails"`
}
