package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Subscription is a join row: subscriber follows channel. Presence is the
// whole state, toggled by create-or-delete.
type Subscription struct {
	ID         bson.ObjectID `bson:"_id,omitempty" json:"_id"`
	Subscriber bson.ObjectID `bson:"subscriber" json:"subscriber"`
	Channel    bson.ObjectID `bson:"channel" json:"channel"`
	CreatedAt  time.Time     `bson:"createdAt" json:"createdAt"`
}

// ChannelSubscriber is one entry of the subscriber list, including whether
// the channel follows that subscriber back and the subscriber's own count.
type ChannelSubscriber struct {
	ID                     bson.ObjectID `bson:"_id" json:"_id"`
	Username               string        `bson:"username" json:"username"`
	FullName               string        `bson:"fullName" json:"fullName"`
	Avatar                 string        `bson:"avatar" json:"avatar"`
	SubscribersCount       int64         `bson:"subscribersCount" json:"subscribersCount"`
	SubscribedToSubscriber bool          `bson:"subscribedToSubscriber" json:"subscribedToSubscriber"`
}

// SubscribedChannel is one entry of the subscribed-channels list with the
// channel's most recent upload attached.
type SubscribedChannel struct {
	ID          bson.ObjectID `bson:"_id" json:"_id"`
	Username    string        `bson:"username" json:"username"`
	FullName    string        `bson:"fullName" json:"fullName"`
	Avatar      string        `bson:"avatar" json:"avatar"`
	LatestVideo *Video        `bson:"latestVideo,omitempty" json:"latestVideo,omitempty"`
}
