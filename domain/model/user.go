package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User is both an account and a channel; other entities point back at it via
// an owner reference.
type User struct {
	ID           bson.ObjectID   `bson:"_id,omitempty" json:"_id"`
	Username     string          `bson:"username" json:"username"`
	Email        string          `bson:"email" json:"email"`
	FullName     string          `bson:"fullName" json:"fullName"`
	Avatar       string          `bson:"avatar" json:"avatar"`
	CoverImage   string          `bson:"coverImage" json:"coverImage"`
	Password     string          `bson:"password" json:"-"`
	Role         string          `bson:"role" json:"role"`
	RefreshToken string          `bson:"refreshToken,omitempty" json:"-"`
	WatchHistory []bson.ObjectID `bson:"watchHistory,omitempty" json:"watchHistory,omitempty"`
	CreatedAt    time.Time       `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time       `bson:"updatedAt" json:"updatedAt"`
}

// OwnerSummary is the denormalized owner projection attached by lookups.
type OwnerSummary struct {
	ID       bson.ObjectID `bson:"_id" json:"_id"`
	Username string        `bson:"username" json:"username"`
	FullName string        `bson:"fullName,omitempty" json:"fullName,omitempty"`
	Avatar   string        `bson:"avatar,omitempty" json:"avatar,omitempty"`
}

// ChannelProfile is the aggregation result of the channel page query.
type ChannelProfile struct {
	ID                        bson.ObjectID `bson:"_id" json:"_id"`
	Username                  string        `bson:"username" json:"username"`
	FullName                  string        `bson:"fullName" json:"fullName"`
	Avatar                    string        `bson:"avatar" json:"avatar"`
	CoverImage                string        `bson:"coverImage" json:"coverImage"`
	SubscribersCount          int64         `bson:"subscribersCount" json:"subscribersCount"`
	ChannelsSubscribedToCount int64         `bson:"channelsSubscribedToCount" json:"channelsSubscribedToCount"`
	IsSubscribed              bool          `bson:"isSubscribed" json:"isSubscribed"`
}
