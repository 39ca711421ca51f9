package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Playlist holds an ordered, de-duplicated set of video references.
type Playlist struct {
	ID          bson.ObjectID   `bson:"_id,omitempty" json:"_id"`
	Name        string          `bson:"name" json:"name"`
	Description string          `bson:"description" json:"description"`
	Owner       bson.ObjectID   `bson:"owner" json:"owner"`
	Videos      []bson.ObjectID `bson:"videos" json:"videos"`
	CreatedAt   time.Time       `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time       `bson:"updatedAt" json:"updatedAt"`
}

// PlaylistWithVideos is the enriched aggregation output: the referenced
// videos plus their summed view count.
type PlaylistWithVideos struct {
	ID             bson.ObjectID `bson:"_id" json:"_id"`
	Name           string        `bson:"name" json:"name"`
	Description    string        `bson:"description" json:"description"`
	Owner          bson.ObjectID `bson:"owner" json:"owner"`
	PlaylistVideos []Video       `bson:"playlistVideos" json:"playlistVideos"`
	TotalViews     int64         `bson:"totalViews" json:"totalViews"`
	TotalVideos    int64         `bson:"totalVideos" json:"totalVideos"`
	CreatedAt      time.Time     `bson:"createdAt" json:"createdAt"`
}
