package persistence

import (
	"context"
	"fmt"

	"vidtube/infrastructure/logger"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// Collection names used across the repositories.
const (
	CollUsers         = "users"
	CollVideos        = "videos"
	CollComments      = "comments"
	CollLikes         = "likes"
	CollTweets        = "tweets"
	CollPlaylists     = "playlists"
	CollSubscriptions = "subscriptions"
)

// NewMongoDb connects the process-wide Mongo client. Call Disconnect on the
// returned client during teardown.
func NewMongoDb(host, port, user, password, name string) (*mongo.Client, error) {
	uri := fmt.Sprintf("mongodb://%s:%s", host, port)
	if user != "" {
		uri = fmt.Sprintf("mongodb://%s:%s@%s:%s", user, password, host, port)
	}

	client, err := mongo.Connect(options.Client().ApplyURI(uri))
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while connecting to MongoDB")
		return nil, err
	}
	return client, nil
}

// Database returns the application database handle.
func Database(client *mongo.Client, name string) *mongo.Database {
	return client.Database(name)
}

// CloseMongoDb disconnects the client, logging instead of failing on error.
func CloseMongoDb(ctx context.Context, client *mongo.Client) {
	if client == nil {
		return
	}
	if err := client.Disconnect(ctx); err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while disconnecting MongoDB")
	}
}
