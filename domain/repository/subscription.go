package repository

import (
	"context"

	"vidtube/domain/model"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type ISubscription interface {
	// Find returns nil when the (subscriber, channel) pair has no row.
	Find(ctx context.Context, subscriber, channel bson.ObjectID) (*model.Subscription, error)
	Create(ctx context.Context, subscriber, channel bson.ObjectID) error
	Delete(ctx context.Context, subscriber, channel bson.ObjectID) error
	Subscribers(ctx context.Context, channel bson.ObjectID) ([]model.ChannelSubscriber, error)
	SubscribedChannels(ctx context.Context, subscriber bson.ObjectID) ([]model.SubscribedChannel, error)
}
