package persistence

import (
	"context"
	"errors"

	"vidtube/domain/model"
	"vidtube/domain/repository"
	"vidtube/infrastructure/logger"
	"vidtube/infrastructure/pipeline"
	"vidtube/infrastructure/utils"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

type SubscriptionRepository struct {
	coll *mongo.Collection
}

func NewSubscriptionRepository(db *mongo.Database) repository.ISubscription {
	return &SubscriptionRepository{coll: db.Collection(CollSubscriptions)}
}

func subscriptionFilter(subscriber, channel bson.ObjectID) bson.D {
	return bson.D{
		{Key: "subscriber", Value: subscriber},
		{Key: "channel", Value: channel},
	}
}

func (r *SubscriptionRepository) Find(ctx context.Context, subscriber, channel bson.ObjectID) (*model.Subscription, error) {
	var sub model.Subscription
	err := r.coll.FindOne(ctx, subscriptionFilter(subscriber, channel)).Decode(&sub)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

func (r *SubscriptionRepository) Create(ctx context.Context, subscriber, channel bson.ObjectID) error {
	doc := bson.D{
		{Key: "subscriber", Value: subscriber},
		{Key: "channel", Value: channel},
		{Key: "createdAt", Value: utils.GetCurrentTime()},
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while inserting subscription")
		return err
	}
	return nil
}

// Delete removes every row for the pair so a racy double-create heals on
// the next toggle.
func (r *SubscriptionRepository) Delete(ctx context.Context, subscriber, channel bson.ObjectID) error {
	_, err := r.coll.DeleteMany(ctx, subscriptionFilter(subscriber, channel))
	return err
}

// Subscribers lists a channel's subscribers; the nested lookup reports each
// subscriber's own follower count and whether the channel follows them back.
func (r *SubscriptionRepository) Subscribers(ctx context.Context, channel bson.ObjectID) ([]model.ChannelSubscriber, error) {
	sub := []pipeline.Stage{
		pipeline.Lookup(CollSubscriptions, "_id", "channel", "subscribedToSubscriber"),
		pipeline.AddFields(bson.D{
			{Key: "subscribersCount", Value: pipeline.Size("$subscribedToSubscriber")},
			{Key: "subscribedToSubscriber", Value: pipeline.Cond(
				pipeline.In(channel, "$subscribedToSubscriber.subscriber"), true, false)},
		}),
		pipeline.Project(bson.D{
			{Key: "username", Value: 1},
			{Key: "fullName", Value: 1},
			{Key: "avatar", Value: 1},
			{Key: "subscribersCount", Value: 1},
			{Key: "subscribedToSubscriber", Value: 1},
		}),
	}
	p := pipeline.New().
		Add(pipeline.Match(bson.D{{Key: "channel", Value: channel}})).
		Add(pipeline.Lookup(CollUsers, "subscriber", "_id", "subscriber", sub...)).
		Add(pipeline.Unwind("$subscriber")).
		Add(pipeline.ReplaceRoot("$subscriber")).
		Build()

	cursor, err := r.coll.Aggregate(ctx, p)
	if err != nil {
		return nil, err
	}
	var subscribers []model.ChannelSubscriber
	if err := cursor.All(ctx, &subscribers); err != nil {
		return nil, err
	}
	return subscribers, nil
}

// SubscribedChannels lists the channels a user follows with each channel's
// most recent upload attached via $last.
func (r *SubscriptionRepository) SubscribedChannels(ctx context.Context, subscriber bson.ObjectID) ([]model.SubscribedChannel, error) {
	sub := []pipeline.Stage{
		pipeline.Lookup(CollVideos, "_id", "owner", "videos"),
		pipeline.AddFields(bson.D{
			{Key: "latestVideo", Value: pipeline.Last("$videos")},
		}),
		pipeline.Project(bson.D{
			{Key: "username", Value: 1},
			{Key: "fullName", Value: 1},
			{Key: "avatar", Value: 1},
			{Key: "latestVideo", Value: 1},
		}),
	}
	p := pipeline.New().
		Add(pipeline.Match(bson.D{{Key: "subscriber", Value: subscriber}})).
		Add(pipeline.Lookup(CollUsers, "channel", "_id", "subscribedChannel", sub...)).
		Add(pipeline.Unwind("$subscribedChannel")).
		Add(pipeline.ReplaceRoot("$subscribedChannel")).
		Build()

	cursor, err := r.coll.Aggregate(ctx, p)
	if err != nil {
		return nil, err
	}
	var channels []model.SubscribedChannel
	if err := cursor.All(ctx, &channels); err != nil {
		return nil, err
	}
	return channels, nil
}
