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
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type TweetRepository struct {
	coll *mongo.Collection
}

func NewTweetRepository(db *mongo.Database) repository.ITweet {
	return &TweetRepository{coll: db.Collection(CollTweets)}
}

func (r *TweetRepository) Create(ctx context.Context, tweet *model.Tweet) (*model.Tweet, error) {
	now := utils.GetCurrentTime()
	tweet.CreatedAt = now
	tweet.UpdatedAt = now
	res, err := r.coll.InsertOne(ctx, tweet)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while inserting tweet")
		return nil, err
	}
	tweet.ID = res.InsertedID.(bson.ObjectID)
	return tweet, nil
}

func (r *TweetRepository) GetByID(ctx context.Context, id bson.ObjectID) (*model.Tweet, error) {
	var tweet model.Tweet
	err := r.coll.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&tweet)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &tweet, nil
}

func (r *TweetRepository) ListByUser(ctx context.Context, ownerID bson.ObjectID) ([]model.TweetWithMeta, error) {
	p := pipeline.New().
		Add(pipeline.Match(bson.D{{Key: "owner", Value: ownerID}})).
		Add(pipeline.Sort("createdAt", false)).
		Add(pipeline.Lookup(CollLikes, "_id", "tweet", "likes")).
		Add(pipeline.AddFields(bson.D{
			{Key: "likesCount", Value: pipeline.Size("$likes")},
		})).
		Add(pipeline.Lookup(CollUsers, "owner", "_id", "ownerDetails",
			pipeline.Project(bson.D{
				{Key: "username", Value: 1},
				{Key: "fullName", Value: 1},
				{Key: "avatar", Value: 1},
			}),
		)).
		Add(pipeline.Unwind("$ownerDetails")).
		Add(pipeline.Project(bson.D{
			{Key: "content", Value: 1},
			{Key: "createdAt", Value: 1},
			{Key: "likesCount", Value: 1},
			{Key: "ownerDetails", Value: 1},
		})).
		Build()

	cursor, err := r.coll.Aggregate(ctx, p)
	if err != nil {
		return nil, err
	}
	var tweets []model.TweetWithMeta
	if err := cursor.All(ctx, &tweets); err != nil {
		return nil, err
	}
	return tweets, nil
}

func (r *TweetRepository) UpdateContent(ctx context.Context, id bson.ObjectID, content string) (*model.Tweet, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var tweet model.Tweet
	err := r.coll.FindOneAndUpdate(ctx,
		bson.D{{Key: "_id", Value: id}},
		bson.D{{Key: "$set", Value: bson.D{
			{Key: "content", Value: content},
			{Key: "updatedAt", Value: utils.GetCurrentTime()},
		}}},
		opts,
	).Decode(&tweet)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &tweet, nil
}

func (r *TweetRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	_, err := r.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	return err
}
