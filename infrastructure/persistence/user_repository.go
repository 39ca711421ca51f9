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

type UserRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database) repository.IUser {
	return &UserRepository{coll: db.Collection(CollUsers)}
}

func (r *UserRepository) Create(ctx context.Context, user *model.User) (*model.User, error) {
	now := utils.GetCurrentTime()
	user.CreatedAt = now
	user.UpdatedAt = now
	if user.Role == "" {
		user.Role = model.RoleUser
	}
	res, err := r.coll.InsertOne(ctx, user)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while inserting user")
		return nil, err
	}
	user.ID = res.InsertedID.(bson.ObjectID)
	return user, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id bson.ObjectID) (*model.User, error) {
	var user model.User
	err := r.coll.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) GetByUserName(ctx context.Context, username string) (*model.User, error) {
	var user model.User
	err := r.coll.FindOne(ctx, bson.D{{Key: "username", Value: username}}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) GetByUserNameOrEmail(ctx context.Context, username, email string) (*model.User, error) {
	filter := bson.D{{Key: "$or", Value: bson.A{
		bson.D{{Key: "username", Value: username}},
		bson.D{{Key: "email", Value: email}},
	}}}
	var user model.User
	err := r.coll.FindOne(ctx, filter).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) UpdateFields(ctx context.Context, id bson.ObjectID, fields bson.D) (*model.User, error) {
	fields = append(fields, bson.E{Key: "updatedAt", Value: utils.GetCurrentTime()})
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var user model.User
	err := r.coll.FindOneAndUpdate(ctx,
		bson.D{{Key: "_id", Value: id}},
		bson.D{{Key: "$set", Value: fields}},
		opts,
	).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) SetRefreshToken(ctx context.Context, id bson.ObjectID, token string) error {
	update := bson.D{{Key: "$set", Value: bson.D{{Key: "refreshToken", Value: token}}}}
	if token == "" {
		update = bson.D{{Key: "$unset", Value: bson.D{{Key: "refreshToken", Value: ""}}}}
	}
	_, err := r.coll.UpdateByID(ctx, id, update)
	return err
}

func (r *UserRepository) AddWatchHistory(ctx context.Context, userID, videoID bson.ObjectID) error {
	// Re-append on rewatch: pull any earlier entry first so the most recent
	// view is last.
	_, err := r.coll.UpdateByID(ctx, userID,
		bson.D{{Key: "$pull", Value: bson.D{{Key: "watchHistory", Value: videoID}}}})
	if err != nil {
		return err
	}
	_, err = r.coll.UpdateByID(ctx, userID,
		bson.D{{Key: "$push", Value: bson.D{{Key: "watchHistory", Value: videoID}}}})
	return err
}

// ChannelProfile answers the channel page: subscriber counts derived from
// the subscriptions join plus whether the viewer already subscribes.
func (r *UserRepository) ChannelProfile(ctx context.Context, username string, viewer bson.ObjectID) (*model.ChannelProfile, error) {
	p := pipeline.New().
		Add(pipeline.Match(bson.D{{Key: "username", Value: username}})).
		Add(pipeline.Lookup(CollSubscriptions, "_id", "channel", "subscribers")).
		Add(pipeline.Lookup(CollSubscriptions, "_id", "subscriber", "subscribedTo")).
		Add(pipeline.AddFields(bson.D{
			{Key: "subscribersCount", Value: pipeline.Size("$subscribers")},
			{Key: "channelsSubscribedToCount", Value: pipeline.Size("$subscribedTo")},
			{Key: "isSubscribed", Value: pipeline.Cond(
				pipeline.In(viewer, "$subscribers.subscriber"), true, false)},
		})).
		Add(pipeline.Project(bson.D{
			{Key: "username", Value: 1},
			{Key: "fullName", Value: 1},
			{Key: "avatar", Value: 1},
			{Key: "coverImage", Value: 1},
			{Key: "subscribersCount", Value: 1},
			{Key: "channelsSubscribedToCount", Value: 1},
			{Key: "isSubscribed", Value: 1},
		})).
		Build()

	cursor, err := r.coll.Aggregate(ctx, p)
	if err != nil {
		return nil, err
	}
	var profiles []model.ChannelProfile
	if err := cursor.All(ctx, &profiles); err != nil {
		return nil, err
	}
	if len(profiles) == 0 {
		return nil, nil
	}
	return &profiles[0], nil
}

// WatchHistory resolves the user's watched video references with each
// video's owner flattened via $first.
func (r *UserRepository) WatchHistory(ctx context.Context, userID bson.ObjectID) ([]model.VideoWithOwner, error) {
	sub := []pipeline.Stage{
		pipeline.Lookup(CollUsers, "owner", "_id", "ownerDetails",
			pipeline.Project(bson.D{
				{Key: "username", Value: 1},
				{Key: "fullName", Value: 1},
				{Key: "avatar", Value: 1},
			}),
		),
		pipeline.AddFields(bson.D{
			{Key: "ownerDetails", Value: pipeline.First("$ownerDetails")},
		}),
	}
	p := pipeline.New().
		Add(pipeline.Match(bson.D{{Key: "_id", Value: userID}})).
		Add(pipeline.Lookup(CollVideos, "watchHistory", "_id", "watchHistory", sub...)).
		Build()

	cursor, err := r.coll.Aggregate(ctx, p)
	if err != nil {
		return nil, err
	}
	var results []struct {
		WatchHistory []model.VideoWithOwner `bson:"watchHistory"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return []model.VideoWithOwner{}, nil
	}
	return results[0].WatchHistory, nil
}
