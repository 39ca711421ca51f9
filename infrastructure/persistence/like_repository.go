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

type LikeRepository struct {
	coll *mongo.Collection
}

func NewLikeRepository(db *mongo.Database) repository.ILike {
	return &LikeRepository{coll: db.Collection(CollLikes)}
}

func pairFilter(target model.LikeTarget, targetID, likedBy bson.ObjectID) bson.D {
	return bson.D{
		{Key: string(target), Value: targetID},
		{Key: "likedBy", Value: likedBy},
	}
}

func (r *LikeRepository) Find(ctx context.Context, target model.LikeTarget, targetID, likedBy bson.ObjectID) (*model.Like, error) {
	var like model.Like
	err := r.coll.FindOne(ctx, pairFilter(target, targetID, likedBy)).Decode(&like)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &like, nil
}

func (r *LikeRepository) Create(ctx context.Context, target model.LikeTarget, targetID, likedBy bson.ObjectID) error {
	doc := bson.D{
		{Key: string(target), Value: targetID},
		{Key: "likedBy", Value: likedBy},
		{Key: "createdAt", Value: utils.GetCurrentTime()},
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while inserting like")
		return err
	}
	return nil
}

// Delete removes every row for the pair so a racy double-create heals on
// the next toggle.
func (r *LikeRepository) Delete(ctx context.Context, target model.LikeTarget, targetID, likedBy bson.ObjectID) error {
	_, err := r.coll.DeleteMany(ctx, pairFilter(target, targetID, likedBy))
	return err
}

func (r *LikeRepository) DeleteAllForTarget(ctx context.Context, target model.LikeTarget, targetID bson.ObjectID) error {
	_, err := r.coll.DeleteMany(ctx, bson.D{{Key: string(target), Value: targetID}})
	return err
}

func (r *LikeRepository) DeleteAllForComments(ctx context.Context, commentIDs []bson.ObjectID) error {
	if len(commentIDs) == 0 {
		return nil
	}
	filter := bson.D{{Key: "comment", Value: bson.D{{Key: "$in", Value: commentIDs}}}}
	_, err := r.coll.DeleteMany(ctx, filter)
	return err
}

func (r *LikeRepository) CountForTarget(ctx context.Context, target model.LikeTarget, targetID bson.ObjectID) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.D{{Key: string(target), Value: targetID}})
}

// LikedVideos resolves the user's liked video references. The unwind plus
// replaceRoot flattens each join hit into a plain video document and drops
// likes whose video has been deleted.
func (r *LikeRepository) LikedVideos(ctx context.Context, likedBy bson.ObjectID) ([]model.Video, error) {
	p := pipeline.New().
		Add(pipeline.Match(bson.D{{Key: "likedBy", Value: likedBy}})).
		Add(pipeline.Lookup(CollVideos, "video", "_id", "likedVideos",
			pipeline.Project(bson.D{
				{Key: "videoFile", Value: 1},
				{Key: "thumbnail", Value: 1},
				{Key: "owner", Value: 1},
				{Key: "title", Value: 1},
				{Key: "description", Value: 1},
				{Key: "duration", Value: 1},
				{Key: "views", Value: 1},
				{Key: "createdAt", Value: 1},
			}),
		)).
		Add(pipeline.Unwind("$likedVideos")).
		Add(pipeline.ReplaceRoot("$likedVideos")).
		Build()

	cursor, err := r.coll.Aggregate(ctx, p)
	if err != nil {
		return nil, err
	}
	var videos []model.Video
	if err := cursor.All(ctx, &videos); err != nil {
		return nil, err
	}
	return videos, nil
}
