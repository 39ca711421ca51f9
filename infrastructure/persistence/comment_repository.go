package persistence

import (
	"context"
	"errors"

	"vidtube/domain/dto"
	"vidtube/domain/model"
	"vidtube/domain/repository"
	"vidtube/infrastructure/logger"
	"vidtube/infrastructure/pipeline"
	"vidtube/infrastructure/utils"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type CommentRepository struct {
	coll *mongo.Collection
}

func NewCommentRepository(db *mongo.Database) repository.IComment {
	return &CommentRepository{coll: db.Collection(CollComments)}
}

func (r *CommentRepository) Create(ctx context.Context, comment *model.Comment) (*model.Comment, error) {
	now := utils.GetCurrentTime()
	comment.CreatedAt = now
	comment.UpdatedAt = now
	res, err := r.coll.InsertOne(ctx, comment)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while inserting comment")
		return nil, err
	}
	comment.ID = res.InsertedID.(bson.ObjectID)
	return comment, nil
}

func (r *CommentRepository) GetByID(ctx context.Context, id bson.ObjectID) (*model.Comment, error) {
	var comment model.Comment
	err := r.coll.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&comment)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// ListByVideo pages through a video's comments newest-first with the like
// count and flattened owner attached.
func (r *CommentRepository) ListByVideo(ctx context.Context, videoID bson.ObjectID, page, limit int) (*dto.Page[model.CommentWithMeta], error) {
	page, limit = pipeline.NormalizePage(page, limit)
	p := pipeline.New().
		Add(pipeline.Match(bson.D{{Key: "video", Value: videoID}})).
		Add(pipeline.Sort("createdAt", false)).
		Add(pipeline.Lookup(CollLikes, "_id", "comment", "likes")).
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
		Add(pipeline.Paginate(page, limit)).
		Build()

	cursor, err := r.coll.Aggregate(ctx, p)
	if err != nil {
		return nil, err
	}
	return pipeline.DecodePage[model.CommentWithMeta](ctx, cursor, page, limit)
}

func (r *CommentRepository) ListIDsByVideo(ctx context.Context, videoID bson.ObjectID) ([]bson.ObjectID, error) {
	opts := options.Find().SetProjection(bson.D{{Key: "_id", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.D{{Key: "video", Value: videoID}}, opts)
	if err != nil {
		return nil, err
	}
	var docs []struct {
		ID bson.ObjectID `bson:"_id"`
	}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	ids := make([]bson.ObjectID, 0, len(docs))
	for _, d := range docs {
		ids = append(ids, d.ID)
	}
	return ids, nil
}

func (r *CommentRepository) UpdateContent(ctx context.Context, id bson.ObjectID, content string) (*model.Comment, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var comment model.Comment
	err := r.coll.FindOneAndUpdate(ctx,
		bson.D{{Key: "_id", Value: id}},
		bson.D{{Key: "$set", Value: bson.D{
			{Key: "content", Value: content},
			{Key: "updatedAt", Value: utils.GetCurrentTime()},
		}}},
		opts,
	).Decode(&comment)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *CommentRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	_, err := r.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	return err
}

func (r *CommentRepository) DeleteAllForVideo(ctx context.Context, videoID bson.ObjectID) error {
	_, err := r.coll.DeleteMany(ctx, bson.D{{Key: "video", Value: videoID}})
	return err
}
