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

// SearchIndexVideos is the Atlas full-text index over title and description.
const SearchIndexVideos = "search-videos"

type VideoRepository struct {
	coll *mongo.Collection
}

func NewVideoRepository(db *mongo.Database) repository.IVideo {
	return &VideoRepository{coll: db.Collection(CollVideos)}
}

// VideoListPipeline composes the list query with a fixed stage precedence:
// full-text search, owner filter, the mandatory published filter, sort,
// owner join, unwind, pagination facet. Optional stages are skipped when
// their parameter is absent.
func VideoListPipeline(q dto.VideoListQuery) mongo.Pipeline {
	return pipeline.New().
		AddIf(q.Query != "", func() pipeline.Stage {
			return pipeline.Search(SearchIndexVideos, q.Query, "title", "description")
		}).
		AddIf(!q.Owner.IsZero(), func() pipeline.Stage {
			return pipeline.Match(bson.D{{Key: "owner", Value: q.Owner}})
		}).
		Add(pipeline.Match(bson.D{{Key: "isPublished", Value: true}})).
		Add(pipeline.SortOrDefault(q.SortBy, q.SortType)).
		Add(pipeline.Lookup(CollUsers, "owner", "_id", "ownerDetails",
			pipeline.Project(bson.D{
				{Key: "username", Value: 1},
				{Key: "fullName", Value: 1},
				{Key: "avatar", Value: 1},
			}),
		)).
		Add(pipeline.Unwind("$ownerDetails")).
		Add(pipeline.Paginate(q.Page, q.Limit)).
		Build()
}

func (r *VideoRepository) Create(ctx context.Context, video *model.Video) (*model.Video, error) {
	now := utils.GetCurrentTime()
	video.CreatedAt = now
	video.UpdatedAt = now
	res, err := r.coll.InsertOne(ctx, video)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while inserting video")
		return nil, err
	}
	video.ID = res.InsertedID.(bson.ObjectID)
	return video, nil
}

func (r *VideoRepository) GetByID(ctx context.Context, id bson.ObjectID) (*model.Video, error) {
	var video model.Video
	err := r.coll.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&video)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &video, nil
}

func (r *VideoRepository) List(ctx context.Context, q dto.VideoListQuery) (*dto.Page[model.VideoWithOwner], error) {
	q.Page, q.Limit = pipeline.NormalizePage(q.Page, q.Limit)
	cursor, err := r.coll.Aggregate(ctx, VideoListPipeline(q))
	if err != nil {
		return nil, err
	}
	return pipeline.DecodePage[model.VideoWithOwner](ctx, cursor, q.Page, q.Limit)
}

// Details returns one video with its like and comment counts and flattened
// owner. The unwind drops the video when the owner record is gone.
func (r *VideoRepository) Details(ctx context.Context, id bson.ObjectID) (*model.VideoDetails, error) {
	p := pipeline.New().
		Add(pipeline.Match(bson.D{{Key: "_id", Value: id}})).
		Add(pipeline.Lookup(CollLikes, "_id", "video", "likes")).
		Add(pipeline.Lookup(CollComments, "_id", "video", "comments")).
		Add(pipeline.Lookup(CollUsers, "owner", "_id", "ownerDetails",
			pipeline.Project(bson.D{
				{Key: "username", Value: 1},
				{Key: "fullName", Value: 1},
				{Key: "avatar", Value: 1},
			}),
		)).
		Add(pipeline.Unwind("$ownerDetails")).
		Add(pipeline.AddFields(bson.D{
			{Key: "likesCount", Value: pipeline.Size("$likes")},
			{Key: "commentsCount", Value: pipeline.Size("$comments")},
		})).
		Add(pipeline.Project(bson.D{
			{Key: "likes", Value: 0},
			{Key: "comments", Value: 0},
		})).
		Build()

	cursor, err := r.coll.Aggregate(ctx, p)
	if err != nil {
		return nil, err
	}
	var details []model.VideoDetails
	if err := cursor.All(ctx, &details); err != nil {
		return nil, err
	}
	if len(details) == 0 {
		return nil, nil
	}
	return &details[0], nil
}

func (r *VideoRepository) UpdateFields(ctx context.Context, id bson.ObjectID, fields bson.D) (*model.Video, error) {
	fields = append(fields, bson.E{Key: "updatedAt", Value: utils.GetCurrentTime()})
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var video model.Video
	err := r.coll.FindOneAndUpdate(ctx,
		bson.D{{Key: "_id", Value: id}},
		bson.D{{Key: "$set", Value: fields}},
		opts,
	).Decode(&video)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &video, nil
}

func (r *VideoRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	_, err := r.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	return err
}

func (r *VideoRepository) IncrementViews(ctx context.Context, id bson.ObjectID) error {
	_, err := r.coll.UpdateByID(ctx, id,
		bson.D{{Key: "$inc", Value: bson.D{{Key: "views", Value: 1}}}})
	return err
}
