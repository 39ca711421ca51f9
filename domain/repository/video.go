package repository

import (
	"context"

	"vidtube/domain/dto"
	"vidtube/domain/model"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type IVideo interface {
	Create(ctx context.Context, video *model.Video) (*model.Video, error)
	GetByID(ctx context.Context, id bson.ObjectID) (*model.Video, error)
	List(ctx context.Context, q dto.VideoListQuery) (*dto.Page[model.VideoWithOwner], error)
	Details(ctx context.Context, id bson.ObjectID) (*model.VideoDetails, error)
	UpdateFields(ctx context.Context, id bson.ObjectID, fields bson.D) (*model.Video, error)
	Delete(ctx context.Context, id bson.ObjectID) error
	IncrementViews(ctx context.Context, id bson.ObjectID) error
}
