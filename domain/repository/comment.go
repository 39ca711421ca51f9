package repository

import (
	"context"

	"vidtube/domain/dto"
	"vidtube/domain/model"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type IComment interface {
	Create(ctx context.Context, comment *model.Comment) (*model.Comment, error)
	GetByID(ctx context.Context, id bson.ObjectID) (*model.Comment, error)
	ListByVideo(ctx context.Context, videoID bson.ObjectID, page, limit int) (*dto.Page[model.CommentWithMeta], error)
	ListIDsByVideo(ctx context.Context, videoID bson.ObjectID) ([]bson.ObjectID, error)
	UpdateContent(ctx context.Context, id bson.ObjectID, content string) (*model.Comment, error)
	Delete(ctx context.Context, id bson.ObjectID) error
	DeleteAllForVideo(ctx context.Context, videoID bson.ObjectID) error
}
