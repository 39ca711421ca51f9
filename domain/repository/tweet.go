package repository

import (
	"context"

	"vidtube/domain/model"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type ITweet interface {
	Create(ctx context.Context, tweet *model.Tweet) (*model.Tweet, error)
	GetByID(ctx context.Context, id bson.ObjectID) (*model.Tweet, error)
	ListByUser(ctx context.Context, ownerID bson.ObjectID) ([]model.TweetWithMeta, error)
	UpdateContent(ctx context.Context, id bson.ObjectID, content string) (*model.Tweet, error)
	Delete(ctx context.Context, id bson.ObjectID) error
}
