package repository

import (
	"context"

	"vidtube/domain/model"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type ILike interface {
	// Find returns nil when the (likedBy, target) pair has no row.
	Find(ctx context.Context, target model.LikeTarget, targetID, likedBy bson.ObjectID) (*model.Like, error)
	Create(ctx context.Context, target model.LikeTarget, targetID, likedBy bson.ObjectID) error
	Delete(ctx context.Context, target model.LikeTarget, targetID, likedBy bson.ObjectID) error
	DeleteAllForTarget(ctx context.Context, target model.LikeTarget, targetID bson.ObjectID) error
	DeleteAllForComments(ctx context.Context, commentIDs []bson.ObjectID) error
	CountForTarget(ctx context.Context, target model.LikeTarget, targetID bson.ObjectID) (int64, error)
	LikedVideos(ctx context.Context, likedBy bson.ObjectID) ([]model.Video, error)
}
