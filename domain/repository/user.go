package repository

import (
	"context"

	"vidtube/domain/model"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type IUser interface {
	Create(ctx context.Context, user *model.User) (*model.User, error)
	GetByID(ctx context.Context, id bson.ObjectID) (*model.User, error)
	GetByUserName(ctx context.Context, username string) (*model.User, error)
	GetByUserNameOrEmail(ctx context.Context, username, email string) (*model.User, error)
	UpdateFields(ctx context.Context, id bson.ObjectID, fields bson.D) (*model.User, error)
	SetRefreshToken(ctx context.Context, id bson.ObjectID, token string) error
	AddWatchHistory(ctx context.Context, userID, videoID bson.ObjectID) error
	ChannelProfile(ctx context.Context, username string, viewer bson.ObjectID) (*model.ChannelProfile, error)
	WatchHistory(ctx context.Context, userID bson.ObjectID) ([]model.VideoWithOwner, error)
}
