package usecase

import (
	"context"

	"vidtube/domain/apperror"
	"vidtube/domain/dto"
	"vidtube/domain/model"
	"vidtube/domain/repository"
	"vidtube/infrastructure/utils"
)

type ITweetUsecase interface {
	Create(ctx context.Context, userID string, req dto.TweetRequest) (*model.Tweet, error)
	ListByUser(ctx context.Context, userID string) ([]model.TweetWithMeta, error)
	Update(ctx context.Context, userID, tweetID string, req dto.TweetRequest) (*model.Tweet, error)
	Delete(ctx context.Context, userID, tweetID string) error
}

type tweetUsecase struct {
	tweetRepository repository.ITweet
	likeRepository  repository.ILike
}

func NewTweetUsecase(tweetRepository repository.ITweet, likeRepository repository.ILike) ITweetUsecase {
	return &tweetUsecase{tweetRepository: tweetRepository, likeRepository: likeRepository}
}

func (u *tweetUsecase) Create(ctx context.Context, userID string, req dto.TweetRequest) (*model.Tweet, error) {
	owner, err := utils.ParseObjectID(userID, "user id")
	if err != nil {
		return nil, err
	}
	now := utils.GetCurrentTime()
	tweet := &model.Tweet{
		Owner:     owner,
		Content:   req.Content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return u.tweetRepository.Create(ctx, tweet)
}

func (u *tweetUsecase) ListByUser(ctx context.Context, userID string) ([]model.TweetWithMeta, error) {
	owner, err := utils.ParseObjectID(userID, "user id")
	if err != nil {
		return nil, err
	}
	return u.tweetRepository.ListByUser(ctx, owner)
}

func (u *tweetUsecase) Update(ctx context.Context, userID, tweetID string, req dto.TweetRequest) (*model.Tweet, error) {
	tweet, err := u.ownedTweet(ctx, userID, tweetID)
	if err != nil {
		return nil, err
	}
	updated, err := u.tweetRepository.UpdateContent(ctx, tweet.ID, req.Content)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, apperror.NotFound("Tweet not found")
	}
	return updated, nil
}

// Delete removes the tweet together with its likes.
func (u *tweetUsecase) Delete(ctx context.Context, userID, tweetID string) error {
	tweet, err := u.ownedTweet(ctx, userID, tweetID)
	if err != nil {
		return err
	}
	if err := u.likeRepository.DeleteAllForTarget(ctx, model.LikeTargetTweet, tweet.ID); err != nil {
		return err
	}
	return u.tweetRepository.Delete(ctx, tweet.ID)
}

func (u *tweetUsecase) ownedTweet(ctx context.Context, userID, tweetID string) (*model.Tweet, error) {
	id, err := utils.ParseObjectID(tweetID, "tweet id")
	if err != nil {
		return nil, err
	}
	actor, err := utils.ParseObjectID(userID, "user id")
	if err != nil {
		return nil, err
	}

	tweet, err := u.tweetRepository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if tweet == nil {
		return nil, apperror.NotFound("Tweet not found")
	}
	if tweet.Owner != actor {
		return nil, apperror.Forbidden("You are not allowed to modify this tweet")
	}
	return tweet, nil
}
