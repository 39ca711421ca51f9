package usecase

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"vidtube/domain/apperror"
	"vidtube/domain/dto"
	"vidtube/domain/model"
	"vidtube/domain/repository"
	"vidtube/infrastructure/utils"
)

type ILikeUsecase interface {
	ToggleVideo(ctx context.Context, userID, videoID string) (*dto.ResLiked, error)
	ToggleComment(ctx context.Context, userID, commentID string) (*dto.ResLiked, error)
	ToggleTweet(ctx context.Context, userID, tweetID string) (*dto.ResLiked, error)
	LikedVideos(ctx context.Context, userID string) ([]model.Video, error)
}

type likeUsecase struct {
	likeRepository    repository.ILike
	videoRepository   repository.IVideo
	commentRepository repository.IComment
	tweetRepository   repository.ITweet
}

func NewLikeUsecase(
	likeRepository repository.ILike,
	videoRepository repository.IVideo,
	commentRepository repository.IComment,
	tweetRepository repository.ITweet,
) ILikeUsecase {
	return &likeUsecase{
		likeRepository:    likeRepository,
		videoRepository:   videoRepository,
		commentRepository: commentRepository,
		tweetRepository:   tweetRepository,
	}
}

func (u *likeUsecase) ToggleVideo(ctx context.Context, userID, videoID string) (*dto.ResLiked, error) {
	id, err := utils.ParseObjectID(videoID, "video id")
	if err != nil {
		return nil, err
	}
	video, err := u.videoRepository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if video == nil {
		return nil, apperror.NotFound("Video not found")
	}
	return u.toggle(ctx, model.LikeTargetVideo, id, userID)
}

func (u *likeUsecase) ToggleComment(ctx context.Context, userID, commentID string) (*dto.ResLiked, error) {
	id, err := utils.ParseObjectID(commentID, "comment id")
	if err != nil {
		return nil, err
	}
	comment, err := u.commentRepository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if comment == nil {
		return nil, apperror.NotFound("Comment not found")
	}
	return u.toggle(ctx, model.LikeTargetComment, id, userID)
}

func (u *likeUsecase) ToggleTweet(ctx context.Context, userID, tweetID string) (*dto.ResLiked, error) {
	id, err := utils.ParseObjectID(tweetID, "tweet id")
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
	return u.toggle(ctx, model.LikeTargetTweet, id, userID)
}

func (u *likeUsecase) LikedVideos(ctx context.Context, userID string) ([]model.Video, error) {
	likedBy, err := utils.ParseObjectID(userID, "user id")
	if err != nil {
		return nil, err
	}
	return u.likeRepository.LikedVideos(ctx, likedBy)
}

// toggle flips the like state for the pair: delete when present, create when
// absent. The returned flag is the state after the call.
func (u *likeUsecase) toggle(ctx context.Context, target model.LikeTarget, targetID bson.ObjectID, userID string) (*dto.ResLiked, error) {
	likedBy, err := utils.ParseObjectID(userID, "user id")
	if err != nil {
		return nil, err
	}

	existing, err := u.likeRepository.Find(ctx, target, targetID, likedBy)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		if err := u.likeRepository.Delete(ctx, target, targetID, likedBy); err != nil {
			return nil, err
		}
		return &dto.ResLiked{Liked: false}, nil
	}

	if err := u.likeRepository.Create(ctx, target, targetID, likedBy); err != nil {
		return nil, err
	}
	return &dto.ResLiked{Liked: true}, nil
}
