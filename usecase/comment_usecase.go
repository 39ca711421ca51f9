package usecase

import (
	"context"

	"vidtube/domain/apperror"
	"vidtube/domain/dto"
	"vidtube/domain/model"
	"vidtube/domain/repository"
	"vidtube/infrastructure/utils"
)

type ICommentUsecase interface {
	ListForVideo(ctx context.Context, videoID string, page dto.PageRequest) (*dto.Page[model.CommentWithMeta], error)
	Add(ctx context.Context, userID, videoID string, req dto.CommentRequest) (*model.Comment, error)
	Update(ctx context.Context, userID, commentID string, req dto.CommentRequest) (*model.Comment, error)
	Delete(ctx context.Context, userID, commentID string) error
}

type commentUsecase struct {
	commentRepository repository.IComment
	videoRepository   repository.IVideo
	likeRepository    repository.ILike
}

func NewCommentUsecase(commentRepository repository.IComment, videoRepository repository.IVideo, likeRepository repository.ILike) ICommentUsecase {
	return &commentUsecase{
		commentRepository: commentRepository,
		videoRepository:   videoRepository,
		likeRepository:    likeRepository,
	}
}

func (u *commentUsecase) ListForVideo(ctx context.Context, videoID string, page dto.PageRequest) (*dto.Page[model.CommentWithMeta], error) {
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
	return u.commentRepository.ListByVideo(ctx, id, page.Page, page.Limit)
}

func (u *commentUsecase) Add(ctx context.Context, userID, videoID string, req dto.CommentRequest) (*model.Comment, error) {
	id, err := utils.ParseObjectID(videoID, "video id")
	if err != nil {
		return nil, err
	}
	owner, err := utils.ParseObjectID(userID, "user id")
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

	now := utils.GetCurrentTime()
	comment := &model.Comment{
		Content:   req.Content,
		Video:     id,
		Owner:     owner,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return u.commentRepository.Create(ctx, comment)
}

func (u *commentUsecase) Update(ctx context.Context, userID, commentID string, req dto.CommentRequest) (*model.Comment, error) {
	comment, err := u.ownedComment(ctx, userID, commentID)
	if err != nil {
		return nil, err
	}
	updated, err := u.commentRepository.UpdateContent(ctx, comment.ID, req.Content)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, apperror.NotFound("Comment not found")
	}
	return updated, nil
}

// Delete removes the comment together with its likes.
func (u *commentUsecase) Delete(ctx context.Context, userID, commentID string) error {
	comment, err := u.ownedComment(ctx, userID, commentID)
	if err != nil {
		return err
	}
	if err := u.likeRepository.DeleteAllForTarget(ctx, model.LikeTargetComment, comment.ID); err != nil {
		return err
	}
	return u.commentRepository.Delete(ctx, comment.ID)
}

func (u *commentUsecase) ownedComment(ctx context.Context, userID, commentID string) (*model.Comment, error) {
	id, err := utils.ParseObjectID(commentID, "comment id")
	if err != nil {
		return nil, err
	}
	actor, err := utils.ParseObjectID(userID, "user id")
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
	if comment.Owner != actor {
		return nil, apperror.Forbidden("You are not allowed to modify this comment")
	}
	return comment, nil
}
