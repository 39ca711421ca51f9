package usecase

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"vidtube/domain/apperror"
	"vidtube/domain/dto"
	"vidtube/domain/model"
	"vidtube/domain/repository"
	"vidtube/infrastructure/logger"
	"vidtube/infrastructure/utils"
)

type IVideoUsecase interface {
	List(ctx context.Context, req dto.VideoListRequest) (*dto.Page[model.VideoWithOwner], error)
	Publish(ctx context.Context, ownerID string, req dto.VideoPublishRequest, videoPath, thumbnailPath string) (*model.Video, error)
	Details(ctx context.Context, videoID string) (*model.VideoDetails, error)
	Update(ctx context.Context, userID, videoID string, req dto.VideoUpdateRequest, thumbnailPath string) (*model.Video, error)
	Delete(ctx context.Context, userID, videoID string) error
	TogglePublish(ctx context.Context, userID, videoID string) (*model.Video, error)
	RecordView(ctx context.Context, userID, videoID string) error
}

type videoUsecase struct {
	videoRepository   repository.IVideo
	commentRepository repository.IComment
	likeRepository    repository.ILike
	userRepository    repository.IUser
	mediaStorage      repository.IMediaStorage
}

func NewVideoUsecase(
	videoRepository repository.IVideo,
	commentRepository repository.IComment,
	likeRepository repository.ILike,
	userRepository repository.IUser,
	mediaStorage repository.IMediaStorage,
) IVideoUsecase {
	return &videoUsecase{
		videoRepository:   videoRepository,
		commentRepository: commentRepository,
		likeRepository:    likeRepository,
		userRepository:    userRepository,
		mediaStorage:      mediaStorage,
	}
}

func (u *videoUsecase) List(ctx context.Context, req dto.VideoListRequest) (*dto.Page[model.VideoWithOwner], error) {
	q := dto.VideoListQuery{
		Page:     req.Page,
		Limit:    req.Limit,
		Query:    req.Query,
		SortBy:   req.SortBy,
		SortType: req.SortType,
	}
	if req.UserID != "" {
		owner, err := utils.ParseObjectID(req.UserID, "user id")
		if err != nil {
			return nil, err
		}
		q.Owner = owner
	}
	return u.videoRepository.List(ctx, q)
}

func (u *videoUsecase) Publish(ctx context.Context, ownerID string, req dto.VideoPublishRequest, videoPath, thumbnailPath string) (*model.Video, error) {
	owner, err := utils.ParseObjectID(ownerID, "user id")
	if err != nil {
		return nil, err
	}
	if videoPath == "" {
		return nil, apperror.Validation("Video file is required")
	}
	if thumbnailPath == "" {
		return nil, apperror.Validation("Thumbnail file is required")
	}

	videoFile, err := u.mediaStorage.Upload(ctx, videoPath)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while uploading video file")
		return nil, apperror.Server("Failed to upload video file")
	}
	thumbnail, err := u.mediaStorage.Upload(ctx, thumbnailPath)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while uploading thumbnail")
		return nil, apperror.Server("Failed to upload thumbnail")
	}

	now := utils.GetCurrentTime()
	video := &model.Video{
		Owner:       owner,
		VideoFile:   videoFile.URL,
		Thumbnail:   thumbnail.URL,
		Title:       req.Title,
		Description: req.Description,
		Duration:    videoFile.Duration,
		IsPublished: true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	return u.videoRepository.Create(ctx, video)
}

func (u *videoUsecase) Details(ctx context.Context, videoID string) (*model.VideoDetails, error) {
	id, err := utils.ParseObjectID(videoID, "video id")
	if err != nil {
		return nil, err
	}
	details, err := u.videoRepository.Details(ctx, id)
	if err != nil {
		return nil, err
	}
	if details == nil {
		return nil, apperror.NotFound("Video not found")
	}
	return details, nil
}

func (u *videoUsecase) Update(ctx context.Context, userID, videoID string, req dto.VideoUpdateRequest, thumbnailPath string) (*model.Video, error) {
	video, err := u.ownedVideo(ctx, userID, videoID)
	if err != nil {
		return nil, err
	}
	if req.Title == "" && req.Description == "" && thumbnailPath == "" {
		return nil, apperror.Validation("Nothing to update")
	}

	fields := bson.D{{Key: "updatedAt", Value: utils.GetCurrentTime()}}
	if req.Title != "" {
		fields = append(fields, bson.E{Key: "title", Value: req.Title})
	}
	if req.Description != "" {
		fields = append(fields, bson.E{Key: "description", Value: req.Description})
	}
	if thumbnailPath != "" {
		thumbnail, err := u.mediaStorage.Upload(ctx, thumbnailPath)
		if err != nil {
			logger.GetLogger().WithField("error", err).Error("Error while uploading thumbnail")
			return nil, apperror.Server("Failed to upload thumbnail")
		}
		fields = append(fields, bson.E{Key: "thumbnail", Value: thumbnail.URL})
	}

	updated, err := u.videoRepository.UpdateFields(ctx, video.ID, fields)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, apperror.NotFound("Video not found")
	}
	return updated, nil
}

// Delete removes the video and everything hanging off it: its likes, its
// comments, and the likes on those comments.
func (u *videoUsecase) Delete(ctx context.Context, userID, videoID string) error {
	video, err := u.ownedVideo(ctx, userID, videoID)
	if err != nil {
		return err
	}

	commentIDs, err := u.commentRepository.ListIDsByVideo(ctx, video.ID)
	if err != nil {
		return err
	}
	if len(commentIDs) > 0 {
		if err := u.likeRepository.DeleteAllForComments(ctx, commentIDs); err != nil {
			return err
		}
	}
	if err := u.commentRepository.DeleteAllForVideo(ctx, video.ID); err != nil {
		return err
	}
	if err := u.likeRepository.DeleteAllForTarget(ctx, model.LikeTargetVideo, video.ID); err != nil {
		return err
	}
	return u.videoRepository.Delete(ctx, video.ID)
}

func (u *videoUsecase) TogglePublish(ctx context.Context, userID, videoID string) (*model.Video, error) {
	video, err := u.ownedVideo(ctx, userID, videoID)
	if err != nil {
		return nil, err
	}
	updated, err := u.videoRepository.UpdateFields(ctx, video.ID, bson.D{
		{Key: "isPublished", Value: !video.IsPublished},
		{Key: "updatedAt", Value: utils.GetCurrentTime()},
	})
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, apperror.NotFound("Video not found")
	}
	return updated, nil
}

// RecordView bumps the view counter and re-appends the video to the watcher's
// history, most recent last.
func (u *videoUsecase) RecordView(ctx context.Context, userID, videoID string) error {
	id, err := utils.ParseObjectID(videoID, "video id")
	if err != nil {
		return err
	}
	watcher, err := utils.ParseObjectID(userID, "user id")
	if err != nil {
		return err
	}

	video, err := u.videoRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if video == nil {
		return apperror.NotFound("Video not found")
	}

	if err := u.videoRepository.IncrementViews(ctx, id); err != nil {
		return err
	}
	return u.userRepository.AddWatchHistory(ctx, watcher, id)
}

// ownedVideo resolves the video and enforces that the acting user owns it.
func (u *videoUsecase) ownedVideo(ctx context.Context, userID, videoID string) (*model.Video, error) {
	id, err := utils.ParseObjectID(videoID, "video id")
	if err != nil {
		return nil, err
	}
	actor, err := utils.ParseObjectID(userID, "user id")
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
	if video.Owner != actor {
		return nil, apperror.Forbidden("You are not allowed to modify this video")
	}
	return video, nil
}
