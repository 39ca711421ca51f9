package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"vidtube/domain/apperror"
	"vidtube/domain/dto"
	"vidtube/usecase"
)

type IVideoHandler interface {
	List(c *gin.Context)
	Publish(c *gin.Context)
	Details(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
	TogglePublish(c *gin.Context)
	RecordView(c *gin.Context)
}

type VideoHandler struct {
	videoUsecase usecase.IVideoUsecase
}

func NewVideoHandler(videoUsecase usecase.IVideoUsecase) IVideoHandler {
	return &VideoHandler{videoUsecase: videoUsecase}
}

func (h *VideoHandler) List(c *gin.Context) {
	var req dto.VideoListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		respondBindError(c, err)
		return
	}

	page, err := h.videoUsecase.List(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, page, "Videos fetched successfully")
}

func (h *VideoHandler) Publish(c *gin.Context) {
	var req dto.VideoPublishRequest
	if err := c.ShouldBind(&req); err != nil {
		respondBindError(c, err)
		return
	}

	videoPath, err := stageUpload(c, "videoFile")
	if err != nil {
		respondError(c, err)
		return
	}
	thumbnailPath, err := stageUpload(c, "thumbnail")
	if err != nil {
		respondError(c, err)
		return
	}
	if videoPath == "" {
		respondError(c, apperror.Validation("Video file is required"))
		return
	}
	if thumbnailPath == "" {
		respondError(c, apperror.Validation("Thumbnail file is required"))
		return
	}

	video, err := h.videoUsecase.Publish(c.Request.Context(), userID(c), req, videoPath, thumbnailPath)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, video, "Video published successfully")
}

func (h *VideoHandler) Details(c *gin.Context) {
	details, err := h.videoUsecase.Details(c.Request.Context(), c.Param("videoId"))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, details, "Video fetched successfully")
}

func (h *VideoHandler) Update(c *gin.Context) {
	var req dto.VideoUpdateRequest
	if err := c.ShouldBind(&req); err != nil {
		respondBindError(c, err)
		return
	}

	thumbnailPath, err := stageUpload(c, "thumbnail")
	if err != nil {
		respondError(c, err)
		return
	}

	video, err := h.videoUsecase.Update(c.Request.Context(), userID(c), c.Param("videoId"), req, thumbnailPath)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, video, "Video updated successfully")
}

func (h *VideoHandler) Delete(c *gin.Context) {
	if err := h.videoUsecase.Delete(c.Request.Context(), userID(c), c.Param("videoId")); err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, nil, "Video deleted successfully")
}

func (h *VideoHandler) TogglePublish(c *gin.Context) {
	video, err := h.videoUsecase.TogglePublish(c.Request.Context(), userID(c), c.Param("videoId"))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, video, "Publish state toggled successfully")
}

func (h *VideoHandler) RecordView(c *gin.Context) {
	if err := h.videoUsecase.RecordView(c.Request.Context(), userID(c), c.Param("videoId")); err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, nil, "View recorded successfully")
}
