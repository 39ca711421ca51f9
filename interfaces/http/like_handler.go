package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"vidtube/usecase"
)

type ILikeHandler interface {
	ToggleVideo(c *gin.Context)
	ToggleComment(c *gin.Context)
	ToggleTweet(c *gin.Context)
	LikedVideos(c *gin.Context)
}

type LikeHandler struct {
	likeUsecase usecase.ILikeUsecase
}

func NewLikeHandler(likeUsecase usecase.ILikeUsecase) ILikeHandler {
	return &LikeHandler{likeUsecase: likeUsecase}
}

func (h *LikeHandler) ToggleVideo(c *gin.Context) {
	res, err := h.likeUsecase.ToggleVideo(c.Request.Context(), userID(c), c.Param("videoId"))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, res, "Video like toggled successfully")
}

func (h *LikeHandler) ToggleComment(c *gin.Context) {
	res, err := h.likeUsecase.ToggleComment(c.Request.Context(), userID(c), c.Param("commentId"))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, res, "Comment like toggled successfully")
}

func (h *LikeHandler) ToggleTweet(c *gin.Context) {
	res, err := h.likeUsecase.ToggleTweet(c.Request.Context(), userID(c), c.Param("tweetId"))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, res, "Tweet like toggled successfully")
}

func (h *LikeHandler) LikedVideos(c *gin.Context) {
	videos, err := h.likeUsecase.LikedVideos(c.Request.Context(), userID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, videos, "Liked videos fetched successfully")
}
