package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"vidtube/domain/apperror"
	"vidtube/domain/dto"
	"vidtube/domain/model"
	"vidtube/infrastructure/configuration"
	"vidtube/usecase"
)

type IUserHandler interface {
	Register(c *gin.Context)
	Login(c *gin.Context)
	Logout(c *gin.Context)
	Refresh(c *gin.Context)
	ChangePassword(c *gin.Context)
	CurrentUser(c *gin.Context)
	UpdateAccount(c *gin.Context)
	UpdateAvatar(c *gin.Context)
	UpdateCover(c *gin.Context)
	ChannelProfile(c *gin.Context)
	WatchHistory(c *gin.Context)
}

type UserHandler struct {
	userUsecase usecase.IUserUsecase
}

func NewUserHandler(userUsecase usecase.IUserUsecase) IUserHandler {
	return &UserHandler{userUsecase: userUsecase}
}

func (h *UserHandler) Register(c *gin.Context) {
	var req model.ReqRegister
	if err := c.ShouldBind(&req); err != nil {
		respondBindError(c, err)
		return
	}

	avatarPath, err := stageUpload(c, "avatar")
	if err != nil {
		respondError(c, err)
		return
	}
	coverPath, err := stageUpload(c, "coverImage")
	if err != nil {
		respondError(c, err)
		return
	}

	user, err := h.userUsecase.Register(c.Request.Context(), req, avatarPath, coverPath)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, user, "User registered successfully")
}

func (h *UserHandler) Login(c *gin.Context) {
	var req model.ReqLogin
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	res, err := h.userUsecase.Login(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	setAuthCookies(c, res.AccessToken, res.RefreshToken)
	respond(c, http.StatusOK, res, "User logged in successfully")
}

func (h *UserHandler) Logout(c *gin.Context) {
	if err := h.userUsecase.Logout(c.Request.Context(), userID(c)); err != nil {
		respondError(c, err)
		return
	}
	clearAuthCookies(c)
	respond(c, http.StatusOK, nil, "User logged out successfully")
}

func (h *UserHandler) Refresh(c *gin.Context) {
	var req dto.RefreshRequest
	// The token may arrive in the body or as the cookie set at login.
	_ = c.ShouldBindJSON(&req)
	if req.RefreshToken == "" {
		if cookie, err := c.Cookie("refreshToken"); err == nil {
			req.RefreshToken = cookie
		}
	}

	res, err := h.userUsecase.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		respondError(c, err)
		return
	}

	setAuthCookies(c, res.AccessToken, res.RefreshToken)
	respond(c, http.StatusOK, res, "Access token refreshed")
}

func (h *UserHandler) ChangePassword(c *gin.Context) {
	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	if err := h.userUsecase.ChangePassword(c.Request.Context(), userID(c), req); err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, nil, "Password changed successfully")
}

func (h *UserHandler) CurrentUser(c *gin.Context) {
	user, err := h.userUsecase.CurrentUser(c.Request.Context(), userID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, user, "Current user fetched successfully")
}

func (h *UserHandler) UpdateAccount(c *gin.Context) {
	var req dto.UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	user, err := h.userUsecase.UpdateAccount(c.Request.Context(), userID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, user, "Account details updated successfully")
}

func (h *UserHandler) UpdateAvatar(c *gin.Context) {
	h.updateImage(c, "avatar", "Avatar updated successfully", h.userUsecase.UpdateAvatar)
}

func (h *UserHandler) UpdateCover(c *gin.Context) {
	h.updateImage(c, "coverImage", "Cover image updated successfully", h.userUsecase.UpdateCover)
}

func (h *UserHandler) updateImage(c *gin.Context, field, message string, update func(ctx context.Context, userID, path string) (*model.User, error)) {
	path, err := stageUpload(c, field)
	if err != nil {
		respondError(c, err)
		return
	}
	if path == "" {
		respondError(c, apperror.Validation("Image file is required"))
		return
	}

	user, err := update(c.Request.Context(), userID(c), path)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, user, message)
}

func (h *UserHandler) ChannelProfile(c *gin.Context) {
	profile, err := h.userUsecase.ChannelProfile(c.Request.Context(), c.Param("username"), userID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, profile, "Channel profile fetched successfully")
}

func (h *UserHandler) WatchHistory(c *gin.Context) {
	history, err := h.userUsecase.WatchHistory(c.Request.Context(), userID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, history, "Watch history fetched successfully")
}

func setAuthCookies(c *gin.Context, accessToken, refreshToken string) {
	app := configuration.C.App
	c.SetCookie("accessToken", accessToken, app.AccessTokenTTLMinutes*60, "/", "", app.CookieSecure, true)
	c.SetCookie("refreshToken", refreshToken, app.RefreshTokenTTLHours*3600, "/", "", app.CookieSecure, true)
}

func clearAuthCookies(c *gin.Context) {
	secure := configuration.C.App.CookieSecure
	c.SetCookie("accessToken", "", -1, "/", "", secure, true)
	c.SetCookie("refreshToken", "", -1, "/", "", secure, true)
}
