package usecase

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/golang-jwt/jwt"

	"vidtube/domain/apperror"
	"vidtube/domain/dto"
	"vidtube/domain/model"
	"vidtube/domain/repository"
	"vidtube/infrastructure/configuration"
	"vidtube/infrastructure/logger"
	"vidtube/infrastructure/utils"
)

type IUserUsecase interface {
	Register(ctx context.Context, req model.ReqRegister, avatarPath, coverPath string) (*model.User, error)
	Login(ctx context.Context, req model.ReqLogin) (*dto.ResLogin, error)
	Logout(ctx context.Context, userID string) error
	Refresh(ctx context.Context, refreshToken string) (*dto.ResRefresh, error)
	ChangePassword(ctx context.Context, userID string, req dto.ChangePasswordRequest) error
	CurrentUser(ctx context.Context, userID string) (*model.User, error)
	UpdateAccount(ctx context.Context, userID string, req dto.UpdateAccountRequest) (*model.User, error)
	UpdateAvatar(ctx context.Context, userID, localPath string) (*model.User, error)
	UpdateCover(ctx context.Context, userID, localPath string) (*model.User, error)
	ChannelProfile(ctx context.Context, username, viewerID string) (*model.ChannelProfile, error)
	WatchHistory(ctx context.Context, userID string) ([]model.VideoWithOwner, error)
}

type userUsecase struct {
	userRepository repository.IUser
	mediaStorage   repository.IMediaStorage
}

func NewUserUsecase(userRepository repository.IUser, mediaStorage repository.IMediaStorage) IUserUsecase {
	return &userUsecase{userRepository: userRepository, mediaStorage: mediaStorage}
}

func (u *userUsecase) Register(ctx context.Context, req model.ReqRegister, avatarPath, coverPath string) (*model.User, error) {
	if avatarPath == "" {
		return nil, apperror.Validation("Avatar file is required")
	}

	existing, err := u.userRepository.GetByUserNameOrEmail(ctx, req.Username, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.Conflict("User with email or username already exists")
	}

	avatar, err := u.mediaStorage.Upload(ctx, avatarPath)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while uploading avatar")
		return nil, apperror.Server("Failed to upload avatar")
	}

	var coverImage string
	if coverPath != "" {
		cover, err := u.mediaStorage.Upload(ctx, coverPath)
		if err != nil {
			logger.GetLogger().WithField("error", err).Error("Error while uploading cover image")
			return nil, apperror.Server("Failed to upload cover image")
		}
		coverImage = cover.URL
	}

	now := utils.GetCurrentTime()
	user := &model.User{
		Username:   req.Username,
		Email:      req.Email,
		FullName:   req.FullName,
		Avatar:     avatar.URL,
		CoverImage: coverImage,
		Password:   utils.HashPassword(req.Password),
		Role:       model.RoleUser,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	return u.userRepository.Create(ctx, user)
}

func (u *userUsecase) Login(ctx context.Context, req model.ReqLogin) (*dto.ResLogin, error) {
	if req.Username == "" && req.Email == "" {
		return nil, apperror.Validation("Username or email is required")
	}

	user, err := u.userRepository.GetByUserNameOrEmail(ctx, req.Username, req.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NotFound("User does not exist")
	}

	if user.Password != utils.HashPassword(req.Password) {
		return nil, apperror.Unauthorized("Invalid user credentials")
	}

	accessToken, refreshToken, err := u.issueTokenPair(ctx, user)
	if err != nil {
		return nil, err
	}

	return &dto.ResLogin{User: user, AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

func (u *userUsecase) Logout(ctx context.Context, userID string) error {
	id, err := utils.ParseObjectID(userID, "user id")
	if err != nil {
		return err
	}
	return u.userRepository.SetRefreshToken(ctx, id, "")
}

// Refresh rotates the token pair: the presented refresh token must match the
// one stored for the user, and a fresh pair replaces it.
func (u *userUsecase) Refresh(ctx context.Context, refreshToken string) (*dto.ResRefresh, error) {
	if refreshToken == "" {
		return nil, apperror.Unauthorized("Refresh token is required")
	}

	var claims model.UserClaims
	token, err := jwt.ParseWithClaims(refreshToken, &claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(configuration.C.App.RefreshSecretKey), nil
	})
	if err != nil || !token.Valid {
		return nil, apperror.Unauthorized("Invalid refresh token")
	}

	id, err := utils.ParseObjectID(claims.Issuer, "user id")
	if err != nil {
		return nil, apperror.Unauthorized("Invalid refresh token")
	}

	user, err := u.userRepository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.Unauthorized("Invalid refresh token")
	}
	if user.RefreshToken == "" || user.RefreshToken != refreshToken {
		return nil, apperror.Unauthorized("Refresh token is expired or used")
	}

	accessToken, newRefreshToken, err := u.issueTokenPair(ctx, user)
	if err != nil {
		return nil, err
	}
	return &dto.ResRefresh{AccessToken: accessToken, RefreshToken: newRefreshToken}, nil
}

func (u *userUsecase) ChangePassword(ctx context.Context, userID string, req dto.ChangePasswordRequest) error {
	id, err := utils.ParseObjectID(userID, "user id")
	if err != nil {
		return err
	}

	user, err := u.userRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return apperror.NotFound("User not found")
	}
	if user.Password != utils.HashPassword(req.OldPassword) {
		return apperror.Unauthorized("Old password is incorrect")
	}

	_, err = u.userRepository.UpdateFields(ctx, id, bson.D{
		{Key: "password", Value: utils.HashPassword(req.NewPassword)},
		{Key: "updatedAt", Value: utils.GetCurrentTime()},
	})
	return err
}

func (u *userUsecase) CurrentUser(ctx context.Context, userID string) (*model.User, error) {
	id, err := utils.ParseObjectID(userID, "user id")
	if err != nil {
		return nil, err
	}
	user, err := u.userRepository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NotFound("User not found")
	}
	return user, nil
}

func (u *userUsecase) UpdateAccount(ctx context.Context, userID string, req dto.UpdateAccountRequest) (*model.User, error) {
	id, err := utils.ParseObjectID(userID, "user id")
	if err != nil {
		return nil, err
	}
	user, err := u.userRepository.UpdateFields(ctx, id, bson.D{
		{Key: "fullName", Value: req.FullName},
		{Key: "email", Value: req.Email},
		{Key: "updatedAt", Value: utils.GetCurrentTime()},
	})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NotFound("User not found")
	}
	return user, nil
}

func (u *userUsecase) UpdateAvatar(ctx context.Context, userID, localPath string) (*model.User, error) {
	return u.updateImage(ctx, userID, localPath, "avatar")
}

func (u *userUsecase) UpdateCover(ctx context.Context, userID, localPath string) (*model.User, error) {
	return u.updateImage(ctx, userID, localPath, "coverImage")
}

func (u *userUsecase) updateImage(ctx context.Context, userID, localPath, field string) (*model.User, error) {
	id, err := utils.ParseObjectID(userID, "user id")
	if err != nil {
		return nil, err
	}

	uploaded, err := u.mediaStorage.Upload(ctx, localPath)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while uploading image")
		return nil, apperror.Server("Failed to upload image")
	}

	user, err := u.userRepository.UpdateFields(ctx, id, bson.D{
		{Key: field, Value: uploaded.URL},
		{Key: "updatedAt", Value: utils.GetCurrentTime()},
	})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NotFound("User not found")
	}
	return user, nil
}

func (u *userUsecase) ChannelProfile(ctx context.Context, username, viewerID string) (*model.ChannelProfile, error) {
	if username == "" {
		return nil, apperror.Validation("Username is required")
	}
	viewer, err := utils.ParseObjectID(viewerID, "user id")
	if err != nil {
		return nil, err
	}
	profile, err := u.userRepository.ChannelProfile(ctx, username, viewer)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, apperror.NotFound("Channel does not exist")
	}
	return profile, nil
}

func (u *userUsecase) WatchHistory(ctx context.Context, userID string) ([]model.VideoWithOwner, error) {
	id, err := utils.ParseObjectID(userID, "user id")
	if err != nil {
		return nil, err
	}
	return u.userRepository.WatchHistory(ctx, id)
}

func (u *userUsecase) issueTokenPair(ctx context.Context, user *model.User) (string, string, error) {
	now := utils.GetCurrentTime()
	app := configuration.C.App

	accessToken, err := utils.GenerateToken(map[string]interface{}{
		"iss":      user.ID.Hex(),
		"username": user.Username,
		"iat":      now.Unix(),
		"exp":      now.Add(time.Duration(app.AccessTokenTTLMinutes) * time.Minute).Unix(),
	}, app.SecretKey)
	if err != nil {
		return "", "", err
	}

	refreshToken, err := utils.GenerateToken(map[string]interface{}{
		"iss":      user.ID.Hex(),
		"username": user.Username,
		"iat":      now.Unix(),
		"exp":      now.Add(time.Duration(app.RefreshTokenTTLHours) * time.Hour).Unix(),
	}, app.RefreshSecretKey)
	if err != nil {
		return "", "", err
	}

	if err := u.userRepository.SetRefreshToken(ctx, user.ID, refreshToken); err != nil {
		return "", "", err
	}
	return accessToken, refreshToken, nil
}
