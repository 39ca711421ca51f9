package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"vidtube/domain/apperror"
	"vidtube/domain/dto"
	"vidtube/infrastructure/clients/media"
	"vidtube/infrastructure/logger"
)

const (
	ErrorUnmarshal = "Error while unmarshal"
)

func respond(c *gin.Context, status int, data any, message string) {
	c.JSON(status, dto.NewRes(status, data, message))
}

// respondError translates a failure into the uniform error envelope. Errors
// outside the taxonomy are logged and reported as 500 without leaking the
// internal message.
func respondError(c *gin.Context, err error) {
	if appErr, ok := apperror.AsError(err); ok {
		c.JSON(appErr.Code, dto.NewResError(appErr.Code, appErr.Message, appErr.Errs))
		return
	}
	logger.GetLogger().WithField("error", err).Error("Unhandled error")
	c.JSON(http.StatusInternalServerError, dto.NewResError(http.StatusInternalServerError, "Internal server error", nil))
}

func respondBindError(c *gin.Context, err error) {
	logger.GetLogger().WithField("error", err).Error(ErrorUnmarshal)
	c.JSON(http.StatusBadRequest, dto.NewResError(http.StatusBadRequest, "Invalid request payload", []string{err.Error()}))
}

// stageUpload saves the named multipart file to a temp location and returns
// its path. An absent file yields an empty path, not an error.
func stageUpload(c *gin.Context, field string) (string, error) {
	file, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return "", nil
		}
		return "", err
	}
	path := media.StagePath(file.Filename)
	if err := c.SaveUploadedFile(file, path); err != nil {
		return "", err
	}
	return path, nil
}

// userID reads the authenticated caller's id set by the auth middleware.
func userID(c *gin.Context) string {
	return c.GetString("user_id")
}
