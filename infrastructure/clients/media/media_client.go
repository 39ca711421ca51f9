// Package media uploads local artifacts to the external storage service and
// returns their public URLs. The service also probes video duration.
package media

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"vidtube/domain/model"
	"vidtube/domain/repository"
	"vidtube/infrastructure/logger"

	"github.com/google/uuid"
)

type Config struct {
	UploadURL string
	APIKey    string
	Timeout   time.Duration
}

type Client struct {
	httpClient *http.Client
	uploadURL  string
	apiKey     string
}

func NewClient(cfg Config) repository.IMediaStorage {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 60 * time.Second
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		uploadURL:  cfg.UploadURL,
		apiKey:     cfg.APIKey,
	}
}

// StagePath names a unique staging location for an incoming upload.
func StagePath(filename string) string {
	return filepath.Join(os.TempDir(), fmt.Sprintf("vidtube-%s%s", uuid.NewString(), filepath.Ext(filename)))
}

// Upload posts the local artifact to the storage service. The artifact is
// removed on both the success and failure path; the upload itself is best
// effort and the caller decides what a nil result means.
func (c *Client) Upload(ctx context.Context, localPath string) (*model.UploadResult, error) {
	defer func() {
		if err := os.Remove(localPath); err != nil && !os.IsNotExist(err) {
			logger.GetLogger().WithField("error", err).Warn("Error while removing temp upload artifact")
		}
	}()

	f, err := os.Open(localPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", filepath.Base(localPath))
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(part, f); err != nil {
		return nil, err
	}
	if err := writer.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.uploadURL, &body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while uploading media")
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK && res.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("media upload failed with status %d", res.StatusCode)
	}

	var result model.UploadResult
	if err := json.NewDecoder(res.Body).Decode(&result); err != nil {
		return nil, err
	}
	return &result, nil
}
