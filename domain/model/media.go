package model

// UploadResult is what the external media storage returns for a successful
// upload: a public URL and, for video files, the duration in seconds.
type UploadResult struct {
	URL      string  `json:"url"`
	Duration float64 `json:"duration"`
}
