package dto

type CommentRequest struct {
	Content string `json:"content" binding:"required"`
}

type TweetRequest struct {
	Content string `json:"content" binding:"required"`
}

type PlaylistRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

type PlaylistUpdateRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type PageRequest struct {
	Page  int `form:"page"`
	Limit int `form:"limit"`
}

// ResLiked reports the post-toggle state of a like.
type ResLiked struct {
	Liked bool `json:"liked"`
}

// ResSubscribed reports the post-toggle state of a subscription.
type ResSubscribed struct {
	Subscribed bool `json:"subscribed"`
}
