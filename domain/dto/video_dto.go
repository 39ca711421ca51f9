package dto

import "go.mongodb.org/mongo-driver/v2/bson"

// VideoListQuery carries the validated, optional list parameters. Owner is
// the zero ObjectID when no userId filter was supplied.
type VideoListQuery struct {
	Page     int
	Limit    int
	Query    string
	SortBy   string
	SortType string
	Owner    bson.ObjectID
}

// VideoListRequest is the raw query-string binding for the list endpoint.
type VideoListRequest struct {
	Page     int    `form:"page"`
	Limit    int    `form:"limit"`
	Query    string `form:"query"`
	SortBy   string `form:"sortBy"`
	SortType string `form:"sortType"`
	UserID   string `form:"userId"`
}

type VideoUpdateRequest struct {
	Title       string `form:"title" json:"title"`
	Description string `form:"description" json:"description"`
}

type VideoPublishRequest struct {
	Title       string `form:"title" binding:"required"`
	Description string `form:"description" binding:"required"`
}
