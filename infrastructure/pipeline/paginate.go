package pipeline

import (
	"context"

	"vidtube/domain/dto"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// NormalizePage clamps page and limit to their minimums, substituting the
// defaults for zero values.
func NormalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	return page, limit
}

// Paginate is the terminal stage of a paginated pipeline: one facet slices
// the requested page, the other counts every match. A page past the end
// simply produces an empty items facet.
func Paginate(page, limit int) Stage {
	skip := int64(page-1) * int64(limit)
	return Stage{{Key: "$facet", Value: bson.D{
		{Key: "items", Value: bson.A{
			Skip(skip),
			Limit(int64(limit)),
		}},
		{Key: "total", Value: bson.A{
			Count("count"),
		}},
	}}}
}

type facetResult[T any] struct {
	Items []T `bson:"items"`
	Total []struct {
		Count int64 `bson:"count"`
	} `bson:"total"`
}

// DecodePage reads the single facet document off the cursor and shapes it
// into the page envelope. An empty total facet means zero matches.
func DecodePage[T any](ctx context.Context, cursor *mongo.Cursor, page, limit int) (*dto.Page[T], error) {
	defer cursor.Close(ctx)

	var results []facetResult[T]
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return dto.NewPage[T](nil, 0, page, limit), nil
	}
	var total int64
	if len(results[0].Total) > 0 {
		total = results[0].Total[0].Count
	}
	return dto.NewPage(results[0].Items, total, page, limit), nil
}
