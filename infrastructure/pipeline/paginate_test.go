package pipeline_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/v2/bson"

	"vidtube/infrastructure/pipeline"
)

func TestNormalizePageDefaults(t *testing.T) {
	page, limit := pipeline.NormalizePage(0, 0)
	assert.Equal(t, pipeline.DefaultPage, page)
	assert.Equal(t, pipeline.DefaultLimit, limit)

	page, limit = pipeline.NormalizePage(-3, -1)
	assert.Equal(t, 1, page)
	assert.Equal(t, 10, limit)

	page, limit = pipeline.NormalizePage(4, 25)
	assert.Equal(t, 4, page)
	assert.Equal(t, 25, limit)
}

func TestPaginateFacetShape(t *testing.T) {
	stage := pipeline.Paginate(3, 10)

	assert.Equal(t, "$facet", stage[0].Key)
	facets := stage[0].Value.(bson.D)

	items := facets[0].Value.(bson.A)
	assert.Equal(t, bson.D{{Key: "$skip", Value: int64(20)}}, bson.D(items[0].(pipeline.Stage)))
	assert.Equal(t, bson.D{{Key: "$limit", Value: int64(10)}}, bson.D(items[1].(pipeline.Stage)))

	total := facets[1].Value.(bson.A)
	assert.Equal(t, bson.D{{Key: "$count", Value: "count"}}, bson.D(total[0].(pipeline.Stage)))
}

func TestPaginateFirstPageSkipsNothing(t *testing.T) {
	stage := pipeline.Paginate(1, 10)

	facets := stage[0].Value.(bson.D)
	items := facets[0].Value.(bson.A)
	assert.Equal(t, int64(0), items[0].(pipeline.Stage)[0].Value)
}
