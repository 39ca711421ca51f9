package persistence_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"vidtube/domain/dto"
	"vidtube/infrastructure/persistence"
)

func stageKeys(p mongo.Pipeline) []string {
	keys := make([]string, 0, len(p))
	for _, stage := range p {
		keys = append(keys, stage[0].Key)
	}
	return keys
}

func TestVideoListPipelineMinimalQuery(t *testing.T) {
	p := persistence.VideoListPipeline(dto.VideoListQuery{Page: 1, Limit: 10})

	assert.Equal(t, []string{"$match", "$sort", "$lookup", "$unwind", "$facet"}, stageKeys(p))

	// The only match is the mandatory published filter.
	filter := p[0][0].Value.(bson.D)
	assert.Equal(t, bson.D{{Key: "isPublished", Value: true}}, filter)
}

func TestVideoListPipelineWithSearchAndOwner(t *testing.T) {
	owner, err := bson.ObjectIDFromHex("65f1a2b3c4d5e6f7a8b9c0d1")
	require.NoError(t, err)

	p := persistence.VideoListPipeline(dto.VideoListQuery{
		Page:  1,
		Limit: 10,
		Query: "gophers",
		Owner: owner,
	})

	// Search always precedes the owner filter, which precedes the
	// published filter.
	assert.Equal(t, []string{"$search", "$match", "$match", "$sort", "$lookup", "$unwind", "$facet"}, stageKeys(p))

	ownerFilter := p[1][0].Value.(bson.D)
	assert.Equal(t, bson.D{{Key: "owner", Value: owner}}, ownerFilter)
}

func TestVideoListPipelineDefaultSortIsNewestFirst(t *testing.T) {
	p := persistence.VideoListPipeline(dto.VideoListQuery{Page: 1, Limit: 10})

	var sortSpec bson.D
	for _, stage := range p {
		if stage[0].Key == "$sort" {
			sortSpec = stage[0].Value.(bson.D)
		}
	}
	require.NotNil(t, sortSpec)
	assert.Equal(t, "createdAt", sortSpec[0].Key)
	assert.Equal(t, -1, sortSpec[0].Value)
}

func TestVideoListPipelineCustomSort(t *testing.T) {
	p := persistence.VideoListPipeline(dto.VideoListQuery{
		Page:     1,
		Limit:    10,
		SortBy:   "views",
		SortType: "asc",
	})

	var sortSpec bson.D
	for _, stage := range p {
		if stage[0].Key == "$sort" {
			sortSpec = stage[0].Value.(bson.D)
		}
	}
	require.NotNil(t, sortSpec)
	assert.Equal(t, bson.D{
		{Key: "views", Value: 1},
		{Key: "_id", Value: 1},
	}, sortSpec)
}

func TestVideoListPipelineUnwindDropsOrphanedOwners(t *testing.T) {
	p := persistence.VideoListPipeline(dto.VideoListQuery{Page: 1, Limit: 10})

	var unwind any
	for _, stage := range p {
		if stage[0].Key == "$unwind" {
			unwind = stage[0].Value
		}
	}
	// Plain field-path form: documents with an empty ownerDetails array
	// are dropped, not preserved.
	assert.Equal(t, "$ownerDetails", unwind)
}
