package pipeline_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/v2/bson"

	"vidtube/infrastructure/pipeline"
)

func TestBuilderAddIfSkipsAbsentParameters(t *testing.T) {
	called := false
	p := pipeline.New().
		AddIf(false, func() pipeline.Stage {
			called = true
			return pipeline.Match(bson.D{{Key: "never", Value: true}})
		}).
		Add(pipeline.Match(bson.D{{Key: "isPublished", Value: true}})).
		Build()

	assert.False(t, called, "thunk must not run for a skipped stage")
	assert.Len(t, p, 1)
	assert.Equal(t, "$match", p[0][0].Key)
}

func TestBuilderPreservesCallOrder(t *testing.T) {
	p := pipeline.New().
		AddIf(true, func() pipeline.Stage { return pipeline.Search("idx", "q", "title") }).
		Add(pipeline.Match(bson.D{{Key: "isPublished", Value: true}})).
		Add(pipeline.Sort("createdAt", false)).
		Build()

	assert.Equal(t, "$search", p[0][0].Key)
	assert.Equal(t, "$match", p[1][0].Key)
	assert.Equal(t, "$sort", p[2][0].Key)
}

func TestBuilderBuildReturnsFreshSlice(t *testing.T) {
	b := pipeline.New().Add(pipeline.Sort("createdAt", false))
	first := b.Build()

	b.Add(pipeline.Limit(5))
	second := b.Build()

	assert.Len(t, first, 1)
	assert.Len(t, second, 2)
}

func TestBuilderLen(t *testing.T) {
	b := pipeline.New()
	assert.Equal(t, 0, b.Len())

	b.Add(pipeline.Skip(0), pipeline.Limit(10))
	assert.Equal(t, 2, b.Len())
}
