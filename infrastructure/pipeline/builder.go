package pipeline

import "go.mongodb.org/mongo-driver/v2/mongo"

// Builder assembles an ordered stage sequence. Optional stages are appended
// through AddIf so an absent parameter never emits a no-op stage.
type Builder struct {
	stages []Stage
}

func New() *Builder {
	return &Builder{}
}

// Add appends stages unconditionally, preserving call order.
func (b *Builder) Add(stages ...Stage) *Builder {
	b.stages = append(b.stages, stages...)
	return b
}

// AddIf appends the stage produced by make only when cond holds. make is a
// thunk so callers don't pay for building skipped stages.
func (b *Builder) AddIf(cond bool, make func() Stage) *Builder {
	if cond {
		b.stages = append(b.stages, make())
	}
	return b
}

// Len reports the number of stages appended so far.
func (b *Builder) Len() int {
	return len(b.stages)
}

// Build returns the composed pipeline as a fresh slice; later Builder use
// does not mutate previously built pipelines.
func (b *Builder) Build() mongo.Pipeline {
	out := make(mongo.Pipeline, len(b.stages))
	copy(out, b.stages)
	return out
}
