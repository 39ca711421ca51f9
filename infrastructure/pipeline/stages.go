// Package pipeline builds Mongo aggregation pipelines out of typed stage
// constructors so stage ordering stays auditable and testable without a
// database.
package pipeline

import "go.mongodb.org/mongo-driver/v2/bson"

// Stage is one declarative aggregation operation.
type Stage = bson.D

// Match filters documents by the given predicate.
func Match(filter bson.D) Stage {
	return Stage{{Key: "$match", Value: filter}}
}

// Search is an Atlas full-text search stage over the given paths.
func Search(index, query string, paths ...string) Stage {
	return Stage{{Key: "$search", Value: bson.D{
		{Key: "index", Value: index},
		{Key: "text", Value: bson.D{
			{Key: "query", Value: query},
			{Key: "path", Value: paths},
		}},
	}}}
}

// Lookup is a left-outer join producing an array field named as. An optional
// sub-pipeline filters or projects the joined documents.
func Lookup(from, localField, foreignField, as string, sub ...Stage) Stage {
	spec := bson.D{
		{Key: "from", Value: from},
		{Key: "localField", Value: localField},
		{Key: "foreignField", Value: foreignField},
		{Key: "as", Value: as},
	}
	if len(sub) > 0 {
		spec = append(spec, bson.E{Key: "pipeline", Value: sub})
	}
	return Stage{{Key: "$lookup", Value: spec}}
}

// AddFields derives computed fields.
func AddFields(fields bson.D) Stage {
	return Stage{{Key: "$addFields", Value: fields}}
}

// Project includes, excludes or renames output fields.
func Project(spec bson.D) Stage {
	return Stage{{Key: "$project", Value: spec}}
}

// Sort orders by key with _id as the deterministic tie-break so equal key
// values keep a stable order across pages.
func Sort(key string, ascending bool) Stage {
	dir := -1
	if ascending {
		dir = 1
	}
	spec := bson.D{{Key: key, Value: dir}}
	if key != "_id" {
		spec = append(spec, bson.E{Key: "_id", Value: dir})
	}
	return Stage{{Key: "$sort", Value: spec}}
}

// SortOrDefault maps the client's sort parameters onto a Sort stage. The
// literal "asc" means ascending; any other supplied value means descending;
// no sortBy at all means newest-first by creation time.
func SortOrDefault(sortBy, sortType string) Stage {
	if sortBy == "" {
		return Sort("createdAt", false)
	}
	return Sort(sortBy, sortType == "asc")
}

// Unwind flattens a singleton array field into a plain object field.
// Documents whose array is empty are dropped; several callers rely on this
// to eliminate entities whose owner no longer exists.
func Unwind(field string) Stage {
	return Stage{{Key: "$unwind", Value: field}}
}

// Count collapses the stream into a single document holding the count.
func Count(name string) Stage {
	return Stage{{Key: "$count", Value: name}}
}

// Group groups documents by the given spec.
func Group(spec bson.D) Stage {
	return Stage{{Key: "$group", Value: spec}}
}

// ReplaceRoot promotes the given field to the document root.
func ReplaceRoot(field string) Stage {
	return Stage{{Key: "$replaceRoot", Value: bson.D{{Key: "newRoot", Value: field}}}}
}

func Skip(n int64) Stage {
	return Stage{{Key: "$skip", Value: n}}
}

func Limit(n int64) Stage {
	return Stage{{Key: "$limit", Value: n}}
}
