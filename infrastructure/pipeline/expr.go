package pipeline

import "go.mongodb.org/mongo-driver/v2/bson"

// Expression helpers for AddFields/Project specs.

// Size counts the elements of an array field ("$likes").
func Size(field string) bson.D {
	return bson.D{{Key: "$size", Value: field}}
}

// In reports whether value is present in the array field.
func In(value any, field string) bson.D {
	return bson.D{{Key: "$in", Value: bson.A{value, field}}}
}

// Cond is the classic if/then/else expression.
func Cond(ifExpr, then, els any) bson.D {
	return bson.D{{Key: "$cond", Value: bson.D{
		{Key: "if", Value: ifExpr},
		{Key: "then", Value: then},
		{Key: "else", Value: els},
	}}}
}

// First extracts the first element of an array field; used to flatten a
// 0-or-1 element join without dropping the document.
func First(field string) bson.D {
	return bson.D{{Key: "$first", Value: field}}
}

// Last extracts the last element of an array field.
func Last(field string) bson.D {
	return bson.D{{Key: "$last", Value: field}}
}

// Sum adds up expr over the group or array.
func Sum(expr any) bson.D {
	return bson.D{{Key: "$sum", Value: expr}}
}
