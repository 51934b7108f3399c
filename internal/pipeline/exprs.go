package pipeline

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func ref(path string) string { return "$" + path }

func orEmpty(path string) bson.M {
	return bson.M{"$ifNull": bson.A{ref(path), bson.A{}}}
}

// Size counts the elements of an array field; a missing array counts as zero.
func Size(path string) bson.M {
	return bson.M{"$size": orEmpty(path)}
}

// ContainsID is true when id appears in the array at path. Paths through an
// array of documents ("subscribers.subscriber") resolve to the array of
// that field's values.
func ContainsID(id primitive.ObjectID, path string) interface{} {
	if id.IsZero() {
		return false
	}
	return bson.M{"$in": bson.A{id, orEmpty(path)}}
}

// Not negates a stored boolean.
func Not(path string) bson.M {
	return bson.M{"$not": bson.A{ref(path)}}
}

// OrderedByIDs rebuilds joined documents in the order of the id array at
// idsPath. A $lookup returns matches in collection order, not reference
// order; ids with no matching document are dropped.
func OrderedByIDs(idsPath, joinedPath string) bson.M {
	pick := bson.M{"$first": bson.M{"$filter": bson.M{
		"input": ref(joinedPath),
		"as":    "doc",
		"cond":  bson.M{"$eq": bson.A{"$$doc._id", "$$id"}},
	}}}

	return bson.M{"$filter": bson.M{
		"input": bson.M{"$map": bson.M{
			"input": orEmpty(idsPath),
			"as":    "id",
			"in":    bson.M{"$ifNull": bson.A{pick, nil}},
		}},
		"as":   "doc",
		"cond": bson.M{"$ne": bson.A{"$$doc", nil}},
	}}
}

// TogglePublish is the update pipeline that flips isPublished in one write.
func TogglePublish() bson.A {
	return bson.A{
		bson.M{"$set": bson.M{
			"isPublished": Not("isPublished"),
			"updatedAt":   "$$NOW",
		}},
	}
}
