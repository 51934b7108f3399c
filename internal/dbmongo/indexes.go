package dbmongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// IndexPlan lists the indexes each collection needs. The unique ones back the
// toggle operations and account identity.
func IndexPlan() map[string][]mongo.IndexModel {
	likeTarget := func(field string) mongo.IndexModel {
		return mongo.IndexModel{
			Keys: bson.D{{Key: field, Value: 1}, {Key: "likedBy", Value: 1}},
			Options: options.Index().
				SetName("uniq_" + field + "_likedBy").
				SetUnique(true).
				SetPartialFilterExpression(bson.M{field: bson.M{"$exists": true}}),
		}
	}

	return map[string][]mongo.IndexModel{
		UsersCollection: {
			{Keys: bson.D{{Key: "username", Value: 1}}, Options: options.Index().SetName("uniq_username").SetUnique(true)},
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetName("uniq_email").SetUnique(true)},
		},
		VideosCollection: {
			{Keys: bson.D{{Key: "owner", Value: 1}, {Key: "isPublished", Value: 1}, {Key: "createdAt", Value: -1}}},
			{Keys: bson.D{{Key: "isPublished", Value: 1}, {Key: "createdAt", Value: -1}}},
		},
		CommentsCollection: {
			{Keys: bson.D{{Key: "video", Value: 1}, {Key: "createdAt", Value: -1}}},
		},
		LikesCollection: {
			likeTarget("video"),
			likeTarget("comment"),
			likeTarget("tweet"),
			{Keys: bson.D{{Key: "likedBy", Value: 1}, {Key: "createdAt", Value: -1}}},
		},
		TweetsCollection: {
			{Keys: bson.D{{Key: "owner", Value: 1}, {Key: "createdAt", Value: -1}}},
		},
		PlaylistsCollection: {
			{Keys: bson.D{{Key: "owner", Value: 1}, {Key: "createdAt", Value: -1}}},
		},
		SubscriptionsCollection: {
			{Keys: bson.D{{Key: "subscriber", Value: 1}, {Key: "channel", Value: 1}}, Options: options.Index().SetName("uniq_subscriber_channel").SetUnique(true)},
			{Keys: bson.D{{Key: "channel", Value: 1}, {Key: "createdAt", Value: -1}}},
			{Keys: bson.D{{Key: "subscriber", Value: 1}, {Key: "createdAt", Value: -1}}},
		},
	}
}

// EnsureIndexes creates every index in IndexPlan. CreateMany is idempotent for
// identical definitions.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	for collection, models := range IndexPlan() {
		if _, err := db.Collection(collection).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("create indexes on %s: %w", collection, err)
		}
	}
	return nil
}
