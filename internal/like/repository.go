package like

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"vidtube/internal/dbmongo"
	"vidtube/internal/pagination"
	"vidtube/internal/pipeline"
)

// Target is the kind of document a like points at. Its value is the like
// field that holds the reference.
type Target string

const (
	TargetVideo   Target = "video"
	TargetComment Target = "comment"
	TargetTweet   Target = "tweet"
)

func (t Target) IsValid() bool {
	return t == TargetVideo || t == TargetComment || t == TargetTweet
}

func (t Target) collection() string {
	switch t {
	case TargetVideo:
		return dbmongo.VideosCollection
	case TargetComment:
		return dbmongo.CommentsCollection
	default:
		return dbmongo.TweetsCollection
	}
}

type LikeRepository interface {
	// Toggle flips the like of userID on the target and reports whether it
	// is now present.
	Toggle(ctx context.Context, target Target, targetID, userID primitive.ObjectID) (bool, error)
	TargetExists(ctx context.Context, target Target, targetID primitive.ObjectID) (bool, error)
	ListForTarget(ctx context.Context, target Target, targetID primitive.ObjectID, params pagination.Params) (*pagination.Page[dbmongo.LikeRow], error)
	LikedVideos(ctx context.Context, userID primitive.ObjectID, params pagination.Params) (*pagination.Page[dbmongo.LikedVideoRow], error)
}

type likeRepository struct {
	db    *dbmongo.MongoClient
	likes *mongo.Collection
}

func NewLikeRepository(db *dbmongo.MongoClient) LikeRepository {
	return &likeRepository{db: db, likes: db.Collection(dbmongo.LikesCollection)}
}

// Toggle deletes the pair if present, otherwise inserts it. A concurrent
// toggle that inserted first surfaces as a duplicate key and still means
// the like is present.
func (r *likeRepository) Toggle(ctx context.Context, target Target, targetID, userID primitive.ObjectID) (bool, error) {
	pair := bson.M{string(target): targetID, "likedBy": userID}

	res, err := r.likes.DeleteOne(ctx, pair)
	if err != nil {
		return false, fmt.Errorf("delete like: %w", err)
	}
	if res.DeletedCount > 0 {
		return false, nil
	}

	_, err = r.likes.InsertOne(ctx, newLike(target, targetID, userID))
	if err != nil {
		if errors.Is(dbmongo.Translate(err), dbmongo.ErrDuplicate) {
			return true, nil
		}
		return false, fmt.Errorf("insert like: %w", err)
	}
	return true, nil
}

func newLike(target Target, targetID, userID primitive.ObjectID) *dbmongo.Like {
	now := time.Now().UTC()
	like := &dbmongo.Like{
		ID:        primitive.NewObjectID(),
		LikedBy:   userID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	id := targetID
	switch target {
	case TargetVideo:
		like.Video = &id
	case TargetComment:
		like.Comment = &id
	case TargetTweet:
		like.Tweet = &id
	}
	return like
}

func (r *likeRepository) TargetExists(ctx context.Context, target Target, targetID primitive.ObjectID) (bool, error) {
	n, err := r.db.Collection(target.collection()).CountDocuments(ctx, bson.M{"_id": targetID}, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("count %s: %w", target, err)
	}
	return n > 0, nil
}

func (r *likeRepository) ListForTarget(ctx context.Context, target Target, targetID primitive.ObjectID, params pagination.Params) (*pagination.Page[dbmongo.LikeRow], error) {
	return pagination.Aggregate[dbmongo.LikeRow](ctx, r.likes, pipeline.TargetLikes(string(target), targetID), params)
}

func (r *likeRepository) LikedVideos(ctx context.Context, userID primitive.ObjectID, params pagination.Params) (*pagination.Page[dbmongo.LikedVideoRow], error) {
	return pagination.Aggregate[dbmongo.LikedVideoRow](ctx, r.likes, pipeline.LikedVideos(userID), params)
}
