package tweet

import (
	"context"
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

type TweetRepository interface {
	Create(ctx context.Context, tweet *dbmongo.Tweet) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*dbmongo.Tweet, error)
	ListForUser(ctx context.Context, ownerID, viewer primitive.ObjectID, params pagination.Params) (*pagination.Page[dbmongo.TweetRow], error)
	UpdateContent(ctx context.Context, id primitive.ObjectID, content string) (*dbmongo.Tweet, error)
	// Delete removes the tweet and every like on it.
	Delete(ctx context.Context, id primitive.ObjectID) error
	UserExists(ctx context.Context, userID primitive.ObjectID) (bool, error)
}

type tweetRepository struct {
	tweets *mongo.Collection
	likes  *mongo.Collection
	users  *mongo.Collection
}

func NewTweetRepository(db *dbmongo.MongoClient) TweetRepository {
	return &tweetRepository{
		tweets: db.Collection(dbmongo.TweetsCollection),
		likes:  db.Collection(dbmongo.LikesCollection),
		users:  db.Collection(dbmongo.UsersCollection),
	}
}

func (r *tweetRepository) Create(ctx context.Context, tweet *dbmongo.Tweet) error {
	now := time.Now().UTC()
	tweet.ID = primitive.NewObjectID()
	tweet.CreatedAt, tweet.UpdatedAt = now, now

	if _, err := r.tweets.InsertOne(ctx, tweet); err != nil {
		return fmt.Errorf("insert tweet: %w", dbmongo.Translate(err))
	}
	return nil
}

func (r *tweetRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*dbmongo.Tweet, error) {
	var tweet dbmongo.Tweet
	if err := r.tweets.FindOne(ctx, bson.M{"_id": id}).Decode(&tweet); err != nil {
		return nil, dbmongo.Translate(err)
	}
	return &tweet, nil
}

func (r *tweetRepository) ListForUser(ctx context.Context, ownerID, viewer primitive.ObjectID, params pagination.Params) (*pagination.Page[dbmongo.TweetRow], error) {
	return pagination.Aggregate[dbmongo.TweetRow](ctx, r.tweets, pipeline.UserTweets(ownerID, viewer), params)
}

func (r *tweetRepository) UpdateContent(ctx context.Context, id primitive.ObjectID, content string) (*dbmongo.Tweet, error) {
	update := bson.M{"$set": bson.M{"content": content, "updatedAt": time.Now().UTC()}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var tweet dbmongo.Tweet
	if err := r.tweets.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&tweet); err != nil {
		return nil, dbmongo.Translate(err)
	}
	return &tweet, nil
}

func (r *tweetRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.tweets.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete tweet: %w", err)
	}
	if res.DeletedCount == 0 {
		return dbmongo.ErrNotFound
	}
	if _, err := r.likes.DeleteMany(ctx, bson.M{"tweet": id}); err != nil {
		return fmt.Errorf("delete tweet likes: %w", err)
	}
	return nil
}

func (r *tweetRepository) UserExists(ctx context.Context, userID primitive.ObjectID) (bool, error) {
	n, err := r.users.CountDocuments(ctx, bson.M{"_id": userID}, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("count users: %w", err)
	}
	return n > 0, nil
}
