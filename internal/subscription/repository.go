package subscription

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

type SubscriptionRepository interface {
	// Toggle flips subscriber's subscription to channel and reports whether
	// it is now present.
	Toggle(ctx context.Context, subscriber, channel primitive.ObjectID) (bool, error)
	Subscribers(ctx context.Context, channel primitive.ObjectID, params pagination.Params) (*pagination.Page[dbmongo.SubscriberRow], error)
	SubscribedChannels(ctx context.Context, subscriber primitive.ObjectID, params pagination.Params) (*pagination.Page[dbmongo.SubscribedChannelRow], error)
	UserExists(ctx context.Context, userID primitive.ObjectID) (bool, error)
}

type subscriptionRepository struct {
	subscriptions *mongo.Collection
	users         *mongo.Collection
}

func NewSubscriptionRepository(db *dbmongo.MongoClient) SubscriptionRepository {
	return &subscriptionRepository{
		subscriptions: db.Collection(dbmongo.SubscriptionsCollection),
		users:         db.Collection(dbmongo.UsersCollection),
	}
}

// Toggle relies on the unique {subscriber, channel} index: a concurrent
// toggle that inserted first surfaces as a duplicate key.
func (r *subscriptionRepository) Toggle(ctx context.Context, subscriber, channel primitive.ObjectID) (bool, error) {
	pair := bson.M{"subscriber": subscriber, "channel": channel}

	res, err := r.subscriptions.DeleteOne(ctx, pair)
	if err != nil {
		return false, fmt.Errorf("delete subscription: %w", err)
	}
	if res.DeletedCount > 0 {
		return false, nil
	}

	now := time.Now().UTC()
	sub := &dbmongo.Subscription{
		ID:         primitive.NewObjectID(),
		Subscriber: subscriber,
		Channel:    channel,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if _, err := r.subscriptions.InsertOne(ctx, sub); err != nil {
		if errors.Is(dbmongo.Translate(err), dbmongo.ErrDuplicate) {
			return true, nil
		}
		return false, fmt.Errorf("insert subscription: %w", err)
	}
	return true, nil
}

func (r *subscriptionRepository) Subscribers(ctx context.Context, channel primitive.ObjectID, params pagination.Params) (*pagination.Page[dbmongo.SubscriberRow], error) {
	return pagination.Aggregate[dbmongo.SubscriberRow](ctx, r.subscriptions, pipeline.ChannelSubscribers(channel), params)
}

func (r *subscriptionRepository) SubscribedChannels(ctx context.Context, subscriber primitive.ObjectID, params pagination.Params) (*pagination.Page[dbmongo.SubscribedChannelRow], error) {
	return pagination.Aggregate[dbmongo.SubscribedChannelRow](ctx, r.subscriptions, pipeline.SubscribedChannels(subscriber), params)
}

func (r *subscriptionRepository) UserExists(ctx context.Context, userID primitive.ObjectID) (bool, error) {
	n, err := r.users.CountDocuments(ctx, bson.M{"_id": userID}, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("count users: %w", err)
	}
	return n > 0, nil
}
