package dashboard

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"vidtube/internal/dbmongo"
	"vidtube/internal/pagination"
	"vidtube/internal/pipeline"
	"vidtube/internal/query"
)

// VideoTotals is the $group output over one channel's videos.
type VideoTotals struct {
	Videos int64 `bson:"videos"`
	Views  int64 `bson:"views"`
}

type DashboardRepository interface {
	ChannelExists(ctx context.Context, channel primitive.ObjectID) (bool, error)
	SubscriberCount(ctx context.Context, channel primitive.ObjectID) (int64, error)
	VideoTotals(ctx context.Context, channel primitive.ObjectID) (VideoTotals, error)
	// LikeCount counts likes on every video the channel owns.
	LikeCount(ctx context.Context, channel primitive.ObjectID) (int64, error)
	VideoStats(ctx context.Context, channel primitive.ObjectID) ([]dbmongo.VideoStat, error)
	ChannelVideos(ctx context.Context, listing query.Listing) (*pagination.Page[dbmongo.VideoRow], error)
}

type dashboardRepository struct {
	users         *mongo.Collection
	videos        *mongo.Collection
	subscriptions *mongo.Collection
}

func NewDashboardRepository(db *dbmongo.MongoClient) DashboardRepository {
	return &dashboardRepository{
		users:         db.Collection(dbmongo.UsersCollection),
		videos:        db.Collection(dbmongo.VideosCollection),
		subscriptions: db.Collection(dbmongo.SubscriptionsCollection),
	}
}

func (r *dashboardRepository) ChannelExists(ctx context.Context, channel primitive.ObjectID) (bool, error) {
	n, err := r.users.CountDocuments(ctx, bson.M{"_id": channel}, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("count users: %w", err)
	}
	return n > 0, nil
}

func (r *dashboardRepository) SubscriberCount(ctx context.Context, channel primitive.ObjectID) (int64, error) {
	n, err := r.subscriptions.CountDocuments(ctx, bson.M{"channel": channel})
	if err != nil {
		return 0, fmt.Errorf("count subscribers: %w", err)
	}
	return n, nil
}

func (r *dashboardRepository) VideoTotals(ctx context.Context, channel primitive.ObjectID) (VideoTotals, error) {
	stages := mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "owner", Value: channel}}}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "videos", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "views", Value: bson.D{{Key: "$sum", Value: "$views"}}},
		}}},
	}

	var totals VideoTotals
	if err := r.aggregateOne(ctx, stages, &totals); err != nil {
		return VideoTotals{}, fmt.Errorf("video totals: %w", err)
	}
	return totals, nil
}

func (r *dashboardRepository) LikeCount(ctx context.Context, channel primitive.ObjectID) (int64, error) {
	stages := mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "owner", Value: channel}}}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: dbmongo.LikesCollection},
			{Key: "localField", Value: "_id"},
			{Key: "foreignField", Value: "video"},
			{Key: "as", Value: "likes"},
		}}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "likes", Value: bson.D{{Key: "$sum", Value: bson.D{{Key: "$size", Value: "$likes"}}}}},
		}}},
	}

	var out struct {
		Likes int64 `bson:"likes"`
	}
	if err := r.aggregateOne(ctx, stages, &out); err != nil {
		return 0, fmt.Errorf("like count: %w", err)
	}
	return out.Likes, nil
}

// aggregateOne decodes the single $group row into dst, leaving dst zeroed
// when the channel has no videos.
func (r *dashboardRepository) aggregateOne(ctx context.Context, stages mongo.Pipeline, dst interface{}) error {
	cursor, err := r.videos.Aggregate(ctx, stages)
	if err != nil {
		return err
	}
	defer cursor.Close(ctx)

	if !cursor.Next(ctx) {
		return cursor.Err()
	}
	return cursor.Decode(dst)
}

// videoStatsOptions lists newest first, with _id breaking createdAt ties.
func videoStatsOptions() *options.FindOptions {
	return options.Find().
		SetProjection(bson.M{"title": 1, "views": 1}).
		SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}})
}

func (r *dashboardRepository) VideoStats(ctx context.Context, channel primitive.ObjectID) ([]dbmongo.VideoStat, error) {
	cursor, err := r.videos.Find(ctx, bson.M{"owner": channel}, videoStatsOptions())
	if err != nil {
		return nil, fmt.Errorf("find channel videos: %w", err)
	}
	stats := []dbmongo.VideoStat{}
	if err := cursor.All(ctx, &stats); err != nil {
		return nil, fmt.Errorf("decode channel videos: %w", err)
	}
	return stats, nil
}

func (r *dashboardRepository) ChannelVideos(ctx context.Context, listing query.Listing) (*pagination.Page[dbmongo.VideoRow], error) {
	return pagination.Aggregate[dbmongo.VideoRow](ctx, r.videos, pipeline.ChannelVideos(listing.Match, listing.Sort), listing.Page)
}
