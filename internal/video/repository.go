package video

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
	"vidtube/internal/query"
)

// Patch holds the video fields an owner may change. Nil or empty fields are
// left alone.
type Patch struct {
	Title       *string
	Description *string
	Thumbnail   string
}

func (p Patch) Empty() bool {
	return p.Title == nil && p.Description == nil && p.Thumbnail == ""
}

type VideoRepository interface {
	Create(ctx context.Context, video *dbmongo.Video) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*dbmongo.Video, error)
	FindRow(ctx context.Context, id primitive.ObjectID) (*dbmongo.VideoRow, error)
	List(ctx context.Context, listing query.Listing) (*pagination.Page[dbmongo.VideoRow], error)
	Update(ctx context.Context, id primitive.ObjectID, patch Patch) (*dbmongo.Video, error)
	TogglePublish(ctx context.Context, id primitive.ObjectID) (*dbmongo.Video, error)
	// RecordView counts a view and, for a signed-in viewer, moves the video to
	// the front of their watch history.
	RecordView(ctx context.Context, id, viewer primitive.ObjectID) error
	// Delete removes the video together with its likes, its comments and
	// their likes, and its playlist memberships.
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type videoRepository struct {
	videos    *mongo.Collection
	users     *mongo.Collection
	comments  *mongo.Collection
	likes     *mongo.Collection
	playlists *mongo.Collection
}

func NewVideoRepository(db *dbmongo.MongoClient) VideoRepository {
	return &videoRepository{
		videos:    db.Collection(dbmongo.VideosCollection),
		users:     db.Collection(dbmongo.UsersCollection),
		comments:  db.Collection(dbmongo.CommentsCollection),
		likes:     db.Collection(dbmongo.LikesCollection),
		playlists: db.Collection(dbmongo.PlaylistsCollection),
	}
}

func (r *videoRepository) Create(ctx context.Context, video *dbmongo.Video) error {
	now := time.Now().UTC()
	video.ID = primitive.NewObjectID()
	video.CreatedAt, video.UpdatedAt = now, now

	if _, err := r.videos.InsertOne(ctx, video); err != nil {
		return fmt.Errorf("insert video: %w", dbmongo.Translate(err))
	}
	return nil
}

func (r *videoRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*dbmongo.Video, error) {
	var video dbmongo.Video
	if err := r.videos.FindOne(ctx, bson.M{"_id": id}).Decode(&video); err != nil {
		return nil, dbmongo.Translate(err)
	}
	return &video, nil
}

func (r *videoRepository) FindRow(ctx context.Context, id primitive.ObjectID) (*dbmongo.VideoRow, error) {
	row, ok, err := pagination.First[dbmongo.VideoRow](ctx, r.videos, pipeline.VideoByID(id))
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, dbmongo.ErrNotFound
	}
	return &row, nil
}

func (r *videoRepository) List(ctx context.Context, listing query.Listing) (*pagination.Page[dbmongo.VideoRow], error) {
	return pagination.Aggregate[dbmongo.VideoRow](ctx, r.videos, pipeline.PublicVideos(listing.Match, listing.Sort), listing.Page)
}

func (r *videoRepository) Update(ctx context.Context, id primitive.ObjectID, patch Patch) (*dbmongo.Video, error) {
	set := bson.M{"updatedAt": time.Now().UTC()}
	if patch.Title != nil {
		set["title"] = *patch.Title
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}
	if patch.Thumbnail != "" {
		set["thumbnail"] = patch.Thumbnail
	}
	return r.findOneAndUpdate(ctx, id, bson.M{"$set": set})
}

func (r *videoRepository) TogglePublish(ctx context.Context, id primitive.ObjectID) (*dbmongo.Video, error) {
	return r.findOneAndUpdate(ctx, id, pipeline.TogglePublish())
}

func (r *videoRepository) findOneAndUpdate(ctx context.Context, id primitive.ObjectID, update interface{}) (*dbmongo.Video, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var video dbmongo.Video
	if err := r.videos.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&video); err != nil {
		return nil, dbmongo.Translate(err)
	}
	return &video, nil
}

func (r *videoRepository) RecordView(ctx context.Context, id, viewer primitive.ObjectID) error {
	res, err := r.videos.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$inc": bson.M{"views": 1}})
	if err != nil {
		return fmt.Errorf("increment views: %w", err)
	}
	if res.MatchedCount == 0 {
		return dbmongo.ErrNotFound
	}
	if viewer.IsZero() {
		return nil
	}

	if _, err := r.users.UpdateOne(ctx, bson.M{"_id": viewer}, watchHistoryUpdate(id)); err != nil {
		return fmt.Errorf("record watch history: %w", err)
	}
	return nil
}

// watchHistoryUpdate puts id first, drops any older entry for it and keeps
// the newest dbmongo.WatchHistoryLimit entries.
func watchHistoryUpdate(id primitive.ObjectID) bson.A {
	rest := bson.M{"$filter": bson.M{
		"input": bson.M{"$ifNull": bson.A{"$watchHistory", bson.A{}}},
		"as":    "v",
		"cond":  bson.M{"$ne": bson.A{"$$v", id}},
	}}
	return bson.A{
		bson.M{"$set": bson.M{
			"watchHistory": bson.M{"$slice": bson.A{
				bson.M{"$concatArrays": bson.A{bson.A{id}, rest}},
				dbmongo.WatchHistoryLimit,
			}},
		}},
	}
}

func (r *videoRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.videos.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete video: %w", err)
	}
	if res.DeletedCount == 0 {
		return dbmongo.ErrNotFound
	}

	commentIDs, err := r.commentIDs(ctx, id)
	if err != nil {
		return err
	}
	if len(commentIDs) > 0 {
		if _, err := r.likes.DeleteMany(ctx, bson.M{"comment": bson.M{"$in": commentIDs}}); err != nil {
			return fmt.Errorf("delete comment likes: %w", err)
		}
		if _, err := r.comments.DeleteMany(ctx, bson.M{"video": id}); err != nil {
			return fmt.Errorf("delete comments: %w", err)
		}
	}
	if _, err := r.likes.DeleteMany(ctx, bson.M{"video": id}); err != nil {
		return fmt.Errorf("delete video likes: %w", err)
	}
	if _, err := r.playlists.UpdateMany(ctx,
		bson.M{"videos": id},
		bson.M{"$pull": bson.M{"videos": id}, "$set": bson.M{"updatedAt": time.Now().UTC()}},
	); err != nil {
		return fmt.Errorf("pull from playlists: %w", err)
	}
	return nil
}

func (r *videoRepository) commentIDs(ctx context.Context, videoID primitive.ObjectID) ([]primitive.ObjectID, error) {
	cursor, err := r.comments.Find(ctx, bson.M{"video": videoID}, options.Find().SetProjection(bson.M{"_id": 1}))
	if err != nil {
		return nil, fmt.Errorf("find comments: %w", err)
	}
	var docs []struct {
		ID primitive.ObjectID `bson:"_id"`
	}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode comments: %w", err)
	}

	ids := make([]primitive.ObjectID, len(docs))
	for i, d := range docs {
		ids[i] = d.ID
	}
	return ids, nil
}
