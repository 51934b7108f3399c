package playlist

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

type PlaylistRepository interface {
	Create(ctx context.Context, playlist *dbmongo.Playlist) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*dbmongo.Playlist, error)
	FindRow(ctx context.Context, id primitive.ObjectID) (*dbmongo.PlaylistRow, error)
	ListForUser(ctx context.Context, ownerID primitive.ObjectID, params pagination.Params) (*pagination.Page[dbmongo.PlaylistRow], error)
	UpdateDetails(ctx context.Context, id primitive.ObjectID, name, description string) (*dbmongo.Playlist, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	// AddVideo reports false when the video was already a member.
	AddVideo(ctx context.Context, id, videoID primitive.ObjectID) (*dbmongo.Playlist, bool, error)
	// RemoveVideo reports false when the video was not a member.
	RemoveVideo(ctx context.Context, id, videoID primitive.ObjectID) (*dbmongo.Playlist, bool, error)
	// ExistingVideos returns the subset of ids that name stored videos.
	ExistingVideos(ctx context.Context, ids []primitive.ObjectID) ([]primitive.ObjectID, error)
	UserExists(ctx context.Context, userID primitive.ObjectID) (bool, error)
}

type playlistRepository struct {
	playlists *mongo.Collection
	videos    *mongo.Collection
	users     *mongo.Collection
}

func NewPlaylistRepository(db *dbmongo.MongoClient) PlaylistRepository {
	return &playlistRepository{
		playlists: db.Collection(dbmongo.PlaylistsCollection),
		videos:    db.Collection(dbmongo.VideosCollection),
		users:     db.Collection(dbmongo.UsersCollection),
	}
}

func (r *playlistRepository) Create(ctx context.Context, playlist *dbmongo.Playlist) error {
	now := time.Now().UTC()
	playlist.ID = primitive.NewObjectID()
	playlist.CreatedAt, playlist.UpdatedAt = now, now
	if playlist.Videos == nil {
		playlist.Videos = []primitive.ObjectID{}
	}

	if _, err := r.playlists.InsertOne(ctx, playlist); err != nil {
		return fmt.Errorf("insert playlist: %w", dbmongo.Translate(err))
	}
	return nil
}

func (r *playlistRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*dbmongo.Playlist, error) {
	var playlist dbmongo.Playlist
	if err := r.playlists.FindOne(ctx, bson.M{"_id": id}).Decode(&playlist); err != nil {
		return nil, dbmongo.Translate(err)
	}
	return &playlist, nil
}

func (r *playlistRepository) FindRow(ctx context.Context, id primitive.ObjectID) (*dbmongo.PlaylistRow, error) {
	row, ok, err := pagination.First[dbmongo.PlaylistRow](ctx, r.playlists, pipeline.PlaylistByID(id))
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, dbmongo.ErrNotFound
	}
	return &row, nil
}

func (r *playlistRepository) ListForUser(ctx context.Context, ownerID primitive.ObjectID, params pagination.Params) (*pagination.Page[dbmongo.PlaylistRow], error) {
	return pagination.Aggregate[dbmongo.PlaylistRow](ctx, r.playlists, pipeline.UserPlaylists(ownerID), params)
}

func (r *playlistRepository) UpdateDetails(ctx context.Context, id primitive.ObjectID, name, description string) (*dbmongo.Playlist, error) {
	update := bson.M{"$set": bson.M{
		"name":        name,
		"description": description,
		"updatedAt":   time.Now().UTC(),
	}}
	return r.findAndUpdate(ctx, bson.M{"_id": id}, update)
}

func (r *playlistRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.playlists.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete playlist: %w", err)
	}
	if res.DeletedCount == 0 {
		return dbmongo.ErrNotFound
	}
	return nil
}

func (r *playlistRepository) AddVideo(ctx context.Context, id, videoID primitive.ObjectID) (*dbmongo.Playlist, bool, error) {
	filter := bson.M{"_id": id, "videos": bson.M{"$ne": videoID}}
	update := bson.M{
		"$addToSet": bson.M{"videos": videoID},
		"$set":      bson.M{"updatedAt": time.Now().UTC()},
	}
	return r.membershipUpdate(ctx, id, filter, update)
}

func (r *playlistRepository) RemoveVideo(ctx context.Context, id, videoID primitive.ObjectID) (*dbmongo.Playlist, bool, error) {
	filter := bson.M{"_id": id, "videos": videoID}
	update := bson.M{
		"$pull": bson.M{"videos": videoID},
		"$set":  bson.M{"updatedAt": time.Now().UTC()},
	}
	return r.membershipUpdate(ctx, id, filter, update)
}

// membershipUpdate applies update when filter still matches. A miss means the
// membership precondition no longer holds, or the playlist is gone.
func (r *playlistRepository) membershipUpdate(ctx context.Context, id primitive.ObjectID, filter, update bson.M) (*dbmongo.Playlist, bool, error) {
	playlist, err := r.findAndUpdate(ctx, filter, update)
	if err == nil {
		return playlist, true, nil
	}
	if !errors.Is(err, dbmongo.ErrNotFound) {
		return nil, false, err
	}

	current, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, false, err
	}
	return current, false, nil
}

func (r *playlistRepository) findAndUpdate(ctx context.Context, filter, update bson.M) (*dbmongo.Playlist, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var playlist dbmongo.Playlist
	if err := r.playlists.FindOneAndUpdate(ctx, filter, update, opts).Decode(&playlist); err != nil {
		return nil, dbmongo.Translate(err)
	}
	return &playlist, nil
}

func (r *playlistRepository) ExistingVideos(ctx context.Context, ids []primitive.ObjectID) ([]primitive.ObjectID, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	opts := options.Find().SetProjection(bson.M{"_id": 1})
	cursor, err := r.videos.Find(ctx, bson.M{"_id": bson.M{"$in": ids}}, opts)
	if err != nil {
		return nil, fmt.Errorf("find videos: %w", err)
	}
	var found []struct {
		ID primitive.ObjectID `bson:"_id"`
	}
	if err := cursor.All(ctx, &found); err != nil {
		return nil, fmt.Errorf("decode videos: %w", err)
	}

	out := make([]primitive.ObjectID, len(found))
	for i, v := range found {
		out[i] = v.ID
	}
	return out, nil
}

func (r *playlistRepository) UserExists(ctx context.Context, userID primitive.ObjectID) (bool, error) {
	n, err := r.users.CountDocuments(ctx, bson.M{"_id": userID}, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("count users: %w", err)
	}
	return n > 0, nil
}
