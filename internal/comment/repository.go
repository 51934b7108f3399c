package comment

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

type CommentRepository interface {
	Create(ctx context.Context, comment *dbmongo.Comment) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*dbmongo.Comment, error)
	ListForVideo(ctx context.Context, videoID, viewer primitive.ObjectID, params pagination.Params) (*pagination.Page[dbmongo.CommentRow], error)
	UpdateContent(ctx context.Context, id primitive.ObjectID, content string) (*dbmongo.Comment, error)
	// Delete removes the comment and every like on it.
	Delete(ctx context.Context, id primitive.ObjectID) error
	VideoExists(ctx context.Context, videoID primitive.ObjectID) (bool, error)
}

type commentRepository struct {
	comments *mongo.Collection
	likes    *mongo.Collection
	videos   *mongo.Collection
}

func NewCommentRepository(db *dbmongo.MongoClient) CommentRepository {
	return &commentRepository{
		comments: db.Collection(dbmongo.CommentsCollection),
		likes:    db.Collection(dbmongo.LikesCollection),
		videos:   db.Collection(dbmongo.VideosCollection),
	}
}

func (r *commentRepository) Create(ctx context.Context, comment *dbmongo.Comment) error {
	now := time.Now().UTC()
	comment.ID = primitive.NewObjectID()
	comment.CreatedAt, comment.UpdatedAt = now, now

	if _, err := r.comments.InsertOne(ctx, comment); err != nil {
		return fmt.Errorf("insert comment: %w", dbmongo.Translate(err))
	}
	return nil
}

func (r *commentRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*dbmongo.Comment, error) {
	var comment dbmongo.Comment
	if err := r.comments.FindOne(ctx, bson.M{"_id": id}).Decode(&comment); err != nil {
		return nil, dbmongo.Translate(err)
	}
	return &comment, nil
}

func (r *commentRepository) ListForVideo(ctx context.Context, videoID, viewer primitive.ObjectID, params pagination.Params) (*pagination.Page[dbmongo.CommentRow], error) {
	return pagination.Aggregate[dbmongo.CommentRow](ctx, r.comments, pipeline.VideoComments(videoID, viewer), params)
}

func (r *commentRepository) UpdateContent(ctx context.Context, id primitive.ObjectID, content string) (*dbmongo.Comment, error) {
	update := bson.M{"$set": bson.M{"content": content, "updatedAt": time.Now().UTC()}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var comment dbmongo.Comment
	if err := r.comments.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&comment); err != nil {
		return nil, dbmongo.Translate(err)
	}
	return &comment, nil
}

func (r *commentRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.comments.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}
	if res.DeletedCount == 0 {
		return dbmongo.ErrNotFound
	}
	if _, err := r.likes.DeleteMany(ctx, bson.M{"comment": id}); err != nil {
		return fmt.Errorf("delete comment likes: %w", err)
	}
	return nil
}

func (r *commentRepository) VideoExists(ctx context.Context, videoID primitive.ObjectID) (bool, error) {
	n, err := r.videos.CountDocuments(ctx, bson.M{"_id": videoID}, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("count videos: %w", err)
	}
	return n > 0, nil
}
