package user

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

// ImageField names the user document fields that hold media URLs.
type ImageField string

const (
	AvatarField     ImageField = "avatar"
	CoverImageField ImageField = "coverImage"
)

type UserRepository interface {
	Create(ctx context.Context, user *dbmongo.User) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*dbmongo.User, error)
	FindByLogin(ctx context.Context, username, email string) (*dbmongo.User, error)
	Exists(ctx context.Context, username, email string) (bool, error)
	SetRefreshToken(ctx context.Context, id primitive.ObjectID, token string) error
	UpdatePassword(ctx context.Context, id primitive.ObjectID, hash string) error
	UpdateAccount(ctx context.Context, id primitive.ObjectID, fullname, email string) (*dbmongo.User, error)
	// ReplaceImage stores url in field and returns the URL it replaced.
	ReplaceImage(ctx context.Context, id primitive.ObjectID, field ImageField, url string) (string, error)
	ChannelProfile(ctx context.Context, username string, viewer primitive.ObjectID) (*dbmongo.ChannelProfile, error)
	WatchHistory(ctx context.Context, id primitive.ObjectID) ([]dbmongo.VideoRow, error)
}

type userRepository struct {
	users *mongo.Collection
}

func NewUserRepository(db *dbmongo.MongoClient) UserRepository {
	return &userRepository{users: db.Collection(dbmongo.UsersCollection)}
}

func (r *userRepository) Create(ctx context.Context, user *dbmongo.User) error {
	now := time.Now().UTC()
	user.ID = primitive.NewObjectID()
	user.CreatedAt, user.UpdatedAt = now, now
	if user.WatchHistory == nil {
		user.WatchHistory = []primitive.ObjectID{}
	}

	if _, err := r.users.InsertOne(ctx, user); err != nil {
		return fmt.Errorf("insert user: %w", dbmongo.Translate(err))
	}
	return nil
}

func (r *userRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*dbmongo.User, error) {
	var user dbmongo.User
	if err := r.users.FindOne(ctx, bson.M{"_id": id}).Decode(&user); err != nil {
		return nil, dbmongo.Translate(err)
	}
	return &user, nil
}

func (r *userRepository) FindByLogin(ctx context.Context, username, email string) (*dbmongo.User, error) {
	var user dbmongo.User
	if err := r.users.FindOne(ctx, loginFilter(username, email)).Decode(&user); err != nil {
		return nil, dbmongo.Translate(err)
	}
	return &user, nil
}

func (r *userRepository) Exists(ctx context.Context, username, email string) (bool, error) {
	n, err := r.users.CountDocuments(ctx, loginFilter(username, email), options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("count users: %w", err)
	}
	return n > 0, nil
}

func loginFilter(username, email string) bson.M {
	var or bson.A
	if username != "" {
		or = append(or, bson.M{"username": username})
	}
	if email != "" {
		or = append(or, bson.M{"email": email})
	}
	if len(or) == 0 {
		// matches nothing
		return bson.M{"_id": primitive.NilObjectID}
	}
	return bson.M{"$or": or}
}

func (r *userRepository) SetRefreshToken(ctx context.Context, id primitive.ObjectID, token string) error {
	update := bson.M{"$set": bson.M{"refreshToken": token, "updatedAt": time.Now().UTC()}}
	if token == "" {
		update = bson.M{
			"$unset": bson.M{"refreshToken": ""},
			"$set":   bson.M{"updatedAt": time.Now().UTC()},
		}
	}
	return r.updateOne(ctx, id, update)
}

func (r *userRepository) UpdatePassword(ctx context.Context, id primitive.ObjectID, hash string) error {
	return r.updateOne(ctx, id, bson.M{"$set": bson.M{"password": hash, "updatedAt": time.Now().UTC()}})
}

func (r *userRepository) updateOne(ctx context.Context, id primitive.ObjectID, update bson.M) error {
	res, err := r.users.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return fmt.Errorf("update user: %w", dbmongo.Translate(err))
	}
	if res.MatchedCount == 0 {
		return dbmongo.ErrNotFound
	}
	return nil
}

func (r *userRepository) UpdateAccount(ctx context.Context, id primitive.ObjectID, fullname, email string) (*dbmongo.User, error) {
	update := bson.M{"$set": bson.M{
		"fullname":  fullname,
		"email":     email,
		"updatedAt": time.Now().UTC(),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var user dbmongo.User
	if err := r.users.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&user); err != nil {
		return nil, dbmongo.Translate(err)
	}
	return &user, nil
}

func (r *userRepository) ReplaceImage(ctx context.Context, id primitive.ObjectID, field ImageField, url string) (string, error) {
	update := bson.M{"$set": bson.M{string(field): url, "updatedAt": time.Now().UTC()}}
	opts := options.FindOneAndUpdate().
		SetReturnDocument(options.Before).
		SetProjection(bson.M{string(field): 1})

	var before dbmongo.User
	if err := r.users.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&before); err != nil {
		return "", dbmongo.Translate(err)
	}
	if field == AvatarField {
		return before.Avatar, nil
	}
	return before.CoverImage, nil
}

func (r *userRepository) ChannelProfile(ctx context.Context, username string, viewer primitive.ObjectID) (*dbmongo.ChannelProfile, error) {
	profile, ok, err := pagination.First[dbmongo.ChannelProfile](ctx, r.users, pipeline.ChannelProfile(username, viewer))
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, dbmongo.ErrNotFound
	}
	return &profile, nil
}

func (r *userRepository) WatchHistory(ctx context.Context, id primitive.ObjectID) ([]dbmongo.VideoRow, error) {
	history, ok, err := pagination.First[dbmongo.WatchHistory](ctx, r.users, pipeline.WatchHistory(id))
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, dbmongo.ErrNotFound
	}
	if history.WatchHistory == nil {
		return []dbmongo.VideoRow{}, nil
	}
	return history.WatchHistory, nil
}
