package common

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ctxKey string

const (
	userIDKey      ctxKey = "user_id"
	accessTokenKey ctxKey = "access_token"
)

// WithUser stores the authenticated user id and the token it was read from.
func WithUser(ctx context.Context, userID primitive.ObjectID, accessToken string) context.Context {
	ctx = context.WithValue(ctx, userIDKey, userID)
	return context.WithValue(ctx, accessTokenKey, accessToken)
}

func UserIDFromContext(ctx context.Context) (primitive.ObjectID, bool) {
	id, ok := ctx.Value(userIDKey).(primitive.ObjectID)
	return id, ok && !id.IsZero()
}

func AccessTokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(accessTokenKey).(string)
	return token
}
