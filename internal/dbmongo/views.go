package dbmongo

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Row types decode the output of aggregation pipelines. They never carry
// credential fields.

// OwnerSummary is the public slice of a user embedded in listings.
type OwnerSummary struct {
	ID       primitive.ObjectID `bson:"_id" json:"_id"`
	Username string             `bson:"username" json:"username"`
	Fullname string             `bson:"fullname,omitempty" json:"fullname,omitempty"`
	Avatar   string             `bson:"avatar" json:"avatar"`
}

type VideoRow struct {
	ID           primitive.ObjectID `bson:"_id" json:"_id"`
	VideoFile    string             `bson:"videoFile" json:"videoFile"`
	Thumbnail    string             `bson:"thumbnail" json:"thumbnail"`
	Title        string             `bson:"title" json:"title"`
	Description  string             `bson:"description" json:"description"`
	Duration     float64            `bson:"duration" json:"duration"`
	Views        int64              `bson:"views" json:"views"`
	IsPublished  bool               `bson:"isPublished" json:"isPublished"`
	Owner        primitive.ObjectID `bson:"owner" json:"owner"`
	OwnerDetails *OwnerSummary      `bson:"ownerDetails,omitempty" json:"ownerDetails,omitempty"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
}

type CommentRow struct {
	ID           primitive.ObjectID `bson:"_id" json:"_id"`
	Content      string             `bson:"content" json:"content"`
	Video        primitive.ObjectID `bson:"video" json:"video"`
	OwnerDetails *OwnerSummary      `bson:"ownerDetails,omitempty" json:"ownerDetails,omitempty"`
	LikesCount   int                `bson:"likesCount" json:"likesCount"`
	IsLiked      bool               `bson:"isLiked" json:"isLiked"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
}

type TweetRow struct {
	ID           primitive.ObjectID `bson:"_id" json:"_id"`
	Content      string             `bson:"content" json:"content"`
	OwnerDetails *OwnerSummary      `bson:"ownerDetails,omitempty" json:"ownerDetails,omitempty"`
	LikesCount   int                `bson:"likesCount" json:"likesCount"`
	IsLiked      bool               `bson:"isLiked" json:"isLiked"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
}

type LikeRow struct {
	ID             primitive.ObjectID `bson:"_id" json:"_id"`
	LikedByDetails *OwnerSummary      `bson:"likedByDetails,omitempty" json:"likedBy,omitempty"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
}

type LikedVideoRow struct {
	ID           primitive.ObjectID `bson:"_id" json:"_id"`
	VideoDetails *VideoRow          `bson:"videoDetails,omitempty" json:"video,omitempty"`
	CreatedAt    time.Time          `bson:"createdAt" json:"likedAt"`
}

type SubscriberRow struct {
	ID                primitive.ObjectID `bson:"_id" json:"_id"`
	SubscriberDetails *OwnerSummary      `bson:"subscriberDetails,omitempty" json:"subscriber,omitempty"`
	CreatedAt         time.Time          `bson:"createdAt" json:"subscribedAt"`
}

type SubscribedChannelRow struct {
	ID             primitive.ObjectID `bson:"_id" json:"_id"`
	ChannelDetails *OwnerSummary      `bson:"channelDetails,omitempty" json:"channel,omitempty"`
	CreatedAt      time.Time          `bson:"createdAt" json:"subscribedAt"`
}

type PlaylistRow struct {
	ID           primitive.ObjectID   `bson:"_id" json:"_id"`
	Name         string               `bson:"name" json:"name"`
	Description  string               `bson:"description" json:"description"`
	Owner        primitive.ObjectID   `bson:"owner" json:"owner"`
	OwnerDetails *OwnerSummary        `bson:"ownerDetails,omitempty" json:"ownerDetails,omitempty"`
	Videos       []primitive.ObjectID `bson:"videos" json:"videos"`
	VideoDetails []VideoRow           `bson:"videoDetails,omitempty" json:"videoDetails,omitempty"`
	TotalVideos  int                  `bson:"totalVideos" json:"totalVideos"`
	CreatedAt    time.Time            `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time            `bson:"updatedAt" json:"updatedAt"`
}

// ChannelProfile is a user's public channel page.
type ChannelProfile struct {
	ID                        primitive.ObjectID `bson:"_id" json:"_id"`
	Username                  string             `bson:"username" json:"username"`
	Fullname                  string             `bson:"fullname" json:"fullname"`
	Email                     string             `bson:"email" json:"email"`
	Avatar                    string             `bson:"avatar" json:"avatar"`
	CoverImage                string             `bson:"coverImage" json:"coverImage"`
	SubscribersCount          int                `bson:"subscribersCount" json:"subscribersCount"`
	ChannelsSubscribedToCount int                `bson:"channelsSubscribedToCount" json:"channelsSubscribedToCount"`
	IsSubscribed              bool               `bson:"isSubscribed" json:"isSubscribed"`
	CreatedAt                 time.Time          `bson:"createdAt" json:"createdAt"`
}

type WatchHistory struct {
	ID           primitive.ObjectID `bson:"_id" json:"-"`
	WatchHistory []VideoRow         `bson:"watchHistory" json:"watchHistory"`
}

// VideoStat is one row of the dashboard's per-video breakdown.
type VideoStat struct {
	ID    primitive.ObjectID `bson:"_id" json:"_id"`
	Title string             `bson:"title" json:"title"`
	Views int64              `bson:"views" json:"views"`
}
