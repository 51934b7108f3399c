package pipeline

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Collection names are repeated here so the package stays free of the
// storage layer.
const (
	videosCollection        = "videos"
	likesCollection         = "likes"
	subscriptionsCollection = "subscriptions"
)

var newestFirst = []SortKey{{Field: "createdAt", Desc: true}}

var videoFields = []string{
	"videoFile", "thumbnail", "title", "description",
	"duration", "views", "isPublished", "owner", "createdAt",
}

// OwnerJoin embeds the public summary of the user referenced by local.
func OwnerJoin(local, as string) Join {
	return Join{
		From:         usersCollection,
		LocalField:   local,
		ForeignField: "_id",
		As:           as,
		Single:       true,
		Pipeline: &Spec{
			Name:    "owner summary",
			Project: []string{"username", "fullname", "avatar"},
		},
	}
}

// likesJoin pulls the likers of each row so the row can report a count and
// whether the viewer is among them.
func likesJoin(target string) Join {
	return Join{
		From:         likesCollection,
		LocalField:   "_id",
		ForeignField: target,
		As:           "likes",
		Pipeline:     &Spec{Name: "likers", Project: []string{"likedBy"}},
	}
}

func with(fields []string, extra ...string) []string {
	out := make([]string, 0, len(fields)+len(extra))
	out = append(out, fields...)
	return append(out, extra...)
}

// PublicVideos lists videos matching a query-built filter with their owner.
func PublicVideos(match bson.D, sort []SortKey) Spec {
	return Spec{
		Name:    "public videos",
		Match:   match,
		Joins:   []Join{OwnerJoin("owner", "ownerDetails")},
		Project: with(videoFields, "ownerDetails"),
		Sort:    sort,
	}
}

// VideoByID is one video with its owner summary.
func VideoByID(id primitive.ObjectID) Spec {
	return Spec{
		Name:    "video by id",
		Match:   bson.D{{Key: "_id", Value: id}},
		Joins:   []Join{OwnerJoin("owner", "ownerDetails")},
		Project: with(videoFields, "ownerDetails"),
	}
}

// ChannelVideos lists one channel's videos for its dashboard.
func ChannelVideos(match bson.D, sort []SortKey) Spec {
	return Spec{
		Name:    "channel videos",
		Match:   match,
		Project: videoFields,
		Sort:    sort,
	}
}

func VideoComments(videoID, viewer primitive.ObjectID) Spec {
	return Spec{
		Name:  "video comments",
		Match: bson.D{{Key: "video", Value: videoID}},
		Joins: []Join{
			OwnerJoin("owner", "ownerDetails"),
			likesJoin("comment"),
		},
		Derive: []Field{
			{Name: "likesCount", Expr: Size("likes")},
			{Name: "isLiked", Expr: ContainsID(viewer, "likes.likedBy")},
		},
		Project: []string{"content", "video", "ownerDetails", "likesCount", "isLiked", "createdAt"},
		Sort:    newestFirst,
	}
}

func UserTweets(ownerID, viewer primitive.ObjectID) Spec {
	return Spec{
		Name:  "user tweets",
		Match: bson.D{{Key: "owner", Value: ownerID}},
		Joins: []Join{
			OwnerJoin("owner", "ownerDetails"),
			likesJoin("tweet"),
		},
		Derive: []Field{
			{Name: "likesCount", Expr: Size("likes")},
			{Name: "isLiked", Expr: ContainsID(viewer, "likes.likedBy")},
		},
		Project: []string{"content", "ownerDetails", "likesCount", "isLiked", "createdAt"},
		Sort:    newestFirst,
	}
}

// UserPlaylists pages over playlists, so totals count playlists rather than
// the videos inside them.
func UserPlaylists(ownerID primitive.ObjectID) Spec {
	return Spec{
		Name:   "user playlists",
		Match:  bson.D{{Key: "owner", Value: ownerID}},
		Joins:  []Join{OwnerJoin("owner", "ownerDetails")},
		Derive: []Field{{Name: "totalVideos", Expr: Size("videos")}},
		Project: []string{
			"name", "description", "owner", "ownerDetails",
			"videos", "totalVideos", "createdAt", "updatedAt",
		},
		Sort: newestFirst,
	}
}

// PlaylistByID resolves a playlist's videos in the playlist's own order.
func PlaylistByID(playlistID primitive.ObjectID) Spec {
	return Spec{
		Name:  "playlist by id",
		Match: bson.D{{Key: "_id", Value: playlistID}},
		Joins: []Join{
			OwnerJoin("owner", "ownerDetails"),
			{
				From:         videosCollection,
				LocalField:   "videos",
				ForeignField: "_id",
				As:           "videoLookup",
				Pipeline: &Spec{
					Name:    "playlist videos",
					Joins:   []Join{OwnerJoin("owner", "ownerDetails")},
					Project: with(videoFields, "ownerDetails"),
				},
			},
		},
		Derive: []Field{
			{Name: "videoDetails", Expr: OrderedByIDs("videos", "videoLookup")},
			{Name: "totalVideos", Expr: Size("videos")},
		},
		Project: []string{
			"name", "description", "owner", "ownerDetails", "videos",
			"videoDetails", "totalVideos", "createdAt", "updatedAt",
		},
	}
}

// ChannelProfile is the public page of the channel named username as seen by
// viewer. isSubscribed tests the viewer's id against the channel's
// subscriber list.
func ChannelProfile(username string, viewer primitive.ObjectID) Spec {
	return Spec{
		Name:  "channel profile",
		Match: bson.D{{Key: "username", Value: username}},
		Joins: []Join{
			{
				From:         subscriptionsCollection,
				LocalField:   "_id",
				ForeignField: "channel",
				As:           "subscribers",
				Pipeline:     &Spec{Name: "subscribers", Project: []string{"subscriber"}},
			},
			{
				From:         subscriptionsCollection,
				LocalField:   "_id",
				ForeignField: "subscriber",
				As:           "subscribedTo",
				Pipeline:     &Spec{Name: "subscribed to", Project: []string{"channel"}},
			},
		},
		Derive: []Field{
			{Name: "subscribersCount", Expr: Size("subscribers")},
			{Name: "channelsSubscribedToCount", Expr: Size("subscribedTo")},
			{Name: "isSubscribed", Expr: ContainsID(viewer, "subscribers.subscriber")},
		},
		Project: []string{
			"username", "fullname", "email", "avatar", "coverImage",
			"subscribersCount", "channelsSubscribedToCount", "isSubscribed", "createdAt",
		},
	}
}

// WatchHistory resolves the stored history, most recent first, with each
// video's owner. Videos deleted since are dropped.
func WatchHistory(userID primitive.ObjectID) Spec {
	return Spec{
		Name:  "watch history",
		Match: bson.D{{Key: "_id", Value: userID}},
		Joins: []Join{{
			From:         videosCollection,
			LocalField:   "watchHistory",
			ForeignField: "_id",
			As:           "historyLookup",
			Pipeline: &Spec{
				Name:    "history videos",
				Joins:   []Join{OwnerJoin("owner", "ownerDetails")},
				Project: with(videoFields, "ownerDetails"),
			},
		}},
		Derive:  []Field{{Name: "watchHistory", Expr: OrderedByIDs("watchHistory", "historyLookup")}},
		Project: []string{"watchHistory"},
	}
}

// TargetLikes lists who liked a video, comment or tweet. target is the like
// field name.
func TargetLikes(target string, targetID primitive.ObjectID) Spec {
	return Spec{
		Name:    target + " likes",
		Match:   bson.D{{Key: target, Value: targetID}},
		Joins:   []Join{OwnerJoin("likedBy", "likedByDetails")},
		Project: []string{"likedByDetails", "createdAt"},
		Sort:    newestFirst,
	}
}

func LikedVideos(userID primitive.ObjectID) Spec {
	return Spec{
		Name: "liked videos",
		Match: bson.D{
			{Key: "likedBy", Value: userID},
			{Key: "video", Value: bson.M{"$exists": true}},
		},
		Joins: []Join{{
			From:         videosCollection,
			LocalField:   "video",
			ForeignField: "_id",
			As:           "videoDetails",
			Single:       true,
			Pipeline: &Spec{
				Name:    "liked video",
				Joins:   []Join{OwnerJoin("owner", "ownerDetails")},
				Project: with(videoFields, "ownerDetails"),
			},
		}},
		Project: []string{"videoDetails", "createdAt"},
		Sort:    newestFirst,
	}
}

func ChannelSubscribers(channelID primitive.ObjectID) Spec {
	return Spec{
		Name:    "channel subscribers",
		Match:   bson.D{{Key: "channel", Value: channelID}},
		Joins:   []Join{OwnerJoin("subscriber", "subscriberDetails")},
		Project: []string{"subscriberDetails", "createdAt"},
		Sort:    newestFirst,
	}
}

func SubscribedChannels(subscriberID primitive.ObjectID) Spec {
	return Spec{
		Name:    "subscribed channels",
		Match:   bson.D{{Key: "subscriber", Value: subscriberID}},
		Joins:   []Join{OwnerJoin("channel", "channelDetails")},
		Project: []string{"channelDetails", "createdAt"},
		Sort:    newestFirst,
	}
}
