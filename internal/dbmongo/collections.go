package dbmongo

const (
	UsersCollection         = "users"
	VideosCollection        = "videos"
	CommentsCollection      = "comments"
	LikesCollection         = "likes"
	TweetsCollection        = "tweets"
	PlaylistsCollection     = "playlists"
	SubscriptionsCollection = "subscriptions"
)

// WatchHistoryLimit caps users.watchHistory.
const WatchHistoryLimit = 100
