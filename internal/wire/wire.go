//go:build wireinject
// +build wireinject

package wire

import (
	"github.com/google/wire"

	"vidtube/internal/comment"
	"vidtube/internal/config"
	"vidtube/internal/dashboard"
	"vidtube/internal/like"
	"vidtube/internal/middleware"
	"vidtube/internal/playlist"
	"vidtube/internal/subscription"
	"vidtube/internal/tweet"
	"vidtube/internal/user"
	"vidtube/internal/video"
)

var infraSet = wire.NewSet(
	ProvideMongo,
	ProvideMediaStorage,
	ProvideObjectStorage,
	ProvideTokenManager,
	ProvideDenylist,
	ProvideDurationProber,
	ProvideSpooler,
	ProvideRateLimiter,
	middleware.NewAuthenticator,
	ProvideMediaServer,
)

var domainSet = wire.NewSet(
	user.NewUserRepository, user.NewUserService, ProvideUserHandler,
	video.NewVideoRepository, video.NewVideoService, ProvideVideoHandler,
	comment.NewCommentRepository, comment.NewCommentService, comment.NewHandler,
	like.NewLikeRepository, like.NewLikeService, like.NewHandler,
	tweet.NewTweetRepository, tweet.NewTweetService, tweet.NewHandler,
	playlist.NewPlaylistRepository, playlist.NewPlaylistService, playlist.NewHandler,
	subscription.NewSubscriptionRepository, subscription.NewSubscriptionService, subscription.NewHandler,
	dashboard.NewDashboardRepository, ProvideDashboardService, dashboard.NewHandler,
	wire.Struct(new(Handlers), "*"),
)

func InitializeApplication(cfg *config.Config) (*Application, func(), error) {
	wire.Build(
		infraSet,
		domainSet,
		wire.Struct(new(Application), "*"),
	)
	return nil, nil, nil
}
