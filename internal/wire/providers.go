// Package wire assembles the application graph.
package wire

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-redis/redis/v8"

	"vidtube/internal/comment"
	"vidtube/internal/common"
	"vidtube/internal/config"
	"vidtube/internal/dashboard"
	"vidtube/internal/dbmongo"
	"vidtube/internal/like"
	"vidtube/internal/media"
	"vidtube/internal/middleware"
	"vidtube/internal/playlist"
	"vidtube/internal/storage"
	"vidtube/internal/subscription"
	"vidtube/internal/tweet"
	"vidtube/internal/user"
	"vidtube/internal/video"
)

type Handlers struct {
	User         *user.Handler
	Video        *video.Handler
	Comment      *comment.Handler
	Like         *like.Handler
	Tweet        *tweet.Handler
	Playlist     *playlist.Handler
	Subscription *subscription.Handler
	Dashboard    *dashboard.Handler
}

type Application struct {
	Config   *config.Config
	Mongo    *dbmongo.MongoClient
	Auth     *middleware.Authenticator
	Limiter  middleware.RateLimiter
	Media    *media.HTTPServer
	Handlers Handlers
}

// ProvideMongo connects, ensures indexes and disconnects on cleanup.
func ProvideMongo(cfg *config.Config) (*dbmongo.MongoClient, func(), error) {
	client, err := dbmongo.NewMongoConnection(cfg)
	if err != nil {
		return nil, nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := dbmongo.EnsureIndexes(ctx, client.Database); err != nil {
		_ = client.Close(context.Background())
		return nil, nil, fmt.Errorf("ensure indexes: %w", err)
	}

	cleanup := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := client.Close(ctx); err != nil {
			slog.Warn("mongo disconnect failed", "error", err)
		}
	}
	return client, cleanup, nil
}

func ProvideMediaStorage(cfg *config.Config, client *dbmongo.MongoClient) *dbmongo.MediaStorage {
	return dbmongo.NewMediaStorage(client, cfg.Media.BaseURL)
}

// ProvideObjectStorage picks the upload backend. GridFS stays readable
// through the media server either way.
func ProvideObjectStorage(cfg *config.Config, gridfs *dbmongo.MediaStorage) (common.ObjectStorage, error) {
	switch cfg.Storage.Backend {
	case "", "gridfs":
		return gridfs, nil
	case "s3":
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		s3, err := storage.NewS3Storage(ctx, cfg.Storage.S3)
		if err != nil {
			return nil, err
		}
		return s3, nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}

func ProvideMediaServer(gridfs *dbmongo.MediaStorage) *media.HTTPServer {
	return media.NewHTTPServer(gridfs)
}

func ProvideTokenManager(cfg *config.Config) *common.TokenManager {
	return common.NewTokenManager(
		cfg.Auth.AccessTokenSecret, cfg.Auth.AccessTokenExpiry,
		cfg.Auth.RefreshTokenSecret, cfg.Auth.RefreshTokenExpiry,
	)
}

// ProvideDenylist uses Redis when REDIS_ADDR is set and a no-op otherwise.
func ProvideDenylist(cfg *config.Config) (common.Denylist, func(), error) {
	if cfg.Redis.Addr == "" {
		slog.Info("redis not configured, logout will not revoke access tokens early")
		return common.NoopDenylist{}, func() {}, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("ping redis: %w", err)
	}

	cleanup := func() {
		if err := client.Close(); err != nil {
			slog.Warn("redis close failed", "error", err)
		}
	}
	return common.NewRedisDenylist(client), cleanup, nil
}

func ProvideDurationProber(cfg *config.Config) common.DurationProber {
	return media.NewFFProbe(cfg.Media.FFProbePath, cfg.Media.ProbeTimeout)
}

func ProvideSpooler(cfg *config.Config) *media.Spooler {
	return media.NewSpooler(cfg.Media.TempDir)
}

func ProvideRateLimiter(cfg *config.Config) middleware.RateLimiter {
	rl := cfg.RateLimit
	return middleware.NewIPRateLimiter(rl.Requests, rl.Window, rl.Burst, rl.Clients, rl.TTL)
}

func ProvideUserHandler(cfg *config.Config, svc user.UserService, spooler *media.Spooler) *user.Handler {
	return user.NewHandler(svc, spooler, cfg.Media.MaxUploadBytes, user.CookieConfig{
		Secure:     cfg.Auth.SecureCookies,
		AccessTTL:  cfg.Auth.AccessTokenExpiry,
		RefreshTTL: cfg.Auth.RefreshTokenExpiry,
	})
}

func ProvideVideoHandler(cfg *config.Config, svc video.VideoService, spooler *media.Spooler) *video.Handler {
	return video.NewHandler(svc, spooler, cfg.Media.MaxUploadBytes)
}

func ProvideDashboardService(cfg *config.Config, repo dashboard.DashboardRepository) dashboard.DashboardService {
	return dashboard.NewDashboardService(repo, cfg.Cache.StatsTTL)
}
