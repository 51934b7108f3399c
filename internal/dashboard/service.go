package dashboard

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/sync/errgroup"

	"vidtube/internal/common"
	"vidtube/internal/dbmongo"
	"vidtube/internal/logging"
	"vidtube/internal/pagination"
	"vidtube/internal/query"
)

// Stats is the channel dashboard summary. TotalLikes counts likes on the
// channel's videos only.
type Stats struct {
	TotalSubscribers int64               `json:"totalSubscribers"`
	TotalVideos      int64               `json:"totalVideos"`
	TotalViews       int64               `json:"totalViews"`
	TotalLikes       int64               `json:"totalLikes"`
	Videos           []dbmongo.VideoStat `json:"videos"`
}

type DashboardService interface {
	ChannelStats(ctx context.Context, channel primitive.ObjectID) (*Stats, error)
	ChannelVideos(ctx context.Context, channel primitive.ObjectID, listing query.Listing) (*pagination.Page[dbmongo.VideoRow], error)
}

type dashboardService struct {
	dashboardRepo DashboardRepository
	stats         *cache.Cache // nil disables caching
}

// NewDashboardService caches stats per channel for statsTTL. A non-positive
// TTL turns caching off.
func NewDashboardService(dashboardRepo DashboardRepository, statsTTL time.Duration) DashboardService {
	s := &dashboardService{dashboardRepo: dashboardRepo}
	if statsTTL > 0 {
		s.stats = cache.New(statsTTL, 2*statsTTL)
	}
	return s
}

func (s *dashboardService) ChannelStats(ctx context.Context, channel primitive.ObjectID) (*Stats, error) {
	key := channel.Hex()
	if s.stats != nil {
		if cached, ok := s.stats.Get(key); ok {
			return cached.(*Stats), nil
		}
	}

	if err := s.requireChannel(ctx, channel); err != nil {
		return nil, err
	}

	var (
		stats  Stats
		totals VideoTotals
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := s.dashboardRepo.SubscriberCount(gctx, channel)
		stats.TotalSubscribers = n
		return err
	})
	g.Go(func() error {
		t, err := s.dashboardRepo.VideoTotals(gctx, channel)
		totals = t
		return err
	})
	g.Go(func() error {
		n, err := s.dashboardRepo.LikeCount(gctx, channel)
		stats.TotalLikes = n
		return err
	})
	g.Go(func() error {
		videos, err := s.dashboardRepo.VideoStats(gctx, channel)
		stats.Videos = videos
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, common.ErrInternal("Failed to compute channel stats", err)
	}

	stats.TotalVideos, stats.TotalViews = totals.Videos, totals.Views
	if stats.Videos == nil {
		stats.Videos = []dbmongo.VideoStat{}
	}

	if s.stats != nil {
		s.stats.SetDefault(key, &stats)
	}
	logging.FromContext(ctx).Debug("channel stats computed", "channel", key, "videos", stats.TotalVideos)
	return &stats, nil
}

func (s *dashboardService) ChannelVideos(ctx context.Context, channel primitive.ObjectID, listing query.Listing) (*pagination.Page[dbmongo.VideoRow], error) {
	if err := s.requireChannel(ctx, channel); err != nil {
		return nil, err
	}

	page, err := s.dashboardRepo.ChannelVideos(ctx, listing)
	if err != nil {
		return nil, common.ErrInternal("Failed to fetch channel videos", err)
	}
	return page, nil
}

func (s *dashboardService) requireChannel(ctx context.Context, channel primitive.ObjectID) error {
	ok, err := s.dashboardRepo.ChannelExists(ctx, channel)
	if err != nil {
		return common.ErrInternal("Failed to load channel", err)
	}
	if !ok {
		return common.ErrNotFound("Channel not found")
	}
	return nil
}
