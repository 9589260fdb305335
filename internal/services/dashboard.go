package services

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/cliptube/cliptube-backend/internal/data/repos/content"
	"github.com/cliptube/cliptube-backend/internal/data/repos/engagement"
	"github.com/cliptube/cliptube-backend/internal/data/repos/user"
	types "github.com/cliptube/cliptube-backend/internal/domain"
	"github.com/cliptube/cliptube-backend/internal/platform/apperr"
	"github.com/cliptube/cliptube-backend/internal/platform/logger"
)

type DashboardService interface {
	GetChannelStats(ctx context.Context, ownerID uuid.UUID) (*types.StatsView, error)
}

type dashboardService struct {
	db       *gorm.DB
	log      *logger.Logger
	userRepo user.UserRepo
	videos   content.VideoRepo
	likes    engagement.LikeRepo
	subs     engagement.SubscriptionRepo
}

func NewDashboardService(
	db *gorm.DB,
	log *logger.Logger,
	userRepo user.UserRepo,
	videos content.VideoRepo,
	likes engagement.LikeRepo,
	subs engagement.SubscriptionRepo,
) DashboardService {
	serviceLog := log.With("service", "DashboardService")
	return &dashboardService{
		db:       db,
		log:      serviceLog,
		userRepo: userRepo,
		videos:   videos,
		likes:    likes,
		subs:     subs,
	}
}

// GetChannelStats aggregates a channel's totals. A channel whose videos have
// no likes reports zero, same as a channel with no videos at all.
func (ds *dashboardService) GetChannelStats(ctx context.Context, ownerID uuid.UUID) (*types.StatsView, error) {
	if ownerID == uuid.Nil {
		return nil, apperr.InvalidReference("owner_id")
	}
	exists, err := ds.userRepo.Exists(ctx, nil, ownerID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperr.InvalidReference("owner_id")
	}

	var (
		subscribers int64
		totalVideos int64
		totalViews  int64
		totalLikes  int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		subscribers, err = ds.subs.CountSubscribers(gctx, nil, ownerID)
		return err
	})
	g.Go(func() (err error) {
		totalVideos, totalViews, err = ds.videos.OwnerTotals(gctx, nil, ownerID)
		return err
	})
	g.Go(func() error {
		videoIDs, err := ds.videos.ListIDsByOwner(gctx, nil, ownerID)
		if err != nil {
			return err
		}
		counts, err := ds.likes.CountByTargets(gctx, nil, types.LikeTargetVideo, videoIDs)
		if err != nil {
			return err
		}
		for _, n := range counts {
			totalLikes += n
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &types.StatsView{
		TotalSubscribers: subscribers,
		TotalVideos:      totalVideos,
		TotalViews:       totalViews,
		TotalLikes:       totalLikes,
	}, nil
}
