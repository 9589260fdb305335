package services

import (
	"context"
	"strings"

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

type ChannelService interface {
	GetChannelProfile(ctx context.Context, viewer uuid.UUID, username string) (*types.ChannelView, error)
	GetChannelSubscribers(ctx context.Context, channelID uuid.UUID) ([]types.SubscriberCard, error)
	GetSubscribedChannels(ctx context.Context, viewer, subscriberID uuid.UUID) ([]types.SubscribedChannelCard, error)
}

type channelService struct {
	db       *gorm.DB
	log      *logger.Logger
	userRepo user.UserRepo
	videos   content.VideoRepo
	likes    engagement.LikeRepo
	subs     engagement.SubscriptionRepo
}

func NewChannelService(
	db *gorm.DB,
	log *logger.Logger,
	userRepo user.UserRepo,
	videos content.VideoRepo,
	likes engagement.LikeRepo,
	subs engagement.SubscriptionRepo,
) ChannelService {
	serviceLog := log.With("service", "ChannelService")
	return &channelService{
		db:       db,
		log:      serviceLog,
		userRepo: userRepo,
		videos:   videos,
		likes:    likes,
		subs:     subs,
	}
}

func (chs *channelService) GetChannelProfile(ctx context.Context, viewer uuid.UUID, username string) (*types.ChannelView, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, apperr.Validation("username_required")
	}

	channel, err := chs.userRepo.GetByUsername(ctx, nil, username)
	if err != nil {
		return nil, err
	}
	if channel == nil {
		return nil, apperr.NotFound("channel")
	}

	var (
		subscribers   int64
		subscriptions int64
		subscribed    bool
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		subscribers, err = chs.subs.CountSubscribers(gctx, nil, channel.ID)
		return err
	})
	g.Go(func() (err error) {
		subscriptions, err = chs.subs.CountSubscriptions(gctx, nil, channel.ID)
		return err
	})
	g.Go(func() (err error) {
		if viewer == uuid.Nil {
			return nil
		}
		subscribed, err = chs.subs.Exists(gctx, nil, viewer, channel.ID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &types.ChannelView{
		ID:                   channel.ID,
		Username:             channel.Username,
		FullName:             channel.FullName,
		AvatarURL:            channel.AvatarURL,
		CoverImageURL:        channel.CoverImageURL,
		SubscribersCount:     subscribers,
		ChannelsSubscribedTo: subscriptions,
		IsSubscribed:         subscribed,
	}, nil
}

// GetChannelSubscribers lists who subscribes to a channel. SubscribedBack on
// each card reports whether the channel subscribes to that user in return.
func (chs *channelService) GetChannelSubscribers(ctx context.Context, channelID uuid.UUID) ([]types.SubscriberCard, error) {
	if channelID == uuid.Nil {
		return nil, apperr.InvalidReference("channel_id")
	}
	exists, err := chs.userRepo.Exists(ctx, nil, channelID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperr.InvalidReference("channel_id")
	}

	subscriberIDs, err := chs.subs.ListSubscriberIDs(ctx, nil, channelID)
	if err != nil {
		return nil, err
	}
	cards := make([]types.SubscriberCard, 0, len(subscriberIDs))
	if len(subscriberIDs) == 0 {
		return cards, nil
	}

	var (
		owners  map[uuid.UUID]types.OwnerCard
		counts  map[uuid.UUID]int64
		backSet map[uuid.UUID]struct{}
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		owners, err = ownerCardsByID(gctx, chs.userRepo, subscriberIDs)
		return err
	})
	g.Go(func() (err error) {
		counts, err = chs.subs.CountSubscribersBatch(gctx, nil, subscriberIDs)
		return err
	})
	g.Go(func() (err error) {
		backSet, err = chs.subs.SubscribedSet(gctx, nil, channelID, subscriberIDs)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, id := range subscriberIDs {
		card, ok := owners[id]
		if !ok {
			continue
		}
		_, back := backSet[id]
		cards = append(cards, types.SubscriberCard{
			OwnerCard:        card,
			SubscribersCount: counts[id],
			SubscribedBack:   back,
		})
	}
	return cards, nil
}

// GetSubscribedChannels lists the channels a user subscribes to, each with
// the channel's most recent video when one exists.
func (chs *channelService) GetSubscribedChannels(ctx context.Context, viewer, subscriberID uuid.UUID) ([]types.SubscribedChannelCard, error) {
	if subscriberID == uuid.Nil {
		return nil, apperr.InvalidReference("subscriber_id")
	}
	exists, err := chs.userRepo.Exists(ctx, nil, subscriberID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperr.InvalidReference("subscriber_id")
	}

	channelIDs, err := chs.subs.ListSubscribedChannelIDs(ctx, nil, subscriberID)
	if err != nil {
		return nil, err
	}
	cards := make([]types.SubscribedChannelCard, 0, len(channelIDs))
	if len(channelIDs) == 0 {
		return cards, nil
	}

	owners, err := ownerCardsByID(ctx, chs.userRepo, channelIDs)
	if err != nil {
		return nil, err
	}

	latest := make([]*types.Video, 0, len(channelIDs))
	latestByChannel := make(map[uuid.UUID]uuid.UUID, len(channelIDs))
	for _, id := range channelIDs {
		v, err := chs.videos.LatestByOwner(ctx, nil, id)
		if err != nil {
			return nil, err
		}
		if v != nil {
			latest = append(latest, v)
			latestByChannel[id] = v.ID
		}
	}
	latestViews, err := decorateVideos(ctx, viewer, latest, chs.userRepo, chs.likes)
	if err != nil {
		return nil, err
	}
	viewByID := make(map[uuid.UUID]types.VideoView, len(latestViews))
	for _, lv := range latestViews {
		viewByID[lv.ID] = lv
	}

	for _, id := range channelIDs {
		card, ok := owners[id]
		if !ok {
			continue
		}
		entry := types.SubscribedChannelCard{OwnerCard: card}
		if videoID, ok := latestByChannel[id]; ok {
			if lv, ok := viewByID[videoID]; ok {
				entry.LatestVideo = &lv
			}
		}
		cards = append(cards, entry)
	}
	return cards, nil
}
