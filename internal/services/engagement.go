package services

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/cliptube/cliptube-backend/internal/data/repos/content"
	"github.com/cliptube/cliptube-backend/internal/data/repos/engagement"
	"github.com/cliptube/cliptube-backend/internal/data/repos/user"
	types "github.com/cliptube/cliptube-backend/internal/domain"
	"github.com/cliptube/cliptube-backend/internal/platform/apperr"
	"github.com/cliptube/cliptube-backend/internal/platform/logger"
)

// EngagementService flips like and subscription edges. A toggle never reads
// the edge first: it attempts a conditional insert and, when the store
// reports the edge already there, deletes it. Two racing toggles therefore
// resolve on the store's unique index; the edge count can never exceed one.
type EngagementService interface {
	ToggleLike(ctx context.Context, viewer uuid.UUID, target types.LikeTarget) (bool, error)
	ToggleSubscription(ctx context.Context, viewer, channel uuid.UUID) (bool, error)
}

type engagementService struct {
	db       *gorm.DB
	log      *logger.Logger
	userRepo user.UserRepo
	videos   content.VideoRepo
	comments content.CommentRepo
	tweets   content.TweetRepo
	likes    engagement.LikeRepo
	subs     engagement.SubscriptionRepo
}

func NewEngagementService(
	db *gorm.DB,
	log *logger.Logger,
	userRepo user.UserRepo,
	videos content.VideoRepo,
	comments content.CommentRepo,
	tweets content.TweetRepo,
	likes engagement.LikeRepo,
	subs engagement.SubscriptionRepo,
) EngagementService {
	serviceLog := log.With("service", "EngagementService")
	return &engagementService{
		db:       db,
		log:      serviceLog,
		userRepo: userRepo,
		videos:   videos,
		comments: comments,
		tweets:   tweets,
		likes:    likes,
		subs:     subs,
	}
}

func (es *engagementService) ToggleLike(ctx context.Context, viewer uuid.UUID, target types.LikeTarget) (bool, error) {
	if viewer == uuid.Nil {
		return false, apperr.Validation("viewer_required")
	}
	if !target.Kind.Valid() || target.ID == uuid.Nil {
		return false, apperr.InvalidReference("like_target")
	}

	if err := es.requireLikeTarget(ctx, target); err != nil {
		return false, err
	}

	inserted, err := es.likes.InsertIfAbsent(ctx, nil, viewer, target)
	if err != nil {
		return false, err
	}
	if inserted {
		es.log.Debug("like edge created", "viewer", viewer, "target_kind", target.Kind, "target_id", target.ID)
		return true, nil
	}

	// Insert lost to an existing edge (possibly one a concurrent toggle just
	// created). The edge exists now, so this call's flip is a removal. A
	// delete that finds nothing means yet another racer removed it first;
	// either way the resulting state is "absent".
	if _, err := es.likes.DeleteEdge(ctx, nil, viewer, target); err != nil {
		return false, err
	}
	es.log.Debug("like edge removed", "viewer", viewer, "target_kind", target.Kind, "target_id", target.ID)
	return false, nil
}

func (es *engagementService) ToggleSubscription(ctx context.Context, viewer, channel uuid.UUID) (bool, error) {
	if viewer == uuid.Nil {
		return false, apperr.Validation("viewer_required")
	}
	if channel == uuid.Nil {
		return false, apperr.InvalidReference("channel_id")
	}
	if viewer == channel {
		return false, apperr.SelfReference("self_subscription")
	}

	exists, err := es.userRepo.Exists(ctx, nil, channel)
	if err != nil {
		return false, err
	}
	if !exists {
		return false, apperr.InvalidReference("channel_id")
	}

	inserted, err := es.subs.InsertIfAbsent(ctx, nil, viewer, channel)
	if err != nil {
		return false, err
	}
	if inserted {
		return true, nil
	}

	if _, err := es.subs.DeleteEdge(ctx, nil, viewer, channel); err != nil {
		return false, err
	}
	return false, nil
}

func (es *engagementService) requireLikeTarget(ctx context.Context, target types.LikeTarget) error {
	switch target.Kind {
	case types.LikeTargetVideo:
		v, err := es.videos.GetByID(ctx, nil, target.ID)
		if err != nil {
			return err
		}
		if v == nil {
			return apperr.InvalidReference("video_id")
		}
	case types.LikeTargetComment:
		c, err := es.comments.GetByID(ctx, nil, target.ID)
		if err != nil {
			return err
		}
		if c == nil {
			return apperr.InvalidReference("comment_id")
		}
	case types.LikeTargetTweet:
		t, err := es.tweets.GetByID(ctx, nil, target.ID)
		if err != nil {
			return err
		}
		if t == nil {
			return apperr.InvalidReference("tweet_id")
		}
	}
	return nil
}
