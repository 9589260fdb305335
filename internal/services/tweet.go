package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/cliptube/cliptube-backend/internal/data/repos/content"
	"github.com/cliptube/cliptube-backend/internal/data/repos/engagement"
	"github.com/cliptube/cliptube-backend/internal/data/repos/user"
	types "github.com/cliptube/cliptube-backend/internal/domain"
	"github.com/cliptube/cliptube-backend/internal/platform/apperr"
	"github.com/cliptube/cliptube-backend/internal/platform/logger"
)

type TweetService interface {
	CreateTweet(ctx context.Context, viewer uuid.UUID, tweetContent string) (*types.Tweet, error)
	UpdateTweet(ctx context.Context, viewer, tweetID uuid.UUID, tweetContent string) (*types.Tweet, error)
	GetUserTweets(ctx context.Context, viewer, ownerID uuid.UUID) ([]types.TweetView, error)
}

type tweetService struct {
	db       *gorm.DB
	log      *logger.Logger
	userRepo user.UserRepo
	tweets   content.TweetRepo
	likes    engagement.LikeRepo
}

func NewTweetService(
	db *gorm.DB,
	log *logger.Logger,
	userRepo user.UserRepo,
	tweets content.TweetRepo,
	likes engagement.LikeRepo,
) TweetService {
	serviceLog := log.With("service", "TweetService")
	return &tweetService{
		db:       db,
		log:      serviceLog,
		userRepo: userRepo,
		tweets:   tweets,
		likes:    likes,
	}
}

func (ts *tweetService) CreateTweet(ctx context.Context, viewer uuid.UUID, tweetContent string) (*types.Tweet, error) {
	if viewer == uuid.Nil {
		return nil, apperr.Validation("viewer_required")
	}
	if strings.TrimSpace(tweetContent) == "" {
		return nil, apperr.Validation("content_required")
	}

	created, err := ts.tweets.Create(ctx, nil, []*types.Tweet{{
		Content: tweetContent,
		OwnerID: viewer,
	}})
	if err != nil {
		return nil, err
	}
	return created[0], nil
}

func (ts *tweetService) UpdateTweet(ctx context.Context, viewer, tweetID uuid.UUID, tweetContent string) (*types.Tweet, error) {
	if viewer == uuid.Nil {
		return nil, apperr.Validation("viewer_required")
	}
	if strings.TrimSpace(tweetContent) == "" {
		return nil, apperr.Validation("content_required")
	}

	tweet, err := ts.tweets.GetByID(ctx, nil, tweetID)
	if err != nil {
		return nil, err
	}
	if tweet == nil {
		return nil, apperr.InvalidReference("tweet_id")
	}
	if tweet.OwnerID != viewer {
		return nil, apperr.Validation("not_owner")
	}

	if err := ts.tweets.UpdateContent(ctx, nil, tweetID, tweetContent); err != nil {
		return nil, err
	}
	tweet.Content = tweetContent
	return tweet, nil
}

// GetUserTweets lists a user's tweets newest first. is_liked is relative to
// the viewer, not the tweet owner.
func (ts *tweetService) GetUserTweets(ctx context.Context, viewer, ownerID uuid.UUID) ([]types.TweetView, error) {
	if ownerID == uuid.Nil {
		return nil, apperr.InvalidReference("user_id")
	}
	exists, err := ts.userRepo.Exists(ctx, nil, ownerID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperr.InvalidReference("user_id")
	}

	rows, err := ts.tweets.ListByOwner(ctx, nil, ownerID)
	if err != nil {
		return nil, err
	}
	return decorateTweets(ctx, viewer, rows, ts.userRepo, ts.likes)
}
