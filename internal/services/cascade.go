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

// CascadeService removes an entity together with everything hanging off it:
// likes on the entity, likes on its dependents, the dependents themselves,
// playlist memberships and watch rows. Steps run dependents-first and every
// step is idempotent, so a delete that dies halfway can simply be re-run.
// Deleting something already gone is success, not an error.
type CascadeService interface {
	DeleteVideo(ctx context.Context, actor, videoID uuid.UUID) error
	DeleteComment(ctx context.Context, actor, commentID uuid.UUID) error
	DeleteTweet(ctx context.Context, actor, tweetID uuid.UUID) error
	DeletePlaylist(ctx context.Context, actor, playlistID uuid.UUID) error
}

type cascadeService struct {
	db        *gorm.DB
	log       *logger.Logger
	userRepo  user.UserRepo
	videos    content.VideoRepo
	comments  content.CommentRepo
	tweets    content.TweetRepo
	playlists content.PlaylistRepo
	likes     engagement.LikeRepo
}

func NewCascadeService(
	db *gorm.DB,
	log *logger.Logger,
	userRepo user.UserRepo,
	videos content.VideoRepo,
	comments content.CommentRepo,
	tweets content.TweetRepo,
	playlists content.PlaylistRepo,
	likes engagement.LikeRepo,
) CascadeService {
	serviceLog := log.With("service", "CascadeService")
	return &cascadeService{
		db:        db,
		log:       serviceLog,
		userRepo:  userRepo,
		videos:    videos,
		comments:  comments,
		tweets:    tweets,
		playlists: playlists,
		likes:     likes,
	}
}

func (cds *cascadeService) DeleteVideo(ctx context.Context, actor, videoID uuid.UUID) error {
	if actor == uuid.Nil {
		return apperr.Validation("viewer_required")
	}
	if videoID == uuid.Nil {
		return apperr.InvalidReference("video_id")
	}

	video, err := cds.videos.GetByID(ctx, nil, videoID)
	if err != nil {
		return err
	}
	if video == nil {
		return nil
	}
	if video.OwnerID != actor {
		return apperr.Validation("not_owner")
	}

	commentIDs, err := cds.comments.ListIDsByVideo(ctx, nil, videoID)
	if err != nil {
		return err
	}

	if _, err := cds.likes.DeleteByTargets(ctx, nil, types.LikeTargetComment, commentIDs); err != nil {
		return err
	}
	if _, err := cds.likes.DeleteByTargets(ctx, nil, types.LikeTargetVideo, []uuid.UUID{videoID}); err != nil {
		return err
	}
	if _, err := cds.comments.DeleteByVideo(ctx, nil, videoID); err != nil {
		return err
	}
	if _, err := cds.playlists.RemoveVideoFromAll(ctx, nil, videoID); err != nil {
		return err
	}
	if _, err := cds.userRepo.DeleteWatchesByVideo(ctx, nil, videoID); err != nil {
		return err
	}
	if _, err := cds.videos.Delete(ctx, nil, videoID); err != nil {
		return err
	}

	cds.log.Info("video cascade deleted", "video_id", videoID, "comments", len(commentIDs))
	return nil
}

func (cds *cascadeService) DeleteComment(ctx context.Context, actor, commentID uuid.UUID) error {
	if actor == uuid.Nil {
		return apperr.Validation("viewer_required")
	}
	if commentID == uuid.Nil {
		return apperr.InvalidReference("comment_id")
	}

	comment, err := cds.comments.GetByID(ctx, nil, commentID)
	if err != nil {
		return err
	}
	if comment == nil {
		return nil
	}
	if comment.OwnerID != actor {
		return apperr.Validation("not_owner")
	}

	if _, err := cds.likes.DeleteByTargets(ctx, nil, types.LikeTargetComment, []uuid.UUID{commentID}); err != nil {
		return err
	}
	_, err = cds.comments.Delete(ctx, nil, commentID)
	return err
}

func (cds *cascadeService) DeleteTweet(ctx context.Context, actor, tweetID uuid.UUID) error {
	if actor == uuid.Nil {
		return apperr.Validation("viewer_required")
	}
	if tweetID == uuid.Nil {
		return apperr.InvalidReference("tweet_id")
	}

	tweet, err := cds.tweets.GetByID(ctx, nil, tweetID)
	if err != nil {
		return err
	}
	if tweet == nil {
		return nil
	}
	if tweet.OwnerID != actor {
		return apperr.Validation("not_owner")
	}

	if _, err := cds.likes.DeleteByTargets(ctx, nil, types.LikeTargetTweet, []uuid.UUID{tweetID}); err != nil {
		return err
	}
	_, err = cds.tweets.Delete(ctx, nil, tweetID)
	return err
}

func (cds *cascadeService) DeletePlaylist(ctx context.Context, actor, playlistID uuid.UUID) error {
	if actor == uuid.Nil {
		return apperr.Validation("viewer_required")
	}
	if playlistID == uuid.Nil {
		return apperr.InvalidReference("playlist_id")
	}

	playlist, err := cds.playlists.GetByID(ctx, nil, playlistID)
	if err != nil {
		return err
	}
	if playlist == nil {
		return nil
	}
	if playlist.OwnerID != actor {
		return apperr.Validation("not_owner")
	}

	if _, err := cds.playlists.DeleteMembers(ctx, nil, playlistID); err != nil {
		return err
	}
	_, err = cds.playlists.Delete(ctx, nil, playlistID)
	return err
}
