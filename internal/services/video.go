package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/cliptube/cliptube-backend/internal/data/repos/content"
	types "github.com/cliptube/cliptube-backend/internal/domain"
	"github.com/cliptube/cliptube-backend/internal/platform/apperr"
	"github.com/cliptube/cliptube-backend/internal/platform/logger"
)

// VideoService covers the owner-side write operations on videos. Reads live
// in VideoViewService, deletes in CascadeService.
type VideoService interface {
	PublishVideo(ctx context.Context, viewer uuid.UUID, video *types.Video) (*types.Video, error)
	UpdateVideoDetails(ctx context.Context, viewer, videoID uuid.UUID, title, description string) (*types.Video, error)
	TogglePublishStatus(ctx context.Context, viewer, videoID uuid.UUID) (*types.Video, error)
}

type videoService struct {
	db     *gorm.DB
	log    *logger.Logger
	videos content.VideoRepo
}

func NewVideoService(db *gorm.DB, log *logger.Logger, videos content.VideoRepo) VideoService {
	serviceLog := log.With("service", "VideoService")
	return &videoService{db: db, log: serviceLog, videos: videos}
}

func (vs *videoService) PublishVideo(ctx context.Context, viewer uuid.UUID, video *types.Video) (*types.Video, error) {
	if viewer == uuid.Nil {
		return nil, apperr.Validation("viewer_required")
	}
	if video == nil || strings.TrimSpace(video.Title) == "" {
		return nil, apperr.Validation("title_required")
	}
	if video.VideoFileURL == "" {
		return nil, apperr.Validation("video_file_required")
	}

	video.OwnerID = viewer
	video.IsPublished = true
	created, err := vs.videos.Create(ctx, nil, []*types.Video{video})
	if err != nil {
		return nil, err
	}
	vs.log.Info("video published", "video_id", created[0].ID, "owner_id", viewer)
	return created[0], nil
}

func (vs *videoService) UpdateVideoDetails(ctx context.Context, viewer, videoID uuid.UUID, title, description string) (*types.Video, error) {
	if viewer == uuid.Nil {
		return nil, apperr.Validation("viewer_required")
	}
	if strings.TrimSpace(title) == "" {
		return nil, apperr.Validation("title_required")
	}

	video, err := vs.requireOwned(ctx, viewer, videoID)
	if err != nil {
		return nil, err
	}

	if err := vs.videos.UpdateDetails(ctx, nil, videoID, title, description); err != nil {
		return nil, err
	}
	video.Title = title
	video.Description = description
	return video, nil
}

func (vs *videoService) TogglePublishStatus(ctx context.Context, viewer, videoID uuid.UUID) (*types.Video, error) {
	if viewer == uuid.Nil {
		return nil, apperr.Validation("viewer_required")
	}

	video, err := vs.requireOwned(ctx, viewer, videoID)
	if err != nil {
		return nil, err
	}

	if err := vs.videos.TogglePublished(ctx, nil, videoID); err != nil {
		return nil, err
	}
	video.IsPublished = !video.IsPublished
	return video, nil
}

func (vs *videoService) requireOwned(ctx context.Context, viewer, videoID uuid.UUID) (*types.Video, error) {
	if videoID == uuid.Nil {
		return nil, apperr.InvalidReference("video_id")
	}
	video, err := vs.videos.GetByID(ctx, nil, videoID)
	if err != nil {
		return nil, err
	}
	if video == nil {
		return nil, apperr.InvalidReference("video_id")
	}
	if video.OwnerID != viewer {
		return nil, apperr.Validation("not_owner")
	}
	return video, nil
}
