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
	"github.com/cliptube/cliptube-backend/internal/pkg/pagination"
	"github.com/cliptube/cliptube-backend/internal/platform/apperr"
	"github.com/cliptube/cliptube-backend/internal/platform/logger"
)

// sortColumns is the allow-list for caller-supplied sort keys. Anything else
// is rejected before it reaches the store.
var sortColumns = map[string]string{
	"createdAt": "created_at",
	"title":     "title",
	"duration":  "duration",
	"views":     "views",
}

// VideoFilter narrows a listing. Zero OwnerID means all owners; an empty
// SortBy falls back to newest-first.
type VideoFilter struct {
	Search  string
	OwnerID uuid.UUID
	SortBy  string
	SortDir string
}

type VideoViewService interface {
	ListVideos(ctx context.Context, viewer uuid.UUID, filter VideoFilter, page pagination.Params) (*pagination.Page[types.VideoView], error)
	GetVideo(ctx context.Context, viewer, videoID uuid.UUID) (*types.VideoDetail, error)
	GetWatchHistory(ctx context.Context, viewer uuid.UUID) ([]types.VideoView, error)
	GetLikedVideos(ctx context.Context, viewer uuid.UUID) ([]types.VideoView, error)
}

type videoViewService struct {
	db       *gorm.DB
	log      *logger.Logger
	maxLimit int
	userRepo user.UserRepo
	videos   content.VideoRepo
	likes    engagement.LikeRepo
	subs     engagement.SubscriptionRepo
}

func NewVideoViewService(
	db *gorm.DB,
	log *logger.Logger,
	maxLimit int,
	userRepo user.UserRepo,
	videos content.VideoRepo,
	likes engagement.LikeRepo,
	subs engagement.SubscriptionRepo,
) VideoViewService {
	serviceLog := log.With("service", "VideoViewService")
	return &videoViewService{
		db:       db,
		log:      serviceLog,
		maxLimit: maxLimit,
		userRepo: userRepo,
		videos:   videos,
		likes:    likes,
		subs:     subs,
	}
}

func (vs *videoViewService) ListVideos(ctx context.Context, viewer uuid.UUID, filter VideoFilter, page pagination.Params) (*pagination.Page[types.VideoView], error) {
	page, err := page.Normalize(vs.maxLimit)
	if err != nil {
		return nil, err
	}

	column := "created_at"
	desc := true
	if filter.SortBy != "" {
		col, ok := sortColumns[filter.SortBy]
		if !ok {
			return nil, apperr.Validation("sort_by")
		}
		column = col
	}
	switch filter.SortDir {
	case "", "desc":
	case "asc":
		desc = false
	default:
		return nil, apperr.Validation("sort_dir")
	}

	offset, limit := page.Window()
	rows, total, err := vs.videos.List(ctx, nil, content.ListVideosQuery{
		Search:        filter.Search,
		OwnerID:       filter.OwnerID,
		PublishedOnly: true,
		SortColumn:    column,
		SortDesc:      desc,
		Offset:        offset,
		Limit:         limit,
	})
	if err != nil {
		return nil, err
	}

	views, err := decorateVideos(ctx, viewer, rows, vs.userRepo, vs.likes)
	if err != nil {
		return nil, err
	}
	return pagination.NewPage(views, page, total), nil
}

func (vs *videoViewService) GetVideo(ctx context.Context, viewer, videoID uuid.UUID) (*types.VideoDetail, error) {
	if videoID == uuid.Nil {
		return nil, apperr.InvalidReference("video_id")
	}

	// The view bump happens before the read so the returned count includes
	// this visit.
	if err := vs.videos.IncrementViews(ctx, nil, videoID); err != nil {
		return nil, err
	}
	video, err := vs.videos.GetByID(ctx, nil, videoID)
	if err != nil {
		return nil, err
	}
	if video == nil {
		return nil, apperr.NotFound("video")
	}

	if viewer != uuid.Nil {
		if err := vs.userRepo.UpsertWatch(ctx, nil, viewer, videoID); err != nil {
			return nil, err
		}
	}

	var (
		owner       *types.User
		subscribers int64
		subscribed  bool
		counts      map[uuid.UUID]int64
		likedSet    map[uuid.UUID]struct{}
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		owner, err = vs.userRepo.GetByID(gctx, nil, video.OwnerID)
		return err
	})
	g.Go(func() (err error) {
		subscribers, err = vs.subs.CountSubscribers(gctx, nil, video.OwnerID)
		return err
	})
	g.Go(func() (err error) {
		if viewer == uuid.Nil {
			return nil
		}
		subscribed, err = vs.subs.Exists(gctx, nil, viewer, video.OwnerID)
		return err
	})
	g.Go(func() (err error) {
		counts, err = vs.likes.CountByTargets(gctx, nil, types.LikeTargetVideo, []uuid.UUID{video.ID})
		return err
	})
	g.Go(func() (err error) {
		likedSet, err = vs.likes.LikedSet(gctx, nil, viewer, types.LikeTargetVideo, []uuid.UUID{video.ID})
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	_, liked := likedSet[video.ID]
	return &types.VideoDetail{
		ID:           video.ID,
		Title:        video.Title,
		Description:  video.Description,
		VideoFileURL: video.VideoFileURL,
		ThumbnailURL: video.ThumbnailURL,
		Duration:     video.Duration,
		Views:        video.Views,
		IsPublished:  video.IsPublished,
		CreatedAt:    video.CreatedAt,
		Owner: types.ChannelCard{
			OwnerCard:        ownerCard(owner),
			SubscribersCount: subscribers,
			IsSubscribed:     subscribed,
		},
		LikesCount: counts[video.ID],
		IsLiked:    liked,
	}, nil
}

func (vs *videoViewService) GetWatchHistory(ctx context.Context, viewer uuid.UUID) ([]types.VideoView, error) {
	if viewer == uuid.Nil {
		return nil, apperr.Validation("viewer_required")
	}

	ids, err := vs.userRepo.ListWatchedVideoIDs(ctx, nil, viewer)
	if err != nil {
		return nil, err
	}
	videos, err := vs.resolveInOrder(ctx, ids)
	if err != nil {
		return nil, err
	}
	return decorateVideos(ctx, viewer, videos, vs.userRepo, vs.likes)
}

func (vs *videoViewService) GetLikedVideos(ctx context.Context, viewer uuid.UUID) ([]types.VideoView, error) {
	if viewer == uuid.Nil {
		return nil, apperr.Validation("viewer_required")
	}

	edges, err := vs.likes.ListByLiker(ctx, nil, viewer, types.LikeTargetVideo)
	if err != nil {
		return nil, err
	}
	ids := make([]uuid.UUID, 0, len(edges))
	for _, e := range edges {
		ids = append(ids, e.TargetID)
	}
	videos, err := vs.resolveInOrder(ctx, ids)
	if err != nil {
		return nil, err
	}
	return decorateVideos(ctx, viewer, videos, vs.userRepo, vs.likes)
}

// resolveInOrder fetches videos by id and returns them in the order of ids,
// silently dropping ids whose video no longer exists.
func (vs *videoViewService) resolveInOrder(ctx context.Context, ids []uuid.UUID) ([]*types.Video, error) {
	rows, err := vs.videos.GetByIDs(ctx, nil, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[uuid.UUID]*types.Video, len(rows))
	for _, v := range rows {
		byID[v.ID] = v
	}
	ordered := make([]*types.Video, 0, len(ids))
	for _, id := range ids {
		if v, ok := byID[id]; ok {
			ordered = append(ordered, v)
		}
	}
	return ordered, nil
}
