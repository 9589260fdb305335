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

type PlaylistService interface {
	CreatePlaylist(ctx context.Context, viewer uuid.UUID, name, description string) (*types.Playlist, error)
	UpdatePlaylist(ctx context.Context, viewer, playlistID uuid.UUID, name, description string) (*types.Playlist, error)
	AddVideoToPlaylist(ctx context.Context, viewer, playlistID, videoID uuid.UUID) (bool, error)
	RemoveVideoFromPlaylist(ctx context.Context, viewer, playlistID, videoID uuid.UUID) error
	GetPlaylist(ctx context.Context, viewer, playlistID uuid.UUID) (*types.PlaylistView, error)
	GetUserPlaylists(ctx context.Context, viewer, ownerID uuid.UUID) ([]types.PlaylistView, error)
}

type playlistService struct {
	db        *gorm.DB
	log       *logger.Logger
	userRepo  user.UserRepo
	videos    content.VideoRepo
	playlists content.PlaylistRepo
	likes     engagement.LikeRepo
}

func NewPlaylistService(
	db *gorm.DB,
	log *logger.Logger,
	userRepo user.UserRepo,
	videos content.VideoRepo,
	playlists content.PlaylistRepo,
	likes engagement.LikeRepo,
) PlaylistService {
	serviceLog := log.With("service", "PlaylistService")
	return &playlistService{
		db:        db,
		log:       serviceLog,
		userRepo:  userRepo,
		videos:    videos,
		playlists: playlists,
		likes:     likes,
	}
}

func (ps *playlistService) CreatePlaylist(ctx context.Context, viewer uuid.UUID, name, description string) (*types.Playlist, error) {
	if viewer == uuid.Nil {
		return nil, apperr.Validation("viewer_required")
	}
	if strings.TrimSpace(name) == "" {
		return nil, apperr.Validation("name_required")
	}

	created, err := ps.playlists.Create(ctx, nil, []*types.Playlist{{
		Name:        name,
		Description: description,
		OwnerID:     viewer,
	}})
	if err != nil {
		return nil, err
	}
	return created[0], nil
}

func (ps *playlistService) UpdatePlaylist(ctx context.Context, viewer, playlistID uuid.UUID, name, description string) (*types.Playlist, error) {
	if viewer == uuid.Nil {
		return nil, apperr.Validation("viewer_required")
	}
	if strings.TrimSpace(name) == "" {
		return nil, apperr.Validation("name_required")
	}

	playlist, err := ps.requireOwned(ctx, viewer, playlistID)
	if err != nil {
		return nil, err
	}

	if err := ps.playlists.Update(ctx, nil, playlistID, name, description); err != nil {
		return nil, err
	}
	playlist.Name = name
	playlist.Description = description
	return playlist, nil
}

// AddVideoToPlaylist reports whether the video was newly added; adding a
// member twice leaves a single row and returns false.
func (ps *playlistService) AddVideoToPlaylist(ctx context.Context, viewer, playlistID, videoID uuid.UUID) (bool, error) {
	if viewer == uuid.Nil {
		return false, apperr.Validation("viewer_required")
	}

	if _, err := ps.requireOwned(ctx, viewer, playlistID); err != nil {
		return false, err
	}
	video, err := ps.videos.GetByID(ctx, nil, videoID)
	if err != nil {
		return false, err
	}
	if video == nil {
		return false, apperr.InvalidReference("video_id")
	}

	return ps.playlists.AddVideo(ctx, nil, playlistID, videoID)
}

func (ps *playlistService) RemoveVideoFromPlaylist(ctx context.Context, viewer, playlistID, videoID uuid.UUID) error {
	if viewer == uuid.Nil {
		return apperr.Validation("viewer_required")
	}

	if _, err := ps.requireOwned(ctx, viewer, playlistID); err != nil {
		return err
	}
	_, err := ps.playlists.RemoveVideo(ctx, nil, playlistID, videoID)
	return err
}

func (ps *playlistService) GetPlaylist(ctx context.Context, viewer, playlistID uuid.UUID) (*types.PlaylistView, error) {
	if playlistID == uuid.Nil {
		return nil, apperr.InvalidReference("playlist_id")
	}
	playlist, err := ps.playlists.GetByID(ctx, nil, playlistID)
	if err != nil {
		return nil, err
	}
	if playlist == nil {
		return nil, apperr.NotFound("playlist")
	}
	return ps.compose(ctx, viewer, playlist, true)
}

func (ps *playlistService) GetUserPlaylists(ctx context.Context, viewer, ownerID uuid.UUID) ([]types.PlaylistView, error) {
	if ownerID == uuid.Nil {
		return nil, apperr.InvalidReference("user_id")
	}
	exists, err := ps.userRepo.Exists(ctx, nil, ownerID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperr.InvalidReference("user_id")
	}

	rows, err := ps.playlists.ListByOwner(ctx, nil, ownerID)
	if err != nil {
		return nil, err
	}
	views := make([]types.PlaylistView, 0, len(rows))
	for _, p := range rows {
		view, err := ps.compose(ctx, viewer, p, false)
		if err != nil {
			return nil, err
		}
		views = append(views, *view)
	}
	return views, nil
}

// compose builds the read model. Member videos keep playlist position order
// and only published members are resolved; drafts stay out of the list and
// out of the counts. withVideos controls whether the full member list is
// attached or only the counts.
func (ps *playlistService) compose(ctx context.Context, viewer uuid.UUID, playlist *types.Playlist, withVideos bool) (*types.PlaylistView, error) {
	owner, err := ps.userRepo.GetByID(ctx, nil, playlist.OwnerID)
	if err != nil {
		return nil, err
	}

	videoIDs, err := ps.playlists.ListVideoIDs(ctx, nil, playlist.ID)
	if err != nil {
		return nil, err
	}
	rows, err := ps.videos.GetByIDs(ctx, nil, videoIDs)
	if err != nil {
		return nil, err
	}
	byID := make(map[uuid.UUID]*types.Video, len(rows))
	for _, v := range rows {
		byID[v.ID] = v
	}
	ordered := make([]*types.Video, 0, len(videoIDs))
	var totalViews int64
	for _, id := range videoIDs {
		if v, ok := byID[id]; ok && v.IsPublished {
			ordered = append(ordered, v)
			totalViews += v.Views
		}
	}

	view := &types.PlaylistView{
		ID:          playlist.ID,
		Name:        playlist.Name,
		Description: playlist.Description,
		Owner:       ownerCard(owner),
		VideosCount: int64(len(ordered)),
		TotalViews:  totalViews,
		CreatedAt:   playlist.CreatedAt,
		Videos:      []types.VideoView{},
	}
	if withVideos {
		views, err := decorateVideos(ctx, viewer, ordered, ps.userRepo, ps.likes)
		if err != nil {
			return nil, err
		}
		view.Videos = views
	}
	return view, nil
}

func (ps *playlistService) requireOwned(ctx context.Context, viewer, playlistID uuid.UUID) (*types.Playlist, error) {
	if playlistID == uuid.Nil {
		return nil, apperr.InvalidReference("playlist_id")
	}
	playlist, err := ps.playlists.GetByID(ctx, nil, playlistID)
	if err != nil {
		return nil, err
	}
	if playlist == nil {
		return nil, apperr.InvalidReference("playlist_id")
	}
	if playlist.OwnerID != viewer {
		return nil, apperr.Validation("not_owner")
	}
	return playlist, nil
}
