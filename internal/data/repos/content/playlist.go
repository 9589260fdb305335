package content

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	types "github.com/cliptube/cliptube-backend/internal/domain"
	"github.com/cliptube/cliptube-backend/internal/platform/logger"
)

type PlaylistRepo interface {
	Create(ctx context.Context, tx *gorm.DB, playlists []*types.Playlist) ([]*types.Playlist, error)
	GetByID(ctx context.Context, tx *gorm.DB, playlistID uuid.UUID) (*types.Playlist, error)
	ListByOwner(ctx context.Context, tx *gorm.DB, ownerID uuid.UUID) ([]*types.Playlist, error)
	Update(ctx context.Context, tx *gorm.DB, playlistID uuid.UUID, name, description string) error
	Delete(ctx context.Context, tx *gorm.DB, playlistID uuid.UUID) (int64, error)

	AddVideo(ctx context.Context, tx *gorm.DB, playlistID, videoID uuid.UUID) (bool, error)
	RemoveVideo(ctx context.Context, tx *gorm.DB, playlistID, videoID uuid.UUID) (int64, error)
	RemoveVideoFromAll(ctx context.Context, tx *gorm.DB, videoID uuid.UUID) (int64, error)
	ListVideoIDs(ctx context.Context, tx *gorm.DB, playlistID uuid.UUID) ([]uuid.UUID, error)
	DeleteMembers(ctx context.Context, tx *gorm.DB, playlistID uuid.UUID) (int64, error)
}

type playlistRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPlaylistRepo(db *gorm.DB, baseLog *logger.Logger) PlaylistRepo {
	repoLog := baseLog.With("repo", "PlaylistRepo")
	return &playlistRepo{db: db, log: repoLog}
}

func (pr *playlistRepo) Create(ctx context.Context, tx *gorm.DB, playlists []*types.Playlist) ([]*types.Playlist, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}

	if len(playlists) == 0 {
		return []*types.Playlist{}, nil
	}
	for _, p := range playlists {
		if p.ID == uuid.Nil {
			p.ID = uuid.New()
		}
	}

	if err := transaction.WithContext(ctx).Create(&playlists).Error; err != nil {
		return nil, err
	}
	return playlists, nil
}

func (pr *playlistRepo) GetByID(ctx context.Context, tx *gorm.DB, playlistID uuid.UUID) (*types.Playlist, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}

	var result types.Playlist
	err := transaction.WithContext(ctx).
		Where("id = ?", playlistID).
		First(&result).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (pr *playlistRepo) ListByOwner(ctx context.Context, tx *gorm.DB, ownerID uuid.UUID) ([]*types.Playlist, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}

	var results []*types.Playlist
	if err := transaction.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Order("id ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (pr *playlistRepo) Update(ctx context.Context, tx *gorm.DB, playlistID uuid.UUID, name, description string) error {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}

	return transaction.WithContext(ctx).
		Model(&types.Playlist{}).
		Where("id = ?", playlistID).
		Updates(map[string]any{
			"name":        name,
			"description": description,
		}).Error
}

func (pr *playlistRepo) Delete(ctx context.Context, tx *gorm.DB, playlistID uuid.UUID) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}

	res := transaction.WithContext(ctx).
		Where("id = ?", playlistID).
		Delete(&types.Playlist{})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

// AddVideo appends to the playlist's order; adding an existing member is a
// no-op (reported via the bool) rather than an error.
func (pr *playlistRepo) AddVideo(ctx context.Context, tx *gorm.DB, playlistID, videoID uuid.UUID) (bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}

	// Position is computed inside the insert; a separate MAX read would let
	// two concurrent adds land the same slot.
	res := transaction.WithContext(ctx).
		Model(&types.PlaylistVideo{}).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "playlist_id"},
				{Name: "video_id"},
			},
			DoNothing: true,
		}).
		Create(map[string]interface{}{
			"id":          uuid.New(),
			"playlist_id": playlistID,
			"video_id":    videoID,
			"position": gorm.Expr(
				"(SELECT COALESCE(MAX(pv.position), 0) + 1 FROM playlist_videos pv WHERE pv.playlist_id = ?)",
				playlistID,
			),
			"created_at": time.Now().UTC(),
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (pr *playlistRepo) RemoveVideo(ctx context.Context, tx *gorm.DB, playlistID, videoID uuid.UUID) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}

	res := transaction.WithContext(ctx).
		Where("playlist_id = ? AND video_id = ?", playlistID, videoID).
		Delete(&types.PlaylistVideo{})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

func (pr *playlistRepo) RemoveVideoFromAll(ctx context.Context, tx *gorm.DB, videoID uuid.UUID) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}

	res := transaction.WithContext(ctx).
		Where("video_id = ?", videoID).
		Delete(&types.PlaylistVideo{})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

func (pr *playlistRepo) ListVideoIDs(ctx context.Context, tx *gorm.DB, playlistID uuid.UUID) ([]uuid.UUID, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}

	var ids []uuid.UUID
	if err := transaction.WithContext(ctx).
		Model(&types.PlaylistVideo{}).
		Where("playlist_id = ?", playlistID).
		Order("position ASC").
		Order("id ASC").
		Pluck("video_id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

func (pr *playlistRepo) DeleteMembers(ctx context.Context, tx *gorm.DB, playlistID uuid.UUID) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}

	res := transaction.WithContext(ctx).
		Where("playlist_id = ?", playlistID).
		Delete(&types.PlaylistVideo{})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}
