package content

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/cliptube/cliptube-backend/internal/domain"
	"github.com/cliptube/cliptube-backend/internal/platform/logger"
)

// ListVideosQuery is the already-validated shape of a video listing. SortColumn
// is a column name from the service allow-list, never raw caller input.
type ListVideosQuery struct {
	Search        string
	OwnerID       uuid.UUID
	PublishedOnly bool
	SortColumn    string
	SortDesc      bool
	Offset        int
	Limit         int
}

type VideoRepo interface {
	Create(ctx context.Context, tx *gorm.DB, videos []*types.Video) ([]*types.Video, error)
	GetByID(ctx context.Context, tx *gorm.DB, videoID uuid.UUID) (*types.Video, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, videoIDs []uuid.UUID) ([]*types.Video, error)
	List(ctx context.Context, tx *gorm.DB, q ListVideosQuery) ([]*types.Video, int64, error)
	ListIDsByOwner(ctx context.Context, tx *gorm.DB, ownerID uuid.UUID) ([]uuid.UUID, error)
	LatestByOwner(ctx context.Context, tx *gorm.DB, ownerID uuid.UUID) (*types.Video, error)
	OwnerTotals(ctx context.Context, tx *gorm.DB, ownerID uuid.UUID) (videos int64, views int64, err error)
	IncrementViews(ctx context.Context, tx *gorm.DB, videoID uuid.UUID) error
	UpdateDetails(ctx context.Context, tx *gorm.DB, videoID uuid.UUID, title, description string) error
	TogglePublished(ctx context.Context, tx *gorm.DB, videoID uuid.UUID) error
	Delete(ctx context.Context, tx *gorm.DB, videoID uuid.UUID) (int64, error)
}

type videoRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewVideoRepo(db *gorm.DB, baseLog *logger.Logger) VideoRepo {
	repoLog := baseLog.With("repo", "VideoRepo")
	return &videoRepo{db: db, log: repoLog}
}

func (vr *videoRepo) Create(ctx context.Context, tx *gorm.DB, videos []*types.Video) ([]*types.Video, error) {
	transaction := tx
	if transaction == nil {
		transaction = vr.db
	}

	if len(videos) == 0 {
		return []*types.Video{}, nil
	}
	for _, v := range videos {
		if v.ID == uuid.Nil {
			v.ID = uuid.New()
		}
	}

	if err := transaction.WithContext(ctx).Create(&videos).Error; err != nil {
		return nil, err
	}
	return videos, nil
}

func (vr *videoRepo) GetByID(ctx context.Context, tx *gorm.DB, videoID uuid.UUID) (*types.Video, error) {
	transaction := tx
	if transaction == nil {
		transaction = vr.db
	}

	var result types.Video
	err := transaction.WithContext(ctx).
		Where("id = ?", videoID).
		First(&result).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (vr *videoRepo) GetByIDs(ctx context.Context, tx *gorm.DB, videoIDs []uuid.UUID) ([]*types.Video, error) {
	transaction := tx
	if transaction == nil {
		transaction = vr.db
	}

	var results []*types.Video
	if len(videoIDs) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("id IN ?", videoIDs).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (vr *videoRepo) List(ctx context.Context, tx *gorm.DB, q ListVideosQuery) ([]*types.Video, int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = vr.db
	}

	base := transaction.WithContext(ctx).Model(&types.Video{})
	if q.Search != "" {
		pattern := "%" + q.Search + "%"
		base = base.Where("LOWER(title) LIKE LOWER(?) OR LOWER(description) LIKE LOWER(?)", pattern, pattern)
	}
	if q.OwnerID != uuid.Nil {
		base = base.Where("owner_id = ?", q.OwnerID)
	}
	if q.PublishedOnly {
		base = base.Where("is_published = ?", true)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	direction := "ASC"
	if q.SortDesc {
		direction = "DESC"
	}

	var results []*types.Video
	if err := base.
		Order(fmt.Sprintf("%s %s", q.SortColumn, direction)).
		Order("id ASC").
		Offset(q.Offset).
		Limit(q.Limit).
		Find(&results).Error; err != nil {
		return nil, 0, err
	}
	return results, total, nil
}

func (vr *videoRepo) ListIDsByOwner(ctx context.Context, tx *gorm.DB, ownerID uuid.UUID) ([]uuid.UUID, error) {
	transaction := tx
	if transaction == nil {
		transaction = vr.db
	}

	var ids []uuid.UUID
	if err := transaction.WithContext(ctx).
		Model(&types.Video{}).
		Where("owner_id = ?", ownerID).
		Pluck("id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

func (vr *videoRepo) LatestByOwner(ctx context.Context, tx *gorm.DB, ownerID uuid.UUID) (*types.Video, error) {
	transaction := tx
	if transaction == nil {
		transaction = vr.db
	}

	var result types.Video
	err := transaction.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Order("id ASC").
		First(&result).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (vr *videoRepo) OwnerTotals(ctx context.Context, tx *gorm.DB, ownerID uuid.UUID) (int64, int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = vr.db
	}

	var row struct {
		Videos int64
		Views  int64
	}
	if err := transaction.WithContext(ctx).
		Model(&types.Video{}).
		Select("COUNT(*) AS videos, COALESCE(SUM(views), 0) AS views").
		Where("owner_id = ?", ownerID).
		Scan(&row).Error; err != nil {
		return 0, 0, err
	}
	return row.Videos, row.Views, nil
}

func (vr *videoRepo) IncrementViews(ctx context.Context, tx *gorm.DB, videoID uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = vr.db
	}

	return transaction.WithContext(ctx).
		Model(&types.Video{}).
		Where("id = ?", videoID).
		UpdateColumn("views", gorm.Expr("views + 1")).Error
}

func (vr *videoRepo) UpdateDetails(ctx context.Context, tx *gorm.DB, videoID uuid.UUID, title, description string) error {
	transaction := tx
	if transaction == nil {
		transaction = vr.db
	}

	return transaction.WithContext(ctx).
		Model(&types.Video{}).
		Where("id = ?", videoID).
		Updates(map[string]any{
			"title":       title,
			"description": description,
		}).Error
}

func (vr *videoRepo) TogglePublished(ctx context.Context, tx *gorm.DB, videoID uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = vr.db
	}

	return transaction.WithContext(ctx).
		Model(&types.Video{}).
		Where("id = ?", videoID).
		UpdateColumn("is_published", gorm.Expr("NOT is_published")).Error
}

func (vr *videoRepo) Delete(ctx context.Context, tx *gorm.DB, videoID uuid.UUID) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = vr.db
	}

	res := transaction.WithContext(ctx).
		Where("id = ?", videoID).
		Delete(&types.Video{})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}
