package content

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/cliptube/cliptube-backend/internal/domain"
	"github.com/cliptube/cliptube-backend/internal/platform/logger"
)

type CommentRepo interface {
	Create(ctx context.Context, tx *gorm.DB, comments []*types.Comment) ([]*types.Comment, error)
	GetByID(ctx context.Context, tx *gorm.DB, commentID uuid.UUID) (*types.Comment, error)
	ListByVideo(ctx context.Context, tx *gorm.DB, videoID uuid.UUID, offset, limit int) ([]*types.Comment, int64, error)
	ListIDsByVideo(ctx context.Context, tx *gorm.DB, videoID uuid.UUID) ([]uuid.UUID, error)
	UpdateContent(ctx context.Context, tx *gorm.DB, commentID uuid.UUID, content string) error
	Delete(ctx context.Context, tx *gorm.DB, commentID uuid.UUID) (int64, error)
	DeleteByVideo(ctx context.Context, tx *gorm.DB, videoID uuid.UUID) (int64, error)
}

type commentRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCommentRepo(db *gorm.DB, baseLog *logger.Logger) CommentRepo {
	repoLog := baseLog.With("repo", "CommentRepo")
	return &commentRepo{db: db, log: repoLog}
}

func (cr *commentRepo) Create(ctx context.Context, tx *gorm.DB, comments []*types.Comment) ([]*types.Comment, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}

	if len(comments) == 0 {
		return []*types.Comment{}, nil
	}
	for _, c := range comments {
		if c.ID == uuid.Nil {
			c.ID = uuid.New()
		}
	}

	if err := transaction.WithContext(ctx).Create(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

func (cr *commentRepo) GetByID(ctx context.Context, tx *gorm.DB, commentID uuid.UUID) (*types.Comment, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}

	var result types.Comment
	err := transaction.WithContext(ctx).
		Where("id = ?", commentID).
		First(&result).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (cr *commentRepo) ListByVideo(ctx context.Context, tx *gorm.DB, videoID uuid.UUID, offset, limit int) ([]*types.Comment, int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}

	base := transaction.WithContext(ctx).
		Model(&types.Comment{}).
		Where("video_id = ?", videoID)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var results []*types.Comment
	if err := base.
		Order("created_at DESC").
		Order("id ASC").
		Offset(offset).
		Limit(limit).
		Find(&results).Error; err != nil {
		return nil, 0, err
	}
	return results, total, nil
}

func (cr *commentRepo) ListIDsByVideo(ctx context.Context, tx *gorm.DB, videoID uuid.UUID) ([]uuid.UUID, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}

	var ids []uuid.UUID
	if err := transaction.WithContext(ctx).
		Model(&types.Comment{}).
		Where("video_id = ?", videoID).
		Pluck("id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

func (cr *commentRepo) UpdateContent(ctx context.Context, tx *gorm.DB, commentID uuid.UUID, content string) error {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}

	return transaction.WithContext(ctx).
		Model(&types.Comment{}).
		Where("id = ?", commentID).
		Update("content", content).Error
}

func (cr *commentRepo) Delete(ctx context.Context, tx *gorm.DB, commentID uuid.UUID) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}

	res := transaction.WithContext(ctx).
		Where("id = ?", commentID).
		Delete(&types.Comment{})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

func (cr *commentRepo) DeleteByVideo(ctx context.Context, tx *gorm.DB, videoID uuid.UUID) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}

	res := transaction.WithContext(ctx).
		Where("video_id = ?", videoID).
		Delete(&types.Comment{})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}
