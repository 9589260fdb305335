package engagement

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	types "github.com/cliptube/cliptube-backend/internal/domain"
	"github.com/cliptube/cliptube-backend/internal/platform/logger"
)

// LikeRepo owns the like edge table. InsertIfAbsent/DeleteEdge are the only
// write paths; both are single statements so two racing toggles resolve on
// the unique index, not on anything read beforehand.
type LikeRepo interface {
	InsertIfAbsent(ctx context.Context, tx *gorm.DB, likedBy uuid.UUID, target types.LikeTarget) (bool, error)
	DeleteEdge(ctx context.Context, tx *gorm.DB, likedBy uuid.UUID, target types.LikeTarget) (int64, error)
	CountByTargets(ctx context.Context, tx *gorm.DB, kind types.LikeTargetKind, targetIDs []uuid.UUID) (map[uuid.UUID]int64, error)
	LikedSet(ctx context.Context, tx *gorm.DB, likedBy uuid.UUID, kind types.LikeTargetKind, targetIDs []uuid.UUID) (map[uuid.UUID]struct{}, error)
	ListByLiker(ctx context.Context, tx *gorm.DB, likedBy uuid.UUID, kind types.LikeTargetKind) ([]*types.Like, error)
	DeleteByTargets(ctx context.Context, tx *gorm.DB, kind types.LikeTargetKind, targetIDs []uuid.UUID) (int64, error)
}

type likeRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewLikeRepo(db *gorm.DB, baseLog *logger.Logger) LikeRepo {
	repoLog := baseLog.With("repo", "LikeRepo")
	return &likeRepo{db: db, log: repoLog}
}

func (lr *likeRepo) InsertIfAbsent(ctx context.Context, tx *gorm.DB, likedBy uuid.UUID, target types.LikeTarget) (bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = lr.db
	}

	edge := &types.Like{
		ID:         uuid.New(),
		LikedByID:  likedBy,
		TargetKind: target.Kind,
		TargetID:   target.ID,
		CreatedAt:  time.Now().UTC(),
	}

	res := transaction.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "liked_by_id"},
				{Name: "target_kind"},
				{Name: "target_id"},
			},
			DoNothing: true,
		}).
		Create(edge)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (lr *likeRepo) DeleteEdge(ctx context.Context, tx *gorm.DB, likedBy uuid.UUID, target types.LikeTarget) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = lr.db
	}

	res := transaction.WithContext(ctx).
		Where("liked_by_id = ? AND target_kind = ? AND target_id = ?", likedBy, target.Kind, target.ID).
		Delete(&types.Like{})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

func (lr *likeRepo) CountByTargets(ctx context.Context, tx *gorm.DB, kind types.LikeTargetKind, targetIDs []uuid.UUID) (map[uuid.UUID]int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = lr.db
	}

	counts := make(map[uuid.UUID]int64, len(targetIDs))
	if len(targetIDs) == 0 {
		return counts, nil
	}

	var rows []struct {
		TargetID uuid.UUID
		N        int64
	}
	if err := transaction.WithContext(ctx).
		Model(&types.Like{}).
		Select("target_id, COUNT(*) AS n").
		Where("target_kind = ? AND target_id IN ?", kind, targetIDs).
		Group("target_id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	for _, row := range rows {
		counts[row.TargetID] = row.N
	}
	return counts, nil
}

func (lr *likeRepo) LikedSet(ctx context.Context, tx *gorm.DB, likedBy uuid.UUID, kind types.LikeTargetKind, targetIDs []uuid.UUID) (map[uuid.UUID]struct{}, error) {
	transaction := tx
	if transaction == nil {
		transaction = lr.db
	}

	liked := make(map[uuid.UUID]struct{}, len(targetIDs))
	if likedBy == uuid.Nil || len(targetIDs) == 0 {
		return liked, nil
	}

	var ids []uuid.UUID
	if err := transaction.WithContext(ctx).
		Model(&types.Like{}).
		Where("liked_by_id = ? AND target_kind = ? AND target_id IN ?", likedBy, kind, targetIDs).
		Pluck("target_id", &ids).Error; err != nil {
		return nil, err
	}
	for _, id := range ids {
		liked[id] = struct{}{}
	}
	return liked, nil
}

func (lr *likeRepo) ListByLiker(ctx context.Context, tx *gorm.DB, likedBy uuid.UUID, kind types.LikeTargetKind) ([]*types.Like, error) {
	transaction := tx
	if transaction == nil {
		transaction = lr.db
	}

	var results []*types.Like
	if likedBy == uuid.Nil {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("liked_by_id = ? AND target_kind = ?", likedBy, kind).
		Order("created_at DESC").
		Order("id ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (lr *likeRepo) DeleteByTargets(ctx context.Context, tx *gorm.DB, kind types.LikeTargetKind, targetIDs []uuid.UUID) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = lr.db
	}

	if len(targetIDs) == 0 {
		return 0, nil
	}

	res := transaction.WithContext(ctx).
		Where("target_kind = ? AND target_id IN ?", kind, targetIDs).
		Delete(&types.Like{})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}
