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

type SubscriptionRepo interface {
	InsertIfAbsent(ctx context.Context, tx *gorm.DB, subscriber, channel uuid.UUID) (bool, error)
	DeleteEdge(ctx context.Context, tx *gorm.DB, subscriber, channel uuid.UUID) (int64, error)
	Exists(ctx context.Context, tx *gorm.DB, subscriber, channel uuid.UUID) (bool, error)
	CountSubscribers(ctx context.Context, tx *gorm.DB, channel uuid.UUID) (int64, error)
	CountSubscriptions(ctx context.Context, tx *gorm.DB, subscriber uuid.UUID) (int64, error)
	CountSubscribersBatch(ctx context.Context, tx *gorm.DB, channels []uuid.UUID) (map[uuid.UUID]int64, error)
	SubscribedSet(ctx context.Context, tx *gorm.DB, subscriber uuid.UUID, channels []uuid.UUID) (map[uuid.UUID]struct{}, error)
	ListSubscriberIDs(ctx context.Context, tx *gorm.DB, channel uuid.UUID) ([]uuid.UUID, error)
	ListSubscribedChannelIDs(ctx context.Context, tx *gorm.DB, subscriber uuid.UUID) ([]uuid.UUID, error)
}

type subscriptionRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewSubscriptionRepo(db *gorm.DB, baseLog *logger.Logger) SubscriptionRepo {
	repoLog := baseLog.With("repo", "SubscriptionRepo")
	return &subscriptionRepo{db: db, log: repoLog}
}

func (sr *subscriptionRepo) InsertIfAbsent(ctx context.Context, tx *gorm.DB, subscriber, channel uuid.UUID) (bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}

	edge := &types.Subscription{
		ID:           uuid.New(),
		SubscriberID: subscriber,
		ChannelID:    channel,
		CreatedAt:    time.Now().UTC(),
	}

	res := transaction.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "subscriber_id"},
				{Name: "channel_id"},
			},
			DoNothing: true,
		}).
		Create(edge)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (sr *subscriptionRepo) DeleteEdge(ctx context.Context, tx *gorm.DB, subscriber, channel uuid.UUID) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}

	res := transaction.WithContext(ctx).
		Where("subscriber_id = ? AND channel_id = ?", subscriber, channel).
		Delete(&types.Subscription{})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

func (sr *subscriptionRepo) Exists(ctx context.Context, tx *gorm.DB, subscriber, channel uuid.UUID) (bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}

	if subscriber == uuid.Nil {
		return false, nil
	}

	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.Subscription{}).
		Where("subscriber_id = ? AND channel_id = ?", subscriber, channel).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (sr *subscriptionRepo) CountSubscribers(ctx context.Context, tx *gorm.DB, channel uuid.UUID) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}

	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.Subscription{}).
		Where("channel_id = ?", channel).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (sr *subscriptionRepo) CountSubscriptions(ctx context.Context, tx *gorm.DB, subscriber uuid.UUID) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}

	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.Subscription{}).
		Where("subscriber_id = ?", subscriber).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (sr *subscriptionRepo) CountSubscribersBatch(ctx context.Context, tx *gorm.DB, channels []uuid.UUID) (map[uuid.UUID]int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}

	counts := make(map[uuid.UUID]int64, len(channels))
	if len(channels) == 0 {
		return counts, nil
	}

	var rows []struct {
		ChannelID uuid.UUID
		N         int64
	}
	if err := transaction.WithContext(ctx).
		Model(&types.Subscription{}).
		Select("channel_id, COUNT(*) AS n").
		Where("channel_id IN ?", channels).
		Group("channel_id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	for _, row := range rows {
		counts[row.ChannelID] = row.N
	}
	return counts, nil
}

func (sr *subscriptionRepo) SubscribedSet(ctx context.Context, tx *gorm.DB, subscriber uuid.UUID, channels []uuid.UUID) (map[uuid.UUID]struct{}, error) {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}

	subscribed := make(map[uuid.UUID]struct{}, len(channels))
	if subscriber == uuid.Nil || len(channels) == 0 {
		return subscribed, nil
	}

	var ids []uuid.UUID
	if err := transaction.WithContext(ctx).
		Model(&types.Subscription{}).
		Where("subscriber_id = ? AND channel_id IN ?", subscriber, channels).
		Pluck("channel_id", &ids).Error; err != nil {
		return nil, err
	}
	for _, id := range ids {
		subscribed[id] = struct{}{}
	}
	return subscribed, nil
}

func (sr *subscriptionRepo) ListSubscriberIDs(ctx context.Context, tx *gorm.DB, channel uuid.UUID) ([]uuid.UUID, error) {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}

	var ids []uuid.UUID
	if err := transaction.WithContext(ctx).
		Model(&types.Subscription{}).
		Where("channel_id = ?", channel).
		Order("created_at ASC").
		Order("id ASC").
		Pluck("subscriber_id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

func (sr *subscriptionRepo) ListSubscribedChannelIDs(ctx context.Context, tx *gorm.DB, subscriber uuid.UUID) ([]uuid.UUID, error) {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}

	var ids []uuid.UUID
	if err := transaction.WithContext(ctx).
		Model(&types.Subscription{}).
		Where("subscriber_id = ?", subscriber).
		Order("created_at ASC").
		Order("id ASC").
		Pluck("channel_id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}
