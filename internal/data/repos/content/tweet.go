package content

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/cliptube/cliptube-backend/internal/domain"
	"github.com/cliptube/cliptube-backend/internal/platform/logger"
)

type TweetRepo interface {
	Create(ctx context.Context, tx *gorm.DB, tweets []*types.Tweet) ([]*types.Tweet, error)
	GetByID(ctx context.Context, tx *gorm.DB, tweetID uuid.UUID) (*types.Tweet, error)
	ListByOwner(ctx context.Context, tx *gorm.DB, ownerID uuid.UUID) ([]*types.Tweet, error)
	UpdateContent(ctx context.Context, tx *gorm.DB, tweetID uuid.UUID, content string) error
	Delete(ctx context.Context, tx *gorm.DB, tweetID uuid.UUID) (int64, error)
}

type tweetRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewTweetRepo(db *gorm.DB, baseLog *logger.Logger) TweetRepo {
	repoLog := baseLog.With("repo", "TweetRepo")
	return &tweetRepo{db: db, log: repoLog}
}

func (tr *tweetRepo) Create(ctx context.Context, tx *gorm.DB, tweets []*types.Tweet) ([]*types.Tweet, error) {
	transaction := tx
	if transaction == nil {
		transaction = tr.db
	}

	if len(tweets) == 0 {
		return []*types.Tweet{}, nil
	}
	for _, t := range tweets {
		if t.ID == uuid.Nil {
			t.ID = uuid.New()
		}
	}

	if err := transaction.WithContext(ctx).Create(&tweets).Error; err != nil {
		return nil, err
	}
	return tweets, nil
}

func (tr *tweetRepo) GetByID(ctx context.Context, tx *gorm.DB, tweetID uuid.UUID) (*types.Tweet, error) {
	transaction := tx
	if transaction == nil {
		transaction = tr.db
	}

	var result types.Tweet
	err := transaction.WithContext(ctx).
		Where("id = ?", tweetID).
		First(&result).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (tr *tweetRepo) ListByOwner(ctx context.Context, tx *gorm.DB, ownerID uuid.UUID) ([]*types.Tweet, error) {
	transaction := tx
	if transaction == nil {
		transaction = tr.db
	}

	var results []*types.Tweet
	if err := transaction.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Order("id ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (tr *tweetRepo) UpdateContent(ctx context.Context, tx *gorm.DB, tweetID uuid.UUID, content string) error {
	transaction := tx
	if transaction == nil {
		transaction = tr.db
	}

	return transaction.WithContext(ctx).
		Model(&types.Tweet{}).
		Where("id = ?", tweetID).
		Update("content", content).Error
}

func (tr *tweetRepo) Delete(ctx context.Context, tx *gorm.DB, tweetID uuid.UUID) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = tr.db
	}

	res := transaction.WithContext(ctx).
		Where("id = ?", tweetID).
		Delete(&types.Tweet{})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}
