package testutil

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/cliptube/cliptube-backend/internal/domain"
)

func SeedUser(tb testing.TB, ctx context.Context, tx *gorm.DB, username string) *types.User {
	tb.Helper()
	u := &types.User{
		ID:       uuid.New(),
		Username: username,
		Email:    fmt.Sprintf("%s@example.com", username),
		FullName: "Test " + username,
	}
	if err := tx.WithContext(ctx).Create(u).Error; err != nil {
		tb.Fatalf("seed user: %v", err)
	}
	return u
}

func SeedVideo(tb testing.TB, ctx context.Context, tx *gorm.DB, ownerID uuid.UUID, title string, published bool) *types.Video {
	tb.Helper()
	v := &types.Video{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		Title:       title,
		Description: "about " + title,
		Duration:    120,
		IsPublished: published,
		CreatedAt:   time.Now().UTC(),
		UpdatedAt:   time.Now().UTC(),
	}
	if err := tx.WithContext(ctx).Create(v).Error; err != nil {
		tb.Fatalf("seed video: %v", err)
	}
	return v
}

func SeedComment(tb testing.TB, ctx context.Context, tx *gorm.DB, videoID, ownerID uuid.UUID, content string) *types.Comment {
	tb.Helper()
	c := &types.Comment{
		ID:      uuid.New(),
		Content: content,
		VideoID: videoID,
		OwnerID: ownerID,
	}
	if err := tx.WithContext(ctx).Create(c).Error; err != nil {
		tb.Fatalf("seed comment: %v", err)
	}
	return c
}

func SeedTweet(tb testing.TB, ctx context.Context, tx *gorm.DB, ownerID uuid.UUID, content string) *types.Tweet {
	tb.Helper()
	t := &types.Tweet{
		ID:      uuid.New(),
		Content: content,
		OwnerID: ownerID,
	}
	if err := tx.WithContext(ctx).Create(t).Error; err != nil {
		tb.Fatalf("seed tweet: %v", err)
	}
	return t
}

func SeedPlaylist(tb testing.TB, ctx context.Context, tx *gorm.DB, ownerID uuid.UUID, name string) *types.Playlist {
	tb.Helper()
	p := &types.Playlist{
		ID:      uuid.New(),
		Name:    name,
		OwnerID: ownerID,
	}
	if err := tx.WithContext(ctx).Create(p).Error; err != nil {
		tb.Fatalf("seed playlist: %v", err)
	}
	return p
}

func SeedLike(tb testing.TB, ctx context.Context, tx *gorm.DB, likedBy uuid.UUID, kind types.LikeTargetKind, targetID uuid.UUID) *types.Like {
	tb.Helper()
	l := &types.Like{
		ID:         uuid.New(),
		LikedByID:  likedBy,
		TargetKind: kind,
		TargetID:   targetID,
		CreatedAt:  time.Now().UTC(),
	}
	if err := tx.WithContext(ctx).Create(l).Error; err != nil {
		tb.Fatalf("seed like: %v", err)
	}
	return l
}

func SeedSubscription(tb testing.TB, ctx context.Context, tx *gorm.DB, subscriber, channel uuid.UUID) *types.Subscription {
	tb.Helper()
	s := &types.Subscription{
		ID:           uuid.New(),
		SubscriberID: subscriber,
		ChannelID:    channel,
		CreatedAt:    time.Now().UTC(),
	}
	if err := tx.WithContext(ctx).Create(s).Error; err != nil {
		tb.Fatalf("seed subscription: %v", err)
	}
	return s
}
