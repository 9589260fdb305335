package services

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/cliptube/cliptube-backend/internal/data/repos/engagement"
	"github.com/cliptube/cliptube-backend/internal/data/repos/user"
	types "github.com/cliptube/cliptube-backend/internal/domain"
)

// Decoration helpers shared by the view services. Each takes a batch of rows
// and fetches the derived fields (owner cards, like counts, the viewer's
// liked set) with one store query per concern, fanned out on an errgroup.
// Output order always follows input order. An anonymous viewer (uuid.Nil)
// yields empty liked sets, so every is_liked defaults to false.

func ownerCard(u *types.User) types.OwnerCard {
	if u == nil {
		return types.OwnerCard{}
	}
	return types.OwnerCard{
		ID:        u.ID,
		Username:  u.Username,
		FullName:  u.FullName,
		AvatarURL: u.AvatarURL,
	}
}

func ownerCardsByID(ctx context.Context, userRepo user.UserRepo, ownerIDs []uuid.UUID) (map[uuid.UUID]types.OwnerCard, error) {
	seen := make(map[uuid.UUID]struct{}, len(ownerIDs))
	unique := make([]uuid.UUID, 0, len(ownerIDs))
	for _, id := range ownerIDs {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}

	owners, err := userRepo.GetByIDs(ctx, nil, unique)
	if err != nil {
		return nil, err
	}
	cards := make(map[uuid.UUID]types.OwnerCard, len(owners))
	for _, o := range owners {
		cards[o.ID] = ownerCard(o)
	}
	return cards, nil
}

func decorateVideos(
	ctx context.Context,
	viewer uuid.UUID,
	videos []*types.Video,
	userRepo user.UserRepo,
	likes engagement.LikeRepo,
) ([]types.VideoView, error) {
	views := make([]types.VideoView, 0, len(videos))
	if len(videos) == 0 {
		return views, nil
	}

	videoIDs := make([]uuid.UUID, 0, len(videos))
	ownerIDs := make([]uuid.UUID, 0, len(videos))
	for _, v := range videos {
		videoIDs = append(videoIDs, v.ID)
		ownerIDs = append(ownerIDs, v.OwnerID)
	}

	var (
		counts   map[uuid.UUID]int64
		likedSet map[uuid.UUID]struct{}
		owners   map[uuid.UUID]types.OwnerCard
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		counts, err = likes.CountByTargets(gctx, nil, types.LikeTargetVideo, videoIDs)
		return err
	})
	g.Go(func() (err error) {
		likedSet, err = likes.LikedSet(gctx, nil, viewer, types.LikeTargetVideo, videoIDs)
		return err
	})
	g.Go(func() (err error) {
		owners, err = ownerCardsByID(gctx, userRepo, ownerIDs)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, v := range videos {
		_, liked := likedSet[v.ID]
		views = append(views, types.VideoView{
			ID:           v.ID,
			Title:        v.Title,
			Description:  v.Description,
			VideoFileURL: v.VideoFileURL,
			ThumbnailURL: v.ThumbnailURL,
			Duration:     v.Duration,
			Views:        v.Views,
			IsPublished:  v.IsPublished,
			CreatedAt:    v.CreatedAt,
			Owner:        owners[v.OwnerID],
			LikesCount:   counts[v.ID],
			IsLiked:      liked,
		})
	}
	return views, nil
}

func decorateComments(
	ctx context.Context,
	viewer uuid.UUID,
	comments []*types.Comment,
	userRepo user.UserRepo,
	likes engagement.LikeRepo,
) ([]types.CommentView, error) {
	views := make([]types.CommentView, 0, len(comments))
	if len(comments) == 0 {
		return views, nil
	}

	commentIDs := make([]uuid.UUID, 0, len(comments))
	ownerIDs := make([]uuid.UUID, 0, len(comments))
	for _, c := range comments {
		commentIDs = append(commentIDs, c.ID)
		ownerIDs = append(ownerIDs, c.OwnerID)
	}

	var (
		counts   map[uuid.UUID]int64
		likedSet map[uuid.UUID]struct{}
		owners   map[uuid.UUID]types.OwnerCard
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		counts, err = likes.CountByTargets(gctx, nil, types.LikeTargetComment, commentIDs)
		return err
	})
	g.Go(func() (err error) {
		likedSet, err = likes.LikedSet(gctx, nil, viewer, types.LikeTargetComment, commentIDs)
		return err
	})
	g.Go(func() (err error) {
		owners, err = ownerCardsByID(gctx, userRepo, ownerIDs)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, c := range comments {
		_, liked := likedSet[c.ID]
		views = append(views, types.CommentView{
			ID:         c.ID,
			Content:    c.Content,
			CreatedAt:  c.CreatedAt,
			Owner:      owners[c.OwnerID],
			LikesCount: counts[c.ID],
			IsLiked:    liked,
		})
	}
	return views, nil
}

func decorateTweets(
	ctx context.Context,
	viewer uuid.UUID,
	tweets []*types.Tweet,
	userRepo user.UserRepo,
	likes engagement.LikeRepo,
) ([]types.TweetView, error) {
	views := make([]types.TweetView, 0, len(tweets))
	if len(tweets) == 0 {
		return views, nil
	}

	tweetIDs := make([]uuid.UUID, 0, len(tweets))
	ownerIDs := make([]uuid.UUID, 0, len(tweets))
	for _, tw := range tweets {
		tweetIDs = append(tweetIDs, tw.ID)
		ownerIDs = append(ownerIDs, tw.OwnerID)
	}

	var (
		counts   map[uuid.UUID]int64
		likedSet map[uuid.UUID]struct{}
		owners   map[uuid.UUID]types.OwnerCard
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		counts, err = likes.CountByTargets(gctx, nil, types.LikeTargetTweet, tweetIDs)
		return err
	})
	g.Go(func() (err error) {
		likedSet, err = likes.LikedSet(gctx, nil, viewer, types.LikeTargetTweet, tweetIDs)
		return err
	})
	g.Go(func() (err error) {
		owners, err = ownerCardsByID(gctx, userRepo, ownerIDs)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, tw := range tweets {
		_, liked := likedSet[tw.ID]
		views = append(views, types.TweetView{
			ID:         tw.ID,
			Content:    tw.Content,
			CreatedAt:  tw.CreatedAt,
			Owner:      owners[tw.OwnerID],
			LikesCount: counts[tw.ID],
			IsLiked:    liked,
		})
	}
	return views, nil
}
