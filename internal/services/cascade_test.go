package services

import (
	"testing"

	"github.com/google/uuid"

	"github.com/cliptube/cliptube-backend/internal/data/repos/testutil"
	types "github.com/cliptube/cliptube-backend/internal/domain"
	"github.com/cliptube/cliptube-backend/internal/platform/apperr"
)

func TestDeleteVideoCascades(t *testing.T) {
	e := newEnv(t)
	owner := testutil.SeedUser(t, e.ctx, e.tx, "cascade_owner")
	fan := testutil.SeedUser(t, e.ctx, e.tx, "cascade_fan")
	video := testutil.SeedVideo(t, e.ctx, e.tx, owner.ID, "cascade video", true)
	keep := testutil.SeedVideo(t, e.ctx, e.tx, owner.ID, "cascade keep", true)

	comment := testutil.SeedComment(t, e.ctx, e.tx, video.ID, fan.ID, "gone soon")
	keepComment := testutil.SeedComment(t, e.ctx, e.tx, keep.ID, fan.ID, "stays")
	testutil.SeedLike(t, e.ctx, e.tx, fan.ID, types.LikeTargetVideo, video.ID)
	testutil.SeedLike(t, e.ctx, e.tx, fan.ID, types.LikeTargetComment, comment.ID)
	testutil.SeedLike(t, e.ctx, e.tx, fan.ID, types.LikeTargetVideo, keep.ID)

	playlist := testutil.SeedPlaylist(t, e.ctx, e.tx, fan.ID, "cascade playlist")
	if _, err := e.playlists.AddVideo(e.ctx, nil, playlist.ID, video.ID); err != nil {
		t.Fatalf("add to playlist: %v", err)
	}
	if _, err := e.playlists.AddVideo(e.ctx, nil, playlist.ID, keep.ID); err != nil {
		t.Fatalf("add keep to playlist: %v", err)
	}
	if err := e.users.UpsertWatch(e.ctx, nil, fan.ID, video.ID); err != nil {
		t.Fatalf("watch: %v", err)
	}

	if err := e.cascade.DeleteVideo(e.ctx, owner.ID, video.ID); err != nil {
		t.Fatalf("delete video: %v", err)
	}

	// The video, its comments, and every like on either are gone.
	if v, err := e.videos.GetByID(e.ctx, nil, video.ID); err != nil || v != nil {
		t.Fatalf("video should be gone: v=%v err=%v", v, err)
	}
	if c, err := e.comments.GetByID(e.ctx, nil, comment.ID); err != nil || c != nil {
		t.Fatalf("comment should be gone: c=%v err=%v", c, err)
	}
	var likes int64
	if err := e.tx.Model(&types.Like{}).
		Where("target_id IN ?", []uuid.UUID{video.ID, comment.ID}).
		Count(&likes).Error; err != nil {
		t.Fatalf("count likes: %v", err)
	}
	if likes != 0 {
		t.Fatalf("%d dangling likes after cascade", likes)
	}

	memberIDs, err := e.playlists.ListVideoIDs(e.ctx, nil, playlist.ID)
	if err != nil {
		t.Fatalf("playlist members: %v", err)
	}
	if len(memberIDs) != 1 || memberIDs[0] != keep.ID {
		t.Fatalf("playlist members after cascade: %v", memberIDs)
	}

	watched, err := e.users.ListWatchedVideoIDs(e.ctx, nil, fan.ID)
	if err != nil {
		t.Fatalf("watch history: %v", err)
	}
	for _, id := range watched {
		if id == video.ID {
			t.Fatalf("watch history still references deleted video")
		}
	}

	// Unrelated rows survived.
	if c, err := e.comments.GetByID(e.ctx, nil, keepComment.ID); err != nil || c == nil {
		t.Fatalf("unrelated comment lost: c=%v err=%v", c, err)
	}
	counts, err := e.likes.CountByTargets(e.ctx, nil, types.LikeTargetVideo, []uuid.UUID{keep.ID})
	if err != nil {
		t.Fatalf("count keep likes: %v", err)
	}
	if counts[keep.ID] != 1 {
		t.Fatalf("unrelated like lost: count=%d", counts[keep.ID])
	}
}

func TestDeleteVideoIdempotent(t *testing.T) {
	e := newEnv(t)
	owner := testutil.SeedUser(t, e.ctx, e.tx, "idem_owner")
	video := testutil.SeedVideo(t, e.ctx, e.tx, owner.ID, "idem video", true)

	if err := e.cascade.DeleteVideo(e.ctx, owner.ID, video.ID); err != nil {
		t.Fatalf("first delete: %v", err)
	}
	if err := e.cascade.DeleteVideo(e.ctx, owner.ID, video.ID); err != nil {
		t.Fatalf("repeat delete should succeed: %v", err)
	}
	if err := e.cascade.DeleteVideo(e.ctx, owner.ID, uuid.New()); err != nil {
		t.Fatalf("deleting a video that never existed should succeed: %v", err)
	}
}

func TestDeleteVideoOwnership(t *testing.T) {
	e := newEnv(t)
	owner := testutil.SeedUser(t, e.ctx, e.tx, "own_owner")
	stranger := testutil.SeedUser(t, e.ctx, e.tx, "own_stranger")
	video := testutil.SeedVideo(t, e.ctx, e.tx, owner.ID, "own video", true)

	if err := e.cascade.DeleteVideo(e.ctx, stranger.ID, video.ID); apperr.KindOf(err) != apperr.KindValidation {
		t.Fatalf("stranger delete: expected validation error, got %v", err)
	}
	if v, err := e.videos.GetByID(e.ctx, nil, video.ID); err != nil || v == nil {
		t.Fatalf("video should survive a rejected delete: v=%v err=%v", v, err)
	}
}

func TestDeleteCommentRemovesItsLikes(t *testing.T) {
	e := newEnv(t)
	owner := testutil.SeedUser(t, e.ctx, e.tx, "delc_owner")
	fan := testutil.SeedUser(t, e.ctx, e.tx, "delc_fan")
	video := testutil.SeedVideo(t, e.ctx, e.tx, owner.ID, "delc video", true)
	comment := testutil.SeedComment(t, e.ctx, e.tx, video.ID, fan.ID, "soon gone")
	testutil.SeedLike(t, e.ctx, e.tx, owner.ID, types.LikeTargetComment, comment.ID)

	if err := e.cascade.DeleteComment(e.ctx, fan.ID, comment.ID); err != nil {
		t.Fatalf("delete comment: %v", err)
	}
	counts, err := e.likes.CountByTargets(e.ctx, nil, types.LikeTargetComment, []uuid.UUID{comment.ID})
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if counts[comment.ID] != 0 {
		t.Fatalf("likes survived the comment: %d", counts[comment.ID])
	}

	if err := e.cascade.DeleteComment(e.ctx, fan.ID, comment.ID); err != nil {
		t.Fatalf("repeat delete should succeed: %v", err)
	}
}

func TestDeleteTweetRemovesItsLikes(t *testing.T) {
	e := newEnv(t)
	author := testutil.SeedUser(t, e.ctx, e.tx, "delt_author")
	fan := testutil.SeedUser(t, e.ctx, e.tx, "delt_fan")
	tweet := testutil.SeedTweet(t, e.ctx, e.tx, author.ID, "short lived")
	testutil.SeedLike(t, e.ctx, e.tx, fan.ID, types.LikeTargetTweet, tweet.ID)

	if err := e.cascade.DeleteTweet(e.ctx, author.ID, tweet.ID); err != nil {
		t.Fatalf("delete tweet: %v", err)
	}
	counts, err := e.likes.CountByTargets(e.ctx, nil, types.LikeTargetTweet, []uuid.UUID{tweet.ID})
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if counts[tweet.ID] != 0 {
		t.Fatalf("likes survived the tweet: %d", counts[tweet.ID])
	}
}

func TestDeletePlaylistRemovesMembers(t *testing.T) {
	e := newEnv(t)
	owner := testutil.SeedUser(t, e.ctx, e.tx, "delp_owner")
	video := testutil.SeedVideo(t, e.ctx, e.tx, owner.ID, "delp video", true)
	playlist := testutil.SeedPlaylist(t, e.ctx, e.tx, owner.ID, "delp playlist")
	if _, err := e.playlists.AddVideo(e.ctx, nil, playlist.ID, video.ID); err != nil {
		t.Fatalf("add video: %v", err)
	}

	if err := e.cascade.DeletePlaylist(e.ctx, owner.ID, playlist.ID); err != nil {
		t.Fatalf("delete playlist: %v", err)
	}
	var members int64
	if err := e.tx.Model(&types.PlaylistVideo{}).Where("playlist_id = ?", playlist.ID).Count(&members).Error; err != nil {
		t.Fatalf("count members: %v", err)
	}
	if members != 0 {
		t.Fatalf("members survived the playlist: %d", members)
	}
	// The video itself is untouched.
	if v, err := e.videos.GetByID(e.ctx, nil, video.ID); err != nil || v == nil {
		t.Fatalf("member video lost: v=%v err=%v", v, err)
	}
}
