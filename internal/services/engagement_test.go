package services

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"

	"github.com/cliptube/cliptube-backend/internal/data/repos/engagement"
	"github.com/cliptube/cliptube-backend/internal/data/repos/testutil"
	types "github.com/cliptube/cliptube-backend/internal/domain"
	"github.com/cliptube/cliptube-backend/internal/platform/apperr"
)

func TestToggleLikeParity(t *testing.T) {
	e := newEnv(t)
	owner := testutil.SeedUser(t, e.ctx, e.tx, "parity_owner")
	liker := testutil.SeedUser(t, e.ctx, e.tx, "parity_liker")
	video := testutil.SeedVideo(t, e.ctx, e.tx, owner.ID, "parity video", true)
	target := types.LikeTarget{Kind: types.LikeTargetVideo, ID: video.ID}

	// Odd number of flips ends present, even ends absent, and the edge count
	// never exceeds one along the way.
	for i := 0; i < 5; i++ {
		active, err := e.engagement.ToggleLike(e.ctx, liker.ID, target)
		if err != nil {
			t.Fatalf("toggle %d: %v", i, err)
		}
		wantActive := i%2 == 0
		if active != wantActive {
			t.Fatalf("toggle %d: active=%v, want %v", i, active, wantActive)
		}
		counts, err := e.likes.CountByTargets(e.ctx, nil, types.LikeTargetVideo, []uuid.UUID{video.ID})
		if err != nil {
			t.Fatalf("count after toggle %d: %v", i, err)
		}
		var want int64
		if wantActive {
			want = 1
		}
		if counts[video.ID] != want {
			t.Fatalf("toggle %d: count=%d, want %d", i, counts[video.ID], want)
		}
	}
}

func TestToggleLikeValidation(t *testing.T) {
	e := newEnv(t)
	owner := testutil.SeedUser(t, e.ctx, e.tx, "val_owner")
	video := testutil.SeedVideo(t, e.ctx, e.tx, owner.ID, "val video", true)

	_, err := e.engagement.ToggleLike(e.ctx, uuid.Nil, types.LikeTarget{Kind: types.LikeTargetVideo, ID: video.ID})
	if apperr.KindOf(err) != apperr.KindValidation {
		t.Fatalf("anonymous toggle: expected validation error, got %v", err)
	}

	_, err = e.engagement.ToggleLike(e.ctx, owner.ID, types.LikeTarget{Kind: "channel", ID: video.ID})
	if apperr.KindOf(err) != apperr.KindInvalidReference {
		t.Fatalf("bad kind: expected invalid reference, got %v", err)
	}

	_, err = e.engagement.ToggleLike(e.ctx, owner.ID, types.LikeTarget{Kind: types.LikeTargetComment, ID: uuid.New()})
	if apperr.KindOf(err) != apperr.KindInvalidReference {
		t.Fatalf("missing target: expected invalid reference, got %v", err)
	}

	// Nothing above may have written an edge.
	var n int64
	if err := e.tx.Model(&types.Like{}).Count(&n).Error; err != nil {
		t.Fatalf("count likes: %v", err)
	}
	if n != 0 {
		t.Fatalf("rejected toggles left %d edges behind", n)
	}
}

func TestToggleLikePerTargetKind(t *testing.T) {
	e := newEnv(t)
	owner := testutil.SeedUser(t, e.ctx, e.tx, "kinds_owner")
	liker := testutil.SeedUser(t, e.ctx, e.tx, "kinds_liker")
	video := testutil.SeedVideo(t, e.ctx, e.tx, owner.ID, "kinds video", true)
	comment := testutil.SeedComment(t, e.ctx, e.tx, video.ID, owner.ID, "first")
	tweet := testutil.SeedTweet(t, e.ctx, e.tx, owner.ID, "hello")

	// The same (liker, id) pair under different kinds is three distinct edges.
	for _, target := range []types.LikeTarget{
		{Kind: types.LikeTargetVideo, ID: video.ID},
		{Kind: types.LikeTargetComment, ID: comment.ID},
		{Kind: types.LikeTargetTweet, ID: tweet.ID},
	} {
		active, err := e.engagement.ToggleLike(e.ctx, liker.ID, target)
		if err != nil {
			t.Fatalf("toggle %s: %v", target.Kind, err)
		}
		if !active {
			t.Fatalf("toggle %s: expected edge present", target.Kind)
		}
	}

	var n int64
	if err := e.tx.Model(&types.Like{}).Where("liked_by_id = ?", liker.ID).Count(&n).Error; err != nil {
		t.Fatalf("count likes: %v", err)
	}
	if n != 3 {
		t.Fatalf("expected 3 edges across kinds, got %d", n)
	}
}

func TestToggleSubscription(t *testing.T) {
	e := newEnv(t)
	viewer := testutil.SeedUser(t, e.ctx, e.tx, "sub_viewer")
	channel := testutil.SeedUser(t, e.ctx, e.tx, "sub_channel")

	active, err := e.engagement.ToggleSubscription(e.ctx, viewer.ID, channel.ID)
	if err != nil {
		t.Fatalf("subscribe: %v", err)
	}
	if !active {
		t.Fatalf("first toggle should subscribe")
	}

	n, err := e.subs.CountSubscribers(e.ctx, nil, channel.ID)
	if err != nil {
		t.Fatalf("count subscribers: %v", err)
	}
	if n != 1 {
		t.Fatalf("subscribers=%d, want 1", n)
	}

	active, err = e.engagement.ToggleSubscription(e.ctx, viewer.ID, channel.ID)
	if err != nil {
		t.Fatalf("unsubscribe: %v", err)
	}
	if active {
		t.Fatalf("second toggle should unsubscribe")
	}

	if _, err := e.engagement.ToggleSubscription(e.ctx, viewer.ID, viewer.ID); apperr.KindOf(err) != apperr.KindSelfReference {
		t.Fatalf("self subscription: expected self reference error, got %v", err)
	}
	if _, err := e.engagement.ToggleSubscription(e.ctx, viewer.ID, uuid.New()); apperr.KindOf(err) != apperr.KindInvalidReference {
		t.Fatalf("missing channel: expected invalid reference, got %v", err)
	}
}

func TestConcurrentTogglesNeverDuplicate(t *testing.T) {
	if !testutil.UsingPostgres(t) {
		t.Skip("needs concurrent writers; set TEST_POSTGRES_DSN")
	}

	gdb := testutil.DB(t)
	log := testutil.Logger(t)
	ctx := context.Background()

	likes := engagement.NewLikeRepo(gdb, log)
	target := types.LikeTarget{Kind: types.LikeTargetVideo, ID: uuid.New()}
	liker := uuid.New()
	t.Cleanup(func() {
		gdb.Where("target_id = ?", target.ID).Delete(&types.Like{})
	})

	// Hammer the same edge from many goroutines. Whatever the interleaving,
	// the unique index admits at most one row.
	const workers = 16
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			inserted, err := likes.InsertIfAbsent(ctx, nil, liker, target)
			if err != nil {
				t.Errorf("insert: %v", err)
				return
			}
			if !inserted {
				if _, err := likes.DeleteEdge(ctx, nil, liker, target); err != nil {
					t.Errorf("delete: %v", err)
				}
			}
		}()
	}
	wg.Wait()

	var n int64
	if err := gdb.Model(&types.Like{}).
		Where("liked_by_id = ? AND target_kind = ? AND target_id = ?", liker, target.Kind, target.ID).
		Count(&n).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if n > 1 {
		t.Fatalf("duplicate edges after concurrent toggles: %d", n)
	}
}

func TestLikeCountMatchesLikers(t *testing.T) {
	e := newEnv(t)
	owner := testutil.SeedUser(t, e.ctx, e.tx, "count_owner")
	video := testutil.SeedVideo(t, e.ctx, e.tx, owner.ID, "count video", true)
	target := types.LikeTarget{Kind: types.LikeTargetVideo, ID: video.ID}

	likers := make([]uuid.UUID, 0, 3)
	for i, name := range []string{"count_a", "count_b", "count_c"} {
		u := testutil.SeedUser(t, e.ctx, e.tx, name)
		likers = append(likers, u.ID)
		if _, err := e.engagement.ToggleLike(e.ctx, u.ID, target); err != nil {
			t.Fatalf("liker %d: %v", i, err)
		}
	}
	outsider := testutil.SeedUser(t, e.ctx, e.tx, "count_outsider")

	counts, err := e.likes.CountByTargets(e.ctx, nil, types.LikeTargetVideo, []uuid.UUID{video.ID})
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if counts[video.ID] != int64(len(likers)) {
		t.Fatalf("count=%d, want %d", counts[video.ID], len(likers))
	}

	for _, id := range likers {
		set, err := e.likes.LikedSet(e.ctx, nil, id, types.LikeTargetVideo, []uuid.UUID{video.ID})
		if err != nil {
			t.Fatalf("liked set: %v", err)
		}
		if _, ok := set[video.ID]; !ok {
			t.Fatalf("liker %s should see is_liked=true", id)
		}
	}
	set, err := e.likes.LikedSet(e.ctx, nil, outsider.ID, types.LikeTargetVideo, []uuid.UUID{video.ID})
	if err != nil {
		t.Fatalf("outsider liked set: %v", err)
	}
	if _, ok := set[video.ID]; ok {
		t.Fatalf("outsider should see is_liked=false")
	}
}
