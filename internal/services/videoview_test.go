package services

import (
	"fmt"
	"testing"

	"github.com/google/uuid"

	"github.com/cliptube/cliptube-backend/internal/data/repos/testutil"
	types "github.com/cliptube/cliptube-backend/internal/domain"
	"github.com/cliptube/cliptube-backend/internal/pkg/pagination"
	"github.com/cliptube/cliptube-backend/internal/platform/apperr"
)

func TestListVideosPaginationIsComplete(t *testing.T) {
	e := newEnv(t)
	owner := testutil.SeedUser(t, e.ctx, e.tx, "page_owner")
	seeded := make(map[uuid.UUID]struct{}, 5)
	for i := 0; i < 5; i++ {
		v := testutil.SeedVideo(t, e.ctx, e.tx, owner.ID, fmt.Sprintf("page video %d", i), true)
		seeded[v.ID] = struct{}{}
	}
	// Draft videos stay out of public listings.
	testutil.SeedVideo(t, e.ctx, e.tx, owner.ID, "page draft", false)

	filter := VideoFilter{OwnerID: owner.ID, SortBy: "title", SortDir: "asc"}
	collected := make(map[uuid.UUID]struct{}, 5)
	var prevTitle string
	for page := 1; ; page++ {
		res, err := e.videoViews.ListVideos(e.ctx, uuid.Nil, filter, pagination.Params{Page: page, Limit: 2})
		if err != nil {
			t.Fatalf("page %d: %v", page, err)
		}
		if res.TotalItems != 5 {
			t.Fatalf("page %d: total=%d, want 5", page, res.TotalItems)
		}
		for _, v := range res.Items {
			if _, dup := collected[v.ID]; dup {
				t.Fatalf("video %s appeared on two pages", v.ID)
			}
			collected[v.ID] = struct{}{}
			if v.Title < prevTitle {
				t.Fatalf("titles out of order: %q after %q", v.Title, prevTitle)
			}
			prevTitle = v.Title
		}
		if !res.HasNextPage {
			break
		}
	}
	if len(collected) != len(seeded) {
		t.Fatalf("pages yielded %d videos, want %d", len(collected), len(seeded))
	}
	for id := range seeded {
		if _, ok := collected[id]; !ok {
			t.Fatalf("video %s missing from pagination", id)
		}
	}
}

func TestListVideosRejectsBadSortAndLimit(t *testing.T) {
	e := newEnv(t)

	_, err := e.videoViews.ListVideos(e.ctx, uuid.Nil, VideoFilter{SortBy: "owner_id"}, pagination.Params{Page: 1, Limit: 10})
	if apperr.KindOf(err) != apperr.KindValidation {
		t.Fatalf("unlisted sort key: expected validation error, got %v", err)
	}
	_, err = e.videoViews.ListVideos(e.ctx, uuid.Nil, VideoFilter{SortDir: "sideways"}, pagination.Params{Page: 1, Limit: 10})
	if apperr.KindOf(err) != apperr.KindValidation {
		t.Fatalf("bad sort dir: expected validation error, got %v", err)
	}
	_, err = e.videoViews.ListVideos(e.ctx, uuid.Nil, VideoFilter{}, pagination.Params{Page: 1, Limit: pagination.DefaultMaxLimit + 1})
	if apperr.KindOf(err) != apperr.KindValidation {
		t.Fatalf("oversized limit: expected validation error, got %v", err)
	}
}

func TestListVideosViewerFlags(t *testing.T) {
	e := newEnv(t)
	owner := testutil.SeedUser(t, e.ctx, e.tx, "flags_owner")
	fan := testutil.SeedUser(t, e.ctx, e.tx, "flags_fan")
	liked := testutil.SeedVideo(t, e.ctx, e.tx, owner.ID, "flags liked", true)
	other := testutil.SeedVideo(t, e.ctx, e.tx, owner.ID, "flags other", true)
	testutil.SeedLike(t, e.ctx, e.tx, fan.ID, types.LikeTargetVideo, liked.ID)

	res, err := e.videoViews.ListVideos(e.ctx, fan.ID, VideoFilter{OwnerID: owner.ID}, pagination.Params{Page: 1, Limit: 10})
	if err != nil {
		t.Fatalf("list as fan: %v", err)
	}
	byID := make(map[uuid.UUID]types.VideoView)
	for _, v := range res.Items {
		byID[v.ID] = v
	}
	if !byID[liked.ID].IsLiked {
		t.Fatalf("fan should see liked video flagged")
	}
	if byID[other.ID].IsLiked {
		t.Fatalf("fan should not see the other video flagged")
	}
	if byID[liked.ID].LikesCount != 1 {
		t.Fatalf("likes_count=%d, want 1", byID[liked.ID].LikesCount)
	}
	if byID[liked.ID].Owner.Username != owner.Username {
		t.Fatalf("owner card username=%q, want %q", byID[liked.ID].Owner.Username, owner.Username)
	}

	// Same listing anonymously: identical rows, every flag false.
	anon, err := e.videoViews.ListVideos(e.ctx, uuid.Nil, VideoFilter{OwnerID: owner.ID}, pagination.Params{Page: 1, Limit: 10})
	if err != nil {
		t.Fatalf("list anonymously: %v", err)
	}
	if len(anon.Items) != len(res.Items) {
		t.Fatalf("anonymous listing has %d rows, viewer listing %d", len(anon.Items), len(res.Items))
	}
	for _, v := range anon.Items {
		if v.IsLiked {
			t.Fatalf("anonymous viewer saw is_liked=true on %s", v.ID)
		}
	}
}

func TestGetVideoDetail(t *testing.T) {
	e := newEnv(t)
	owner := testutil.SeedUser(t, e.ctx, e.tx, "detail_owner")
	fan := testutil.SeedUser(t, e.ctx, e.tx, "detail_fan")
	video := testutil.SeedVideo(t, e.ctx, e.tx, owner.ID, "detail video", true)
	testutil.SeedSubscription(t, e.ctx, e.tx, fan.ID, owner.ID)
	testutil.SeedLike(t, e.ctx, e.tx, fan.ID, types.LikeTargetVideo, video.ID)

	detail, err := e.videoViews.GetVideo(e.ctx, fan.ID, video.ID)
	if err != nil {
		t.Fatalf("get video: %v", err)
	}
	if detail.Views != 1 {
		t.Fatalf("views=%d, want 1 after first visit", detail.Views)
	}
	if !detail.IsLiked || detail.LikesCount != 1 {
		t.Fatalf("like fields: is_liked=%v count=%d", detail.IsLiked, detail.LikesCount)
	}
	if !detail.Owner.IsSubscribed || detail.Owner.SubscribersCount != 1 {
		t.Fatalf("owner card: is_subscribed=%v subscribers=%d", detail.Owner.IsSubscribed, detail.Owner.SubscribersCount)
	}

	if _, err := e.videoViews.GetVideo(e.ctx, fan.ID, uuid.New()); apperr.KindOf(err) != apperr.KindNotFound {
		t.Fatalf("missing video: expected not found, got %v", err)
	}
}

func TestWatchHistorySetSemantics(t *testing.T) {
	e := newEnv(t)
	owner := testutil.SeedUser(t, e.ctx, e.tx, "hist_owner")
	watcher := testutil.SeedUser(t, e.ctx, e.tx, "hist_watcher")
	first := testutil.SeedVideo(t, e.ctx, e.tx, owner.ID, "hist first", true)
	second := testutil.SeedVideo(t, e.ctx, e.tx, owner.ID, "hist second", true)

	// Watch first, then second, then first again. History holds each video
	// once, most recently watched first.
	for _, id := range []uuid.UUID{first.ID, second.ID, first.ID} {
		if _, err := e.videoViews.GetVideo(e.ctx, watcher.ID, id); err != nil {
			t.Fatalf("watch %s: %v", id, err)
		}
	}

	history, err := e.videoViews.GetWatchHistory(e.ctx, watcher.ID)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("history has %d entries, want 2", len(history))
	}
	if history[0].ID != first.ID || history[1].ID != second.ID {
		t.Fatalf("history order: got %s, %s", history[0].ID, history[1].ID)
	}

	if _, err := e.videoViews.GetWatchHistory(e.ctx, uuid.Nil); apperr.KindOf(err) != apperr.KindValidation {
		t.Fatalf("anonymous history: expected validation error, got %v", err)
	}
}

func TestGetLikedVideos(t *testing.T) {
	e := newEnv(t)
	owner := testutil.SeedUser(t, e.ctx, e.tx, "likedlist_owner")
	fan := testutil.SeedUser(t, e.ctx, e.tx, "likedlist_fan")
	a := testutil.SeedVideo(t, e.ctx, e.tx, owner.ID, "likedlist a", true)
	b := testutil.SeedVideo(t, e.ctx, e.tx, owner.ID, "likedlist b", true)
	testutil.SeedVideo(t, e.ctx, e.tx, owner.ID, "likedlist c", true)

	for _, id := range []uuid.UUID{a.ID, b.ID} {
		if _, err := e.engagement.ToggleLike(e.ctx, fan.ID, types.LikeTarget{Kind: types.LikeTargetVideo, ID: id}); err != nil {
			t.Fatalf("like %s: %v", id, err)
		}
	}

	likedVideos, err := e.videoViews.GetLikedVideos(e.ctx, fan.ID)
	if err != nil {
		t.Fatalf("liked videos: %v", err)
	}
	if len(likedVideos) != 2 {
		t.Fatalf("got %d liked videos, want 2", len(likedVideos))
	}
	for _, v := range likedVideos {
		if !v.IsLiked {
			t.Fatalf("liked listing must flag %s as liked", v.ID)
		}
	}
}
