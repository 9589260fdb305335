package content_test

import (
	"context"
	"testing"

	"github.com/cliptube/cliptube-backend/internal/data/repos/content"
	"github.com/cliptube/cliptube-backend/internal/data/repos/testutil"
)

func TestListVideosFilters(t *testing.T) {
	gdb := testutil.DB(t)
	tx := testutil.Tx(t, gdb)
	repo := content.NewVideoRepo(tx, testutil.Logger(t))
	ctx := context.Background()

	owner := testutil.SeedUser(t, ctx, tx, "vlist_owner")
	other := testutil.SeedUser(t, ctx, tx, "vlist_other")
	testutil.SeedVideo(t, ctx, tx, owner.ID, "Alpha Guide", true)
	testutil.SeedVideo(t, ctx, tx, owner.ID, "beta guide", true)
	testutil.SeedVideo(t, ctx, tx, owner.ID, "gamma talk", true)
	testutil.SeedVideo(t, ctx, tx, owner.ID, "hidden guide", false)
	testutil.SeedVideo(t, ctx, tx, other.ID, "delta guide", true)

	// Case-insensitive title search, scoped to one owner, drafts excluded.
	rows, total, err := repo.List(ctx, nil, content.ListVideosQuery{
		Search:        "GUIDE",
		OwnerID:       owner.ID,
		PublishedOnly: true,
		SortColumn:    "title",
		Limit:         10,
	})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if total != 2 || len(rows) != 2 {
		t.Fatalf("total=%d len=%d, want 2/2", total, len(rows))
	}

	// Window smaller than the match set still reports the full total.
	rows, total, err = repo.List(ctx, nil, content.ListVideosQuery{
		OwnerID:       owner.ID,
		PublishedOnly: true,
		SortColumn:    "created_at",
		SortDesc:      true,
		Limit:         2,
	})
	if err != nil {
		t.Fatalf("windowed list: %v", err)
	}
	if total != 3 || len(rows) != 2 {
		t.Fatalf("windowed: total=%d len=%d, want 3/2", total, len(rows))
	}
	if rows[0].Title != "gamma talk" {
		t.Fatalf("newest first: got %q", rows[0].Title)
	}
}

func TestOwnerTotalsAndToggle(t *testing.T) {
	gdb := testutil.DB(t)
	tx := testutil.Tx(t, gdb)
	repo := content.NewVideoRepo(tx, testutil.Logger(t))
	ctx := context.Background()

	owner := testutil.SeedUser(t, ctx, tx, "vtot_owner")
	v := testutil.SeedVideo(t, ctx, tx, owner.ID, "vtot video", true)
	testutil.SeedVideo(t, ctx, tx, owner.ID, "vtot second", false)
	for i := 0; i < 2; i++ {
		if err := repo.IncrementViews(ctx, nil, v.ID); err != nil {
			t.Fatalf("bump: %v", err)
		}
	}

	videos, views, err := repo.OwnerTotals(ctx, nil, owner.ID)
	if err != nil {
		t.Fatalf("totals: %v", err)
	}
	if videos != 2 || views != 2 {
		t.Fatalf("totals: videos=%d views=%d, want 2/2", videos, views)
	}

	if err := repo.TogglePublished(ctx, nil, v.ID); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	got, err := repo.GetByID(ctx, nil, v.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.IsPublished {
		t.Fatalf("toggle should have unpublished the video")
	}
}
