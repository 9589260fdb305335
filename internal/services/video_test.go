package services

import (
	"testing"

	"github.com/google/uuid"

	"github.com/cliptube/cliptube-backend/internal/data/repos/testutil"
	types "github.com/cliptube/cliptube-backend/internal/domain"
	"github.com/cliptube/cliptube-backend/internal/pkg/pagination"
	"github.com/cliptube/cliptube-backend/internal/platform/apperr"
)

func TestPublishVideo(t *testing.T) {
	e := newEnv(t)
	owner := testutil.SeedUser(t, e.ctx, e.tx, "pub_owner")

	video, err := e.videoSvc.PublishVideo(e.ctx, owner.ID, &types.Video{
		Title:        "launch",
		VideoFileURL: "https://cdn.example.com/launch.mp4",
	})
	if err != nil {
		t.Fatalf("publish: %v", err)
	}
	if !video.IsPublished || video.OwnerID != owner.ID {
		t.Fatalf("published video: is_published=%v owner=%s", video.IsPublished, video.OwnerID)
	}

	if _, err := e.videoSvc.PublishVideo(e.ctx, owner.ID, &types.Video{VideoFileURL: "x"}); apperr.KindOf(err) != apperr.KindValidation {
		t.Fatalf("missing title: expected validation error, got %v", err)
	}
	if _, err := e.videoSvc.PublishVideo(e.ctx, uuid.Nil, &types.Video{Title: "t", VideoFileURL: "x"}); apperr.KindOf(err) != apperr.KindValidation {
		t.Fatalf("anonymous publish: expected validation error, got %v", err)
	}
}

func TestUpdateVideoDetails(t *testing.T) {
	e := newEnv(t)
	owner := testutil.SeedUser(t, e.ctx, e.tx, "upd_owner")
	other := testutil.SeedUser(t, e.ctx, e.tx, "upd_other")
	video := testutil.SeedVideo(t, e.ctx, e.tx, owner.ID, "before", true)

	updated, err := e.videoSvc.UpdateVideoDetails(e.ctx, owner.ID, video.ID, "after", "new description")
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Title != "after" || updated.Description != "new description" {
		t.Fatalf("update not applied: %q / %q", updated.Title, updated.Description)
	}

	if _, err := e.videoSvc.UpdateVideoDetails(e.ctx, other.ID, video.ID, "stolen", ""); apperr.KindOf(err) != apperr.KindValidation {
		t.Fatalf("non-owner update: expected validation error, got %v", err)
	}
	if _, err := e.videoSvc.UpdateVideoDetails(e.ctx, owner.ID, uuid.New(), "ghost", ""); apperr.KindOf(err) != apperr.KindInvalidReference {
		t.Fatalf("missing video: expected invalid reference, got %v", err)
	}
}

func TestTogglePublishStatus(t *testing.T) {
	e := newEnv(t)
	owner := testutil.SeedUser(t, e.ctx, e.tx, "tog_owner")
	video := testutil.SeedVideo(t, e.ctx, e.tx, owner.ID, "toggle me", true)

	unpublished, err := e.videoSvc.TogglePublishStatus(e.ctx, owner.ID, video.ID)
	if err != nil {
		t.Fatalf("first toggle: %v", err)
	}
	if unpublished.IsPublished {
		t.Fatalf("video should be unpublished after first toggle")
	}

	// A draft disappears from public listings.
	res, err := e.videoViews.ListVideos(e.ctx, uuid.Nil, VideoFilter{OwnerID: owner.ID}, pagination.Params{Page: 1, Limit: 10})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	for _, v := range res.Items {
		if v.ID == video.ID {
			t.Fatalf("unpublished video still listed")
		}
	}

	republished, err := e.videoSvc.TogglePublishStatus(e.ctx, owner.ID, video.ID)
	if err != nil {
		t.Fatalf("second toggle: %v", err)
	}
	if !republished.IsPublished {
		t.Fatalf("video should be published again")
	}
}
