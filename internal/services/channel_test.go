package services

import (
	"testing"

	"github.com/google/uuid"

	"github.com/cliptube/cliptube-backend/internal/data/repos/testutil"
	types "github.com/cliptube/cliptube-backend/internal/domain"
	"github.com/cliptube/cliptube-backend/internal/platform/apperr"
)

func TestGetChannelProfile(t *testing.T) {
	e := newEnv(t)
	channel := testutil.SeedUser(t, e.ctx, e.tx, "prof_channel")
	fanA := testutil.SeedUser(t, e.ctx, e.tx, "prof_fan_a")
	fanB := testutil.SeedUser(t, e.ctx, e.tx, "prof_fan_b")
	elsewhere := testutil.SeedUser(t, e.ctx, e.tx, "prof_elsewhere")

	testutil.SeedSubscription(t, e.ctx, e.tx, fanA.ID, channel.ID)
	testutil.SeedSubscription(t, e.ctx, e.tx, fanB.ID, channel.ID)
	testutil.SeedSubscription(t, e.ctx, e.tx, channel.ID, elsewhere.ID)

	view, err := e.channel.GetChannelProfile(e.ctx, fanA.ID, channel.Username)
	if err != nil {
		t.Fatalf("profile: %v", err)
	}
	if view.SubscribersCount != 2 {
		t.Fatalf("subscribers=%d, want 2", view.SubscribersCount)
	}
	if view.ChannelsSubscribedTo != 1 {
		t.Fatalf("subscribed_to=%d, want 1", view.ChannelsSubscribedTo)
	}
	if !view.IsSubscribed {
		t.Fatalf("fanA should be flagged as subscribed")
	}

	anon, err := e.channel.GetChannelProfile(e.ctx, uuid.Nil, channel.Username)
	if err != nil {
		t.Fatalf("anonymous profile: %v", err)
	}
	if anon.IsSubscribed {
		t.Fatalf("anonymous viewer cannot be subscribed")
	}

	if _, err := e.channel.GetChannelProfile(e.ctx, uuid.Nil, "prof_nobody"); apperr.KindOf(err) != apperr.KindNotFound {
		t.Fatalf("missing channel: expected not found, got %v", err)
	}
}

func TestGetChannelSubscribers(t *testing.T) {
	e := newEnv(t)
	channel := testutil.SeedUser(t, e.ctx, e.tx, "subs_channel")
	mutual := testutil.SeedUser(t, e.ctx, e.tx, "subs_mutual")
	oneway := testutil.SeedUser(t, e.ctx, e.tx, "subs_oneway")

	testutil.SeedSubscription(t, e.ctx, e.tx, mutual.ID, channel.ID)
	testutil.SeedSubscription(t, e.ctx, e.tx, oneway.ID, channel.ID)
	testutil.SeedSubscription(t, e.ctx, e.tx, channel.ID, mutual.ID)

	cards, err := e.channel.GetChannelSubscribers(e.ctx, channel.ID)
	if err != nil {
		t.Fatalf("subscribers: %v", err)
	}
	if len(cards) != 2 {
		t.Fatalf("got %d subscribers, want 2", len(cards))
	}
	byID := make(map[uuid.UUID]types.SubscriberCard)
	for _, c := range cards {
		byID[c.ID] = c
	}
	if !byID[mutual.ID].SubscribedBack {
		t.Fatalf("channel subscribes back to mutual")
	}
	if byID[oneway.ID].SubscribedBack {
		t.Fatalf("channel does not subscribe back to oneway")
	}
	if byID[mutual.ID].SubscribersCount != 1 {
		t.Fatalf("mutual's own subscriber count=%d, want 1", byID[mutual.ID].SubscribersCount)
	}

	if _, err := e.channel.GetChannelSubscribers(e.ctx, uuid.New()); apperr.KindOf(err) != apperr.KindInvalidReference {
		t.Fatalf("missing channel: expected invalid reference, got %v", err)
	}
}

func TestGetSubscribedChannels(t *testing.T) {
	e := newEnv(t)
	fan := testutil.SeedUser(t, e.ctx, e.tx, "subd_fan")
	active := testutil.SeedUser(t, e.ctx, e.tx, "subd_active")
	quiet := testutil.SeedUser(t, e.ctx, e.tx, "subd_quiet")

	testutil.SeedSubscription(t, e.ctx, e.tx, fan.ID, active.ID)
	testutil.SeedSubscription(t, e.ctx, e.tx, fan.ID, quiet.ID)
	testutil.SeedVideo(t, e.ctx, e.tx, active.ID, "subd older", true)
	latest := testutil.SeedVideo(t, e.ctx, e.tx, active.ID, "subd newest", true)

	cards, err := e.channel.GetSubscribedChannels(e.ctx, fan.ID, fan.ID)
	if err != nil {
		t.Fatalf("subscribed channels: %v", err)
	}
	if len(cards) != 2 {
		t.Fatalf("got %d channels, want 2", len(cards))
	}
	byID := make(map[uuid.UUID]types.SubscribedChannelCard)
	for _, c := range cards {
		byID[c.ID] = c
	}
	if byID[active.ID].LatestVideo == nil {
		t.Fatalf("active channel should carry its latest video")
	}
	if byID[active.ID].LatestVideo.ID != latest.ID {
		t.Fatalf("latest video=%s, want %s", byID[active.ID].LatestVideo.ID, latest.ID)
	}
	if byID[quiet.ID].LatestVideo != nil {
		t.Fatalf("channel with no videos should carry none")
	}
}
