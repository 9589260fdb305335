package services

import (
	"context"
	"testing"

	"gorm.io/gorm"

	"github.com/cliptube/cliptube-backend/internal/data/repos/content"
	"github.com/cliptube/cliptube-backend/internal/data/repos/engagement"
	"github.com/cliptube/cliptube-backend/internal/data/repos/testutil"
	"github.com/cliptube/cliptube-backend/internal/data/repos/user"
)

// env wires every service over a transaction that rolls back when the test
// ends, so tests never see each other's rows.
type env struct {
	ctx context.Context
	tx  *gorm.DB

	users     user.UserRepo
	videos    content.VideoRepo
	comments  content.CommentRepo
	tweets    content.TweetRepo
	playlists content.PlaylistRepo
	likes     engagement.LikeRepo
	subs      engagement.SubscriptionRepo

	engagement EngagementService
	videoViews VideoViewService
	videoSvc   VideoService
	commentSvc CommentService
	tweetSvc   TweetService
	playlist   PlaylistService
	channel    ChannelService
	dashboard  DashboardService
	cascade    CascadeService
	userSvc    UserService
}

func newEnv(t *testing.T) *env {
	t.Helper()

	gdb := testutil.DB(t)
	tx := testutil.Tx(t, gdb)
	log := testutil.Logger(t)

	e := &env{
		ctx:       context.Background(),
		tx:        tx,
		users:     user.NewUserRepo(tx, log),
		videos:    content.NewVideoRepo(tx, log),
		comments:  content.NewCommentRepo(tx, log),
		tweets:    content.NewTweetRepo(tx, log),
		playlists: content.NewPlaylistRepo(tx, log),
		likes:     engagement.NewLikeRepo(tx, log),
		subs:      engagement.NewSubscriptionRepo(tx, log),
	}

	e.engagement = NewEngagementService(tx, log, e.users, e.videos, e.comments, e.tweets, e.likes, e.subs)
	e.videoViews = NewVideoViewService(tx, log, 0, e.users, e.videos, e.likes, e.subs)
	e.videoSvc = NewVideoService(tx, log, e.videos)
	e.commentSvc = NewCommentService(tx, log, 0, e.users, e.videos, e.comments, e.likes)
	e.tweetSvc = NewTweetService(tx, log, e.users, e.tweets, e.likes)
	e.playlist = NewPlaylistService(tx, log, e.users, e.videos, e.playlists, e.likes)
	e.channel = NewChannelService(tx, log, e.users, e.videos, e.likes, e.subs)
	e.dashboard = NewDashboardService(tx, log, e.users, e.videos, e.likes, e.subs)
	e.cascade = NewCascadeService(tx, log, e.users, e.videos, e.comments, e.tweets, e.playlists, e.likes)
	e.userSvc = NewUserService(tx, log, e.users)
	return e
}
