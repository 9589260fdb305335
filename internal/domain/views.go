package domain

import (
	"time"

	"github.com/google/uuid"
)

// Read models returned by the view composer. Derived fields (counts, is*)
// are computed per request relative to the viewer and never stored.

// OwnerCard is the minimal public projection of a user joined onto owned
// content. Always a single value, never a list.
type OwnerCard struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	FullName  string    `json:"full_name"`
	AvatarURL string    `json:"avatar_url"`
}

// ChannelCard extends OwnerCard with subscription-derived fields, as shown
// next to a video.
type ChannelCard struct {
	OwnerCard
	SubscribersCount int64 `json:"subscribers_count"`
	IsSubscribed     bool  `json:"is_subscribed"`
}

type VideoView struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	VideoFileURL string    `json:"video_file_url"`
	ThumbnailURL string    `json:"thumbnail_url"`
	Duration     float64   `json:"duration"`
	Views        int64     `json:"views"`
	IsPublished  bool      `json:"is_published"`
	CreatedAt    time.Time `json:"created_at"`
	Owner        OwnerCard `json:"owner"`
	LikesCount   int64     `json:"likes_count"`
	IsLiked      bool      `json:"is_liked"`
}

// VideoDetail is the single-video view; its owner carries channel fields.
type VideoDetail struct {
	ID           uuid.UUID   `json:"id"`
	Title        string      `json:"title"`
	Description  string      `json:"description"`
	VideoFileURL string      `json:"video_file_url"`
	ThumbnailURL string      `json:"thumbnail_url"`
	Duration     float64     `json:"duration"`
	Views        int64       `json:"views"`
	IsPublished  bool        `json:"is_published"`
	CreatedAt    time.Time   `json:"created_at"`
	Owner        ChannelCard `json:"owner"`
	LikesCount   int64       `json:"likes_count"`
	IsLiked      bool        `json:"is_liked"`
}

type CommentView struct {
	ID         uuid.UUID `json:"id"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"created_at"`
	Owner      OwnerCard `json:"owner"`
	LikesCount int64     `json:"likes_count"`
	IsLiked    bool      `json:"is_liked"`
}

type TweetView struct {
	ID         uuid.UUID `json:"id"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"created_at"`
	Owner      OwnerCard `json:"owner"`
	LikesCount int64     `json:"likes_count"`
	IsLiked    bool      `json:"is_liked"`
}

type ChannelView struct {
	ID                  uuid.UUID `json:"id"`
	Username            string    `json:"username"`
	FullName            string    `json:"full_name"`
	AvatarURL           string    `json:"avatar_url"`
	CoverImageURL       string    `json:"cover_image_url"`
	SubscribersCount    int64     `json:"subscribers_count"`
	ChannelsSubscribedTo int64    `json:"channels_subscribed_to"`
	IsSubscribed        bool      `json:"is_subscribed"`
}

// SubscriberCard is one entry of a channel's subscriber list. SubscribedBack
// reports whether the channel in turn subscribes to this subscriber.
type SubscriberCard struct {
	OwnerCard
	SubscribersCount int64 `json:"subscribers_count"`
	SubscribedBack   bool  `json:"subscribed_back"`
}

// SubscribedChannelCard is one entry of a user's subscribed-channels list.
type SubscribedChannelCard struct {
	OwnerCard
	LatestVideo *VideoView `json:"latest_video,omitempty"`
}

type StatsView struct {
	TotalSubscribers int64 `json:"total_subscribers"`
	TotalVideos      int64 `json:"total_videos"`
	TotalViews       int64 `json:"total_views"`
	TotalLikes       int64 `json:"total_likes"`
}

type PlaylistView struct {
	ID          uuid.UUID   `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Owner       OwnerCard   `json:"owner"`
	VideosCount int64       `json:"videos_count"`
	TotalViews  int64       `json:"total_views"`
	CreatedAt   time.Time   `json:"created_at"`
	Videos      []VideoView `json:"videos"`
}
