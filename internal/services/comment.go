package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/cliptube/cliptube-backend/internal/data/repos/content"
	"github.com/cliptube/cliptube-backend/internal/data/repos/engagement"
	"github.com/cliptube/cliptube-backend/internal/data/repos/user"
	types "github.com/cliptube/cliptube-backend/internal/domain"
	"github.com/cliptube/cliptube-backend/internal/pkg/pagination"
	"github.com/cliptube/cliptube-backend/internal/platform/apperr"
	"github.com/cliptube/cliptube-backend/internal/platform/logger"
)

type CommentService interface {
	GetVideoComments(ctx context.Context, viewer, videoID uuid.UUID, page pagination.Params) (*pagination.Page[types.CommentView], error)
	AddComment(ctx context.Context, viewer, videoID uuid.UUID, commentContent string) (*types.Comment, error)
	UpdateComment(ctx context.Context, viewer, commentID uuid.UUID, commentContent string) (*types.Comment, error)
}

type commentService struct {
	db       *gorm.DB
	log      *logger.Logger
	maxLimit int
	userRepo user.UserRepo
	videos   content.VideoRepo
	comments content.CommentRepo
	likes    engagement.LikeRepo
}

func NewCommentService(
	db *gorm.DB,
	log *logger.Logger,
	maxLimit int,
	userRepo user.UserRepo,
	videos content.VideoRepo,
	comments content.CommentRepo,
	likes engagement.LikeRepo,
) CommentService {
	serviceLog := log.With("service", "CommentService")
	return &commentService{
		db:       db,
		log:      serviceLog,
		maxLimit: maxLimit,
		userRepo: userRepo,
		videos:   videos,
		comments: comments,
		likes:    likes,
	}
}

func (cs *commentService) GetVideoComments(ctx context.Context, viewer, videoID uuid.UUID, page pagination.Params) (*pagination.Page[types.CommentView], error) {
	page, err := page.Normalize(cs.maxLimit)
	if err != nil {
		return nil, err
	}

	video, err := cs.videos.GetByID(ctx, nil, videoID)
	if err != nil {
		return nil, err
	}
	if video == nil {
		return nil, apperr.NotFound("video")
	}

	offset, limit := page.Window()
	rows, total, err := cs.comments.ListByVideo(ctx, nil, videoID, offset, limit)
	if err != nil {
		return nil, err
	}
	views, err := decorateComments(ctx, viewer, rows, cs.userRepo, cs.likes)
	if err != nil {
		return nil, err
	}
	return pagination.NewPage(views, page, total), nil
}

func (cs *commentService) AddComment(ctx context.Context, viewer, videoID uuid.UUID, commentContent string) (*types.Comment, error) {
	if viewer == uuid.Nil {
		return nil, apperr.Validation("viewer_required")
	}
	if strings.TrimSpace(commentContent) == "" {
		return nil, apperr.Validation("content_required")
	}

	video, err := cs.videos.GetByID(ctx, nil, videoID)
	if err != nil {
		return nil, err
	}
	if video == nil {
		return nil, apperr.InvalidReference("video_id")
	}

	created, err := cs.comments.Create(ctx, nil, []*types.Comment{{
		Content: commentContent,
		VideoID: videoID,
		OwnerID: viewer,
	}})
	if err != nil {
		return nil, err
	}
	return created[0], nil
}

func (cs *commentService) UpdateComment(ctx context.Context, viewer, commentID uuid.UUID, commentContent string) (*types.Comment, error) {
	if viewer == uuid.Nil {
		return nil, apperr.Validation("viewer_required")
	}
	if strings.TrimSpace(commentContent) == "" {
		return nil, apperr.Validation("content_required")
	}

	comment, err := cs.comments.GetByID(ctx, nil, commentID)
	if err != nil {
		return nil, err
	}
	if comment == nil {
		return nil, apperr.InvalidReference("comment_id")
	}
	if comment.OwnerID != viewer {
		return nil, apperr.Validation("not_owner")
	}

	if err := cs.comments.UpdateContent(ctx, nil, commentID, commentContent); err != nil {
		return nil, err
	}
	comment.Content = commentContent
	return comment, nil
}
