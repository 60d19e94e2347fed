package service

import (
	"context"
	"mime/multipart"

	"github.com/google/uuid"
	"github.com/maxzok/hw05-final/internal/dto"
	"github.com/maxzok/hw05-final/internal/model"
	"github.com/maxzok/hw05-final/internal/rabbitmq"
	"github.com/maxzok/hw05-final/internal/repository"
	"go.uber.org/zap"
)

type Feed interface {
	Global(ctx context.Context, page int) (*dto.FeedPage, error)
	Group(ctx context.Context, slug string, page int) (*dto.FeedPage, error)
	Profile(ctx context.Context, username string, page int) (*dto.FeedPage, error)
	Following(ctx context.Context, userID uuid.UUID, page int) (*dto.FeedPage, error)
}

type FeedCache interface {
	Get(ctx context.Context) (*dto.FeedPage, error)
	Put(ctx context.Context, page *dto.FeedPage) error
	Clear(ctx context.Context) error
}

type Post interface {
	Create(ctx context.Context, authorID uuid.UUID, input dto.CreatePostRequest) (*model.Post, error)
	Update(ctx context.Context, postID int64, userID uuid.UUID, input dto.EditPostRequest) (*model.FullPost, error)
	FindByID(ctx context.Context, id int64) (*model.FullPost, error)
	UploadTempPostImage(ctx context.Context, file multipart.File, fileHeader *multipart.FileHeader) (string, error)
}

type Comment interface {
	Create(ctx context.Context, authorID uuid.UUID, postID int64, input dto.CreateCommentRequest) (*model.Comment, error)
	FindPostComments(ctx context.Context, postID int64, limit int, offset int) ([]*model.FullComment, error)
}

type Group interface {
	Create(ctx context.Context, input dto.CreateGroupRequest) (*model.Group, error)
	FindAll(ctx context.Context) ([]*model.Group, error)
	FindBySlug(ctx context.Context, slug string) (*model.Group, error)
	Delete(ctx context.Context, slug string) error
}

type Follow interface {
	Follow(ctx context.Context, followerID uuid.UUID, authorUsername string) error
	Unfollow(ctx context.Context, followerID uuid.UUID, authorUsername string) error
	IsFollowing(ctx context.Context, followerID uuid.UUID, authorUsername string) (bool, error)
}

type UserCache interface {
	CreateOrGet(ctx context.Context, id uuid.UUID, accessToken string) (*model.CachedUser, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.CachedUser, error)
	FindByUsername(ctx context.Context, username string) (*model.CachedUser, error)
	StartConsumeAll(ctx context.Context)
}

type Service struct {
	Feed
	FeedCache
	Post
	Comment
	Group
	Follow
	UserCache
}

func New(logger *zap.Logger, repo *repository.Repository, rabbitmq *rabbitmq.MQConn) *Service {
	feedCache := newFeedCacheService(logger, repo)

	return &Service{
		Feed:      newFeedService(logger, repo, feedCache),
		FeedCache: feedCache,
		Post:      newPostService(logger, repo),
		Comment:   newCommentService(logger, repo),
		Group:     newGroupService(logger, repo),
		Follow:    newFollowService(logger, repo),
		UserCache: newUserCacheService(logger, repo, rabbitmq),
	}
}
