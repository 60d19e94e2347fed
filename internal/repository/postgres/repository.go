package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/maxzok/hw05-final/internal/model"
)

type Post interface {
	Create(ctx context.Context, post model.Post) (*model.Post, error)
	Update(ctx context.Context, id int64, updates map[string]interface{}) error
	FindByID(ctx context.Context, id int64) (*model.FullPost, error)
	FindFeedPage(ctx context.Context, filter FeedFilter, page int, size int) ([]*model.FeedPost, int64, int, error)
}

type Comment interface {
	Create(ctx context.Context, comment model.Comment) (*model.Comment, error)
	FindPostComments(ctx context.Context, postID int64, limit int, offset int) ([]*model.FullComment, error)
}

type Group interface {
	Create(ctx context.Context, group model.Group) (*model.Group, error)
	FindAll(ctx context.Context) ([]*model.Group, error)
	FindBySlug(ctx context.Context, slug string) (*model.Group, error)
	Delete(ctx context.Context, slug string) (int64, error)
}

type Follow interface {
	Create(ctx context.Context, userID uuid.UUID, authorID uuid.UUID) error
	Delete(ctx context.Context, userID uuid.UUID, authorID uuid.UUID) (int64, error)
	Exists(ctx context.Context, userID uuid.UUID, authorID uuid.UUID) (bool, error)
}

type UserCache interface {
	Create(ctx context.Context, cachedUser model.CachedUser) error
	Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.CachedUser, error)
	FindByUsername(ctx context.Context, username string) (*model.CachedUser, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type PostgresRepository struct {
	Post
	Comment
	Group
	Follow
	UserCache
}

func New(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{
		Post:      newPostRepo(db),
		Comment:   newCommentRepo(db),
		Group:     newGroupRepo(db),
		Follow:    newFollowRepo(db),
		UserCache: newUserCacheRepo(db),
	}
}
