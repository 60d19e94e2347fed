package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/maxzok/hw05-final/internal/dto"
	"github.com/maxzok/hw05-final/internal/repository"
	"github.com/maxzok/hw05-final/internal/repository/postgres"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// POSTS_PER_PAGE is the fixed page size of every feed variant.
const POSTS_PER_PAGE = 10

type feedService struct {
	logger *zap.Logger
	repo   *repository.Repository
	cache  FeedCache
}

func newFeedService(logger *zap.Logger, repo *repository.Repository, cache FeedCache) Feed {
	return &feedService{
		logger: logger,
		repo:   repo,
		cache:  cache,
	}
}

// Global serves the unfiltered feed. Only the default page is cached: the
// cache key carries no parameters, so requests for deeper pages go straight
// to the store.
func (s *feedService) Global(ctx context.Context, page int) (*dto.FeedPage, error) {
	if page <= 1 {
		cached, err := s.cache.Get(ctx)
		if err == nil && cached != nil {
			return cached, nil
		}
		if err != nil && err != redis.Nil {
			s.logger.Sugar().Errorf("failed to get global feed from cache: %s", err.Error())
		}
	}

	feedPage, err := s.findPage(ctx, postgres.FeedFilter{}, page)
	if err != nil {
		return nil, err
	}

	if feedPage.Page == 1 {
		if err := s.cache.Put(ctx, feedPage); err != nil {
			s.logger.Sugar().Errorf("failed to put global feed in cache: %s", err.Error())
		}
	}

	return feedPage, nil
}

func (s *feedService) Group(ctx context.Context, slug string, page int) (*dto.FeedPage, error) {
	group, err := s.repo.Postgres.Group.FindBySlug(ctx, slug)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrGroupNotFound
		}

		s.logger.Sugar().Errorf("failed to find group(%s) from postgres: %s", slug, err.Error())
		return nil, ErrInternal
	}

	return s.findPage(ctx, postgres.FeedFilter{GroupID: &group.ID}, page)
}

func (s *feedService) Profile(ctx context.Context, username string, page int) (*dto.FeedPage, error) {
	user, err := s.repo.Postgres.UserCache.FindByUsername(ctx, username)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrUserNotFound
		}

		s.logger.Sugar().Errorf("failed to find user(%s) from postgres: %s", username, err.Error())
		return nil, ErrInternal
	}

	return s.findPage(ctx, postgres.FeedFilter{AuthorID: &user.ID}, page)
}

// Following returns posts of the authors the user follows. An anonymous
// requester gets an empty page, not an error.
func (s *feedService) Following(ctx context.Context, userID uuid.UUID, page int) (*dto.FeedPage, error) {
	if userID == uuid.Nil {
		return emptyPage(), nil
	}

	return s.findPage(ctx, postgres.FeedFilter{FollowerID: &userID}, page)
}

func (s *feedService) findPage(ctx context.Context, filter postgres.FeedFilter, page int) (*dto.FeedPage, error) {
	items, total, page, err := s.repo.Postgres.Post.FindFeedPage(ctx, filter, page, POSTS_PER_PAGE)
	if err != nil {
		s.logger.Sugar().Errorf("failed to find feed page(%d) from postgres: %s", page, err.Error())
		return nil, ErrInternal
	}

	totalPages := postgres.TotalPages(total, POSTS_PER_PAGE)

	return &dto.FeedPage{
		Items:      items,
		Page:       page,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
	}, nil
}

func emptyPage() *dto.FeedPage {
	return &dto.FeedPage{
		Items:      nil,
		Page:       1,
		TotalPages: 1,
		HasNext:    false,
		HasPrev:    false,
	}
}
