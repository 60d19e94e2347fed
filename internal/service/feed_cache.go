package service

import (
	"context"
	"time"

	"github.com/maxzok/hw05-final/internal/dto"
	"github.com/maxzok/hw05-final/internal/repository"
	"github.com/maxzok/hw05-final/internal/repository/redisrepo"
	"go.uber.org/zap"
)

// GLOBAL_FEED_TTL bounds how stale the cached global feed may get. Within the
// window repeated requests return the identical snapshot even if new posts
// were created in the interim.
const GLOBAL_FEED_TTL = time.Second * 20

type feedCacheService struct {
	logger *zap.Logger
	repo   *repository.Repository
}

func newFeedCacheService(logger *zap.Logger, repo *repository.Repository) FeedCache {
	return &feedCacheService{
		logger: logger,
		repo:   repo,
	}
}

func (s *feedCacheService) Get(ctx context.Context) (*dto.FeedPage, error) {
	return redisrepo.Get[dto.FeedPage](s.repo.Redis.Default, ctx, redisrepo.GlobalFeedKey())
}

func (s *feedCacheService) Put(ctx context.Context, page *dto.FeedPage) error {
	return s.repo.Redis.Default.SetJSON(ctx, redisrepo.GlobalFeedKey(), page, GLOBAL_FEED_TTL)
}

func (s *feedCacheService) Clear(ctx context.Context) error {
	if err := s.repo.Redis.Default.Del(ctx, redisrepo.GlobalFeedKey()).Err(); err != nil {
		s.logger.Sugar().Errorf("failed to clear global feed cache: %s", err.Error())
		return ErrInternal
	}

	return nil
}
