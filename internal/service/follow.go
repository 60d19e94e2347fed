package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/maxzok/hw05-final/internal/model"
	"github.com/maxzok/hw05-final/internal/repository"
	"github.com/maxzok/hw05-final/internal/repository/postgres"
	"go.uber.org/zap"
)

type followService struct {
	logger *zap.Logger
	repo   *repository.Repository
}

func newFollowService(logger *zap.Logger, repo *repository.Repository) Follow {
	return &followService{
		logger: logger,
		repo:   repo,
	}
}

// Follow creates the edge follower -> author. Self-follow and duplicate
// follow are rejected, never a crash; the duplicate check is the store's
// unique index, not an application-level existence probe.
func (s *followService) Follow(ctx context.Context, followerID uuid.UUID, authorUsername string) error {
	author, err := s.findAuthor(ctx, authorUsername)
	if err != nil {
		return err
	}

	if followerID == author.ID {
		return ErrSelfFollow
	}

	if err := s.repo.Postgres.Follow.Create(ctx, followerID, author.ID); err != nil {
		if errors.Is(err, postgres.ErrUniqueViolation) {
			return ErrAlreadyFollowing
		}

		s.logger.Sugar().Errorf("failed to create follow(%s -> %s): %s", followerID.String(), author.ID.String(), err.Error())
		return ErrInternal
	}

	return nil
}

// Unfollow removes the edge if present. Unfollowing an author the user never
// followed is a no-op, not an error.
func (s *followService) Unfollow(ctx context.Context, followerID uuid.UUID, authorUsername string) error {
	author, err := s.findAuthor(ctx, authorUsername)
	if err != nil {
		return err
	}

	if _, err := s.repo.Postgres.Follow.Delete(ctx, followerID, author.ID); err != nil {
		s.logger.Sugar().Errorf("failed to delete follow(%s -> %s): %s", followerID.String(), author.ID.String(), err.Error())
		return ErrInternal
	}

	return nil
}

func (s *followService) IsFollowing(ctx context.Context, followerID uuid.UUID, authorUsername string) (bool, error) {
	author, err := s.findAuthor(ctx, authorUsername)
	if err != nil {
		return false, err
	}

	exists, err := s.repo.Postgres.Follow.Exists(ctx, followerID, author.ID)
	if err != nil {
		s.logger.Sugar().Errorf("failed to check follow(%s -> %s): %s", followerID.String(), author.ID.String(), err.Error())
		return false, ErrInternal
	}

	return exists, nil
}

func (s *followService) findAuthor(ctx context.Context, username string) (*model.CachedUser, error) {
	author, err := s.repo.Postgres.UserCache.FindByUsername(ctx, username)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrUserNotFound
		}

		s.logger.Sugar().Errorf("failed to find user(%s) from postgres: %s", username, err.Error())
		return nil, ErrInternal
	}

	return author, nil
}
