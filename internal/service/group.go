package service

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/maxzok/hw05-final/internal/dto"
	"github.com/maxzok/hw05-final/internal/model"
	"github.com/maxzok/hw05-final/internal/repository"
	"github.com/maxzok/hw05-final/internal/repository/postgres"
	"go.uber.org/zap"
)

type groupService struct {
	logger *zap.Logger
	repo   *repository.Repository
}

func newGroupService(logger *zap.Logger, repo *repository.Repository) Group {
	return &groupService{
		logger: logger,
		repo:   repo,
	}
}

func (s *groupService) Create(ctx context.Context, input dto.CreateGroupRequest) (*model.Group, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, ErrTitleRequired
	}
	if strings.TrimSpace(input.Slug) == "" {
		return nil, ErrSlugRequired
	}

	group := model.Group{
		Title:       input.Title,
		Slug:        input.Slug,
		Description: input.Description,
	}

	createdGroup, err := s.repo.Postgres.Group.Create(ctx, group)
	if err != nil {
		if errors.Is(err, postgres.ErrUniqueViolation) {
			return nil, ErrSlugTaken
		}

		s.logger.Sugar().Errorf("failed to create group(%s): %s", input.Slug, err.Error())
		return nil, ErrInternal
	}

	return createdGroup, nil
}

func (s *groupService) FindAll(ctx context.Context) ([]*model.Group, error) {
	groups, err := s.repo.Postgres.Group.FindAll(ctx)
	if err != nil {
		s.logger.Sugar().Errorf("failed to find groups from postgres: %s", err.Error())
		return nil, ErrInternal
	}

	return groups, nil
}

func (s *groupService) FindBySlug(ctx context.Context, slug string) (*model.Group, error) {
	group, err := s.repo.Postgres.Group.FindBySlug(ctx, slug)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrGroupNotFound
		}

		s.logger.Sugar().Errorf("failed to find group(%s) from postgres: %s", slug, err.Error())
		return nil, ErrInternal
	}

	return group, nil
}

// Delete removes the group itself; its posts survive with group cleared.
func (s *groupService) Delete(ctx context.Context, slug string) error {
	deleted, err := s.repo.Postgres.Group.Delete(ctx, slug)
	if err != nil {
		s.logger.Sugar().Errorf("failed to delete group(%s): %s", slug, err.Error())
		return ErrInternal
	}

	if deleted == 0 {
		return ErrGroupNotFound
	}

	return nil
}
