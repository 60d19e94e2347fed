package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/maxzok/hw05-final/internal/dto"
	"github.com/maxzok/hw05-final/internal/model"
	"github.com/maxzok/hw05-final/internal/repository"
	"go.uber.org/zap"
)

const MAX_COMMENTS_LIMIT = 50

func maxCommentsLimit(limit *int) {
	if *limit <= 0 || *limit > MAX_COMMENTS_LIMIT {
		*limit = MAX_COMMENTS_LIMIT
	}
}

type commentService struct {
	logger *zap.Logger
	repo   *repository.Repository
}

func newCommentService(logger *zap.Logger, repo *repository.Repository) Comment {
	return &commentService{
		logger: logger,
		repo:   repo,
	}
}

func (s *commentService) Create(ctx context.Context, authorID uuid.UUID, postID int64, input dto.CreateCommentRequest) (*model.Comment, error) {
	if strings.TrimSpace(input.Text) == "" {
		return nil, ErrTextRequired
	}

	if _, err := s.repo.Postgres.Post.FindByID(ctx, postID); err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrPostNotFound
		}

		s.logger.Sugar().Errorf("failed to find post(%d) from postgres: %s", postID, err.Error())
		return nil, ErrInternal
	}

	comment := model.Comment{
		PostID:   postID,
		AuthorID: authorID,
		Text:     input.Text,
	}

	createdComment, err := s.repo.Postgres.Comment.Create(ctx, comment)
	if err != nil {
		s.logger.Sugar().Errorf("failed to create user(%s) comment: %s", authorID.String(), err.Error())
		return nil, ErrInternal
	}

	return createdComment, nil
}

func (s *commentService) FindPostComments(ctx context.Context, postID int64, limit int, offset int) ([]*model.FullComment, error) {
	maxCommentsLimit(&limit)

	comments, err := s.repo.Postgres.Comment.FindPostComments(ctx, postID, limit, offset)
	if err != nil {
		s.logger.Sugar().Errorf("failed to find post(%d) comments from postgres: %s", postID, err.Error())
		return nil, ErrInternal
	}

	return comments, nil
}
