package service

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/maxzok/hw05-final/internal/dto"
	"github.com/maxzok/hw05-final/internal/model"
	"github.com/maxzok/hw05-final/internal/repository"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type postService struct {
	logger     *zap.Logger
	repo       *repository.Repository
	httpClient *http.Client
}

func newPostService(logger *zap.Logger, repo *repository.Repository) Post {
	return &postService{
		logger:     logger,
		repo:       repo,
		httpClient: &http.Client{},
	}
}

// Create persists a new post with a server-assigned pub_date. A fresh post is
// intentionally NOT written through to the global feed cache: staleness there
// is bounded by the TTL.
func (s *postService) Create(ctx context.Context, authorID uuid.UUID, input dto.CreatePostRequest) (*model.Post, error) {
	if strings.TrimSpace(input.Text) == "" {
		return nil, ErrTextRequired
	}

	post := model.Post{
		AuthorID: authorID,
		Text:     input.Text,
		Image:    input.Image,
	}

	if input.Group != nil {
		groupID, err := s.resolveGroupID(ctx, *input.Group)
		if err != nil {
			return nil, err
		}
		post.GroupID = groupID
	}

	createdPost, err := s.repo.Postgres.Post.Create(ctx, post)
	if err != nil {
		s.logger.Sugar().Errorf("failed to create user(%s) post: %s", authorID.String(), err.Error())
		return nil, ErrInternal
	}

	return createdPost, nil
}

// Update applies author-only edits to text, group and image. pub_date stays
// untouched whatever the input.
func (s *postService) Update(ctx context.Context, postID int64, userID uuid.UUID, input dto.EditPostRequest) (*model.FullPost, error) {
	post, err := s.FindByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	if post.Post.AuthorID != userID {
		return nil, ErrNotPostAuthor
	}

	updates := make(map[string]interface{})
	if input.Text != nil {
		if strings.TrimSpace(*input.Text) == "" {
			return nil, ErrTextRequired
		}
		updates["text"] = *input.Text
	}
	if input.Group != nil {
		if *input.Group == "" {
			updates["group_id"] = nil
		} else {
			groupID, err := s.resolveGroupID(ctx, *input.Group)
			if err != nil {
				return nil, err
			}
			updates["group_id"] = groupID
		}
	}
	if input.Image != nil {
		updates["image"] = *input.Image
	}

	if len(updates) == 0 {
		return post, nil
	}

	if err := s.repo.Postgres.Post.Update(ctx, postID, updates); err != nil {
		s.logger.Sugar().Errorf("failed to update post(%d): %s", postID, err.Error())
		return nil, ErrInternal
	}

	return s.FindByID(ctx, postID)
}

func (s *postService) FindByID(ctx context.Context, id int64) (*model.FullPost, error) {
	post, err := s.repo.Postgres.Post.FindByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrPostNotFound
		}

		s.logger.Sugar().Errorf("failed to find post(%d) from postgres: %s", id, err.Error())
		return nil, ErrInternal
	}

	return post, nil
}

func (s *postService) resolveGroupID(ctx context.Context, slug string) (*int64, error) {
	group, err := s.repo.Postgres.Group.FindBySlug(ctx, slug)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrGroupNotFound
		}

		s.logger.Sugar().Errorf("failed to find group(%s) from postgres: %s", slug, err.Error())
		return nil, ErrInternal
	}

	return &group.ID, nil
}

// UploadTempPostImage passes the blob through to the CDN and returns the
// stable reference that ends up on posts.image. Image bytes are never
// inspected here.
func (s *postService) UploadTempPostImage(ctx context.Context, file multipart.File, fileHeader *multipart.FileHeader) (string, error) {
	return s.uploadImageToCDN("post-images", file, fileHeader)
}

func (s *postService) uploadImageToCDN(path string, file multipart.File, fileHeader *multipart.FileHeader) (string, error) {
	endpoint := "/upload"
	url := viper.GetString("cdn.origin") + endpoint

	var requestBody bytes.Buffer
	writer := multipart.NewWriter(&requestBody)

	fileWriter, err := writer.CreateFormFile("file", fileHeader.Filename)
	if err != nil {
		s.logger.Sugar().Errorf("failed to create file part for CDN request: %s", err.Error())
		return "", ErrInternal
	}

	if _, err := file.Seek(0, io.SeekStart); err != nil {
		s.logger.Sugar().Errorf("failed to seek to the start of the file: %s", err.Error())
		return "", ErrInternal
	}

	if _, err := io.Copy(fileWriter, file); err != nil {
		s.logger.Sugar().Errorf("failed to copy file content for CDN request: %s", err.Error())
		return "", ErrInternal
	}

	if err := writer.WriteField("path", path); err != nil {
		s.logger.Sugar().Errorf("failed to write path field for CDN request: %s", err.Error())
		return "", ErrInternal
	}

	if err := writer.Close(); err != nil {
		s.logger.Sugar().Errorf("failed to close writer for CDN request: %s", err.Error())
		return "", ErrInternal
	}

	req, err := http.NewRequest(http.MethodPost, url, &requestBody)
	if err != nil {
		s.logger.Sugar().Errorf("failed to create CDN request: %s", err.Error())
		return "", ErrInternal
	}

	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Add("type", "IMAGE")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		s.logger.Sugar().Errorf("failed to do CDN request: %s", err.Error())
		return "", ErrInternal
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		s.logger.Sugar().Errorf("failed to read response body from CDN: %s", err.Error())
		return "", ErrInternal
	}

	if resp.StatusCode != http.StatusOK {
		var bodyJSON map[string]interface{}
		if err := json.Unmarshal(body, &bodyJSON); err != nil {
			s.logger.Sugar().Errorf("failed to decode error response from CDN: %s", err.Error())
		} else {
			s.logger.Sugar().Errorf("ERROR from CDN endpoint(%s), code(%d), details: %s", endpoint, resp.StatusCode, bodyJSON["details"])
		}
		return "", ErrFailedToUploadPostImageToCDN
	}

	return string(body), nil
}
