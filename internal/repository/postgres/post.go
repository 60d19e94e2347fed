package postgres

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/maxzok/hw05-final/internal/model"
)

type postRepo struct {
	db *pgxpool.Pool
}

func newPostRepo(db *pgxpool.Pool) Post {
	return &postRepo{
		db: db,
	}
}

func (r *postRepo) Create(ctx context.Context, post model.Post) (*model.Post, error) {
	post.PubDate = time.Now()
	if err := r.db.QueryRow(
		ctx,
		"INSERT INTO posts(author_id, text, group_id, image, pub_date) VALUES($1, $2, $3, $4, $5) RETURNING id",
		post.AuthorID,
		post.Text,
		post.GroupID,
		post.Image,
		post.PubDate,
	).Scan(&post.ID); err != nil {
		return nil, err
	}

	return &post, nil
}

// Update never touches author_id or pub_date: both are immutable after creation.
func (r *postRepo) Update(ctx context.Context, id int64, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}

	allowedFields := []string{"text", "group_id", "image"}
	allowedFieldsSet := make(map[string]struct{}, len(allowedFields))
	for _, field := range allowedFields {
		allowedFieldsSet[field] = struct{}{}
	}

	for field := range updates {
		if _, ok := allowedFieldsSet[field]; !ok {
			return ErrFieldsNotAllowedToUpdate
		}
	}

	query := "UPDATE posts SET "
	args := []interface{}{}
	i := 1

	for column, value := range updates {
		query += (column + " = $" + strconv.Itoa(i) + ", ")
		args = append(args, value)
		i++
	}

	query = query[:len(query)-2] + " WHERE id = $" + strconv.Itoa(i)
	args = append(args, id)

	_, err := r.db.Exec(ctx, query, args...)
	return err
}

func (r *postRepo) FindByID(ctx context.Context, id int64) (*model.FullPost, error) {
	var (
		post       model.FullPost
		groupSlug  *string
		groupTitle *string
	)
	if err := r.db.QueryRow(
		ctx,
		`SELECT
		p.id, p.author_id, p.text, p.group_id, p.image, p.pub_date, u.username, u.display_name, u.avatar_url, g.slug, g.title
		FROM posts p
		JOIN cached_users u ON p.author_id = u.id
		LEFT JOIN groups g ON p.group_id = g.id
		WHERE p.id = $1`,
		id,
	).Scan(
		&post.Post.ID,
		&post.Post.AuthorID,
		&post.Post.Text,
		&post.Post.GroupID,
		&post.Post.Image,
		&post.Post.PubDate,
		&post.Author.Username,
		&post.Author.DisplayName,
		&post.Author.AvatarURL,
		&groupSlug,
		&groupTitle,
	); err != nil {
		return nil, err
	}

	if groupSlug != nil && groupTitle != nil {
		post.Group = &model.GroupRef{Slug: *groupSlug, Title: *groupTitle}
	}

	return &post, nil
}

// FindFeedPage computes the total and the page slice inside one repeatable-read
// transaction so adjacent reads of the same request cycle see a consistent
// snapshot. The returned page number is the requested one clipped into range.
func (r *postRepo) FindFeedPage(ctx context.Context, filter FeedFilter, page int, size int) ([]*model.FeedPost, int64, int, error) {
	where, args := feedWhere(filter)

	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly})
	if err != nil {
		return nil, 0, 0, err
	}
	defer tx.Rollback(ctx)

	var total int64
	if err := tx.QueryRow(ctx, "SELECT COUNT(*) FROM posts p "+where, args...).Scan(&total); err != nil {
		return nil, 0, 0, err
	}

	page = ClampPage(page, total, size)
	offset := (page - 1) * size

	query := fmt.Sprintf(
		`SELECT
		p.id, p.author_id, p.text, p.group_id, p.image, p.pub_date, u.username, u.display_name, u.avatar_url, g.slug, g.title
		FROM posts p
		JOIN cached_users u ON p.author_id = u.id
		LEFT JOIN groups g ON p.group_id = g.id
		%s
		ORDER BY p.pub_date DESC, p.id DESC
		LIMIT $%d
		OFFSET $%d`,
		where,
		len(args)+1,
		len(args)+2,
	)
	rows, err := tx.Query(ctx, query, append(args, size, offset)...)
	if err != nil {
		return nil, 0, 0, err
	}
	defer rows.Close()

	var posts []*model.FeedPost
	for rows.Next() {
		var (
			post       model.FeedPost
			groupSlug  *string
			groupTitle *string
		)
		if err := rows.Scan(
			&post.Post.ID,
			&post.Post.AuthorID,
			&post.Post.Text,
			&post.Post.GroupID,
			&post.Post.Image,
			&post.Post.PubDate,
			&post.Author.Username,
			&post.Author.DisplayName,
			&post.Author.AvatarURL,
			&groupSlug,
			&groupTitle,
		); err != nil {
			return nil, 0, 0, err
		}

		if groupSlug != nil && groupTitle != nil {
			post.Group = &model.GroupRef{Slug: *groupSlug, Title: *groupTitle}
		}

		posts = append(posts, &post)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, 0, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, 0, 0, err
	}

	return posts, total, page, nil
}

func feedWhere(filter FeedFilter) (string, []interface{}) {
	switch {
	case filter.GroupID != nil:
		return "WHERE p.group_id = $1", []interface{}{*filter.GroupID}
	case filter.AuthorID != nil:
		return "WHERE p.author_id = $1", []interface{}{*filter.AuthorID}
	case filter.FollowerID != nil:
		return "WHERE p.author_id IN (SELECT f.author_id FROM follows f WHERE f.user_id = $1)", []interface{}{*filter.FollowerID}
	}

	return "", nil
}
