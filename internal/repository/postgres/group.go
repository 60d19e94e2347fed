package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/maxzok/hw05-final/internal/model"
)

type groupRepo struct {
	db *pgxpool.Pool
}

func newGroupRepo(db *pgxpool.Pool) Group {
	return &groupRepo{
		db: db,
	}
}

func (r *groupRepo) Create(ctx context.Context, group model.Group) (*model.Group, error) {
	if err := r.db.QueryRow(
		ctx,
		"INSERT INTO groups(title, slug, description) VALUES($1, $2, $3) RETURNING id",
		group.Title,
		group.Slug,
		group.Description,
	).Scan(&group.ID); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrUniqueViolation
		}
		return nil, err
	}

	return &group, nil
}

func (r *groupRepo) FindAll(ctx context.Context) ([]*model.Group, error) {
	rows, err := r.db.Query(ctx, "SELECT g.id, g.title, g.slug, g.description FROM groups g ORDER BY g.title ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var groups []*model.Group
	for rows.Next() {
		var group model.Group
		if err := rows.Scan(&group.ID, &group.Title, &group.Slug, &group.Description); err != nil {
			return nil, err
		}

		groups = append(groups, &group)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return groups, nil
}

func (r *groupRepo) FindBySlug(ctx context.Context, slug string) (*model.Group, error) {
	var group model.Group
	if err := r.db.QueryRow(
		ctx,
		"SELECT g.id, g.title, g.slug, g.description FROM groups g WHERE g.slug = $1",
		slug,
	).Scan(
		&group.ID,
		&group.Title,
		&group.Slug,
		&group.Description,
	); err != nil {
		return nil, err
	}

	return &group, nil
}

// Delete removes the group; posts that referenced it survive with a null
// group_id through the schema's ON DELETE SET NULL.
func (r *groupRepo) Delete(ctx context.Context, slug string) (int64, error) {
	tag, err := r.db.Exec(ctx, "DELETE FROM groups WHERE slug = $1", slug)
	if err != nil {
		return 0, err
	}

	return tag.RowsAffected(), nil
}
