package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type followRepo struct {
	db *pgxpool.Pool
}

func newFollowRepo(db *pgxpool.Pool) Follow {
	return &followRepo{
		db: db,
	}
}

// Create relies on the unique (user_id, author_id) index to reject duplicates,
// so two concurrent follow clicks cannot both insert an edge.
func (r *followRepo) Create(ctx context.Context, userID uuid.UUID, authorID uuid.UUID) error {
	_, err := r.db.Exec(
		ctx,
		"INSERT INTO follows(user_id, author_id) VALUES($1, $2)",
		userID,
		authorID,
	)
	if isUniqueViolation(err) {
		return ErrUniqueViolation
	}

	return err
}

func (r *followRepo) Delete(ctx context.Context, userID uuid.UUID, authorID uuid.UUID) (int64, error) {
	tag, err := r.db.Exec(
		ctx,
		"DELETE FROM follows WHERE user_id = $1 AND author_id = $2",
		userID,
		authorID,
	)
	if err != nil {
		return 0, err
	}

	return tag.RowsAffected(), nil
}

func (r *followRepo) Exists(ctx context.Context, userID uuid.UUID, authorID uuid.UUID) (bool, error) {
	var exists bool
	if err := r.db.QueryRow(
		ctx,
		"SELECT EXISTS(SELECT 1 FROM follows WHERE user_id = $1 AND author_id = $2)",
		userID,
		authorID,
	).Scan(&exists); err != nil {
		return false, err
	}

	return exists, nil
}
