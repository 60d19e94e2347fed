package model

import (
	"time"

	"github.com/google/uuid"
)

// Follow is a directed edge: UserID sees AuthorID's posts in their following feed.
type Follow struct {
	ID        int64     `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	AuthorID  uuid.UUID `json:"author_id"`
	CreatedAt time.Time `json:"created_at"`
}
