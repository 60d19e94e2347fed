package model

import (
	"time"

	"github.com/google/uuid"
)

type Post struct {
	ID       int64     `json:"id"`
	AuthorID uuid.UUID `json:"author_id"`
	Text     string    `json:"text"`
	GroupID  *int64    `json:"group_id"`
	Image    *string   `json:"image"`
	PubDate  time.Time `json:"pub_date"`
}

type FullPost struct {
	Post   Post       `json:"post"`
	Author UserAuthor `json:"author"`
	Group  *GroupRef  `json:"group"`
}

type FeedPost struct {
	Post   Post       `json:"post"`
	Author UserAuthor `json:"author"`
	Group  *GroupRef  `json:"group"`
}
