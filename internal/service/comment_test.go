package service

import (
	"context"
	"errors"
	"testing"

	"github.com/maxzok/hw05-final/internal/dto"
)

func TestCommentCreate(t *testing.T) {
	store, _, services := newTestService()
	ctx := context.Background()

	leo := store.addUser("leo")
	mia := store.addUser("mia")
	post := store.addPost(leo.ID, "hello", nil)

	comment, err := services.Comment.Create(ctx, mia.ID, post.ID, dto.CreateCommentRequest{Text: "nice"})
	if err != nil {
		t.Fatalf("create comment: %v", err)
	}
	if comment.Created.IsZero() {
		t.Fatalf("created timestamp must be server assigned")
	}

	comments, err := services.Comment.FindPostComments(ctx, post.ID, 0, 0)
	if err != nil {
		t.Fatalf("find comments: %v", err)
	}
	if len(comments) != 1 || comments[0].Comment.Text != "nice" {
		t.Fatalf("unexpected comments: %+v", comments)
	}
	if comments[0].Author.Username != "mia" {
		t.Fatalf("comment author must be resolved, got %q", comments[0].Author.Username)
	}
}

func TestCommentCreateOnMissingPost(t *testing.T) {
	store, _, services := newTestService()

	mia := store.addUser("mia")

	_, err := services.Comment.Create(context.Background(), mia.ID, 42, dto.CreateCommentRequest{Text: "nice"})
	if !errors.Is(err, ErrPostNotFound) {
		t.Fatalf("got %v, want ErrPostNotFound", err)
	}
}

func TestCommentCreateEmptyText(t *testing.T) {
	store, _, services := newTestService()

	leo := store.addUser("leo")
	post := store.addPost(leo.ID, "hello", nil)

	_, err := services.Comment.Create(context.Background(), leo.ID, post.ID, dto.CreateCommentRequest{Text: " "})
	if !errors.Is(err, ErrTextRequired) {
		t.Fatalf("got %v, want ErrTextRequired", err)
	}
}

func TestCommentsOrderedOldestFirst(t *testing.T) {
	store, _, services := newTestService()
	ctx := context.Background()

	leo := store.addUser("leo")
	post := store.addPost(leo.ID, "hello", nil)

	for _, text := range []string{"first", "second", "third"} {
		if _, err := services.Comment.Create(ctx, leo.ID, post.ID, dto.CreateCommentRequest{Text: text}); err != nil {
			t.Fatalf("create comment %q: %v", text, err)
		}
	}

	comments, err := services.Comment.FindPostComments(ctx, post.ID, 0, 0)
	if err != nil {
		t.Fatalf("find comments: %v", err)
	}
	if len(comments) != 3 {
		t.Fatalf("got %d comments, want 3", len(comments))
	}
	if comments[0].Comment.Text != "first" || comments[2].Comment.Text != "third" {
		t.Fatalf("comments must be ordered oldest first: %+v", comments)
	}
}
