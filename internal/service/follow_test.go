package service

import (
	"context"
	"errors"
	"testing"
)

func TestFollowCreatesEdge(t *testing.T) {
	store, _, services := newTestService()
	ctx := context.Background()

	reader := store.addUser("reader")
	leo := store.addUser("leo")

	if err := services.Follow.Follow(ctx, reader.ID, "leo"); err != nil {
		t.Fatalf("follow: %v", err)
	}
	if !store.isFollowing(reader.ID, leo.ID) {
		t.Fatalf("follow edge missing")
	}

	following, err := services.Follow.IsFollowing(ctx, reader.ID, "leo")
	if err != nil {
		t.Fatalf("isFollowing: %v", err)
	}
	if !following {
		t.Fatalf("IsFollowing must report true")
	}
}

func TestFollowDuplicate(t *testing.T) {
	store, _, services := newTestService()
	ctx := context.Background()

	reader := store.addUser("reader")
	store.addUser("leo")

	if err := services.Follow.Follow(ctx, reader.ID, "leo"); err != nil {
		t.Fatalf("first follow: %v", err)
	}

	err := services.Follow.Follow(ctx, reader.ID, "leo")
	if !errors.Is(err, ErrAlreadyFollowing) {
		t.Fatalf("got %v, want ErrAlreadyFollowing", err)
	}
	if len(store.follows) != 1 {
		t.Fatalf("duplicate follow must leave a single edge, got %d", len(store.follows))
	}
}

func TestFollowSelf(t *testing.T) {
	store, _, services := newTestService()

	leo := store.addUser("leo")

	err := services.Follow.Follow(context.Background(), leo.ID, "leo")
	if !errors.Is(err, ErrSelfFollow) {
		t.Fatalf("got %v, want ErrSelfFollow", err)
	}
	if !errors.Is(err, ErrInvalidOperation) {
		t.Fatalf("ErrSelfFollow must wrap ErrInvalidOperation")
	}
	if len(store.follows) != 0 {
		t.Fatalf("self follow must not create an edge")
	}
}

func TestFollowUnknownAuthor(t *testing.T) {
	store, _, services := newTestService()

	reader := store.addUser("reader")

	err := services.Follow.Follow(context.Background(), reader.ID, "ghost")
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("got %v, want ErrUserNotFound", err)
	}
}

func TestUnfollowRemovesEdge(t *testing.T) {
	store, _, services := newTestService()
	ctx := context.Background()

	reader := store.addUser("reader")
	store.addUser("leo")

	if err := services.Follow.Follow(ctx, reader.ID, "leo"); err != nil {
		t.Fatalf("follow: %v", err)
	}
	if err := services.Follow.Unfollow(ctx, reader.ID, "leo"); err != nil {
		t.Fatalf("unfollow: %v", err)
	}
	if len(store.follows) != 0 {
		t.Fatalf("unfollow must remove the edge")
	}
}

func TestUnfollowWhenNotFollowing(t *testing.T) {
	store, _, services := newTestService()

	reader := store.addUser("reader")
	store.addUser("leo")

	if err := services.Follow.Unfollow(context.Background(), reader.ID, "leo"); err != nil {
		t.Fatalf("unfollow without edge must be a no-op, got %v", err)
	}
}
