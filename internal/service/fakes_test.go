package service

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/maxzok/hw05-final/internal/model"
	"github.com/maxzok/hw05-final/internal/repository"
	"github.com/maxzok/hw05-final/internal/repository/postgres"
	"github.com/maxzok/hw05-final/internal/repository/redisrepo"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// fakeStore is an in-memory stand-in for the postgres schema, including its
// referential-integrity rules: deleting a user cascades posts, comments and
// follow edges; deleting a group nulls out posts' group_id.
type fakeStore struct {
	users    []*model.CachedUser
	groups   []*model.Group
	posts    []*model.Post
	comments []*model.Comment
	follows  []*model.Follow
	nextID   int64
	clock    time.Time
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		clock: time.Unix(1700000000, 0),
	}
}

func (s *fakeStore) tick() time.Time {
	s.clock = s.clock.Add(time.Second)
	return s.clock
}

func (s *fakeStore) id() int64 {
	s.nextID++
	return s.nextID
}

func (s *fakeStore) addUser(username string) *model.CachedUser {
	user := &model.CachedUser{
		ID:       uuid.New(),
		Username: username,
	}
	s.users = append(s.users, user)
	return user
}

func (s *fakeStore) addGroup(title string, slug string) *model.Group {
	group := &model.Group{
		ID:    s.id(),
		Title: title,
		Slug:  slug,
	}
	s.groups = append(s.groups, group)
	return group
}

func (s *fakeStore) addPost(authorID uuid.UUID, text string, groupID *int64) *model.Post {
	post := &model.Post{
		ID:       s.id(),
		AuthorID: authorID,
		Text:     text,
		GroupID:  groupID,
		PubDate:  s.tick(),
	}
	s.posts = append(s.posts, post)
	return post
}

func (s *fakeStore) userByID(id uuid.UUID) *model.CachedUser {
	for _, user := range s.users {
		if user.ID == id {
			return user
		}
	}
	return nil
}

func (s *fakeStore) groupByID(id int64) *model.Group {
	for _, group := range s.groups {
		if group.ID == id {
			return group
		}
	}
	return nil
}

func (s *fakeStore) isFollowing(userID uuid.UUID, authorID uuid.UUID) bool {
	for _, follow := range s.follows {
		if follow.UserID == userID && follow.AuthorID == authorID {
			return true
		}
	}
	return false
}

func (s *fakeStore) groupRef(groupID *int64) *model.GroupRef {
	if groupID == nil {
		return nil
	}
	group := s.groupByID(*groupID)
	if group == nil {
		return nil
	}
	return &model.GroupRef{Slug: group.Slug, Title: group.Title}
}

func (s *fakeStore) author(id uuid.UUID) model.UserAuthor {
	if user := s.userByID(id); user != nil {
		return model.UserAuthor{
			Username:    user.Username,
			DisplayName: user.DisplayName,
			AvatarURL:   user.AvatarURL,
		}
	}
	return model.UserAuthor{}
}

type fakePostRepo struct {
	s *fakeStore
}

func (r *fakePostRepo) Create(ctx context.Context, post model.Post) (*model.Post, error) {
	created := r.s.addPost(post.AuthorID, post.Text, post.GroupID)
	created.Image = post.Image
	return created, nil
}

func (r *fakePostRepo) Update(ctx context.Context, id int64, updates map[string]interface{}) error {
	for _, post := range r.s.posts {
		if post.ID != id {
			continue
		}
		if text, ok := updates["text"]; ok {
			post.Text = text.(string)
		}
		if groupID, ok := updates["group_id"]; ok {
			if groupID == nil {
				post.GroupID = nil
			} else {
				post.GroupID = groupID.(*int64)
			}
		}
		if image, ok := updates["image"]; ok {
			value := image.(string)
			post.Image = &value
		}
		return nil
	}
	return pgx.ErrNoRows
}

func (r *fakePostRepo) FindByID(ctx context.Context, id int64) (*model.FullPost, error) {
	for _, post := range r.s.posts {
		if post.ID == id {
			return &model.FullPost{
				Post:   *post,
				Author: r.s.author(post.AuthorID),
				Group:  r.s.groupRef(post.GroupID),
			}, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *fakePostRepo) FindFeedPage(ctx context.Context, filter postgres.FeedFilter, page int, size int) ([]*model.FeedPost, int64, int, error) {
	var filtered []*model.Post
	for _, post := range r.s.posts {
		switch {
		case filter.GroupID != nil:
			if post.GroupID != nil && *post.GroupID == *filter.GroupID {
				filtered = append(filtered, post)
			}
		case filter.AuthorID != nil:
			if post.AuthorID == *filter.AuthorID {
				filtered = append(filtered, post)
			}
		case filter.FollowerID != nil:
			if r.s.isFollowing(*filter.FollowerID, post.AuthorID) {
				filtered = append(filtered, post)
			}
		default:
			filtered = append(filtered, post)
		}
	}

	sort.Slice(filtered, func(i, j int) bool {
		if !filtered[i].PubDate.Equal(filtered[j].PubDate) {
			return filtered[i].PubDate.After(filtered[j].PubDate)
		}
		return filtered[i].ID > filtered[j].ID
	})

	total := int64(len(filtered))
	page = postgres.ClampPage(page, total, size)
	offset := (page - 1) * size

	var items []*model.FeedPost
	for i := offset; i < len(filtered) && i < offset+size; i++ {
		post := filtered[i]
		items = append(items, &model.FeedPost{
			Post:   *post,
			Author: r.s.author(post.AuthorID),
			Group:  r.s.groupRef(post.GroupID),
		})
	}

	return items, total, page, nil
}

type fakeCommentRepo struct {
	s *fakeStore
}

func (r *fakeCommentRepo) Create(ctx context.Context, comment model.Comment) (*model.Comment, error) {
	comment.ID = r.s.id()
	comment.Created = r.s.tick()
	created := comment
	r.s.comments = append(r.s.comments, &created)
	return &created, nil
}

func (r *fakeCommentRepo) FindPostComments(ctx context.Context, postID int64, limit int, offset int) ([]*model.FullComment, error) {
	var comments []*model.FullComment
	for _, comment := range r.s.comments {
		if comment.PostID == postID {
			comments = append(comments, &model.FullComment{
				Comment: *comment,
				Author:  r.s.author(comment.AuthorID),
			})
		}
	}

	sort.Slice(comments, func(i, j int) bool {
		return comments[i].Comment.Created.Before(comments[j].Comment.Created)
	})

	if offset > len(comments) {
		return nil, nil
	}
	comments = comments[offset:]
	if limit > 0 && limit < len(comments) {
		comments = comments[:limit]
	}

	return comments, nil
}

type fakeGroupRepo struct {
	s *fakeStore
}

func (r *fakeGroupRepo) Create(ctx context.Context, group model.Group) (*model.Group, error) {
	for _, existing := range r.s.groups {
		if existing.Slug == group.Slug {
			return nil, postgres.ErrUniqueViolation
		}
	}
	created := r.s.addGroup(group.Title, group.Slug)
	created.Description = group.Description
	return created, nil
}

func (r *fakeGroupRepo) FindAll(ctx context.Context) ([]*model.Group, error) {
	groups := make([]*model.Group, len(r.s.groups))
	copy(groups, r.s.groups)
	sort.Slice(groups, func(i, j int) bool { return groups[i].Title < groups[j].Title })
	return groups, nil
}

func (r *fakeGroupRepo) FindBySlug(ctx context.Context, slug string) (*model.Group, error) {
	for _, group := range r.s.groups {
		if group.Slug == slug {
			return group, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeGroupRepo) Delete(ctx context.Context, slug string) (int64, error) {
	for i, group := range r.s.groups {
		if group.Slug != slug {
			continue
		}
		for _, post := range r.s.posts {
			if post.GroupID != nil && *post.GroupID == group.ID {
				post.GroupID = nil
			}
		}
		r.s.groups = append(r.s.groups[:i], r.s.groups[i+1:]...)
		return 1, nil
	}
	return 0, nil
}

type fakeFollowRepo struct {
	s *fakeStore
}

func (r *fakeFollowRepo) Create(ctx context.Context, userID uuid.UUID, authorID uuid.UUID) error {
	if r.s.isFollowing(userID, authorID) {
		return postgres.ErrUniqueViolation
	}
	r.s.follows = append(r.s.follows, &model.Follow{
		ID:        r.s.id(),
		UserID:    userID,
		AuthorID:  authorID,
		CreatedAt: r.s.tick(),
	})
	return nil
}

func (r *fakeFollowRepo) Delete(ctx context.Context, userID uuid.UUID, authorID uuid.UUID) (int64, error) {
	for i, follow := range r.s.follows {
		if follow.UserID == userID && follow.AuthorID == authorID {
			r.s.follows = append(r.s.follows[:i], r.s.follows[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (r *fakeFollowRepo) Exists(ctx context.Context, userID uuid.UUID, authorID uuid.UUID) (bool, error) {
	return r.s.isFollowing(userID, authorID), nil
}

type fakeUserCacheRepo struct {
	s *fakeStore
}

func (r *fakeUserCacheRepo) Create(ctx context.Context, cachedUser model.CachedUser) error {
	created := cachedUser
	r.s.users = append(r.s.users, &created)
	return nil
}

func (r *fakeUserCacheRepo) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	user := r.s.userByID(id)
	if user == nil {
		return pgx.ErrNoRows
	}
	if username, ok := updates["username"].(string); ok {
		user.Username = username
	}
	return nil
}

func (r *fakeUserCacheRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.CachedUser, error) {
	if user := r.s.userByID(id); user != nil {
		return user, nil
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeUserCacheRepo) FindByUsername(ctx context.Context, username string) (*model.CachedUser, error) {
	for _, user := range r.s.users {
		if user.Username == username {
			return user, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeUserCacheRepo) Delete(ctx context.Context, id uuid.UUID) error {
	for i, user := range r.s.users {
		if user.ID != id {
			continue
		}
		r.s.users = append(r.s.users[:i], r.s.users[i+1:]...)

		var posts []*model.Post
		for _, post := range r.s.posts {
			if post.AuthorID != id {
				posts = append(posts, post)
			}
		}
		r.s.posts = posts

		var comments []*model.Comment
		for _, comment := range r.s.comments {
			if comment.AuthorID != id {
				comments = append(comments, comment)
			}
		}
		r.s.comments = comments

		var follows []*model.Follow
		for _, follow := range r.s.follows {
			if follow.UserID != id && follow.AuthorID != id {
				follows = append(follows, follow)
			}
		}
		r.s.follows = follows

		return nil
	}
	return nil
}

type fakeRedis struct {
	values map[string]string
	ttls   map[string]time.Duration
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{
		values: make(map[string]string),
		ttls:   make(map[string]time.Duration),
	}
}

func (f *fakeRedis) SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	valueJSON, err := json.Marshal(value)
	if err != nil {
		return err
	}

	f.values[key] = string(valueJSON)
	f.ttls[key] = ttl
	return nil
}

func (f *fakeRedis) Get(ctx context.Context, key string) *redis.StringCmd {
	value, ok := f.values[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}

	return redis.NewStringResult(value, nil)
}

func (f *fakeRedis) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	var deleted int64
	for _, key := range keys {
		if _, ok := f.values[key]; ok {
			delete(f.values, key)
			delete(f.ttls, key)
			deleted++
		}
	}

	return redis.NewIntResult(deleted, nil)
}

func newTestService() (*fakeStore, *fakeRedis, *Service) {
	store := newFakeStore()
	rds := newFakeRedis()

	repo := &repository.Repository{
		Postgres: &postgres.PostgresRepository{
			Post:      &fakePostRepo{s: store},
			Comment:   &fakeCommentRepo{s: store},
			Group:     &fakeGroupRepo{s: store},
			Follow:    &fakeFollowRepo{s: store},
			UserCache: &fakeUserCacheRepo{s: store},
		},
		Redis: &redisrepo.RedisRepository{
			Default: rds,
		},
	}

	return store, rds, New(zap.NewNop(), repo, nil)
}
