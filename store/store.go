// Package store holds all posts in memory and owns id assignment.
package store

import (
	"math/rand"
	"sync"

	"postapi/models"
)

const (
	randomIDMin = 3
	randomIDMax = 1000000

	// Retries before a colliding random draw falls back to the counter,
	// which keeps Create terminating in a densely populated id space.
	maxRandomRetries = 8
)

type Option func(*PostStore)

// RandomIDs makes the store draw ids from [randomIDMin, randomIDMax]
// instead of incrementing a counter.
func RandomIDs() Option {
	return func(s *PostStore) {
		s.random = true
	}
}

// PostStore is the sole owner of all posts. Reads share the lock,
// mutations serialize, so generated ids stay unique under concurrent use.
type PostStore struct {
	mu     sync.RWMutex
	posts  map[uint]*models.Post
	order  []uint
	nextID uint
	random bool
}

func New(opts ...Option) *PostStore {
	s := &PostStore{
		posts:  make(map[uint]*models.Post),
		nextID: 1,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Seed loads the starter posts so a fresh server has something to serve.
// They keep their fixed ids 1 and 2 under either id policy.
func (s *PostStore) Seed() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, post := range []*models.Post{
		{ID: 1, Title: "title of post 1", Content: "content of post 1"},
		{ID: 2, Title: "title of post 2", Content: "content of post 2"},
	} {
		if _, taken := s.posts[post.ID]; taken {
			continue
		}
		s.posts[post.ID] = post
		s.order = append(s.order, post.ID)
		if post.ID >= s.nextID {
			s.nextID = post.ID + 1
		}
	}
}

// List returns all posts in insertion order.
func (s *PostStore) List() []models.Post {
	s.mu.RLock()
	defer s.mu.RUnlock()

	posts := make([]models.Post, 0, len(s.order))
	for _, id := range s.order {
		posts = append(posts, *s.posts[id])
	}
	return posts
}

// Latest returns the most recently created post.
func (s *PostStore) Latest() (models.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.order) == 0 {
		return models.Post{}, ErrEmpty
	}
	return *s.posts[s.order[len(s.order)-1]], nil
}

func (s *PostStore) Get(id uint) (models.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	post, ok := s.posts[id]
	if !ok {
		return models.Post{}, NotFoundError{ID: id}
	}
	return *post, nil
}

// Create stores a new post under a freshly assigned id and returns it.
func (s *PostStore) Create(req *models.CreatePostRequest) models.Post {
	s.mu.Lock()
	defer s.mu.Unlock()

	post := &models.Post{
		ID:        s.newID(),
		Title:     req.Title,
		Content:   req.Content,
		Published: publishedOrDefault(req.Published),
		Rating:    copyRating(req.Rating),
	}
	s.posts[post.ID] = post
	s.order = append(s.order, post.ID)
	return *post
}

// Update replaces every mutable field of the post; the id never changes.
func (s *PostStore) Update(id uint, req *models.UpdatePostRequest) (models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	post, ok := s.posts[id]
	if !ok {
		return models.Post{}, NotFoundError{ID: id}
	}
	post.Title = req.Title
	post.Content = req.Content
	post.Published = publishedOrDefault(req.Published)
	post.Rating = copyRating(req.Rating)
	return *post, nil
}

func (s *PostStore) Delete(id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.posts[id]; !ok {
		return NotFoundError{ID: id}
	}
	delete(s.posts, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// newID assigns an unused id. The counter is bumped past every id handed
// out, including random ones, so the fallback path never collides.
// Callers must hold the write lock.
func (s *PostStore) newID() uint {
	id := s.nextID
	if s.random {
		for i := 0; i < maxRandomRetries; i++ {
			candidate := uint(rand.Intn(randomIDMax-randomIDMin+1) + randomIDMin)
			if _, taken := s.posts[candidate]; !taken {
				id = candidate
				break
			}
		}
	}
	if id >= s.nextID {
		s.nextID = id + 1
	}
	return id
}

func publishedOrDefault(p *bool) bool {
	if p == nil {
		return true
	}
	return *p
}

func copyRating(r *int) *int {
	if r == nil {
		return nil
	}
	rating := *r
	return &rating
}
