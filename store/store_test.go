package store

import (
	"errors"
	"strconv"
	"testing"

	"postapi/models"
)

func newPost(title, content string) *models.CreatePostRequest {
	return &models.CreatePostRequest{Title: title, Content: content}
}

func TestCreateAssignsDistinctIDs(t *testing.T) {
	for _, tc := range []struct {
		name string
		opts []Option
	}{
		{name: "counter"},
		{name: "random", opts: []Option{RandomIDs()}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			s := New(tc.opts...)
			seen := make(map[uint]bool)
			for i := 0; i < 200; i++ {
				post := s.Create(newPost("title "+strconv.Itoa(i), "content"))
				if seen[post.ID] {
					t.Fatalf("duplicate id assigned: %d", post.ID)
				}
				seen[post.ID] = true
			}
		})
	}
}

func TestCreateDefaults(t *testing.T) {
	s := New()
	post := s.Create(newPost("A", "B"))

	if !post.Published {
		t.Errorf("expected published to default to true")
	}
	if post.Rating != nil {
		t.Errorf("expected rating to default to nil, got %d", *post.Rating)
	}
}

func TestGetAfterCreate(t *testing.T) {
	s := New()
	unpublished := false
	rating := 7
	created := s.Create(&models.CreatePostRequest{
		Title:     "A",
		Content:   "B",
		Published: &unpublished,
		Rating:    &rating,
	})

	got, err := s.Get(created.ID)
	if err != nil {
		t.Fatalf("Get(%d) failed: %v", created.ID, err)
	}
	if got.Title != "A" || got.Content != "B" || got.Published {
		t.Errorf("unexpected post: %+v", got)
	}
	if got.Rating == nil || *got.Rating != 7 {
		t.Errorf("expected rating 7, got %v", got.Rating)
	}
}

func TestGetMissing(t *testing.T) {
	s := New()
	_, err := s.Get(42)

	var notFound NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	if notFound.ID != 42 {
		t.Errorf("expected id 42 in error, got %d", notFound.ID)
	}
}

func TestDeleteThenGet(t *testing.T) {
	s := New()
	post := s.Create(newPost("A", "B"))

	if err := s.Delete(post.ID); err != nil {
		t.Fatalf("Delete(%d) failed: %v", post.ID, err)
	}

	var notFound NotFoundError
	if _, err := s.Get(post.ID); !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError after delete, got %v", err)
	}
}

func TestDeleteMissing(t *testing.T) {
	s := New()

	var notFound NotFoundError
	if err := s.Delete(1); !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestUpdateReplacesFields(t *testing.T) {
	s := New()
	rating := 3
	created := s.Create(&models.CreatePostRequest{Title: "A", Content: "B", Rating: &rating})

	updated, err := s.Update(created.ID, &models.UpdatePostRequest{Title: "C", Content: "D"})
	if err != nil {
		t.Fatalf("Update(%d) failed: %v", created.ID, err)
	}
	if updated.ID != created.ID {
		t.Errorf("id changed on update: %d -> %d", created.ID, updated.ID)
	}

	got, err := s.Get(created.ID)
	if err != nil {
		t.Fatalf("Get(%d) failed: %v", created.ID, err)
	}
	if got.Title != "C" || got.Content != "D" {
		t.Errorf("fields not replaced: %+v", got)
	}
	if !got.Published {
		t.Errorf("expected published to reset to default true")
	}
	if got.Rating != nil {
		t.Errorf("expected rating cleared by full replacement, got %d", *got.Rating)
	}
}

func TestUpdateMissing(t *testing.T) {
	s := New()

	var notFound NotFoundError
	if _, err := s.Update(9, &models.UpdatePostRequest{Title: "A", Content: "B"}); !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestLatest(t *testing.T) {
	s := New()

	if _, err := s.Latest(); !errors.Is(err, ErrEmpty) {
		t.Fatalf("expected ErrEmpty on empty store, got %v", err)
	}

	s.Create(newPost("first", "1"))
	second := s.Create(newPost("second", "2"))

	latest, err := s.Latest()
	if err != nil {
		t.Fatalf("Latest failed: %v", err)
	}
	if latest.ID != second.ID {
		t.Errorf("expected latest id %d, got %d", second.ID, latest.ID)
	}
}

func TestListInsertionOrder(t *testing.T) {
	s := New()
	first := s.Create(newPost("first", "1"))
	second := s.Create(newPost("second", "2"))
	third := s.Create(newPost("third", "3"))

	if err := s.Delete(second.ID); err != nil {
		t.Fatalf("Delete(%d) failed: %v", second.ID, err)
	}

	posts := s.List()
	if len(posts) != 2 {
		t.Fatalf("expected 2 posts, got %d", len(posts))
	}
	if posts[0].ID != first.ID || posts[1].ID != third.ID {
		t.Errorf("insertion order broken: %+v", posts)
	}
}

func TestSeed(t *testing.T) {
	for _, tc := range []struct {
		name string
		opts []Option
	}{
		{name: "counter"},
		{name: "random", opts: []Option{RandomIDs()}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			s := New(tc.opts...)
			s.Seed()

			posts := s.List()
			if len(posts) != 2 {
				t.Fatalf("expected 2 seeded posts, got %d", len(posts))
			}
			for i, post := range posts {
				if want := uint(i + 1); post.ID != want {
					t.Errorf("expected seeded id %d, got %d", want, post.ID)
				}
				if post.Published {
					t.Errorf("seeded post %d should be unpublished", post.ID)
				}
			}
		})
	}
}

func TestCreateAfterSeed(t *testing.T) {
	s := New()
	s.Seed()

	post := s.Create(newPost("A", "B"))
	if post.ID <= 2 {
		t.Errorf("created id %d collides with seeded posts", post.ID)
	}
}
