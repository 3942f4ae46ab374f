package store

import (
	"sync"
	"testing"
	"time"
)

func TestForumStore_IDsAssignedInCreationOrder(t *testing.T) {
	s := NewForumStore()

	for i := 0; i < 4; i++ {
		post := s.Append("content", "Anonymous", "general", time.Now())
		if post.ID != i {
			t.Errorf("Expected post ID %d, got %d", i, post.ID)
		}
		if post.Likes != 0 {
			t.Errorf("Expected 0 likes, got %d", post.Likes)
		}
	}
}

func TestForumStore_ConcurrentAppendsKeepIDsUnique(t *testing.T) {
	s := NewForumStore()

	const writers = 20
	const perWriter = 50

	var wg sync.WaitGroup
	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWriter; i++ {
				s.Append("content", "Anonymous", "general", time.Now())
			}
		}()
	}
	wg.Wait()

	posts, total := s.Tail("", writers*perWriter)
	if total != writers*perWriter {
		t.Fatalf("Expected %d posts, got %d", writers*perWriter, total)
	}

	seen := make(map[int]bool)
	for _, post := range posts {
		if seen[post.ID] {
			t.Fatalf("Duplicate post ID %d", post.ID)
		}
		seen[post.ID] = true
	}
}

func TestForumStore_TailFiltersByExactTopic(t *testing.T) {
	s := NewForumStore()
	s.Append("a", "x", "sleep", time.Now())
	s.Append("b", "y", "Sleep", time.Now())
	s.Append("c", "z", "sleep", time.Now())
	s.Append("d", "w", "general", time.Now())

	posts, total := s.Tail("sleep", 50)
	if total != 4 {
		t.Errorf("Expected total 4, got %d", total)
	}
	if len(posts) != 2 {
		t.Fatalf("Expected 2 sleep posts (case-sensitive match), got %d", len(posts))
	}
	if posts[0].Content != "a" || posts[1].Content != "c" {
		t.Errorf("Filtered posts out of order: %q, %q", posts[0].Content, posts[1].Content)
	}
}

func TestForumStore_TailLimit(t *testing.T) {
	s := NewForumStore()
	for i := 0; i < 10; i++ {
		s.Append("content", "Anonymous", "general", time.Now())
	}

	posts, _ := s.Tail("", 3)
	if len(posts) != 3 {
		t.Fatalf("Expected 3 posts, got %d", len(posts))
	}
	// Newest three, insertion order preserved.
	for i, wantID := range []int{7, 8, 9} {
		if posts[i].ID != wantID {
			t.Errorf("posts[%d].ID = %d, want %d", i, posts[i].ID, wantID)
		}
	}
}

func TestForumStore_TopicsUniqueFirstSeenOrder(t *testing.T) {
	s := NewForumStore()
	s.Append("a", "x", "sleep", time.Now())
	s.Append("b", "y", "focus", time.Now())
	s.Append("c", "z", "sleep", time.Now())
	s.Append("d", "w", "general", time.Now())

	topics := s.Topics()
	want := []string{"sleep", "focus", "general"}
	if len(topics) != len(want) {
		t.Fatalf("Expected %d topics, got %d", len(want), len(topics))
	}
	for i := range want {
		if topics[i] != want[i] {
			t.Errorf("topics[%d] = %q, want %q", i, topics[i], want[i])
		}
	}
}
