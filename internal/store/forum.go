package store

import (
	"sync"
	"time"
)

// ForumPost is one community forum post. IDs are assigned in creation order
// starting at 0 and are never reused. Likes is carried for API compatibility
// but no endpoint increments it.
type ForumPost struct {
	ID        int       `json:"id"`
	Content   string    `json:"content"`
	Author    string    `json:"author"`
	Topic     string    `json:"topic"`
	Timestamp time.Time `json:"timestamp"`
	Likes     int       `json:"likes"`
}

// ForumStore is an append-only in-memory post collection.
type ForumStore struct {
	mu    sync.RWMutex
	posts []ForumPost
}

// NewForumStore creates an empty forum.
func NewForumStore() *ForumStore {
	return &ForumStore{
		posts: make([]ForumPost, 0),
	}
}

// Append creates a post and returns it. The ID is the collection length at
// creation time; assigning it under the write lock keeps IDs unique and
// strictly ordered even under concurrent submissions.
func (s *ForumStore) Append(content, author, topic string, timestamp time.Time) ForumPost {
	s.mu.Lock()
	defer s.mu.Unlock()

	post := ForumPost{
		ID:        len(s.posts),
		Content:   content,
		Author:    author,
		Topic:     topic,
		Timestamp: timestamp,
	}
	s.posts = append(s.posts, post)
	return post
}

// Tail returns the most recently appended limit posts in insertion order,
// filtered by exact topic match when topic is non-empty, along with the total
// number of posts in the collection (unfiltered).
func (s *ForumStore) Tail(topic string, limit int) ([]ForumPost, int) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	filtered := s.posts
	if topic != "" {
		filtered = make([]ForumPost, 0)
		for _, post := range s.posts {
			if post.Topic == topic {
				filtered = append(filtered, post)
			}
		}
	}

	start := len(filtered) - limit
	if start < 0 {
		start = 0
	}

	out := make([]ForumPost, len(filtered)-start)
	copy(out, filtered[start:])
	return out, len(s.posts)
}

// Topics returns the unique topics in first-seen order.
func (s *ForumStore) Topics() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]bool)
	topics := make([]string, 0)
	for _, post := range s.posts {
		if !seen[post.Topic] {
			seen[post.Topic] = true
			topics = append(topics, post.Topic)
		}
	}
	return topics
}

// Len returns the number of posts in the collection.
func (s *ForumStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.posts)
}
