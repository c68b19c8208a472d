package session

import (
	"context"
	"sync"
	"time"
)

// MemoryStore keeps sessions in process memory. A background sweeper
// drops expired entries so the map does not grow without bound.
type MemoryStore struct {
	ttl  time.Duration
	mu   sync.RWMutex
	data map[string]Session
	stop chan struct{}
	once sync.Once
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	s := &MemoryStore{
		ttl:  ttl,
		data: make(map[string]Session),
		stop: make(chan struct{}),
	}
	go s.sweep(time.Minute)
	return s
}

func (s *MemoryStore) Create(ctx context.Context, sess Session) (string, error) {
	token, err := newToken()
	if err != nil {
		return "", err
	}
	sess.ExpiresAt = time.Now().Add(s.ttl)
	s.mu.Lock()
	s.data[token] = sess
	s.mu.Unlock()
	return token, nil
}

func (s *MemoryStore) Get(ctx context.Context, token string) (Session, error) {
	s.mu.RLock()
	sess, ok := s.data[token]
	s.mu.RUnlock()
	if !ok {
		return Session{}, ErrNotFound
	}
	if time.Now().After(sess.ExpiresAt) {
		_ = s.Delete(ctx, token)
		return Session{}, ErrNotFound
	}
	return sess, nil
}

func (s *MemoryStore) Delete(ctx context.Context, token string) error {
	s.mu.Lock()
	delete(s.data, token)
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Close() {
	s.once.Do(func() { close(s.stop) })
}

func (s *MemoryStore) sweep(every time.Duration) {
	t := time.NewTicker(every)
	defer t.Stop()
	for {
		select {
		case <-s.stop:
			return
		case now := <-t.C:
			s.mu.Lock()
			for token, sess := range s.data {
				if now.After(sess.ExpiresAt) {
					delete(s.data, token)
				}
			}
			s.mu.Unlock()
		}
	}
}
