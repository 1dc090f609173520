package subs

import (
	"sort"
	"sync"
)

// MemoryRepository keeps subscriptions in memory only, for tests and
// throwaway runs.
type MemoryRepository struct {
	mu   sync.Mutex
	subs map[string]Subscription
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{subs: map[string]Subscription{}}
}

func (r *MemoryRepository) Get(chatID string) (Subscription, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.subs[chatID]
	return s, ok, nil
}

func (r *MemoryRepository) Put(sub Subscription) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.subs[sub.ChatID] = sub
	return nil
}

func (r *MemoryRepository) List() ([]Subscription, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	list := make([]Subscription, 0, len(r.subs))
	for _, s := range r.subs {
		list = append(list, s)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ChatID < list[j].ChatID })
	return list, nil
}

func (r *MemoryRepository) Delete(chatID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.subs, chatID)
	return nil
}
