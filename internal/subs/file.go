package subs

import (
	"encoding/json"
	"os"
	"sort"
	"sync"
)

// FileRepository persists subscriptions to a JSON file, guarded by a mutex.
type FileRepository struct {
	mu       sync.Mutex
	subs     map[string]Subscription
	filePath string
}

// NewFileRepository loads existing subscriptions from disk, starting empty if
// the file doesn't exist yet.
func NewFileRepository(filePath string) (*FileRepository, error) {
	r := &FileRepository{subs: map[string]Subscription{}, filePath: filePath}

	data, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return r, nil
		}
		return nil, err
	}
	var list []Subscription
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, err
	}
	for _, s := range list {
		r.subs[s.ChatID] = s
	}
	return r, nil
}

func (r *FileRepository) Get(chatID string) (Subscription, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.subs[chatID]
	return s, ok, nil
}

func (r *FileRepository) Put(sub Subscription) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.subs[sub.ChatID] = sub
	return r.save()
}

func (r *FileRepository) List() ([]Subscription, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	list := make([]Subscription, 0, len(r.subs))
	for _, s := range r.subs {
		list = append(list, s)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ChatID < list[j].ChatID })
	return list, nil
}

func (r *FileRepository) Delete(chatID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.subs, chatID)
	return r.save()
}

// save writes the full subscription list. Callers hold the mutex.
func (r *FileRepository) save() error {
	list := make([]Subscription, 0, len(r.subs))
	for _, s := range r.subs {
		list = append(list, s)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ChatID < list[j].ChatID })
	data, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(r.filePath, data, 0644)
}
