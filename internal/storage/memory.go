package storage

import (
	"context"
	"sort"
	"sync"

	"github.com/Totarae/Guestbook/internal/model"
)

// MemoryStore потокобезопасное хранилище записей в памяти.
// Используется, когда адрес базы данных не задан.
type MemoryStore struct {
	mutex  sync.RWMutex
	data   map[int64]model.Entry
	nextID int64
}

// NewMemoryStore создаёт пустое хранилище
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[int64]model.Entry)}
}

// ListLatest возвращает не более limit последних записей.
func (s *MemoryStore) ListLatest(ctx context.Context, limit int) ([]model.Entry, error) {
	return s.ListPage(ctx, limit, 0)
}

// ListPage возвращает записи по убыванию created_at начиная с offset.
func (s *MemoryStore) ListPage(_ context.Context, limit, offset int) ([]model.Entry, error) {
	s.mutex.RLock()
	sorted := make([]model.Entry, 0, len(s.data))
	for _, e := range s.data {
		sorted = append(sorted, e)
	}
	s.mutex.RUnlock()

	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].CreatedAt != sorted[j].CreatedAt {
			return sorted[i].CreatedAt > sorted[j].CreatedAt
		}
		return sorted[i].ID > sorted[j].ID
	})

	if offset < 0 {
		offset = 0
	}
	if offset >= len(sorted) {
		return []model.Entry{}, nil
	}
	end := len(sorted)
	if limit >= 0 && offset+limit < end {
		end = offset + limit
	}
	return sorted[offset:end], nil
}

func (s *MemoryStore) Count(_ context.Context) (int, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return len(s.data), nil
}

// Create сохраняет запись и присваивает ей следующий id. Удалённые id не переиспользуются.
func (s *MemoryStore) Create(_ context.Context, entry model.NewEntry) (int64, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.nextID++
	s.data[s.nextID] = model.Entry{
		ID:        s.nextID,
		Name:      entry.Name,
		Message:   entry.Message,
		Website:   copyString(entry.Website),
		CreatedAt: entry.CreatedAt,
	}
	return s.nextID, nil
}

func (s *MemoryStore) Update(_ context.Context, upd model.EntryUpdate) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	e, ok := s.data[upd.ID]
	if !ok {
		return nil
	}
	e.Name = upd.Name
	e.Message = upd.Message
	e.Website = copyString(upd.Website)
	if upd.CreatedAt != nil {
		e.CreatedAt = *upd.CreatedAt
	}
	s.data[upd.ID] = e
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, id int64) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	delete(s.data, id)
	return nil
}

// Ping всегда успешен
func (s *MemoryStore) Ping(_ context.Context) error {
	return nil
}

func copyString(v *string) *string {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
