package storage

import (
	"context"
	"sync"
)

// MemoryStorage реализация KV в памяти для тестов и локальной разработки.
// Мьютекс защищает карту от конкурентных обращений внутри процесса;
// семантика «последняя запись побеждает» сохраняется.
type MemoryStorage struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemory создает пустое in-memory хранилище.
func NewMemory() *MemoryStorage {
	return &MemoryStorage{data: make(map[string][]byte)}
}

// Get возвращает копию значения ключа.
func (s *MemoryStorage) Get(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	val, ok := s.data[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(val))
	copy(out, val)
	return out, true, nil
}

// Set записывает копию значения.
func (s *MemoryStorage) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	in := make([]byte, len(value))
	copy(in, value)
	s.data[key] = in
	return nil
}
