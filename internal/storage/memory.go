package storage

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"
)

// Memory is an in-process Storage for tests. Failures can be injected
// per operation.
type Memory struct {
	mu      sync.Mutex
	objects map[Visibility]map[string][]byte

	BaseURL       string
	SaveErr       error
	PublicSaveErr error
	DeleteErr     error
}

func NewMemory() *Memory {
	return &Memory{
		objects: map[Visibility]map[string][]byte{Public: {}, Private: {}},
		BaseURL: "https://storage.test/public",
	}
}

func (m *Memory) Save(ctx context.Context, vis Visibility, key string, body io.Reader, contentType string) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	if vis == Public && m.PublicSaveErr != nil {
		return m.PublicSaveErr
	}
	data, err := io.ReadAll(body)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[vis][key] = data
	return nil
}

func (m *Memory) Delete(ctx context.Context, vis Visibility, key string) error {
	if m.DeleteErr != nil {
		return m.DeleteErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.objects[vis], key)
	return nil
}

func (m *Memory) PublicURL(key string) string {
	return m.BaseURL + "/" + key
}

func (m *Memory) SignedURL(ctx context.Context, key string, expiry time.Duration) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.objects[Private][key]; !ok {
		return "", fmt.Errorf("object %q not found", key)
	}
	return fmt.Sprintf("https://storage.test/signed/%s?expires=%d", key, int(expiry.Seconds())), nil
}

// Has reports whether key is stored with the given visibility.
func (m *Memory) Has(vis Visibility, key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.objects[vis][key]
	return ok
}

// Len returns the number of stored objects with the given visibility.
func (m *Memory) Len(vis Visibility) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.objects[vis])
}
