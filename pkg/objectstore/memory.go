package objectstore

import (
	"context"
	"sync"
)

// Memory is a map-backed Store for tests and local development without S3.
type Memory struct {
	mu      sync.Mutex
	bucket  string
	objects map[string][]byte
}

// NewMemory creates an in-memory store pretending to be the named bucket.
func NewMemory(bucket string) *Memory {
	return &Memory{
		bucket:  bucket,
		objects: make(map[string][]byte),
	}
}

// Put stores data under key, overwriting any previous object.
func (m *Memory) Put(_ context.Context, key, contentType string, data []byte) (*Object, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	buf := make([]byte, len(data))
	copy(buf, data)
	m.objects[key] = buf

	return &Object{
		Bucket:      m.bucket,
		Key:         key,
		ContentType: contentType,
		Size:        int64(len(data)),
	}, nil
}

// Get returns the stored bytes for key. Test helper.
func (m *Memory) Get(key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.objects[key]
	return data, ok
}

// Len returns the number of stored objects. Test helper.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.objects)
}
