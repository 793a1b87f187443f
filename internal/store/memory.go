package store

import (
	"context"
	"sync"

	"github.com/SuchitArtal/virtual-lab/internal/models"
)

// Memory keeps the collection in process memory. Used by tests and the
// "memory" driver for local development; contents are lost on restart.
type Memory struct {
	mu       sync.RWMutex
	requests []models.LabRequest
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{requests: []models.LabRequest{}}
}

// Seed replaces the stored collection. Test helper.
func (m *Memory) Seed(requests []models.LabRequest) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requests = append([]models.LabRequest(nil), requests...)
}

func (m *Memory) Load(_ context.Context) ([]models.LabRequest, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.LabRequest, len(m.requests))
	copy(out, m.requests)
	return out, nil
}

func (m *Memory) Save(_ context.Context, requests []models.LabRequest) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requests = append([]models.LabRequest(nil), requests...)
	return nil
}
