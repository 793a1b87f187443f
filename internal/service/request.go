// Package service implements the portal's core operations: submitting
// lab requests, looking up their status and the admin review flow. All
// operations are load-modify-save cycles against an injected store.
package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/SuchitArtal/virtual-lab/internal/models"
	"github.com/SuchitArtal/virtual-lab/internal/store"
	"github.com/SuchitArtal/virtual-lab/internal/utils"
)

// RequestService creates new lab requests. It enforces the one active
// request per email invariant.
type RequestService struct {
	store store.Store
	mu    *sync.Mutex // shared with AdminService; serializes writes to the store
}

// NewRequestService returns a request service. mu must be the same mutex
// handed to the admin service so their load-modify-save cycles never
// interleave.
func NewRequestService(st store.Store, mu *sync.Mutex) *RequestService {
	return &RequestService{store: st, mu: mu}
}

// Submit validates and stores a new pending request, returning its id.
func (s *RequestService) Submit(ctx context.Context, name, email, labName string) (string, error) {
	if name == "" || email == "" || labName == "" {
		return "", ErrMissingFields
	}
	email = utils.NormalizeEmail(email)

	s.mu.Lock()
	defer s.mu.Unlock()

	requests, err := s.store.Load(ctx)
	if err != nil {
		return "", fmt.Errorf("load requests: %w", err)
	}
	for _, r := range requests {
		if r.Email == email && r.Active() {
			return "", ErrActiveRequestExists
		}
	}

	req := models.LabRequest{
		ID:        uuid.New().String(),
		Name:      name,
		Email:     email,
		LabName:   labName,
		Status:    models.StatusPending,
		CreatedAt: time.Now().UTC(),
	}
	requests = append(requests, req)

	if err := s.store.Save(ctx, requests); err != nil {
		return "", fmt.Errorf("save requests: %w", err)
	}
	return req.ID, nil
}
