package service

import (
	"context"
	"crypto/subtle"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/SuchitArtal/virtual-lab/internal/models"
	"github.com/SuchitArtal/virtual-lab/internal/store"
)

// AdminService reviews requests. Every operation checks the configured
// credential pair first and short-circuits on mismatch.
type AdminService struct {
	store    store.Store
	mu       *sync.Mutex // shared with RequestService
	username string
	password string
}

// NewAdminService returns an admin service bound to the configured
// shared-secret credential pair.
func NewAdminService(st store.Store, mu *sync.Mutex, username, password string) *AdminService {
	return &AdminService{store: st, mu: mu, username: username, password: password}
}

// Authenticate compares the supplied credentials against the configured
// pair in constant time.
func (s *AdminService) Authenticate(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.password)) == 1
	return userOK && passOK
}

// ListAll returns every request, newest first.
func (s *AdminService) ListAll(ctx context.Context, username, password string) ([]models.LabRequest, error) {
	if !s.Authenticate(username, password) {
		return nil, ErrInvalidCredentials
	}

	requests, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load requests: %w", err)
	}
	sort.SliceStable(requests, func(i, j int) bool {
		return requests[i].CreatedAt.After(requests[j].CreatedAt)
	})
	return requests, nil
}

// Approve marks a request approved and attaches the lab URL (trimmed).
// Re-approving an already approved request is not prevented; it simply
// overwrites labUrl and approvedAt.
func (s *AdminService) Approve(ctx context.Context, username, password, id, labURL string) error {
	if !s.Authenticate(username, password) {
		return ErrInvalidCredentials
	}
	labURL = strings.TrimSpace(labURL)
	if labURL == "" {
		return ErrMissingLabURL
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	requests, err := s.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("load requests: %w", err)
	}

	for i := range requests {
		if requests[i].ID != id {
			continue
		}
		now := time.Now().UTC()
		requests[i].Status = models.StatusApproved
		requests[i].LabURL = &labURL
		requests[i].ApprovedAt = &now

		if err := s.store.Save(ctx, requests); err != nil {
			return fmt.Errorf("save requests: %w", err)
		}
		return nil
	}
	return ErrRequestNotFound
}
