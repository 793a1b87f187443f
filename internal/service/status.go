package service

import (
	"context"
	"fmt"
	"time"

	"github.com/SuchitArtal/virtual-lab/internal/models"
	"github.com/SuchitArtal/virtual-lab/internal/store"
	"github.com/SuchitArtal/virtual-lab/internal/utils"
)

// StatusView is what a student sees when polling their request. LabURL
// is populated only once the request is approved.
type StatusView struct {
	Status    models.Status
	Name      string
	LabName   string
	LabURL    *string
	CreatedAt time.Time
}

// StatusService answers status queries by email.
type StatusService struct {
	store store.Store
}

func NewStatusService(st store.Store) *StatusService {
	return &StatusService{store: st}
}

// Lookup finds the active request for an email. A missing request is a
// legitimate result, not an error: found is false and err is nil.
func (s *StatusService) Lookup(ctx context.Context, email string) (StatusView, bool, error) {
	if email == "" {
		return StatusView{}, false, ErrMissingEmail
	}
	email = utils.NormalizeEmail(email)

	requests, err := s.store.Load(ctx)
	if err != nil {
		return StatusView{}, false, fmt.Errorf("load requests: %w", err)
	}

	for _, r := range requests {
		if r.Email != email || !r.Active() {
			continue
		}
		view := StatusView{
			Status:    r.Status,
			Name:      r.Name,
			LabName:   r.LabName,
			CreatedAt: r.CreatedAt,
		}
		// never leak a URL off an unapproved record
		if r.Status == models.StatusApproved {
			view.LabURL = r.LabURL
		}
		return view, true, nil
	}
	return StatusView{}, false, nil
}
