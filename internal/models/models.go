package models

import (
	"time"
)

// Status is the lifecycle state of a lab request.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
)

// LabRequest represents a student's request for access to a lab resource.
// Email is stored lowercase. LabURL stays null until an admin approves the
// request; ApprovedAt is absent until then.
type LabRequest struct {
	ID         string     `db:"id" json:"id"`
	Name       string     `db:"name" json:"name"`
	Email      string     `db:"email" json:"email"`
	LabName    string     `db:"lab_name" json:"labName"`
	Status     Status     `db:"status" json:"status"`
	LabURL     *string    `db:"lab_url" json:"labUrl"`
	CreatedAt  time.Time  `db:"created_at" json:"createdAt"`
	ApprovedAt *time.Time `db:"approved_at" json:"approvedAt,omitempty"`
}

// Active reports whether the request still occupies its email's single
// active slot (pending or approved; there is no terminal-closed state).
func (r LabRequest) Active() bool {
	return r.Status == StatusPending || r.Status == StatusApproved
}
