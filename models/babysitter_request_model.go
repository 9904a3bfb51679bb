package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type RequestStatus string

const (
	StatusPending   RequestStatus = "PENDING"
	StatusAccepted  RequestStatus = "ACCEPTED"
	StatusRejected  RequestStatus = "REJECTED"
	StatusCancelled RequestStatus = "CANCELLED"
	StatusCompleted RequestStatus = "COMPLETED"
)

func (s RequestStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusRejected, StatusCancelled, StatusCompleted:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transition is possible from s.
func (s RequestStatus) IsTerminal() bool {
	switch s {
	case StatusRejected, StatusCancelled, StatusCompleted:
		return true
	default:
		return false
	}
}

// requestTransitions is the closed edge set of the booking state machine.
var requestTransitions = map[RequestStatus][]RequestStatus{
	StatusPending:  {StatusAccepted, StatusRejected, StatusCancelled},
	StatusAccepted: {StatusCompleted, StatusCancelled},
}

var ErrStartAfterEnd = errors.New("start_date must be before end_date")

type BabysitterRequest struct {
	ID       uuid.UUID     `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	ParentID uuid.UUID     `gorm:"type:uuid;not null" json:"parent_id"`
	Parent   ParentProfile `gorm:"foreignkey:ParentID;constraint:OnDelete:CASCADE" json:"parent,omitempty"`

	ChildID *uuid.UUID    `gorm:"type:uuid" json:"child_id"`
	Child   *ChildProfile `gorm:"foreignkey:ChildID;constraint:OnDelete:SET NULL" json:"child,omitempty"`

	BabysitterID *uuid.UUID `gorm:"type:uuid" json:"babysitter_id"`
	Babysitter   *User      `gorm:"foreignkey:BabysitterID;constraint:OnDelete:SET NULL" json:"babysitter,omitempty"`

	Status    RequestStatus `gorm:"size:20;not null;default:'PENDING'" json:"status"`
	Reference string        `gorm:"size:8;unique" json:"reference"`

	StartDate time.Time `gorm:"not null" json:"start_date"`
	EndDate   time.Time `gorm:"not null" json:"end_date"`

	HourlyRate float64  `gorm:"type:numeric(10,2);not null" json:"hourly_rate"`
	TotalCost  *float64 `gorm:"type:numeric(10,2)" json:"total_cost"`

	SpecialRequirements *string `gorm:"type:text" json:"special_requirements"`
	ReceiptURL          *string `gorm:"size:255" json:"receipt_url"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ValidateWindow enforces start < end. Equal timestamps are rejected too,
// since a zero-duration booking has no billable hours.
func (r *BabysitterRequest) ValidateWindow() error {
	if !r.StartDate.Before(r.EndDate) {
		return ErrStartAfterEnd
	}
	return nil
}

// DurationHours returns the booking length in fractional hours.
func (r *BabysitterRequest) DurationHours() float64 {
	return r.EndDate.Sub(r.StartDate).Seconds() / 3600
}

// CalculateTotalCost computes and stores hourly_rate * duration. The result
// is not rounded; it is fixed at creation time and never recomputed.
func (r *BabysitterRequest) CalculateTotalCost() float64 {
	cost := r.HourlyRate * r.DurationHours()
	r.TotalCost = &cost
	return cost
}

// CanTransition reports whether the state machine permits moving to target
// from the current status.
func (r *BabysitterRequest) CanTransition(target RequestStatus) bool {
	for _, next := range requestTransitions[r.Status] {
		if next == target {
			return true
		}
	}
	return false
}

// Transition moves the booking to target, or fails without mutating anything
// if the edge is not in the state machine. The error message carries the
// current status for caller diagnostics.
func (r *BabysitterRequest) Transition(target RequestStatus) error {
	if !r.CanTransition(target) {
		return fmt.Errorf("cannot move booking with status %s to %s", r.Status, target)
	}
	r.Status = target
	return nil
}

func (r *BabysitterRequest) CanAccept() bool   { return r.CanTransition(StatusAccepted) }
func (r *BabysitterRequest) CanReject() bool   { return r.CanTransition(StatusRejected) }
func (r *BabysitterRequest) CanComplete() bool { return r.CanTransition(StatusCompleted) }
func (r *BabysitterRequest) CanCancel() bool   { return r.CanTransition(StatusCancelled) }
